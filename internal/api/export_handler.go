package api

import (
	"net/http"
	"time"
)

// ── Response types ──────────────────────────────────────────────────────────

type ExportData struct {
	Version          string                    `json:"version"`
	ExportedAt       string                    `json:"exported_at"`
	Flashcards       []CardResponse            `json:"flashcards"`
	LearningSessions []LearningSessionResponse `json:"learning_sessions"`
	QuizSessions     []QuizSessionResponse     `json:"quiz_sessions"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// exportAll returns a downloadable snapshot of the whole dataset.
// @Summary      Export everything
// @Description  Versioned JSON snapshot of all flashcards, learning sessions and quiz sessions.
// @Tags         Export
// @Produce      json
// @Success      200  {object}  ExportData
// @Router       /export [get]
func (h *Handler) exportAll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	cards, err := h.cards.List(ctx)
	if h.handleServiceError(w, err, "cards") {
		return
	}
	learning, err := h.sessions.LearningSessions(ctx)
	if h.handleServiceError(w, err, "learning sessions") {
		return
	}
	quizzes, err := h.sessions.QuizSessions(ctx, "")
	if h.handleServiceError(w, err, "quiz sessions") {
		return
	}

	exportData := ExportData{
		Version:          "1.0",
		ExportedAt:       time.Now().UTC().Format(time.RFC3339),
		Flashcards:       cardResponses(cards),
		LearningSessions: make([]LearningSessionResponse, len(learning)),
		QuizSessions:     make([]QuizSessionResponse, len(quizzes)),
	}
	for i, ls := range learning {
		exportData.LearningSessions[i] = learningSessionResponse(ls)
	}
	for i, qs := range quizzes {
		exportData.QuizSessions[i] = quizSessionResponse(qs)
	}

	w.Header().Set("Content-Disposition", "attachment; filename=palabras-export.json")
	respondJSON(w, http.StatusOK, exportData)
}
