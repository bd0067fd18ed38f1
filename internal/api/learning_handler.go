package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/palabras/backend/internal/domain/session"
	"github.com/palabras/backend/internal/service"
)

// ── Request / Response types ────────────────────────────────────────────────

type RecordLearningSessionRequest struct {
	CardsReviewed   []string `json:"cards_reviewed"`
	CorrectCards    []string `json:"correct_cards"`
	IncorrectCards  []string `json:"incorrect_cards"`
	DurationSeconds int      `json:"duration_seconds" example:"180"`
}

func (r *RecordLearningSessionRequest) Validate() error {
	if len(r.CardsReviewed) == 0 {
		return errors.New("cards_reviewed is required")
	}
	if r.DurationSeconds < 0 {
		return errors.New("duration_seconds must not be negative")
	}
	return nil
}

type LearningSessionResponse struct {
	ID              string    `json:"id" example:"f0e1d2c3-b4a5-4968-8776-655443322110"`
	Date            time.Time `json:"date"`
	CardsReviewed   []string  `json:"cards_reviewed"`
	CorrectCards    []string  `json:"correct_cards"`
	IncorrectCards  []string  `json:"incorrect_cards"`
	DurationSeconds int       `json:"duration_seconds" example:"180"`
}

func learningSessionResponse(ls session.LearningSession) LearningSessionResponse {
	return LearningSessionResponse{
		ID:              ls.ID,
		Date:            ls.Date,
		CardsReviewed:   ls.CardsReviewed,
		CorrectCards:    ls.CorrectCards,
		IncorrectCards:  ls.IncorrectCards,
		DurationSeconds: ls.DurationSeconds,
	}
}

// ── Handlers ────────────────────────────────────────────────────────────────

// recordLearningSession records a finished review run.
// @Summary      Record a learning session
// @Description  Apply the session's verdicts to card statistics and append the session to history. Cards in cards_reviewed but in neither verdict list were skipped.
// @Tags         Learning sessions
// @Accept       json
// @Produce      json
// @Param        body  body      RecordLearningSessionRequest  true  "finished session"
// @Success      201   {object}  LearningSessionResponse
// @Failure      400   {object}  errorResponse
// @Router       /learning-sessions [post]
func (h *Handler) recordLearningSession(w http.ResponseWriter, r *http.Request) {
	var req RecordLearningSessionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	ls, err := h.sessions.RecordLearning(r.Context(), service.LearningResult{
		CardsReviewed:   req.CardsReviewed,
		CorrectCards:    req.CorrectCards,
		IncorrectCards:  req.IncorrectCards,
		DurationSeconds: req.DurationSeconds,
	})
	if h.handleServiceError(w, err, "learning session") {
		return
	}

	respondJSON(w, http.StatusCreated, learningSessionResponse(ls))
}

// listLearningSessions lists review history, oldest first.
// @Summary      List learning sessions
// @Tags         Learning sessions
// @Produce      json
// @Success      200  {array}  LearningSessionResponse
// @Router       /learning-sessions [get]
func (h *Handler) listLearningSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.sessions.LearningSessions(r.Context())
	if h.handleServiceError(w, err, "learning sessions") {
		return
	}

	response := make([]LearningSessionResponse, len(sessions))
	for i, ls := range sessions {
		response[i] = learningSessionResponse(ls)
	}
	respondJSON(w, http.StatusOK, response)
}
