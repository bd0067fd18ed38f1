package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/palabras/backend/internal/domain/session"
)

// ── Request / Response types ────────────────────────────────────────────────

type GenerateQuizRequest struct {
	Type  string `json:"type" example:"multiple-choice"`
	Count int    `json:"count" example:"10"`
}

func (r *GenerateQuizRequest) Validate() error {
	if !session.QuizType(r.Type).Valid() {
		return errors.New("type must be multiple-choice or fill-in-blank")
	}
	if r.Count <= 0 {
		return errors.New("count must be positive")
	}
	return nil
}

type QuizQuestionResponse struct {
	ID            string   `json:"id" example:"iDQvXKyhNoFWQmLSrCHWnZ"`
	CardID        string   `json:"card_id" example:"a1b2c3d4-e5f6-4a7b-8c9d-0e1f2a3b4c5d"`
	Prompt        string   `json:"prompt" example:"la biblioteca"`
	Options       []string `json:"options,omitempty"`
	CorrectIndex  int      `json:"correct_index" example:"2"`
	CorrectAnswer string   `json:"correct_answer" example:"the library"`
}

type GenerateQuizResponse struct {
	Type      string                 `json:"type" example:"multiple-choice"`
	Questions []QuizQuestionResponse `json:"questions"`
}

type AnsweredQuestion struct {
	ID            string   `json:"id"`
	CardID        string   `json:"card_id"`
	Prompt        string   `json:"prompt"`
	Options       []string `json:"options,omitempty"`
	CorrectIndex  int      `json:"correct_index"`
	CorrectAnswer string   `json:"correct_answer"`
	UserAnswer    string   `json:"user_answer"`
	WasCorrect    bool     `json:"was_correct"`
}

type CompleteQuizRequest struct {
	Type      string             `json:"type" example:"multiple-choice"`
	Questions []AnsweredQuestion `json:"questions"`
}

func (r *CompleteQuizRequest) Validate() error {
	if !session.QuizType(r.Type).Valid() {
		return errors.New("type must be multiple-choice or fill-in-blank")
	}
	for _, q := range r.Questions {
		if q.CardID == "" {
			return errors.New("every question needs a card_id")
		}
	}
	return nil
}

type QuizSessionResponse struct {
	ID           string             `json:"id" example:"f0e1d2c3-b4a5-4968-8776-655443322110"`
	Type         string             `json:"type" example:"multiple-choice"`
	Date         time.Time          `json:"date"`
	Questions    []AnsweredQuestion `json:"questions"`
	ScorePercent int                `json:"score_percent" example:"80"`
	Completed    bool               `json:"completed" example:"true"`
}

type AverageQuizScoreResponse struct {
	AverageScore int `json:"average_score" example:"72"`
	Sessions     int `json:"sessions" example:"9"`
}

func quizSessionResponse(qs session.QuizSession) QuizSessionResponse {
	questions := make([]AnsweredQuestion, len(qs.Questions))
	for i, q := range qs.Questions {
		questions[i] = AnsweredQuestion{
			ID:            q.ID,
			CardID:        q.CardID,
			Prompt:        q.Prompt,
			Options:       q.Options,
			CorrectIndex:  q.CorrectIndex,
			CorrectAnswer: q.CorrectAnswer,
			UserAnswer:    q.UserAnswer,
			WasCorrect:    q.WasCorrect,
		}
	}
	return QuizSessionResponse{
		ID:           qs.ID,
		Type:         string(qs.Type),
		Date:         qs.Date,
		Questions:    questions,
		ScorePercent: qs.ScorePercent,
		Completed:    qs.Completed,
	}
}

// ── Handlers ────────────────────────────────────────────────────────────────

// generateQuiz builds a quiz from the current card collection.
// @Summary      Generate a quiz
// @Description  Build up to count questions over a shuffled selection of the collection. Distractors come from other cards' english terms.
// @Tags         Quizzes
// @Accept       json
// @Produce      json
// @Param        body  body      GenerateQuizRequest  true  "quiz parameters"
// @Success      200   {object}  GenerateQuizResponse
// @Failure      400   {object}  errorResponse
// @Router       /quizzes [post]
func (h *Handler) generateQuiz(w http.ResponseWriter, r *http.Request) {
	var req GenerateQuizRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	questions, err := h.sessions.BuildQuiz(r.Context(), session.QuizType(req.Type), req.Count)
	if h.handleServiceError(w, err, "quiz") {
		return
	}

	response := GenerateQuizResponse{
		Type:      req.Type,
		Questions: make([]QuizQuestionResponse, len(questions)),
	}
	for i, q := range questions {
		response.Questions[i] = QuizQuestionResponse{
			ID:            q.ID,
			CardID:        q.CardID,
			Prompt:        q.Prompt,
			Options:       q.Options,
			CorrectIndex:  q.CorrectIndex,
			CorrectAnswer: q.CorrectAnswer,
		}
	}
	respondJSON(w, http.StatusOK, response)
}

// completeQuiz records a finished quiz and updates card statistics.
// @Summary      Complete a quiz
// @Description  Score the answered questions, apply every verdict to its card, and append the session to history.
// @Tags         Quizzes
// @Accept       json
// @Produce      json
// @Param        body  body      CompleteQuizRequest  true  "answered quiz"
// @Success      201   {object}  QuizSessionResponse
// @Failure      400   {object}  errorResponse
// @Router       /quizzes/complete [post]
func (h *Handler) completeQuiz(w http.ResponseWriter, r *http.Request) {
	var req CompleteQuizRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	questions := make([]session.QuizQuestion, len(req.Questions))
	for i, q := range req.Questions {
		questions[i] = session.QuizQuestion{
			ID:            q.ID,
			CardID:        q.CardID,
			Prompt:        q.Prompt,
			Options:       q.Options,
			CorrectIndex:  q.CorrectIndex,
			CorrectAnswer: q.CorrectAnswer,
			UserAnswer:    q.UserAnswer,
			WasCorrect:    q.WasCorrect,
		}
	}

	qs, err := h.sessions.FinalizeQuiz(r.Context(), session.QuizType(req.Type), questions)
	if h.handleServiceError(w, err, "quiz") {
		return
	}

	respondJSON(w, http.StatusCreated, quizSessionResponse(qs))
}

// listQuizzes lists quiz history, optionally filtered by type.
// @Summary      List quiz sessions
// @Tags         Quizzes
// @Produce      json
// @Param        type  query     string  false  "multiple-choice or fill-in-blank"
// @Success      200   {array}   QuizSessionResponse
// @Failure      400   {object}  errorResponse
// @Router       /quizzes [get]
func (h *Handler) listQuizzes(w http.ResponseWriter, r *http.Request) {
	quizType, ok := quizTypeFilter(w, r)
	if !ok {
		return
	}

	sessions, err := h.sessions.QuizSessions(r.Context(), quizType)
	if h.handleServiceError(w, err, "quiz sessions") {
		return
	}

	response := make([]QuizSessionResponse, len(sessions))
	for i, qs := range sessions {
		response[i] = quizSessionResponse(qs)
	}
	respondJSON(w, http.StatusOK, response)
}

// averageQuizScore returns the mean score across quiz history.
// @Summary      Average quiz score
// @Tags         Quizzes
// @Produce      json
// @Param        type  query     string  false  "multiple-choice or fill-in-blank"
// @Success      200   {object}  AverageQuizScoreResponse
// @Failure      400   {object}  errorResponse
// @Router       /quizzes/average [get]
func (h *Handler) averageQuizScore(w http.ResponseWriter, r *http.Request) {
	quizType, ok := quizTypeFilter(w, r)
	if !ok {
		return
	}

	sessions, err := h.sessions.QuizSessions(r.Context(), quizType)
	if h.handleServiceError(w, err, "quiz sessions") {
		return
	}
	avg, err := h.sessions.AverageQuizScore(r.Context(), quizType)
	if h.handleServiceError(w, err, "quiz sessions") {
		return
	}

	respondJSON(w, http.StatusOK, AverageQuizScoreResponse{
		AverageScore: avg,
		Sessions:     len(sessions),
	})
}

// quizTypeFilter reads the optional ?type= query parameter. An empty
// value means no filter.
func quizTypeFilter(w http.ResponseWriter, r *http.Request) (session.QuizType, bool) {
	raw := r.URL.Query().Get("type")
	if raw == "" {
		return "", true
	}
	quizType := session.QuizType(raw)
	if !quizType.Valid() {
		respondError(w, http.StatusBadRequest, "type must be multiple-choice or fill-in-blank")
		return "", false
	}
	return quizType, true
}
