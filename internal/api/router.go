// internal/api/router.go
package api

import "net/http"

// RegisterRoutes attaches every handler to the mux using method-aware
// route patterns.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	// Cards
	mux.HandleFunc("POST /cards", h.createCard)
	mux.HandleFunc("GET /cards", h.listCards)
	mux.HandleFunc("GET /cards/due", h.dueCards)
	mux.HandleFunc("GET /cards/{cardID}", h.getCard)
	mux.HandleFunc("PUT /cards/{cardID}", h.updateCard)
	mux.HandleFunc("DELETE /cards/{cardID}", h.deleteCard)
	mux.HandleFunc("POST /cards/{cardID}/answer", h.recordAnswer)
	mux.HandleFunc("POST /cards/answers", h.recordAnswers)

	// Quizzes
	mux.HandleFunc("POST /quizzes", h.generateQuiz)
	mux.HandleFunc("GET /quizzes", h.listQuizzes)
	mux.HandleFunc("POST /quizzes/complete", h.completeQuiz)
	mux.HandleFunc("GET /quizzes/average", h.averageQuizScore)

	// Learning sessions
	mux.HandleFunc("POST /learning-sessions", h.recordLearningSession)
	mux.HandleFunc("GET /learning-sessions", h.listLearningSessions)

	// Statistics
	mux.HandleFunc("GET /stats/streaks", h.streaks)
	mux.HandleFunc("GET /stats/daily", h.dailyActivity)
	mux.HandleFunc("GET /stats/overall", h.overallStats)

	// Export
	mux.HandleFunc("GET /export", h.exportAll)
}
