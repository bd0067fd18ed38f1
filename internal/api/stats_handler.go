package api

import (
	"net/http"
	"strconv"
)

// ── Response types ──────────────────────────────────────────────────────────

type StreaksResponse struct {
	CurrentStreak int `json:"current_streak" example:"4"`
	LongestStreak int `json:"longest_streak" example:"11"`
}

type DailyActivityResponse struct {
	Date           string `json:"date" example:"2024-05-10"`
	CardsReviewed  int    `json:"cards_reviewed" example:"14"`
	CorrectCards   int    `json:"correct_cards" example:"9"`
	IncorrectCards int    `json:"incorrect_cards" example:"5"`
	SuccessRate    int    `json:"success_rate" example:"64"`
}

type OverallStatsResponse struct {
	TotalSessions                 int `json:"total_sessions" example:"23"`
	TotalCardsReviewed            int `json:"total_cards_reviewed" example:"412"`
	TotalCorrect                  int `json:"total_correct" example:"301"`
	TotalIncorrect                int `json:"total_incorrect" example:"111"`
	OverallSuccessRate            int `json:"overall_success_rate" example:"73"`
	AverageSessionDurationSeconds int `json:"average_session_duration_seconds" example:"142"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// streaks returns the current and longest run of consecutive study days.
// @Summary      Study streaks
// @Description  Current streak counts back from today (or yesterday if today has no session yet). Longest streak covers all history.
// @Tags         Statistics
// @Produce      json
// @Success      200  {object}  StreaksResponse
// @Router       /stats/streaks [get]
func (h *Handler) streaks(w http.ResponseWriter, r *http.Request) {
	streaks, err := h.sessions.Streaks(r.Context())
	if h.handleServiceError(w, err, "streaks") {
		return
	}

	respondJSON(w, http.StatusOK, StreaksResponse{
		CurrentStreak: streaks.Current,
		LongestStreak: streaks.Longest,
	})
}

// dailyActivity returns one aggregate bucket per calendar day.
// @Summary      Daily activity
// @Description  One bucket per day for the last ?days= days (default 7), oldest first, today included. Days without sessions are zero buckets.
// @Tags         Statistics
// @Produce      json
// @Param        days  query     int  false  "window size in days"  default(7)
// @Success      200   {array}   DailyActivityResponse
// @Failure      400   {object}  errorResponse
// @Router       /stats/daily [get]
func (h *Handler) dailyActivity(w http.ResponseWriter, r *http.Request) {
	days := 7
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			respondError(w, http.StatusBadRequest, "days must be a positive integer")
			return
		}
		days = parsed
	}

	activity, err := h.sessions.DailyActivity(r.Context(), days)
	if h.handleServiceError(w, err, "daily activity") {
		return
	}

	response := make([]DailyActivityResponse, len(activity))
	for i, day := range activity {
		response[i] = DailyActivityResponse{
			Date:           day.Date,
			CardsReviewed:  day.CardsReviewed,
			CorrectCards:   day.CorrectCards,
			IncorrectCards: day.IncorrectCards,
			SuccessRate:    day.SuccessRate,
		}
	}
	respondJSON(w, http.StatusOK, response)
}

// overallStats returns lifetime totals across all learning sessions.
// @Summary      Overall statistics
// @Tags         Statistics
// @Produce      json
// @Success      200  {object}  OverallStatsResponse
// @Router       /stats/overall [get]
func (h *Handler) overallStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.sessions.OverallStats(r.Context())
	if h.handleServiceError(w, err, "overall stats") {
		return
	}

	respondJSON(w, http.StatusOK, OverallStatsResponse{
		TotalSessions:                 stats.TotalSessions,
		TotalCardsReviewed:            stats.TotalCardsReviewed,
		TotalCorrect:                  stats.TotalCorrect,
		TotalIncorrect:                stats.TotalIncorrect,
		OverallSuccessRate:            stats.OverallSuccessRate,
		AverageSessionDurationSeconds: stats.AverageSessionDurationSeconds,
	})
}
