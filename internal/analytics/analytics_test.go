package analytics_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palabras/backend/internal/analytics"
	"github.com/palabras/backend/internal/domain/session"
)

// a fixed "today" in the afternoon, so same-day sessions sit before it
var today = time.Date(2024, 5, 10, 15, 30, 0, 0, time.UTC)

func sessionOn(date time.Time, reviewed, correct, incorrect int, duration int) session.LearningSession {
	s := session.LearningSession{
		ID:              date.Format(time.RFC3339),
		Date:            date,
		DurationSeconds: duration,
	}
	for i := 0; i < reviewed; i++ {
		s.CardsReviewed = append(s.CardsReviewed, "card")
	}
	for i := 0; i < correct; i++ {
		s.CorrectCards = append(s.CorrectCards, "card")
	}
	for i := 0; i < incorrect; i++ {
		s.IncorrectCards = append(s.IncorrectCards, "card")
	}
	return s
}

func daysAgo(n int) time.Time {
	return today.AddDate(0, 0, -n)
}

func TestComputeStreaks_EmptyHistory(t *testing.T) {
	assert.Equal(t, analytics.Streaks{}, analytics.ComputeStreaks(nil, today))
}

func TestComputeStreaks_TodayAndYesterday(t *testing.T) {
	sessions := []session.LearningSession{
		sessionOn(daysAgo(0), 5, 3, 2, 60),
		sessionOn(daysAgo(1), 5, 4, 1, 60),
	}

	got := analytics.ComputeStreaks(sessions, today)
	assert.Equal(t, 2, got.Current)
	assert.Equal(t, 2, got.Longest)

	// an isolated session five days back changes neither metric
	sessions = append(sessions, sessionOn(daysAgo(5), 3, 1, 2, 30))
	got = analytics.ComputeStreaks(sessions, today)
	assert.Equal(t, 2, got.Current)
	assert.Equal(t, 2, got.Longest)
}

func TestComputeStreaks_NoSessionTodayStartsYesterday(t *testing.T) {
	sessions := []session.LearningSession{
		sessionOn(daysAgo(1), 5, 3, 2, 60),
		sessionOn(daysAgo(2), 5, 3, 2, 60),
		sessionOn(daysAgo(3), 5, 3, 2, 60),
	}

	got := analytics.ComputeStreaks(sessions, today)
	assert.Equal(t, 3, got.Current, "a streak survives until today ends")
	assert.Equal(t, 3, got.Longest)
}

func TestComputeStreaks_GapBreaksCurrent(t *testing.T) {
	sessions := []session.LearningSession{
		sessionOn(daysAgo(0), 5, 3, 2, 60),
		// gap yesterday
		sessionOn(daysAgo(2), 5, 3, 2, 60),
		sessionOn(daysAgo(3), 5, 3, 2, 60),
		sessionOn(daysAgo(4), 5, 3, 2, 60),
	}

	got := analytics.ComputeStreaks(sessions, today)
	assert.Equal(t, 1, got.Current)
	assert.Equal(t, 3, got.Longest, "historical run beats the open streak")
}

func TestComputeStreaks_MultipleSessionsSameDay(t *testing.T) {
	sessions := []session.LearningSession{
		sessionOn(daysAgo(0), 5, 3, 2, 60),
		sessionOn(daysAgo(0).Add(-2*time.Hour), 3, 2, 1, 30),
	}

	got := analytics.ComputeStreaks(sessions, today)
	assert.Equal(t, 1, got.Current, "one calendar day counts once")
}

func TestComputeDailyActivity(t *testing.T) {
	sessions := []session.LearningSession{
		sessionOn(daysAgo(0), 10, 7, 3, 120),
		sessionOn(daysAgo(0).Add(-time.Hour), 4, 2, 1, 45), // same day, aggregated
		sessionOn(daysAgo(2), 6, 3, 3, 90),
		sessionOn(daysAgo(9), 8, 8, 0, 60), // out of range
	}

	activity := analytics.ComputeDailyActivity(sessions, 7, today)
	require.Len(t, activity, 7)

	// oldest first, inclusive of today
	assert.Equal(t, daysAgo(6).Format("2006-01-02"), activity[0].Date)
	assert.Equal(t, today.Format("2006-01-02"), activity[6].Date)

	todayBucket := activity[6]
	assert.Equal(t, 14, todayBucket.CardsReviewed)
	assert.Equal(t, 9, todayBucket.CorrectCards)
	assert.Equal(t, 4, todayBucket.IncorrectCards)
	assert.Equal(t, 64, todayBucket.SuccessRate) // round(9/14*100)

	twoBack := activity[4]
	assert.Equal(t, 6, twoBack.CardsReviewed)
	assert.Equal(t, 50, twoBack.SuccessRate)

	for _, i := range []int{1, 2, 3, 5} {
		assert.Zero(t, activity[i].CardsReviewed, "empty day %s", activity[i].Date)
		assert.Zero(t, activity[i].SuccessRate)
	}
}

func TestComputeDailyActivity_EmptyHistory(t *testing.T) {
	activity := analytics.ComputeDailyActivity(nil, 7, today)
	require.Len(t, activity, 7)
	for _, day := range activity {
		assert.Zero(t, day.CardsReviewed)
		assert.Zero(t, day.SuccessRate)
	}
}

func TestComputeOverallStats(t *testing.T) {
	sessions := []session.LearningSession{
		sessionOn(daysAgo(0), 10, 7, 3, 120),
		sessionOn(daysAgo(1), 6, 3, 2, 91),
	}

	got := analytics.ComputeOverallStats(sessions)
	assert.Equal(t, 2, got.TotalSessions)
	assert.Equal(t, 16, got.TotalCardsReviewed)
	assert.Equal(t, 10, got.TotalCorrect)
	assert.Equal(t, 5, got.TotalIncorrect)
	assert.Equal(t, 63, got.OverallSuccessRate)             // round(10/16*100)
	assert.Equal(t, 106, got.AverageSessionDurationSeconds) // round(211/2)
}

func TestComputeOverallStats_EmptyHistory(t *testing.T) {
	assert.Equal(t, analytics.OverallStats{}, analytics.ComputeOverallStats(nil))
}
