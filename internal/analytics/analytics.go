// Package analytics computes streaks and activity rollups over the
// learning-session history. Calendar days are resolved in the location of
// the reference time the caller passes in; day steps use AddDate so DST
// transitions cannot skip or double-count a day.
package analytics

import (
	"sort"
	"time"

	"github.com/palabras/backend/internal/domain/session"
)

const dayFormat = "2006-01-02"

// Streaks holds the consecutive-day review metrics.
type Streaks struct {
	Current int
	Longest int
}

// ComputeStreaks derives the distinct calendar-day set of the session
// history and counts consecutive runs. The current streak starts at today
// (or yesterday, when today has no session yet) and walks backward until
// the first gap. The longest streak is the longest run anywhere in the
// set, with a still-open current streak counting as a candidate.
func ComputeStreaks(sessions []session.LearningSession, today time.Time) Streaks {
	if len(sessions) == 0 {
		return Streaks{}
	}

	days := make(map[string]struct{}, len(sessions))
	for _, s := range sessions {
		days[s.Date.In(today.Location()).Format(dayFormat)] = struct{}{}
	}

	check := midnight(today)
	if _, ok := days[check.Format(dayFormat)]; !ok {
		check = check.AddDate(0, 0, -1)
	}

	current := 0
	for {
		if _, ok := days[check.Format(dayFormat)]; !ok {
			break
		}
		current++
		check = check.AddDate(0, 0, -1)
	}

	sorted := make([]string, 0, len(days))
	for d := range days {
		sorted = append(sorted, d)
	}
	sort.Strings(sorted)

	longest, run := 0, 0
	var prev time.Time
	for i, d := range sorted {
		day, _ := time.ParseInLocation(dayFormat, d, today.Location())
		if i > 0 && prev.AddDate(0, 0, 1).Equal(day) {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
		prev = day
	}

	if current > longest {
		longest = current
	}
	return Streaks{Current: current, Longest: longest}
}

// DailyActivity is one day's review totals.
type DailyActivity struct {
	Date           string // YYYY-MM-DD
	CardsReviewed  int
	CorrectCards   int
	IncorrectCards int
	SuccessRate    int
}

// ComputeDailyActivity buckets the session history into the last days
// calendar days, today inclusive, oldest first. Every day is present even
// with zero activity; a day's success rate is 0 when nothing was reviewed.
func ComputeDailyActivity(sessions []session.LearningSession, days int, today time.Time) []DailyActivity {
	if days <= 0 {
		return nil
	}

	start := midnight(today).AddDate(0, 0, -(days - 1))

	activity := make([]DailyActivity, days)
	index := make(map[string]int, days)
	for i := range activity {
		date := start.AddDate(0, 0, i).Format(dayFormat)
		activity[i] = DailyActivity{Date: date}
		index[date] = i
	}

	for _, s := range sessions {
		date := s.Date.In(today.Location())
		if date.Before(start) || date.After(today) {
			continue
		}
		i, ok := index[date.Format(dayFormat)]
		if !ok {
			continue
		}
		activity[i].CardsReviewed += len(s.CardsReviewed)
		activity[i].CorrectCards += len(s.CorrectCards)
		activity[i].IncorrectCards += len(s.IncorrectCards)
	}

	for i := range activity {
		if activity[i].CardsReviewed > 0 {
			activity[i].SuccessRate = round(float64(activity[i].CorrectCards) /
				float64(activity[i].CardsReviewed) * 100)
		}
	}
	return activity
}

// OverallStats sums the whole learning-session history.
type OverallStats struct {
	TotalSessions                 int
	TotalCardsReviewed            int
	TotalCorrect                  int
	TotalIncorrect                int
	OverallSuccessRate            int
	AverageSessionDurationSeconds int
}

// ComputeOverallStats returns the all-time totals, all zero for an empty
// history.
func ComputeOverallStats(sessions []session.LearningSession) OverallStats {
	if len(sessions) == 0 {
		return OverallStats{}
	}

	stats := OverallStats{TotalSessions: len(sessions)}
	totalDuration := 0
	for _, s := range sessions {
		stats.TotalCardsReviewed += len(s.CardsReviewed)
		stats.TotalCorrect += len(s.CorrectCards)
		stats.TotalIncorrect += len(s.IncorrectCards)
		totalDuration += s.DurationSeconds
	}

	if stats.TotalCardsReviewed > 0 {
		stats.OverallSuccessRate = round(float64(stats.TotalCorrect) /
			float64(stats.TotalCardsReviewed) * 100)
	}
	stats.AverageSessionDurationSeconds = round(float64(totalDuration) / float64(len(sessions)))
	return stats
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func round(f float64) int {
	return int(f + 0.5)
}
