package card

import (
	"sort"
	"strings"
	"time"
)

// AnswerUpdate is one pending verdict for a batch statistics update.
type AnswerUpdate struct {
	CardID     string
	WasCorrect bool
}

// ApplyAnswers applies every update in order against an id-indexed view of
// the collection and returns how many cards were touched. Unknown card ids
// are skipped and do not count. The observable per-card result is identical
// to sequential ApplyAnswer calls in the same order; the point of the batch
// is that the caller persists the collection once at the end.
func ApplyAnswers(cards []Flashcard, updates []AnswerUpdate, now time.Time) int {
	if len(updates) == 0 {
		return 0
	}

	byID := make(map[string]*Flashcard, len(cards))
	for i := range cards {
		byID[cards[i].ID] = &cards[i]
	}

	updated := 0
	for _, u := range updates {
		c, ok := byID[u.CardID]
		if !ok {
			continue
		}
		c.ApplyAnswer(u.WasCorrect, now)
		updated++
	}
	return updated
}

// IsDuplicate reports whether a card other than excludeID already uses the
// given spanish term, compared case-insensitively after trimming.
func IsDuplicate(cards []Flashcard, spanish string, excludeID string) bool {
	normalized := strings.ToLower(strings.TrimSpace(spanish))
	for _, c := range cards {
		if c.ID != excludeID && strings.ToLower(c.Spanish) == normalized {
			return true
		}
	}
	return false
}

// DueForReview filters to cards whose recent performance calls for
// re-study: success rate under the learned threshold and not answered
// correctly twice in a row. Two consecutive correct answers park a card
// even while its historical rate is still low, so a just-learned card is
// not re-queued immediately. Result is sorted ascending by success rate;
// ties keep collection order.
func DueForReview(cards []Flashcard) []Flashcard {
	var due []Flashcard
	for _, c := range cards {
		if c.Statistics.SuccessRate < LearnedMinRate && c.Statistics.ConsecutiveCorrect < 2 {
			due = append(due, c)
		}
	}
	sort.SliceStable(due, func(i, j int) bool {
		return due[i].Statistics.SuccessRate < due[j].Statistics.SuccessRate
	})
	return due
}

// Search returns the cards whose spanish, english or notes text contains
// the query, case-insensitively. A blank query matches everything.
func Search(cards []Flashcard, query string) []Flashcard {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return cards
	}

	var matches []Flashcard
	for _, c := range cards {
		if strings.Contains(strings.ToLower(c.Spanish), query) ||
			strings.Contains(strings.ToLower(c.English), query) ||
			strings.Contains(strings.ToLower(c.Notes), query) {
			matches = append(matches, c)
		}
	}
	return matches
}
