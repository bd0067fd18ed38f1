package session_test

import (
	"testing"
	"time"

	"github.com/palabras/backend/internal/domain/session"
)

var start = time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)

func TestNewActiveLearningSession_ShufflesCopy(t *testing.T) {
	ids := make([]string, 20)
	for i := range ids {
		ids[i] = string(rune('a' + i))
	}

	first := session.NewActiveLearningSession(ids, start)

	foundDifferentOrder := false
	for i := 0; i < 10; i++ {
		next := session.NewActiveLearningSession(ids, start)
		if !sameOrder(first.CardIDs, next.CardIDs) {
			foundDifferentOrder = true
			break
		}
	}
	if !foundDifferentOrder {
		t.Error("expected card order to vary across sessions")
	}

	if len(first.CardIDs) != len(ids) {
		t.Errorf("expected %d cards, got %d", len(ids), len(first.CardIDs))
	}
	// input slice must stay untouched
	for i, id := range ids {
		if id != string(rune('a'+i)) {
			t.Fatal("input slice was mutated by shuffling")
		}
	}
}

func TestActiveLearningSession_Navigation(t *testing.T) {
	s := session.NewActiveLearningSession([]string{"a", "b", "c"}, start)

	s.Flip()
	if !s.IsFlipped {
		t.Error("expected card flipped")
	}

	s.Next()
	if s.CurrentIndex != 1 || s.IsFlipped {
		t.Errorf("expected index 1 face down, got %d flipped=%v", s.CurrentIndex, s.IsFlipped)
	}

	s.Previous()
	s.Previous() // floors at 0
	if s.CurrentIndex != 0 {
		t.Errorf("expected index floored at 0, got %d", s.CurrentIndex)
	}
}

func TestActiveLearningSession_Finish(t *testing.T) {
	s := session.NewActiveLearningSession([]string{"a", "b", "c"}, start)
	s.RecordAnswer("a", true)
	s.RecordAnswer("b", false)
	// "c" skipped: reviewed without a verdict

	done := s.Finish(start.Add(95 * time.Second))

	if done.ID == "" {
		t.Error("expected a generated session id")
	}
	if done.DurationSeconds != 95 {
		t.Errorf("expected duration 95s, got %d", done.DurationSeconds)
	}
	if len(done.CardsReviewed) != 3 {
		t.Errorf("expected 3 reviewed cards, got %d", len(done.CardsReviewed))
	}
	if len(done.CorrectCards) != 1 || done.CorrectCards[0] != "a" {
		t.Errorf("unexpected correct cards: %v", done.CorrectCards)
	}
	if len(done.IncorrectCards) != 1 || done.IncorrectCards[0] != "b" {
		t.Errorf("unexpected incorrect cards: %v", done.IncorrectCards)
	}
	if len(done.CorrectCards)+len(done.IncorrectCards) > len(done.CardsReviewed) {
		t.Error("verdicts exceed reviewed cards")
	}

	updates := s.PendingUpdates()
	if len(updates) != 2 || updates[0].CardID != "a" || !updates[0].WasCorrect {
		t.Errorf("unexpected pending updates: %v", updates)
	}
}

func TestScore(t *testing.T) {
	cases := []struct {
		name     string
		verdicts []bool
		want     int
	}{
		{"empty", nil, 0},
		{"all correct", []bool{true, true}, 100},
		{"none correct", []bool{false, false}, 0},
		{"two thirds", []bool{true, true, false}, 67},
		{"three quarters", []bool{true, true, true, false}, 75},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			questions := make([]session.QuizQuestion, len(tc.verdicts))
			for i, v := range tc.verdicts {
				questions[i].WasCorrect = v
			}
			if got := session.Score(questions); got != tc.want {
				t.Errorf("expected score %d, got %d", tc.want, got)
			}
		})
	}
}

func TestActiveQuizSession_AnswerCurrent(t *testing.T) {
	questions := []session.QuizQuestion{
		{CardID: "a", CorrectAnswer: "hello"},
		{CardID: "b", CorrectAnswer: "water"},
	}
	s := session.NewActiveQuizSession(session.QuizFillInBlank, questions, start)

	s.AnswerCurrent("  HELLO ")
	s.AnswerCurrent("wine")

	if !s.Questions[0].WasCorrect {
		t.Error("expected trimmed case-insensitive match to count as correct")
	}
	if s.Questions[1].WasCorrect {
		t.Error("expected wrong answer to stay incorrect")
	}
	if s.Questions[1].UserAnswer != "wine" {
		t.Errorf("expected recorded answer, got %q", s.Questions[1].UserAnswer)
	}
	if !s.Done() {
		t.Error("expected session done after last answer")
	}

	s.AnswerCurrent("ignored") // past the end: no-op
	if s.CurrentIndex != 2 {
		t.Errorf("expected index to stay at 2, got %d", s.CurrentIndex)
	}
}

func TestQuizTypeValid(t *testing.T) {
	if !session.QuizMultipleChoice.Valid() || !session.QuizFillInBlank.Valid() {
		t.Error("expected known types to be valid")
	}
	if session.QuizType("essay").Valid() {
		t.Error("expected unknown type to be invalid")
	}
}

func sameOrder(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
