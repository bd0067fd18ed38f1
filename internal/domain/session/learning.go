package session

import (
	"math/rand"
	"time"

	"github.com/palabras/backend/internal/domain/card"
	"github.com/palabras/backend/internal/id"
)

// LearningSession is one finished flashcard review run. Immutable once
// created; correct and incorrect cards partition the answered subset of
// CardsReviewed (skipped cards carry no verdict).
type LearningSession struct {
	ID              string
	Date            time.Time
	CardsReviewed   []string
	CorrectCards    []string
	IncorrectCards  []string
	DurationSeconds int
}

// ActiveLearningSession is the in-progress review state. It exists only
// while a review is running and becomes a LearningSession on Finish.
type ActiveLearningSession struct {
	CardIDs            []string
	CurrentIndex       int
	IsFlipped          bool
	CorrectInSession   []string
	IncorrectInSession []string
	StartTime          time.Time

	// pending keeps every verdict in answer order so card statistics can
	// be applied as a single batch when the session finishes.
	pending []card.AnswerUpdate
}

// NewActiveLearningSession starts a review over a shuffled copy of the
// candidate card ids.
func NewActiveLearningSession(cardIDs []string, startTime time.Time) *ActiveLearningSession {
	shuffled := make([]string, len(cardIDs))
	copy(shuffled, cardIDs)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	return &ActiveLearningSession{
		CardIDs:   shuffled,
		StartTime: startTime,
	}
}

// CurrentCardID returns the id under review, or "" past the last card.
func (s *ActiveLearningSession) CurrentCardID() string {
	if s.CurrentIndex < 0 || s.CurrentIndex >= len(s.CardIDs) {
		return ""
	}
	return s.CardIDs[s.CurrentIndex]
}

// Flip turns the current card over.
func (s *ActiveLearningSession) Flip() {
	s.IsFlipped = !s.IsFlipped
}

// Next advances to the following card, face down.
func (s *ActiveLearningSession) Next() {
	s.CurrentIndex++
	s.IsFlipped = false
}

// Previous steps back one card, face down. Floors at the first card.
func (s *ActiveLearningSession) Previous() {
	if s.CurrentIndex > 0 {
		s.CurrentIndex--
	}
	s.IsFlipped = false
}

// RecordAnswer notes the verdict for a card in this session.
func (s *ActiveLearningSession) RecordAnswer(cardID string, wasCorrect bool) {
	if wasCorrect {
		s.CorrectInSession = append(s.CorrectInSession, cardID)
	} else {
		s.IncorrectInSession = append(s.IncorrectInSession, cardID)
	}
	s.pending = append(s.pending, card.AnswerUpdate{CardID: cardID, WasCorrect: wasCorrect})
}

// PendingUpdates returns the collected verdicts in answer order.
func (s *ActiveLearningSession) PendingUpdates() []card.AnswerUpdate {
	return s.pending
}

// Finish converts the active state into the immutable session record.
func (s *ActiveLearningSession) Finish(now time.Time) LearningSession {
	duration := int(now.Sub(s.StartTime) / time.Second)
	if duration < 0 {
		duration = 0
	}

	return LearningSession{
		ID:              id.NewID(),
		Date:            now,
		CardsReviewed:   s.CardIDs,
		CorrectCards:    s.CorrectInSession,
		IncorrectCards:  s.IncorrectInSession,
		DurationSeconds: duration,
	}
}
