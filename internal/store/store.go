// Package store persists the three record collections of the trainer:
// cards, learning sessions and quiz sessions. Two backends implement the
// same contract: a sqlite database and a single-document JSON file.
package store

import (
	"context"
	"errors"

	"github.com/palabras/backend/internal/domain/card"
	"github.com/palabras/backend/internal/domain/session"
)

var ErrNotFound = errors.New("not found")

// Store is the storage contract the engine depends on. SaveCards replaces
// the whole collection in one write, so a batch statistics update is a
// single read-modify-write unit. Failures propagate to the caller
// unchanged; no backend retries.
type Store interface {
	LoadCards(ctx context.Context) ([]card.Flashcard, error)
	SaveCards(ctx context.Context, cards []card.Flashcard) error

	LoadLearningSessions(ctx context.Context) ([]session.LearningSession, error)
	AppendLearningSession(ctx context.Context, s session.LearningSession) error

	LoadQuizSessions(ctx context.Context) ([]session.QuizSession, error)
	AppendQuizSession(ctx context.Context, s session.QuizSession) error

	Close() error
}
