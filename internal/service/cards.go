// Package service coordinates the domain engines with the storage
// collaborator. Every mutating operation is one read-modify-write unit
// over the affected collection; storage failures propagate unchanged.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/palabras/backend/internal/domain/card"
	"github.com/palabras/backend/internal/store"
)

var ErrDuplicateCard = errors.New("a card with this spanish term already exists")

// CardService owns the card collection: CRUD, answer recording and the
// review queue.
type CardService struct {
	store  store.Store
	logger *slog.Logger
	now    func() time.Time
}

func NewCardService(s store.Store, logger *slog.Logger) *CardService {
	return &CardService{
		store:  s,
		logger: logger,
		now:    time.Now,
	}
}

func (cs *CardService) List(ctx context.Context) ([]card.Flashcard, error) {
	return cs.store.LoadCards(ctx)
}

func (cs *CardService) Search(ctx context.Context, query string) ([]card.Flashcard, error) {
	cards, err := cs.store.LoadCards(ctx)
	if err != nil {
		return nil, err
	}
	return card.Search(cards, query), nil
}

func (cs *CardService) Get(ctx context.Context, id string) (card.Flashcard, error) {
	cards, err := cs.store.LoadCards(ctx)
	if err != nil {
		return card.Flashcard{}, err
	}
	for _, c := range cards {
		if c.ID == id {
			return c, nil
		}
	}
	return card.Flashcard{}, store.ErrNotFound
}

// Create validates the input, rejects duplicate spanish terms and appends
// the new card. Nothing is persisted when validation fails.
func (cs *CardService) Create(ctx context.Context, spanish, english, notes string) (card.Flashcard, error) {
	cards, err := cs.store.LoadCards(ctx)
	if err != nil {
		return card.Flashcard{}, err
	}

	c, err := card.New(spanish, english, notes, cs.now())
	if err != nil {
		return card.Flashcard{}, err
	}
	if card.IsDuplicate(cards, c.Spanish, "") {
		return card.Flashcard{}, ErrDuplicateCard
	}

	cards = append(cards, *c)
	if err := cs.store.SaveCards(ctx, cards); err != nil {
		return card.Flashcard{}, fmt.Errorf("save cards: %w", err)
	}

	cs.logger.Info("card created", "card_id", c.ID, "spanish", c.Spanish)
	return *c, nil
}

// Update rewrites the text fields of an existing card. The duplicate
// check ignores the card itself so saving an unchanged term succeeds.
func (cs *CardService) Update(ctx context.Context, id, spanish, english, notes string) (card.Flashcard, error) {
	cards, err := cs.store.LoadCards(ctx)
	if err != nil {
		return card.Flashcard{}, err
	}

	index := -1
	for i := range cards {
		if cards[i].ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		return card.Flashcard{}, store.ErrNotFound
	}

	if card.IsDuplicate(cards, spanish, id) {
		return card.Flashcard{}, ErrDuplicateCard
	}
	if err := cards[index].SetTerms(spanish, english, notes, cs.now()); err != nil {
		return card.Flashcard{}, err
	}

	if err := cs.store.SaveCards(ctx, cards); err != nil {
		return card.Flashcard{}, fmt.Errorf("save cards: %w", err)
	}
	return cards[index], nil
}

func (cs *CardService) Delete(ctx context.Context, id string) error {
	cards, err := cs.store.LoadCards(ctx)
	if err != nil {
		return err
	}

	remaining := cards[:0]
	for _, c := range cards {
		if c.ID != id {
			remaining = append(remaining, c)
		}
	}
	if len(remaining) == len(cards) {
		return store.ErrNotFound
	}

	if err := cs.store.SaveCards(ctx, remaining); err != nil {
		return fmt.Errorf("save cards: %w", err)
	}
	cs.logger.Info("card deleted", "card_id", id)
	return nil
}

// RecordAnswer applies a single review verdict to one card.
func (cs *CardService) RecordAnswer(ctx context.Context, id string, wasCorrect bool) (card.Flashcard, error) {
	cards, err := cs.store.LoadCards(ctx)
	if err != nil {
		return card.Flashcard{}, err
	}

	for i := range cards {
		if cards[i].ID != id {
			continue
		}
		cards[i].ApplyAnswer(wasCorrect, cs.now())
		if err := cs.store.SaveCards(ctx, cards); err != nil {
			return card.Flashcard{}, fmt.Errorf("save cards: %w", err)
		}
		return cards[i], nil
	}
	return card.Flashcard{}, store.ErrNotFound
}

// RecordAnswers applies a batch of verdicts with a single load and a
// single save. Unknown card ids are skipped, not counted and not an
// error: one bad id must not abort the rest of the batch.
func (cs *CardService) RecordAnswers(ctx context.Context, updates []card.AnswerUpdate) (int, error) {
	if len(updates) == 0 {
		return 0, nil
	}

	cards, err := cs.store.LoadCards(ctx)
	if err != nil {
		return 0, err
	}

	updated := card.ApplyAnswers(cards, updates, cs.now())
	if updated < len(updates) {
		cs.logger.Warn("batch update skipped unknown cards",
			"requested", len(updates), "applied", updated)
	}

	if err := cs.store.SaveCards(ctx, cards); err != nil {
		return 0, fmt.Errorf("save cards: %w", err)
	}
	return updated, nil
}

// DueForReview returns the re-study queue, weakest cards first.
func (cs *CardService) DueForReview(ctx context.Context) ([]card.Flashcard, error) {
	cards, err := cs.store.LoadCards(ctx)
	if err != nil {
		return nil, err
	}
	return card.DueForReview(cards), nil
}
