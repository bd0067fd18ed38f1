package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/palabras/backend/internal/analytics"
	"github.com/palabras/backend/internal/domain/card"
	"github.com/palabras/backend/internal/domain/session"
	"github.com/palabras/backend/internal/id"
	"github.com/palabras/backend/internal/quiz"
	"github.com/palabras/backend/internal/store"
)

var ErrInvalidQuizType = errors.New("quiz type must be multiple-choice or fill-in-blank")

// SessionService records finished learning and quiz sessions and answers
// the history/statistics queries over them.
type SessionService struct {
	store  store.Store
	logger *slog.Logger
	now    func() time.Time
}

func NewSessionService(s store.Store, logger *slog.Logger) *SessionService {
	return &SessionService{
		store:  s,
		logger: logger,
		now:    time.Now,
	}
}

// ── Learning sessions ───────────────────────────────────────────────────────

// LearningResult is the material of a finished review run as reported by
// the reviewing client.
type LearningResult struct {
	CardsReviewed   []string
	CorrectCards    []string
	IncorrectCards  []string
	DurationSeconds int
}

// RecordLearning batch-updates the statistics of every answered card
// (one read-modify-write over the collection), then appends the session
// record to history. Statistics land before the session record so a
// failure in between cannot record a session whose cards were never
// scored.
func (ss *SessionService) RecordLearning(ctx context.Context, result LearningResult) (session.LearningSession, error) {
	updates := make([]card.AnswerUpdate, 0, len(result.CorrectCards)+len(result.IncorrectCards))
	for _, cardID := range result.CorrectCards {
		updates = append(updates, card.AnswerUpdate{CardID: cardID, WasCorrect: true})
	}
	for _, cardID := range result.IncorrectCards {
		updates = append(updates, card.AnswerUpdate{CardID: cardID, WasCorrect: false})
	}

	ls := session.LearningSession{
		ID:              id.NewID(),
		Date:            ss.now(),
		CardsReviewed:   result.CardsReviewed,
		CorrectCards:    result.CorrectCards,
		IncorrectCards:  result.IncorrectCards,
		DurationSeconds: result.DurationSeconds,
	}
	return ls, ss.persistLearning(ctx, ls, updates)
}

// FinishLearning converts an in-process active session into its history
// record, applying the collected verdicts in answer order.
func (ss *SessionService) FinishLearning(ctx context.Context, active *session.ActiveLearningSession) (session.LearningSession, error) {
	ls := active.Finish(ss.now())
	return ls, ss.persistLearning(ctx, ls, active.PendingUpdates())
}

func (ss *SessionService) persistLearning(ctx context.Context, ls session.LearningSession, updates []card.AnswerUpdate) error {
	if len(updates) > 0 {
		cards, err := ss.store.LoadCards(ctx)
		if err != nil {
			return err
		}
		card.ApplyAnswers(cards, updates, ls.Date)
		if err := ss.store.SaveCards(ctx, cards); err != nil {
			return fmt.Errorf("save card statistics: %w", err)
		}
	}

	if err := ss.store.AppendLearningSession(ctx, ls); err != nil {
		return fmt.Errorf("append learning session: %w", err)
	}

	ss.logger.Info("learning session recorded",
		"session_id", ls.ID,
		"cards_reviewed", len(ls.CardsReviewed),
		"correct", len(ls.CorrectCards),
		"incorrect", len(ls.IncorrectCards),
		"duration_seconds", ls.DurationSeconds,
	)
	return nil
}

func (ss *SessionService) LearningSessions(ctx context.Context) ([]session.LearningSession, error) {
	return ss.store.LoadLearningSessions(ctx)
}

// ── Quizzes ─────────────────────────────────────────────────────────────────

// BuildQuiz generates a quiz over the current card collection.
func (ss *SessionService) BuildQuiz(ctx context.Context, quizType session.QuizType, count int) ([]session.QuizQuestion, error) {
	if !quizType.Valid() {
		return nil, ErrInvalidQuizType
	}
	cards, err := ss.store.LoadCards(ctx)
	if err != nil {
		return nil, err
	}
	return quiz.BuildQuiz(quizType, cards, count), nil
}

// FinalizeQuiz scores a completed quiz, applies every question's verdict
// to its card, appends the session to history and returns it. Card
// statistics are persisted before the session record; a storage failure
// propagates without retry and already-applied statistics stay applied.
func (ss *SessionService) FinalizeQuiz(ctx context.Context, quizType session.QuizType, questions []session.QuizQuestion) (session.QuizSession, error) {
	if !quizType.Valid() {
		return session.QuizSession{}, ErrInvalidQuizType
	}

	qs := session.NewQuizSession(quizType, questions, ss.now())

	updates := make([]card.AnswerUpdate, len(questions))
	for i, q := range questions {
		updates[i] = card.AnswerUpdate{CardID: q.CardID, WasCorrect: q.WasCorrect}
	}

	if len(updates) > 0 {
		cards, err := ss.store.LoadCards(ctx)
		if err != nil {
			return session.QuizSession{}, err
		}
		card.ApplyAnswers(cards, updates, qs.Date)
		if err := ss.store.SaveCards(ctx, cards); err != nil {
			return session.QuizSession{}, fmt.Errorf("save card statistics: %w", err)
		}
	}

	if err := ss.store.AppendQuizSession(ctx, qs); err != nil {
		return session.QuizSession{}, fmt.Errorf("append quiz session: %w", err)
	}

	ss.logger.Info("quiz finalized",
		"session_id", qs.ID,
		"type", qs.Type,
		"questions", len(qs.Questions),
		"score", qs.ScorePercent,
	)
	return qs, nil
}

// QuizSessions lists quiz history, optionally filtered by type.
func (ss *SessionService) QuizSessions(ctx context.Context, quizType session.QuizType) ([]session.QuizSession, error) {
	sessions, err := ss.store.LoadQuizSessions(ctx)
	if err != nil {
		return nil, err
	}
	if quizType == "" {
		return sessions, nil
	}

	var filtered []session.QuizSession
	for _, s := range sessions {
		if s.Type == quizType {
			filtered = append(filtered, s)
		}
	}
	return filtered, nil
}

// AverageQuizScore returns the rounded mean score across quiz history,
// optionally filtered by type; 0 when there is no history.
func (ss *SessionService) AverageQuizScore(ctx context.Context, quizType session.QuizType) (int, error) {
	sessions, err := ss.QuizSessions(ctx, quizType)
	if err != nil {
		return 0, err
	}
	if len(sessions) == 0 {
		return 0, nil
	}

	total := 0
	for _, s := range sessions {
		total += s.ScorePercent
	}
	return int(float64(total)/float64(len(sessions)) + 0.5), nil
}

// ── Aggregations ────────────────────────────────────────────────────────────

func (ss *SessionService) Streaks(ctx context.Context) (analytics.Streaks, error) {
	sessions, err := ss.store.LoadLearningSessions(ctx)
	if err != nil {
		return analytics.Streaks{}, err
	}
	return analytics.ComputeStreaks(sessions, ss.now()), nil
}

func (ss *SessionService) DailyActivity(ctx context.Context, days int) ([]analytics.DailyActivity, error) {
	sessions, err := ss.store.LoadLearningSessions(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.ComputeDailyActivity(sessions, days, ss.now()), nil
}

func (ss *SessionService) OverallStats(ctx context.Context) (analytics.OverallStats, error) {
	sessions, err := ss.store.LoadLearningSessions(ctx)
	if err != nil {
		return analytics.OverallStats{}, err
	}
	return analytics.ComputeOverallStats(sessions), nil
}
