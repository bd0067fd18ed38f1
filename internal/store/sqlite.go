package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/palabras/backend/internal/domain/card"
	"github.com/palabras/backend/internal/domain/session"
)

const schema = `
CREATE TABLE IF NOT EXISTS cards (
    id TEXT PRIMARY KEY,
    spanish TEXT NOT NULL,
    english TEXT NOT NULL,
    notes TEXT NOT NULL DEFAULT '',
    created_at INTEGER NOT NULL,
    updated_at INTEGER NOT NULL,
    times_shown INTEGER NOT NULL,
    times_correct INTEGER NOT NULL,
    times_incorrect INTEGER NOT NULL,
    last_reviewed INTEGER,
    success_rate INTEGER NOT NULL,
    status TEXT NOT NULL,
    consecutive_correct INTEGER NOT NULL,
    position INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS learning_sessions (
    id TEXT PRIMARY KEY,
    date INTEGER NOT NULL,
    cards_reviewed TEXT NOT NULL,
    correct_cards TEXT NOT NULL,
    incorrect_cards TEXT NOT NULL,
    duration_seconds INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS quiz_sessions (
    id TEXT PRIMARY KEY,
    quiz_type TEXT NOT NULL,
    date INTEGER NOT NULL,
    questions TEXT NOT NULL,
    score_percent INTEGER NOT NULL,
    completed INTEGER NOT NULL
);
`

// SQLiteStore keeps each collection in its own table. Card id lists and
// quiz questions are stored as JSON text; the position column preserves
// collection order across SaveCards round-trips. A mutex serializes
// writers, making the single-writer assumption explicit instead of
// relying on callers to never overlap.
type SQLiteStore struct {
	db *sql.DB
	mu sync.Mutex
}

func NewSQLite(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// ============================================================================
// Cards
// ============================================================================

func (s *SQLiteStore) LoadCards(ctx context.Context) ([]card.Flashcard, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, spanish, english, notes, created_at, updated_at,
		       times_shown, times_correct, times_incorrect, last_reviewed,
		       success_rate, status, consecutive_correct
		FROM cards ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cards []card.Flashcard
	for rows.Next() {
		var rec cardRecord
		var lastReviewed sql.NullInt64
		if err := rows.Scan(
			&rec.ID, &rec.Spanish, &rec.English, &rec.Notes,
			&rec.CreatedAt, &rec.UpdatedAt,
			&rec.TimesShown, &rec.TimesCorrect, &rec.TimesIncorrect, &lastReviewed,
			&rec.SuccessRate, &rec.Status, &rec.ConsecutiveCorrect,
		); err != nil {
			return nil, err
		}
		if lastReviewed.Valid {
			rec.LastReviewed = &lastReviewed.Int64
		}
		cards = append(cards, decodeCard(rec))
	}
	return cards, rows.Err()
}

// SaveCards replaces the whole collection in one transaction: either every
// card from this read-modify-write cycle lands, or none do.
func (s *SQLiteStore) SaveCards(ctx context.Context, cards []card.Flashcard) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM cards"); err != nil {
		return err
	}

	for i, c := range cards {
		rec := encodeCard(c)
		var lastReviewed sql.NullInt64
		if rec.LastReviewed != nil {
			lastReviewed = sql.NullInt64{Int64: *rec.LastReviewed, Valid: true}
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO cards (
			    id, spanish, english, notes, created_at, updated_at,
			    times_shown, times_correct, times_incorrect, last_reviewed,
			    success_rate, status, consecutive_correct, position
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			rec.ID, rec.Spanish, rec.English, rec.Notes,
			rec.CreatedAt, rec.UpdatedAt,
			rec.TimesShown, rec.TimesCorrect, rec.TimesIncorrect, lastReviewed,
			rec.SuccessRate, rec.Status, rec.ConsecutiveCorrect, i,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// ============================================================================
// Learning sessions
// ============================================================================

func (s *SQLiteStore) LoadLearningSessions(ctx context.Context) ([]session.LearningSession, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, date, cards_reviewed, correct_cards, incorrect_cards, duration_seconds
		FROM learning_sessions ORDER BY date`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []session.LearningSession
	for rows.Next() {
		var rec learningSessionRecord
		var reviewed, correct, incorrect string
		if err := rows.Scan(&rec.ID, &rec.Date, &reviewed, &correct, &incorrect, &rec.DurationSeconds); err != nil {
			return nil, err
		}
		if err := unmarshalIDList(reviewed, &rec.CardsReviewed); err != nil {
			return nil, err
		}
		if err := unmarshalIDList(correct, &rec.CorrectCards); err != nil {
			return nil, err
		}
		if err := unmarshalIDList(incorrect, &rec.IncorrectCards); err != nil {
			return nil, err
		}
		sessions = append(sessions, decodeLearningSession(rec))
	}
	return sessions, rows.Err()
}

func (s *SQLiteStore) AppendLearningSession(ctx context.Context, ls session.LearningSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := encodeLearningSession(ls)
	reviewed, err := marshalIDList(rec.CardsReviewed)
	if err != nil {
		return err
	}
	correct, err := marshalIDList(rec.CorrectCards)
	if err != nil {
		return err
	}
	incorrect, err := marshalIDList(rec.IncorrectCards)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO learning_sessions (id, date, cards_reviewed, correct_cards, incorrect_cards, duration_seconds)
		VALUES (?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Date, reviewed, correct, incorrect, rec.DurationSeconds,
	)
	return err
}

// ============================================================================
// Quiz sessions
// ============================================================================

func (s *SQLiteStore) LoadQuizSessions(ctx context.Context) ([]session.QuizSession, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, quiz_type, date, questions, score_percent, completed
		FROM quiz_sessions ORDER BY date`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []session.QuizSession
	for rows.Next() {
		var rec quizSessionRecord
		var questions string
		if err := rows.Scan(&rec.ID, &rec.Type, &rec.Date, &questions, &rec.ScorePercent, &rec.Completed); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(questions), &rec.Questions); err != nil {
			return nil, fmt.Errorf("decode questions for quiz session %s: %w", rec.ID, err)
		}
		sessions = append(sessions, decodeQuizSession(rec))
	}
	return sessions, rows.Err()
}

func (s *SQLiteStore) AppendQuizSession(ctx context.Context, qs session.QuizSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := encodeQuizSession(qs)
	questions, err := json.Marshal(rec.Questions)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO quiz_sessions (id, quiz_type, date, questions, score_percent, completed)
		VALUES (?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Type, rec.Date, string(questions), rec.ScorePercent, rec.Completed,
	)
	return err
}

func marshalIDList(ids []string) (string, error) {
	if ids == nil {
		ids = []string{}
	}
	b, err := json.Marshal(ids)
	return string(b), err
}

func unmarshalIDList(raw string, dst *[]string) error {
	return json.Unmarshal([]byte(raw), dst)
}
