package store

import (
	"time"

	"github.com/palabras/backend/internal/domain/card"
	"github.com/palabras/backend/internal/domain/session"
)

// Wire shapes shared by both backends: the file store persists them as one
// document, the sqlite store uses the slice shapes for JSON-encoded
// columns. Timestamps travel as unix milliseconds.

type cardRecord struct {
	ID                 string `json:"id"`
	Spanish            string `json:"spanish"`
	English            string `json:"english"`
	Notes              string `json:"notes,omitempty"`
	CreatedAt          int64  `json:"created_at"`
	UpdatedAt          int64  `json:"updated_at"`
	TimesShown         int    `json:"times_shown"`
	TimesCorrect       int    `json:"times_correct"`
	TimesIncorrect     int    `json:"times_incorrect"`
	LastReviewed       *int64 `json:"last_reviewed"`
	SuccessRate        int    `json:"success_rate"`
	Status             string `json:"status"`
	ConsecutiveCorrect int    `json:"consecutive_correct"`
}

type learningSessionRecord struct {
	ID              string   `json:"id"`
	Date            int64    `json:"date"`
	CardsReviewed   []string `json:"cards_reviewed"`
	CorrectCards    []string `json:"correct_cards"`
	IncorrectCards  []string `json:"incorrect_cards"`
	DurationSeconds int      `json:"duration_seconds"`
}

type quizQuestionRecord struct {
	ID            string   `json:"id"`
	CardID        string   `json:"card_id"`
	Prompt        string   `json:"prompt"`
	Options       []string `json:"options"`
	CorrectIndex  int      `json:"correct_index"`
	CorrectAnswer string   `json:"correct_answer"`
	UserAnswer    string   `json:"user_answer"`
	WasCorrect    bool     `json:"was_correct"`
}

type quizSessionRecord struct {
	ID           string               `json:"id"`
	Type         string               `json:"type"`
	Date         int64                `json:"date"`
	Questions    []quizQuestionRecord `json:"questions"`
	ScorePercent int                  `json:"score_percent"`
	Completed    bool                 `json:"completed"`
}

func encodeCard(c card.Flashcard) cardRecord {
	rec := cardRecord{
		ID:                 c.ID,
		Spanish:            c.Spanish,
		English:            c.English,
		Notes:              c.Notes,
		CreatedAt:          c.CreatedAt.UnixMilli(),
		UpdatedAt:          c.UpdatedAt.UnixMilli(),
		TimesShown:         c.Statistics.TimesShown,
		TimesCorrect:       c.Statistics.TimesCorrect,
		TimesIncorrect:     c.Statistics.TimesIncorrect,
		SuccessRate:        c.Statistics.SuccessRate,
		Status:             string(c.Statistics.Status),
		ConsecutiveCorrect: c.Statistics.ConsecutiveCorrect,
	}
	if c.Statistics.LastReviewed != nil {
		ms := c.Statistics.LastReviewed.UnixMilli()
		rec.LastReviewed = &ms
	}
	return rec
}

func decodeCard(rec cardRecord) card.Flashcard {
	c := card.Flashcard{
		ID:        rec.ID,
		Spanish:   rec.Spanish,
		English:   rec.English,
		Notes:     rec.Notes,
		CreatedAt: time.UnixMilli(rec.CreatedAt),
		UpdatedAt: time.UnixMilli(rec.UpdatedAt),
		Statistics: card.Statistics{
			TimesShown:         rec.TimesShown,
			TimesCorrect:       rec.TimesCorrect,
			TimesIncorrect:     rec.TimesIncorrect,
			SuccessRate:        rec.SuccessRate,
			Status:             card.Status(rec.Status),
			ConsecutiveCorrect: rec.ConsecutiveCorrect,
		},
	}
	if rec.LastReviewed != nil {
		t := time.UnixMilli(*rec.LastReviewed)
		c.Statistics.LastReviewed = &t
	}
	return c
}

func encodeLearningSession(s session.LearningSession) learningSessionRecord {
	return learningSessionRecord{
		ID:              s.ID,
		Date:            s.Date.UnixMilli(),
		CardsReviewed:   s.CardsReviewed,
		CorrectCards:    s.CorrectCards,
		IncorrectCards:  s.IncorrectCards,
		DurationSeconds: s.DurationSeconds,
	}
}

func decodeLearningSession(rec learningSessionRecord) session.LearningSession {
	return session.LearningSession{
		ID:              rec.ID,
		Date:            time.UnixMilli(rec.Date),
		CardsReviewed:   rec.CardsReviewed,
		CorrectCards:    rec.CorrectCards,
		IncorrectCards:  rec.IncorrectCards,
		DurationSeconds: rec.DurationSeconds,
	}
}

func encodeQuizQuestions(questions []session.QuizQuestion) []quizQuestionRecord {
	records := make([]quizQuestionRecord, len(questions))
	for i, q := range questions {
		records[i] = quizQuestionRecord{
			ID:            q.ID,
			CardID:        q.CardID,
			Prompt:        q.Prompt,
			Options:       q.Options,
			CorrectIndex:  q.CorrectIndex,
			CorrectAnswer: q.CorrectAnswer,
			UserAnswer:    q.UserAnswer,
			WasCorrect:    q.WasCorrect,
		}
	}
	return records
}

func decodeQuizQuestions(records []quizQuestionRecord) []session.QuizQuestion {
	questions := make([]session.QuizQuestion, len(records))
	for i, rec := range records {
		questions[i] = session.QuizQuestion{
			ID:            rec.ID,
			CardID:        rec.CardID,
			Prompt:        rec.Prompt,
			Options:       rec.Options,
			CorrectIndex:  rec.CorrectIndex,
			CorrectAnswer: rec.CorrectAnswer,
			UserAnswer:    rec.UserAnswer,
			WasCorrect:    rec.WasCorrect,
		}
	}
	return questions
}

func encodeQuizSession(s session.QuizSession) quizSessionRecord {
	return quizSessionRecord{
		ID:           s.ID,
		Type:         string(s.Type),
		Date:         s.Date.UnixMilli(),
		Questions:    encodeQuizQuestions(s.Questions),
		ScorePercent: s.ScorePercent,
		Completed:    s.Completed,
	}
}

func decodeQuizSession(rec quizSessionRecord) session.QuizSession {
	return session.QuizSession{
		ID:           rec.ID,
		Type:         session.QuizType(rec.Type),
		Date:         time.UnixMilli(rec.Date),
		Questions:    decodeQuizQuestions(rec.Questions),
		ScorePercent: rec.ScorePercent,
		Completed:    rec.Completed,
	}
}
