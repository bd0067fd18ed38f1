package session

import (
	"strings"
	"time"

	"github.com/palabras/backend/internal/id"
)

// QuizType selects how quiz questions are presented.
type QuizType string

const (
	QuizMultipleChoice QuizType = "multiple-choice"
	QuizFillInBlank    QuizType = "fill-in-blank"
)

// Valid reports whether t is one of the known quiz types.
func (t QuizType) Valid() bool {
	return t == QuizMultipleChoice || t == QuizFillInBlank
}

// QuizQuestion is one generated question. Options always contains
// CorrectAnswer exactly once, at CorrectIndex. UserAnswer and WasCorrect
// stay zero until the answering flow fills them in.
type QuizQuestion struct {
	ID            string
	CardID        string
	Prompt        string
	Options       []string
	CorrectIndex  int
	CorrectAnswer string
	UserAnswer    string
	WasCorrect    bool
}

// QuizSession is one finished quiz. Immutable once recorded.
type QuizSession struct {
	ID           string
	Type         QuizType
	Date         time.Time
	Questions    []QuizQuestion
	ScorePercent int
	Completed    bool
}

// NewQuizSession builds the completed session record for a set of
// answered questions.
func NewQuizSession(quizType QuizType, questions []QuizQuestion, now time.Time) QuizSession {
	return QuizSession{
		ID:           id.NewID(),
		Type:         quizType,
		Date:         now,
		Questions:    questions,
		ScorePercent: Score(questions),
		Completed:    true,
	}
}

// Score returns the rounded percentage of correctly answered questions,
// 0 for an empty question list.
func Score(questions []QuizQuestion) int {
	if len(questions) == 0 {
		return 0
	}
	correct := 0
	for _, q := range questions {
		if q.WasCorrect {
			correct++
		}
	}
	return int(float64(correct)/float64(len(questions))*100 + 0.5)
}

// ActiveQuizSession is the in-progress quiz state.
type ActiveQuizSession struct {
	Type         QuizType
	Questions    []QuizQuestion
	CurrentIndex int
	StartTime    time.Time
}

// NewActiveQuizSession starts a quiz over pre-generated questions.
func NewActiveQuizSession(quizType QuizType, questions []QuizQuestion, startTime time.Time) *ActiveQuizSession {
	return &ActiveQuizSession{
		Type:      quizType,
		Questions: questions,
		StartTime: startTime,
	}
}

// Done reports whether every question has been answered.
func (s *ActiveQuizSession) Done() bool {
	return s.CurrentIndex >= len(s.Questions)
}

// AnswerCurrent records the user's answer for the current question,
// grades it by trimmed case-insensitive comparison with the correct
// answer, and advances. Answering past the last question is a no-op.
func (s *ActiveQuizSession) AnswerCurrent(userAnswer string) {
	if s.Done() {
		return
	}
	q := &s.Questions[s.CurrentIndex]
	q.UserAnswer = userAnswer
	q.WasCorrect = strings.EqualFold(
		strings.TrimSpace(userAnswer),
		strings.TrimSpace(q.CorrectAnswer),
	)
	s.CurrentIndex++
}
