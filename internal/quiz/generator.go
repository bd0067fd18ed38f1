// Package quiz builds multiple-choice and fill-in-blank questions from a
// card pool. All functions are pure over their inputs; randomness is not
// seeded because reproducibility is not part of the contract.
package quiz

import (
	"fmt"
	"math/rand"

	"github.com/lithammer/shortuuid/v4"

	"github.com/palabras/backend/internal/domain/card"
	"github.com/palabras/backend/internal/domain/session"
)

// multiple-choice questions always show exactly this many options.
const multipleChoiceOptions = 4

// NewMultipleChoiceQuestion builds a question for target with exactly four
// options: the card's english term plus three distractors drawn from the
// distinct english terms of the rest of the pool. If the pool cannot supply
// three distinct distractors, numbered filler derived from the correct
// answer pads the list.
func NewMultipleChoiceQuestion(target card.Flashcard, pool []card.Flashcard) session.QuizQuestion {
	correct := target.English

	distractors := shuffle(distractorPool(target, pool))
	if len(distractors) > multipleChoiceOptions-1 {
		distractors = distractors[:multipleChoiceOptions-1]
	}
	for i := 1; len(distractors) < multipleChoiceOptions-1; i++ {
		distractors = append(distractors, fmt.Sprintf("%s (wrong %d)", correct, i))
	}

	return newQuestion(target, correct, distractors)
}

// NewFillInBlankQuestion builds a question for target with 4-6 options:
// the correct answer plus 3-5 distractors, the count chosen uniformly per
// question. Unlike multiple choice this mode tolerates a short option list
// when the pool lacks distinct distractors, so it never pads.
func NewFillInBlankQuestion(target card.Flashcard, pool []card.Flashcard) session.QuizQuestion {
	want := 3 + rand.Intn(3) // 3, 4 or 5 distractors

	distractors := shuffle(distractorPool(target, pool))
	if len(distractors) > want {
		distractors = distractors[:want]
	}

	return newQuestion(target, target.English, distractors)
}

// BuildQuiz selects min(count, len(pool)) distinct cards at random and
// builds one question per card. The full pool stays the distractor source
// so variety is not limited by the quiz size. An empty pool yields an
// empty quiz.
func BuildQuiz(mode session.QuizType, pool []card.Flashcard, count int) []session.QuizQuestion {
	if len(pool) == 0 || count <= 0 {
		return nil
	}
	if count > len(pool) {
		count = len(pool)
	}

	selected := shuffle(pool)[:count]

	questions := make([]session.QuizQuestion, len(selected))
	for i, c := range selected {
		if mode == session.QuizFillInBlank {
			questions[i] = NewFillInBlankQuestion(c, pool)
		} else {
			questions[i] = NewMultipleChoiceQuestion(c, pool)
		}
	}
	return questions
}

// distractorPool collects the distinct english terms of every other card,
// excluding any value equal to the target's own answer.
func distractorPool(target card.Flashcard, pool []card.Flashcard) []string {
	seen := make(map[string]struct{}, len(pool))
	var values []string
	for _, c := range pool {
		if c.ID == target.ID || c.English == target.English {
			continue
		}
		if _, ok := seen[c.English]; ok {
			continue
		}
		seen[c.English] = struct{}{}
		values = append(values, c.English)
	}
	return values
}

func newQuestion(target card.Flashcard, correct string, distractors []string) session.QuizQuestion {
	options := shuffle(append([]string{correct}, distractors...))

	correctIndex := 0
	for i, opt := range options {
		if opt == correct {
			correctIndex = i
			break
		}
	}

	return session.QuizQuestion{
		ID:            shortuuid.New(),
		CardID:        target.ID,
		Prompt:        target.Spanish,
		Options:       options,
		CorrectIndex:  correctIndex,
		CorrectAnswer: correct,
	}
}

// shuffle returns a Fisher-Yates shuffled copy, leaving the input intact.
func shuffle[T any](items []T) []T {
	shuffled := make([]T, len(items))
	copy(shuffled, items)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}
