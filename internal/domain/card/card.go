package card

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/palabras/backend/internal/id"
)

// Status classifies a card by its cumulative performance.
type Status string

const (
	StatusNew      Status = "new"
	StatusLearning Status = "learning"
	StatusLearned  Status = "learned"
)

// A card counts as learned once it has been shown at least LearnedMinShown
// times with a success rate of at least LearnedMinRate percent. The same
// rate threshold decides review eligibility.
const (
	LearnedMinShown = 3
	LearnedMinRate  = 70
)

const (
	maxTermLen  = 200
	maxNotesLen = 500
)

var (
	ErrEmptySpanish = errors.New("spanish term cannot be empty")
	ErrEmptyEnglish = errors.New("english term cannot be empty")
	ErrTermTooLong  = fmt.Errorf("term cannot exceed %d characters", maxTermLen)
	ErrNotesTooLong = fmt.Errorf("notes cannot exceed %d characters", maxNotesLen)
)

// Statistics tracks the cumulative review performance of one card.
// The four counters plus the derived fields always change together;
// ApplyAnswer is the only mutation path.
type Statistics struct {
	TimesShown         int
	TimesCorrect       int
	TimesIncorrect     int
	LastReviewed       *time.Time
	SuccessRate        int // 0-100
	Status             Status
	ConsecutiveCorrect int
}

// Flashcard is one vocabulary pair under study.
type Flashcard struct {
	ID         string
	Spanish    string // front
	English    string // back
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	Statistics Statistics
}

// New creates a Flashcard with trimmed fields and all-zero statistics.
func New(spanish, english, notes string, now time.Time) (*Flashcard, error) {
	spanish = strings.TrimSpace(spanish)
	english = strings.TrimSpace(english)
	notes = strings.TrimSpace(notes)

	if err := validate(spanish, english, notes); err != nil {
		return nil, err
	}

	return &Flashcard{
		ID:        id.NewID(),
		Spanish:   spanish,
		English:   english,
		Notes:     notes,
		CreatedAt: now,
		UpdatedAt: now,
		Statistics: Statistics{
			Status: StatusNew,
		},
	}, nil
}

// SetTerms updates the text fields of a card, leaving statistics untouched.
func (c *Flashcard) SetTerms(spanish, english, notes string, now time.Time) error {
	spanish = strings.TrimSpace(spanish)
	english = strings.TrimSpace(english)
	notes = strings.TrimSpace(notes)

	if err := validate(spanish, english, notes); err != nil {
		return err
	}

	c.Spanish = spanish
	c.English = english
	c.Notes = notes
	c.UpdatedAt = now
	return nil
}

func validate(spanish, english, notes string) error {
	if spanish == "" {
		return ErrEmptySpanish
	}
	if english == "" {
		return ErrEmptyEnglish
	}
	if len(spanish) > maxTermLen || len(english) > maxTermLen {
		return ErrTermTooLong
	}
	if len(notes) > maxNotesLen {
		return ErrNotesTooLong
	}
	return nil
}

// ApplyAnswer records one review verdict and recomputes the derived
// statistics. SuccessRate and Status are always derived fresh from the
// counters, so a later wrong answer can move a card back from learned
// to learning.
func (c *Flashcard) ApplyAnswer(wasCorrect bool, now time.Time) {
	s := &c.Statistics

	s.TimesShown++
	if wasCorrect {
		s.TimesCorrect++
		s.ConsecutiveCorrect++
	} else {
		s.TimesIncorrect++
		s.ConsecutiveCorrect = 0
	}

	s.LastReviewed = &now
	s.SuccessRate = successRate(*s)
	s.Status = statusFor(*s)
	c.UpdatedAt = now
}

func successRate(s Statistics) int {
	if s.TimesShown == 0 {
		return 0
	}
	return int(float64(s.TimesCorrect)/float64(s.TimesShown)*100 + 0.5)
}

func statusFor(s Statistics) Status {
	if s.TimesShown == 0 {
		return StatusNew
	}
	if s.SuccessRate >= LearnedMinRate && s.TimesShown >= LearnedMinShown {
		return StatusLearned
	}
	return StatusLearning
}
