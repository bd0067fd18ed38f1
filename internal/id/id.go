package id

import (
	"math/rand"
	"strings"

	"github.com/google/uuid"
)

const v4Template = "xxxxxxxx-xxxx-4xxx-yxxx-xxxxxxxxxxxx"

// NewID creates a globally unique identifier for cards and sessions.
// It uses a cryptographically strong UUID v4 and only falls back to a
// v4-shaped string from math/rand if the secure source fails. Callers
// depend on uniqueness, never on the format.
func NewID() string {
	if u, err := uuid.NewRandom(); err == nil {
		return u.String()
	}
	return weakV4()
}

func weakV4() string {
	const digits = "0123456789abcdef"
	var b strings.Builder
	b.Grow(len(v4Template))
	for _, c := range v4Template {
		switch c {
		case 'x':
			b.WriteByte(digits[rand.Intn(16)])
		case 'y':
			// variant bits: 8, 9, a or b
			b.WriteByte(digits[8+rand.Intn(4)])
		default:
			b.WriteRune(c)
		}
	}
	return b.String()
}
