package generator

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	charset = "abcdefghijklmnopqrstuvwxyz0123456789"

	// DefaultLength is the candidate length used when the caller passes 0.
	DefaultLength = 6

	maxAttempts    = 10
	growthAttempts = 3
)

// ExistsFunc reports whether a short code is already taken in the store.
type ExistsFunc func(ctx context.Context, code string) (bool, error)

// Allocate draws random codes from [a-z0-9] until one is free. The last
// three attempts each grow the candidate by one character to cut the
// collision odds; if every attempt collides, one final draw at length+2 is
// returned without a check. The window between the existence check and the
// caller's insert is not transactional; the store's unique index on
// short_code is the backstop.
func Allocate(ctx context.Context, length int, exists ExistsFunc) (string, error) {
	if length <= 0 {
		length = DefaultLength
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		n := length
		if extra := attempt - (maxAttempts - growthAttempts) + 1; extra > 0 {
			n = length + extra
		}

		code, err := randomCode(n)
		if err != nil {
			return "", err
		}

		taken, err := exists(ctx, code)
		if err != nil {
			return "", fmt.Errorf("failed to check short code availability: %w", err)
		}
		if !taken {
			return code, nil
		}
	}

	return randomCode(length + 2)
}

func randomCode(length int) (string, error) {
	b := make([]byte, length)
	for i := range b {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))

		if err != nil {
			return "", err
		}

		b[i] = charset[n.Int64()]
	}

	return string(b), nil
}
