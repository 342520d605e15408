package service

import "errors"

var (
	// ErrNotFound covers unknown codes and inactive links alike; callers
	// cannot tell the two apart.
	ErrNotFound = errors.New("short link not found")

	ErrAliasTaken = errors.New("alias already taken")

	ErrUnsafeURL = errors.New("destination URL flagged as unsafe")
)
