package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockSafetyGate struct {
	mock.Mock
}

func (m *MockSafetyGate) IsSafe(ctx context.Context, rawURL string) bool {
	args := m.Called(ctx, rawURL)
	return args.Bool(0)
}

// AllowAll is a pass-through gate for tests that do not exercise vetting.
type AllowAll struct{}

func (AllowAll) IsSafe(ctx context.Context, rawURL string) bool { return true }
