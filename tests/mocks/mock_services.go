package mocks

import (
	"context"

	"github.com/linksnip/linksnip/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockRedirectResolver struct {
	mock.Mock
}

func (m *MockRedirectResolver) Resolve(ctx context.Context, rawCode string, meta *domain.ClickMetadata) (*domain.RedirectResult, error) {
	args := m.Called(ctx, rawCode, meta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RedirectResult), args.Error(1)
}

type MockShortenerService struct {
	mock.Mock
}

func (m *MockShortenerService) CreateLink(ctx context.Context, req *domain.CreateLinkRequest) (*domain.Link, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Link), args.Error(1)
}

func (m *MockShortenerService) ListLinks(ctx context.Context, ownerID string) ([]domain.Link, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Link), args.Error(1)
}

type MockAnalyticsService struct {
	mock.Mock
}

func (m *MockAnalyticsService) Summarize(ctx context.Context, shortCode string, window *domain.StatsRequest) (*domain.LinkStats, error) {
	args := m.Called(ctx, shortCode, window)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LinkStats), args.Error(1)
}
