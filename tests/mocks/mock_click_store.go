package mocks

import (
	"context"

	"github.com/linksnip/linksnip/internal/domain"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MockClickEventStore struct {
	mock.Mock
}

func (m *MockClickEventStore) Append(ctx context.Context, event *domain.ClickEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockClickEventStore) ListByLinkID(ctx context.Context, linkID primitive.ObjectID) ([]domain.ClickEvent, error) {
	args := m.Called(ctx, linkID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ClickEvent), args.Error(1)
}
