package service

import (
	"context"
	"time"

	"github.com/linksnip/linksnip/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LinkStore is the persistence surface for link records.
type LinkStore interface {
	Create(ctx context.Context, link *domain.Link) error
	FindByShortCode(ctx context.Context, shortCode string) (*domain.Link, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Link, error)
	ExistsByShortCode(ctx context.Context, shortCode string) (bool, error)
	IncrementHit(ctx context.Context, id primitive.ObjectID) error
	Update(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) error
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Link, error)
}

// ClickEventStore is the append-only click event log.
type ClickEventStore interface {
	Append(ctx context.Context, event *domain.ClickEvent) error
	ListByLinkID(ctx context.Context, linkID primitive.ObjectID) ([]domain.ClickEvent, error)
}

// LinkCache keeps resolved links hot for the redirect path.
type LinkCache interface {
	GetLink(ctx context.Context, shortCode string) (*domain.Link, error)
	SetLink(ctx context.Context, link *domain.Link, ttl time.Duration) error
	DeleteLink(ctx context.Context, shortCode string) error
}

// SafetyGate vets destination URLs before a link is created. Implementations
// fail open.
type SafetyGate interface {
	IsSafe(ctx context.Context, rawURL string) bool
}
