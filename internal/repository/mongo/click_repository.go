package mongo

import (
	"context"

	"github.com/linksnip/linksnip/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ClickRepository is the append-only click event log.
type ClickRepository struct {
	clicks *mongo.Collection
}

func NewClickRepository(db *mongo.Database) *ClickRepository {
	return &ClickRepository{clicks: db.Collection("clicks")}
}

func (r *ClickRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.clicks.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "link_id", Value: 1},
			{Key: "timestamp", Value: 1},
		},
	})
	return err
}

func (r *ClickRepository) Append(ctx context.Context, event *domain.ClickEvent) error {
	if event.ID.IsZero() {
		event.ID = primitive.NewObjectID()
	}

	_, err := r.clicks.InsertOne(ctx, event)
	return err
}

// ListByLinkID returns every event for a link ordered by event time
// ascending.
func (r *ClickRepository) ListByLinkID(ctx context.Context, linkID primitive.ObjectID) ([]domain.ClickEvent, error) {
	cursor, err := r.clicks.Find(ctx, bson.M{"link_id": linkID},
		options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var events []domain.ClickEvent
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}

	return events, nil
}
