package mongo

import (
	"context"
	"time"

	"github.com/linksnip/linksnip/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type LinkRepository struct {
	links *mongo.Collection
}

func NewLinkRepository(db *mongo.Database) *LinkRepository {
	return &LinkRepository{links: db.Collection("links")}
}

// EnsureIndexes creates the unique index on short_code. The index is the
// backstop for the non-transactional generate-then-insert flow.
func (r *LinkRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.links.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "short_code", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *LinkRepository) Create(ctx context.Context, link *domain.Link) error {
	now := time.Now().UTC()
	link.CreatedAt = now
	link.UpdatedAt = now
	if link.ID.IsZero() {
		link.ID = primitive.NewObjectID()
	}

	_, err := r.links.InsertOne(ctx, link)
	return err
}

func (r *LinkRepository) FindByShortCode(ctx context.Context, shortCode string) (*domain.Link, error) {
	var link domain.Link

	err := r.links.FindOne(ctx, bson.M{"short_code": shortCode}).Decode(&link)
	if err != nil {
		return nil, err
	}

	return &link, nil
}

func (r *LinkRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Link, error) {
	var link domain.Link

	err := r.links.FindOne(ctx, bson.M{"_id": id}).Decode(&link)
	if err != nil {
		return nil, err
	}

	return &link, nil
}

func (r *LinkRepository) ExistsByShortCode(ctx context.Context, shortCode string) (bool, error) {
	count, err := r.links.CountDocuments(ctx, bson.M{"short_code": shortCode}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// IncrementHit bumps the hit counter atomically and stamps last_hit_at. The
// counter never goes backwards; $inc keeps concurrent redirects from losing
// updates.
func (r *LinkRepository) IncrementHit(ctx context.Context, id primitive.ObjectID) error {
	now := time.Now().UTC()

	_, err := r.links.UpdateByID(ctx, id, bson.M{
		"$inc": bson.M{"hit_count": 1},
		"$set": bson.M{"last_hit_at": now, "updated_at": now},
	})
	return err
}

func (r *LinkRepository) Update(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) error {
	set := bson.M{"updated_at": time.Now().UTC()}
	for k, v := range fields {
		set[k] = v
	}

	_, err := r.links.UpdateByID(ctx, id, bson.M{"$set": set})
	return err
}

func (r *LinkRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Link, error) {
	cursor, err := r.links.Find(ctx, bson.M{"owner_id": ownerID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var links []domain.Link
	if err := cursor.All(ctx, &links); err != nil {
		return nil, err
	}

	return links, nil
}
