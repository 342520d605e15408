package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Link maps a short code to a destination URL. ShortCode is unique and
// immutable after creation; HitCount only ever increases.
type Link struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ShortCode string             `json:"short_code" bson:"short_code"`
	LongURL   string             `json:"long_url" bson:"long_url"`
	Alias     *string            `json:"alias,omitempty" bson:"alias,omitempty"`
	OwnerID   string             `json:"owner_id,omitempty" bson:"owner_id,omitempty"`
	IsActive  bool               `json:"is_active" bson:"is_active"`
	HitCount  int64              `json:"hit_count" bson:"hit_count"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`
	LastHitAt *time.Time         `json:"last_hit_at,omitempty" bson:"last_hit_at,omitempty"`
}

// RedirectResult is what the redirect handler needs to answer a request.
type RedirectResult struct {
	LinkID    primitive.ObjectID
	ShortCode string
	LongURL   string
}

type CreateLinkRequest struct {
	LongURL string `json:"url" validate:"required,url"`
	Alias   string `json:"alias,omitempty" validate:"omitempty,min=3,max=50,alias"`
	OwnerID string `json:"-"`
}
