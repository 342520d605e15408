package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ClickEvent is one recorded visit to a short link. Events are append-only:
// the core never mutates or deletes them.
type ClickEvent struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	LinkID     primitive.ObjectID `json:"link_id" bson:"link_id"`
	ShortCode  string             `json:"short_code" bson:"short_code"`
	LongURL    string             `json:"long_url" bson:"long_url"`
	DeviceType string             `json:"device_type" bson:"device_type"`
	Country    string             `json:"country" bson:"country"`
	Source     string             `json:"source" bson:"source"`
	Referrer   string             `json:"referrer,omitempty" bson:"referrer,omitempty"`
	UserAgent  string             `json:"user_agent,omitempty" bson:"user_agent,omitempty"`
	IP         string             `json:"ip,omitempty" bson:"ip,omitempty"`
	Timestamp  time.Time          `json:"timestamp" bson:"timestamp"`
}

// ClickMetadata is the raw request context captured at redirect time,
// before classification.
type ClickMetadata struct {
	UserAgent      string
	AcceptLanguage string
	Referrer       string
	IP             string
	Source         string
}

const (
	DeviceMobile  = "mobile"
	DeviceDesktop = "desktop"
	DeviceTablet  = "tablet"

	CountryUnknown = "UNKNOWN"
	SourceDirect   = "direct"
)
