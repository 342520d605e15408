package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/linksnip/linksnip/internal/domain"
	"go.mongodb.org/mongo-driver/mongo"
)

// AnalyticsService reconstructs per-link statistics from the click event
// log. It only ever reads; links and events are never mutated here.
type AnalyticsService struct {
	links  LinkStore
	clicks ClickEventStore
}

func NewAnalyticsService(links LinkStore, clicks ClickEventStore) *AnalyticsService {
	return &AnalyticsService{
		links:  links,
		clicks: clicks,
	}
}

// Summarize builds the stats for a short code, optionally restricted to an
// inclusive [from, to] window. Inactive links still summarize; only a code
// that resolves to nothing is ErrNotFound.
func (s *AnalyticsService) Summarize(ctx context.Context, shortCode string, window *domain.StatsRequest) (*domain.LinkStats, error) {
	trimmed := strings.TrimSpace(shortCode)
	normalized := strings.ToLower(trimmed)
	if normalized == "" {
		return nil, ErrNotFound
	}

	link, err := s.links.FindByShortCode(ctx, normalized)
	if errors.Is(err, mongo.ErrNoDocuments) && normalized != trimmed {
		link, err = s.links.FindByShortCode(ctx, trimmed)
	}
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to look up short link: %w", err)
	}

	events, err := s.clicks.ListByLinkID(ctx, link.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load click events: %w", err)
	}

	filtered := events
	period := domain.PeriodAllTime
	if window != nil && (window.From != nil || window.To != nil) {
		period = domain.PeriodWindow
		filtered = filterByWindow(events, window.From, window.To)
	}

	stats := &domain.LinkStats{
		ShortCode:   link.ShortCode,
		LongURL:     link.LongURL,
		TotalClicks: int64(len(filtered)),
		Period:      period,
	}

	// links created before event logging existed carry only the counter
	if len(events) == 0 {
		stats.TotalClicks = link.HitCount
	}

	if len(filtered) > 0 {
		first := filtered[0].Timestamp
		last := filtered[len(filtered)-1].Timestamp
		stats.FirstClick = &first
		stats.LastClick = &last
	}

	stats.Countries = bucketize(filtered, func(e *domain.ClickEvent) string { return e.Country })
	stats.Devices = bucketize(filtered, func(e *domain.ClickEvent) string { return e.DeviceType })
	stats.Sources = bucketize(filtered, func(e *domain.ClickEvent) string { return e.Source })

	return stats, nil
}

// filterByWindow keeps events inside the inclusive bounds. Events without a
// timestamp are dropped whenever any bound is supplied; they cannot be
// placed on the axis being filtered.
func filterByWindow(events []domain.ClickEvent, from, to *time.Time) []domain.ClickEvent {
	filtered := make([]domain.ClickEvent, 0, len(events))
	for _, e := range events {
		if e.Timestamp.IsZero() {
			continue
		}
		if from != nil && e.Timestamp.Before(*from) {
			continue
		}
		if to != nil && e.Timestamp.After(*to) {
			continue
		}
		filtered = append(filtered, e)
	}
	return filtered
}

// bucketize counts events per value of one dimension, keeping first-seen
// bucket order rather than sorting by count.
func bucketize(events []domain.ClickEvent, key func(*domain.ClickEvent) string) []domain.BucketCount {
	index := make(map[string]int)
	buckets := make([]domain.BucketCount, 0)

	for i := range events {
		k := key(&events[i])
		if k == "" {
			k = "UNKNOWN"
		}

		if pos, ok := index[k]; ok {
			buckets[pos].Count++
		} else {
			index[k] = len(buckets)
			buckets = append(buckets, domain.BucketCount{Value: k, Count: 1})
		}
	}

	return buckets
}
