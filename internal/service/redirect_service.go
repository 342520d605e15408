package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/linksnip/linksnip/internal/domain"
	"github.com/linksnip/linksnip/internal/logger"
	"github.com/linksnip/linksnip/pkg/detector"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// RedirectService resolves inbound short codes and dispatches the telemetry
// side effects of a successful redirect.
type RedirectService struct {
	links    LinkStore
	clicks   ClickEventStore
	cache    LinkCache
	cacheTTL time.Duration
}

func NewRedirectService(links LinkStore, clicks ClickEventStore, cache LinkCache, cacheTTL time.Duration) *RedirectService {
	if cacheTTL <= 0 {
		cacheTTL = time.Hour
	}

	return &RedirectService{
		links:    links,
		clicks:   clicks,
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}

// Resolve maps a raw path segment to its destination URL. Inactive links
// resolve exactly like missing ones. On success the hit counter update and
// the click event are dispatched without being awaited; the redirect never
// waits on either.
func (s *RedirectService) Resolve(ctx context.Context, rawCode string, meta *domain.ClickMetadata) (*domain.RedirectResult, error) {
	normalized := strings.ToLower(strings.TrimSpace(rawCode))
	if normalized == "" {
		return nil, ErrNotFound
	}

	link, err := s.lookup(ctx, rawCode, normalized)
	if err != nil {
		return nil, err
	}

	if !link.IsActive {
		return nil, ErrNotFound
	}

	s.dispatchSideEffects(ctx, link, meta)

	return &domain.RedirectResult{
		LinkID:    link.ID,
		ShortCode: link.ShortCode,
		LongURL:   link.LongURL,
	}, nil
}

// lookup tries the cache, then the store under the normalized code, then
// under the raw code when case folding changed it. Codes created before
// normalization was enforced are stored with their original casing; the
// second read keeps them reachable. At most two store reads per request.
func (s *RedirectService) lookup(ctx context.Context, rawCode, normalized string) (*domain.Link, error) {
	if s.cache != nil {
		if link, err := s.cache.GetLink(ctx, normalized); err == nil && link != nil {
			return link, nil
		}
	}

	link, err := s.links.FindByShortCode(ctx, normalized)
	if errors.Is(err, mongo.ErrNoDocuments) && normalized != rawCode {
		link, err = s.links.FindByShortCode(ctx, rawCode)
	}

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to look up short link: %w", err)
	}

	if s.cache != nil && link.IsActive {
		go func(l domain.Link) {
			_ = s.cache.SetLink(context.Background(), &l, s.cacheTTL)
		}(*link)
	}

	return link, nil
}

// dispatchSideEffects hands the counter update and the click event to
// background goroutines with detached contexts. Failures are logged at warn
// and swallowed; the response already left by the time they surface.
func (s *RedirectService) dispatchSideEffects(ctx context.Context, link *domain.Link, meta *domain.ClickMetadata) {
	log := logger.FromContext(ctx)

	go func(id primitive.ObjectID, shortCode string) {
		if err := s.links.IncrementHit(context.Background(), id); err != nil {
			log.Warn("hit count increment failed",
				slog.String("short_code", shortCode),
				slog.String("error", err.Error()),
			)
		}
	}(link.ID, link.ShortCode)

	go s.recordClick(context.Background(), log, *link, meta)
}

// recordClick classifies the request and appends one click event with a
// server-assigned timestamp. One attempt only: losing an event to a
// transient store failure is accepted over retry amplification.
func (s *RedirectService) recordClick(ctx context.Context, log *slog.Logger, link domain.Link, meta *domain.ClickMetadata) {
	if meta == nil {
		meta = &domain.ClickMetadata{}
	}

	event := &domain.ClickEvent{
		LinkID:     link.ID,
		ShortCode:  link.ShortCode,
		LongURL:    link.LongURL,
		DeviceType: detector.DetectDeviceType(meta.UserAgent),
		Country:    detector.DetectCountry(meta.AcceptLanguage),
		Source:     detector.DetectSource(meta.Source),
		Referrer:   meta.Referrer,
		UserAgent:  meta.UserAgent,
		IP:         meta.IP,
		Timestamp:  time.Now().UTC(),
	}

	if err := s.clicks.Append(ctx, event); err != nil {
		log.Warn("click event append failed",
			slog.String("short_code", link.ShortCode),
			slog.String("error", err.Error()),
		)
	}
}
