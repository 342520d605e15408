package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/linksnip/linksnip/internal/domain"
	"github.com/linksnip/linksnip/pkg/generator"
	"go.mongodb.org/mongo-driver/mongo"
)

const maxCreateRetries = 3

// ShortenerService owns the link creation flow: URL vetting, alias checks
// and short code allocation.
type ShortenerService struct {
	links LinkStore
	gate  SafetyGate
}

func NewShortenerService(links LinkStore, gate SafetyGate) *ShortenerService {
	return &ShortenerService{
		links: links,
		gate:  gate,
	}
}

func (s *ShortenerService) CreateLink(ctx context.Context, req *domain.CreateLinkRequest) (*domain.Link, error) {
	if !s.gate.IsSafe(ctx, req.LongURL) {
		return nil, ErrUnsafeURL
	}

	if alias := strings.TrimSpace(req.Alias); alias != "" {
		return s.createWithAlias(ctx, req, alias)
	}

	return s.createWithGeneratedCode(ctx, req)
}

// createWithAlias checks availability first so the caller gets a clean
// "taken" error, then relies on the unique index to catch the concurrent
// duplicate the check cannot see.
func (s *ShortenerService) createWithAlias(ctx context.Context, req *domain.CreateLinkRequest, alias string) (*domain.Link, error) {
	taken, err := s.links.ExistsByShortCode(ctx, alias)
	if err != nil {
		return nil, fmt.Errorf("failed to check alias availability: %w", err)
	}
	if taken {
		return nil, ErrAliasTaken
	}

	link := &domain.Link{
		ShortCode: alias,
		LongURL:   req.LongURL,
		Alias:     &alias,
		OwnerID:   req.OwnerID,
		IsActive:  true,
	}

	if err := s.links.Create(ctx, link); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrAliasTaken
		}
		return nil, fmt.Errorf("failed to create short link: %w", err)
	}

	return link, nil
}

func (s *ShortenerService) createWithGeneratedCode(ctx context.Context, req *domain.CreateLinkRequest) (*domain.Link, error) {
	var lastErr error

	for i := 0; i < maxCreateRetries; i++ {
		code, err := generator.Allocate(ctx, generator.DefaultLength, s.links.ExistsByShortCode)
		if err != nil {
			return nil, err
		}

		link := &domain.Link{
			ShortCode: code,
			LongURL:   req.LongURL,
			OwnerID:   req.OwnerID,
			IsActive:  true,
		}

		err = s.links.Create(ctx, link)
		if err == nil {
			return link, nil
		}

		// lost the generate-then-insert race, draw a fresh code
		if mongo.IsDuplicateKeyError(err) {
			lastErr = err
			continue
		}

		return nil, fmt.Errorf("failed to create short link: %w", err)
	}

	return nil, fmt.Errorf("failed to create short link after %d attempts: %w", maxCreateRetries, lastErr)
}

func (s *ShortenerService) ListLinks(ctx context.Context, ownerID string) ([]domain.Link, error) {
	links, err := s.links.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list links: %w", err)
	}

	return links, nil
}
