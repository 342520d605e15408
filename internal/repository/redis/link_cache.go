package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/linksnip/linksnip/internal/domain"
	"github.com/redis/go-redis/v9"
)

// LinkCache keeps resolved links hot for the redirect path. Entries are
// keyed by normalized short code; misses and errors both fall through to the
// store.
type LinkCache struct {
	client *redis.Client
}

func NewLinkCache(client *redis.Client) *LinkCache {
	return &LinkCache{client: client}
}

func (r *LinkCache) GetLink(ctx context.Context, shortCode string) (*domain.Link, error) {
	key := fmt.Sprintf("link:%s", shortCode)

	data, err := r.client.Get(ctx, key).Result()
	if err != nil {
		return nil, err
	}

	var link domain.Link
	if err := json.Unmarshal([]byte(data), &link); err != nil {
		return nil, err
	}

	return &link, nil
}

func (r *LinkCache) SetLink(ctx context.Context, link *domain.Link, ttl time.Duration) error {
	key := fmt.Sprintf("link:%s", link.ShortCode)

	data, err := json.Marshal(link)
	if err != nil {
		return err
	}

	return r.client.Set(ctx, key, data, ttl).Err()
}

func (r *LinkCache) DeleteLink(ctx context.Context, shortCode string) error {
	return r.client.Del(ctx, fmt.Sprintf("link:%s", shortCode)).Err()
}
