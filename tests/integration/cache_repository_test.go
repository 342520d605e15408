//go:build integration
// +build integration

package integration

import (
	"context"
	"testing"
	"time"

	"github.com/linksnip/linksnip/internal/domain"
	redisRepo "github.com/linksnip/linksnip/internal/repository/redis"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	testredis "github.com/testcontainers/testcontainers-go/modules/redis"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func setupTestRedis(t *testing.T) (*redis.Client, func()) {
	ctx := context.Background()

	redisContainer, err := testredis.Run(ctx, "redis:7-alpine")
	require.NoError(t, err)

	uri, err := redisContainer.ConnectionString(ctx)
	require.NoError(t, err)

	opts, err := redis.ParseURL(uri)
	require.NoError(t, err)

	client := redis.NewClient(opts)

	cleanup := func() {
		client.Close()
		redisContainer.Terminate(ctx)
	}

	return client, cleanup
}

func TestLinkCache_RoundTrip(t *testing.T) {
	client, cleanup := setupTestRedis(t)
	defer cleanup()

	cache := redisRepo.NewLinkCache(client)
	ctx := context.Background()

	link := &domain.Link{
		ID:        primitive.NewObjectID(),
		ShortCode: "abc123",
		LongURL:   "https://example.com",
		IsActive:  true,
	}

	require.NoError(t, cache.SetLink(ctx, link, time.Minute))

	cached, err := cache.GetLink(ctx, "abc123")
	require.NoError(t, err)
	assert.Equal(t, link.ID, cached.ID)
	assert.Equal(t, "https://example.com", cached.LongURL)
	assert.True(t, cached.IsActive)
}

func TestLinkCache_MissReturnsError(t *testing.T) {
	client, cleanup := setupTestRedis(t)
	defer cleanup()

	cache := redisRepo.NewLinkCache(client)

	cached, err := cache.GetLink(context.Background(), "missing")
	assert.Nil(t, cached)
	assert.ErrorIs(t, err, redis.Nil)
}

func TestLinkCache_Delete(t *testing.T) {
	client, cleanup := setupTestRedis(t)
	defer cleanup()

	cache := redisRepo.NewLinkCache(client)
	ctx := context.Background()

	link := &domain.Link{ID: primitive.NewObjectID(), ShortCode: "abc123", LongURL: "https://example.com"}
	require.NoError(t, cache.SetLink(ctx, link, time.Minute))
	require.NoError(t, cache.DeleteLink(ctx, "abc123"))

	_, err := cache.GetLink(ctx, "abc123")
	assert.ErrorIs(t, err, redis.Nil)
}

func TestLinkCache_TTLExpiry(t *testing.T) {
	client, cleanup := setupTestRedis(t)
	defer cleanup()

	cache := redisRepo.NewLinkCache(client)
	ctx := context.Background()

	link := &domain.Link{ID: primitive.NewObjectID(), ShortCode: "abc123", LongURL: "https://example.com"}
	require.NoError(t, cache.SetLink(ctx, link, time.Second))

	time.Sleep(1500 * time.Millisecond)

	_, err := cache.GetLink(ctx, "abc123")
	assert.ErrorIs(t, err, redis.Nil)
}
