//go:build integration
// +build integration

package integration

import (
	"context"
	"testing"
	"time"

	"github.com/linksnip/linksnip/internal/domain"
	mongoRepo "github.com/linksnip/linksnip/internal/repository/mongo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestClickRepository_AppendAndListOrdered(t *testing.T) {
	db, cleanup := setupTestMongo(t)
	defer cleanup()

	repo := mongoRepo.NewClickRepository(db)
	ctx := context.Background()
	require.NoError(t, repo.EnsureIndexes(ctx))

	linkID := primitive.NewObjectID()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	// appended out of order on purpose
	for _, offset := range []time.Duration{2 * time.Hour, 0, time.Hour} {
		err := repo.Append(ctx, &domain.ClickEvent{
			LinkID:     linkID,
			ShortCode:  "abc123",
			LongURL:    "https://example.com",
			DeviceType: "mobile",
			Country:    "DE",
			Source:     "direct",
			Timestamp:  base.Add(offset),
		})
		require.NoError(t, err)
	}

	events, err := repo.ListByLinkID(ctx, linkID)
	require.NoError(t, err)
	require.Len(t, events, 3)

	assert.Equal(t, base, events[0].Timestamp.UTC())
	assert.Equal(t, base.Add(time.Hour), events[1].Timestamp.UTC())
	assert.Equal(t, base.Add(2*time.Hour), events[2].Timestamp.UTC())
}

func TestClickRepository_ListScopedToLink(t *testing.T) {
	db, cleanup := setupTestMongo(t)
	defer cleanup()

	repo := mongoRepo.NewClickRepository(db)
	ctx := context.Background()

	mine := primitive.NewObjectID()
	other := primitive.NewObjectID()

	require.NoError(t, repo.Append(ctx, &domain.ClickEvent{LinkID: mine, ShortCode: "abc123", Timestamp: time.Now().UTC()}))
	require.NoError(t, repo.Append(ctx, &domain.ClickEvent{LinkID: other, ShortCode: "zzz999", Timestamp: time.Now().UTC()}))

	events, err := repo.ListByLinkID(ctx, mine)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "abc123", events[0].ShortCode)
}

func TestClickRepository_EmptyLog(t *testing.T) {
	db, cleanup := setupTestMongo(t)
	defer cleanup()

	repo := mongoRepo.NewClickRepository(db)

	events, err := repo.ListByLinkID(context.Background(), primitive.NewObjectID())
	require.NoError(t, err)
	assert.Empty(t, events)
}
