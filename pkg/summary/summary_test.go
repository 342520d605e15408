package summary

import (
	"testing"
	"time"

	"github.com/linksnip/linksnip/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestGenerate_NoClicks(t *testing.T) {
	stats := &domain.LinkStats{
		ShortCode: "abc123",
		Period:    domain.PeriodAllTime,
	}

	got := Generate(stats)

	assert.Equal(t, "The link abc123 has not been visited over its whole history.", got)
}

func TestGenerate_WithBreakdowns(t *testing.T) {
	first := time.Date(2026, 1, 10, 8, 0, 0, 0, time.UTC)
	last := time.Date(2026, 2, 1, 20, 0, 0, 0, time.UTC)

	stats := &domain.LinkStats{
		ShortCode:   "abc123",
		TotalClicks: 5,
		FirstClick:  &first,
		LastClick:   &last,
		Countries:   []domain.BucketCount{{Value: "DE", Count: 3}, {Value: "FR", Count: 2}},
		Devices:     []domain.BucketCount{{Value: "mobile", Count: 4}, {Value: "desktop", Count: 1}},
		Sources:     []domain.BucketCount{{Value: "newsletter", Count: 5}},
		Period:      domain.PeriodWindow,
	}

	got := Generate(stats)

	assert.Contains(t, got, "received 5 clicks in the selected window")
	assert.Contains(t, got, "2026-01-10")
	assert.Contains(t, got, "2026-02-01")
	assert.Contains(t, got, "Most visits came from DE (3)")
	assert.Contains(t, got, "dominant device type was mobile")
	assert.Contains(t, got, `"newsletter" (5)`)
}

func TestGenerate_SkipsUnknownCountryAndDirectSource(t *testing.T) {
	stats := &domain.LinkStats{
		ShortCode:   "abc123",
		TotalClicks: 1,
		Countries:   []domain.BucketCount{{Value: "UNKNOWN", Count: 1}},
		Devices:     []domain.BucketCount{{Value: "desktop", Count: 1}},
		Sources:     []domain.BucketCount{{Value: "direct", Count: 1}},
		Period:      domain.PeriodAllTime,
	}

	got := Generate(stats)

	assert.Contains(t, got, "received 1 click over its whole history")
	assert.NotContains(t, got, "UNKNOWN")
	assert.NotContains(t, got, "traffic source")
}

func TestGenerate_NilStats(t *testing.T) {
	assert.Equal(t, "", Generate(nil))
}
