// Package summary renders a short human-readable digest of link statistics.
// Generation is a pure function of the aggregated stats.
package summary

import (
	"fmt"
	"strings"

	"github.com/linksnip/linksnip/internal/domain"
)

// Generate produces a one-paragraph text summary for a link's stats.
func Generate(stats *domain.LinkStats) string {
	if stats == nil {
		return ""
	}

	scope := "over its whole history"
	if stats.Period == domain.PeriodWindow {
		scope = "in the selected window"
	}

	if stats.TotalClicks == 0 {
		return fmt.Sprintf("The link %s has not been visited %s.", stats.ShortCode, scope)
	}

	var b strings.Builder

	clicks := "clicks"
	if stats.TotalClicks == 1 {
		clicks = "click"
	}
	fmt.Fprintf(&b, "The link %s received %d %s %s.", stats.ShortCode, stats.TotalClicks, clicks, scope)

	if stats.FirstClick != nil && stats.LastClick != nil {
		fmt.Fprintf(&b, " Activity spans %s to %s.",
			stats.FirstClick.Format("2006-01-02"),
			stats.LastClick.Format("2006-01-02"),
		)
	}

	if top := topBucket(stats.Countries); top != nil && top.Value != "UNKNOWN" {
		fmt.Fprintf(&b, " Most visits came from %s (%d).", top.Value, top.Count)
	}

	if top := topBucket(stats.Devices); top != nil {
		fmt.Fprintf(&b, " The dominant device type was %s.", top.Value)
	}

	if top := topBucket(stats.Sources); top != nil && top.Value != "direct" {
		fmt.Fprintf(&b, " The strongest traffic source was %q (%d).", top.Value, top.Count)
	}

	return b.String()
}

// topBucket returns the highest-count bucket, keeping the earlier bucket on
// ties so output stays stable for a given event log.
func topBucket(buckets []domain.BucketCount) *domain.BucketCount {
	var top *domain.BucketCount
	for i := range buckets {
		if top == nil || buckets[i].Count > top.Count {
			top = &buckets[i]
		}
	}
	return top
}
