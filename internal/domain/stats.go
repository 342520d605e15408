package domain

import "time"

// Period labels on LinkStats.
const (
	PeriodAllTime = "all_time"
	PeriodWindow  = "custom_range"
)

// BucketCount is one breakdown bucket. Buckets keep first-seen order across
// the event log rather than being sorted by count.
type BucketCount struct {
	Value string `json:"value"`
	Count int64  `json:"count"`
}

type LinkStats struct {
	ShortCode   string        `json:"short_code"`
	LongURL     string        `json:"long_url"`
	TotalClicks int64         `json:"total_clicks"`
	FirstClick  *time.Time    `json:"first_click"`
	LastClick   *time.Time    `json:"last_click"`
	Countries   []BucketCount `json:"countries"`
	Devices     []BucketCount `json:"devices"`
	Sources     []BucketCount `json:"sources"`
	Period      string        `json:"period"`
}

// StatsRequest is the optional time window for a stats query. Bounds are
// inclusive; a nil bound leaves that side open.
type StatsRequest struct {
	From *time.Time `json:"from,omitempty"`
	To   *time.Time `json:"to,omitempty"`
}
