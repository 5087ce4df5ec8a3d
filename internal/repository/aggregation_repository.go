package repository

import (
	"context"

	"github.com/Farhad-Valipour/MongoDB-News-API/internal/domain/entity"
)

// TimelineInterval selects the bucket size for time-bucketed counts.
type TimelineInterval string

const (
	IntervalDaily   TimelineInterval = "daily"
	IntervalWeekly  TimelineInterval = "weekly"
	IntervalMonthly TimelineInterval = "monthly"
)

// SourceStat is the article count for a single source.
type SourceStat struct {
	Source string `bson:"source" json:"source"`
	Count  int64  `bson:"count" json:"count"`
}

// AssetMentions is the mention count for a single asset.
// Percentage is filled in by the service layer from the matching total.
type AssetMentions struct {
	Asset      entity.Asset `bson:"asset" json:"asset"`
	Count      int64        `bson:"count" json:"count"`
	Percentage float64      `bson:"-" json:"percentage"`
}

// TimelineBucket is the article count for a single time bucket.
// Date is the formatted bucket label (e.g. "2025-02-26", "2025-W09", "2025-02").
type TimelineBucket struct {
	Date  string `bson:"date" json:"date"`
	Count int64  `bson:"count" json:"count"`
}

// SourcePerformance is the per-source report row: total article count and
// the asset lists of every article, for downstream coverage analysis.
// AvgPerDay is filled in by the service layer when a full date range is
// supplied.
type SourcePerformance struct {
	Source    string           `bson:"source" json:"source"`
	TotalNews int64            `bson:"total_news" json:"total_news"`
	Assets    [][]entity.Asset `bson:"assets" json:"assets"`
	AvgPerDay float64          `bson:"-" json:"avg_per_day,omitempty"`
}

// AggregationRepository runs aggregation pipelines over the news collection.
// Every method honors the date-range and source filters of NewsFilters that
// apply to it; keyword and asset filters are not part of the reports.
type AggregationRepository interface {
	// StatsBySource returns article counts grouped by source, ordered by
	// count descending.
	StatsBySource(ctx context.Context, f NewsFilters) ([]SourceStat, error)

	// TopAssets returns the most mentioned assets (articles unwound by
	// their assets array), ordered by count descending, at most limit rows.
	TopAssets(ctx context.Context, f NewsFilters, limit int) ([]AssetMentions, error)

	// CountMatching returns the number of articles matching the filters.
	// Used to derive mention percentages for TopAssets.
	CountMatching(ctx context.Context, f NewsFilters) (int64, error)

	// Timeline returns article counts bucketed by the given interval,
	// ordered by bucket label ascending.
	Timeline(ctx context.Context, f NewsFilters, interval TimelineInterval) ([]TimelineBucket, error)

	// SourcePerformance returns per-source totals with accumulated asset
	// lists, ordered by total descending.
	SourcePerformance(ctx context.Context, f NewsFilters) ([]SourcePerformance, error)
}
