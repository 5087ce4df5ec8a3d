package aggregation

import (
	"context"
	"fmt"
	"math"

	"github.com/Farhad-Valipour/MongoDB-News-API/internal/repository"
)

// Top-assets limit bounds and default.
const (
	DefaultTopAssetsLimit = 10
	minTopAssetsLimit     = 1
	maxTopAssetsLimit     = 100
)

// Service provides report use cases over the news collection.
type Service struct {
	Repo repository.AggregationRepository
}

// StatsBySource returns article counts grouped by source, ordered by count
// descending.
func (s *Service) StatsBySource(ctx context.Context, f repository.NewsFilters) ([]repository.SourceStat, error) {
	stats, err := s.Repo.StatsBySource(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("stats by source: %w", err)
	}
	return stats, nil
}

// TopAssets returns the most mentioned assets with their share of matching
// articles. A zero limit selects the default; out-of-range limits return
// ErrInvalidLimit.
//
// Percentages are computed against the number of matching articles, not the
// number of mentions: one article naming an asset twice in its asset list
// still counts once per unwound element, so the ratio can exceed what a
// per-article count would give.
func (s *Service) TopAssets(ctx context.Context, f repository.NewsFilters, limit int) ([]repository.AssetMentions, error) {
	if limit == 0 {
		limit = DefaultTopAssetsLimit
	}
	if limit < minTopAssetsLimit || limit > maxTopAssetsLimit {
		return nil, ErrInvalidLimit
	}

	mentions, err := s.Repo.TopAssets(ctx, f, limit)
	if err != nil {
		return nil, fmt.Errorf("top assets: %w", err)
	}

	total, err := s.Repo.CountMatching(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("count matching: %w", err)
	}

	for i := range mentions {
		if total > 0 {
			mentions[i].Percentage = round2(float64(mentions[i].Count) / float64(total) * 100)
		} else {
			mentions[i].Percentage = 0
		}
	}
	return mentions, nil
}

// Timeline returns article counts bucketed by the given interval. An empty
// interval selects daily buckets; anything else unsupported returns
// ErrInvalidInterval.
func (s *Service) Timeline(ctx context.Context, f repository.NewsFilters, interval repository.TimelineInterval) ([]repository.TimelineBucket, error) {
	if interval == "" {
		interval = repository.IntervalDaily
	}
	switch interval {
	case repository.IntervalDaily, repository.IntervalWeekly, repository.IntervalMonthly:
	default:
		return nil, ErrInvalidInterval
	}

	buckets, err := s.Repo.Timeline(ctx, f, interval)
	if err != nil {
		return nil, fmt.Errorf("timeline: %w", err)
	}
	return buckets, nil
}

// SourcePerformance returns per-source totals with accumulated asset lists.
// When the filters carry a complete date range, each row also gets its
// average article count per day across that range (inclusive of both ends).
func (s *Service) SourcePerformance(ctx context.Context, f repository.NewsFilters) ([]repository.SourcePerformance, error) {
	rows, err := s.Repo.SourcePerformance(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("source performance: %w", err)
	}

	if f.FromDate != nil && f.ToDate != nil {
		days := int(f.ToDate.Sub(*f.FromDate).Hours()/24) + 1
		if days > 0 {
			for i := range rows {
				rows[i].AvgPerDay = round2(float64(rows[i].TotalNews) / float64(days))
			}
		}
	}
	return rows, nil
}

// round2 rounds to two decimal places, which is what the JSON responses
// carry for all derived ratios.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
