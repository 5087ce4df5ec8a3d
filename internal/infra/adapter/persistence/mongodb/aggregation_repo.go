package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Farhad-Valipour/MongoDB-News-API/internal/repository"
	"github.com/Farhad-Valipour/MongoDB-News-API/internal/resilience/circuitbreaker"
)

// Bucket label formats for $dateToString. Weekly buckets use the ISO week
// date so that labels sort chronologically as plain strings.
const (
	dailyFormat   = "%Y-%m-%d"
	weeklyFormat  = "%G-W%V"
	monthlyFormat = "%Y-%m"
)

// AggregationRepo implements the AggregationRepository interface using
// MongoDB aggregation pipelines.
type AggregationRepo struct {
	coll *circuitbreaker.MongoCollection
}

// NewAggregationRepo creates a new MongoDB-backed aggregation repository.
func NewAggregationRepo(coll *circuitbreaker.MongoCollection) repository.AggregationRepository {
	return &AggregationRepo{coll: coll}
}

// buildStatsBySourcePipeline groups articles by source and orders the
// groups by count descending.
func buildStatsBySourcePipeline(f repository.NewsFilters) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: BuildNewsFilter(f)}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$source",
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}}}},
		{{Key: "$project", Value: bson.M{
			"_id":    0,
			"source": "$_id",
			"count":  1,
		}}},
	}
}

// buildTopAssetsPipeline unwinds the assets array so each mention counts
// once. Mentions are grouped by slug, the asset's identity; name and symbol
// may vary in casing between documents, so the first seen value wins.
// Assets without a slug are dropped before grouping.
func buildTopAssetsPipeline(f repository.NewsFilters, limit int) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: BuildNewsFilter(f)}},
		{{Key: "$unwind", Value: "$assets"}},
		{{Key: "$match", Value: bson.M{
			"assets.slug": bson.M{"$exists": true, "$ne": nil},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":    "$assets.slug",
			"name":   bson.M{"$first": "$assets.name"},
			"symbol": bson.M{"$first": "$assets.symbol"},
			"count":  bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}}}},
		{{Key: "$limit", Value: limit}},
		{{Key: "$project", Value: bson.M{
			"_id": 0,
			"asset": bson.M{
				"name":   "$name",
				"slug":   "$_id",
				"symbol": "$symbol",
			},
			"count": 1,
		}}},
	}
}

// buildTimelinePipeline buckets articles by their release date using the
// interval's $dateToString format, ordered by bucket label ascending.
func buildTimelinePipeline(f repository.NewsFilters, interval repository.TimelineInterval) mongo.Pipeline {
	format := dailyFormat
	switch interval {
	case repository.IntervalWeekly:
		format = weeklyFormat
	case repository.IntervalMonthly:
		format = monthlyFormat
	}

	return mongo.Pipeline{
		{{Key: "$match", Value: BuildNewsFilter(f)}},
		{{Key: "$group", Value: bson.M{
			"_id": bson.M{"$dateToString": bson.M{
				"format": format,
				"date":   "$releasedAt",
			}},
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
		{{Key: "$project", Value: bson.M{
			"_id":   0,
			"date":  "$_id",
			"count": 1,
		}}},
	}
}

// buildSourcePerformancePipeline groups articles by source, accumulating
// each article's asset list for downstream coverage analysis.
func buildSourcePerformancePipeline(f repository.NewsFilters) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: BuildNewsFilter(f)}},
		{{Key: "$group", Value: bson.M{
			"_id":        "$source",
			"total_news": bson.M{"$sum": 1},
			"assets":     bson.M{"$push": "$assets"},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "total_news", Value: -1}}}},
		{{Key: "$project", Value: bson.M{
			"_id":        0,
			"source":     "$_id",
			"total_news": 1,
			"assets":     1,
		}}},
	}
}

// StatsBySource returns article counts grouped by source.
func (repo *AggregationRepo) StatsBySource(ctx context.Context, f repository.NewsFilters) ([]repository.SourceStat, error) {
	cursor, err := repo.coll.Aggregate(ctx, buildStatsBySourcePipeline(f))
	if err != nil {
		return nil, fmt.Errorf("StatsBySource: Aggregate: %w", err)
	}
	defer func() { _ = cursor.Close(ctx) }()

	stats := make([]repository.SourceStat, 0, 16)
	if err := cursor.All(ctx, &stats); err != nil {
		return nil, fmt.Errorf("StatsBySource: cursor.All: %w", err)
	}
	return stats, nil
}

// TopAssets returns the most mentioned assets across matching articles.
func (repo *AggregationRepo) TopAssets(ctx context.Context, f repository.NewsFilters, limit int) ([]repository.AssetMentions, error) {
	cursor, err := repo.coll.Aggregate(ctx, buildTopAssetsPipeline(f, limit))
	if err != nil {
		return nil, fmt.Errorf("TopAssets: Aggregate: %w", err)
	}
	defer func() { _ = cursor.Close(ctx) }()

	mentions := make([]repository.AssetMentions, 0, limit)
	if err := cursor.All(ctx, &mentions); err != nil {
		return nil, fmt.Errorf("TopAssets: cursor.All: %w", err)
	}
	return mentions, nil
}

// CountMatching returns the number of articles matching the filters.
func (repo *AggregationRepo) CountMatching(ctx context.Context, f repository.NewsFilters) (int64, error) {
	count, err := repo.coll.CountDocuments(ctx, BuildNewsFilter(f))
	if err != nil {
		return 0, fmt.Errorf("CountMatching: CountDocuments: %w", err)
	}
	return count, nil
}

// Timeline returns article counts bucketed by the given interval.
func (repo *AggregationRepo) Timeline(ctx context.Context, f repository.NewsFilters, interval repository.TimelineInterval) ([]repository.TimelineBucket, error) {
	cursor, err := repo.coll.Aggregate(ctx, buildTimelinePipeline(f, interval))
	if err != nil {
		return nil, fmt.Errorf("Timeline: Aggregate: %w", err)
	}
	defer func() { _ = cursor.Close(ctx) }()

	buckets := make([]repository.TimelineBucket, 0, 32)
	if err := cursor.All(ctx, &buckets); err != nil {
		return nil, fmt.Errorf("Timeline: cursor.All: %w", err)
	}
	return buckets, nil
}

// SourcePerformance returns per-source totals with accumulated asset lists.
func (repo *AggregationRepo) SourcePerformance(ctx context.Context, f repository.NewsFilters) ([]repository.SourcePerformance, error) {
	cursor, err := repo.coll.Aggregate(ctx, buildSourcePerformancePipeline(f))
	if err != nil {
		return nil, fmt.Errorf("SourcePerformance: Aggregate: %w", err)
	}
	defer func() { _ = cursor.Close(ctx) }()

	rows := make([]repository.SourcePerformance, 0, 16)
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("SourcePerformance: cursor.All: %w", err)
	}
	return rows, nil
}
