package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Farhad-Valipour/MongoDB-News-API/internal/common/pagination"
	"github.com/Farhad-Valipour/MongoDB-News-API/internal/domain/entity"
	"github.com/Farhad-Valipour/MongoDB-News-API/internal/repository"
	"github.com/Farhad-Valipour/MongoDB-News-API/internal/resilience/circuitbreaker"
)

// listProjection excludes the article body from list queries. Full content
// is only returned by the single-article endpoint.
var listProjection = bson.M{"content": 0}

// NewsRepo implements the NewsRepository interface using MongoDB.
type NewsRepo struct {
	coll *circuitbreaker.MongoCollection
}

// NewNewsRepo creates a new MongoDB-backed news repository.
func NewNewsRepo(coll *circuitbreaker.MongoCollection) repository.NewsRepository {
	return &NewsRepo{coll: coll}
}

// ListPage fetches an ordered page of news documents. The cursor predicate
// is combined with the filter predicate via logical AND, and results are
// sorted by (SortBy, _id) so that documents sharing a sort value still have
// a total order.
func (repo *NewsRepo) ListPage(ctx context.Context, q repository.PageQuery) ([]*entity.News, error) {
	filter := CombineWithCursor(BuildNewsFilter(q.Filters), q.CursorQuery)

	opts := options.Find().
		SetSort(pagination.BuildSort(q.SortBy, q.Order)).
		SetLimit(int64(q.Limit)).
		SetProjection(listProjection)

	cursor, err := repo.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("ListPage: Find: %w", err)
	}
	defer func() { _ = cursor.Close(ctx) }()

	items := make([]*entity.News, 0, q.Limit)
	for cursor.Next(ctx) {
		var news entity.News
		if err := cursor.Decode(&news); err != nil {
			return nil, fmt.Errorf("ListPage: Decode: %w", err)
		}
		items = append(items, &news)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("ListPage: cursor.Err: %w", err)
	}

	return items, nil
}

// GetBySlug fetches a single article by slug with all fields included.
func (repo *NewsRepo) GetBySlug(ctx context.Context, slug string) (*entity.News, error) {
	result, err := repo.coll.FindOne(ctx, bson.M{"slug": slug})
	if err != nil {
		return nil, fmt.Errorf("GetBySlug: FindOne: %w", err)
	}

	var news entity.News
	if err := result.Decode(&news); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil // a missing document is not an error
		}
		return nil, fmt.Errorf("GetBySlug: Decode: %w", err)
	}
	return &news, nil
}
