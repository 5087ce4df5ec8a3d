// Package repository defines the persistence interfaces consumed by the
// use case layer. Implementations live under internal/infra/adapter.
package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/Farhad-Valipour/MongoDB-News-API/internal/common/pagination"
	"github.com/Farhad-Valipour/MongoDB-News-API/internal/domain/entity"
)

// NewsFilters contains optional user-facing filters for news queries.
// All present filters are combined with logical AND.
type NewsFilters struct {
	FromDate  *time.Time // Inclusive lower bound on releasedAt
	ToDate    *time.Time // Inclusive upper bound on releasedAt
	Source    string     // Exact match on source
	AssetSlug string     // Exact match on a nested asset slug
	Keyword   string     // Case-insensitive substring match across title/subtitle/content
}

// PageQuery describes a single cursor-paginated page fetch.
// CursorQuery is the predicate built from a decoded cursor (empty on the
// first page); the implementation combines it with the filter predicate via
// logical AND. Limit is the raw fetch limit, which callers set to page
// size + 1 to detect whether a next page exists.
type PageQuery struct {
	Filters     NewsFilters
	CursorQuery bson.M
	SortBy      string
	Order       pagination.Order
	Limit       int
}

// NewsRepository provides read access to the news collection.
type NewsRepository interface {
	// ListPage fetches an ordered page of news documents.
	// Documents are sorted by (SortBy, _id) in the requested direction and
	// use the list projection, which excludes the content field.
	ListPage(ctx context.Context, q PageQuery) ([]*entity.News, error)

	// GetBySlug fetches a single article by slug with every field included.
	// Returns (nil, nil) if no article matches.
	GetBySlug(ctx context.Context, slug string) (*entity.News, error)
}
