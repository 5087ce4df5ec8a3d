package news

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/Farhad-Valipour/MongoDB-News-API/internal/common/pagination"
	"github.com/Farhad-Valipour/MongoDB-News-API/internal/domain/entity"
	"github.com/Farhad-Valipour/MongoDB-News-API/internal/repository"
)

// Keyword length bounds. Shorter keywords produce unselective regex scans,
// longer ones are almost certainly abuse.
const (
	minKeywordLength = 2
	maxKeywordLength = 100
)

// Service provides news query use cases.
// It validates filters, drives the cursor pagination cycle, and delegates
// persistence to the repository.
type Service struct {
	Repo repository.NewsRepository
}

// List retrieves one page of news articles.
//
// The inbound cursor token is decoded and turned into a tie-break predicate;
// a missing cursor means the first page. The repository is asked for one row
// more than the page size so that the existence of a next page is known
// without a second query.
//
// Returns pagination.ErrInvalidCursor for cursors that cannot be decoded,
// and the filter validation sentinels for out-of-range filters.
func (s *Service) List(ctx context.Context, params pagination.Params, filters repository.NewsFilters) (pagination.Page[*entity.News], error) {
	if err := validateFilters(filters); err != nil {
		return pagination.Page[*entity.News]{}, err
	}

	cursorQuery := bson.M{}
	if params.HasCursor() {
		decoded, err := pagination.DecodeCursor(params.Cursor)
		if err != nil {
			return pagination.Page[*entity.News]{}, err
		}
		cursorQuery = pagination.BuildCursorQuery(decoded, params.SortBy, params.Order)
	}

	items, err := s.Repo.ListPage(ctx, repository.PageQuery{
		Filters:     filters,
		CursorQuery: cursorQuery,
		SortBy:      params.SortBy,
		Order:       params.Order,
		Limit:       params.Limit + 1,
	})
	if err != nil {
		return pagination.Page[*entity.News]{}, fmt.Errorf("list news: %w", err)
	}

	page, err := pagination.AssemblePage(items, params.Limit, params.SortBy, params.HasCursor())
	if err != nil {
		return pagination.Page[*entity.News]{}, fmt.Errorf("assemble page: %w", err)
	}
	return page, nil
}

// GetBySlug retrieves a single article by its slug, including full content.
// Returns ErrInvalidSlug for an empty slug and ErrNewsNotFound when no
// article matches.
func (s *Service) GetBySlug(ctx context.Context, slug string) (*entity.News, error) {
	if slug == "" {
		return nil, ErrInvalidSlug
	}

	news, err := s.Repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("get news by slug: %w", err)
	}
	if news == nil {
		return nil, ErrNewsNotFound
	}
	return news, nil
}

// validateFilters checks user-facing filters before they reach the database.
func validateFilters(f repository.NewsFilters) error {
	if f.FromDate != nil && f.ToDate != nil && f.FromDate.After(*f.ToDate) {
		return ErrInvalidDateRange
	}
	if f.FromDate != nil && f.FromDate.After(time.Now()) {
		return ErrFutureDate
	}
	if f.Keyword != "" {
		length := utf8.RuneCountInString(f.Keyword)
		if length < minKeywordLength || length > maxKeywordLength {
			return ErrInvalidKeyword
		}
	}
	return nil
}
