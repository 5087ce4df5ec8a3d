// Package mongodb provides MongoDB implementations of repository interfaces.
// It includes the news collection repository and the aggregation pipelines
// behind the reporting endpoints.
package mongodb

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/Farhad-Valipour/MongoDB-News-API/internal/repository"
)

// BuildNewsFilter translates user-facing filters into a MongoDB match
// predicate. All present filters are combined with logical AND; an empty
// filter set yields an empty predicate matching every document.
func BuildNewsFilter(f repository.NewsFilters) bson.M {
	filter := bson.M{}

	if f.FromDate != nil || f.ToDate != nil {
		dateRange := bson.M{}
		if f.FromDate != nil {
			dateRange["$gte"] = *f.FromDate
		}
		if f.ToDate != nil {
			dateRange["$lte"] = *f.ToDate
		}
		filter["releasedAt"] = dateRange
	}

	if f.Source != "" {
		filter["source"] = f.Source
	}

	if f.AssetSlug != "" {
		filter["assets.slug"] = f.AssetSlug
	}

	if f.Keyword != "" {
		// The keyword is deliberately not regex-escaped: clients rely on
		// metacharacters passing through ("btc|eth" matches either term).
		regex := bson.M{"$regex": f.Keyword, "$options": "i"}
		filter["$or"] = bson.A{
			bson.M{"title": regex},
			bson.M{"subtitle": regex},
			bson.M{"content": regex},
		}
	}

	return filter
}

// CombineWithCursor merges the filter predicate with a cursor tie-break
// predicate. Both predicates may be empty; the combination preserves the
// semantics of each via logical AND. An explicit $and is required because
// both predicates can carry a top-level $or.
func CombineWithCursor(filter, cursor bson.M) bson.M {
	switch {
	case len(cursor) == 0:
		return filter
	case len(filter) == 0:
		return cursor
	default:
		return bson.M{"$and": bson.A{filter, cursor}}
	}
}
