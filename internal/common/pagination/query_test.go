package pagination_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Farhad-Valipour/MongoDB-News-API/internal/common/pagination"
)

func TestBuildCursorQuery_EmptyPredicateCases(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		decoded map[string]string
	}{
		{
			name:    "nil map (no cursor supplied)",
			decoded: nil,
		},
		{
			name:    "empty map",
			decoded: map[string]string{},
		},
		{
			name:    "missing identifier",
			decoded: map[string]string{"releasedAt": "2025-02-26T12:00:00Z"},
		},
		{
			name:    "empty identifier",
			decoded: map[string]string{"_id": "", "releasedAt": "2025-02-26T12:00:00Z"},
		},
		{
			name:    "missing sort field value",
			decoded: map[string]string{"_id": "65e1234567890abcdef01234"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pagination.BuildCursorQuery(tt.decoded, "releasedAt", pagination.OrderDesc)
			if len(got) != 0 {
				t.Errorf("BuildCursorQuery() = %v, want empty predicate", got)
			}
		})
	}
}

func TestBuildCursorQuery_DescendingTieBreak(t *testing.T) {
	t.Parallel()

	id := primitive.NewObjectID()
	released := time.Date(2025, 2, 26, 12, 0, 0, 0, time.UTC)

	decoded := map[string]string{
		"_id":        id.Hex(),
		"releasedAt": pagination.FormatTimestamp(released),
	}

	got := pagination.BuildCursorQuery(decoded, "releasedAt", pagination.OrderDesc)

	want := bson.M{
		"$or": bson.A{
			bson.M{"releasedAt": bson.M{"$lt": released}},
			bson.M{"releasedAt": released, "_id": bson.M{"$lt": id}},
		},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("predicate mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildCursorQuery_AscendingTieBreak(t *testing.T) {
	t.Parallel()

	id := primitive.NewObjectID()
	released := time.Date(2025, 2, 26, 12, 0, 0, 0, time.UTC)

	decoded := map[string]string{
		"_id":        id.Hex(),
		"releasedAt": pagination.FormatTimestamp(released),
	}

	got := pagination.BuildCursorQuery(decoded, "releasedAt", pagination.OrderAsc)

	want := bson.M{
		"$or": bson.A{
			bson.M{"releasedAt": bson.M{"$gt": released}},
			bson.M{"releasedAt": released, "_id": bson.M{"$gt": id}},
		},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("predicate mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildCursorQuery_NonTemporalFieldKeepsString(t *testing.T) {
	t.Parallel()

	id := primitive.NewObjectID()
	decoded := map[string]string{
		"_id":   id.Hex(),
		"title": "Bitcoin Hits New All-Time High",
	}

	got := pagination.BuildCursorQuery(decoded, "title", pagination.OrderAsc)

	want := bson.M{
		"$or": bson.A{
			bson.M{"title": bson.M{"$gt": "Bitcoin Hits New All-Time High"}},
			bson.M{"title": "Bitcoin Hits New All-Time High", "_id": bson.M{"$gt": id}},
		},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("predicate mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildCursorQuery_UnparseableTimestampFallsBackToString(t *testing.T) {
	t.Parallel()

	// A temporal sort field whose value is not a valid timestamp is kept
	// as a raw string rather than raising an error.
	decoded := map[string]string{
		"_id":        "not-an-object-id",
		"releasedAt": "definitely-not-a-date",
	}

	got := pagination.BuildCursorQuery(decoded, "releasedAt", pagination.OrderDesc)

	want := bson.M{
		"$or": bson.A{
			bson.M{"releasedAt": bson.M{"$lt": "definitely-not-a-date"}},
			bson.M{"releasedAt": "definitely-not-a-date", "_id": bson.M{"$lt": "not-an-object-id"}},
		},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("predicate mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildSort_AppendsIdentifierTieBreak(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		sortField string
		order     pagination.Order
		want      bson.D
	}{
		{
			name:      "descending",
			sortField: "releasedAt",
			order:     pagination.OrderDesc,
			want: bson.D{
				{Key: "releasedAt", Value: -1},
				{Key: "_id", Value: -1},
			},
		},
		{
			name:      "ascending",
			sortField: "title",
			order:     pagination.OrderAsc,
			want: bson.D{
				{Key: "title", Value: 1},
				{Key: "_id", Value: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pagination.BuildSort(tt.sortField, tt.order)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("sort mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestIsTemporalField(t *testing.T) {
	t.Parallel()

	tests := []struct {
		field string
		want  bool
	}{
		{"releasedAt", true},
		{"createdAt", true},
		{"updatedAt", true},
		{"title", false},
		{"source", false},
	}

	for _, tt := range tests {
		if got := pagination.IsTemporalField(tt.field); got != tt.want {
			t.Errorf("IsTemporalField(%q) = %v, want %v", tt.field, got, tt.want)
		}
	}
}
