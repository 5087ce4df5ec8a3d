package pagination_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/Farhad-Valipour/MongoDB-News-API/internal/common/pagination"
)

// testDoc is a minimal document for page assembly tests.
type testDoc struct {
	id       string
	released time.Time
}

func (d testDoc) DocumentID() string { return d.id }

func (d testDoc) SortValue(field string) any {
	if field == "releasedAt" {
		return d.released
	}
	return nil
}

// makeDocs generates n documents in descending releasedAt order.
func makeDocs(n int) []testDoc {
	base := time.Date(2025, 2, 26, 12, 0, 0, 0, time.UTC)
	docs := make([]testDoc, 0, n)
	for i := 0; i < n; i++ {
		docs = append(docs, testDoc{
			id:       fmt.Sprintf("doc-%03d", i),
			released: base.Add(-time.Duration(i) * time.Hour),
		})
	}
	return docs
}

func TestAssemblePage_Overflow(t *testing.T) {
	t.Parallel()

	// 11 documents fetched for limit=10: the extra row signals a next page
	// and is dropped from the body.
	docs := makeDocs(11)

	page, err := pagination.AssemblePage(docs, 10, "releasedAt", false)
	if err != nil {
		t.Fatalf("AssemblePage() error = %v", err)
	}

	if page.Meta.Returned != 10 {
		t.Errorf("returned = %d, want 10", page.Meta.Returned)
	}
	if len(page.Items) != 10 {
		t.Errorf("len(items) = %d, want 10", len(page.Items))
	}
	if !page.Meta.HasNext {
		t.Error("has_next = false, want true")
	}
	if page.Meta.NextCursor == nil {
		t.Fatal("next_cursor = nil, want token")
	}

	// The next cursor encodes the last returned document (the 10th), not
	// the dropped overflow row.
	decoded, err := pagination.DecodeCursor(*page.Meta.NextCursor)
	if err != nil {
		t.Fatalf("DecodeCursor(next) error = %v", err)
	}
	if decoded["_id"] != "doc-009" {
		t.Errorf("next cursor _id = %q, want %q", decoded["_id"], "doc-009")
	}
	if want := pagination.FormatTimestamp(docs[9].released); decoded["releasedAt"] != want {
		t.Errorf("next cursor releasedAt = %q, want %q", decoded["releasedAt"], want)
	}
}

func TestAssemblePage_ExactFit(t *testing.T) {
	t.Parallel()

	page, err := pagination.AssemblePage(makeDocs(10), 10, "releasedAt", false)
	if err != nil {
		t.Fatalf("AssemblePage() error = %v", err)
	}

	if page.Meta.HasNext {
		t.Error("has_next = true, want false")
	}
	if page.Meta.NextCursor != nil {
		t.Errorf("next_cursor = %q, want nil", *page.Meta.NextCursor)
	}
	if page.Meta.Returned != 10 {
		t.Errorf("returned = %d, want 10", page.Meta.Returned)
	}
}

func TestAssemblePage_EmptyResult(t *testing.T) {
	t.Parallel()

	page, err := pagination.AssemblePage([]testDoc{}, 10, "releasedAt", false)
	if err != nil {
		t.Fatalf("AssemblePage() error = %v", err)
	}

	if page.Meta.Returned != 0 {
		t.Errorf("returned = %d, want 0", page.Meta.Returned)
	}
	if page.Meta.HasNext {
		t.Error("has_next = true, want false")
	}
	if page.Meta.NextCursor != nil {
		t.Error("next_cursor should be nil for an empty result")
	}
	if page.Meta.PrevCursor != nil {
		t.Error("prev_cursor should be nil for an empty result")
	}
}

func TestAssemblePage_PrevCursor(t *testing.T) {
	t.Parallel()

	docs := makeDocs(5)

	// hasPrev is supplied by the caller: true whenever a cursor was present
	// on the inbound request.
	page, err := pagination.AssemblePage(docs, 10, "releasedAt", true)
	if err != nil {
		t.Fatalf("AssemblePage() error = %v", err)
	}

	if !page.Meta.HasPrev {
		t.Error("has_prev = false, want true")
	}
	if page.Meta.PrevCursor == nil {
		t.Fatal("prev_cursor = nil, want token")
	}

	decoded, err := pagination.DecodeCursor(*page.Meta.PrevCursor)
	if err != nil {
		t.Fatalf("DecodeCursor(prev) error = %v", err)
	}
	if decoded["_id"] != "doc-000" {
		t.Errorf("prev cursor _id = %q, want %q", decoded["_id"], "doc-000")
	}
}

func TestAssemblePage_NoPrevCursorOnFirstPage(t *testing.T) {
	t.Parallel()

	page, err := pagination.AssemblePage(makeDocs(5), 10, "releasedAt", false)
	if err != nil {
		t.Fatalf("AssemblePage() error = %v", err)
	}

	if page.Meta.HasPrev {
		t.Error("has_prev = true, want false")
	}
	if page.Meta.PrevCursor != nil {
		t.Error("prev_cursor should be nil on the first page")
	}
}

func TestAssemblePage_EmptyResultWithHasPrev(t *testing.T) {
	t.Parallel()

	// A cursor past the end of the collection yields an empty page, but
	// has_prev still reflects that a cursor was present on the request.
	page, err := pagination.AssemblePage([]testDoc{}, 10, "releasedAt", true)
	if err != nil {
		t.Fatalf("AssemblePage() error = %v", err)
	}

	if !page.Meta.HasPrev {
		t.Error("has_prev = false, want true")
	}
	if page.Meta.PrevCursor != nil {
		t.Error("prev_cursor should be nil when the page is empty")
	}
}
