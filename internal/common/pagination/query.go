package pagination

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order represents the sort direction for a paginated query.
type Order string

const (
	// OrderAsc sorts results in ascending order.
	OrderAsc Order = "asc"
	// OrderDesc sorts results in descending order.
	OrderDesc Order = "desc"
)

// FieldID is the document identifier key used as the pagination tie-break.
const FieldID = "_id"

// Sortable fields exposed to clients via the sort_by query parameter.
const (
	SortFieldReleasedAt = "releasedAt"
	SortFieldTitle      = "title"
	SortFieldCreatedAt  = "createdAt"
)

// temporalFields are the sort fields whose cursor values are canonical
// timestamp strings and must be parsed back into time values before
// comparison against BSON date fields.
var temporalFields = map[string]bool{
	"releasedAt": true,
	"createdAt":  true,
	"updatedAt":  true,
}

// IsTemporalField reports whether the given sort field holds a timestamp.
func IsTemporalField(field string) bool {
	return temporalFields[field]
}

// BuildCursorQuery turns a decoded cursor into a MongoDB predicate that
// matches documents strictly after the cursor position in sort order:
//
//	desc: {$or: [{field: {$lt: v}}, {field: v, _id: {$lt: id}}]}
//	asc:  {$or: [{field: {$gt: v}}, {field: v, _id: {$gt: id}}]}
//
// The _id tie-break makes the resume point exact even when the primary sort
// value is shared by multiple documents, which is what keeps pagination
// stable under concurrent inserts (a plain offset skip is not).
//
// An empty map, a missing identifier, or a missing sort field value all
// return the empty predicate: that is the no-cursor first-page case and the
// fallback for a structurally valid but incomplete cursor.
func BuildCursorQuery(decoded map[string]string, sortField string, order Order) bson.M {
	if len(decoded) == 0 {
		return bson.M{}
	}

	rawID, ok := decoded[FieldID]
	if !ok || rawID == "" {
		return bson.M{}
	}
	rawValue, ok := decoded[sortField]
	if !ok {
		return bson.M{}
	}

	cursorID := parseCursorID(rawID)
	cursorValue := parseCursorValue(sortField, rawValue)

	op := "$lt"
	if order == OrderAsc {
		op = "$gt"
	}

	return bson.M{
		"$or": bson.A{
			bson.M{sortField: bson.M{op: cursorValue}},
			bson.M{sortField: cursorValue, FieldID: bson.M{op: cursorID}},
		},
	}
}

// BuildSort returns the sort specification for a paginated query.
// The document identifier is always appended as a secondary, same-direction
// tie-break so that documents sharing an identical primary sort value still
// have a total order.
func BuildSort(sortField string, order Order) bson.D {
	direction := -1
	if order == OrderAsc {
		direction = 1
	}
	return bson.D{
		{Key: sortField, Value: direction},
		{Key: FieldID, Value: direction},
	}
}

// parseCursorValue converts a decoded cursor value back into the type used
// for comparison. Temporal fields are parsed back into time values; if
// parsing fails the raw string is kept as-is. The fallback is deliberate
// and is not an error.
func parseCursorValue(sortField, raw string) any {
	if !IsTemporalField(sortField) {
		return raw
	}
	t, err := ParseTimestamp(raw)
	if err != nil {
		return raw
	}
	return t
}

// parseCursorID converts a decoded identifier back into an ObjectID.
// Identifiers that are not valid ObjectID hex are kept as raw strings,
// mirroring the lenient handling of cursor values.
func parseCursorID(raw string) any {
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return raw
	}
	return id
}
