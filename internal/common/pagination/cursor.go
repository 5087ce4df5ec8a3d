// Package pagination implements cursor-based pagination for MongoDB-backed
// collections. It provides the cursor codec (opaque base64 tokens), the
// tie-break query builder that makes pagination stable under concurrent
// inserts, and the page assembler that derives next/prev cursors from an
// over-fetched result set.
package pagination

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Sentinel errors for cursor operations.
var (
	// ErrInvalidCursor indicates that a cursor token could not be decoded.
	// This covers malformed base64, payloads that are not a JSON object,
	// and empty tokens. It is always recoverable at the API boundary and
	// maps to HTTP 400 with code INVALID_CURSOR.
	ErrInvalidCursor = errors.New("invalid cursor format")

	// ErrCursorEncoding indicates that cursor serialization failed.
	// This should not occur for well-formed inputs and exists as a
	// defensive path only.
	ErrCursorEncoding = errors.New("failed to encode cursor")
)

// EncodeCursor encodes a set of cursor fields into an opaque base64 token.
//
// Every value is converted to a canonical string form before serialization:
// time.Time values become UTC RFC 3339 timestamps with the zero offset
// written as "Z" (never "+00:00"), all other values use their default string
// representation. The canonical map is JSON-serialized with sorted keys
// (encoding/json writes map keys in sorted order), which guarantees that
// encoding the same logical field set twice yields byte-identical tokens.
func EncodeCursor(fields map[string]any) (string, error) {
	canonical := make(map[string]string, len(fields))
	for key, value := range fields {
		switch v := value.(type) {
		case time.Time:
			canonical[key] = FormatTimestamp(v)
		case string:
			canonical[key] = v
		default:
			canonical[key] = fmt.Sprintf("%v", v)
		}
	}

	payload, err := json.Marshal(canonical)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCursorEncoding, err)
	}

	return base64.StdEncoding.EncodeToString(payload), nil
}

// DecodeCursor decodes a base64 cursor token back into its field mapping.
// It is the exact inverse of EncodeCursor for any token this package
// produces. Returns ErrInvalidCursor if the token is empty, is not valid
// base64, or does not decode to a JSON object of string values.
func DecodeCursor(token string) (map[string]string, error) {
	if token == "" {
		return nil, fmt.Errorf("%w: empty token", ErrInvalidCursor)
	}

	payload, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCursor, err)
	}

	var fields map[string]string
	if err := json.Unmarshal(payload, &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCursor, err)
	}

	return fields, nil
}

// FormatTimestamp converts a time value to its canonical cursor form:
// UTC RFC 3339 with sub-second digits preserved when present.
// Equivalent instants always produce identical text regardless of the
// offset notation on input.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// ParseTimestamp parses a canonical timestamp string back into a time value.
// Both "Z" and numeric offset notations are accepted.
func ParseTimestamp(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}
