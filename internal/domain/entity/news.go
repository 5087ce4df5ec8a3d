// Package entity defines the core domain entities of the news API.
package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Asset represents a financial asset mentioned by a news article
// (e.g., a cryptocurrency or a stock).
type Asset struct {
	Name   string `bson:"name" json:"name"`
	Slug   string `bson:"slug" json:"slug"`
	Symbol string `bson:"symbol" json:"symbol"`
}

// News represents a news article as stored in the MongoDB collection.
// Source documents are schemaless; this struct is the explicit projection
// decoded at the collection boundary. List queries leave Content empty
// (excluded by projection), detail queries populate every field.
type News struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Slug       string             `bson:"slug"`
	Title      string             `bson:"title"`
	Subtitle   string             `bson:"subtitle,omitempty"`
	Content    string             `bson:"content,omitempty"`
	Source     string             `bson:"source"`
	SourceName string             `bson:"sourceName"`
	SourceURL  string             `bson:"sourceUrl"`
	ReleasedAt time.Time          `bson:"releasedAt"`
	Assets     []Asset            `bson:"assets,omitempty"`
	CreatedAt  time.Time          `bson:"createdAt,omitempty"`
	UpdatedAt  time.Time          `bson:"updatedAt,omitempty"`
}

// DocumentID returns the hex form of the document identifier.
// Together with SortValue this lets the pagination engine derive cursors
// from news documents without knowing their shape.
func (n *News) DocumentID() string {
	return n.ID.Hex()
}

// SortValue returns the article's value for the given sort field.
// Returns nil for fields that are not sortable.
func (n *News) SortValue(field string) any {
	switch field {
	case "releasedAt":
		return n.ReleasedAt
	case "title":
		return n.Title
	case "createdAt":
		return n.CreatedAt
	default:
		return nil
	}
}
