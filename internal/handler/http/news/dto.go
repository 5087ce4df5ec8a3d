package news

import (
	"time"

	"github.com/Farhad-Valipour/MongoDB-News-API/internal/domain/entity"
)

// AssetDTO is the JSON shape of an asset reference.
type AssetDTO struct {
	Name   string `json:"name"`
	Slug   string `json:"slug"`
	Symbol string `json:"symbol"`
}

// DTO is the JSON shape of a news article. Field names mirror the stored
// document keys. Content is empty on list responses (excluded by the list
// projection) and omitted from the payload in that case.
type DTO struct {
	ID         string     `json:"id"`
	Slug       string     `json:"slug"`
	Title      string     `json:"title"`
	Subtitle   string     `json:"subtitle,omitempty"`
	Content    string     `json:"content,omitempty"`
	Source     string     `json:"source"`
	SourceName string     `json:"sourceName"`
	SourceURL  string     `json:"sourceUrl"`
	ReleasedAt time.Time  `json:"releasedAt"`
	Assets     []AssetDTO `json:"assets,omitempty"`
	CreatedAt  time.Time  `json:"createdAt,omitzero"`
	UpdatedAt  time.Time  `json:"updatedAt,omitzero"`
}

// ToDTO converts a domain entity into its response shape.
func ToDTO(n *entity.News) DTO {
	d := DTO{
		ID:         n.ID.Hex(),
		Slug:       n.Slug,
		Title:      n.Title,
		Subtitle:   n.Subtitle,
		Content:    n.Content,
		Source:     n.Source,
		SourceName: n.SourceName,
		SourceURL:  n.SourceURL,
		ReleasedAt: n.ReleasedAt,
		CreatedAt:  n.CreatedAt,
		UpdatedAt:  n.UpdatedAt,
	}
	if len(n.Assets) > 0 {
		d.Assets = make([]AssetDTO, 0, len(n.Assets))
		for _, a := range n.Assets {
			d.Assets = append(d.Assets, AssetDTO{Name: a.Name, Slug: a.Slug, Symbol: a.Symbol})
		}
	}
	return d
}

// ToDTOs converts a slice of entities.
func ToDTOs(items []*entity.News) []DTO {
	dtos := make([]DTO, 0, len(items))
	for _, n := range items {
		dtos = append(dtos, ToDTO(n))
	}
	return dtos
}
