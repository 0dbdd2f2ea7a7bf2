// Package artigo provides HTTP handlers for the article endpoints.
// It includes handlers for creating, listing, updating and deleting
// articles.
package artigo

import (
	"time"

	"artigos-api/internal/domain/entity"
)

// DTO represents the JSON structure for article data transfer. Articles
// reference their owner by ID only.
type DTO struct {
	ID        int64     `json:"id"`
	Titulo    string    `json:"titulo"`
	Descricao string    `json:"descricao"`
	URLFonte  string    `json:"url_fonte"`
	UserID    int64     `json:"usuario_id"`
	CreatedAt time.Time `json:"created_at"`
}

// toDTO converts an article entity to its wire representation.
func toDTO(a *entity.Article) DTO {
	return DTO{
		ID:        a.ID,
		Titulo:    a.Titulo,
		Descricao: a.Descricao,
		URLFonte:  a.URLFonte,
		UserID:    a.UserID,
		CreatedAt: a.CreatedAt,
	}
}

// toDTOs converts a slice of article entities, always returning a non-nil
// slice so empty lists serialize as [].
func toDTOs(articles []*entity.Article) []DTO {
	out := make([]DTO, 0, len(articles))
	for _, a := range articles {
		out = append(out, toDTO(a))
	}
	return out
}
