// Package usuario provides HTTP handlers for the user endpoints: signup,
// login and account management.
package usuario

import (
	"time"

	"artigos-api/internal/domain/entity"
	"artigos-api/internal/handler/http/artigo"
)

// DTO represents the JSON structure for user data transfer. The password
// digest never leaves the server.
type DTO struct {
	ID        int64     `json:"id"`
	Nome      string    `json:"nome"`
	Sobrenome string    `json:"sobrenome"`
	Email     string    `json:"email"`
	Admin     bool      `json:"admin"`
	CreatedAt time.Time `json:"created_at"`
}

// WithArticlesDTO is the user detail response including owned articles.
type WithArticlesDTO struct {
	DTO
	Artigos []artigo.DTO `json:"artigos"`
}

// TokenDTO is the login response payload.
type TokenDTO struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// toDTO converts a user entity to its wire representation.
func toDTO(u *entity.User) DTO {
	return DTO{
		ID:        u.ID,
		Nome:      u.Nome,
		Sobrenome: u.Sobrenome,
		Email:     u.Email,
		Admin:     u.Admin,
		CreatedAt: u.CreatedAt,
	}
}

// articlesToDTOs converts owned articles to their wire representation for
// the user detail response.
func articlesToDTOs(articles []*entity.Article) []artigo.DTO {
	out := make([]artigo.DTO, 0, len(articles))
	for _, a := range articles {
		out = append(out, artigo.DTO{
			ID:        a.ID,
			Titulo:    a.Titulo,
			Descricao: a.Descricao,
			URLFonte:  a.URLFonte,
			UserID:    a.UserID,
			CreatedAt: a.CreatedAt,
		})
	}
	return out
}

// toDTOs converts a slice of user entities, always returning a non-nil
// slice so empty lists serialize as [].
func toDTOs(users []*entity.User) []DTO {
	out := make([]DTO, 0, len(users))
	for _, u := range users {
		out = append(out, toDTO(u))
	}
	return out
}
