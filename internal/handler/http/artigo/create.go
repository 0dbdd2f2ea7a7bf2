package artigo

import (
	"encoding/json"
	"errors"
	"net/http"

	hhttp "artigos-api/internal/handler/http"
	"artigos-api/internal/handler/http/respond"
	artUC "artigos-api/internal/usecase/article"
)

type CreateHandler struct{ Svc *artUC.Service }

// ServeHTTP creates a new article owned by the authenticated user and
// returns it with status 201.
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, err := actorID(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusUnauthorized, err)
		return
	}

	var req struct {
		Titulo    string `json:"titulo"`
		Descricao string `json:"descricao"`
		URLFonte  string `json:"url_fonte"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	if req.Titulo == "" || req.URLFonte == "" {
		respond.SafeError(w, http.StatusBadRequest,
			errors.New("titulo and url_fonte are required"))
		return
	}

	art, err := h.Svc.Create(r.Context(), artUC.CreateInput{
		Titulo:    req.Titulo,
		Descricao: req.Descricao,
		URLFonte:  req.URLFonte,
		UserID:    actor,
	})
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	hhttp.RecordEntityMutation("artigo", "create")
	respond.JSON(w, http.StatusCreated, toDTO(art))
}
