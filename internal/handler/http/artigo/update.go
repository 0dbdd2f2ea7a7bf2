package artigo

import (
	"encoding/json"
	"errors"
	"net/http"

	hhttp "artigos-api/internal/handler/http"
	"artigos-api/internal/handler/http/pathutil"
	"artigos-api/internal/handler/http/respond"
	artUC "artigos-api/internal/usecase/article"
)

type UpdateHandler struct{ Svc *artUC.Service }

// ServeHTTP applies a sparse update to an article. Only fields present in
// the request body change; an edit by a non-owner transfers ownership to
// the editor. Returns the updated article with status 202.
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, err := actorID(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusUnauthorized, err)
		return
	}

	id, err := pathutil.ExtractID(r.URL.Path, "/api/v1/artigos/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	var req struct {
		Titulo    *string `json:"titulo"`
		Descricao *string `json:"descricao"`
		URLFonte  *string `json:"url_fonte"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	art, err := h.Svc.Update(r.Context(), actor, artUC.UpdateInput{
		ID:        id,
		Titulo:    req.Titulo,
		Descricao: req.Descricao,
		URLFonte:  req.URLFonte,
	})
	if err != nil {
		code := http.StatusBadRequest
		if errors.Is(err, artUC.ErrArticleNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}
	hhttp.RecordEntityMutation("artigo", "update")
	respond.JSON(w, http.StatusAccepted, toDTO(art))
}
