package artigo

import (
	"errors"
	"net/http"

	hhttp "artigos-api/internal/handler/http"
	"artigos-api/internal/handler/http/pathutil"
	"artigos-api/internal/handler/http/respond"
	artUC "artigos-api/internal/usecase/article"
)

type DeleteHandler struct{ Svc *artUC.Service }

// ServeHTTP deletes an article owned by the authenticated user. Articles
// owned by other users are reported as not found.
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
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

	if err := h.Svc.Delete(r.Context(), actor, id); err != nil {
		code := http.StatusBadRequest
		if errors.Is(err, artUC.ErrArticleNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}
	hhttp.RecordEntityMutation("artigo", "delete")
	w.WriteHeader(http.StatusNoContent)
}
