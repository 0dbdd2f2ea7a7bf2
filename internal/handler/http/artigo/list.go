package artigo

import (
	"net/http"

	"artigos-api/internal/handler/http/respond"
	artUC "artigos-api/internal/usecase/article"
)

type ListHandler struct{ Svc *artUC.Service }

// ServeHTTP lists all articles.
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	articles, err := h.Svc.List(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTOs(articles))
}
