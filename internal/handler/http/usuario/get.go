package usuario

import (
	"errors"
	"net/http"

	"artigos-api/internal/handler/http/pathutil"
	"artigos-api/internal/handler/http/respond"
	artUC "artigos-api/internal/usecase/article"
	userUC "artigos-api/internal/usecase/user"
)

type GetHandler struct {
	Users    *userUC.Service
	Articles *artUC.Service
}

// ServeHTTP returns a single user by ID together with the articles they
// own.
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/api/v1/usuarios/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	usr, err := h.Users.Get(r.Context(), id)
	if err != nil {
		code := http.StatusBadRequest
		if errors.Is(err, userUC.ErrUserNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}

	articles, err := h.Articles.ListByUser(r.Context(), id)
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	respond.JSON(w, http.StatusOK, WithArticlesDTO{
		DTO:     toDTO(usr),
		Artigos: articlesToDTOs(articles),
	})
}
