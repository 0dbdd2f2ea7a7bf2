package usuario

import (
	"errors"
	"net/http"

	hhttp "artigos-api/internal/handler/http"
	"artigos-api/internal/handler/http/pathutil"
	"artigos-api/internal/handler/http/respond"
	userUC "artigos-api/internal/usecase/user"
)

type DeleteHandler struct{ Svc *userUC.Service }

// ServeHTTP removes a user. The database cascade removes their articles
// with them. Answers 204.
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/api/v1/usuarios/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	if err := h.Svc.Delete(r.Context(), id); err != nil {
		code := http.StatusBadRequest
		if errors.Is(err, userUC.ErrUserNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}
	hhttp.RecordEntityMutation("usuario", "delete")
	w.WriteHeader(http.StatusNoContent)
}
