package usuario

import (
	"errors"
	"net/http"

	"artigos-api/internal/handler/http/auth"
	"artigos-api/internal/handler/http/respond"
	userUC "artigos-api/internal/usecase/user"
)

type LogadoHandler struct{ Svc *userUC.Service }

// ServeHTTP returns the account of the authenticated user.
func (h LogadoHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := auth.UserID(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusUnauthorized, err)
		return
	}

	usr, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, userUC.ErrUserNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(usr))
}
