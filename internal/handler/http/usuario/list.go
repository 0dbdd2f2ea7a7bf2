package usuario

import (
	"net/http"

	"artigos-api/internal/handler/http/respond"
	userUC "artigos-api/internal/usecase/user"
)

type ListHandler struct{ Svc *userUC.Service }

// ServeHTTP lists all users.
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	users, err := h.Svc.List(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTOs(users))
}
