package usuario

import (
	"encoding/json"
	"errors"
	"net/http"

	hhttp "artigos-api/internal/handler/http"
	"artigos-api/internal/handler/http/pathutil"
	"artigos-api/internal/handler/http/respond"
	userUC "artigos-api/internal/usecase/user"
)

type UpdateHandler struct{ Svc *userUC.Service }

// ServeHTTP applies a sparse update to a user. Only fields present in the
// request body change. Returns the updated user with status 202.
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/api/v1/usuarios/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	var req struct {
		Nome      *string `json:"nome"`
		Sobrenome *string `json:"sobrenome"`
		Email     *string `json:"email"`
		Admin     *bool   `json:"admin"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	usr, err := h.Svc.Update(r.Context(), userUC.UpdateInput{
		ID:        id,
		Nome:      req.Nome,
		Sobrenome: req.Sobrenome,
		Email:     req.Email,
		Admin:     req.Admin,
	})
	if err != nil {
		code := http.StatusBadRequest
		switch {
		case errors.Is(err, userUC.ErrUserNotFound):
			code = http.StatusNotFound
		case errors.Is(err, userUC.ErrEmailAlreadyRegistered):
			code = http.StatusNotAcceptable
		}
		respond.SafeError(w, code, err)
		return
	}
	hhttp.RecordEntityMutation("usuario", "update")
	respond.JSON(w, http.StatusAccepted, toDTO(usr))
}
