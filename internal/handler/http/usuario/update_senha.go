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

type UpdateSenhaHandler struct{ Svc *userUC.Service }

// ServeHTTP replaces a user's password. The submitted value is re-hashed
// before storage. Answers 202 with an empty body.
func (h UpdateSenhaHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/api/v1/usuarios/senha/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	var req struct {
		Senha string `json:"senha"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	if err := h.Svc.ChangePassword(r.Context(), id, req.Senha); err != nil {
		code := http.StatusBadRequest
		if errors.Is(err, userUC.ErrUserNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}
	hhttp.RecordEntityMutation("usuario", "change_password")
	w.WriteHeader(http.StatusAccepted)
}
