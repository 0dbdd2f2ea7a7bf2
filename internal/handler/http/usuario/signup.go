package usuario

import (
	"encoding/json"
	"errors"
	"net/http"

	hhttp "artigos-api/internal/handler/http"
	"artigos-api/internal/handler/http/respond"
	userUC "artigos-api/internal/usecase/user"
)

type SignupHandler struct{ Svc *userUC.Service }

// ServeHTTP registers a new user and returns it with status 201. A taken
// email is rejected with 406.
func (h SignupHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Nome      string `json:"nome"`
		Sobrenome string `json:"sobrenome"`
		Email     string `json:"email"`
		Senha     string `json:"senha"`
		Admin     bool   `json:"admin"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	if req.Nome == "" || req.Email == "" || req.Senha == "" {
		respond.SafeError(w, http.StatusBadRequest,
			errors.New("nome, email and senha are required"))
		return
	}

	usr, err := h.Svc.Signup(r.Context(), userUC.SignupInput{
		Nome:      req.Nome,
		Sobrenome: req.Sobrenome,
		Email:     req.Email,
		Senha:     req.Senha,
		Admin:     req.Admin,
	})
	if err != nil {
		code := http.StatusBadRequest
		if errors.Is(err, userUC.ErrEmailAlreadyRegistered) {
			code = http.StatusNotAcceptable
		}
		respond.SafeError(w, code, err)
		return
	}
	hhttp.RecordEntityMutation("usuario", "create")
	respond.JSON(w, http.StatusCreated, toDTO(usr))
}
