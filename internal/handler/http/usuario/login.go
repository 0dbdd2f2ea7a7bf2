package usuario

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"artigos-api/internal/handler/http/requestid"
	"artigos-api/internal/handler/http/respond"
	svcauth "artigos-api/internal/service/auth"
)

type LoginHandler struct {
	Authn  *svcauth.Authenticator
	Tokens *svcauth.TokenIssuer
	Logger *slog.Logger
}

// ServeHTTP exchanges an email and password for an access token. Unknown
// emails and wrong passwords both answer 404 so the two cases cannot be
// told apart.
func (h LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
		Senha string `json:"senha"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	if req.Email == "" || req.Senha == "" {
		respond.SafeError(w, http.StatusBadRequest,
			errors.New("email and senha are required"))
		return
	}

	usr, err := h.Authn.Authenticate(r.Context(), req.Email, req.Senha)
	if err != nil {
		if errors.Is(err, svcauth.ErrInvalidCredentials) {
			h.Logger.Warn("login rejected",
				slog.String("request_id", requestid.FromContext(r.Context())),
				slog.String("remote_addr", r.RemoteAddr),
			)
			respond.SafeError(w, http.StatusNotFound, svcauth.ErrInvalidCredentials)
			return
		}
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	token, err := h.Tokens.Issue(usr.ID)
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	h.Logger.Info("login succeeded",
		slog.String("request_id", requestid.FromContext(r.Context())),
		slog.Int64("user_id", usr.ID),
	)
	respond.JSON(w, http.StatusOK, TokenDTO{
		AccessToken: token,
		TokenType:   "Bearer",
	})
}
