package usuario

import (
	"log/slog"
	"net/http"

	svcauth "artigos-api/internal/service/auth"
	artUC "artigos-api/internal/usecase/article"
	userUC "artigos-api/internal/usecase/user"
)

// Deps bundles everything the user handlers need.
type Deps struct {
	Users    *userUC.Service
	Articles *artUC.Service
	Authn    *svcauth.Authenticator
	Tokens   *svcauth.TokenIssuer
	Logger   *slog.Logger

	// Authz guards the protected routes; LoginLimiter throttles the
	// public credential endpoints.
	Authz        func(http.Handler) http.Handler
	LoginLimiter func(http.Handler) http.Handler
}

// Register registers all user HTTP handlers with the given mux. Signup and
// login are public (rate limited); everything else requires a valid token.
func Register(mux *http.ServeMux, d Deps) {
	mux.Handle("POST   /api/v1/usuarios/signup", d.LoginLimiter(SignupHandler{Svc: d.Users}))
	mux.Handle("POST   /api/v1/usuarios/login", d.LoginLimiter(LoginHandler{
		Authn:  d.Authn,
		Tokens: d.Tokens,
		Logger: d.Logger,
	}))

	mux.Handle("GET    /api/v1/usuarios", d.Authz(ListHandler{Svc: d.Users}))
	mux.Handle("GET    /api/v1/usuarios/logado", d.Authz(LogadoHandler{Svc: d.Users}))
	mux.Handle("GET    /api/v1/usuarios/", d.Authz(GetHandler{Users: d.Users, Articles: d.Articles}))

	mux.Handle("PATCH  /api/v1/usuarios/senha/", d.Authz(UpdateSenhaHandler{Svc: d.Users}))
	mux.Handle("PATCH  /api/v1/usuarios/", d.Authz(UpdateHandler{Svc: d.Users}))
	mux.Handle("DELETE /api/v1/usuarios/", d.Authz(DeleteHandler{Svc: d.Users}))
}
