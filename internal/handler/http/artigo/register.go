package artigo

import (
	"net/http"

	"artigos-api/internal/handler/http/auth"
	artUC "artigos-api/internal/usecase/article"
)

// Register registers all article HTTP handlers with the given mux.
// Every article route requires authentication.
func Register(mux *http.ServeMux, svc *artUC.Service, authz func(http.Handler) http.Handler) {
	mux.Handle("GET    /api/v1/artigos", authz(ListHandler{Svc: svc}))
	mux.Handle("GET    /api/v1/artigos/", authz(GetHandler{Svc: svc}))

	mux.Handle("POST   /api/v1/artigos", authz(CreateHandler{Svc: svc}))
	mux.Handle("PATCH  /api/v1/artigos/", authz(UpdateHandler{Svc: svc}))
	mux.Handle("DELETE /api/v1/artigos/", authz(DeleteHandler{Svc: svc}))
}

// actorID pulls the authenticated user's ID out of the request context.
var actorID = auth.UserID
