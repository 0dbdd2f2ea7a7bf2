// Package auth provides the bearer token middleware guarding the API's
// protected routes.
package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"artigos-api/internal/handler/http/respond"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

// userIDKey is the context key holding the authenticated user's ID.
const userIDKey contextKey = "user_id"

// ErrNoUser is returned by UserID when the context carries no
// authenticated user.
var ErrNoUser = errors.New("no authenticated user in context")

// UserID returns the authenticated user's ID stored by the Bearer
// middleware.
func UserID(ctx context.Context) (int64, error) {
	if id, ok := ctx.Value(userIDKey).(int64); ok {
		return id, nil
	}
	return 0, ErrNoUser
}

// WithUserID returns a context carrying the authenticated user's ID.
// Exposed for handler tests.
func WithUserID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// Verifier validates an access token and returns the user ID it was issued
// for.
type Verifier interface {
	Verify(token string) (int64, error)
}

// Bearer returns middleware that requires a valid "Authorization: Bearer"
// header. On success the user ID is stored in the request context; on
// failure the request is rejected with 401.
func Bearer(verifier Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			token, ok := bearerToken(r)
			if !ok {
				recordAuthRequest("missing_token", time.Since(start))
				respond.SafeError(w, http.StatusUnauthorized, errors.New("invalid or missing credentials"))
				return
			}

			userID, err := verifier.Verify(token)
			if err != nil {
				recordAuthRequest("invalid_token", time.Since(start))
				respond.SafeError(w, http.StatusUnauthorized, errors.New("invalid or missing credentials"))
				return
			}

			recordAuthRequest("success", time.Since(start))
			ctx := WithUserID(r.Context(), userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken extracts the token from the Authorization header.
func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	return header[len(prefix):], true
}
