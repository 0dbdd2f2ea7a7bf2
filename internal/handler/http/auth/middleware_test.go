package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubVerifier struct {
	userID int64
	err    error
}

func (s *stubVerifier) Verify(string) (int64, error) {
	return s.userID, s.err
}

func protected(t *testing.T, verifier Verifier) (http.Handler, *int64) {
	t.Helper()
	var seen int64
	handler := Bearer(verifier)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := UserID(r.Context())
		require.NoError(t, err)
		seen = id
		w.WriteHeader(http.StatusOK)
	}))
	return handler, &seen
}

func TestBearer_ValidToken(t *testing.T) {
	handler, seen := protected(t, &stubVerifier{userID: 42})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/artigos", nil)
	req.Header.Set("Authorization", "Bearer some-valid-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(42), *seen)
}

func TestBearer_MissingHeader(t *testing.T) {
	handler, _ := protected(t, &stubVerifier{userID: 42})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/artigos", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestBearer_MalformedHeader(t *testing.T) {
	handler, _ := protected(t, &stubVerifier{userID: 42})

	for _, header := range []string{"some-token", "Basic dXNlcjpwdw==", "Bearer"} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/artigos", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
	}
}

func TestBearer_InvalidToken(t *testing.T) {
	handler, _ := protected(t, &stubVerifier{err: errors.New("invalid token")})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/artigos", nil)
	req.Header.Set("Authorization", "Bearer expired-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUserID_Missing(t *testing.T) {
	_, err := UserID(context.Background())
	assert.ErrorIs(t, err, ErrNoUser)
}
