package pathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/api/v1/usuarios/123", "/api/v1/usuarios/:id"},
		{"/api/v1/usuarios/senha/123", "/api/v1/usuarios/senha/:id"},
		{"/api/v1/artigos/9", "/api/v1/artigos/:id"},
		{"/api/v1/artigos/9/", "/api/v1/artigos/:id"},
		{"/api/v1/artigos/9?full=1", "/api/v1/artigos/:id"},
		{"/api/v1/artigos", "/api/v1/artigos"},
		{"/api/v1/usuarios/signup", "/api/v1/usuarios/signup"},
		{"/api/v1/usuarios/login", "/api/v1/usuarios/login"},
		{"/health", "/health"},
		{"/metrics", "/metrics"},
		{"/", "/"},
		{"/unknown/path/123", "/unknown/path/123"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePath(tt.path))
		})
	}
}
