package pathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractID(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		prefix  string
		want    int64
		wantErr bool
	}{
		{name: "valid id", path: "/api/v1/artigos/123", prefix: "/api/v1/artigos/", want: 123},
		{name: "password route", path: "/api/v1/usuarios/senha/7", prefix: "/api/v1/usuarios/senha/", want: 7},
		{name: "not a number", path: "/api/v1/artigos/abc", prefix: "/api/v1/artigos/", wantErr: true},
		{name: "zero", path: "/api/v1/artigos/0", prefix: "/api/v1/artigos/", wantErr: true},
		{name: "negative", path: "/api/v1/artigos/-5", prefix: "/api/v1/artigos/", wantErr: true},
		{name: "empty remainder", path: "/api/v1/artigos/", prefix: "/api/v1/artigos/", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := ExtractID(tt.path, tt.prefix)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidID)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}
}
