package responsewriter

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap_Defaults(t *testing.T) {
	w := Wrap(httptest.NewRecorder())

	assert.Equal(t, http.StatusOK, w.StatusCode())
	assert.Zero(t, w.BytesWritten())
}

func TestWriteHeader_RecordsFirstCallOnly(t *testing.T) {
	rec := httptest.NewRecorder()
	w := Wrap(rec)

	w.WriteHeader(http.StatusAccepted)
	w.WriteHeader(http.StatusInternalServerError)

	assert.Equal(t, http.StatusAccepted, w.StatusCode())
	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestWrite_CountsBytesAndImpliesOK(t *testing.T) {
	rec := httptest.NewRecorder()
	w := Wrap(rec)

	n, err := w.Write([]byte("hello"))
	assert.NoError(t, err)
	assert.Equal(t, 5, n)

	_, _ = w.Write([]byte(" world"))
	assert.Equal(t, 11, w.BytesWritten())
	assert.Equal(t, http.StatusOK, w.StatusCode())
}

func TestUnwrap(t *testing.T) {
	rec := httptest.NewRecorder()
	w := Wrap(rec)

	assert.Same(t, http.ResponseWriter(rec), w.Unwrap())
}
