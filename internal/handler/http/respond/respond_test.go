package respond

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	JSON(rec, 201, map[string]string{"titulo": "t"})

	assert.Equal(t, 201, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "t", body["titulo"])
}

func TestJSON_NilBody(t *testing.T) {
	rec := httptest.NewRecorder()
	JSON(rec, 204, nil)

	assert.Equal(t, 204, rec.Code)
	assert.Zero(t, rec.Body.Len())
}

func TestSafeError_PassesValidationMessages(t *testing.T) {
	rec := httptest.NewRecorder()
	SafeError(rec, 400, errors.New("validation error on field 'titulo': is required"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "titulo")
}

func TestSafeError_MasksInternalMessages(t *testing.T) {
	rec := httptest.NewRecorder()
	SafeError(rec, 500, errors.New("dial tcp 10.0.0.5:5432: connection refused"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "internal server error", body["error"])
}

func TestSafeError_ServerErrorsNeverPassThrough(t *testing.T) {
	// The message looks safe but the status class wins.
	rec := httptest.NewRecorder()
	SafeError(rec, 500, errors.New("article not found"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "internal server error", body["error"])
}

func TestSafeError_NilError(t *testing.T) {
	rec := httptest.NewRecorder()
	SafeError(rec, 500, nil)

	assert.Zero(t, rec.Body.Len())
}
