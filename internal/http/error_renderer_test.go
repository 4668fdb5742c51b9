package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/pyar/jobboard/internal/errors"
)

func TestWriteAppError_KnownCode(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteAppError(rec, &apperrors.AppError{
		Code: apperrors.ErrCodeConflict, Message: "taken", Field: "name",
	})

	require.Equal(t, http.StatusConflict, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "conflict", body["error"])
	assert.Equal(t, "name", body["field"])
}

func TestWriteAppError_UnknownErrorIsInternal(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteAppError(rec, errors.New("pq: something low level"))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "internal", body["error"])
	assert.Equal(t, "internal server error", body["message"])
}
