package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/voluntree/assist/internal/domain"
)

func TestSuccess(t *testing.T) {
	rec := httptest.NewRecorder()
	Success(rec, http.StatusOK, map[string]string{"status": "ok"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp SuccessResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, map[string]interface{}{"status": "ok"}, resp.Data)
}

func TestError(t *testing.T) {
	rec := httptest.NewRecorder()
	Error(rec, http.StatusBadRequest, "bad input")

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "bad input", resp.Error)
}

func TestDomainErrorToHTTP(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"nil", nil, http.StatusOK},
		{"validation", domain.ErrEmptyQuestion, http.StatusBadRequest},
		{"not found", domain.NewDomainError(domain.ErrCodeNotFound, "gone"), http.StatusNotFound},
		{"unavailable", domain.ErrChatNotConfigured, http.StatusServiceUnavailable},
		{"internal", domain.NewDomainError(domain.ErrCodeInternalError, "boom"), http.StatusInternalServerError},
		{"unknown code", domain.NewDomainError("SOMETHING_ELSE", "boom"), http.StatusInternalServerError},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, DomainErrorToHTTP(tt.err))
		})
	}
}

func TestHandleError(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, domain.ErrEmptyQuestion)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "question is required")
}
