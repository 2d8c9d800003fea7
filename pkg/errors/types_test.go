package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorHTTPCodes(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		expected int
	}{
		{"not found", NotFound("video", "abc"), http.StatusNotFound},
		{"invalid decision", InvalidDecision("maybe"), http.StatusBadRequest},
		{"invalid duration", InvalidDuration(0), http.StatusBadRequest},
		{"unsupported media", UnsupportedMedia("bad.mp4", errors.New("probe failed")), http.StatusUnsupportedMediaType},
		{"storage", StorageError("write", errors.New("disk full")), http.StatusInsufficientStorage},
		{"unauthorized", Unauthorized("photos"), http.StatusUnauthorized},
		{"remote fetch", RemoteFetch("photos", errors.New("timeout")), http.StatusBadGateway},
		{"no kept segments", NoKeptSegments("abc"), http.StatusNotFound},
		{"validation", ValidationError("name", "empty"), http.StatusBadRequest},
		{"database", DatabaseError("query", errors.New("locked")), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.GetHTTPCode())
		})
	}
}

func TestIsAndGetCode(t *testing.T) {
	err := InvalidDecision("maybe")

	assert.True(t, Is(err, ErrCodeInvalidDecision))
	assert.False(t, Is(err, ErrCodeNotFound))
	assert.Equal(t, ErrCodeInvalidDecision, GetCode(err))

	// Codes survive wrapping in plain errors
	wrapped := fmt.Errorf("handling request: %w", err)
	assert.True(t, Is(wrapped, ErrCodeInvalidDecision))
	assert.Equal(t, http.StatusBadRequest, GetHTTPCode(wrapped))

	assert.Equal(t, ErrCodeInternal, GetCode(errors.New("plain")))
	assert.Equal(t, http.StatusInternalServerError, GetHTTPCode(errors.New("plain")))
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("underlying")
	err := StorageError("write", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "underlying")
}
