package paraphrase

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_Kinds(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		kind     Kind
		sentinel error
		text     string
	}{
		{"invalid input", NewInvalidInput("Text cannot be empty"), KindInvalidInput, ErrInvalidInput, "invalid input: Text cannot be empty"},
		{"ai service", NewAIServiceError("Anthropic API returned an error: boom", nil), KindAIService, ErrAIService, "ai service error: Anthropic API returned an error: boom"},
		{"internal", NewInternalError("AI API key not configured"), KindInternal, ErrInternal, "internal server error: AI API key not configured"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.err.Kind())
			assert.Equal(t, tt.text, tt.err.Error())
			assert.True(t, errors.Is(tt.err, tt.sentinel))
		})
	}
}

func TestError_IsDoesNotCrossKinds(t *testing.T) {
	err := NewInvalidInput("bad")

	assert.False(t, errors.Is(err, ErrAIService))
	assert.False(t, errors.Is(err, ErrInternal))
}

func TestError_UnwrapCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewAIServiceError("Failed to call Anthropic API: connection refused", cause)

	assert.Same(t, cause, errors.Unwrap(err))
	assert.True(t, errors.Is(err, cause))
	assert.True(t, errors.Is(err, ErrAIService))
}

func TestError_SurvivesWrapping(t *testing.T) {
	wrapped := fmt.Errorf("paraphrase: %w", NewInternalError("AI API key not configured"))

	var pErr *Error
	require.True(t, errors.As(wrapped, &pErr))
	assert.Equal(t, "AI API key not configured", pErr.Message())
	assert.Equal(t, KindInternal, KindOf(wrapped))
}

func TestKindOf_ForeignError(t *testing.T) {
	assert.Equal(t, KindInternal, KindOf(errors.New("something else")))
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "invalid_input", KindInvalidInput.String())
	assert.Equal(t, "ai_service_error", KindAIService.String())
	assert.Equal(t, "internal_server_error", KindInternal.String())
	assert.Equal(t, "unknown", Kind(0).String())
}
