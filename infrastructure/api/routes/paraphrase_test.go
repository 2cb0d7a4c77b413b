package routes

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRequest(t *testing.T) {
	got, err := decodeRequest(strings.NewReader(`{"text":"hello"}`))
	require.NoError(t, err)
	assert.Equal(t, "hello", got.Text)
}

func TestDecodeRequest_MissingText(t *testing.T) {
	got, err := decodeRequest(strings.NewReader(`{}`))
	require.NoError(t, err)
	assert.Empty(t, got.Text)
}

func TestDecodeRequest_TrailingData(t *testing.T) {
	_, err := decodeRequest(strings.NewReader(`{"text":"hello"} extra`))
	assert.ErrorIs(t, err, errTrailingData)
}

func TestDecodeRequest_Empty(t *testing.T) {
	_, err := decodeRequest(strings.NewReader(``))
	assert.Error(t, err)
}
