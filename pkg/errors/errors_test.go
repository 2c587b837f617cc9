package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIError(t *testing.T) {
	err := NewAPIError("alice", 404, "user not found")
	assert.Contains(t, err.Error(), "alice")
	assert.Contains(t, err.Error(), "404")

	// Status-driven sentinel matching
	assert.True(t, errors.Is(NewAPIError("alice", 429, "slow down"), ErrRateLimited))
	assert.True(t, errors.Is(NewAPIError("alice", 503, "down"), ErrSourceUnavailable))
	assert.False(t, errors.Is(err, ErrRateLimited))
}

func TestAPIErrorUnwrap(t *testing.T) {
	inner := errors.New("connection refused")
	err := WrapAPI("bob", 0, inner)
	require.Error(t, err)
	assert.ErrorIs(t, err, inner)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestConfigError(t *testing.T) {
	inner := errors.New("bad indent")
	err := NewConfigError("deck", "cannot parse", inner)
	assert.Contains(t, err.Error(), "deck")
	assert.ErrorIs(t, err, inner)

	noComponent := NewConfigError("", "missing file", nil)
	assert.Equal(t, "configuration error: missing file", noComponent.Error())
}

func TestParseError(t *testing.T) {
	err := NewParseError("yaml", "pagedeck.yaml", "unexpected key", nil)
	assert.Contains(t, err.Error(), "pagedeck.yaml")
	assert.Contains(t, err.Error(), "yaml")

	noFile := NewParseError("yaml", "", "unexpected key", nil)
	assert.Equal(t, "yaml parse error: unexpected key", noFile.Error())
}

func TestIOError(t *testing.T) {
	inner := fmt.Errorf("permission denied")
	err := NewIOError("write", "public/index.html", inner)
	assert.Contains(t, err.Error(), "public/index.html")
	assert.ErrorIs(t, err, inner)
}

func TestWrapHelpersNilPassthrough(t *testing.T) {
	assert.NoError(t, WrapIO("read", "x", nil))
	assert.NoError(t, WrapParse("yaml", "x", nil))
	assert.NoError(t, WrapAPI("alice", 200, nil))
}

func TestHelperChecks(t *testing.T) {
	assert.True(t, IsRateLimited(fmt.Errorf("outer: %w", ErrRateLimited)))
	assert.True(t, IsSourceUnavailable(NewAPIError("a", 500, "boom")))
	assert.True(t, IsNotFound(fmt.Errorf("wrapped: %w", ErrNotFound)))
	assert.False(t, IsNotFound(errors.New("other")))
}
