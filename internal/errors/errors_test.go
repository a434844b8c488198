package errors_test

import (
	"fmt"
	"testing"

	apperr "github.com/KirkDiggler/wolfbot/internal/errors"
	"github.com/stretchr/testify/assert"
)

func TestWrap_PreservesCode(t *testing.T) {
	base := apperr.NotFoundf("player %s not found", "42").WithMeta("player_id", "42")

	wrapped := apperr.Wrap(base, "failed to cast vote")

	assert.True(t, apperr.IsNotFound(wrapped))
	assert.Equal(t, "42", apperr.GetMeta(wrapped)["player_id"])
	assert.Equal(t, "failed to cast vote: player 42 not found", wrapped.Error())
}

func TestWrap_Nil(t *testing.T) {
	assert.Nil(t, apperr.Wrap(nil, "ignored"))
	assert.Nil(t, apperr.Wrapf(nil, "ignored %d", 1))
	assert.Nil(t, apperr.WrapWithCode(nil, apperr.CodeInternal, "ignored"))
}

func TestPersistence_WrapsForeignError(t *testing.T) {
	err := apperr.Persistence(fmt.Errorf("unexpected end of JSON input"), "failed to parse game document")

	assert.True(t, apperr.IsPersistence(err))
	assert.Equal(t, apperr.CodePersistence, apperr.GetCode(err))
	assert.Contains(t, err.Error(), "unexpected end of JSON input")
}

func TestIs_ThroughFmtWrapping(t *testing.T) {
	err := fmt.Errorf("outer: %w", apperr.InvalidTransition("round already active"))

	assert.True(t, apperr.IsInvalidTransition(err))
	assert.False(t, apperr.IsConcurrentModification(err))
	assert.Equal(t, apperr.CodeUnknown, apperr.GetCode(fmt.Errorf("plain")))
}
