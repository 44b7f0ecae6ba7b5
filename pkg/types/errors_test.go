package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvalidInputError(t *testing.T) {
	invalid := NewInvalidInputError()
	assert.False(t, invalid.HasErrors())
	assert.NoError(t, invalid.OrNil())

	invalid.Add("title", "required")
	invalid.Add("title", "must be at most 120 characters")
	invalid.Add("city", "must be one of the listed cities")

	require.True(t, invalid.HasErrors())
	assert.Equal(t, []string{"required", "must be at most 120 characters"}, invalid.Fields["title"])
	assert.Equal(t, "invalid input: city, title", invalid.Error())

	err := invalid.OrNil()
	require.Error(t, err)

	var asInvalid *InvalidInputError
	assert.ErrorAs(t, fmt.Errorf("create need: %w", err), &asInvalid)
}

func TestSessionAuthenticated(t *testing.T) {
	var nilSession *Session
	assert.False(t, nilSession.Authenticated())
	assert.False(t, (&Session{}).Authenticated())
	assert.True(t, (&Session{UserID: "user-1"}).Authenticated())
}

func TestSentinelErrors(t *testing.T) {
	wrapped := fmt.Errorf("participate: %w", ErrAlreadyParticipating)
	assert.True(t, errors.Is(wrapped, ErrAlreadyParticipating))
	assert.False(t, errors.Is(wrapped, ErrNeedNotFound))
}
