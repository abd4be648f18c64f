package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestExecutionError covers message formatting and code matching through
// wrapped chains.
func TestExecutionError(t *testing.T) {
	cause := errors.New("permission denied")
	err := NewExecutionError(CodeIO, "assemble", "could not copy project directory", cause)

	assert.Equal(t, "assemble: could not copy project directory: permission denied", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.True(t, IsCode(err, CodeIO))
	assert.False(t, IsCode(err, CodeBuildFailed))

	wrapped := fmt.Errorf("handling request: %w", err)
	assert.True(t, IsCode(wrapped, CodeIO))
	assert.False(t, IsCode(errors.New("plain"), CodeIO))
	assert.False(t, IsCode(nil, CodeIO))
}

// TestExecutionErrorWithoutCause verifies formatting when no underlying
// error exists.
func TestExecutionErrorWithoutCause(t *testing.T) {
	err := NewExecutionError(CodeInvalidProject, "validate", "project name must be specified for image tagging", nil)
	assert.Equal(t, "validate: project name must be specified for image tagging", err.Error())
	assert.Nil(t, errors.Unwrap(err))
}
