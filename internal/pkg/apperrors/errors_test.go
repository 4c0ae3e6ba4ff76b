package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTaxonomy(t *testing.T) {
	cause := errors.New("connection reset")

	tests := []struct {
		name     string
		err      error
		sentinel error
		messages []string
	}{
		{"validation single", NewValidationError("title is required"), ErrValidationFailed, []string{"title is required"}},
		{"validation many", NewValidationError("a", "b"), ErrValidationFailed, []string{"a", "b"}},
		{"wrapped validation", fmt.Errorf("%w: bad date", ErrValidationFailed), ErrValidationFailed, []string{"bad date"}},
		{"not found", NewResourceNotFoundError("class not found"), ErrResourceNotFound, []string{"class not found"}},
		{"conflict", NewConflictError("cannot delete the current year"), ErrConflict, []string{"cannot delete the current year"}},
		{"current year", ErrCurrentYearNotSet, ErrValidationFailed, []string{"current academic year is not set"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.sentinel)
			assert.Equal(t, tt.messages, Messages(tt.err))
		})
	}

	t.Run("persistence keeps cause", func(t *testing.T) {
		err := NewPersistenceError(cause, "insert class")
		assert.ErrorIs(t, err, ErrPersistence)
		assert.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "connection reset")
	})
}

func TestIs(t *testing.T) {
	err := NewConflictError("duplicate")
	assert.True(t, Is(err, ErrResourceNotFound, ErrConflict))
	assert.False(t, Is(err, ErrResourceNotFound, ErrValidationFailed))
}

func TestWithDetailsLeavesSharedErrorUntouched(t *testing.T) {
	shared, ok := ErrCurrentYearNotSet.(*CustomError)
	if !assert.True(t, ok) {
		return
	}

	detailed := shared.WithDetails(map[string]interface{}{"path": "/api/v1/exams"})

	assert.Nil(t, shared.Details)
	assert.Equal(t, "/api/v1/exams", detailed.Details["path"])
	assert.ErrorIs(t, detailed, ErrCurrentYearNotSet)
	assert.ErrorIs(t, detailed, ErrValidationFailed)
	assert.Equal(t, []string{"current academic year is not set"}, Messages(detailed))

	again := shared.WithDetails(nil)
	assert.Nil(t, again.Details)
	assert.Equal(t, "/api/v1/exams", detailed.Details["path"])
}
