package apperr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nikitaraj/foodbridge/pkg/apperr"
)

func TestValidation(t *testing.T) {
	err := apperr.Validation("quantity must be non-negative")

	assert.True(t, apperr.IsValidation(err))
	assert.False(t, apperr.IsNotFound(err))
	assert.False(t, apperr.IsConstraint(err))
	assert.Equal(t, "quantity must be non-negative", err.Error())
}

func TestValidationFields(t *testing.T) {
	err := apperr.ValidationFields(map[string]string{
		"provider_id": "provider 99 does not exist",
	})

	assert.True(t, apperr.IsValidation(err))
	fields := apperr.FieldsOf(err)
	assert.Equal(t, "provider 99 does not exist", fields["provider_id"])
}

func TestNotFound(t *testing.T) {
	err := apperr.NotFound("claim", 42)

	assert.True(t, apperr.IsNotFound(err))
	assert.Equal(t, "claim 42 not found", err.Error())
}

func TestConstraintWrapsCause(t *testing.T) {
	cause := errors.New("FOREIGN KEY constraint failed")
	err := apperr.Constraint("cannot delete listing with claims", cause)

	assert.True(t, apperr.IsConstraint(err))
	assert.ErrorIs(t, err, cause)
}

func TestPredicatesSeeThroughWrapping(t *testing.T) {
	inner := apperr.NotFound("food listing", 7)
	wrapped := fmt.Errorf("delete failed: %w", inner)

	assert.True(t, apperr.IsNotFound(wrapped))
	assert.False(t, apperr.IsValidation(wrapped))
}

func TestFieldsOfPlainError(t *testing.T) {
	assert.Nil(t, apperr.FieldsOf(errors.New("boom")))
}
