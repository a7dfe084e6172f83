package validator

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseErrorFieldMessages(t *testing.T) {
	type form struct {
		Email    string `validate:"required,email"`
		Password string `validate:"required,min=6"`
		Name     string `validate:"required"`
	}

	err := validator.New().Struct(form{Email: "not-an-email", Password: "abc"})
	require.Error(t, err)

	fields := ParseError(err)
	assert.Equal(t, "Must be a valid email address", fields["Email"])
	assert.Equal(t, "Must be at least 6", fields["Password"])
	assert.Equal(t, "This field is required", fields["Name"])
}

func TestParseErrorNonValidatorError(t *testing.T) {
	fields := ParseError(errors.New("unexpected EOF"))
	assert.Equal(t, map[string]string{"error": "unexpected EOF"}, fields)
}

func TestParseErrorNil(t *testing.T) {
	assert.Empty(t, ParseError(nil))
}
