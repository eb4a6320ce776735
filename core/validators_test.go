package core

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitValidators(t *testing.T) {
	translator := NewTranslator()
	validate := NewValidator(translator)

	type data struct {
		Name   string `json:"name" validate:"required"`
		Secret string `json:"-" validate:"required"`
		Email  string `json:"email,omitempty" validate:"omitempty,email"`
	}

	err := validate.Struct(data{Email: "nope"})
	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))

	got := make(map[string]string, len(verrs))
	for _, verr := range verrs {
		got[verr.Field()] = verr.Translate(translator)
	}
	assert.Equal(t, "this field is required", got["name"])
	assert.Equal(t, "email must be a valid email address", got["email"])
	assert.Len(t, got, 3)
}

func TestValidationError(t *testing.T) {
	sentinel := errors.New("user exists")
	err := errors.Wrap(NewValidationError(sentinel, FieldError{Field: "id", Error: "user exists"}), "signing up")

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "user exists", verr.Error())
	assert.True(t, errors.Is(err, sentinel))
	assert.False(t, IsShutdown(err))
	assert.True(t, IsShutdown(errors.Wrap(NewShutdownError("bye"), "ctx")))
}
