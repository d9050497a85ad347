package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type signupForm struct {
	Name      string `form:"name" validate:"required,max=5"`
	Email     string `form:"email" validate:"omitempty,email"`
	Password1 string `form:"password1" validate:"required"`
	Password2 string `form:"password2" validate:"eqfield=Password1"`
	Internal  string `form:"-" validate:"omitempty,uuid"`
}

func TestValidateStruct(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		errs := ValidateStruct(signupForm{Name: "bob", Password1: "x", Password2: "x"})
		assert.Nil(t, errs)
	})

	t.Run("keys are form input names", func(t *testing.T) {
		errs := ValidateStruct(&signupForm{Name: "too long", Email: "nope", Password1: "x", Password2: "y"})

		assert.Equal(t, map[string]string{
			"name":      "Maximum length is 5",
			"email":     "Invalid email format",
			"password2": "The two password fields didn't match",
		}, errs)
	})

	t.Run("required", func(t *testing.T) {
		errs := ValidateStruct(signupForm{})
		assert.Equal(t, "This field is required", errs["name"])
		assert.Equal(t, "This field is required", errs["password1"])
	})
}

func TestFormatValidationErrors(t *testing.T) {
	got := FormatValidationErrors(map[string]string{"b": "second", "a": "first"})
	assert.Equal(t, "a: first; b: second", got)
}
