package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"required"`
}

func TestValidate(t *testing.T) {
	assert.Nil(t, Validate(sample{Email: "a@b.com", Name: "Ana"}))

	errs := Validate(sample{Email: "nope"})
	assert.Equal(t, "email", errs["email"])
	assert.Equal(t, "required", errs["name"])
}
