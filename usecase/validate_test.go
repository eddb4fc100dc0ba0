package usecase

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	"github.com/tasknest/backend/domain"
)

type sample struct {
	Title string `validate:"required,max=5"`
	Email string `validate:"omitempty,email"`
}

func TestValidateOK(t *testing.T) {
	v := validator.New()
	assert.NoError(t, Validate(v, sample{Title: "ok"}))
}

func TestValidateNamesOffendingFields(t *testing.T) {
	v := validator.New()

	err := Validate(v, sample{Title: "", Email: "nope"})
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))
	assert.Contains(t, err.Error(), "title")
	assert.Contains(t, err.Error(), "email")
}
