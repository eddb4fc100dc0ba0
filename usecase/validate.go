package usecase

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/tasknest/backend/domain"
)

// Validate runs struct validation and converts failures into a domain error
// that enumerates the offending fields.
func Validate(v *validator.Validate, in interface{}) error {
	err := v.Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, strings.ToLower(fe.Field()))
		}
		return domain.NewError(domain.ErrCodeInvalid, "invalid fields: "+strings.Join(fields, ", "))
	}
	return domain.WrapError(domain.ErrCodeInvalid, "invalid payload", err)
}
