package serverutils

import (
	"fmt"

	"logfiber-be/internal/apperror"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest runs struct-tag validation and folds failures into the
// InputError class so the error middleware answers 400.
func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			first := errs[0]
			return apperror.Inputf("field %s failed validation (%s)", first.Field(), first.Tag())
		}
		return apperror.Inputf("%s", fmt.Sprint(err))
	}
	return nil
}
