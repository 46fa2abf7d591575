package validator

import (
	"github.com/go-playground/validator/v10"
)

// CustomValidator implements echo.Validator using go-playground/validator
type CustomValidator struct {
	v *validator.Validate
}

// New creates a new CustomValidator instance with the uuid4 tag registered
// for meeting identifiers.
func New() *CustomValidator {
	v := validator.New()
	_ = v.RegisterValidation("meeting_id", func(fl validator.FieldLevel) bool {
		return v.Var(fl.Field().String(), "uuid4") == nil
	})
	return &CustomValidator{v: v}
}

// Validate performs struct validation
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.v.Struct(i)
}
