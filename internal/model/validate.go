package model

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("fontfamily", func(fl validator.FieldLevel) bool {
		return FontFamily(fl.Field().String()).IsValid()
	}); err != nil {
		panic(fmt.Sprintf("register fontfamily validation: %v", err))
	}
	return v
}

// validateStruct runs tag validation and maps failures onto ErrValidation
func validateStruct(v any) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return nil
}
