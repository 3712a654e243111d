package utils

import (
	"errors"
	"fmt"

	"blog-api/pkg/validator"

	validatorv10 "github.com/go-playground/validator"
)

// ValidateRequest validates a struct using validator tags
func ValidateRequest(req interface{}) error {
	if err := validator.Validate.Struct(req); err != nil {
		var validationErrors validatorv10.ValidationErrors
		if errors.As(err, &validationErrors) {
			for _, validationErr := range validationErrors {
				return fmt.Errorf("field '%s' failed validation on the '%s' tag", validationErr.Field(), validationErr.Tag())
			}
		}
		return err
	}

	return nil
}
