package utils

import (
	"sync"

	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps go-playground/validator so handlers can validate
// bound request structs with a single call.
type CustomValidator struct {
	validate *validator.Validate
}

var (
	validatorOnce     sync.Once
	validatorInstance *CustomValidator
)

// GetValidator returns the shared validator instance.
func GetValidator() *CustomValidator {
	validatorOnce.Do(func() {
		validatorInstance = &CustomValidator{validate: validator.New()}
	})
	return validatorInstance
}

// Validate runs struct validation and returns the first error, if any.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validate.Struct(i)
}
