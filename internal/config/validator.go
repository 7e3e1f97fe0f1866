package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aleister1102/bugsentry/internal/common"
	"github.com/go-playground/validator/v10"
)

// ValidateConfig performs validation on the GlobalConfig structure.
func ValidateConfig(cfg *GlobalConfig) error {
	validate := validator.New()

	_ = validate.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		switch strings.ToLower(fl.Field().String()) {
		case "", "trace", "debug", "info", "warn", "error", "fatal", "panic":
			return true
		}
		return false
	})

	_ = validate.RegisterValidation("logformat", func(fl validator.FieldLevel) bool {
		switch strings.ToLower(fl.Field().String()) {
		case "", "console", "json", "text":
			return true
		}
		return false
	})

	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		var messages []string
		for _, fieldErr := range validationErrors {
			messages = append(messages, fmt.Sprintf(
				"field '%s' failed on '%s' rule (value: %v)",
				fieldErr.Namespace(), fieldErr.Tag(), fieldErr.Value(),
			))
		}
		return common.NewError("invalid configuration: %s", strings.Join(messages, "; "))
	}
	return common.WrapError(err, "config struct validation")
}

// NewValidationError builds a config-scoped validation error.
func NewValidationError(field string, value interface{}, message string) error {
	return common.NewValidationError(field, value, message)
}
