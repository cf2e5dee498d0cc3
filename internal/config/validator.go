package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// ValidateConfig performs validation on the GlobalConfig structure.
func ValidateConfig(cfg *GlobalConfig) error {
	validate := validator.New()

	_ = validate.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		_, err := zerolog.ParseLevel(strings.ToLower(fl.Field().String()))
		return err == nil
	})

	_ = validate.RegisterValidation("logformat", func(fl validator.FieldLevel) bool {
		switch strings.ToLower(fl.Field().String()) {
		case "json", "console", "text":
			return true
		}
		return false
	})

	_ = validate.RegisterValidation("viewmode", func(fl validator.FieldLevel) bool {
		switch strings.ToLower(fl.Field().String()) {
		case "line-by-line", "line", "side-by-side", "side":
			return true
		}
		return false
	})

	_ = validate.RegisterValidation("theme", func(fl validator.FieldLevel) bool {
		switch strings.ToLower(fl.Field().String()) {
		case "dark", "light":
			return true
		}
		return false
	})

	if err := validate.Struct(cfg); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			messages := make([]string, 0, len(validationErrors))
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("field '%s' failed on '%s'",
					fieldErr.Namespace(), fieldErr.Tag()))
			}
			return fmt.Errorf("config validation failed: %s", strings.Join(messages, "; "))
		}
		return err
	}

	return nil
}
