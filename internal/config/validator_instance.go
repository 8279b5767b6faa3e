package config

import (
	"net/url"
	"path/filepath"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	logLevels = map[string]struct{}{
		"trace": {}, "debug": {}, "info": {}, "warn": {}, "error": {}, "fatal": {}, "panic": {}, "disabled": {},
	}
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("service_url", func(fl validator.FieldLevel) bool {
			raw := strings.TrimSpace(fl.Field().String())
			if raw == "" {
				return false
			}
			parsed, err := url.Parse(raw)
			if err != nil {
				return false
			}
			scheme := strings.ToLower(parsed.Scheme)
			return (scheme == "http" || scheme == "https") && parsed.Host != ""
		})

		_ = v.RegisterValidation("log_level", func(fl validator.FieldLevel) bool {
			level := strings.ToLower(fl.Field().String())
			if level == "" {
				return true
			}
			_, ok := logLevels[level]
			return ok
		})

		_ = v.RegisterValidation("abs_path", func(fl validator.FieldLevel) bool {
			path := fl.Field().String()
			return !strings.Contains(path, "\x00") && filepath.IsAbs(path)
		})

		validateInst = v
	})

	return validateInst
}
