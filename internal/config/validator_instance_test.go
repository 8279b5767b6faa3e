package config

import (
	"testing"
)

func TestValidatorInstanceIsShared(t *testing.T) {
	if validatorInstance() != validatorInstance() {
		t.Error("validatorInstance should return the same instance")
	}
}

func TestServiceURLValidation(t *testing.T) {
	v := validatorInstance()

	tests := []struct {
		name     string
		url      string
		expected bool
	}{
		{"empty string", "", false},
		{"space", " ", false},
		{"default endpoint", "https://api.dictionaryapi.dev/api/v2/entries/en", true},
		{"local http", "http://127.0.0.1:9000", true},
		{"no host", "https:///path", false},
		{"ftp scheme", "ftp://example.com/en", false},
		{"bare word", "dictionary", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Var(tt.url, "service_url")
			if got := err == nil; got != tt.expected {
				t.Errorf("service_url(%q) valid = %v, want %v (err: %v)", tt.url, got, tt.expected, err)
			}
		})
	}
}

func TestLogLevelValidation(t *testing.T) {
	v := validatorInstance()

	for level, expected := range map[string]bool{
		"":      true,
		"debug": true,
		"INFO":  true,
		"warn":  true,
		"loud":  false,
	} {
		err := v.Var(level, "log_level")
		if got := err == nil; got != expected {
			t.Errorf("log_level(%q) valid = %v, want %v", level, got, expected)
		}
	}
}

func TestSnakeCase(t *testing.T) {
	for in, want := range map[string]string{
		"BaseURL":       "base_url",
		"RateLimit":     "rate_limit",
		"HumanReadable": "human_readable",
		"Service":       "service",
	} {
		if got := snakeCase(in); got != want {
			t.Errorf("snakeCase(%q) = %q, want %q", in, got, want)
		}
	}
}
