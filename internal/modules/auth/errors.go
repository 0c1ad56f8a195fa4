package auth

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValidation     = errors.New("validation error")
	ErrLoginFailed    = errors.New("login failed")
	ErrRegisterFailed = errors.New("registration failed")
)

// ValidationError lists the offending fields by json name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	return fmt.Sprintf("invalid fields: %s", strings.Join(names, ", "))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }
