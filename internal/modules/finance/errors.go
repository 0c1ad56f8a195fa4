package finance

import (
	"errors"
	"fmt"
)

var (
	ErrValidation   = errors.New("validation error")
	ErrCreateFailed = errors.New("charge could not be created")
)

// ValidationError lists the offending fields by json name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid charge: %v", e.Fields)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }
