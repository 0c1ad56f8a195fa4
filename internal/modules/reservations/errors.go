package reservations

import "errors"

var (
	ErrNameRequired  = errors.New("resource name is required")
	ErrImageRequired = errors.New("resource image is required")
)
