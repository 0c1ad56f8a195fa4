package rules

import "errors"

var (
	ErrDescriptionRequired = errors.New("rule description is required")
	ErrCreateFailed        = errors.New("rule could not be created")
)
