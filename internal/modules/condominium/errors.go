package condominium

import "errors"

var (
	ErrTokenRequired = errors.New("condominium token is required")
	ErrLinkFailed    = errors.New("invalid token or server unreachable")
	ErrCreateFailed  = errors.New("condominium could not be created")
)
