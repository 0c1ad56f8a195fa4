package home

import "errors"

var (
	ErrUnknownScreen = errors.New("unknown menu entry")
	ErrNoCreate      = errors.New("selected screen has no create action")
)
