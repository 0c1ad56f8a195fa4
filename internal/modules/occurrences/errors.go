package occurrences

import "errors"

var (
	ErrTitleAndDescriptionRequired = errors.New("title and description are required")
	ErrRequestFailed               = errors.New("occurrence request failed")
)
