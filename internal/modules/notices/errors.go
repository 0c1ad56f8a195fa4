package notices

import "errors"

var (
	ErrTitleAndMessageRequired = errors.New("title and message are required")
	ErrCreateFailed            = errors.New("notice could not be created")
	ErrDeleteFailed            = errors.New("notice could not be deleted")
)
