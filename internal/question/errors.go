package question

import "errors"

var (
	ErrNotFound        = errors.New("question not found")
	ErrInvalidArgument = errors.New("invalid argument")
)
