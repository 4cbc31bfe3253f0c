package domain

import "errors"

var (
	ErrUnknownProject = errors.New("unknown project")
	ErrUnknownTask    = errors.New("unknown task")
	ErrInvalidDate    = errors.New("invalid date")
	ErrInvalidInput   = errors.New("invalid input")
)
