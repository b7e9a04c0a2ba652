package apperrors

import "errors"

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrNotFound       = errors.New("not found")
	ErrUnknownCommand = errors.New("unknown command")
	ErrInvalidConfig  = errors.New("invalid config")
)
