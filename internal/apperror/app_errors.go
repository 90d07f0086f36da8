package apperror

import "errors"

var (
	ErrInvalidConfiguration = errors.New("invalid game configuration")
	ErrOutOfRange           = errors.New("coordinates out of range")
	ErrInvalidMove          = errors.New("cell is occupied or game is over")
)
