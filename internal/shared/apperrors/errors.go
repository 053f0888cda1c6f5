package apperrors

import "github.com/pkg/errors"

var (
	ErrNotFound     = errors.New("no data")
	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("unauthorized")
	ErrInternal     = errors.New("internal error")
)
