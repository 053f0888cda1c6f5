package provider

import "github.com/pkg/errors"

var (
	ErrUnauthorized = errors.New("no VCS provider authorization")
	ErrForbidden    = errors.New("VCS provider denied access")
	ErrNotFound     = errors.New("not found in VCS provider")
)

func IsPermanentError(err error) bool {
	causeErr := errors.Cause(err)
	return causeErr == ErrNotFound || causeErr == ErrUnauthorized || causeErr == ErrForbidden
}
