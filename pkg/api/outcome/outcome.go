// Package outcome classifies what a failed pipeline stage means for the
// delivery and for the analysis it belongs to.
package outcome

import (
	"fmt"

	"github.com/pkg/errors"
)

type Kind int

const (
	// OK is the kind of a nil error
	OK Kind = iota
	// Rejected stops the delivery before any side effect: bad signature or payload
	Rejected
	// Fatal fails the current analysis, the delivery is still acknowledged
	Fatal
	// Degraded is logged only, the analysis completes
	Degraded
	// Dropped means the event is intentionally ignored and acknowledged
	Dropped
	// Internal is an unclassified error, e.g. the database is down
	Internal
)

func (k Kind) String() string {
	switch k {
	case OK:
		return "ok"
	case Rejected:
		return "rejected"
	case Fatal:
		return "fatal"
	case Degraded:
		return "degraded"
	case Dropped:
		return "dropped"
	case Internal:
		return "internal"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

type Error struct {
	Kind  Kind
	Stage string
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Stage, e.Err)
}

func (e *Error) Cause() error {
	return e.Err
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind Kind, stage string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Stage: stage, Err: err}
}

func NewRejected(stage string, err error) error {
	return newError(Rejected, stage, err)
}

func NewFatal(stage string, err error) error {
	return newError(Fatal, stage, err)
}

func NewDegraded(stage string, err error) error {
	return newError(Degraded, stage, err)
}

func NewDropped(stage string, err error) error {
	return newError(Dropped, stage, err)
}

// KindOf returns OK for nil and Internal for errors no stage classified.
func KindOf(err error) Kind {
	if err == nil {
		return OK
	}

	var oe *Error
	if errors.As(err, &oe) {
		return oe.Kind
	}
	return Internal
}

func StageOf(err error) string {
	var oe *Error
	if errors.As(err, &oe) {
		return oe.Stage
	}
	return ""
}
