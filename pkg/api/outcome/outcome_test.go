package outcome

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	base := errors.New("boom")

	assert.Equal(t, OK, KindOf(nil))
	assert.Equal(t, Internal, KindOf(base))
	assert.Equal(t, Degraded, KindOf(NewDegraded("comment", base)))
	assert.Equal(t, Dropped, KindOf(errors.Wrap(NewDropped("registry", base), "handling event")))
	assert.Equal(t, Rejected, KindOf(NewRejected("signature", base)))

	assert.Nil(t, NewFatal("diff", nil))
}

func TestErrorKeepsCause(t *testing.T) {
	base := errors.New("boom")
	err := errors.Wrap(NewFatal("diff", base), "analysis 1")

	assert.Equal(t, base, errors.Cause(err))
	assert.Equal(t, "diff", StageOf(err))
	assert.Equal(t, "analysis 1: diff: boom", err.Error())
	assert.Equal(t, "degraded", Degraded.String())
}
