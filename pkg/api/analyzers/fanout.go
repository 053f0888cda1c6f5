package analyzers

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sagea-ai/reasonet-web-sub000/pkg/api/models"
	"golang.org/x/sync/errgroup"
)

type Output struct {
	Quality  []Finding
	Security []Finding
	Digest   *Digest
}

// Findings returns quality findings followed by security ones.
func (o Output) Findings() []Finding {
	ret := make([]Finding, 0, len(o.Quality)+len(o.Security))
	ret = append(ret, o.Quality...)
	return append(ret, o.Security...)
}

// FanOut runs the quality, security and summary analyzers concurrently.
// All of them must succeed: the first error cancels the rest.
type FanOut struct {
	Quality  FindingsAnalyzer
	Security FindingsAnalyzer
	Summary  Summarizer

	// Timeout bounds every analyzer separately, zero means no bound
	Timeout time.Duration
}

func (f FanOut) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if f.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, f.Timeout)
}

func (f FanOut) runFindings(ctx context.Context, a FindingsAnalyzer, kind models.ResultKind,
	in *Input, dest *[]Finding) error {

	ctx, cancel := f.withTimeout(ctx)
	defer cancel()

	findings, err := a.Analyze(ctx, in)
	if err != nil {
		return errors.Wrapf(err, "%s analyzer failed", a.Name())
	}

	for i := range findings {
		findings[i].Kind = kind
	}
	*dest = findings
	return nil
}

// guarded turns a collaborator panic into an ordinary error: a panic in an
// errgroup goroutine can't be recovered by the caller and kills the process.
func guarded(name string, run func() error) func() error {
	return func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = errors.Errorf("%s panicked: %v", name, r)
			}
		}()
		return run()
	}
}

func (f FanOut) Run(ctx context.Context, in *Input) (*Output, error) {
	var out Output
	g, gctx := errgroup.WithContext(ctx)

	g.Go(guarded(f.Quality.Name(), func() error {
		return f.runFindings(gctx, f.Quality, models.ResultKindCodeQuality, in, &out.Quality)
	}))
	g.Go(guarded(f.Security.Name(), func() error {
		return f.runFindings(gctx, f.Security, models.ResultKindSecurity, in, &out.Security)
	}))
	g.Go(guarded(f.Summary.Name(), func() error {
		sctx, cancel := f.withTimeout(gctx)
		defer cancel()

		digest, err := f.Summary.Summarize(sctx, in)
		if err != nil {
			return errors.Wrapf(err, "%s summarizer failed", f.Summary.Name())
		}
		if digest == nil {
			return errors.Errorf("%s summarizer returned no digest", f.Summary.Name())
		}
		out.Digest = digest
		return nil
	}))

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &out, nil
}
