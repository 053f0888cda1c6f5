package implementations

import (
	"context"
	"time"

	"github.com/cenkalti/backoff"
	"github.com/sagea-ai/reasonet-web-sub000/internal/shared/providers/provider"
)

// Check the struct is implementing the Provider interface.
var _ provider.Provider = &StableProvider{}

// StableProvider retries transient provider errors with exponential backoff.
// Permanent errors (not found, unauthorized) and context cancellation stop retries.
type StableProvider struct {
	underlying   provider.Provider
	totalTimeout time.Duration
	maxRetries   int
}

func NewStableProvider(underlying provider.Provider, totalTimeout time.Duration, maxRetries int) *StableProvider {
	return &StableProvider{
		underlying:   underlying,
		totalTimeout: totalTimeout,
		maxRetries:   maxRetries,
	}
}

func (p StableProvider) Name() string {
	return p.underlying.Name()
}

func (p StableProvider) SetBaseURL(s string) error {
	return p.underlying.SetBaseURL(s)
}

func (p StableProvider) retry(ctx context.Context, f func() error) error {
	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = p.totalTimeout

	bmr := backoff.WithContext(backoff.WithMaxRetries(b, uint64(p.maxRetries)), ctx)
	return backoff.Retry(func() error {
		err := f()
		if err != nil && (provider.IsPermanentError(err) || ctx.Err() != nil) {
			return backoff.Permanent(err)
		}
		return err
	}, bmr)
}

func (p StableProvider) GetPullRequest(ctx context.Context, owner, repo string, number int) (ret *provider.PullRequest, err error) {
	err = p.retry(ctx, func() error {
		ret, err = p.underlying.GetPullRequest(ctx, owner, repo, number)
		return err
	})
	return
}

func (p StableProvider) GetPullRequestDiff(ctx context.Context, owner, repo string, number int) (ret string, err error) {
	err = p.retry(ctx, func() error {
		ret, err = p.underlying.GetPullRequestDiff(ctx, owner, repo, number)
		return err
	})
	return
}

func (p StableProvider) ListOpenPullRequests(ctx context.Context, owner, repo, headBranch string) (ret []provider.PullRequest, err error) {
	err = p.retry(ctx, func() error {
		ret, err = p.underlying.ListOpenPullRequests(ctx, owner, repo, headBranch)
		return err
	})
	return
}

func (p StableProvider) UpdatePullRequestBody(ctx context.Context, owner, repo string, number int, body string) error {
	return p.retry(ctx, func() error {
		return p.underlying.UpdatePullRequestBody(ctx, owner, repo, number, body)
	})
}

// CreateComment isn't retried: a timed out request may have posted the comment.
func (p StableProvider) CreateComment(ctx context.Context, owner, repo string, number int, body string) (*provider.Comment, error) {
	return p.underlying.CreateComment(ctx, owner, repo, number, body)
}

func (p StableProvider) CreateGist(ctx context.Context, description string, public bool,
	files []provider.GistFile) (*provider.Gist, error) {

	return p.underlying.CreateGist(ctx, description, public, files)
}
