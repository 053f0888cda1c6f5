package pipeline

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sagea-ai/reasonet-web-sub000/internal/shared/providers/provider"
	"github.com/sagea-ai/reasonet-web-sub000/pkg/api/models"
)

const DefaultDiffFetchTimeout = 30 * time.Second

type DiffFetcher struct {
	Timeout time.Duration
}

func (f DiffFetcher) Fetch(ctx context.Context, p provider.Provider, repo *models.Repository, number int) (string, error) {
	timeout := f.Timeout
	if timeout <= 0 {
		timeout = DefaultDiffFetchTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	diff, err := p.GetPullRequestDiff(ctx, repo.Owner(), repo.Repo(), number)
	if err != nil {
		return "", errors.Wrapf(err, "failed to fetch diff of %s#%d", repo.FullName, number)
	}

	return diff, nil
}
