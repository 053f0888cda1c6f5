package reporters

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sagea-ai/reasonet-web-sub000/internal/shared/providers/provider"
)

type PullRequestCommenter struct{}

var _ Commenter = PullRequestCommenter{}

func (PullRequestCommenter) Comment(ctx context.Context, p provider.Provider, r *Report) (string, error) {
	body, err := RenderComment(r)
	if err != nil {
		return "", err
	}

	c, err := p.CreateComment(ctx, r.Owner, r.Repo, r.PullRequestNumber, body)
	if err != nil {
		return "", errors.Wrapf(err, "failed to comment %s#%d", r.FullName(), r.PullRequestNumber)
	}

	return c.HTMLURL, nil
}
