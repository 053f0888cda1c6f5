// Package checksuite re-runs pull request analyses for a re-requested check suite.
package checksuite

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/sagea-ai/reasonet-web-sub000/internal/shared/logutil"
	"github.com/sagea-ai/reasonet-web-sub000/pkg/api/ghauth"
	"github.com/sagea-ai/reasonet-web-sub000/pkg/api/models"
	"github.com/sagea-ai/reasonet-web-sub000/pkg/api/outcome"
	"github.com/sagea-ai/reasonet-web-sub000/pkg/api/pipeline"
)

const (
	StageAuth = "checksuite_auth"
	StageList = "checksuite_list"
)

type PullRequestHandler interface {
	Handle(ctx context.Context, job *pipeline.PullRequestJob) (*models.Analysis, error)
}

type Resolver struct {
	Auth    ghauth.Resolver
	Handler PullRequestHandler
	Log     logutil.Log
}

// Resolve starts one analysis per open pull request with headBranch as its
// head and returns the started analyses.
func (r Resolver) Resolve(ctx context.Context, repo *models.Repository, headBranch string,
	payload json.RawMessage, deliveryGUID string) ([]*models.Analysis, error) {

	p, _, err := r.Auth.Resolve(ctx, repo.ProviderInstallationID)
	if err != nil {
		return nil, outcome.NewFatal(StageAuth, err)
	}

	pulls, err := p.ListOpenPullRequests(ctx, repo.Owner(), repo.Repo(), headBranch)
	if err != nil {
		return nil, outcome.NewFatal(StageList,
			errors.Wrapf(err, "failed to list pull requests of %s for branch %s", repo.FullName, headBranch))
	}
	if len(pulls) == 0 {
		r.Log.Infof("No open pull requests in %s for branch %s", repo.FullName, headBranch)
		return nil, nil
	}

	var ret []*models.Analysis
	for _, pr := range pulls {
		a, err := r.Handler.Handle(ctx, &pipeline.PullRequestJob{
			Repository:   repo,
			Number:       pr.Number,
			Title:        pr.Title,
			HeadRef:      pr.HeadRef,
			HeadSHA:      pr.HeadSHA,
			Payload:      payload,
			DeliveryGUID: deliveryGUID,
		})
		if a != nil {
			ret = append(ret, a)
		}

		switch outcome.KindOf(err) {
		case outcome.OK:
		case outcome.Fatal:
			// recorded on the analysis, the rest are independent
			r.Log.Warnf("Analysis of %s#%d failed: %s", repo.FullName, pr.Number, err)
		default:
			return ret, errors.Wrapf(err, "failed to handle %s#%d", repo.FullName, pr.Number)
		}
	}

	return ret, nil
}
