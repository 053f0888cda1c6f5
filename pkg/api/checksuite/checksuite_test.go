package checksuite

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sagea-ai/reasonet-web-sub000/internal/shared/logutil"
	"github.com/sagea-ai/reasonet-web-sub000/internal/shared/providers/provider"
	"github.com/sagea-ai/reasonet-web-sub000/pkg/api/ghauth"
	"github.com/sagea-ai/reasonet-web-sub000/pkg/api/models"
	"github.com/sagea-ai/reasonet-web-sub000/pkg/api/outcome"
	"github.com/sagea-ai/reasonet-web-sub000/pkg/api/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticAuth struct {
	p   provider.Provider
	err error
}

func (a staticAuth) Resolve(context.Context, *int64) (provider.Provider, ghauth.Method, error) {
	return a.p, ghauth.MethodStaticToken, a.err
}

type handlerFunc func(job *pipeline.PullRequestJob) (*models.Analysis, error)

func (f handlerFunc) Handle(_ context.Context, job *pipeline.PullRequestJob) (*models.Analysis, error) {
	return f(job)
}

var testRepo = &models.Repository{FullName: "octo/app", Name: "app"}

func TestResolveHandlesEveryMatchingPullRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := provider.NewMockProvider(ctrl)
	p.EXPECT().ListOpenPullRequests(gomock.Any(), "octo", "app", "feature").Return([]provider.PullRequest{
		{Number: 3, HeadRef: "feature", HeadSHA: "a"},
		{Number: 5, HeadRef: "feature", HeadSHA: "b"},
	}, nil)

	var jobs []*pipeline.PullRequestJob
	r := Resolver{
		Auth: staticAuth{p: p},
		Handler: handlerFunc(func(job *pipeline.PullRequestJob) (*models.Analysis, error) {
			jobs = append(jobs, job)
			return &models.Analysis{PullRequestNumber: job.Number}, nil
		}),
		Log: logutil.NewStderrLog("test"),
	}

	analyzes, err := r.Resolve(context.Background(), testRepo, "feature", []byte(`{}`), "guid")
	require.NoError(t, err)
	require.Len(t, analyzes, 2)
	require.Len(t, jobs, 2)
	assert.Equal(t, 3, jobs[0].Number)
	assert.Equal(t, "b", jobs[1].HeadSHA)
	assert.Equal(t, "guid", jobs[1].DeliveryGUID)
}

func TestResolveContinuesAfterFailedAnalysis(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := provider.NewMockProvider(ctrl)
	p.EXPECT().ListOpenPullRequests(gomock.Any(), "octo", "app", "feature").Return([]provider.PullRequest{
		{Number: 3}, {Number: 5},
	}, nil)

	calls := 0
	r := Resolver{
		Auth: staticAuth{p: p},
		Handler: handlerFunc(func(job *pipeline.PullRequestJob) (*models.Analysis, error) {
			calls++
			if job.Number == 3 {
				return &models.Analysis{}, outcome.NewFatal(pipeline.StageDiff, errors.New("no diff"))
			}
			return &models.Analysis{}, nil
		}),
		Log: logutil.NewStderrLog("test"),
	}

	analyzes, err := r.Resolve(context.Background(), testRepo, "feature", nil, "")
	require.NoError(t, err)
	assert.Len(t, analyzes, 2)
	assert.Equal(t, 2, calls)
}

func TestResolveWithoutPullRequests(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := provider.NewMockProvider(ctrl)
	p.EXPECT().ListOpenPullRequests(gomock.Any(), "octo", "app", "main").Return(nil, nil)

	r := Resolver{
		Auth: staticAuth{p: p},
		Handler: handlerFunc(func(*pipeline.PullRequestJob) (*models.Analysis, error) {
			t.Fatal("unexpected analysis")
			return nil, nil
		}),
		Log: logutil.NewStderrLog("test"),
	}

	analyzes, err := r.Resolve(context.Background(), testRepo, "main", nil, "")
	require.NoError(t, err)
	assert.Empty(t, analyzes)
}

func TestResolveWithoutCredentials(t *testing.T) {
	r := Resolver{
		Auth: staticAuth{err: ghauth.ErrAuthenticationUnavailable},
		Log:  logutil.NewStderrLog("test"),
	}

	_, err := r.Resolve(context.Background(), testRepo, "main", nil, "")
	assert.Equal(t, outcome.Fatal, outcome.KindOf(err))
	assert.Equal(t, StageAuth, outcome.StageOf(err))
}
