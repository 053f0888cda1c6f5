package reporters

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sagea-ai/reasonet-web-sub000/internal/shared/logutil"
	"github.com/sagea-ai/reasonet-web-sub000/internal/shared/providers/provider"
	"github.com/sagea-ai/reasonet-web-sub000/pkg/api/outcome"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type trioMocks struct {
	artifact    *MockArtifactPublisher
	commenter   *MockCommenter
	description *MockDescriptionRewriter
	p           *provider.MockProvider
}

func newTrio(t *testing.T) (Trio, trioMocks) {
	ctrl := gomock.NewController(t)
	m := trioMocks{
		artifact:    NewMockArtifactPublisher(ctrl),
		commenter:   NewMockCommenter(ctrl),
		description: NewMockDescriptionRewriter(ctrl),
		p:           provider.NewMockProvider(ctrl),
	}
	return Trio{Artifact: m.artifact, Commenter: m.commenter, Description: m.description}, m
}

func TestTrioAllSucceed(t *testing.T) {
	trio, m := newTrio(t)
	r := &Report{}
	ctx := context.Background()

	gomock.InOrder(
		m.artifact.EXPECT().Publish(ctx, m.p, r).Return("https://gist/1", nil),
		m.commenter.EXPECT().Comment(ctx, m.p, r).DoAndReturn(func(_ context.Context, _ provider.Provider, r *Report) (string, error) {
			assert.Equal(t, "https://gist/1", r.ArtifactURL)
			return "https://comment/1", nil
		}),
		m.description.EXPECT().Rewrite(ctx, m.p, r).Return(nil),
	)

	res := trio.Run(ctx, m.p, r, logutil.NewStderrLog("test"))
	assert.Equal(t, "https://gist/1", res.ArtifactURL)
	assert.Equal(t, "https://comment/1", res.CommentURL)
	assert.Empty(t, res.Degraded)
}

func TestTrioFailuresAreIsolated(t *testing.T) {
	trio, m := newTrio(t)
	r := &Report{}
	ctx := context.Background()

	m.artifact.EXPECT().Publish(ctx, m.p, r).Return("", errors.New("gist api down"))
	m.commenter.EXPECT().Comment(ctx, m.p, r).DoAndReturn(func(_ context.Context, _ provider.Provider, r *Report) (string, error) {
		assert.Equal(t, "", r.ArtifactURL)
		return "", errors.New("forbidden")
	})
	m.description.EXPECT().Rewrite(ctx, m.p, r).Return(errors.New("forbidden"))

	res := trio.Run(ctx, m.p, r, logutil.NewStderrLog("test"))
	assert.Equal(t, "", res.ArtifactURL)
	require.Len(t, res.Degraded, 3)
	for _, err := range res.Degraded {
		assert.Equal(t, outcome.Degraded, outcome.KindOf(err))
	}
	assert.Equal(t, []string{StageArtifact, StageComment, StageDescription}, res.DegradedStages())
}
