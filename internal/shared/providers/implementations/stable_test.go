package implementations

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sagea-ai/reasonet-web-sub000/internal/shared/providers/provider"
	"github.com/stretchr/testify/assert"
)

func TestStableProviderRetriesTransientErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := provider.NewMockProvider(ctrl)
	gomock.InOrder(
		m.EXPECT().GetPullRequestDiff(gomock.Any(), "o", "r", 1).Return("", errors.New("connection reset")),
		m.EXPECT().GetPullRequestDiff(gomock.Any(), "o", "r", 1).Return("diff", nil),
	)

	diff, err := NewStableProvider(m, 5*time.Second, 3).GetPullRequestDiff(context.Background(), "o", "r", 1)
	assert.NoError(t, err)
	assert.Equal(t, "diff", diff)
}

func TestStableProviderStopsOnPermanentError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := provider.NewMockProvider(ctrl)
	m.EXPECT().GetPullRequestDiff(gomock.Any(), "o", "r", 1).Return("", provider.ErrNotFound).Times(1)

	_, err := NewStableProvider(m, 5*time.Second, 3).GetPullRequestDiff(context.Background(), "o", "r", 1)
	assert.Equal(t, provider.ErrNotFound, err)
}

func TestStableProviderDoesNotRetryComments(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := provider.NewMockProvider(ctrl)
	m.EXPECT().CreateComment(gomock.Any(), "o", "r", 1, "b").Return(nil, errors.New("timeout")).Times(1)

	_, err := NewStableProvider(m, 5*time.Second, 3).CreateComment(context.Background(), "o", "r", 1, "b")
	assert.Error(t, err)
}
