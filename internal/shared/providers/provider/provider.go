package provider

import (
	"context"
)

//go:generate mockgen -package provider -source provider.go -destination provider_mock.go

type Provider interface {
	Name() string

	SetBaseURL(url string) error

	GetPullRequest(ctx context.Context, owner, repo string, number int) (*PullRequest, error)
	GetPullRequestDiff(ctx context.Context, owner, repo string, number int) (string, error)
	ListOpenPullRequests(ctx context.Context, owner, repo, headBranch string) ([]PullRequest, error)
	UpdatePullRequestBody(ctx context.Context, owner, repo string, number int, body string) error

	CreateComment(ctx context.Context, owner, repo string, number int, body string) (*Comment, error)
	CreateGist(ctx context.Context, description string, public bool, files []GistFile) (*Gist, error)
}
