package implementations

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v60/github"
	"github.com/pkg/errors"
	"github.com/sagea-ai/reasonet-web-sub000/internal/shared/logutil"
	"github.com/sagea-ai/reasonet-web-sub000/internal/shared/providers/provider"
	"golang.org/x/oauth2"
)

// Check the struct is implementing the Provider interface.
var _ provider.Provider = &Github{}

const GithubProviderName = "github.com"

const maxPullRequestPages = 10

type Github struct {
	tokenSource oauth2.TokenSource
	baseURL     *url.URL
	log         logutil.Log
}

func NewGithub(ts oauth2.TokenSource, log logutil.Log) *Github {
	return &Github{
		tokenSource: ts,
		log:         log,
	}
}

func (p Github) Name() string {
	return GithubProviderName
}

// ParseBaseURL parses an API base url, go-github requires a trailing slash.
func ParseBaseURL(s string) (*url.URL, error) {
	if !strings.HasSuffix(s, "/") {
		s += "/"
	}

	baseURL, err := url.Parse(s)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse url")
	}

	return baseURL, nil
}

func (p *Github) SetBaseURL(s string) error {
	baseURL, err := ParseBaseURL(s)
	if err != nil {
		return err
	}

	p.baseURL = baseURL
	return nil
}

func (p Github) client(ctx context.Context) *github.Client {
	c := github.NewClient(oauth2.NewClient(ctx, p.tokenSource))
	if p.baseURL != nil {
		c.BaseURL = p.baseURL
	}

	return c
}

func unwrapGithubError(err error) error {
	if er, ok := err.(*github.ErrorResponse); ok && er.Response != nil {
		switch er.Response.StatusCode {
		case http.StatusNotFound:
			return errors.Wrap(provider.ErrNotFound, er.Message)
		case http.StatusUnauthorized:
			return errors.Wrap(provider.ErrUnauthorized, er.Message)
		case http.StatusForbidden:
			return errors.Wrap(provider.ErrForbidden, er.Message)
		}
	}

	return err
}

func parseGithubPullRequest(pr *github.PullRequest) *provider.PullRequest {
	return &provider.PullRequest{
		Number:  pr.GetNumber(),
		Title:   pr.GetTitle(),
		Body:    pr.GetBody(),
		State:   pr.GetState(),
		HeadRef: pr.GetHead().GetRef(),
		HeadSHA: pr.GetHead().GetSHA(),
		BaseRef: pr.GetBase().GetRef(),
		HTMLURL: pr.GetHTMLURL(),
	}
}

func (p Github) GetPullRequest(ctx context.Context, owner, repo string, number int) (*provider.PullRequest, error) {
	pr, _, err := p.client(ctx).PullRequests.Get(ctx, owner, repo, number)
	if err != nil {
		return nil, unwrapGithubError(err)
	}

	return parseGithubPullRequest(pr), nil
}

func (p Github) GetPullRequestDiff(ctx context.Context, owner, repo string, number int) (string, error) {
	diff, _, err := p.client(ctx).PullRequests.GetRaw(ctx, owner, repo, number, github.RawOptions{Type: github.Diff})
	if err != nil {
		return "", unwrapGithubError(err)
	}

	return diff, nil
}

func (p Github) ListOpenPullRequests(ctx context.Context, owner, repo, headBranch string) ([]provider.PullRequest, error) {
	opts := github.PullRequestListOptions{
		State: "open",
		ListOptions: github.ListOptions{
			PerPage: 100, // 100 is a max allowed value
		},
	}

	var ret []provider.PullRequest
	for page := 1; ; page++ {
		pagePRs, resp, err := p.client(ctx).PullRequests.List(ctx, owner, repo, &opts)
		if err != nil {
			return nil, unwrapGithubError(err)
		}

		// head filter of the API needs "user:ref", forks have another user, so filter here
		for _, pr := range pagePRs {
			if pr.GetHead().GetRef() == headBranch {
				ret = append(ret, *parseGithubPullRequest(pr))
			}
		}

		if resp.NextPage == 0 { // it's the last page
			break
		}

		if page == maxPullRequestPages {
			p.log.Warnf("Limited open pull requests scan of %s/%s to %d pages", owner, repo, maxPullRequestPages)
			break
		}

		opts.Page = resp.NextPage
	}

	return ret, nil
}

func (p Github) UpdatePullRequestBody(ctx context.Context, owner, repo string, number int, body string) error {
	_, _, err := p.client(ctx).PullRequests.Edit(ctx, owner, repo, number, &github.PullRequest{
		Body: github.String(body),
	})
	if err != nil {
		return unwrapGithubError(err)
	}

	return nil
}

func (p Github) CreateComment(ctx context.Context, owner, repo string, number int, body string) (*provider.Comment, error) {
	c, _, err := p.client(ctx).Issues.CreateComment(ctx, owner, repo, number, &github.IssueComment{
		Body: github.String(body),
	})
	if err != nil {
		return nil, unwrapGithubError(err)
	}

	return &provider.Comment{
		ID:      c.GetID(),
		HTMLURL: c.GetHTMLURL(),
	}, nil
}

func (p Github) CreateGist(ctx context.Context, description string, public bool,
	files []provider.GistFile) (*provider.Gist, error) {

	gistFiles := map[github.GistFilename]github.GistFile{}
	for _, f := range files {
		gistFiles[github.GistFilename(f.Name)] = github.GistFile{
			Filename: github.String(f.Name),
			Content:  github.String(f.Content),
		}
	}

	g, _, err := p.client(ctx).Gists.Create(ctx, &github.Gist{
		Description: github.String(description),
		Public:      github.Bool(public),
		Files:       gistFiles,
	})
	if err != nil {
		return nil, unwrapGithubError(err)
	}

	return &provider.Gist{
		ID:      g.GetID(),
		HTMLURL: g.GetHTMLURL(),
	}, nil
}
