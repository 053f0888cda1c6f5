package reporters

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/sagea-ai/reasonet-web-sub000/internal/shared/providers/provider"
)

const (
	summaryStartMarker = "<!-- reasonet:summary:start -->"
	summaryEndMarker   = "<!-- reasonet:summary:end -->"
)

// SummaryRewriter keeps one summary section in the pull request description.
type SummaryRewriter struct{}

var _ DescriptionRewriter = SummaryRewriter{}

func (SummaryRewriter) Rewrite(ctx context.Context, p provider.Provider, r *Report) error {
	if r.Digest == nil {
		return errors.New("no digest to put into the description")
	}

	pr, err := p.GetPullRequest(ctx, r.Owner, r.Repo, r.PullRequestNumber)
	if err != nil {
		return errors.Wrapf(err, "failed to get %s#%d", r.FullName(), r.PullRequestNumber)
	}

	section, err := renderSummarySection(r.Digest)
	if err != nil {
		return err
	}

	body := ReplaceSummarySection(pr.Body, section)
	if body == pr.Body {
		return nil
	}

	if err = p.UpdatePullRequestBody(ctx, r.Owner, r.Repo, r.PullRequestNumber, body); err != nil {
		return errors.Wrapf(err, "failed to update description of %s#%d", r.FullName(), r.PullRequestNumber)
	}
	return nil
}

// ReplaceSummarySection swaps the marked section of body for section,
// or appends section if body has none.
func ReplaceSummarySection(body, section string) string {
	start := strings.Index(body, summaryStartMarker)
	if start != -1 {
		if end := strings.Index(body[start:], summaryEndMarker); end != -1 {
			end += start + len(summaryEndMarker)
			return body[:start] + section + body[end:]
		}
	}

	body = strings.TrimRight(body, "\n")
	if body == "" {
		return section
	}
	return body + "\n\n" + section
}
