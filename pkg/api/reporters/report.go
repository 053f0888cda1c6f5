package reporters

import (
	"context"
	"sort"

	"github.com/sagea-ai/reasonet-web-sub000/internal/shared/providers/provider"
	"github.com/sagea-ai/reasonet-web-sub000/pkg/api/analyzers"
)

//go:generate mockgen -package reporters -source report.go -destination report_mock.go

type Report struct {
	AnalysisID        uint
	Owner             string
	Repo              string
	PullRequestNumber int
	PullRequestURL    string

	Findings []analyzers.Finding
	Digest   *analyzers.Digest

	// ArtifactURL is set after the artifact is published
	ArtifactURL string
}

func (r Report) FullName() string {
	return r.Owner + "/" + r.Repo
}

// SortedFindings orders findings by severity, then by location.
func (r Report) SortedFindings() []analyzers.Finding {
	ret := append([]analyzers.Finding(nil), r.Findings...)
	sort.SliceStable(ret, func(i, j int) bool {
		if ri, rj := ret[i].Severity.Rank(), ret[j].Severity.Rank(); ri != rj {
			return ri < rj
		}
		if ret[i].FilePath != ret[j].FilePath {
			return ret[i].FilePath < ret[j].FilePath
		}
		return ret[i].LineStart < ret[j].LineStart
	})
	return ret
}

type ArtifactPublisher interface {
	Publish(ctx context.Context, p provider.Provider, r *Report) (string, error)
}

type Commenter interface {
	Comment(ctx context.Context, p provider.Provider, r *Report) (string, error)
}

type DescriptionRewriter interface {
	Rewrite(ctx context.Context, p provider.Provider, r *Report) error
}
