package reporters

import (
	"context"

	"github.com/sagea-ai/reasonet-web-sub000/internal/shared/logutil"
	"github.com/sagea-ai/reasonet-web-sub000/internal/shared/providers/provider"
	"github.com/sagea-ai/reasonet-web-sub000/pkg/api/outcome"
)

const (
	StageArtifact    = "artifact"
	StageComment     = "comment"
	StageDescription = "description"
)

type TrioResult struct {
	ArtifactURL string
	CommentURL  string

	// Degraded has one outcome.Degraded error per failed step
	Degraded []error
}

func (r TrioResult) DegradedStages() []string {
	var ret []string
	for _, err := range r.Degraded {
		ret = append(ret, outcome.StageOf(err))
	}
	return ret
}

// Trio runs artifact publication, commenting and description rewrite in
// this order. A failed step never stops the next ones.
type Trio struct {
	Artifact    ArtifactPublisher
	Commenter   Commenter
	Description DescriptionRewriter
}

func (t Trio) Run(ctx context.Context, p provider.Provider, r *Report, log logutil.Log) *TrioResult {
	var res TrioResult
	degrade := func(stage string, err error) {
		res.Degraded = append(res.Degraded, outcome.NewDegraded(stage, err))
	}

	artifactURL, err := t.Artifact.Publish(ctx, p, r)
	if err != nil {
		log.Warnf("Can't publish artifact, continuing without it: %s", err)
		degrade(StageArtifact, err)
		artifactURL = ""
	}
	r.ArtifactURL = artifactURL
	res.ArtifactURL = artifactURL

	commentURL, err := t.Commenter.Comment(ctx, p, r)
	if err != nil {
		// findings are already stored, only the notification is lost
		log.Errorf("Can't post analysis comment: %s", err)
		degrade(StageComment, err)
	}
	res.CommentURL = commentURL

	if err = t.Description.Rewrite(ctx, p, r); err != nil {
		log.Infof("Can't rewrite pull request description: %s", err)
		degrade(StageDescription, err)
	}

	return &res
}
