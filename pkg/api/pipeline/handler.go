package pipeline

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"github.com/sagea-ai/reasonet-web-sub000/internal/shared/logutil"
	"github.com/sagea-ai/reasonet-web-sub000/pkg/api/analytics"
	"github.com/sagea-ai/reasonet-web-sub000/pkg/api/analyzers"
	"github.com/sagea-ai/reasonet-web-sub000/pkg/api/ghauth"
	"github.com/sagea-ai/reasonet-web-sub000/pkg/api/models"
	"github.com/sagea-ai/reasonet-web-sub000/pkg/api/outcome"
	"github.com/sagea-ai/reasonet-web-sub000/pkg/api/reporters"
)

const (
	StageCreate   = "create"
	StageAuth     = "auth"
	StageDiff     = "diff"
	StageAnalyze  = "analyze"
	StagePersist  = "persist"
	StageComplete = "complete"
)

// PullRequestJob is one change request to analyze.
type PullRequestJob struct {
	Repository   *models.Repository
	Number       int
	Title        string
	HeadRef      string
	HeadSHA      string
	Payload      json.RawMessage
	DeliveryGUID string
}

type PullRequestHandler struct {
	Persister *Persister
	Resolver  ghauth.Resolver
	Diffs     DiffFetcher
	FanOut    analyzers.FanOut
	Reporters reporters.Trio
	Tracker   analytics.Tracker
	Log       logutil.Log
}

// Handle runs one analysis through PENDING -> PROCESSING -> COMPLETED|FAILED.
// A returned outcome.Fatal error means the analysis was recorded as FAILED;
// any other error means the analysis state couldn't be recorded.
func (h PullRequestHandler) Handle(ctx context.Context, job *PullRequestJob) (*models.Analysis, error) {
	repo := job.Repository
	a := &models.Analysis{
		RepositoryID:      repo.ID,
		Name:              fmt.Sprintf("%s#%d", repo.FullName, job.Number),
		Type:              models.AnalysisTypePullRequest,
		PullRequestNumber: job.Number,
		Branch:            job.HeadRef,
		CommitSHA:         job.HeadSHA,
		DeliveryGUID:      job.DeliveryGUID,
		Options:           models.Options{Payload: job.Payload},
	}
	if err := h.Persister.CreatePending(a); err != nil {
		return nil, errors.Wrap(err, StageCreate)
	}

	log := logutil.WrapLogWithContext(h.Log, logutil.Context{
		"repo":          repo.FullName,
		"pr":            job.Number,
		"analysis_id":   a.ID,
		"delivery_guid": job.DeliveryGUID,
	})

	if err := h.Persister.Transition(a, models.AnalysisStatusProcessing, nil); err != nil {
		return a, err
	}

	res, err := h.process(ctx, a, job, log)
	return a, h.finish(ctx, a, res, err, log)
}

type processResult struct {
	diff        string
	digest      *analyzers.Digest
	resultCount int
	trio        *reporters.TrioResult
}

func (h PullRequestHandler) process(ctx context.Context, a *models.Analysis, job *PullRequestJob,
	log logutil.Log) (*processResult, error) {

	repo := job.Repository
	res := &processResult{}

	p, method, err := h.Resolver.Resolve(ctx, repo.ProviderInstallationID)
	if err != nil {
		return res, outcome.NewFatal(StageAuth, err)
	}
	log.Infof("Using %s credentials", method)

	if res.diff, err = h.Diffs.Fetch(ctx, p, repo, job.Number); err != nil {
		return res, outcome.NewFatal(StageDiff, err)
	}

	out, err := h.FanOut.Run(ctx, &analyzers.Input{
		Repo:              repo.FullName,
		PullRequestNumber: job.Number,
		Title:             job.Title,
		Diff:              res.diff,
		Event:             job.Payload,
	})
	if err != nil {
		return res, outcome.NewFatal(StageAnalyze, err)
	}
	res.digest = out.Digest

	findings := out.Findings()
	if res.resultCount, err = h.Persister.SaveResults(a.ID, findings); err != nil {
		return res, outcome.NewFatal(StagePersist, err)
	}
	log.Infof("Saved %d results", res.resultCount)

	res.trio = h.Reporters.Run(ctx, p, h.report(a, job, findings, out.Digest), log)
	return res, nil
}

func (h PullRequestHandler) report(a *models.Analysis, job *PullRequestJob, findings []analyzers.Finding,
	digest *analyzers.Digest) *reporters.Report {

	return &reporters.Report{
		AnalysisID:        a.ID,
		Owner:             job.Repository.Owner(),
		Repo:              job.Repository.Repo(),
		PullRequestNumber: job.Number,
		Findings:          findings,
		Digest:            digest,
	}
}

func (h PullRequestHandler) finish(ctx context.Context, a *models.Analysis, res *processResult,
	processErr error, log logutil.Log) error {

	switch outcome.KindOf(processErr) {
	case outcome.OK:
		err := h.Persister.Transition(a, models.AnalysisStatusCompleted, func(o *models.Options) {
			artifactURL := res.trio.ArtifactURL
			resultCount := res.resultCount
			o.Diff = res.diff
			o.ArtifactURL = &artifactURL
			o.CommentURL = res.trio.CommentURL
			o.ResultCount = &resultCount
			o.DegradedSteps = res.trio.DegradedStages()
			if res.digest != nil {
				o.Summary = res.digest.Headline
			}
		})
		if err != nil {
			return errors.Wrap(err, StageComplete)
		}

	case outcome.Fatal:
		if ctx.Err() != nil {
			// left PROCESSING, the staler reconciles it
			log.Warnf("Analysis interrupted: %s", processErr)
			return errors.Wrap(ctx.Err(), "analysis interrupted")
		}

		log.Warnf("Analysis failed: %s", processErr)
		err := h.Persister.Transition(a, models.AnalysisStatusFailed, func(o *models.Options) {
			o.Diff = res.diff
			o.Error = processErr.Error()
		})
		if err != nil {
			return errors.Wrapf(err, "failed to record failure %q", processErr)
		}

	default:
		return processErr
	}

	h.track(ctx, a, res)
	return processErr
}

func (h PullRequestHandler) track(ctx context.Context, a *models.Analysis, res *processResult) {
	props := map[string]interface{}{
		"status":       string(a.Status),
		"analysisID":   a.ID,
		"repositoryID": a.RepositoryID,
		"resultCount":  res.resultCount,
	}
	if res.trio != nil {
		props["degradedSteps"] = res.trio.DegradedStages()
	}

	h.Tracker.Track(ctx, fmt.Sprintf("repo-%d", a.RepositoryID), analytics.EventPRAnalyzed, props)
}
