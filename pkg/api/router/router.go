// Package router dispatches verified GitHub webhook deliveries by event kind.
package router

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/go-github/v60/github"
	"github.com/pkg/errors"
	"github.com/sagea-ai/reasonet-web-sub000/internal/shared/apperrors"
	"github.com/sagea-ai/reasonet-web-sub000/internal/shared/logutil"
	"github.com/sagea-ai/reasonet-web-sub000/pkg/api/models"
	"github.com/sagea-ai/reasonet-web-sub000/pkg/api/outcome"
	"github.com/sagea-ai/reasonet-web-sub000/pkg/api/pipeline"
	"github.com/sagea-ai/reasonet-web-sub000/pkg/api/registry"
)

const (
	EventPing                     = "ping"
	EventInstallation             = "installation"
	EventInstallationRepositories = "installation_repositories"
	EventPullRequest              = "pull_request"
	EventCheckSuite               = "check_suite"
)

const (
	StageParse    = "parse"
	StageRoute    = "route"
	StageRegistry = "registry"
)

type Delivery struct {
	Event   string
	GUID    string
	Payload []byte
}

type PullRequestHandler interface {
	Handle(ctx context.Context, job *pipeline.PullRequestJob) (*models.Analysis, error)
}

type CheckSuiteResolver interface {
	Resolve(ctx context.Context, repo *models.Repository, headBranch string,
		payload json.RawMessage, deliveryGUID string) ([]*models.Analysis, error)
}

type Router struct {
	Registry     registry.Registry
	PullRequests PullRequestHandler
	CheckSuites  CheckSuiteResolver
	Log          logutil.Log
}

func dropped(stage, format string, args ...interface{}) error {
	return outcome.NewDropped(stage, fmt.Errorf(format, args...))
}

// Route handles one delivery. The returned error is classified by the
// outcome package: nil, Dropped, Fatal and Degraded are all acknowledged.
func (r Router) Route(ctx context.Context, d *Delivery) error {
	switch d.Event {
	case EventPing:
		r.Log.Infof("Got ping webhook")
		return nil
	case EventInstallation:
		var ev github.InstallationEvent
		if err := r.parse(d, &ev); err != nil {
			return err
		}
		return r.routeInstallation(&ev)
	case EventInstallationRepositories:
		var ev github.InstallationRepositoriesEvent
		if err := r.parse(d, &ev); err != nil {
			return err
		}
		return r.routeInstallationRepositories(&ev)
	case EventPullRequest:
		var ev github.PullRequestEvent
		if err := r.parse(d, &ev); err != nil {
			return err
		}
		return r.routePullRequest(ctx, d, &ev)
	case EventCheckSuite:
		var ev github.CheckSuiteEvent
		if err := r.parse(d, &ev); err != nil {
			return err
		}
		return r.routeCheckSuite(ctx, d, &ev)
	}

	return dropped(StageRoute, "event %q isn't handled", d.Event)
}

func (r Router) parse(d *Delivery, ev interface{}) error {
	if err := json.Unmarshal(d.Payload, ev); err != nil {
		return outcome.NewRejected(StageParse,
			errors.Wrapf(apperrors.ErrBadRequest, "invalid %s payload json: %s", d.Event, err))
	}

	return nil
}

func (r Router) routeInstallation(ev *github.InstallationEvent) error {
	inst := ev.GetInstallation()
	switch action := ev.GetAction(); action {
	case "created", "new_permissions_accepted", "suspend", "unsuspend":
		if _, err := r.Registry.UpsertInstallation(inst); err != nil {
			return err
		}
		for _, repo := range ev.Repositories {
			if err := r.upsertRepository(repo, inst.GetID()); err != nil {
				return err
			}
		}
		return nil
	case "deleted":
		return r.Registry.DeleteInstallation(inst.GetID())
	default:
		return dropped(StageRoute, "installation action %q isn't handled", action)
	}
}

func (r Router) routeInstallationRepositories(ev *github.InstallationRepositoriesEvent) error {
	installationID := ev.GetInstallation().GetID()
	switch action := ev.GetAction(); action {
	case "added":
		for _, repo := range ev.RepositoriesAdded {
			if err := r.upsertRepository(repo, installationID); err != nil {
				return err
			}
		}
		return nil
	case "removed":
		for _, repo := range ev.RepositoriesRemoved {
			if err := r.Registry.DeleteRepository(repo.GetID()); err != nil {
				return err
			}
		}
		return nil
	default:
		return dropped(StageRoute, "installation_repositories action %q isn't handled", action)
	}
}

// upsertRepository skips orphans, the rest of the batch is still stored.
func (r Router) upsertRepository(gr *github.Repository, installationID int64) error {
	_, err := r.Registry.UpsertRepository(gr, installationID)
	if errors.Cause(err) == registry.ErrOrphanRepository {
		return nil
	}
	return err
}

// repository finds a registered repository or registers it from the payload.
func (r Router) repository(gr *github.Repository, installation *github.Installation) (*models.Repository, error) {
	repo, err := r.Registry.GetRepository(gr.GetID())
	if err == nil {
		return repo, nil
	}
	if errors.Cause(err) != apperrors.ErrNotFound {
		return nil, err
	}

	if installation.GetID() == 0 {
		return nil, dropped(StageRegistry, "repository %s isn't registered", gr.GetFullName())
	}

	repo, err = r.Registry.UpsertRepository(gr, installation.GetID())
	if err != nil {
		if errors.Cause(err) == registry.ErrOrphanRepository {
			return nil, outcome.NewDropped(StageRegistry, err)
		}
		return nil, err
	}

	return repo, nil
}

func (r Router) routePullRequest(ctx context.Context, d *Delivery, ev *github.PullRequestEvent) error {
	action := ev.GetAction()
	if action != "opened" && action != "synchronize" {
		return dropped(StageRoute, "pull_request action %q isn't handled", action)
	}

	repo, err := r.repository(ev.GetRepo(), ev.GetInstallation())
	if err != nil {
		return err
	}

	pr := ev.GetPullRequest()
	r.Log.Infof("Got %s pull request %s#%d webhook", action, repo.FullName, pr.GetNumber())

	_, err = r.PullRequests.Handle(ctx, &pipeline.PullRequestJob{
		Repository:   repo,
		Number:       pr.GetNumber(),
		Title:        pr.GetTitle(),
		HeadRef:      pr.GetHead().GetRef(),
		HeadSHA:      pr.GetHead().GetSHA(),
		Payload:      json.RawMessage(d.Payload),
		DeliveryGUID: d.GUID,
	})
	return err
}

func (r Router) routeCheckSuite(ctx context.Context, d *Delivery, ev *github.CheckSuiteEvent) error {
	action := ev.GetAction()
	if action != "requested" && action != "rerequested" {
		return dropped(StageRoute, "check_suite action %q isn't handled", action)
	}

	repo, err := r.repository(ev.GetRepo(), ev.GetInstallation())
	if err != nil {
		return err
	}

	branch := ev.GetCheckSuite().GetHeadBranch()
	if branch == "" {
		return dropped(StageRoute, "check suite of %s has no head branch", repo.FullName)
	}

	analyzes, err := r.CheckSuites.Resolve(ctx, repo, branch, json.RawMessage(d.Payload), d.GUID)
	if err != nil {
		return err
	}

	r.Log.Infof("Check suite for %s@%s started %d analyzes", repo.FullName, branch, len(analyzes))
	return nil
}
