package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/google/go-github/v60/github"
	"github.com/pkg/errors"
	"github.com/sagea-ai/reasonet-web-sub000/internal/shared/config"
	"github.com/sagea-ai/reasonet-web-sub000/internal/shared/logutil"
	"github.com/sagea-ai/reasonet-web-sub000/pkg/api/signature"
	uuid "github.com/satori/go.uuid"
)

const (
	eventTypePullRequest = "pull_request"
	eventTypeCheckSuite  = "check_suite"
	eventTypePing        = "ping"
)

type options struct {
	host           string
	repoName       string
	repoID         int64
	installationID int64
	commitSHA      string
	prNumber       int
	branchName     string
	action         string
}

//nolint:gocyclo
func main() {
	var o options
	hookType := flag.String("type", eventTypePullRequest, "hook type: pull_request, check_suite or ping")
	flag.StringVar(&o.host, "host", "http://localhost:3000", "webhook receiver base url")
	flag.StringVar(&o.repoName, "repo", "", "owner/name")
	flag.Int64Var(&o.repoID, "repo-id", 0, "github repository id")
	flag.Int64Var(&o.installationID, "installation", 0, "github app installation id")
	flag.StringVar(&o.commitSHA, "sha", "", "head commit sha")
	flag.IntVar(&o.prNumber, "pr", 0, "pull request number")
	flag.StringVar(&o.branchName, "branch", "master", "head branch name")
	flag.StringVar(&o.action, "action", "", "event action, opened for pull_request and rerequested for check_suite by default")
	flag.Parse()

	if err := config.LoadDotEnv("."); err != nil {
		log.Fatalf("Can't load .env: %s", err)
	}

	lg := logutil.NewStderrLog("emulate")
	lg.SetLevel(logutil.LogLevelInfo)
	cfg := config.NewEnvConfig(lg)
	secret := cfg.GetString("GITHUB_WEBHOOK_SECRET")
	if secret == "" {
		log.Fatalf("Must set GITHUB_WEBHOOK_SECRET")
	}

	if *hookType != eventTypePing && (o.repoName == "" || !strings.Contains(o.repoName, "/")) {
		log.Fatalf("Must set --repo as owner/name")
	}

	if o.commitSHA == ":gen" {
		o.commitSHA = "gen_" + uuid.NewV4().String()
	}

	var payload interface{}
	switch *hookType {
	case eventTypePullRequest:
		if o.prNumber == 0 {
			log.Fatalf("Must set --pr")
		}
		payload = pullRequestPayload(o)
	case eventTypeCheckSuite:
		payload = checkSuitePayload(o)
	case eventTypePing:
		payload = github.PingEvent{Zen: github.String("Emulated ping")}
	default:
		log.Fatalf("unknown hook type %s", *hookType)
	}

	status, body, err := sendWebhookPayload(o.host, *hookType, []byte(secret), payload)
	if err != nil {
		log.Fatalf("Can't emulate %s webhook: %s", *hookType, err)
	}

	lg.Infof("Emulated %s webhook: %d %s", *hookType, status, body)
}

func repository(o options) *github.Repository {
	nameParts := strings.SplitN(o.repoName, "/", 2)
	return &github.Repository{
		ID:       github.Int64(o.repoID),
		FullName: github.String(o.repoName),
		Name:     github.String(nameParts[1]),
		Owner:    &github.User{Login: github.String(nameParts[0])},
	}
}

func installation(o options) *github.Installation {
	if o.installationID == 0 {
		return nil
	}
	return &github.Installation{ID: github.Int64(o.installationID)}
}

func pullRequestPayload(o options) github.PullRequestEvent {
	action := o.action
	if action == "" {
		action = "opened"
	}

	return github.PullRequestEvent{
		Action: github.String(action),
		Number: github.Int(o.prNumber),
		PullRequest: &github.PullRequest{
			Number: github.Int(o.prNumber),
			Title:  github.String(fmt.Sprintf("Emulated pull request #%d", o.prNumber)),
			Head: &github.PullRequestBranch{
				Ref: github.String(o.branchName),
				SHA: github.String(o.commitSHA),
			},
		},
		Repo:         repository(o),
		Installation: installation(o),
	}
}

func checkSuitePayload(o options) github.CheckSuiteEvent {
	action := o.action
	if action == "" {
		action = "rerequested"
	}

	return github.CheckSuiteEvent{
		Action: github.String(action),
		CheckSuite: &github.CheckSuite{
			HeadBranch: github.String(o.branchName),
			HeadSHA:    github.String(o.commitSHA),
		},
		Repo:         repository(o),
		Installation: installation(o),
	}
}

func sendWebhookPayload(host, event string, secret []byte, payload interface{}) (int, string, error) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return 0, "", errors.Wrap(err, "can't marshal payload to json")
	}

	webhookURL := strings.TrimSuffix(host, "/") + "/v1/webhooks/github"
	req, err := http.NewRequest(http.MethodPost, webhookURL, bytes.NewReader(payloadBytes))
	if err != nil {
		return 0, "", errors.Wrap(err, "can't create post request")
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-GitHub-Event", event)
	req.Header.Set("X-GitHub-Delivery", uuid.NewV4().String())
	req.Header.Set(signature.HeaderName, signature.Sign(secret, payloadBytes))

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return 0, "", errors.Wrap(err, "can't send http request")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, "", errors.Wrap(err, "can't read response body")
	}

	if resp.StatusCode != http.StatusOK {
		return resp.StatusCode, string(body), fmt.Errorf("%q response status code %d: %s",
			webhookURL, resp.StatusCode, body)
	}

	return resp.StatusCode, string(body), nil
}
