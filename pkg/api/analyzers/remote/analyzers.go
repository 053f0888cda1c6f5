package remote

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sagea-ai/reasonet-web-sub000/pkg/api/analyzers"
)

const (
	KindQuality  = "quality"
	KindSecurity = "security"
	KindSummary  = "summary"
)

type findingsResponse struct {
	Findings []analyzers.Finding `json:"findings"`
}

type digestResponse struct {
	Digest *analyzers.Digest `json:"digest"`
}

type Findings struct {
	kind   string
	client *Client
}

var _ analyzers.FindingsAnalyzer = Findings{}

func NewFindings(kind string, client *Client) Findings {
	return Findings{kind: kind, client: client}
}

func (a Findings) Name() string {
	return "remote/" + a.kind
}

func (a Findings) Analyze(ctx context.Context, in *analyzers.Input) ([]analyzers.Finding, error) {
	var resp findingsResponse
	if err := a.client.post(ctx, a.kind, in, &resp); err != nil {
		return nil, err
	}

	return resp.Findings, nil
}

type Summary struct {
	client *Client
}

var _ analyzers.Summarizer = Summary{}

func NewSummary(client *Client) Summary {
	return Summary{client: client}
}

func (Summary) Name() string {
	return "remote/" + KindSummary
}

func (a Summary) Summarize(ctx context.Context, in *analyzers.Input) (*analyzers.Digest, error) {
	var resp digestResponse
	if err := a.client.post(ctx, KindSummary, in, &resp); err != nil {
		return nil, err
	}
	if resp.Digest == nil {
		return nil, errors.New("reasoning service returned no digest")
	}

	return resp.Digest, nil
}
