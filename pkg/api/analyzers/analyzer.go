package analyzers

import (
	"context"
	"encoding/json"

	"github.com/sagea-ai/reasonet-web-sub000/pkg/api/models"
)

//go:generate mockgen -package analyzers -source analyzer.go -destination analyzer_mock.go

type Finding struct {
	Kind        models.ResultKind `json:"kind,omitempty"`
	Severity    models.Severity   `json:"severity"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	FilePath    string            `json:"file_path"`
	LineStart   int               `json:"line_start"`
	LineEnd     int               `json:"line_end"`
	CodeSnippet string            `json:"code_snippet,omitempty"`
}

// Digest is the summary of a change request.
type Digest struct {
	Headline     string   `json:"headline"`
	Body         string   `json:"body"`
	Highlights   []string `json:"highlights,omitempty"`
	FilesChanged int      `json:"files_changed"`
	Additions    int      `json:"additions"`
	Deletions    int      `json:"deletions"`
}

type Input struct {
	Repo              string          `json:"repo"`
	PullRequestNumber int             `json:"pull_request_number"`
	Title             string          `json:"title,omitempty"`
	Diff              string          `json:"diff"`
	Event             json.RawMessage `json:"event,omitempty"`
}

type FindingsAnalyzer interface {
	Name() string
	Analyze(ctx context.Context, in *Input) ([]Finding, error)
}

type Summarizer interface {
	Name() string
	Summarize(ctx context.Context, in *Input) (*Digest, error)
}
