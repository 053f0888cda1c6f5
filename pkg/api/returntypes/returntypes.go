package returntypes

import (
	"time"

	"github.com/sagea-ai/reasonet-web-sub000/pkg/api/models"
)

type Error struct {
	Error string `json:"error,omitempty"`
}

type WebhookAck struct {
	DeliveryGUID string `json:"deliveryGuid"`
	Outcome      string `json:"outcome"`
	Stage        string `json:"stage,omitempty"`
	Message      string `json:"message,omitempty"`
}

type AnalysisResult struct {
	ID          uint   `json:"id"`
	Kind        string `json:"kind"`
	Severity    string `json:"severity"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	FilePath    string `json:"filePath"`
	LineStart   int    `json:"lineStart"`
	LineEnd     int    `json:"lineEnd"`
	CodeSnippet string `json:"codeSnippet,omitempty"`
	Status      string `json:"status"`
}

type Analysis struct {
	ID                uint           `json:"id"`
	Name              string         `json:"name"`
	Status            string         `json:"status"`
	Type              string         `json:"type"`
	RepositoryName    string         `json:"repositoryName,omitempty"`
	PullRequestNumber int            `json:"pullRequestNumber,omitempty"`
	Branch            string         `json:"branch,omitempty"`
	CommitSHA         string         `json:"commitSha,omitempty"`
	DeliveryGUID      string         `json:"deliveryGuid,omitempty"`
	Options           models.Options `json:"options"`
	CreatedAt         time.Time      `json:"createdAt"`
	CompletedAt       *time.Time     `json:"completedAt,omitempty"`

	Results []AnalysisResult `json:"results"`
}

type WrappedAnalysis struct {
	Analysis Analysis `json:"analysis"`
}
