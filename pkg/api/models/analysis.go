package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"
)

type AnalysisStatus string

const (
	AnalysisStatusPending    AnalysisStatus = "PENDING"
	AnalysisStatusProcessing AnalysisStatus = "PROCESSING"
	AnalysisStatusCompleted  AnalysisStatus = "COMPLETED"
	AnalysisStatusFailed     AnalysisStatus = "FAILED"
)

func (s AnalysisStatus) IsTerminal() bool {
	return s == AnalysisStatusCompleted || s == AnalysisStatusFailed
}

// CanTransitionTo allows only PENDING -> PROCESSING -> COMPLETED|FAILED.
func (s AnalysisStatus) CanTransitionTo(next AnalysisStatus) bool {
	switch s {
	case AnalysisStatusPending:
		return next == AnalysisStatusProcessing
	case AnalysisStatusProcessing:
		return next.IsTerminal()
	}
	return false
}

type AnalysisType string

const AnalysisTypePullRequest AnalysisType = "PULL_REQUEST"

type Analysis struct {
	gorm.Model

	RepositoryID uint `gorm:"index"`

	Name              string
	Status            AnalysisStatus `gorm:"index"`
	Type              AnalysisType
	PullRequestNumber int
	Branch            string
	CommitSHA         string
	DeliveryGUID      string

	Options Options `gorm:"type:text"`

	CompletedAt *time.Time
}

func (a Analysis) GoString() string {
	return fmt.Sprintf("{ID: %d, RepositoryID: %d, PR: %d, Status: %s}",
		a.ID, a.RepositoryID, a.PullRequestNumber, a.Status)
}

// Options is an append-only audit bag of an analysis. Its shape depends on
// the analysis type.
type Options struct {
	Payload       json.RawMessage `json:"payload,omitempty"`
	Diff          string          `json:"diff,omitempty"`
	ArtifactURL   *string         `json:"artifact_url,omitempty"`
	CommentURL    string          `json:"comment_url,omitempty"`
	Summary       string          `json:"summary,omitempty"`
	ResultCount   *int            `json:"result_count,omitempty"`
	DegradedSteps []string        `json:"degraded_steps,omitempty"`
	Error         string          `json:"error,omitempty"`
}

func (o Options) Value() (driver.Value, error) {
	data, err := json.Marshal(o)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal analysis options")
	}
	return string(data), nil
}

func (o *Options) Scan(src interface{}) error {
	var data []byte
	switch v := src.(type) {
	case nil:
		*o = Options{}
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("can't scan %T into analysis options", src)
	}

	if len(data) == 0 {
		*o = Options{}
		return nil
	}
	return errors.Wrap(json.Unmarshal(data, o), "failed to unmarshal analysis options")
}
