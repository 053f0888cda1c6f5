package models

import "github.com/jinzhu/gorm"

type ResultKind string

const (
	ResultKindCodeQuality ResultKind = "CODE_QUALITY"
	ResultKindSecurity    ResultKind = "SECURITY"
)

type Severity string

const (
	SeverityCritical Severity = "CRITICAL"
	SeverityHigh     Severity = "HIGH"
	SeverityMedium   Severity = "MEDIUM"
	SeverityLow      Severity = "LOW"
	SeverityInfo     Severity = "INFO"
)

var severityRanks = map[Severity]int{
	SeverityCritical: 0,
	SeverityHigh:     1,
	SeverityMedium:   2,
	SeverityLow:      3,
	SeverityInfo:     4,
}

// Rank orders severities from the most severe; unknown ones go last.
func (s Severity) Rank() int {
	if r, ok := severityRanks[s]; ok {
		return r
	}
	return len(severityRanks)
}

func (s Severity) IsValid() bool {
	_, ok := severityRanks[s]
	return ok
}

type ResolutionStatus string

const (
	ResolutionStatusOpen    ResolutionStatus = "OPEN"
	ResolutionStatusFixed   ResolutionStatus = "FIXED"
	ResolutionStatusIgnored ResolutionStatus = "IGNORED"
)

type AnalysisResult struct {
	gorm.Model

	AnalysisID uint `gorm:"index"`

	Kind        ResultKind
	Severity    Severity
	Title       string
	Description string `gorm:"type:text"`

	FilePath  string
	LineStart int
	LineEnd   int

	CodeSnippet string `gorm:"type:text"`

	Status ResolutionStatus
}
