package apperrors

import "net/http"

type Level string

const (
	LevelError Level = "ERROR"
	LevelWarn  Level = "WARN"
)

type Tracker interface {
	Track(level Level, errorText string, ctx map[string]interface{})
	WithHTTPRequest(r *http.Request) Tracker
}

// NopTracker drops everything, used when no tracker is configured.
type NopTracker struct{}

func NewNopTracker() *NopTracker {
	return &NopTracker{}
}

func (t NopTracker) Track(level Level, errorText string, ctx map[string]interface{}) {}

func (t *NopTracker) WithHTTPRequest(r *http.Request) Tracker {
	return t
}
