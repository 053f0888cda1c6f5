package builtin

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/sagea-ai/reasonet-web-sub000/pkg/api/analyzers"
	"github.com/sagea-ai/reasonet-web-sub000/pkg/api/models"
)

type secretPattern struct {
	name     string
	rx       *regexp.Regexp
	severity models.Severity
}

var secretPatterns = []secretPattern{
	{"Google API key", regexp.MustCompile(`AIza[0-9A-Za-z_\-]{35}`), models.SeverityHigh},
	{"AWS access key id", regexp.MustCompile(`\b(AKIA|ASIA)[0-9A-Z]{16}\b`), models.SeverityCritical},
	{"GitHub token", regexp.MustCompile(`\bgh[pousr]_[0-9A-Za-z]{36,}\b`), models.SeverityCritical},
	{"Slack token", regexp.MustCompile(`\bxox[baprs]-[0-9A-Za-z\-]{10,}`), models.SeverityHigh},
	{"private key block", regexp.MustCompile(`-----BEGIN (RSA |EC |OPENSSH |DSA )?PRIVATE KEY-----`), models.SeverityCritical},
	{"service account json", regexp.MustCompile(`"type"\s*:\s*"service_account"`), models.SeverityHigh},
	{"hardcoded password", regexp.MustCompile(`(?i)\b(password|passwd|secret)\s*[:=]\s*["'][^"'\s]{6,}["']`), models.SeverityMedium},
}

// Secrets reports credentials in added lines.
type Secrets struct{}

var _ analyzers.FindingsAnalyzer = Secrets{}

func (Secrets) Name() string {
	return "builtin/secrets"
}

func (Secrets) Analyze(ctx context.Context, in *analyzers.Input) ([]analyzers.Finding, error) {
	added, _, err := parseDiff(in.Diff)
	if err != nil {
		return nil, err
	}

	var ret []analyzers.Finding
	for _, l := range added {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		for _, p := range secretPatterns {
			if !p.rx.MatchString(l.text) {
				continue
			}

			ret = append(ret, analyzers.Finding{
				Severity: p.severity,
				Title:    fmt.Sprintf("Possible %s committed", p.name),
				Description: fmt.Sprintf("Potential secret pattern `%s` found in `%s`. "+
					"Move the credential to a secret manager, remove it from git history and rotate it.", p.name, l.path),
				FilePath:    l.path,
				LineStart:   l.line,
				LineEnd:     l.line,
				CodeSnippet: redact(l.text),
			})
			break // one finding per line
		}
	}

	return ret, nil
}

// snippet is the code snippet of an added line, redacted when the line
// looks like it carries a credential.
func snippet(line string) string {
	for _, p := range secretPatterns {
		if p.rx.MatchString(line) {
			return redact(line)
		}
	}
	return strings.TrimSpace(line)
}

func redact(s string) string {
	s = strings.TrimSpace(s)
	if len(s) <= 12 {
		return strings.Repeat("*", len(s))
	}
	return s[:8] + strings.Repeat("*", len(s)-8)
}
