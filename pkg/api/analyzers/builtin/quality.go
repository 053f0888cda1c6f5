package builtin

import (
	"context"
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/sagea-ai/reasonet-web-sub000/pkg/api/analyzers"
	"github.com/sagea-ai/reasonet-web-sub000/pkg/api/models"
)

const DefaultMaxLineLength = 120

var todoRx = regexp.MustCompile(`\b(TODO|FIXME|XXX|HACK)\b`)

var debugPrintRx = regexp.MustCompile(`\b(console\.log|fmt\.Println|print)\(|\bdebugger\b`)

// Quality reports leftover markers, debug output and over-long lines.
type Quality struct {
	MaxLineLength int
}

var _ analyzers.FindingsAnalyzer = Quality{}

func (Quality) Name() string {
	return "builtin/quality"
}

func (q Quality) Analyze(ctx context.Context, in *analyzers.Input) ([]analyzers.Finding, error) {
	added, _, err := parseDiff(in.Diff)
	if err != nil {
		return nil, err
	}

	maxLen := q.MaxLineLength
	if maxLen == 0 {
		maxLen = DefaultMaxLineLength
	}

	var ret []analyzers.Finding
	for _, l := range added {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		finding := func(sev models.Severity, title, descr string) analyzers.Finding {
			return analyzers.Finding{
				Severity:    sev,
				Title:       title,
				Description: descr,
				FilePath:    l.path,
				LineStart:   l.line,
				LineEnd:     l.line,
				CodeSnippet: snippet(l.text),
			}
		}

		if m := todoRx.FindString(l.text); m != "" {
			ret = append(ret, finding(models.SeverityInfo, fmt.Sprintf("%s marker added", m),
				"Track the pending work in an issue instead of leaving a marker in code."))
		}
		if debugPrintRx.MatchString(l.text) {
			ret = append(ret, finding(models.SeverityLow, "Debug output added",
				"Debug output usually shouldn't reach the main branch, use the project logger."))
		}
		if n := utf8.RuneCountInString(l.text); n > maxLen {
			ret = append(ret, finding(models.SeverityLow, "Line is too long",
				fmt.Sprintf("Line has %d characters, the limit is %d.", n, maxLen)))
		}
	}

	return ret, nil
}
