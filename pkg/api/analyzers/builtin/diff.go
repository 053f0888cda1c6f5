// Package builtin has analyzers that work on the diff alone, they're used
// when no reasoning service is configured.
package builtin

import (
	"bytes"
	"strings"

	"github.com/pkg/errors"
	"github.com/sourcegraph/go-diff/diff"
)

type addedLine struct {
	path string
	line int
	text string
}

type diffStats struct {
	files     []string
	additions int
	deletions int
}

func cleanPath(name string) string {
	if name == "/dev/null" {
		return ""
	}
	if strings.HasPrefix(name, "a/") || strings.HasPrefix(name, "b/") {
		return name[2:]
	}
	return name
}

// parseDiff returns the added lines with their new-file line numbers.
func parseDiff(d string) ([]addedLine, *diffStats, error) {
	stats := &diffStats{}
	if strings.TrimSpace(d) == "" {
		return nil, stats, nil
	}

	fileDiffs, err := diff.ParseMultiFileDiff([]byte(d))
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to parse diff")
	}

	var added []addedLine
	for _, fd := range fileDiffs {
		path := cleanPath(fd.NewName)
		if path == "" {
			path = cleanPath(fd.OrigName)
		}
		stats.files = append(stats.files, path)

		for _, h := range fd.Hunks {
			line := int(h.NewStartLine)
			body := bytes.TrimSuffix(h.Body, []byte("\n"))
			for _, l := range bytes.Split(body, []byte("\n")) {
				if len(l) == 0 { // context line with stripped whitespace
					line++
					continue
				}
				switch l[0] {
				case '+':
					stats.additions++
					added = append(added, addedLine{path: path, line: line, text: string(l[1:])})
					line++
				case '-':
					stats.deletions++
				case '\\': // "\ No newline at end of file"
				default:
					line++
				}
			}
		}
	}

	return added, stats, nil
}
