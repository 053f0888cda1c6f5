package builtin

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/sagea-ai/reasonet-web-sub000/pkg/api/analyzers"
)

const maxHighlightedFiles = 10

// DiffStat summarizes a change request by its diff statistics.
type DiffStat struct{}

var _ analyzers.Summarizer = DiffStat{}

func (DiffStat) Name() string {
	return "builtin/diffstat"
}

func (DiffStat) Summarize(ctx context.Context, in *analyzers.Input) (*analyzers.Digest, error) {
	_, stats, err := parseDiff(in.Diff)
	if err != nil {
		return nil, err
	}

	files := append([]string(nil), stats.files...)
	sort.Strings(files)

	highlights := files
	if len(highlights) > maxHighlightedFiles {
		highlights = append(highlights[:maxHighlightedFiles:maxHighlightedFiles],
			fmt.Sprintf("... and %d more", len(files)-maxHighlightedFiles))
	}

	headline := fmt.Sprintf("%d files changed, %d insertions(+), %d deletions(-)",
		len(files), stats.additions, stats.deletions)
	var body string
	if in.Title != "" {
		body = fmt.Sprintf("%q touches %s.", in.Title, topDirs(files))
	} else {
		body = fmt.Sprintf("Touches %s.", topDirs(files))
	}

	return &analyzers.Digest{
		Headline:     headline,
		Body:         body,
		Highlights:   highlights,
		FilesChanged: len(files),
		Additions:    stats.additions,
		Deletions:    stats.deletions,
	}, nil
}

func topDirs(files []string) string {
	if len(files) == 0 {
		return "no files"
	}

	seen := map[string]bool{}
	var dirs []string
	for _, f := range files {
		dir := "."
		if i := strings.Index(f, "/"); i != -1 {
			dir = f[:i]
		}
		if !seen[dir] {
			seen[dir] = true
			dirs = append(dirs, dir)
		}
	}

	return strings.Join(dirs, ", ")
}
