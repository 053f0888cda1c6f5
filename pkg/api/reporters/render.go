package reporters

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/pkg/errors"
	"github.com/sagea-ai/reasonet-web-sub000/pkg/api/analyzers"
	"github.com/sagea-ai/reasonet-web-sub000/pkg/api/models"
)

const maxCommentFindings = 50

var funcs = template.FuncMap{
	"cell": func(s string) string {
		s = strings.Replace(s, "\n", " ", -1)
		return strings.Replace(s, "|", `\|`, -1)
	},
	"kind": func(k models.ResultKind) string {
		if k == models.ResultKindSecurity {
			return "security"
		}
		return "quality"
	},
	"location": func(f analyzers.Finding) string {
		if f.FilePath == "" {
			return "-"
		}
		if f.LineEnd > f.LineStart {
			return fmt.Sprintf("`%s:%d-%d`", f.FilePath, f.LineStart, f.LineEnd)
		}
		return fmt.Sprintf("`%s:%d`", f.FilePath, f.LineStart)
	},
}

var commentTmpl = template.Must(template.New("comment").Funcs(funcs).Parse(
	`### Reasonet review
{{ with .Digest }}
**{{ .Headline }}**

{{ .Body }}
{{ end }}
{{ if .Findings -}}
| Severity | Kind | Location | Finding |
|---|---|---|---|
{{ range .Findings }}| {{ .Severity }} | {{ kind .Kind }} | {{ location . }} | {{ cell .Title }} |
{{ end }}{{ if .Omitted }}{{ if .ArtifactURL }}
{{ .Omitted }} more findings are in the full report.
{{ else }}
{{ .Omitted }} more findings are not shown.
{{ end }}{{ end }}{{ else -}}
No findings.
{{ end }}{{ if .ArtifactURL }}
Full report: {{ .ArtifactURL }}
{{ end }}`))

var artifactTmpl = template.Must(template.New("artifact").Funcs(funcs).Parse(
	`# Analysis of {{ .FullName }}#{{ .PullRequestNumber }}
{{ with .Digest }}
## Summary

**{{ .Headline }}**

{{ .Body }}
{{ range .Highlights }}
- {{ . }}{{ end }}
{{ end }}
## Findings ({{ len .Findings }})
{{ range .Findings }}
### [{{ .Severity }}] {{ .Title }}

{{ kind .Kind }} at {{ location . }}

{{ .Description }}
{{ if .CodeSnippet }}
` + "```" + `
{{ .CodeSnippet }}
` + "```" + `
{{ end }}{{ end }}`))

var summaryTmpl = template.Must(template.New("summary").Funcs(funcs).Parse(
	`{{ .Start }}
### Reasonet summary

**{{ .Digest.Headline }}**

{{ .Digest.Body }}
{{ range .Digest.Highlights }}
- {{ . }}{{ end }}
{{ .End }}`))

func execute(t *template.Template, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", errors.Wrapf(err, "can't render %s template", t.Name())
	}
	return buf.String(), nil
}

func RenderComment(r *Report) (string, error) {
	findings := r.SortedFindings()
	omitted := 0
	if len(findings) > maxCommentFindings {
		omitted = len(findings) - maxCommentFindings
		findings = findings[:maxCommentFindings]
	}

	return execute(commentTmpl, struct {
		Digest      *analyzers.Digest
		Findings    []analyzers.Finding
		Omitted     int
		ArtifactURL string
	}{r.Digest, findings, omitted, r.ArtifactURL})
}

func RenderArtifact(r *Report) (string, error) {
	return execute(artifactTmpl, struct {
		FullName          string
		PullRequestNumber int
		Digest            *analyzers.Digest
		Findings          []analyzers.Finding
	}{r.FullName(), r.PullRequestNumber, r.Digest, r.SortedFindings()})
}

func renderSummarySection(d *analyzers.Digest) (string, error) {
	return execute(summaryTmpl, struct {
		Start, End string
		Digest     *analyzers.Digest
	}{summaryStartMarker, summaryEndMarker, d})
}
