package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/fisc-tools/doc-audit/pkg/models/domain"
)

type TableConfig struct {
	LabelWidth   int
	StatusWidth  int
	DetailsWidth int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		LabelWidth:   36,
		StatusWidth:  8,
		DetailsWidth: 64,
	}
}

// Reporter renders audit reports as formatted text for the terminal.
type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

func (c *Reporter) Handle(report *domain.AuditReport) error {
	funcMap := template.FuncMap{
		"formatRow": func(label, status, details string) string {
			return fmt.Sprintf("| %-*s | %-*s | %-*s |",
				c.config.LabelWidth, truncate(label, c.config.LabelWidth),
				c.config.StatusWidth, status,
				c.config.DetailsWidth, truncate(details, c.config.DetailsWidth))
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+%s+",
				strings.Repeat("-", c.config.LabelWidth+2),
				strings.Repeat("-", c.config.StatusWidth+2),
				strings.Repeat("-", c.config.DetailsWidth+2))
		},
	}

	tmpl := `
Audit session {{.SessionID}}
Generated at: {{.GeneratedAt.Format "2006-01-02 15:04:05"}} UTC
{{range $key, $value := .Summary}}{{$key}}: {{$value}}
{{end}}
{{range $i, $f := .Findings}}
[{{$f.Status}}] {{$f.Title}} ({{$f.ID}})
{{if $f.Details}}  {{$f.Details}}
{{end}}{{if $f.Recommendation}}  Recommendation: {{$f.Recommendation}}
{{end}}{{if $f.SubFindings}}{{separator}}
{{formatRow "Item" "Status" "Details"}}
{{separator}}
{{range $f.SubFindings}}{{formatRow .Label .Status.String .Details}}
{{end}}{{separator}}
{{end}}{{end}}
`

	t, err := template.New("report").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, report)
}

func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-1]) + "…"
}
