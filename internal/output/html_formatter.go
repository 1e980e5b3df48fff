package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/rgehrsitz/iitax/internal/domain"
)

// HTMLFormatter produces a standalone HTML page with both tables.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr": FormatCurrency,
	"cell": func(v any) string { return cell(v) },
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(s *domain.YearlySummary) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		*domain.YearlySummary
		Headline      string
		ItemHeaders   []string
		LedgerHeaders []string
	}{s, Headline(s), ItemHeaders, LedgerHeaders}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
