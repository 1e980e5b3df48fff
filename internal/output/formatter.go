package output

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/rgehrsitz/iitax/internal/domain"
)

// Formatter renders a yearly summary into a byte slice.
type Formatter interface {
	Name() string
	Format(summary *domain.YearlySummary) ([]byte, error)
}

// FormatterFunc adapts a plain function to the Formatter interface.
type FormatterFunc struct {
	ID string
	F  func(summary *domain.YearlySummary) ([]byte, error)
}

func (f FormatterFunc) Name() string { return f.ID }

func (f FormatterFunc) Format(summary *domain.YearlySummary) ([]byte, error) {
	return f.F(summary)
}

var formatters = map[string]Formatter{
	"table": TableFormatter{},
	"csv":   CSVFormatter{},
	"json":  JSONFormatter,
	"html":  HTMLFormatter{},
	"xlsx":  XLSXFormatter{},
	"pdf":   PDFFormatter{},
}

var formatAliases = map[string]string{
	"console": "table",
	"text":    "table",
	"excel":   "xlsx",
}

// GetFormatterByName returns the formatter registered under name or alias,
// or nil when none matches.
func GetFormatterByName(name string) Formatter {
	if target, ok := formatAliases[name]; ok {
		name = target
	}
	return formatters[name]
}

// AvailableFormatterNames lists the registered formatter names, sorted.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(formatters))
	for name := range formatters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases lists the accepted aliases, sorted.
func AvailableFormatAliases() []string {
	aliases := make([]string, 0, len(formatAliases))
	for alias := range formatAliases {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)
	return aliases
}

// Extension returns the file extension conventionally used for a formatter.
func Extension(f Formatter) string {
	if f.Name() == "table" {
		return "txt"
	}
	return f.Name()
}

// WriteFormatted formats the summary and writes it to a timestamped file in
// the working directory, returning the file name.
func WriteFormatted(f Formatter, summary *domain.YearlySummary, ext string) (string, error) {
	data, err := f.Format(summary)
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("iit_report_%s.%s", time.Now().Format("20060102_150405"), ext)
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s report: %w", f.Name(), err)
	}
	return filename, nil
}

// WriteFile formats the summary into the given path.
func WriteFile(f Formatter, summary *domain.YearlySummary, path string) error {
	data, err := f.Format(summary)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s report: %w", f.Name(), err)
	}
	return nil
}
