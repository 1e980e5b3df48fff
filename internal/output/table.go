package output

import (
	"bytes"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/rgehrsitz/iitax/internal/domain"
	"github.com/samber/lo"
)

// Table is a titled grid of cells. Cells may be decimals, ints, strings or
// nil, which renders as "-".
type Table struct {
	Title   string
	Headers []string
	Rows    [][]any
}

// Item table and ledger column headers.
var (
	ItemHeaders   = []string{"Item", "Monthly", "Rate", "Yearly"}
	LedgerHeaders = []string{"Period", "Pretax income", "Insurances and fund", "Tax this period", "After-tax income", "Cumulative tax"}
)

var (
	tableTitleStyle = lipgloss.NewStyle().Bold(true)
	tableCellStyle  = lipgloss.NewStyle().Padding(0, 1)
	tableHeadStyle  = tableCellStyle.Bold(true)
)

// Strings returns the rendered text of every row.
func (t Table) Strings() [][]string {
	return lo.Map(t.Rows, func(row []any, _ int) []string {
		return lo.Map(row, func(v any, _ int) string { return cell(v) })
	})
}

// RenderTable writes the table with a normal border, numbers right aligned.
func RenderTable(w io.Writer, t Table) error {
	grid := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(t.Headers...).
		Rows(t.Strings()...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeadStyle
			}
			if col == 0 {
				return tableCellStyle
			}
			return tableCellStyle.Align(lipgloss.Right)
		})
	if t.Title != "" {
		if _, err := fmt.Fprintln(w, tableTitleStyle.Render(t.Title)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, grid.Render())
	return err
}

// BuildItemTable lays out the per-item monthly/yearly breakdown.
func BuildItemTable(s *domain.YearlySummary) Table {
	return Table{
		Title:   "Items",
		Headers: ItemHeaders,
		Rows: lo.Map(s.Items, func(it domain.ItemLine, _ int) []any {
			return []any{it.Label, it.Monthly, it.Rate, it.Yearly}
		}),
	}
}

// BuildLedgerTable lays out the period ledger with totals and bonus rows.
func BuildLedgerTable(s *domain.YearlySummary) Table {
	return Table{
		Title:   "Ledger",
		Headers: LedgerHeaders,
		Rows: lo.Map(s.Ledger, func(l domain.LedgerLine, _ int) []any {
			return []any{l.Label, l.PretaxIncome, l.InsurancesAndFund, l.Tax, l.AfterTaxIncome, l.CumulativeTax}
		}),
	}
}

// Headline is the one-line description printed above the yearly tables.
func Headline(s *domain.YearlySummary) string {
	return fmt.Sprintf("Pretax %s × %d periods + bonus %s months",
		s.PretaxIncome.StringFixed(2), s.Periods, FormatMonths(s.BonusMonths()))
}

// PrintYearly writes the headline followed by the item table and the ledger.
func PrintYearly(w io.Writer, s *domain.YearlySummary) error {
	if _, err := fmt.Fprintln(w, Headline(s)); err != nil {
		return err
	}
	if err := RenderTable(w, BuildItemTable(s)); err != nil {
		return err
	}
	return RenderTable(w, BuildLedgerTable(s))
}

// TableFormatter renders the console tables.
type TableFormatter struct{}

func (TableFormatter) Name() string { return "table" }

func (TableFormatter) Format(s *domain.YearlySummary) ([]byte, error) {
	var buf bytes.Buffer
	if err := PrintYearly(&buf, s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
