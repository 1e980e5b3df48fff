package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rgehrsitz/iitax/internal/domain"
)

// CSVFormatter emits the ledger as CSV, one row per ledger line.
type CSVFormatter struct{}

func (CSVFormatter) Name() string { return "csv" }

func (CSVFormatter) Format(s *domain.YearlySummary) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := append([]string{"Kind"}, LedgerHeaders...)
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, l := range s.Ledger {
		row := []string{
			string(l.Kind),
			l.Label,
			l.PretaxIncome.StringFixed(2),
			l.InsurancesAndFund.StringFixed(2),
			l.Tax.StringFixed(2),
			l.AfterTaxIncome.StringFixed(2),
			cell(l.CumulativeTax),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
