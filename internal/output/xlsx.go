package output

import (
	"fmt"

	"github.com/rgehrsitz/iitax/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// Workbook sheet names.
const (
	ItemsSheet  = "Items"
	LedgerSheet = "Ledger"
)

// XLSXFormatter writes a workbook with an Items sheet and a Ledger sheet.
// Amounts are stored as numbers so the sheet can be summed.
type XLSXFormatter struct{}

func (XLSXFormatter) Name() string { return "xlsx" }

func (XLSXFormatter) Format(s *domain.YearlySummary) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ItemsSheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(LedgerSheet); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#E2E8F0"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, err
	}
	moneyFmt := "#,##0.00"
	moneyStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &moneyFmt})
	if err != nil {
		return nil, err
	}

	items := BuildItemTable(s)
	if err := writeSheet(f, ItemsSheet, items, headerStyle, moneyStyle); err != nil {
		return nil, err
	}
	ledger := BuildLedgerTable(s)
	if err := writeSheet(f, LedgerSheet, ledger, headerStyle, moneyStyle); err != nil {
		return nil, err
	}

	widths := []struct {
		sheet, from, to string
		width           float64
	}{
		{ItemsSheet, "A", "A", 30},
		{ItemsSheet, "B", "D", 15},
		{LedgerSheet, "A", "A", 16},
		{LedgerSheet, "B", "F", 20},
	}
	for _, w := range widths {
		if err := f.SetColWidth(w.sheet, w.from, w.to, w.width); err != nil {
			return nil, fmt.Errorf("failed to set column width on %s: %w", w.sheet, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSheet(f *excelize.File, sheet string, t Table, headerStyle, moneyStyle int) error {
	for i, h := range t.Headers {
		axis, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, axis, h); err != nil {
			return err
		}
	}
	if err := f.SetRowStyle(sheet, 1, 1, headerStyle); err != nil {
		return err
	}
	for r, row := range t.Rows {
		for c, v := range row {
			axis, _ := excelize.CoordinatesToCellName(c+1, r+2)
			value, money := sheetValue(v)
			if err := f.SetCellValue(sheet, axis, value); err != nil {
				return err
			}
			if money {
				if err := f.SetCellStyle(sheet, axis, axis, moneyStyle); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func sheetValue(v any) (any, bool) {
	switch x := v.(type) {
	case decimal.Decimal:
		return x.InexactFloat64(), true
	case *decimal.Decimal:
		if x == nil {
			return "-", false
		}
		return x.InexactFloat64(), true
	default:
		return cell(v), false
	}
}
