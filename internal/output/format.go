package output

import (
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var currencyPrinter = message.NewPrinter(language.English)

// FormatCurrency formats an amount with two decimals and thousands separators.
func FormatCurrency(amount decimal.Decimal) string {
	rounded := amount.Round(2)
	abs := rounded.Abs()
	_, frac, _ := strings.Cut(abs.StringFixed(2), ".")
	s := currencyPrinter.Sprintf("%d", abs.IntPart()) + "." + frac
	if rounded.IsNegative() {
		return "-" + s
	}
	return s
}

// FormatMonths renders bonus month counts as "[2, 3, 4]".
func FormatMonths(months []decimal.Decimal) string {
	return "[" + strings.Join(lo.Map(months, func(m decimal.Decimal, _ int) string {
		return m.String()
	}), ", ") + "]"
}

// cell renders one table value: decimals with two places, nil as "-".
func cell(v any) string {
	switch x := v.(type) {
	case nil:
		return "-"
	case decimal.Decimal:
		return x.StringFixed(2)
	case *decimal.Decimal:
		if x == nil {
			return "-"
		}
		return x.StringFixed(2)
	case int:
		return strconv.Itoa(x)
	case string:
		return x
	default:
		return "?"
	}
}
