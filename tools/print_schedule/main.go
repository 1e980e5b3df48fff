package main

import (
	"fmt"
	"os"

	"github.com/rgehrsitz/iitax/internal/calculation"
	"github.com/rgehrsitz/iitax/internal/domain"
	"github.com/shopspring/decimal"
)

// Prints the cumulative withholding schedule for each income given on the
// command line, to eyeball bracket crossings.
func main() {
	incomes := os.Args[1:]
	if len(incomes) == 0 {
		incomes = []string{"27000"}
	}

	ce := calculation.NewCalculationEngine()
	for _, raw := range incomes {
		income, err := decimal.NewFromString(raw)
		if err != nil {
			fmt.Fprintf(os.Stderr, "skipping %q: %v\n", raw, err)
			continue
		}

		fmt.Printf("Income %s:\n", income.StringFixed(2))
		prevRate := decimal.Zero
		for period := 1; period <= 12; period++ {
			r := ce.CalculateMonthly(domain.MonthlyInput{
				PretaxIncome: income,
				Period:       period,
				Rates:        domain.DefaultDeductionRates(),
			})
			rate := ce.TaxCalc.Brackets.Find(r.CumulativeTaxable).Rate
			marker := ""
			if period > 1 && !rate.Equal(prevRate) {
				marker = "  <- bracket " + domain.Percent(rate)
			}
			prevRate = rate
			fmt.Printf("  %2d  cumulative %12s  tax %10s  due %9s%s\n",
				period, r.CumulativeTaxable.StringFixed(2), r.TaxPayable.StringFixed(2),
				r.TaxPayableCurrently.StringFixed(2), marker)
		}
		fmt.Println()
	}
}
