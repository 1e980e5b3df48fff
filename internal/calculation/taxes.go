package calculation

import (
	"github.com/rgehrsitz/iitax/internal/domain"
	"github.com/shopspring/decimal"
)

// TAX CALCULATION ASSUMPTIONS:
//
// 1. Salary withholding uses the cumulative method: taxable income for the
//    year so far is taxed on the comprehensive-income table and the tax
//    already withheld in earlier periods is subtracted.
// 2. Year-to-date taxable income is modelled as this period's taxable income
//    times the period index, i.e. a flat salary across the year.
// 3. The year-end bonus is taxed separately: the bracket is chosen by
//    bonus / 12 and the rate applied to the whole bonus.
// 4. Results are rounded to cents only where a figure is reported.

var two = decimal.NewFromInt(2)

// round2 rounds a reported amount to cents.
func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// CumulativeTaxCalculator applies the comprehensive-income table to
// year-to-date taxable income.
type CumulativeTaxCalculator struct {
	Brackets domain.BracketTable
}

// NewCumulativeTaxCalculator uses the published table when none is given.
func NewCumulativeTaxCalculator(brackets domain.BracketTable) *CumulativeTaxCalculator {
	if len(brackets) == 0 {
		brackets = domain.DefaultCumulativeBrackets()
	}
	return &CumulativeTaxCalculator{Brackets: brackets.Clone()}
}

// TaxPayable returns the tax due on cumulative taxable income, rounded to
// cents. Negative input is not rejected; callers floor taxable income at 0.
func (c *CumulativeTaxCalculator) TaxPayable(cumulativeTaxable decimal.Decimal) decimal.Decimal {
	return round2(c.Brackets.Find(cumulativeTaxable).Apply(cumulativeTaxable))
}

// BonusTaxCalculator taxes a year-end bonus on its own table.
type BonusTaxCalculator struct {
	Brackets domain.BracketTable
	Divisor  decimal.Decimal
}

// NewBonusTaxCalculator uses the published table and a divisor of 12 when
// not configured.
func NewBonusTaxCalculator(brackets domain.BracketTable, divisor int) *BonusTaxCalculator {
	if len(brackets) == 0 {
		brackets = domain.DefaultBonusBrackets()
	}
	if divisor <= 0 {
		divisor = 12
	}
	return &BonusTaxCalculator{Brackets: brackets.Clone(), Divisor: decimal.NewFromInt(int64(divisor))}
}

// Calculate selects the bracket by bonus / divisor and applies it to the
// full bonus. Both figures are rounded to cents from the unrounded tax.
func (c *BonusTaxCalculator) Calculate(pretaxBonus decimal.Decimal) domain.BonusResult {
	tax := c.Brackets.Find(pretaxBonus.Div(c.Divisor)).Apply(pretaxBonus)
	return domain.BonusResult{
		TaxPayable: round2(tax),
		AfterTax:   round2(pretaxBonus.Sub(tax)),
	}
}
