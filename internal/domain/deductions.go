package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// DeductionRates are the employee-side social insurance and housing fund
// contribution rates, each a fraction of pretax income.
type DeductionRates struct {
	ProvidentFund    decimal.Decimal `yaml:"provident_fund" json:"provident_fund" toml:"provident_fund"`
	Medical          decimal.Decimal `yaml:"medical" json:"medical" toml:"medical"`
	Pension          decimal.Decimal `yaml:"pension" json:"pension" toml:"pension"`
	Unemployment     decimal.Decimal `yaml:"unemployment" json:"unemployment" toml:"unemployment"`
	IndustrialInjury decimal.Decimal `yaml:"industrial_injury" json:"industrial_injury" toml:"industrial_injury"`
	Maternity        decimal.Decimal `yaml:"maternity" json:"maternity" toml:"maternity"`
}

// Default contribution rates.
var (
	DefaultProvidentFundRate    = decimal.RequireFromString("0.12")
	DefaultMedicalRate          = decimal.RequireFromString("0.02")
	DefaultPensionRate          = decimal.RequireFromString("0.08")
	DefaultUnemploymentRate     = decimal.RequireFromString("0.002")
	DefaultIndustrialInjuryRate = decimal.Zero
	DefaultMaternityRate        = decimal.Zero
)

// DefaultDeductionRates returns the documented default contribution rates.
func DefaultDeductionRates() DeductionRates {
	return DeductionRates{
		ProvidentFund:    DefaultProvidentFundRate,
		Medical:          DefaultMedicalRate,
		Pension:          DefaultPensionRate,
		Unemployment:     DefaultUnemploymentRate,
		IndustrialInjury: DefaultIndustrialInjuryRate,
		Maternity:        DefaultMaternityRate,
	}
}

// Named pairs each rate with its label, in report order.
func (r DeductionRates) Named() []NamedRate {
	return []NamedRate{
		{Name: "provident_fund", Rate: r.ProvidentFund},
		{Name: "medical", Rate: r.Medical},
		{Name: "pension", Rate: r.Pension},
		{Name: "unemployment", Rate: r.Unemployment},
		{Name: "industrial_injury", Rate: r.IndustrialInjury},
		{Name: "maternity", Rate: r.Maternity},
	}
}

// Validate checks every rate lies in [0, 1].
func (r DeductionRates) Validate() error {
	one := decimal.NewFromInt(1)
	for _, n := range r.Named() {
		if n.Rate.LessThan(decimal.Zero) || n.Rate.GreaterThan(one) {
			return fmt.Errorf("%s rate must be between 0 and 1, got %s", n.Name, n.Rate.String())
		}
	}
	return nil
}

// Percent renders a fraction as a percentage without padding, 0.12 -> "12%".
func Percent(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).String() + "%"
}

// NamedRate is a single labelled contribution rate.
type NamedRate struct {
	Name string
	Rate decimal.Decimal
}
