package domain

import "github.com/shopspring/decimal"

// Profile is the on-disk form of a yearly calculation: the salary, the
// number of periods, the bonus list and any rate or rule overrides.
type Profile struct {
	Name             string            `yaml:"name,omitempty" json:"name,omitempty" toml:"name,omitempty"`
	PretaxIncome     decimal.Decimal   `yaml:"pretax_income" json:"pretax_income" toml:"pretax_income"`
	Periods          int               `yaml:"periods" json:"periods" toml:"periods"`
	Bonuses          []decimal.Decimal `yaml:"bonuses,omitempty" json:"bonuses,omitempty" toml:"bonuses,omitempty"`
	SpecialDeduction decimal.Decimal   `yaml:"special_deduction" json:"special_deduction" toml:"special_deduction"`
	Rates            DeductionRates    `yaml:"rates" json:"rates" toml:"rates"`
	Rules            TaxRules          `yaml:"rules" json:"rules" toml:"rules"`
}

// YearlyInput converts the profile into calculator input.
func (p *Profile) YearlyInput() YearlyInput {
	in := YearlyInput{
		PretaxIncome:     p.PretaxIncome,
		Periods:          p.Periods,
		Bonuses:          p.Bonuses,
		Rates:            p.Rates,
		SpecialDeduction: p.SpecialDeduction,
	}
	return in.Clone()
}
