package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrInvalidBracketTable is wrapped by BracketTable.Validate failures.
var ErrInvalidBracketTable = errors.New("invalid bracket table")

// Bracket is one progressive tier: income up to Upper is taxed at Rate less
// the quick deduction. A nil Upper marks the open-ended top tier.
type Bracket struct {
	Upper          *decimal.Decimal `yaml:"upper,omitempty" json:"upper,omitempty" toml:"upper,omitempty"`
	Rate           decimal.Decimal  `yaml:"rate" json:"rate" toml:"rate"`
	QuickDeduction decimal.Decimal  `yaml:"quick_deduction" json:"quick_deduction" toml:"quick_deduction"`
}

// Contains reports whether amount falls at or below the bracket's upper bound.
func (b Bracket) Contains(amount decimal.Decimal) bool {
	return b.Upper == nil || amount.LessThanOrEqual(*b.Upper)
}

// Apply returns amount × rate − quick deduction, unrounded.
func (b Bracket) Apply(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(b.Rate).Sub(b.QuickDeduction)
}

// BracketTable is an ascending list of brackets ending with an unbounded tier.
type BracketTable []Bracket

// Find returns the first bracket whose upper bound is not below amount.
func (t BracketTable) Find(amount decimal.Decimal) Bracket {
	for _, b := range t {
		if b.Contains(amount) {
			return b
		}
	}
	// unreachable for a validated table
	return t[len(t)-1]
}

// Validate checks that bounds strictly increase and only the last tier is open.
func (t BracketTable) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("%w: no brackets", ErrInvalidBracketTable)
	}
	for i, b := range t {
		last := i == len(t)-1
		if b.Rate.LessThan(decimal.Zero) || b.Rate.GreaterThan(decimal.NewFromInt(1)) {
			return fmt.Errorf("%w: bracket %d rate must be between 0 and 1", ErrInvalidBracketTable, i)
		}
		if b.QuickDeduction.LessThan(decimal.Zero) {
			return fmt.Errorf("%w: bracket %d quick deduction cannot be negative", ErrInvalidBracketTable, i)
		}
		if last {
			if b.Upper != nil {
				return fmt.Errorf("%w: last bracket must be unbounded", ErrInvalidBracketTable)
			}
			continue
		}
		if b.Upper == nil {
			return fmt.Errorf("%w: only the last bracket may be unbounded (bracket %d)", ErrInvalidBracketTable, i)
		}
		if i > 0 && !b.Upper.GreaterThan(*t[i-1].Upper) {
			return fmt.Errorf("%w: bracket %d upper bound %s does not exceed %s",
				ErrInvalidBracketTable, i, b.Upper.String(), t[i-1].Upper.String())
		}
	}
	return nil
}

// Clone returns a deep copy so callers never share bound pointers.
func (t BracketTable) Clone() BracketTable {
	if t == nil {
		return nil
	}
	out := make(BracketTable, len(t))
	for i, b := range t {
		out[i] = b
		if b.Upper != nil {
			u := *b.Upper
			out[i].Upper = &u
		}
	}
	return out
}

func bound(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func bracket(upper *decimal.Decimal, rate string, quick int64) Bracket {
	return Bracket{Upper: upper, Rate: decimal.RequireFromString(rate), QuickDeduction: decimal.NewFromInt(quick)}
}

// DefaultCumulativeBrackets is the comprehensive-income table applied to
// year-to-date taxable income.
func DefaultCumulativeBrackets() BracketTable {
	return BracketTable{
		bracket(bound(36000), "0.03", 0),
		bracket(bound(144000), "0.10", 2520),
		bracket(bound(300000), "0.20", 16920),
		bracket(bound(420000), "0.25", 31920),
		bracket(bound(660000), "0.30", 52920),
		bracket(bound(960000), "0.35", 85920),
		bracket(nil, "0.45", 181920),
	}
}

// DefaultBonusBrackets is the monthly-converted table used for the separately
// taxed year-end bonus. Bounds are compared against bonus / BonusDivisor.
func DefaultBonusBrackets() BracketTable {
	return BracketTable{
		bracket(bound(3000), "0.03", 0),
		bracket(bound(12000), "0.10", 210),
		bracket(bound(25000), "0.20", 1410),
		bracket(bound(35000), "0.25", 2660),
		bracket(bound(55000), "0.30", 4410),
		bracket(bound(80000), "0.35", 7160),
		bracket(nil, "0.45", 15160),
	}
}

// TaxRules holds the statutory parameters shared by every calculation.
type TaxRules struct {
	MonthlyExemption   decimal.Decimal `yaml:"monthly_exemption" json:"monthly_exemption" toml:"monthly_exemption"`
	BonusDivisor       int             `yaml:"bonus_divisor" json:"bonus_divisor" toml:"bonus_divisor"`
	CumulativeBrackets BracketTable    `yaml:"cumulative_brackets,omitempty" json:"cumulative_brackets,omitempty" toml:"cumulative_brackets,omitempty"`
	BonusBrackets      BracketTable    `yaml:"bonus_brackets,omitempty" json:"bonus_brackets,omitempty" toml:"bonus_brackets,omitempty"`
}

// DefaultTaxRules returns the 5000/month exemption and the published tables.
func DefaultTaxRules() TaxRules {
	return TaxRules{
		MonthlyExemption:   decimal.NewFromInt(5000),
		BonusDivisor:       12,
		CumulativeBrackets: DefaultCumulativeBrackets(),
		BonusBrackets:      DefaultBonusBrackets(),
	}
}
