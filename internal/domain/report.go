package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyInput describes one withholding period of a flat monthly salary.
type MonthlyInput struct {
	PretaxIncome     decimal.Decimal
	Period           int // 1-based index within the tax year
	Rates            DeductionRates
	SpecialDeduction decimal.Decimal
}

// MonthlyReport is the immutable result for a single period.
type MonthlyReport struct {
	Period       int             `json:"period"`
	PretaxIncome decimal.Decimal `json:"pretax_income"`

	ProvidentFund         decimal.Decimal `json:"provident_fund"`
	MedicalInsurance      decimal.Decimal `json:"medical_insurance"`
	PensionInsurance      decimal.Decimal `json:"pension_insurance"`
	UnemploymentInsurance decimal.Decimal `json:"unemployment_insurance"`
	IndustrialInjury      decimal.Decimal `json:"industrial_injury_insurance"`
	MaternityInsurance    decimal.Decimal `json:"maternity_insurance"`
	InsurancesAndFund     decimal.Decimal `json:"insurances_and_fund"`
	FinalProvidentFund    decimal.Decimal `json:"final_provident_fund"`
	SpecialDeduction      decimal.Decimal `json:"special_deduction"`
	TaxableIncome         decimal.Decimal `json:"taxable_income"`
	CumulativeTaxable     decimal.Decimal `json:"cumulative_taxable_income"`
	TaxPayable            decimal.Decimal `json:"tax_payable"`
	CumulativeTaxedIncome decimal.Decimal `json:"cumulative_taxed_income"`
	TaxPaid               decimal.Decimal `json:"tax_paid"`
	TaxPayableCurrently   decimal.Decimal `json:"tax_payable_currently"`
	AfterTaxIncome        decimal.Decimal `json:"after_tax_income"`
}

// BonusResult is the separately computed tax on a year-end bonus.
type BonusResult struct {
	TaxPayable decimal.Decimal `json:"tax_payable"`
	AfterTax   decimal.Decimal `json:"after_tax"`
}

// Bonus is a normalized bonus entry: the value the user gave, its absolute
// amount and its size expressed in months of salary.
type Bonus struct {
	Spec   decimal.Decimal `json:"spec"`
	Amount decimal.Decimal `json:"amount"`
	Months decimal.Decimal `json:"months"`
	Result BonusResult     `json:"result"`
}

// YearlyInput drives the yearly aggregation.
type YearlyInput struct {
	PretaxIncome     decimal.Decimal
	Periods          int
	Bonuses          []decimal.Decimal // month counts, or currency amounts when the last exceeds 100
	Rates            DeductionRates
	SpecialDeduction decimal.Decimal
}

// Clone returns a copy whose bonus list does not alias the receiver's.
func (in YearlyInput) Clone() YearlyInput {
	out := in
	if in.Bonuses != nil {
		out.Bonuses = append([]decimal.Decimal(nil), in.Bonuses...)
	}
	return out
}

// ItemLine is one row of the per-item breakdown: monthly figure, rate and
// yearly total.
type ItemLine struct {
	Label   string          `json:"label"`
	Monthly decimal.Decimal `json:"monthly"`
	Rate    string          `json:"rate"`
	Yearly  decimal.Decimal `json:"yearly"`
}

// LedgerKind classifies ledger rows.
type LedgerKind string

const (
	LedgerPeriod   LedgerKind = "period"
	LedgerTotal    LedgerKind = "total"
	LedgerBonus    LedgerKind = "bonus"
	LedgerCombined LedgerKind = "combined"
)

// LedgerLine is one row of the period ledger. CumulativeTax is nil where the
// column does not apply.
type LedgerLine struct {
	Kind              LedgerKind       `json:"kind"`
	Label             string           `json:"label"`
	PretaxIncome      decimal.Decimal  `json:"pretax_income"`
	InsurancesAndFund decimal.Decimal  `json:"insurances_and_fund"`
	Tax               decimal.Decimal  `json:"tax"`
	AfterTaxIncome    decimal.Decimal  `json:"after_tax_income"`
	CumulativeTax     *decimal.Decimal `json:"cumulative_tax,omitempty"`
}

// YearlySummary is everything the yearly reports render.
type YearlySummary struct {
	RunID        string          `json:"run_id"`
	GeneratedAt  time.Time       `json:"generated_at"`
	PretaxIncome decimal.Decimal `json:"pretax_income"`
	Periods      int             `json:"periods"`
	Rates        DeductionRates  `json:"rates"`
	Months       []MonthlyReport `json:"months"`
	Bonuses      []Bonus         `json:"bonuses"`
	Items        []ItemLine      `json:"items"`
	Ledger       []LedgerLine    `json:"ledger"`
}

// BonusMonths lists each bonus's months-equivalent, in input order.
func (s *YearlySummary) BonusMonths() []decimal.Decimal {
	out := make([]decimal.Decimal, len(s.Bonuses))
	for i, b := range s.Bonuses {
		out[i] = b.Months
	}
	return out
}
