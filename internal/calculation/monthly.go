package calculation

import (
	"github.com/rgehrsitz/iitax/internal/domain"
	"github.com/shopspring/decimal"
)

// MonthlyCalculator computes one withholding period.
type MonthlyCalculator struct {
	Exemption decimal.Decimal
	TaxCalc   *CumulativeTaxCalculator
}

// NewMonthlyCalculator uses exemption as given; a zero exemption taxes the
// whole income after deductions. A nil taxCalc uses the published table.
func NewMonthlyCalculator(exemption decimal.Decimal, taxCalc *CumulativeTaxCalculator) *MonthlyCalculator {
	if taxCalc == nil {
		taxCalc = NewCumulativeTaxCalculator(nil)
	}
	return &MonthlyCalculator{Exemption: exemption, TaxCalc: taxCalc}
}

// Calculate builds the report for in.Period (which must be >= 1).
func (mc *MonthlyCalculator) Calculate(in domain.MonthlyInput) domain.MonthlyReport {
	income := in.PretaxIncome
	r := domain.MonthlyReport{
		Period:                in.Period,
		PretaxIncome:          income,
		ProvidentFund:         income.Mul(in.Rates.ProvidentFund),
		MedicalInsurance:      income.Mul(in.Rates.Medical),
		PensionInsurance:      income.Mul(in.Rates.Pension),
		UnemploymentInsurance: income.Mul(in.Rates.Unemployment),
		IndustrialInjury:      income.Mul(in.Rates.IndustrialInjury),
		MaternityInsurance:    income.Mul(in.Rates.Maternity),
		SpecialDeduction:      in.SpecialDeduction,
	}
	r.InsurancesAndFund = r.ProvidentFund.
		Add(r.MedicalInsurance).
		Add(r.PensionInsurance).
		Add(r.UnemploymentInsurance).
		Add(r.IndustrialInjury).
		Add(r.MaternityInsurance)
	// employer matches the employee's housing fund contribution
	r.FinalProvidentFund = r.ProvidentFund.Mul(two)

	r.TaxableIncome = decimal.Max(decimal.Zero,
		income.Sub(r.InsurancesAndFund).Sub(in.SpecialDeduction).Sub(mc.Exemption))

	r.CumulativeTaxable = r.TaxableIncome.Mul(decimal.NewFromInt(int64(in.Period)))
	r.TaxPayable = mc.TaxCalc.TaxPayable(r.CumulativeTaxable)

	r.CumulativeTaxedIncome = r.TaxableIncome.Mul(decimal.NewFromInt(int64(in.Period - 1)))
	r.TaxPaid = mc.TaxCalc.TaxPayable(r.CumulativeTaxedIncome)

	r.TaxPayableCurrently = round2(r.TaxPayable.Sub(r.TaxPaid))
	r.AfterTaxIncome = income.Sub(r.InsurancesAndFund).Sub(r.TaxPayableCurrently)
	return r
}
