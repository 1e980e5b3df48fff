package calculation

import (
	"fmt"
	"strconv"

	"github.com/rgehrsitz/iitax/internal/domain"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// Item labels of the per-item breakdown.
const (
	LabelPretaxIncome          = "Pretax income"
	LabelProvidentFund         = "Provident fund"
	LabelMedical               = "Medical insurance"
	LabelPension               = "Pension insurance"
	LabelUnemployment          = "Unemployment insurance"
	LabelIndustrialInjury      = "Industrial injury insurance"
	LabelMaternity             = "Maternity insurance"
	LabelInsurancesAndFund     = "Insurances and fund"
	LabelSpecialDeduction      = "Special deduction"
	LabelTaxableIncome         = "Taxable income"
	LabelProvidentFundReceived = "Provident fund received"

	LabelTotal = "Total"
)

// buildItems lays out the monthly and yearly figure of every deduction.
func buildItems(first domain.MonthlyReport, rates domain.DeductionRates, periods int) []domain.ItemLine {
	n := decimal.NewFromInt(int64(periods))
	line := func(label string, monthly decimal.Decimal, rate string) domain.ItemLine {
		return domain.ItemLine{Label: label, Monthly: monthly, Rate: rate, Yearly: monthly.Mul(n)}
	}
	return []domain.ItemLine{
		line(LabelPretaxIncome, first.PretaxIncome, "-"),
		line(LabelProvidentFund, first.ProvidentFund, domain.Percent(rates.ProvidentFund)),
		line(LabelMedical, first.MedicalInsurance, domain.Percent(rates.Medical)),
		line(LabelPension, first.PensionInsurance, domain.Percent(rates.Pension)),
		line(LabelUnemployment, first.UnemploymentInsurance, domain.Percent(rates.Unemployment)),
		line(LabelIndustrialInjury, first.IndustrialInjury, domain.Percent(rates.IndustrialInjury)),
		line(LabelMaternity, first.MaternityInsurance, domain.Percent(rates.Maternity)),
		line(LabelInsurancesAndFund, first.InsurancesAndFund, "-"),
		line(LabelSpecialDeduction, first.SpecialDeduction, "-"),
		line(LabelTaxableIncome, first.TaxableIncome, "-"),
		line(LabelProvidentFundReceived, first.FinalProvidentFund,
			domain.Percent(rates.ProvidentFund)+"+"+domain.Percent(rates.ProvidentFund)),
	}
}

// buildLedger lists every period, the yearly total and, per bonus, the bonus
// itself followed by the total including it.
func buildLedger(months []domain.MonthlyReport, bonuses []domain.Bonus, income decimal.Decimal, periods int) []domain.LedgerLine {
	n := decimal.NewFromInt(int64(periods))
	last := months[len(months)-1]

	ledger := lo.Map(months, func(r domain.MonthlyReport, _ int) domain.LedgerLine {
		cumulative := r.TaxPayable
		return domain.LedgerLine{
			Kind:              domain.LedgerPeriod,
			Label:             strconv.Itoa(r.Period),
			PretaxIncome:      r.PretaxIncome,
			InsurancesAndFund: r.InsurancesAndFund,
			Tax:               r.TaxPayableCurrently,
			AfterTaxIncome:    r.AfterTaxIncome,
			CumulativeTax:     &cumulative,
		}
	})

	afterTax := lo.Reduce(months, func(acc decimal.Decimal, r domain.MonthlyReport, _ int) decimal.Decimal {
		return acc.Add(r.AfterTaxIncome)
	}, decimal.Zero)
	yearlyIncome := income.Mul(n)
	yearlyInsurances := last.InsurancesAndFund.Mul(n)

	ledger = append(ledger, domain.LedgerLine{
		Kind:              domain.LedgerTotal,
		Label:             LabelTotal,
		PretaxIncome:      yearlyIncome,
		InsurancesAndFund: yearlyInsurances,
		Tax:               last.TaxPayable,
		AfterTaxIncome:    round2(afterTax),
	})

	for i, b := range bonuses {
		bonusTax := b.Result.TaxPayable
		ledger = append(ledger,
			domain.LedgerLine{
				Kind:              domain.LedgerBonus,
				Label:             fmt.Sprintf("Bonus %s months", b.Months.String()),
				PretaxIncome:      b.Amount,
				InsurancesAndFund: decimal.Zero,
				Tax:               bonusTax,
				AfterTaxIncome:    b.Result.AfterTax,
				CumulativeTax:     &bonusTax,
			},
			domain.LedgerLine{
				Kind:              domain.LedgerCombined,
				Label:             fmt.Sprintf("Total %d (+%s)", i+1, b.Months.String()),
				PretaxIncome:      round2(yearlyIncome.Add(b.Amount)),
				InsurancesAndFund: yearlyInsurances,
				Tax:               last.TaxPayable.Add(bonusTax),
				AfterTaxIncome:    round2(afterTax.Add(b.Result.AfterTax)),
			},
		)
	}
	return ledger
}
