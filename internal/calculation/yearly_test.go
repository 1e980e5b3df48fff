package calculation

import (
	"testing"

	"github.com/rgehrsitz/iitax/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleYearlyInput() domain.YearlyInput {
	return domain.YearlyInput{
		PretaxIncome:     dec("27000"),
		Periods:          12,
		Bonuses:          decs("2", "3", "4"),
		Rates:            domain.DefaultDeductionRates(),
		SpecialDeduction: dec("1500"),
	}
}

func ledgerOfKind(s *domain.YearlySummary, kind domain.LedgerKind) []domain.LedgerLine {
	var out []domain.LedgerLine
	for _, l := range s.Ledger {
		if l.Kind == kind {
			out = append(out, l)
		}
	}
	return out
}

func TestCalculateYearly_LedgerShape(t *testing.T) {
	summary, err := CalculateYearly(sampleYearlyInput())
	require.NoError(t, err)

	assert.Len(t, summary.Months, 12)
	assert.Len(t, summary.Ledger, 12+1+3*2)
	assert.Len(t, ledgerOfKind(summary, domain.LedgerPeriod), 12)
	assert.Len(t, ledgerOfKind(summary, domain.LedgerTotal), 1)
	assert.Len(t, ledgerOfKind(summary, domain.LedgerBonus), 3)
	assert.Len(t, ledgerOfKind(summary, domain.LedgerCombined), 3)
	assert.NotEmpty(t, summary.RunID)

	// bonus and combined rows alternate after the total
	tail := summary.Ledger[13:]
	for i := 0; i < len(tail); i += 2 {
		assert.Equal(t, domain.LedgerBonus, tail[i].Kind)
		assert.Equal(t, domain.LedgerCombined, tail[i+1].Kind)
	}
}

func TestCalculateYearly_Totals(t *testing.T) {
	summary, err := CalculateYearly(sampleYearlyInput())
	require.NoError(t, err)

	total := ledgerOfKind(summary, domain.LedgerTotal)[0]
	assert.Equal(t, LabelTotal, total.Label)
	assert.Equal(t, "324000.00", total.PretaxIncome.StringFixed(2))
	assert.Equal(t, "71928.00", total.InsurancesAndFund.StringFixed(2))
	assert.Equal(t, "17894.40", total.Tax.StringFixed(2))
	assert.Equal(t, "234177.60", total.AfterTaxIncome.StringFixed(2))
	assert.Nil(t, total.CumulativeTax)

	// period taxes add up to the year's cumulative tax
	sum := decimal.Zero
	for _, l := range ledgerOfKind(summary, domain.LedgerPeriod) {
		sum = sum.Add(l.Tax)
	}
	assert.Equal(t, "17894.40", sum.StringFixed(2))
}

func TestCalculateYearly_BonusRows(t *testing.T) {
	summary, err := CalculateYearly(sampleYearlyInput())
	require.NoError(t, err)

	bonusRows := ledgerOfKind(summary, domain.LedgerBonus)
	combined := ledgerOfKind(summary, domain.LedgerCombined)

	tests := []struct {
		label, amount, tax, afterTax           string
		combinedLabel, combinedIncome, combTax string
		combinedAfterTax                       string
	}{
		{"Bonus 2 months", "54000.00", "5190.00", "48810.00", "Total 1 (+2)", "378000.00", "23084.40", "282987.60"},
		{"Bonus 3 months", "81000.00", "7890.00", "73110.00", "Total 2 (+3)", "405000.00", "25784.40", "307287.60"},
		{"Bonus 4 months", "108000.00", "10590.00", "97410.00", "Total 3 (+4)", "432000.00", "28484.40", "331587.60"},
	}

	for i, tt := range tests {
		b := bonusRows[i]
		assert.Equal(t, tt.label, b.Label)
		assert.Equal(t, tt.amount, b.PretaxIncome.StringFixed(2))
		assert.True(t, b.InsurancesAndFund.IsZero())
		assert.Equal(t, tt.tax, b.Tax.StringFixed(2))
		assert.Equal(t, tt.afterTax, b.AfterTaxIncome.StringFixed(2))
		require.NotNil(t, b.CumulativeTax)
		assert.Equal(t, tt.tax, b.CumulativeTax.StringFixed(2))

		c := combined[i]
		assert.Equal(t, tt.combinedLabel, c.Label)
		assert.Equal(t, tt.combinedIncome, c.PretaxIncome.StringFixed(2))
		assert.Equal(t, "71928.00", c.InsurancesAndFund.StringFixed(2))
		assert.Equal(t, tt.combTax, c.Tax.StringFixed(2))
		assert.Equal(t, tt.combinedAfterTax, c.AfterTaxIncome.StringFixed(2))
	}
}

func TestCalculateYearly_Items(t *testing.T) {
	summary, err := CalculateYearly(sampleYearlyInput())
	require.NoError(t, err)
	require.Len(t, summary.Items, 11)

	byLabel := map[string]domain.ItemLine{}
	for _, item := range summary.Items {
		byLabel[item.Label] = item
	}

	assert.Equal(t, "-", byLabel[LabelPretaxIncome].Rate)
	assert.Equal(t, "324000.00", byLabel[LabelPretaxIncome].Yearly.StringFixed(2))
	assert.Equal(t, "12%", byLabel[LabelProvidentFund].Rate)
	assert.Equal(t, "38880.00", byLabel[LabelProvidentFund].Yearly.StringFixed(2))
	assert.Equal(t, "0.2%", byLabel[LabelUnemployment].Rate)
	assert.Equal(t, "0%", byLabel[LabelMaternity].Rate)
	assert.Equal(t, "174072.00", byLabel[LabelTaxableIncome].Yearly.StringFixed(2))
	assert.Equal(t, "18000.00", byLabel[LabelSpecialDeduction].Yearly.StringFixed(2))
	assert.Equal(t, "12%+12%", byLabel[LabelProvidentFundReceived].Rate)
	assert.Equal(t, "77760.00", byLabel[LabelProvidentFundReceived].Yearly.StringFixed(2))
}

func TestCalculateYearly_SinglePeriodNoBonus(t *testing.T) {
	in := sampleYearlyInput()
	in.Periods = 1
	in.Bonuses = nil

	summary, err := CalculateYearly(in)
	require.NoError(t, err)

	assert.Len(t, summary.Ledger, 2)
	assert.Equal(t, "435.18", summary.Ledger[1].Tax.StringFixed(2))
}

func TestCalculateYearly_Errors(t *testing.T) {
	in := sampleYearlyInput()
	in.Periods = 0
	_, err := CalculateYearly(in)
	assert.ErrorIs(t, err, ErrInvalidPeriods)

	in = sampleYearlyInput()
	in.PretaxIncome = decimal.Zero
	in.Bonuses = decs("10000")
	_, err = CalculateYearly(in)
	assert.ErrorIs(t, err, ErrZeroIncome)
}

func TestCalculateYearly_DoesNotAliasBonusList(t *testing.T) {
	in := sampleYearlyInput()
	_, err := CalculateYearly(in)
	require.NoError(t, err)

	assert.Equal(t, []string{"2", "3", "4"}, []string{in.Bonuses[0].String(), in.Bonuses[1].String(), in.Bonuses[2].String()})
}
