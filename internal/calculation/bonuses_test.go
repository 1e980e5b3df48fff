package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decs(vals ...string) []decimal.Decimal {
	out := make([]decimal.Decimal, len(vals))
	for i, v := range vals {
		out[i] = dec(v)
	}
	return out
}

func TestNormalizeBonuses_MonthCounts(t *testing.T) {
	bonuses, err := NormalizeBonuses(dec("27000"), 12, decs("2", "3", "4"))
	require.NoError(t, err)
	require.Len(t, bonuses, 3)

	wantAmounts := []string{"54000.00", "81000.00", "108000.00"}
	wantMonths := []string{"2", "3", "4"}
	for i, b := range bonuses {
		assert.Equal(t, wantAmounts[i], b.Amount.StringFixed(2))
		assert.Equal(t, wantMonths[i], b.Months.String())
	}
}

func TestNormalizeBonuses_PartialYearProRates(t *testing.T) {
	bonuses, err := NormalizeBonuses(dec("27000"), 6, decs("2"))
	require.NoError(t, err)

	assert.Equal(t, "27000.00", bonuses[0].Amount.StringFixed(2))
	assert.Equal(t, "1", bonuses[0].Months.String())
	assert.Equal(t, "2", bonuses[0].Spec.String())
}

func TestNormalizeBonuses_CurrencyAmounts(t *testing.T) {
	bonuses, err := NormalizeBonuses(dec("27000"), 12, decs("10000", "20000"))
	require.NoError(t, err)

	assert.Equal(t, "10000.00", bonuses[0].Amount.StringFixed(2))
	assert.Equal(t, "0.37", bonuses[0].Months.StringFixed(2))
	assert.Equal(t, "20000.00", bonuses[1].Amount.StringFixed(2))
	assert.Equal(t, "0.74", bonuses[1].Months.StringFixed(2))
}

func TestNormalizeBonuses_LastEntryDecidesUnits(t *testing.T) {
	assert.True(t, BonusesAreMonthCounts(decs("2", "100")))
	assert.False(t, BonusesAreMonthCounts(decs("2", "100.01")))
	assert.True(t, BonusesAreMonthCounts(nil))

	// a mixed list is read entirely as month counts
	bonuses, err := NormalizeBonuses(dec("27000"), 12, decs("20000", "3"))
	require.NoError(t, err)
	assert.Equal(t, "540000000.00", bonuses[0].Amount.StringFixed(2))
}

func TestNormalizeBonuses_ZeroIncomeCurrencyMode(t *testing.T) {
	_, err := NormalizeBonuses(decimal.Zero, 12, decs("10000"))
	assert.ErrorIs(t, err, ErrZeroIncome)

	// month counts never divide by income
	bonuses, err := NormalizeBonuses(decimal.Zero, 12, decs("2"))
	require.NoError(t, err)
	assert.True(t, bonuses[0].Amount.IsZero())
}

func TestNormalizeBonuses_EmptyAndInputUntouched(t *testing.T) {
	bonuses, err := NormalizeBonuses(dec("27000"), 12, nil)
	require.NoError(t, err)
	assert.Empty(t, bonuses)

	specs := decs("2", "3")
	_, err = NormalizeBonuses(dec("27000"), 12, specs)
	require.NoError(t, err)
	assert.Equal(t, "2", specs[0].String())
	assert.Equal(t, "3", specs[1].String())
}
