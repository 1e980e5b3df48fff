package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestBracketTable_Validate(t *testing.T) {
	assert.NoError(t, DefaultCumulativeBrackets().Validate())
	assert.NoError(t, DefaultBonusBrackets().Validate())

	tests := []struct {
		name  string
		table BracketTable
		msg   string
	}{
		{"empty", BracketTable{}, "no brackets"},
		{"bounded last", BracketTable{bracket(bound(100), "0.1", 0)}, "last bracket must be unbounded"},
		{"open middle", BracketTable{bracket(nil, "0.1", 0), bracket(nil, "0.2", 0)}, "only the last bracket"},
		{"not increasing", BracketTable{
			bracket(bound(100), "0.1", 0),
			bracket(bound(100), "0.2", 10),
			bracket(nil, "0.3", 30),
		}, "does not exceed"},
		{"rate above one", BracketTable{bracket(nil, "1.5", 0)}, "rate must be between 0 and 1"},
		{"negative quick deduction", BracketTable{bracket(nil, "0.1", -1)}, "quick deduction cannot be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.table.Validate()
			assert.ErrorIs(t, err, ErrInvalidBracketTable)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestBracketTable_Find(t *testing.T) {
	table := DefaultCumulativeBrackets()

	assert.Equal(t, "0.03", table.Find(decimal.NewFromInt(36000)).Rate.String())
	assert.Equal(t, "0.1", table.Find(decimal.RequireFromString("36000.01")).Rate.String())
	assert.Equal(t, "0.45", table.Find(decimal.NewFromInt(5000000)).Rate.String())
	assert.Nil(t, table.Find(decimal.NewFromInt(5000000)).Upper)
}

func TestDeductionRates_Validate(t *testing.T) {
	assert.NoError(t, DefaultDeductionRates().Validate())

	r := DefaultDeductionRates()
	r.Medical = decimal.RequireFromString("1.2")
	assert.ErrorContains(t, r.Validate(), "medical rate must be between 0 and 1")

	r = DefaultDeductionRates()
	r.Maternity = decimal.RequireFromString("-0.01")
	assert.ErrorContains(t, r.Validate(), "maternity rate")
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "12%", Percent(decimal.RequireFromString("0.12")))
	assert.Equal(t, "0.2%", Percent(decimal.RequireFromString("0.002")))
	assert.Equal(t, "0%", Percent(decimal.Zero))
}

func TestProfile_YearlyInputCopiesBonuses(t *testing.T) {
	p := &Profile{
		PretaxIncome: decimal.NewFromInt(27000),
		Periods:      12,
		Bonuses:      []decimal.Decimal{decimal.NewFromInt(2)},
		Rates:        DefaultDeductionRates(),
	}
	in := p.YearlyInput()
	in.Bonuses[0] = decimal.NewFromInt(9)

	assert.Equal(t, "2", p.Bonuses[0].String())
	assert.Equal(t, 12, in.Periods)
}
