package calculation

import (
	"errors"
	"fmt"

	"github.com/rgehrsitz/iitax/internal/domain"
	"github.com/shopspring/decimal"
)

// MonthCountLimit is the largest bonus value still read as a month count.
var MonthCountLimit = decimal.NewFromInt(100)

// ErrZeroIncome is returned when a currency bonus has to be expressed in
// months of a zero salary.
var ErrZeroIncome = errors.New("pretax income is zero")

var twelve = decimal.NewFromInt(12)

// BonusesAreMonthCounts decides how a bonus list is read. The whole list is
// classified by its last element: at or below MonthCountLimit every entry
// is a month count, otherwise every entry is a currency amount. Mixed lists
// are therefore misread; the rule is kept here alone so it can change
// without touching the calculators.
func BonusesAreMonthCounts(specs []decimal.Decimal) bool {
	if len(specs) == 0 {
		return true
	}
	return specs[len(specs)-1].LessThanOrEqual(MonthCountLimit)
}

// NormalizeBonuses turns bonus specs into absolute amounts and their
// months-of-salary equivalent. Month counts are scaled by periods/12 so a
// partial year earns a pro-rated bonus. The input slice is not modified.
func NormalizeBonuses(pretaxIncome decimal.Decimal, periods int, specs []decimal.Decimal) ([]domain.Bonus, error) {
	if len(specs) == 0 {
		return nil, nil
	}
	n := decimal.NewFromInt(int64(periods))
	bonuses := make([]domain.Bonus, len(specs))

	if BonusesAreMonthCounts(specs) {
		for i, m := range specs {
			bonuses[i] = domain.Bonus{
				Spec:   m,
				Months: round2(m.Mul(n).Div(twelve)),
				Amount: round2(pretaxIncome.Mul(m).Mul(n).Div(twelve)),
			}
		}
		return bonuses, nil
	}

	if pretaxIncome.IsZero() {
		return nil, fmt.Errorf("cannot express bonus %s in months: %w", specs[0].String(), ErrZeroIncome)
	}
	for i, amount := range specs {
		bonuses[i] = domain.Bonus{
			Spec:   amount,
			Months: round2(amount.Div(pretaxIncome)),
			Amount: amount,
		}
	}
	return bonuses, nil
}
