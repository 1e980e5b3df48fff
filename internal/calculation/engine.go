package calculation

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rgehrsitz/iitax/internal/domain"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// ErrInvalidPeriods is returned for a yearly run with fewer than one period.
var ErrInvalidPeriods = errors.New("number of periods must be at least 1")

// CalculationEngine orchestrates the monthly, bonus and yearly calculations
type CalculationEngine struct {
	TaxCalc     *CumulativeTaxCalculator
	BonusCalc   *BonusTaxCalculator
	MonthlyCalc *MonthlyCalculator
	Logger      Logger
	Debug       bool // Enable per-period debug logging

	now   func() time.Time
	newID func() string
}

// NewCalculationEngine creates an engine with the published tables
func NewCalculationEngine() *CalculationEngine {
	return NewCalculationEngineWithConfig(domain.DefaultTaxRules())
}

// NewCalculationEngineWithConfig creates an engine from configurable rules.
// Empty bracket tables and a zero bonus divisor fall back to the defaults;
// the monthly exemption is taken as given
func NewCalculationEngineWithConfig(rules domain.TaxRules) *CalculationEngine {
	taxCalc := NewCumulativeTaxCalculator(rules.CumulativeBrackets)
	return &CalculationEngine{
		TaxCalc:     taxCalc,
		BonusCalc:   NewBonusTaxCalculator(rules.BonusBrackets, rules.BonusDivisor),
		MonthlyCalc: NewMonthlyCalculator(rules.MonthlyExemption, taxCalc),
		Logger:      NopLogger{},
		now:         time.Now,
		newID:       uuid.NewString,
	}
}

// SetLogger sets the engine logger; nil restores the no-op logger
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// TaxPayable returns the cumulative tax on year-to-date taxable income
func (ce *CalculationEngine) TaxPayable(cumulativeTaxable decimal.Decimal) decimal.Decimal {
	return ce.TaxCalc.TaxPayable(cumulativeTaxable)
}

// CalculateMonthly computes a single withholding period
func (ce *CalculationEngine) CalculateMonthly(in domain.MonthlyInput) domain.MonthlyReport {
	r := ce.MonthlyCalc.Calculate(in)
	if ce.Debug {
		ce.Logger.Debugf("period %d: taxable %s, cumulative taxable %s, cumulative tax %s, due %s",
			r.Period, r.TaxableIncome.StringFixed(2), r.CumulativeTaxable.StringFixed(2),
			r.TaxPayable.StringFixed(2), r.TaxPayableCurrently.StringFixed(2))
	}
	return r
}

// CalculateBonus computes the separate tax on a year-end bonus
func (ce *CalculationEngine) CalculateBonus(pretaxBonus decimal.Decimal) domain.BonusResult {
	res := ce.BonusCalc.Calculate(pretaxBonus)
	if ce.Debug {
		ce.Logger.Debugf("bonus %s: bracket base %s, tax %s, after tax %s",
			pretaxBonus.StringFixed(2), pretaxBonus.Div(ce.BonusCalc.Divisor).StringFixed(2),
			res.TaxPayable.StringFixed(2), res.AfterTax.StringFixed(2))
	}
	return res
}

// CalculateYearly runs every period of the year plus each bonus scenario and
// assembles the item breakdown and the period ledger
func (ce *CalculationEngine) CalculateYearly(in domain.YearlyInput) (*domain.YearlySummary, error) {
	if in.Periods < 1 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidPeriods, in.Periods)
	}
	in = in.Clone()

	bonuses, err := NormalizeBonuses(in.PretaxIncome, in.Periods, in.Bonuses)
	if err != nil {
		return nil, fmt.Errorf("failed to normalize bonuses: %w", err)
	}

	runID := ce.newID()
	ce.Logger.Infof("run %s: pretax %s x %d periods, %d bonus scenario(s)",
		runID, in.PretaxIncome.StringFixed(2), in.Periods, len(bonuses))

	months := lo.Times(in.Periods, func(i int) domain.MonthlyReport {
		r := ce.MonthlyCalc.Calculate(domain.MonthlyInput{
			PretaxIncome:     in.PretaxIncome,
			Period:           i + 1,
			Rates:            in.Rates,
			SpecialDeduction: in.SpecialDeduction,
		})
		if ce.Debug {
			ce.Logger.Debugf("period %d: taxable %s, cumulative tax %s, due %s",
				r.Period, r.TaxableIncome.StringFixed(2), r.TaxPayable.StringFixed(2), r.TaxPayableCurrently.StringFixed(2))
		}
		return r
	})

	for i := range bonuses {
		bonuses[i].Result = ce.BonusCalc.Calculate(bonuses[i].Amount)
		if ce.Debug {
			ce.Logger.Debugf("bonus %s (%s months): tax %s",
				bonuses[i].Amount.StringFixed(2), bonuses[i].Months.String(), bonuses[i].Result.TaxPayable.StringFixed(2))
		}
	}

	summary := &domain.YearlySummary{
		RunID:        runID,
		GeneratedAt:  ce.now(),
		PretaxIncome: in.PretaxIncome,
		Periods:      in.Periods,
		Rates:        in.Rates,
		Months:       months,
		Bonuses:      bonuses,
		Items:        buildItems(months[0], in.Rates, in.Periods),
		Ledger:       buildLedger(months, bonuses, in.PretaxIncome, in.Periods),
	}
	ce.Logger.Infof("run %s: yearly tax %s", runID, months[len(months)-1].TaxPayable.StringFixed(2))
	return summary, nil
}

var defaultEngine = NewCalculationEngine()

// CalculateMonthly computes a period with the published tables.
func CalculateMonthly(in domain.MonthlyInput) domain.MonthlyReport {
	return defaultEngine.CalculateMonthly(in)
}

// CalculateBonus computes bonus tax with the published table.
func CalculateBonus(pretaxBonus decimal.Decimal) domain.BonusResult {
	return defaultEngine.CalculateBonus(pretaxBonus)
}

// CalculateYearly runs a yearly aggregation with the published tables.
func CalculateYearly(in domain.YearlyInput) (*domain.YearlySummary, error) {
	return defaultEngine.CalculateYearly(in)
}

// TaxPayable applies the published cumulative table.
func TaxPayable(cumulativeTaxable decimal.Decimal) decimal.Decimal {
	return defaultEngine.TaxPayable(cumulativeTaxable)
}
