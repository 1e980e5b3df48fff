package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/rgehrsitz/iitax/internal/domain"
)

var rateFlags = []struct {
	name  string
	usage string
	def   decimal.Decimal
	field func(r *domain.DeductionRates) *decimal.Decimal
}{
	{"provident-rate", "Housing provident fund rate", domain.DefaultProvidentFundRate, func(r *domain.DeductionRates) *decimal.Decimal { return &r.ProvidentFund }},
	{"medical-rate", "Medical insurance rate", domain.DefaultMedicalRate, func(r *domain.DeductionRates) *decimal.Decimal { return &r.Medical }},
	{"pension-rate", "Pension insurance rate", domain.DefaultPensionRate, func(r *domain.DeductionRates) *decimal.Decimal { return &r.Pension }},
	{"unemployment-rate", "Unemployment insurance rate", domain.DefaultUnemploymentRate, func(r *domain.DeductionRates) *decimal.Decimal { return &r.Unemployment }},
	{"injury-rate", "Industrial injury insurance rate", domain.DefaultIndustrialInjuryRate, func(r *domain.DeductionRates) *decimal.Decimal { return &r.IndustrialInjury }},
	{"maternity-rate", "Maternity insurance rate", domain.DefaultMaternityRate, func(r *domain.DeductionRates) *decimal.Decimal { return &r.Maternity }},
}

func addRateFlags(cmd *cobra.Command) {
	for _, f := range rateFlags {
		cmd.Flags().String(f.name, f.def.String(), f.usage)
	}
}

// readRates applies every rate flag given on the command line over base.
func readRates(cmd *cobra.Command, base domain.DeductionRates) (domain.DeductionRates, error) {
	for _, f := range rateFlags {
		if !cmd.Flags().Changed(f.name) {
			continue
		}
		d, err := decimalFlag(cmd, f.name)
		if err != nil {
			return base, err
		}
		*f.field(&base) = d
	}
	return base, base.Validate()
}

func decimalFlag(cmd *cobra.Command, name string) (decimal.Decimal, error) {
	raw, _ := cmd.Flags().GetString(name)
	if raw == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid --%s %q: %w", name, raw, err)
	}
	return d, nil
}
