package main

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/rgehrsitz/iitax/internal/calculation"
	"github.com/rgehrsitz/iitax/internal/config"
	"github.com/rgehrsitz/iitax/internal/domain"
	"github.com/rgehrsitz/iitax/internal/output"
)

func monthlyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "monthly",
		Short: "Calculate the tax withheld in one pay period",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			income, err := decimalFlag(cmd, "income")
			if err != nil {
				return err
			}
			if income.IsNegative() {
				return fmt.Errorf("pretax income cannot be negative, got %s", income.String())
			}
			period, _ := cmd.Flags().GetInt("period")
			if period < 1 {
				return fmt.Errorf("period must be at least 1, got %d", period)
			}
			special, err := decimalFlag(cmd, "special")
			if err != nil {
				return err
			}
			rates, err := readRates(cmd, domain.DefaultDeductionRates())
			if err != nil {
				return err
			}

			engine, err := newEngine(cmd, calculation.NewCalculationEngine())
			if err != nil {
				return err
			}
			r := engine.CalculateMonthly(domain.MonthlyInput{
				PretaxIncome:     income,
				Period:           period,
				Rates:            rates,
				SpecialDeduction: special,
			})
			return output.RenderTable(cmd.OutOrStdout(), monthlyTable(r))
		},
	}
	cmd.Flags().String("income", "", "Pretax income of the period (required)")
	cmd.Flags().Int("period", 1, "Pay period within the tax year, starting at 1")
	cmd.Flags().String("special", "0", "Special additional deduction per period")
	cmd.Flags().Bool("debug", false, "Enable debug output for detailed calculations")
	addRateFlags(cmd)
	_ = cmd.MarkFlagRequired("income")
	return cmd
}

func monthlyTable(r domain.MonthlyReport) output.Table {
	return output.Table{
		Title:   fmt.Sprintf("Period %d", r.Period),
		Headers: []string{"Item", "Amount"},
		Rows: [][]any{
			{calculation.LabelPretaxIncome, r.PretaxIncome},
			{calculation.LabelProvidentFund, r.ProvidentFund},
			{calculation.LabelMedical, r.MedicalInsurance},
			{calculation.LabelPension, r.PensionInsurance},
			{calculation.LabelUnemployment, r.UnemploymentInsurance},
			{calculation.LabelIndustrialInjury, r.IndustrialInjury},
			{calculation.LabelMaternity, r.MaternityInsurance},
			{calculation.LabelInsurancesAndFund, r.InsurancesAndFund},
			{calculation.LabelSpecialDeduction, r.SpecialDeduction},
			{calculation.LabelTaxableIncome, r.TaxableIncome},
			{"Cumulative taxable income", r.CumulativeTaxable},
			{"Cumulative tax", r.TaxPayable},
			{"Tax paid in earlier periods", r.TaxPaid},
			{"Tax this period", r.TaxPayableCurrently},
			{"After-tax income", r.AfterTaxIncome},
			{calculation.LabelProvidentFundReceived, r.FinalProvidentFund},
		},
	}
}

func bonusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bonus [amount...]",
		Short: "Calculate the separately taxed year-end bonus",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := newEngine(cmd, calculation.NewCalculationEngine())
			if err != nil {
				return err
			}
			t := output.Table{Headers: []string{"Bonus", "Tax", "After-tax bonus"}}
			for _, arg := range args {
				amount, err := decimal.NewFromString(arg)
				if err != nil {
					return fmt.Errorf("invalid bonus %q: %w", arg, err)
				}
				if amount.IsNegative() {
					return fmt.Errorf("bonus cannot be negative, got %s", amount.String())
				}
				res := engine.CalculateBonus(amount)
				t.Rows = append(t.Rows, []any{amount, res.TaxPayable, res.AfterTax})
			}
			return output.RenderTable(cmd.OutOrStdout(), t)
		},
	}
	cmd.Flags().Bool("debug", false, "Enable debug output for detailed calculations")
	return cmd
}

func yearlyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "yearly",
		Short: "Calculate a full tax year with optional bonus scenarios",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := yearlyProfile(cmd)
			if err != nil {
				return err
			}

			format, _ := cmd.Flags().GetString("format")
			f := output.GetFormatterByName(format)
			if f == nil {
				return fmt.Errorf("unsupported format %q (available: %s)", format, formatChoices())
			}

			engine, err := newEngine(cmd, calculation.NewCalculationEngineWithConfig(profile.Rules))
			if err != nil {
				return err
			}
			summary, err := engine.CalculateYearly(profile.YearlyInput())
			if err != nil {
				return err
			}

			out, _ := cmd.Flags().GetString("output")
			switch {
			case out != "":
				if err := output.WriteFile(f, summary, out); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", out)
			case f.Name() == "xlsx" || f.Name() == "pdf":
				filename, err := output.WriteFormatted(f, summary, output.Extension(f))
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", filename)
			default:
				data, err := f.Format(summary)
				if err != nil {
					return err
				}
				if _, err := cmd.OutOrStdout().Write(data); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().String("config", "", "Profile file (YAML or TOML); flags given explicitly override it")
	cmd.Flags().String("income", "", "Pretax income per period")
	cmd.Flags().Int("periods", 12, "Number of pay periods in the year")
	cmd.Flags().String("bonus", "", "Bonus list: month counts (2,3,4) or amounts when the last exceeds 100")
	cmd.Flags().String("special", "0", "Special additional deduction per period")
	cmd.Flags().StringP("format", "f", "table", "Output format ("+formatChoices()+")")
	cmd.Flags().StringP("output", "o", "", "Write the report to this file instead of stdout")
	cmd.Flags().Bool("debug", false, "Enable debug output for detailed calculations")
	addRateFlags(cmd)
	return cmd
}

// formatChoices lists the formatter names followed by their aliases.
func formatChoices() string {
	return strings.Join(output.AvailableFormatterNames(), ", ") +
		"; aliases: " + strings.Join(output.AvailableFormatAliases(), ", ")
}

// yearlyProfile loads --config when given and applies the explicit flags
// over it.
func yearlyProfile(cmd *cobra.Command) (*domain.Profile, error) {
	parser := config.NewInputParser()
	profile := config.DefaultProfile()

	if path, _ := cmd.Flags().GetString("config"); path != "" {
		if !fileExists(path) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		loaded, err := parser.LoadFromFile(path)
		if err != nil {
			return nil, err
		}
		profile = *loaded
	} else if !cmd.Flags().Changed("income") {
		return nil, fmt.Errorf("either --income or --config is required")
	}

	flags := cmd.Flags()
	var err error
	if flags.Changed("income") {
		if profile.PretaxIncome, err = decimalFlag(cmd, "income"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("periods") {
		profile.Periods, _ = flags.GetInt("periods")
	}
	if flags.Changed("bonus") {
		raw, _ := flags.GetString("bonus")
		if profile.Bonuses, err = config.ParseBonusList(raw); err != nil {
			return nil, err
		}
	}
	if flags.Changed("special") {
		if profile.SpecialDeduction, err = decimalFlag(cmd, "special"); err != nil {
			return nil, err
		}
	}
	if profile.Rates, err = readRates(cmd, profile.Rates); err != nil {
		return nil, err
	}

	if err := parser.ValidateProfile(&profile); err != nil {
		return nil, fmt.Errorf("invalid input: %w", err)
	}
	return &profile, nil
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [profile-file]",
		Short: "Validate a profile file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := config.NewInputParser().LoadFromFile(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Profile file %s is valid\n", args[0])
			return nil
		},
	}
}

func exampleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "example [output-file]",
		Short: "Write an example profile (YAML, or TOML for a .toml name)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := "example_profile.yaml"
			if len(args) == 1 {
				filename = args[0]
			}
			force, _ := cmd.Flags().GetBool("force")
			if fileExists(filename) && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", filename)
			}
			profile := config.ExampleProfile()
			if err := config.SaveProfile(&profile, filename); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Example profile written to %s\n", filename)
			return nil
		},
	}
	cmd.Flags().Bool("force", false, "Overwrite an existing file")
	return cmd
}
