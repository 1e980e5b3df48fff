package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/rgehrsitz/iitax/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of profile files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// DefaultProfile returns the profile every file is decoded over: twelve
// periods, the default contribution rates and the statutory tax rules.
func DefaultProfile() domain.Profile {
	return domain.Profile{
		Periods: 12,
		Rates:   domain.DefaultDeductionRates(),
		Rules:   domain.DefaultTaxRules(),
	}
}

// ExampleProfile is the profile written by `iitax example`.
func ExampleProfile() domain.Profile {
	p := DefaultProfile()
	p.Name = "example"
	p.PretaxIncome = decimal.NewFromInt(27000)
	p.Bonuses = []decimal.Decimal{decimal.NewFromInt(2), decimal.NewFromInt(3), decimal.NewFromInt(4)}
	p.SpecialDeduction = decimal.NewFromInt(1500)
	return p
}

// LoadFromFile loads a profile from a YAML or TOML file, chosen by extension.
// Keys the file omits keep their DefaultProfile values.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Profile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data, formatOf(filename))
}

// Parse decodes profile data in the named format ("yaml" or "toml").
func (ip *InputParser) Parse(data []byte, format string) (*domain.Profile, error) {
	profile := DefaultProfile()
	// decoders may merge into existing slices, so tables start empty
	profile.Rules.CumulativeBrackets = nil
	profile.Rules.BonusBrackets = nil

	switch format {
	case "yaml":
		if err := yaml.Unmarshal(data, &profile); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	case "toml":
		if err := toml.Unmarshal(data, &profile); err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported profile format: %q", format)
	}

	if len(profile.Rules.CumulativeBrackets) == 0 {
		profile.Rules.CumulativeBrackets = domain.DefaultCumulativeBrackets()
	}
	if len(profile.Rules.BonusBrackets) == 0 {
		profile.Rules.BonusBrackets = domain.DefaultBonusBrackets()
	}

	if err := ip.ValidateProfile(&profile); err != nil {
		return nil, fmt.Errorf("profile validation failed: %w", err)
	}
	return &profile, nil
}

// ValidateProfile checks the profile describes a computable year.
func (ip *InputParser) ValidateProfile(p *domain.Profile) error {
	if !p.PretaxIncome.IsPositive() {
		return fmt.Errorf("pretax income must be positive, got %s", p.PretaxIncome.String())
	}
	if p.Periods < 1 || p.Periods > 12 {
		return fmt.Errorf("periods must be between 1 and 12, got %d", p.Periods)
	}
	if p.SpecialDeduction.IsNegative() {
		return fmt.Errorf("special deduction cannot be negative, got %s", p.SpecialDeduction.String())
	}
	for i, b := range p.Bonuses {
		if b.IsNegative() {
			return fmt.Errorf("bonus %d cannot be negative, got %s", i+1, b.String())
		}
	}
	if err := p.Rates.Validate(); err != nil {
		return fmt.Errorf("rates validation failed: %w", err)
	}
	if err := ip.validateRules(&p.Rules); err != nil {
		return fmt.Errorf("rules validation failed: %w", err)
	}
	return nil
}

func (ip *InputParser) validateRules(r *domain.TaxRules) error {
	if r.MonthlyExemption.IsNegative() {
		return fmt.Errorf("monthly exemption cannot be negative, got %s", r.MonthlyExemption.String())
	}
	if r.BonusDivisor < 1 {
		return fmt.Errorf("bonus divisor must be positive, got %d", r.BonusDivisor)
	}
	if err := r.CumulativeBrackets.Validate(); err != nil {
		return fmt.Errorf("cumulative brackets: %w", err)
	}
	if err := r.BonusBrackets.Validate(); err != nil {
		return fmt.Errorf("bonus brackets: %w", err)
	}
	return nil
}

// SaveProfile writes the profile as YAML or TOML, chosen by extension.
func SaveProfile(p *domain.Profile, filename string) error {
	var (
		data []byte
		err  error
	)
	switch formatOf(filename) {
	case "toml":
		data, err = toml.Marshal(p)
	default:
		data, err = yaml.Marshal(p)
	}
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}

// ParseBonusList parses a comma separated bonus list such as "2,3,4".
// An empty string yields no bonuses.
func ParseBonusList(s string) ([]decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]decimal.Decimal, 0, len(parts))
	for _, part := range parts {
		d, err := decimal.NewFromString(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid bonus %q: %w", part, err)
		}
		if d.IsNegative() {
			return nil, fmt.Errorf("bonus cannot be negative, got %s", d.String())
		}
		out = append(out, d)
	}
	return out, nil
}

func formatOf(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return "toml"
	default:
		return "yaml"
	}
}
