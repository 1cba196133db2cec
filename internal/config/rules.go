package config

import (
	"fmt"
	"os"

	"github.com/planwell/retirement-compare/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// RulesParser handles parsing of tax rules files.
type RulesParser struct{}

// NewRulesParser creates a new rules parser.
func NewRulesParser() *RulesParser {
	return &RulesParser{}
}

// LoadFromFile loads tax rules from a YAML file. The file may override any
// subset of the compiled-in tables; missing sections fall back at calculator
// construction time.
func (rp *RulesParser) LoadFromFile(filename string) (*domain.TaxRules, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var rules domain.TaxRules
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := rp.ValidateRules(&rules); err != nil {
		return nil, fmt.Errorf("rules validation failed: %w", err)
	}

	return &rules, nil
}

// ValidateRules validates a loaded rules file. Only what the file actually
// supplies is checked.
func (rp *RulesParser) ValidateRules(rules *domain.TaxRules) error {
	if err := rp.validateBrackets("brackets_single", rules.BracketsSingle); err != nil {
		return err
	}
	if err := rp.validateBrackets("brackets_mfj", rules.BracketsMFJ); err != nil {
		return err
	}

	if rules.StandardDeductionSingle.IsNegative() {
		return fmt.Errorf("standard_deduction_single cannot be negative")
	}
	if rules.StandardDeductionMFJ.IsNegative() {
		return fmt.Errorf("standard_deduction_mfj cannot be negative")
	}

	if err := rp.validateFICA(&rules.FICA); err != nil {
		return err
	}

	for year, limits := range rules.ContributionLimits {
		if limits.Base.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("contribution_limits[%d]: base limit must be positive", year)
		}
		if limits.Catchup.IsNegative() {
			return fmt.Errorf("contribution_limits[%d]: catchup limit cannot be negative", year)
		}
		if limits.CatchupAge <= 0 {
			return fmt.Errorf("contribution_limits[%d]: catchup age must be positive", year)
		}
	}
	if rules.DefaultLimitYear != 0 && len(rules.ContributionLimits) > 0 {
		if _, ok := rules.ContributionLimits[rules.DefaultLimitYear]; !ok {
			return fmt.Errorf("default_limit_year %d has no contribution_limits entry", rules.DefaultLimitYear)
		}
	}

	for state, rate := range rules.StateRates {
		if len(state) != 2 {
			return fmt.Errorf("state_rates: %q is not a two-letter code", state)
		}
		if !validRate(rate) {
			return fmt.Errorf("state_rates[%s]: rate must be in [0, 1)", state)
		}
	}
	if !rules.DefaultStateRate.IsZero() && !validRate(rules.DefaultStateRate) {
		return fmt.Errorf("default_state_rate must be in [0, 1)")
	}

	return nil
}

func (rp *RulesParser) validateBrackets(name string, brackets []domain.BracketRule) error {
	previousBound := decimal.Zero
	previousRate := decimal.Zero
	for i, bracket := range brackets {
		if bracket.UpTo.LessThanOrEqual(previousBound) {
			return fmt.Errorf("%s[%d]: bounds must be strictly increasing", name, i)
		}
		if !validRate(bracket.Rate) {
			return fmt.Errorf("%s[%d]: rate must be in [0, 1)", name, i)
		}
		if bracket.Rate.LessThan(previousRate) {
			return fmt.Errorf("%s[%d]: rates must be non-decreasing", name, i)
		}
		previousBound = bracket.UpTo
		previousRate = bracket.Rate
	}
	return nil
}

func (rp *RulesParser) validateFICA(fica *domain.FICARule) error {
	// An all-zero FICA section means "use defaults"; partial sections still
	// need sane values.
	for _, check := range []struct {
		name string
		rate decimal.Decimal
	}{
		{"social_security_rate", fica.SocialSecurityRate},
		{"medicare_rate", fica.MedicareRate},
		{"additional_medicare_rate", fica.AdditionalMedicareRate},
	} {
		if !check.rate.IsZero() && !validRate(check.rate) {
			return fmt.Errorf("fica.%s must be in [0, 1)", check.name)
		}
	}
	if fica.SocialSecurityWageBase.IsNegative() {
		return fmt.Errorf("fica.social_security_wage_base cannot be negative")
	}
	return nil
}

func validRate(rate decimal.Decimal) bool {
	return !rate.IsNegative() && rate.LessThan(decimal.NewFromInt(1))
}
