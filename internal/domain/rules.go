package domain

import "github.com/shopspring/decimal"

// BracketRule is one progressive bracket: income up to and including UpTo is
// taxed at Rate on the portion above the previous bracket's bound. The last
// bracket's bound acts as unbounded.
type BracketRule struct {
	UpTo decimal.Decimal `yaml:"up_to" json:"up_to"`
	Rate decimal.Decimal `yaml:"rate" json:"rate"`
}

// FICARule carries the payroll tax parameters for one year.
type FICARule struct {
	SocialSecurityRate                decimal.Decimal `yaml:"social_security_rate" json:"social_security_rate"`
	SocialSecurityWageBase            decimal.Decimal `yaml:"social_security_wage_base" json:"social_security_wage_base"`
	MedicareRate                      decimal.Decimal `yaml:"medicare_rate" json:"medicare_rate"`
	AdditionalMedicareRate            decimal.Decimal `yaml:"additional_medicare_rate" json:"additional_medicare_rate"`
	AdditionalMedicareThresholdSingle decimal.Decimal `yaml:"additional_medicare_threshold_single" json:"additional_medicare_threshold_single"`
	AdditionalMedicareThresholdMFJ    decimal.Decimal `yaml:"additional_medicare_threshold_mfj" json:"additional_medicare_threshold_mfj"`
}

// TaxRules is the full set of constant tables the engines read. Zero or empty
// fields fall back to the compiled-in defaults when the calculators are
// constructed, so a rules file may override only what it needs to.
type TaxRules struct {
	Year                    int                        `yaml:"year" json:"year"`
	StandardDeductionSingle decimal.Decimal            `yaml:"standard_deduction_single" json:"standard_deduction_single"`
	StandardDeductionMFJ    decimal.Decimal            `yaml:"standard_deduction_mfj" json:"standard_deduction_mfj"`
	BracketsSingle          []BracketRule              `yaml:"brackets_single" json:"brackets_single"`
	BracketsMFJ             []BracketRule              `yaml:"brackets_mfj" json:"brackets_mfj"`
	FICA                    FICARule                   `yaml:"fica" json:"fica"`
	ContributionLimits      map[int]ContributionLimits `yaml:"contribution_limits" json:"contribution_limits"`
	DefaultLimitYear        int                        `yaml:"default_limit_year" json:"default_limit_year"`
	StateRates              map[string]decimal.Decimal `yaml:"state_rates" json:"state_rates"`
	DefaultStateRate        decimal.Decimal            `yaml:"default_state_rate" json:"default_state_rate"`
}
