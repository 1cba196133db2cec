package domain

import "fmt"

// Contribution modes accepted by the comparison request.
const (
	ContributionModePercentage = "percentage"
	ContributionModeDollar     = "dollar"
)

// Contribution timing policies for the projection engine.
const (
	TimingBeginning = "beginning"
	TimingEnd       = "end"
	TimingMonthly   = "monthly"
)

// Filing statuses supported by the tax engine.
const (
	FilingSingle         = "single"
	FilingMarriedJointly = "married_filing_jointly"
)

// ComparisonRequest carries all scalar inputs for a Traditional-vs-Roth
// comparison. Percent-valued fields (contribution amount in percentage mode,
// match percentages, returns, savings rate, split) are expressed as whole
// percentages, e.g. 7 means 7%.
type ComparisonRequest struct {
	CurrentAge               int     `json:"current_age" yaml:"current_age"`
	RetirementAge            int     `json:"retirement_age" yaml:"retirement_age"`
	AnnualIncome             float64 `json:"annual_income" yaml:"annual_income"`
	AnnualBonus              float64 `json:"annual_bonus" yaml:"annual_bonus"`
	Initial401kBalance       float64 `json:"initial_401k_balance" yaml:"initial_401k_balance"`
	InitialTaxableBalance    float64 `json:"initial_taxable_balance" yaml:"initial_taxable_balance"`
	ContributionMode         string  `json:"contribution_mode" yaml:"contribution_mode"`
	ContributionAmount       float64 `json:"contribution_amount" yaml:"contribution_amount"`
	ContributionTiming       string  `json:"contribution_timing" yaml:"contribution_timing"`
	MegaBackdoorContribution float64 `json:"mega_backdoor_contribution" yaml:"mega_backdoor_contribution"`
	TraditionalSplit         float64 `json:"traditional_split" yaml:"traditional_split"`
	EmployerMatchPercent     float64 `json:"employer_match_percent" yaml:"employer_match_percent"`
	EmployerMatchCapPercent  float64 `json:"employer_match_cap_percent" yaml:"employer_match_cap_percent"`
	ExpectedRetirementIncome float64 `json:"expected_retirement_income" yaml:"expected_retirement_income"`
	ExpectedReturn           float64 `json:"expected_return" yaml:"expected_return"`
	TaxableReturn            float64 `json:"taxable_return" yaml:"taxable_return"`
	FilingStatus             string  `json:"filing_status" yaml:"filing_status"`
	SavingsRate              float64 `json:"savings_rate" yaml:"savings_rate"`
	CurrentState             string  `json:"current_state" yaml:"current_state"`
	RetirementState          string  `json:"retirement_state" yaml:"retirement_state"`
}

// DefaultComparisonRequest returns a fully populated example request.
func DefaultComparisonRequest() ComparisonRequest {
	return ComparisonRequest{
		CurrentAge:               35,
		RetirementAge:            65,
		AnnualIncome:             100000,
		ContributionMode:         ContributionModePercentage,
		ContributionAmount:       10,
		ContributionTiming:       TimingMonthly,
		TraditionalSplit:         100,
		EmployerMatchPercent:     50,
		EmployerMatchCapPercent:  6,
		ExpectedRetirementIncome: 60000,
		ExpectedReturn:           7,
		TaxableReturn:            6,
		FilingStatus:             FilingSingle,
		SavingsRate:              20,
		CurrentState:             "CA",
		RetirementState:          "CA",
	}
}

// ApplyDefaults fills the enum-valued fields that were left empty. Numeric
// zero values are meaningful and are left alone.
func (r *ComparisonRequest) ApplyDefaults() {
	if r.ContributionMode == "" {
		r.ContributionMode = ContributionModePercentage
	}
	if r.ContributionTiming == "" {
		r.ContributionTiming = TimingMonthly
	}
	if r.FilingStatus == "" {
		r.FilingStatus = FilingSingle
	}
	if r.CurrentState == "" {
		r.CurrentState = "CA"
	}
	if r.RetirementState == "" {
		r.RetirementState = r.CurrentState
	}
}

// Validate range-checks the request. The calculation engines trust validated
// inputs, so every caller must go through this before comparing.
func (r *ComparisonRequest) Validate() error {
	if r.CurrentAge < 18 || r.CurrentAge > 70 {
		return fmt.Errorf("current age must be between 18 and 70")
	}
	if r.RetirementAge < 50 || r.RetirementAge > 80 {
		return fmt.Errorf("retirement age must be between 50 and 80")
	}
	if r.RetirementAge <= r.CurrentAge {
		return fmt.Errorf("retirement age must be greater than current age")
	}
	if r.AnnualIncome < 0 {
		return fmt.Errorf("annual income cannot be negative")
	}
	if r.AnnualBonus < 0 {
		return fmt.Errorf("annual bonus cannot be negative")
	}
	if r.Initial401kBalance < 0 {
		return fmt.Errorf("initial 401k balance cannot be negative")
	}
	if r.InitialTaxableBalance < 0 {
		return fmt.Errorf("initial taxable balance cannot be negative")
	}
	if r.ContributionMode != ContributionModePercentage && r.ContributionMode != ContributionModeDollar {
		return fmt.Errorf("contribution mode must be %q or %q", ContributionModePercentage, ContributionModeDollar)
	}
	if r.ContributionAmount < 0 {
		return fmt.Errorf("contribution amount cannot be negative")
	}
	if r.ContributionTiming != TimingBeginning && r.ContributionTiming != TimingEnd && r.ContributionTiming != TimingMonthly {
		return fmt.Errorf("contribution timing must be %q, %q, or %q", TimingBeginning, TimingEnd, TimingMonthly)
	}
	if r.MegaBackdoorContribution < 0 {
		return fmt.Errorf("mega backdoor contribution cannot be negative")
	}
	if r.TraditionalSplit < 0 || r.TraditionalSplit > 100 {
		return fmt.Errorf("traditional split must be between 0 and 100")
	}
	if r.EmployerMatchPercent < 0 || r.EmployerMatchPercent > 100 {
		return fmt.Errorf("employer match percent must be between 0 and 100")
	}
	if r.EmployerMatchCapPercent < 0 || r.EmployerMatchCapPercent > 100 {
		return fmt.Errorf("employer match cap percent must be between 0 and 100")
	}
	if r.ExpectedRetirementIncome < 0 {
		return fmt.Errorf("expected retirement income cannot be negative")
	}
	if r.ExpectedReturn < 0 {
		return fmt.Errorf("expected return cannot be negative")
	}
	if r.TaxableReturn < 0 {
		return fmt.Errorf("taxable return cannot be negative")
	}
	if r.FilingStatus != FilingSingle && r.FilingStatus != FilingMarriedJointly {
		return fmt.Errorf("filing status must be %q or %q", FilingSingle, FilingMarriedJointly)
	}
	if r.SavingsRate < 0 || r.SavingsRate > 100 {
		return fmt.Errorf("savings rate must be between 0 and 100")
	}
	return nil
}
