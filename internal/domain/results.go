package domain

import "github.com/shopspring/decimal"

// ContributionLimits describes the statutory employee deferral limit for a
// single plan year.
type ContributionLimits struct {
	Base       decimal.Decimal `json:"base" yaml:"base"`
	Catchup    decimal.Decimal `json:"catchup" yaml:"catchup"`
	CatchupAge int             `json:"catchup_age" yaml:"catchup_age"`
}

// LimitsInfo is the per-year limits record surfaced by the CLI and API.
type LimitsInfo struct {
	Year             int             `json:"year"`
	BaseLimit        decimal.Decimal `json:"base_limit"`
	CatchupLimit     decimal.Decimal `json:"catchup_limit"`
	CatchupAge       int             `json:"catchup_age"`
	TotalWithCatchup decimal.Decimal `json:"total_with_catchup"`
}

// ContributionResult holds the employee contribution after the statutory cap
// and the employer match after the salary cap.
type ContributionResult struct {
	EmployeeContribution  decimal.Decimal `json:"employee_contribution"`
	EmployerMatch         decimal.Decimal `json:"employer_match"`
	TotalContribution     decimal.Decimal `json:"total_contribution"`
	MaxEmployeeAllowed    decimal.Decimal `json:"max_employee_allowed"`
	IsOverLimit           bool            `json:"is_over_limit"`
	ContributionLimitUsed int             `json:"contribution_limit_used"`
}

// TaxResult is a full tax breakdown for one income figure.
type TaxResult struct {
	TaxableIncome decimal.Decimal `json:"taxable_income"`
	FederalTax    decimal.Decimal `json:"federal_tax"`
	StateTax      decimal.Decimal `json:"state_tax"`
	FICATax       decimal.Decimal `json:"fica_tax"`
	TotalTax      decimal.Decimal `json:"total_tax"`
	EffectiveRate decimal.Decimal `json:"effective_rate"`
	// MarginalRate is the combined federal bracket rate plus the flat state
	// rate; FICA is excluded. On non-positive taxable income it holds the
	// lowest federal bracket rate alone, without the state rate added.
	MarginalRate decimal.Decimal `json:"marginal_rate"`
}

// TaxComparisonResult contrasts the current-year tax picture with and without
// a Traditional deferral, plus both treatments at the retirement income.
type TaxComparisonResult struct {
	CurrentTraditional    TaxResult       `json:"current_traditional"`
	CurrentRoth           TaxResult       `json:"current_roth"`
	CurrentYearTaxSavings decimal.Decimal `json:"current_year_tax_savings"`
	RetirementTraditional TaxResult       `json:"retirement_traditional"`
	RetirementRoth        TaxResult       `json:"retirement_roth"`
	BreakEvenRate         decimal.Decimal `json:"break_even_rate"`
}

// YearlyProjection is one simulated year. Year is 1-based relative to the
// current age.
type YearlyProjection struct {
	Year               int             `json:"year"`
	Age                int             `json:"age"`
	Contribution       decimal.Decimal `json:"contribution"`
	EmployerMatch      decimal.Decimal `json:"employer_match"`
	Growth             decimal.Decimal `json:"growth"`
	Balance            decimal.Decimal `json:"balance"`
	TaxableBalance     decimal.Decimal `json:"taxable_balance"`
	TotalWealth        decimal.Decimal `json:"total_wealth"`
	AfterTaxWealth     decimal.Decimal `json:"after_tax_wealth"`
	TraditionalBalance decimal.Decimal `json:"traditional_balance"`
	RothBalance        decimal.Decimal `json:"roth_balance"`
}

// ProjectionInput groups the caller-validated scalars shared by every
// projection variant.
type ProjectionInput struct {
	CurrentAge               int
	RetirementAge            int
	AnnualContribution       decimal.Decimal
	EmployerMatch            decimal.Decimal
	RetirementTaxRate        decimal.Decimal
	Initial401kBalance       decimal.Decimal
	InitialTaxableBalance    decimal.Decimal
	MegaBackdoorContribution decimal.Decimal
}

// SplitProjectionResult aggregates a full horizon for one fixed
// Traditional/Roth split.
type SplitProjectionResult struct {
	Projections         []YearlyProjection `json:"projections"`
	TraditionalBalance  decimal.Decimal    `json:"traditional_balance"`
	RothBalance         decimal.Decimal    `json:"roth_balance"`
	TaxableBalance      decimal.Decimal    `json:"taxable_balance"`
	MegaBackdoorBalance decimal.Decimal    `json:"mega_backdoor_balance"`
	AfterTaxTotal       decimal.Decimal    `json:"after_tax_total"`
	TotalContributions  decimal.Decimal    `json:"total_contributions"`
	TotalEmployerMatch  decimal.Decimal    `json:"total_employer_match"`
	TotalGrowth         decimal.Decimal    `json:"total_growth"`
	SplitPercent        decimal.Decimal    `json:"split_percent"`
	ActualMegaBackdoor  decimal.Decimal    `json:"actual_mega_backdoor"`
}

// ProjectionResult is the two-sided 100% Traditional vs 100% Roth variant.
type ProjectionResult struct {
	TraditionalProjections         []YearlyProjection `json:"traditional_projections"`
	RothProjections                []YearlyProjection `json:"roth_projections"`
	TraditionalFinalBalance        decimal.Decimal    `json:"traditional_final_balance"`
	RothFinalBalance               decimal.Decimal    `json:"roth_final_balance"`
	TraditionalAfterTax            decimal.Decimal    `json:"traditional_after_tax"`
	RothAfterTax                   decimal.Decimal    `json:"roth_after_tax"`
	TraditionalTaxableBalance      decimal.Decimal    `json:"traditional_taxable_balance"`
	RothTaxableBalance             decimal.Decimal    `json:"roth_taxable_balance"`
	TraditionalMegaBackdoorBalance decimal.Decimal    `json:"traditional_mega_backdoor_balance"`
	RothMegaBackdoorBalance        decimal.Decimal    `json:"roth_mega_backdoor_balance"`
	TotalContributions             decimal.Decimal    `json:"total_contributions"`
	TotalEmployerMatch             decimal.Decimal    `json:"total_employer_match"`
	TotalGrowthTraditional         decimal.Decimal    `json:"total_growth_traditional"`
	TotalGrowthRoth                decimal.Decimal    `json:"total_growth_roth"`
}

// ProjectionSummary is the condensed comparison verdict.
type ProjectionSummary struct {
	TraditionalFinalBalance        decimal.Decimal `json:"traditional_final_balance"`
	RothFinalBalance               decimal.Decimal `json:"roth_final_balance"`
	TraditionalAfterTax            decimal.Decimal `json:"traditional_after_tax"`
	RothAfterTax                   decimal.Decimal `json:"roth_after_tax"`
	TraditionalTaxableBalance      decimal.Decimal `json:"traditional_taxable_balance"`
	RothTaxableBalance             decimal.Decimal `json:"roth_taxable_balance"`
	TraditionalMegaBackdoorBalance decimal.Decimal `json:"traditional_mega_backdoor_balance"`
	RothMegaBackdoorBalance        decimal.Decimal `json:"roth_mega_backdoor_balance"`
	ActualMegaBackdoor             decimal.Decimal `json:"actual_mega_backdoor"`
	TotalContributions             decimal.Decimal `json:"total_contributions"`
	TotalEmployerMatch             decimal.Decimal `json:"total_employer_match"`
	TotalGrowthTraditional         decimal.Decimal `json:"total_growth_traditional"`
	TotalGrowthRoth                decimal.Decimal `json:"total_growth_roth"`
	Advantage                      string          `json:"advantage"`
	AdvantageAmount                decimal.Decimal `json:"advantage_amount"`
	OptimalSplit                   decimal.Decimal `json:"optimal_split"`
	OptimalAfterTax                decimal.Decimal `json:"optimal_after_tax"`
	CurrentSplit                   decimal.Decimal `json:"current_split"`
	CurrentSplitAfterTax           decimal.Decimal `json:"current_split_after_tax"`
	BracketOptimalSplit            decimal.Decimal `json:"bracket_optimal_split"`
	BracketExplanation             string          `json:"bracket_explanation"`
}

// TaxComparison is the current-vs-retirement tax section of the final result.
type TaxComparison struct {
	CurrentTraditional    TaxResult       `json:"current_traditional"`
	CurrentRoth           TaxResult       `json:"current_roth"`
	CurrentYearTaxSavings decimal.Decimal `json:"current_year_tax_savings"`
	RetirementTaxRate     decimal.Decimal `json:"retirement_tax_rate"`
	BreakEvenRate         decimal.Decimal `json:"break_even_rate"`
}

// ComparisonResult is the assembled output of a full comparison run.
type ComparisonResult struct {
	Contribution           ContributionResult `json:"contribution"`
	TaxComparison          TaxComparison      `json:"tax_comparison"`
	ProjectionSummary      ProjectionSummary  `json:"projection_summary"`
	TraditionalProjections []YearlyProjection `json:"traditional_projections"`
	RothProjections        []YearlyProjection `json:"roth_projections"`
}
