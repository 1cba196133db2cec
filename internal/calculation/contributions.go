package calculation

import (
	"github.com/planwell/retirement-compare/internal/domain"
	"github.com/shopspring/decimal"
)

// DefaultLimitYear is the plan year whose limits are used when a requested
// year has no entry in the limits table.
const DefaultLimitYear = 2024

// Statutory employee deferral limits by plan year.
var contributionLimits = map[int]domain.ContributionLimits{
	2024: {Base: decimal.NewFromInt(23000), Catchup: decimal.NewFromInt(7500), CatchupAge: 50},
	2025: {Base: decimal.NewFromInt(23500), Catchup: decimal.NewFromInt(7500), CatchupAge: 50},
}

// LimitsForYear returns the limits record for a plan year. The second return
// is false when the year has no entry; callers that want the engine's
// fallback behavior should use NewContributionCalculator instead.
func LimitsForYear(year int) (domain.LimitsInfo, bool) {
	limits, ok := contributionLimits[year]
	if !ok {
		return domain.LimitsInfo{}, false
	}
	return domain.LimitsInfo{
		Year:             year,
		BaseLimit:        limits.Base,
		CatchupLimit:     limits.Catchup,
		CatchupAge:       limits.CatchupAge,
		TotalWithCatchup: limits.Base.Add(limits.Catchup),
	}, true
}

// ContributionCalculator computes the employee contribution and employer
// match for one plan year.
type ContributionCalculator struct {
	Year   int
	Limits domain.ContributionLimits
}

// NewContributionCalculator creates a calculator for the given plan year. An
// unsupported year silently falls back to the DefaultLimitYear table; the
// requested year is still reported in results.
func NewContributionCalculator(year int) *ContributionCalculator {
	limits, ok := contributionLimits[year]
	if !ok {
		limits = contributionLimits[DefaultLimitYear]
	}
	return &ContributionCalculator{Year: year, Limits: limits}
}

// NewContributionCalculatorWithRules creates a calculator backed by a
// configured limits table, falling back to the compiled-in defaults when the
// rules carry no table.
func NewContributionCalculatorWithRules(rules *domain.TaxRules, year int) *ContributionCalculator {
	if rules == nil || len(rules.ContributionLimits) == 0 {
		return NewContributionCalculator(year)
	}
	limits, ok := rules.ContributionLimits[year]
	if !ok {
		fallbackYear := rules.DefaultLimitYear
		if fallbackYear == 0 {
			fallbackYear = DefaultLimitYear
		}
		if limits, ok = rules.ContributionLimits[fallbackYear]; !ok {
			return NewContributionCalculator(year)
		}
	}
	return &ContributionCalculator{Year: year, Limits: limits}
}

// MaxContribution returns the statutory cap for the given age, including the
// catch-up allowance at or above the catch-up age.
func (cc *ContributionCalculator) MaxContribution(age int) decimal.Decimal {
	if age >= cc.Limits.CatchupAge {
		return cc.Limits.Base.Add(cc.Limits.Catchup)
	}
	return cc.Limits.Base
}

// Calculate produces the contribution result for one year of saving. The
// employee contribution is always clamped to the statutory cap; IsOverLimit
// records that clamping occurred. The employer match is capped only by the
// salary-based cap percent, never by the statutory limit.
func (cc *ContributionCalculator) Calculate(annualIncome decimal.Decimal, age int, mode string, amount, employerMatchPercent, employerMatchCapPercent decimal.Decimal) domain.ContributionResult {
	maxAllowed := cc.MaxContribution(age)

	var employeeContribution decimal.Decimal
	if mode == domain.ContributionModePercentage {
		employeeContribution = annualIncome.Mul(amount.Div(oneHundred))
	} else {
		employeeContribution = amount
	}

	isOverLimit := employeeContribution.GreaterThan(maxAllowed)
	employeeContribution = decimal.Min(employeeContribution, maxAllowed)

	matchableSalary := annualIncome.Mul(employerMatchCapPercent.Div(oneHundred))
	employeeForMatch := decimal.Min(employeeContribution, matchableSalary)
	employerMatch := employeeForMatch.Mul(employerMatchPercent.Div(oneHundred))

	return domain.ContributionResult{
		EmployeeContribution:  employeeContribution.Round(2),
		EmployerMatch:         employerMatch.Round(2),
		TotalContribution:     employeeContribution.Add(employerMatch).Round(2),
		MaxEmployeeAllowed:    maxAllowed,
		IsOverLimit:           isOverLimit,
		ContributionLimitUsed: cc.Year,
	}
}
