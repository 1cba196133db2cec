package calculation

import (
	"fmt"

	"github.com/planwell/retirement-compare/internal/domain"
	"github.com/shopspring/decimal"
)

// ComparisonEngine wires the contribution, tax, and projection calculators
// into the full Traditional-vs-Roth comparison pipeline.
type ComparisonEngine struct {
	Year   int
	Rules  *domain.TaxRules
	Logger Logger
}

// NewComparisonEngine creates an engine on the compiled-in rule tables.
func NewComparisonEngine() *ComparisonEngine {
	return &ComparisonEngine{
		Year:   DefaultLimitYear,
		Logger: &NopLogger{},
	}
}

// NewComparisonEngineWithRules creates an engine backed by a configured rules
// file. A nil rules value behaves like NewComparisonEngine.
func NewComparisonEngineWithRules(rules *domain.TaxRules) *ComparisonEngine {
	engine := NewComparisonEngine()
	engine.Rules = rules
	if rules != nil && rules.Year != 0 {
		engine.Year = rules.Year
	}
	return engine
}

// SetLogger sets the logger used during comparisons.
func (e *ComparisonEngine) SetLogger(logger Logger) {
	if logger != nil {
		e.Logger = logger
	}
}

// LimitsForYear resolves the contribution limits record for a plan year,
// consulting configured rules before the compiled-in table. The second return
// is false for unsupported years.
func (e *ComparisonEngine) LimitsForYear(year int) (domain.LimitsInfo, bool) {
	if e.Rules != nil && len(e.Rules.ContributionLimits) > 0 {
		limits, ok := e.Rules.ContributionLimits[year]
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
	return LimitsForYear(year)
}

// Compare runs the full pipeline for one validated request: contribution
// sizing, current and retirement tax pictures, the 100% Traditional and 100%
// Roth horizon projections, the brute-force optimal split, the bracket-based
// strategy, and the projection at the requested split.
func (e *ComparisonEngine) Compare(req *domain.ComparisonRequest) (*domain.ComparisonResult, error) {
	if req == nil {
		return nil, fmt.Errorf("nil comparison request")
	}
	req.ApplyDefaults()
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid comparison request: %w", err)
	}

	contribCalc := NewContributionCalculatorWithRules(e.Rules, e.Year)
	contribution := contribCalc.Calculate(
		decimal.NewFromFloat(req.AnnualIncome),
		req.CurrentAge,
		req.ContributionMode,
		decimal.NewFromFloat(req.ContributionAmount),
		decimal.NewFromFloat(req.EmployerMatchPercent),
		decimal.NewFromFloat(req.EmployerMatchCapPercent),
	)
	e.Logger.Debugf("contribution: employee=%s match=%s overLimit=%v",
		contribution.EmployeeContribution, contribution.EmployerMatch, contribution.IsOverLimit)

	// The current and retirement states may tax at different rates.
	currentStateRate := StateTaxRateWithRules(e.Rules, req.CurrentState)
	retirementStateRate := StateTaxRateWithRules(e.Rules, req.RetirementState)

	currentTaxCalc := NewTaxCalculatorWithRules(e.Rules, req.FilingStatus, currentStateRate)
	retirementTaxCalc := NewTaxCalculatorWithRules(e.Rules, req.FilingStatus, retirementStateRate)

	totalIncome := decimal.NewFromFloat(req.AnnualIncome).Add(decimal.NewFromFloat(req.AnnualBonus))

	// Take-home varies with the split because the Traditional share reduces
	// taxable income while FICA stays on gross wages.
	takeHomeForSplit := func(splitPercent decimal.Decimal) decimal.Decimal {
		traditionalContribution := contribution.EmployeeContribution.Mul(splitPercent.Div(oneHundred))
		taxResult := currentTaxCalc.CalculateTax(totalIncome.Sub(traditionalContribution), totalIncome, true)
		return totalIncome.Sub(contribution.EmployeeContribution).Sub(taxResult.TotalTax)
	}

	currentTraditionalTax := currentTaxCalc.CalculateTax(totalIncome.Sub(contribution.EmployeeContribution), totalIncome, true)
	currentRothTax := currentTaxCalc.CalculateTax(totalIncome, totalIncome, true)
	currentYearSavings := currentRothTax.TotalTax.Sub(currentTraditionalTax.TotalTax)

	// Retirement withdrawals are not wages, so no FICA.
	retirementIncome := decimal.NewFromFloat(req.ExpectedRetirementIncome)
	retirementTax := retirementTaxCalc.CalculateTax(retirementIncome, retirementIncome, false)

	projCalc := NewProjectionCalculator()
	projCalc.AnnualReturn = decimal.NewFromFloat(req.ExpectedReturn).Div(oneHundred)
	projCalc.TaxableReturn = decimal.NewFromFloat(req.TaxableReturn).Div(oneHundred)
	projCalc.Timing = req.ContributionTiming
	projCalc.SavingsRate = decimal.NewFromFloat(req.SavingsRate).Div(oneHundred)

	in := domain.ProjectionInput{
		CurrentAge:               req.CurrentAge,
		RetirementAge:            req.RetirementAge,
		AnnualContribution:       contribution.EmployeeContribution,
		EmployerMatch:            contribution.EmployerMatch,
		RetirementTaxRate:        retirementTax.EffectiveRate,
		Initial401kBalance:       decimal.NewFromFloat(req.Initial401kBalance),
		InitialTaxableBalance:    decimal.NewFromFloat(req.InitialTaxableBalance),
		MegaBackdoorContribution: decimal.NewFromFloat(req.MegaBackdoorContribution),
	}

	currentSplit := decimal.NewFromFloat(req.TraditionalSplit)
	currentTakeHome := takeHomeForSplit(currentSplit)
	tradTakeHome := takeHomeForSplit(oneHundred)
	rothTakeHome := takeHomeForSplit(decimal.Zero)

	trad100 := projCalc.CalculateSplitProjection(in, tradTakeHome, oneHundred)
	roth100 := projCalc.CalculateSplitProjection(in, rothTakeHome, decimal.Zero)

	optimalSplit, optimalAfterTax := projCalc.FindOptimalSplit(in, takeHomeForSplit)
	e.Logger.Debugf("optimal split: %s%% after-tax=%s", optimalSplit, optimalAfterTax)

	bracketOptimalAmount, bracketExplanation := currentTaxCalc.CalculateOptimalTraditional(
		totalIncome, contribution.EmployeeContribution, retirementTax.EffectiveRate)
	bracketOptimalSplit := decimal.Zero
	if contribution.EmployeeContribution.GreaterThan(decimal.Zero) {
		bracketOptimalSplit = bracketOptimalAmount.Div(contribution.EmployeeContribution).Mul(oneHundred).Round(0)
	}

	splitProjection := projCalc.CalculateSplitProjection(in, currentTakeHome, currentSplit)

	var advantage string
	var advantageAmount decimal.Decimal
	if roth100.AfterTaxTotal.GreaterThan(trad100.AfterTaxTotal) {
		advantage = "Roth 401(k)"
		advantageAmount = roth100.AfterTaxTotal.Sub(trad100.AfterTaxTotal)
	} else {
		advantage = "Traditional 401(k)"
		advantageAmount = trad100.AfterTaxTotal.Sub(roth100.AfterTaxTotal)
	}

	return &domain.ComparisonResult{
		Contribution: contribution,
		TaxComparison: domain.TaxComparison{
			CurrentTraditional:    currentTraditionalTax,
			CurrentRoth:           currentRothTax,
			CurrentYearTaxSavings: currentYearSavings.Round(2),
			RetirementTaxRate:     retirementTax.EffectiveRate,
			BreakEvenRate:         currentTraditionalTax.MarginalRate,
		},
		ProjectionSummary: domain.ProjectionSummary{
			TraditionalFinalBalance:        splitProjection.TraditionalBalance,
			RothFinalBalance:               splitProjection.RothBalance,
			TraditionalAfterTax:            trad100.AfterTaxTotal,
			RothAfterTax:                   roth100.AfterTaxTotal,
			TraditionalTaxableBalance:      splitProjection.TaxableBalance,
			RothTaxableBalance:             splitProjection.TaxableBalance,
			TraditionalMegaBackdoorBalance: splitProjection.MegaBackdoorBalance,
			RothMegaBackdoorBalance:        splitProjection.MegaBackdoorBalance,
			ActualMegaBackdoor:             splitProjection.ActualMegaBackdoor,
			TotalContributions:             splitProjection.TotalContributions,
			TotalEmployerMatch:             splitProjection.TotalEmployerMatch,
			TotalGrowthTraditional:         trad100.TotalGrowth,
			TotalGrowthRoth:                roth100.TotalGrowth,
			Advantage:                      advantage,
			AdvantageAmount:                advantageAmount.Round(2),
			OptimalSplit:                   optimalSplit,
			OptimalAfterTax:                optimalAfterTax,
			CurrentSplit:                   currentSplit,
			CurrentSplitAfterTax:           splitProjection.AfterTaxTotal,
			BracketOptimalSplit:            bracketOptimalSplit,
			BracketExplanation:             bracketExplanation,
		},
		TraditionalProjections: trad100.Projections,
		RothProjections:        roth100.Projections,
	}, nil
}
