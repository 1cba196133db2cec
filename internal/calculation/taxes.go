package calculation

import (
	"fmt"

	"github.com/planwell/retirement-compare/internal/domain"
	"github.com/shopspring/decimal"
)

// TAX CALCULATION ASSUMPTIONS:
//
// 1. Federal Tax Brackets: 2024 brackets for all projection years, no
//    inflation indexing. Standard deduction: $14,600 single / $29,200 MFJ.
//
// 2. State Tax: flat per-state rate resolved from a two-letter code table;
//    progressive states are approximated with an effective rate near $100k
//    income. Unknown codes resolve to 5%.
//
// 3. FICA is always computed on gross wages. 401(k) deferrals reduce federal
//    and state taxable income but never FICA wages.

var oneHundred = decimal.NewFromInt(100)

// TaxBracket is one progressive bracket: income up to and including UpTo is
// taxed at Rate on the portion above the previous bracket's bound. The last
// bracket is treated as unbounded regardless of its UpTo sentinel.
type TaxBracket struct {
	UpTo decimal.Decimal
	Rate decimal.Decimal
}

var bracketsSingle2024 = []TaxBracket{
	{decimal.NewFromInt(11600), decimal.NewFromFloat(0.10)},
	{decimal.NewFromInt(47150), decimal.NewFromFloat(0.12)},
	{decimal.NewFromInt(100525), decimal.NewFromFloat(0.22)},
	{decimal.NewFromInt(191950), decimal.NewFromFloat(0.24)},
	{decimal.NewFromInt(243725), decimal.NewFromFloat(0.32)},
	{decimal.NewFromInt(609350), decimal.NewFromFloat(0.35)},
	{decimal.NewFromInt(999999999), decimal.NewFromFloat(0.37)},
}

var bracketsMFJ2024 = []TaxBracket{
	{decimal.NewFromInt(23200), decimal.NewFromFloat(0.10)},
	{decimal.NewFromInt(94300), decimal.NewFromFloat(0.12)},
	{decimal.NewFromInt(201050), decimal.NewFromFloat(0.22)},
	{decimal.NewFromInt(383900), decimal.NewFromFloat(0.24)},
	{decimal.NewFromInt(487450), decimal.NewFromFloat(0.32)},
	{decimal.NewFromInt(731200), decimal.NewFromFloat(0.35)},
	{decimal.NewFromInt(999999999), decimal.NewFromFloat(0.37)},
}

// FICAParams carries the payroll tax parameters for one year.
type FICAParams struct {
	SocialSecurityRate                decimal.Decimal
	SocialSecurityWageBase            decimal.Decimal
	MedicareRate                      decimal.Decimal
	AdditionalMedicareRate            decimal.Decimal
	AdditionalMedicareThresholdSingle decimal.Decimal
	AdditionalMedicareThresholdMFJ    decimal.Decimal
}

func defaultFICA2024() FICAParams {
	return FICAParams{
		SocialSecurityRate:                decimal.NewFromFloat(0.062),
		SocialSecurityWageBase:            decimal.NewFromInt(168600),
		MedicareRate:                      decimal.NewFromFloat(0.0145),
		AdditionalMedicareRate:            decimal.NewFromFloat(0.009),
		AdditionalMedicareThresholdSingle: decimal.NewFromInt(200000),
		AdditionalMedicareThresholdMFJ:    decimal.NewFromInt(250000),
	}
}

func defaultBrackets(filingStatus string) []TaxBracket {
	if filingStatus == domain.FilingMarriedJointly {
		return bracketsMFJ2024
	}
	return bracketsSingle2024
}

func defaultStandardDeduction(filingStatus string) decimal.Decimal {
	if filingStatus == domain.FilingMarriedJointly {
		return decimal.NewFromInt(29200)
	}
	return decimal.NewFromInt(14600)
}

// TaxCalculator computes federal, state, and FICA taxes for one filing status
// and one flat state rate. It is stateless after construction.
type TaxCalculator struct {
	FilingStatus      string
	Year              int
	StateRate         decimal.Decimal
	Brackets          []TaxBracket
	StandardDeduction decimal.Decimal
	FICA              FICAParams
}

// NewTaxCalculator creates a calculator with the 2024 constant tables.
func NewTaxCalculator(filingStatus string, stateRate decimal.Decimal) *TaxCalculator {
	return &TaxCalculator{
		FilingStatus:      filingStatus,
		Year:              2024,
		StateRate:         stateRate,
		Brackets:          defaultBrackets(filingStatus),
		StandardDeduction: defaultStandardDeduction(filingStatus),
		FICA:              defaultFICA2024(),
	}
}

// NewTaxCalculatorWithRules creates a calculator from configured rule tables.
// Empty or zero rule fields fall back to the compiled-in 2024 defaults.
func NewTaxCalculatorWithRules(rules *domain.TaxRules, filingStatus string, stateRate decimal.Decimal) *TaxCalculator {
	tc := NewTaxCalculator(filingStatus, stateRate)
	if rules == nil {
		return tc
	}
	if rules.Year != 0 {
		tc.Year = rules.Year
	}
	ruleBrackets := rules.BracketsSingle
	stdDed := rules.StandardDeductionSingle
	if filingStatus == domain.FilingMarriedJointly {
		ruleBrackets = rules.BracketsMFJ
		stdDed = rules.StandardDeductionMFJ
	}
	if len(ruleBrackets) > 0 {
		brackets := make([]TaxBracket, len(ruleBrackets))
		for i, b := range ruleBrackets {
			brackets[i] = TaxBracket{UpTo: b.UpTo, Rate: b.Rate}
		}
		tc.Brackets = brackets
	}
	if !stdDed.IsZero() {
		tc.StandardDeduction = stdDed
	}
	if !rules.FICA.SocialSecurityRate.IsZero() {
		tc.FICA = FICAParams{
			SocialSecurityRate:                rules.FICA.SocialSecurityRate,
			SocialSecurityWageBase:            rules.FICA.SocialSecurityWageBase,
			MedicareRate:                      rules.FICA.MedicareRate,
			AdditionalMedicareRate:            rules.FICA.AdditionalMedicareRate,
			AdditionalMedicareThresholdSingle: rules.FICA.AdditionalMedicareThresholdSingle,
			AdditionalMedicareThresholdMFJ:    rules.FICA.AdditionalMedicareThresholdMFJ,
		}
	}
	return tc
}

// CalculateFICA calculates Social Security plus Medicare (including the
// additional Medicare surtax above the filing-status threshold) on gross
// wages, rounded to cents.
func (tc *TaxCalculator) CalculateFICA(grossWages decimal.Decimal) decimal.Decimal {
	ssWages := decimal.Min(grossWages, tc.FICA.SocialSecurityWageBase)
	socialSecurity := ssWages.Mul(tc.FICA.SocialSecurityRate)

	medicare := grossWages.Mul(tc.FICA.MedicareRate)

	threshold := tc.FICA.AdditionalMedicareThresholdSingle
	if tc.FilingStatus == domain.FilingMarriedJointly {
		threshold = tc.FICA.AdditionalMedicareThresholdMFJ
	}
	if grossWages.GreaterThan(threshold) {
		medicare = medicare.Add(grossWages.Sub(threshold).Mul(tc.FICA.AdditionalMedicareRate))
	}

	return socialSecurity.Add(medicare).Round(2)
}

// CalculateTax computes the full tax breakdown. taxableIncome is income after
// any pre-tax deferrals; grossWages is the unreduced wage figure FICA applies
// to. Pass includeFICA=false for retirement income, which is not wages.
func (tc *TaxCalculator) CalculateTax(taxableIncome, grossWages decimal.Decimal, includeFICA bool) domain.TaxResult {
	if taxableIncome.LessThanOrEqual(decimal.Zero) {
		ficaTax := decimal.Zero
		if includeFICA && grossWages.GreaterThan(decimal.Zero) {
			ficaTax = tc.CalculateFICA(grossWages)
		}
		return domain.TaxResult{
			TaxableIncome: decimal.Zero,
			FederalTax:    decimal.Zero,
			StateTax:      decimal.Zero,
			FICATax:       ficaTax,
			TotalTax:      ficaTax,
			EffectiveRate: decimal.Zero,
			MarginalRate:  tc.Brackets[0].Rate,
		}
	}

	federalTax := decimal.Zero
	previousBound := decimal.Zero
	marginalRate := tc.Brackets[0].Rate
	for i, bracket := range tc.Brackets {
		if taxableIncome.LessThanOrEqual(bracket.UpTo) || i == len(tc.Brackets)-1 {
			federalTax = federalTax.Add(taxableIncome.Sub(previousBound).Mul(bracket.Rate))
			marginalRate = bracket.Rate
			break
		}
		federalTax = federalTax.Add(bracket.UpTo.Sub(previousBound).Mul(bracket.Rate))
		previousBound = bracket.UpTo
		marginalRate = bracket.Rate
	}

	stateTax := taxableIncome.Mul(tc.StateRate)

	ficaTax := decimal.Zero
	if includeFICA {
		ficaTax = tc.CalculateFICA(grossWages)
	}

	totalTax := federalTax.Add(stateTax).Add(ficaTax)

	effectiveRate := decimal.Zero
	if grossWages.GreaterThan(decimal.Zero) {
		effectiveRate = totalTax.Div(grossWages)
	}

	return domain.TaxResult{
		TaxableIncome: taxableIncome.Round(2),
		FederalTax:    federalTax.Round(2),
		StateTax:      stateTax.Round(2),
		FICATax:       ficaTax.Round(2),
		TotalTax:      totalTax.Round(2),
		EffectiveRate: effectiveRate.Round(4),
		// Combined federal + state marginal rate; FICA excluded.
		MarginalRate: marginalRate.Add(tc.StateRate),
	}
}

// CompareTaxImpact computes the current-year tax picture with and without the
// Traditional deferral, plus both treatments at the retirement income. The
// break-even rate is the naive one: the combined marginal rate after the
// deferral.
func (tc *TaxCalculator) CompareTaxImpact(currentIncome, traditionalContribution, retirementIncome decimal.Decimal) domain.TaxComparisonResult {
	traditionalTaxable := currentIncome.Sub(traditionalContribution)
	currentTraditional := tc.CalculateTax(traditionalTaxable, traditionalTaxable, true)
	currentRoth := tc.CalculateTax(currentIncome, currentIncome, true)

	currentYearSavings := currentRoth.TotalTax.Sub(currentTraditional.TotalTax)

	retirementTraditional := tc.CalculateTax(retirementIncome, retirementIncome, true)
	retirementRoth := tc.CalculateTax(retirementIncome, retirementIncome, true)

	breakEvenRate := decimal.Zero
	if traditionalContribution.GreaterThan(decimal.Zero) {
		breakEvenRate = currentTraditional.MarginalRate
	}

	return domain.TaxComparisonResult{
		CurrentTraditional:    currentTraditional,
		CurrentRoth:           currentRoth,
		CurrentYearTaxSavings: currentYearSavings.Round(2),
		RetirementTraditional: retirementTraditional,
		RetirementRoth:        retirementRoth,
		BreakEvenRate:         breakEvenRate,
	}
}

// bracketRate returns the federal rate of the bracket containing the given
// taxable income.
func (tc *TaxCalculator) bracketRate(taxableIncome decimal.Decimal) decimal.Decimal {
	for i, bracket := range tc.Brackets {
		if taxableIncome.LessThanOrEqual(bracket.UpTo) || i == len(tc.Brackets)-1 {
			return bracket.Rate
		}
	}
	return tc.Brackets[0].Rate
}

// CalculateOptimalTraditional finds the Traditional deferral that removes
// exactly the income taxed at a federal rate above the expected retirement
// rate. The target taxable-income floor is the upper bound of the highest
// bracket whose rate is at or below the retirement rate (zero when even the
// lowest bracket is taxed above it); no reduction applies when the bracket
// containing current taxable income is already at or below the retirement
// rate. Returns the clamped amount and a narrative explanation.
func (tc *TaxCalculator) CalculateOptimalTraditional(currentIncome, maxContribution, retirementTaxRate decimal.Decimal) (decimal.Decimal, string) {
	taxableIncome := decimal.Max(decimal.Zero, currentIncome.Sub(tc.StandardDeduction))
	currentMarginal := tc.CalculateTax(taxableIncome, taxableIncome, true).MarginalRate

	targetTaxable := taxableIncome
	if tc.bracketRate(taxableIncome).GreaterThan(retirementTaxRate) {
		floor := decimal.Zero
		for _, bracket := range tc.Brackets {
			if bracket.Rate.GreaterThan(retirementTaxRate) {
				break
			}
			floor = bracket.UpTo
		}
		targetTaxable = floor
	}

	optimal := taxableIncome.Sub(targetTaxable)
	optimal = decimal.Max(decimal.Zero, decimal.Min(optimal, maxContribution))

	marginalPct := currentMarginal.Mul(oneHundred).StringFixed(0)
	retirementPct := retirementTaxRate.Mul(oneHundred).StringFixed(1)

	var explanation string
	switch {
	case optimal.GreaterThanOrEqual(maxContribution):
		explanation = fmt.Sprintf("Use 100%% Traditional: All your contribution reduces income taxed at %s%% (> %s%% retirement rate)", marginalPct, retirementPct)
	case optimal.LessThanOrEqual(decimal.Zero):
		explanation = fmt.Sprintf("Use 100%% Roth: Your marginal rate (%s%%) <= retirement rate (%s%%)", marginalPct, retirementPct)
	default:
		pct := optimal.Div(maxContribution).Mul(oneHundred).StringFixed(0)
		explanation = fmt.Sprintf("Use %s%% Traditional ($%s) to reduce %s%% bracket income, rest as Roth", pct, optimal.StringFixed(0), marginalPct)
	}

	return optimal, explanation
}
