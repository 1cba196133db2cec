package calculation

import (
	"math"

	"github.com/planwell/retirement-compare/internal/domain"
	"github.com/shopspring/decimal"
)

// PROJECTION ASSUMPTIONS:
//
// 1. Ending balances and growth are rounded to cents after each simulated
//    year (round half away from zero), and the rounded balance is the next
//    year's starting point. This matches statement-style rounding.
//
// 2. The employer match always lands in the tax-deferred bucket, whatever
//    the employee's Traditional/Roth split.
//
// 3. The taxable brokerage account pays an annual dividend-tax drag of
//    balance * dividend_yield * capital_gains_rate; gains are otherwise
//    unrealized until the horizon end.

var (
	one    = decimal.NewFromInt(1)
	twelve = decimal.NewFromInt(12)
)

// TakeHomeFunc returns the annual take-home pay for a given Traditional split
// percentage. Take-home depends on the split through the current-year tax
// owed, so the tax side stays with the caller.
type TakeHomeFunc func(traditionalSplit decimal.Decimal) decimal.Decimal

// ProjectionCalculator simulates multi-year account growth. All fields are
// read-only after construction; every method is a pure function of its
// arguments plus this configuration.
type ProjectionCalculator struct {
	AnnualReturn     decimal.Decimal
	TaxableReturn    decimal.Decimal
	Timing           string
	CapitalGainsRate decimal.Decimal
	SavingsRate      decimal.Decimal
	DividendYield    decimal.Decimal
}

// NewProjectionCalculator creates a calculator with the default assumptions:
// 7% tax-advantaged return, 6% taxable return, monthly contribution timing,
// 15% capital gains, 20% savings rate, 1.5% dividend yield.
func NewProjectionCalculator() *ProjectionCalculator {
	return &ProjectionCalculator{
		AnnualReturn:     decimal.NewFromFloat(0.07),
		TaxableReturn:    decimal.NewFromFloat(0.06),
		Timing:           domain.TimingMonthly,
		CapitalGainsRate: decimal.NewFromFloat(0.15),
		SavingsRate:      decimal.NewFromFloat(0.20),
		DividendYield:    decimal.NewFromFloat(0.015),
	}
}

// growYear applies one year of compounding under the configured timing
// policy and returns the ending balance and the growth, both rounded to
// cents.
func (pc *ProjectionCalculator) growYear(startingBalance, contribution, returnRate decimal.Decimal) (ending, growth decimal.Decimal) {
	r := returnRate
	onePlusR := one.Add(r)

	switch pc.Timing {
	case domain.TimingBeginning:
		ending = startingBalance.Add(contribution).Mul(onePlusR)
		growth = ending.Sub(startingBalance).Sub(contribution)
	case domain.TimingEnd:
		ending = startingBalance.Mul(onePlusR).Add(contribution)
		growth = startingBalance.Mul(r)
	default: // monthly
		balanceGrowth := startingBalance.Mul(onePlusR)
		monthlyContribution := contribution.Div(twelve)
		rf, _ := r.Float64()
		monthlyRate := decimal.NewFromFloat(math.Pow(1+rf, 1.0/12.0) - 1)
		onePlusMonthly := one.Add(monthlyRate)
		contributionFV := decimal.Zero
		for month := 0; month < 12; month++ {
			monthsToGrow := int64(12 - month - 1)
			contributionFV = contributionFV.Add(monthlyContribution.Mul(onePlusMonthly.Pow(decimal.NewFromInt(monthsToGrow))))
		}
		ending = balanceGrowth.Add(contributionFV)
		growth = ending.Sub(startingBalance).Sub(contribution)
	}

	return ending.Round(2), growth.Round(2)
}

// dividendTaxDrag approximates the annual tax leakage on dividend income for
// a taxable balance.
func (pc *ProjectionCalculator) dividendTaxDrag(balance decimal.Decimal) decimal.Decimal {
	return balance.Mul(pc.DividendYield).Mul(pc.CapitalGainsRate)
}

// annualTaxableSavings derives the discretionary brokerage deposit: the mega
// backdoor comes first out of take-home, then the savings rate applies to
// what remains.
func (pc *ProjectionCalculator) annualTaxableSavings(takeHome, actualMegaBackdoor decimal.Decimal) decimal.Decimal {
	spendingMoney := takeHome.Sub(actualMegaBackdoor)
	return decimal.Max(decimal.Zero, spendingMoney.Mul(pc.SavingsRate))
}

// CalculateProjections runs the two-sided 100% Traditional vs 100% Roth
// simulation over the whole horizon. A zero or negative horizon yields empty
// projection sequences and zero totals.
func (pc *ProjectionCalculator) CalculateProjections(in domain.ProjectionInput, tradTakeHome, rothTakeHome decimal.Decimal) domain.ProjectionResult {
	years := in.RetirementAge - in.CurrentAge

	var traditionalProjections, rothProjections []domain.YearlyProjection

	trad401k := in.Initial401kBalance
	roth401k := in.Initial401kBalance
	tradTaxable := in.InitialTaxableBalance
	rothTaxable := in.InitialTaxableBalance
	tradTaxableContributions := in.InitialTaxableBalance
	rothTaxableContributions := in.InitialTaxableBalance
	tradMegaBalance := decimal.Zero
	rothMegaBalance := decimal.Zero
	totalContributions := decimal.Zero
	totalEmployerMatch := decimal.Zero
	totalGrowthTrad := decimal.Zero
	totalGrowthRoth := decimal.Zero

	// After-tax dollars in can never exceed take-home.
	tradMegaBackdoor := decimal.Min(in.MegaBackdoorContribution, tradTakeHome)
	rothMegaBackdoor := decimal.Min(in.MegaBackdoorContribution, rothTakeHome)

	tradAnnualSavings := pc.annualTaxableSavings(tradTakeHome, tradMegaBackdoor)
	rothAnnualSavings := pc.annualTaxableSavings(rothTakeHome, rothMegaBackdoor)

	for i := 0; i < years; i++ {
		year := i + 1
		age := in.CurrentAge + year

		total401kContribution := in.AnnualContribution.Add(in.EmployerMatch)

		var tradGrowth, rothGrowth decimal.Decimal
		trad401k, tradGrowth = pc.growYear(trad401k, total401kContribution, pc.AnnualReturn)
		roth401k, rothGrowth = pc.growYear(roth401k, total401kContribution, pc.AnnualReturn)

		tradMegaBalance, _ = pc.growYear(tradMegaBalance, tradMegaBackdoor, pc.AnnualReturn)
		rothMegaBalance, _ = pc.growYear(rothMegaBalance, rothMegaBackdoor, pc.AnnualReturn)

		tradDrag := pc.dividendTaxDrag(tradTaxable)
		tradTaxable, _ = pc.growYear(tradTaxable, tradAnnualSavings, pc.TaxableReturn)
		tradTaxable = tradTaxable.Sub(tradDrag)
		tradTaxableContributions = tradTaxableContributions.Add(tradAnnualSavings)

		rothDrag := pc.dividendTaxDrag(rothTaxable)
		rothTaxable, _ = pc.growYear(rothTaxable, rothAnnualSavings, pc.TaxableReturn)
		rothTaxable = rothTaxable.Sub(rothDrag)
		rothTaxableContributions = rothTaxableContributions.Add(rothAnnualSavings)

		tradTotalWealth := trad401k.Add(tradTaxable).Add(tradMegaBalance)
		rothTotalWealth := roth401k.Add(rothTaxable).Add(rothMegaBalance)

		traditionalProjections = append(traditionalProjections, domain.YearlyProjection{
			Year:           year,
			Age:            age,
			Contribution:   in.AnnualContribution,
			EmployerMatch:  in.EmployerMatch,
			Growth:         tradGrowth,
			Balance:        trad401k,
			TaxableBalance: tradTaxable.Round(2),
			TotalWealth:    tradTotalWealth.Round(2),
		})

		rothProjections = append(rothProjections, domain.YearlyProjection{
			Year:           year,
			Age:            age,
			Contribution:   in.AnnualContribution,
			EmployerMatch:  in.EmployerMatch,
			Growth:         rothGrowth,
			Balance:        roth401k,
			TaxableBalance: rothTaxable.Round(2),
			TotalWealth:    rothTotalWealth.Round(2),
		})

		totalContributions = totalContributions.Add(in.AnnualContribution)
		totalEmployerMatch = totalEmployerMatch.Add(in.EmployerMatch)
		totalGrowthTrad = totalGrowthTrad.Add(tradGrowth)
		totalGrowthRoth = totalGrowthRoth.Add(rothGrowth)
	}

	// At withdrawal: the deferred bucket is taxed in full at the retirement
	// rate, the taxable bucket only on its unrealized gain, the mega
	// backdoor not at all.
	trad401kAfterTax := trad401k.Mul(one.Sub(in.RetirementTaxRate))
	tradTaxableGains := tradTaxable.Sub(tradTaxableContributions)
	tradTaxableAfterTax := tradTaxable.Sub(tradTaxableGains.Mul(pc.CapitalGainsRate))
	tradTotalAfterTax := trad401kAfterTax.Add(tradTaxableAfterTax).Add(tradMegaBalance)

	rothTaxableGains := rothTaxable.Sub(rothTaxableContributions)
	rothTaxableAfterTax := rothTaxable.Sub(rothTaxableGains.Mul(pc.CapitalGainsRate))
	rothTotalAfterTax := roth401k.Add(rothTaxableAfterTax).Add(rothMegaBalance)

	return domain.ProjectionResult{
		TraditionalProjections:         traditionalProjections,
		RothProjections:                rothProjections,
		TraditionalFinalBalance:        trad401k.Round(2),
		RothFinalBalance:               roth401k.Round(2),
		TraditionalAfterTax:            tradTotalAfterTax.Round(2),
		RothAfterTax:                   rothTotalAfterTax.Round(2),
		TraditionalTaxableBalance:      tradTaxable.Round(2),
		RothTaxableBalance:             rothTaxable.Round(2),
		TraditionalMegaBackdoorBalance: tradMegaBalance.Round(2),
		RothMegaBackdoorBalance:        rothMegaBalance.Round(2),
		TotalContributions:             totalContributions.Round(2),
		TotalEmployerMatch:             totalEmployerMatch.Round(2),
		TotalGrowthTraditional:         totalGrowthTrad.Round(2),
		TotalGrowthRoth:                totalGrowthRoth.Round(2),
	}
}

// CalculateSplitProjection simulates the whole horizon for one fixed
// Traditional split percentage in [0,100]. The employee contribution and any
// initial 401(k) balance are divided by the split; the employer match always
// flows into the tax-deferred side. A zero or negative horizon yields an
// empty projection sequence and zero totals.
func (pc *ProjectionCalculator) CalculateSplitProjection(in domain.ProjectionInput, takeHome, traditionalSplit decimal.Decimal) domain.SplitProjectionResult {
	years := in.RetirementAge - in.CurrentAge
	splitRatio := traditionalSplit.Div(oneHundred)

	var projections []domain.YearlyProjection

	traditionalContribution := in.AnnualContribution.Mul(splitRatio)
	rothContribution := in.AnnualContribution.Mul(one.Sub(splitRatio))

	traditionalBalance := in.Initial401kBalance.Mul(splitRatio)
	rothBalance := in.Initial401kBalance.Mul(one.Sub(splitRatio))
	taxableBalance := in.InitialTaxableBalance
	taxableContributions := in.InitialTaxableBalance
	megaBackdoorBalance := decimal.Zero

	totalContributions := decimal.Zero
	totalEmployerMatch := decimal.Zero
	totalGrowth := decimal.Zero

	actualMegaBackdoor := decimal.Min(in.MegaBackdoorContribution, takeHome)
	annualTaxableSavings := pc.annualTaxableSavings(takeHome, actualMegaBackdoor)

	for i := 0; i < years; i++ {
		year := i + 1
		age := in.CurrentAge + year

		var tradGrowth, rothGrowth decimal.Decimal
		traditionalBalance, tradGrowth = pc.growYear(traditionalBalance, traditionalContribution.Add(in.EmployerMatch), pc.AnnualReturn)
		rothBalance, rothGrowth = pc.growYear(rothBalance, rothContribution, pc.AnnualReturn)
		combinedGrowth := tradGrowth.Add(rothGrowth)

		megaBackdoorBalance, _ = pc.growYear(megaBackdoorBalance, actualMegaBackdoor, pc.AnnualReturn)

		drag := pc.dividendTaxDrag(taxableBalance)
		taxableBalance, _ = pc.growYear(taxableBalance, annualTaxableSavings, pc.TaxableReturn)
		taxableBalance = taxableBalance.Sub(drag)
		taxableContributions = taxableContributions.Add(annualTaxableSavings)

		totalBalance := traditionalBalance.Add(rothBalance)
		totalWealth := totalBalance.Add(taxableBalance).Add(megaBackdoorBalance)

		tradAfterTax := traditionalBalance.Mul(one.Sub(in.RetirementTaxRate))
		taxableGains := taxableBalance.Sub(taxableContributions)
		taxableAfterTax := taxableBalance.Sub(taxableGains.Mul(pc.CapitalGainsRate))
		afterTaxWealth := tradAfterTax.Add(rothBalance).Add(taxableAfterTax).Add(megaBackdoorBalance)

		projections = append(projections, domain.YearlyProjection{
			Year:               year,
			Age:                age,
			Contribution:       in.AnnualContribution,
			EmployerMatch:      in.EmployerMatch,
			Growth:             combinedGrowth,
			Balance:            totalBalance.Round(2),
			TaxableBalance:     taxableBalance.Round(2),
			TotalWealth:        totalWealth.Round(2),
			AfterTaxWealth:     afterTaxWealth.Round(2),
			TraditionalBalance: traditionalBalance.Round(2),
			RothBalance:        rothBalance.Round(2),
		})

		totalContributions = totalContributions.Add(in.AnnualContribution)
		totalEmployerMatch = totalEmployerMatch.Add(in.EmployerMatch)
		totalGrowth = totalGrowth.Add(combinedGrowth)
	}

	traditionalAfterTax := traditionalBalance.Mul(one.Sub(in.RetirementTaxRate))
	taxableGains := taxableBalance.Sub(taxableContributions)
	taxableAfterTax := taxableBalance.Sub(taxableGains.Mul(pc.CapitalGainsRate))
	totalAfterTax := traditionalAfterTax.Add(rothBalance).Add(taxableAfterTax).Add(megaBackdoorBalance)

	return domain.SplitProjectionResult{
		Projections:         projections,
		TraditionalBalance:  traditionalBalance.Round(2),
		RothBalance:         rothBalance.Round(2),
		TaxableBalance:      taxableBalance.Round(2),
		MegaBackdoorBalance: megaBackdoorBalance.Round(2),
		AfterTaxTotal:       totalAfterTax.Round(2),
		TotalContributions:  totalContributions.Round(2),
		TotalEmployerMatch:  totalEmployerMatch.Round(2),
		TotalGrowth:         totalGrowth.Round(2),
		SplitPercent:        traditionalSplit,
		ActualMegaBackdoor:  actualMegaBackdoor.Round(2),
	}
}

// FindOptimalSplit brute-forces the Traditional split over {0, 5, ..., 100}
// and returns the split and after-tax total of the best candidate. Ties
// resolve to the lowest split: the comparison is strictly greater-than in
// ascending split order, so the first maximum wins. The grid is deliberate;
// the after-tax value is not verified unimodal in the split, so a bracketing
// optimizer would not be a faithful substitute.
func (pc *ProjectionCalculator) FindOptimalSplit(in domain.ProjectionInput, takeHomeAtSplit TakeHomeFunc) (decimal.Decimal, decimal.Decimal) {
	bestSplit := decimal.Zero
	bestValue := decimal.Zero

	for split := 0; split <= 100; split += 5 {
		s := decimal.NewFromInt(int64(split))
		takeHome := takeHomeAtSplit(s)
		result := pc.CalculateSplitProjection(in, takeHome, s)
		if result.AfterTaxTotal.GreaterThan(bestValue) {
			bestValue = result.AfterTaxTotal
			bestSplit = s
		}
	}

	return bestSplit, bestValue
}
