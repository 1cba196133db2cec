package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/planwell/retirement-compare/internal/domain"
)

// ConsoleVerboseFormatter renders the full report: contribution breakdown,
// current and retirement tax pictures, and the year-by-year projection table.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console-verbose" }

func (c ConsoleVerboseFormatter) Format(result *domain.ComparisonResult) ([]byte, error) {
	var buf bytes.Buffer
	summary := result.ProjectionSummary

	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintln(&buf, "TRADITIONAL vs ROTH 401(k) COMPARISON")
	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "CONTRIBUTIONS")
	fmt.Fprintln(&buf, strings.Repeat("=", 50))
	fmt.Fprintf(&buf, "Employee Contribution: %s\n", FormatCurrency(result.Contribution.EmployeeContribution))
	fmt.Fprintf(&buf, "Employer Match:        %s\n", FormatCurrency(result.Contribution.EmployerMatch))
	fmt.Fprintf(&buf, "Total:                 %s\n", FormatCurrency(result.Contribution.TotalContribution))
	fmt.Fprintf(&buf, "Statutory Limit:       %s (plan year %d)\n",
		FormatCurrency(result.Contribution.MaxEmployeeAllowed), result.Contribution.ContributionLimitUsed)
	if result.Contribution.IsOverLimit {
		fmt.Fprintln(&buf, "NOTE: requested contribution exceeded the limit and was capped")
	}
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "CURRENT YEAR TAXES")
	fmt.Fprintln(&buf, strings.Repeat("=", 50))
	writeTaxResult(&buf, "With Traditional deferral", result.TaxComparison.CurrentTraditional)
	writeTaxResult(&buf, "Without deferral (Roth)", result.TaxComparison.CurrentRoth)
	fmt.Fprintf(&buf, "Current-Year Tax Savings: %s\n", FormatCurrency(result.TaxComparison.CurrentYearTaxSavings))
	fmt.Fprintf(&buf, "Expected Retirement Rate: %s\n", FormatRate(result.TaxComparison.RetirementTaxRate))
	fmt.Fprintf(&buf, "Break-Even Rate:          %s\n", FormatRate(result.TaxComparison.BreakEvenRate))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "PROJECTION SUMMARY")
	fmt.Fprintln(&buf, strings.Repeat("=", 50))
	fmt.Fprintf(&buf, "Traditional After-Tax: %s\n", FormatCurrency(summary.TraditionalAfterTax))
	fmt.Fprintf(&buf, "Roth After-Tax:        %s\n", FormatCurrency(summary.RothAfterTax))
	fmt.Fprintf(&buf, "Advantage: %s by %s\n", summary.Advantage, FormatCurrency(summary.AdvantageAmount))
	fmt.Fprintf(&buf, "Optimal Split:         %s%% Traditional (after-tax %s)\n",
		summary.OptimalSplit.StringFixed(0), FormatCurrency(summary.OptimalAfterTax))
	fmt.Fprintf(&buf, "Your Split:            %s%% Traditional (after-tax %s)\n",
		summary.CurrentSplit.StringFixed(0), FormatCurrency(summary.CurrentSplitAfterTax))
	fmt.Fprintf(&buf, "Bracket Strategy:      %s\n", summary.BracketExplanation)
	if summary.ActualMegaBackdoor.IsPositive() {
		fmt.Fprintf(&buf, "Mega Backdoor (annual): %s\n", FormatCurrency(summary.ActualMegaBackdoor))
	}
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "YEAR-BY-YEAR (100% Traditional)")
	fmt.Fprintln(&buf, strings.Repeat("=", 50))
	writeProjectionTable(&buf, result.TraditionalProjections)
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "YEAR-BY-YEAR (100% Roth)")
	fmt.Fprintln(&buf, strings.Repeat("=", 50))
	writeProjectionTable(&buf, result.RothProjections)

	return buf.Bytes(), nil
}

func writeTaxResult(buf *bytes.Buffer, label string, tax domain.TaxResult) {
	fmt.Fprintf(buf, "%s:\n", label)
	fmt.Fprintf(buf, "  Taxable Income: %s\n", FormatCurrency(tax.TaxableIncome))
	fmt.Fprintf(buf, "  Federal: %s  State: %s  FICA: %s\n",
		FormatCurrency(tax.FederalTax), FormatCurrency(tax.StateTax), FormatCurrency(tax.FICATax))
	fmt.Fprintf(buf, "  Total: %s (effective %s, marginal %s)\n",
		FormatCurrency(tax.TotalTax), FormatRate(tax.EffectiveRate), FormatRate(tax.MarginalRate))
}

func writeProjectionTable(buf *bytes.Buffer, projections []domain.YearlyProjection) {
	fmt.Fprintf(buf, "%-5s %-4s %14s %14s %16s %16s\n", "Year", "Age", "Growth", "Balance", "Total Wealth", "After-Tax")
	for _, p := range projections {
		fmt.Fprintf(buf, "%-5d %-4d %14s %14s %16s %16s\n",
			p.Year, p.Age,
			FormatCurrency(p.Growth),
			FormatCurrency(p.Balance),
			FormatCurrency(p.TotalWealth),
			FormatCurrency(p.AfterTaxWealth),
		)
	}
}
