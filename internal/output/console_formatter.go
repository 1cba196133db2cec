package output

import (
	"bytes"
	"fmt"

	"github.com/planwell/retirement-compare/internal/domain"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(result *domain.ComparisonResult) ([]byte, error) {
	var buf bytes.Buffer
	summary := result.ProjectionSummary

	fmt.Fprintln(&buf, "TRADITIONAL vs ROTH 401(k) SUMMARY")
	fmt.Fprintln(&buf, "==================================")
	fmt.Fprintf(&buf, "Employee Contribution: %s", FormatCurrency(result.Contribution.EmployeeContribution))
	if result.Contribution.IsOverLimit {
		fmt.Fprintf(&buf, " (capped at limit %s)", FormatCurrency(result.Contribution.MaxEmployeeAllowed))
	}
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "Employer Match:        %s\n", FormatCurrency(result.Contribution.EmployerMatch))
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "Traditional After-Tax: %s\n", FormatCurrency(summary.TraditionalAfterTax))
	fmt.Fprintf(&buf, "Roth After-Tax:        %s\n", FormatCurrency(summary.RothAfterTax))
	fmt.Fprintf(&buf, "Advantage: %s by %s\n", summary.Advantage, FormatCurrency(summary.AdvantageAmount))
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "Optimal Split: %s%% Traditional (after-tax %s)\n",
		summary.OptimalSplit.StringFixed(0), FormatCurrency(summary.OptimalAfterTax))
	fmt.Fprintf(&buf, "Your Split:    %s%% Traditional (after-tax %s)\n",
		summary.CurrentSplit.StringFixed(0), FormatCurrency(summary.CurrentSplitAfterTax))
	fmt.Fprintf(&buf, "Bracket Strategy: %s\n", summary.BracketExplanation)

	return buf.Bytes(), nil
}
