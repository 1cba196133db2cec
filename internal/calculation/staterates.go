package calculation

import (
	"strings"

	"github.com/planwell/retirement-compare/internal/domain"
	"github.com/shopspring/decimal"
)

// DefaultStateTaxRate applies when a region code has no table entry.
var DefaultStateTaxRate = decimal.NewFromFloat(0.05)

// Flat state income tax rates by two-letter code. States with progressive
// schedules use an approximate effective rate for $100k income.
var stateTaxRates = map[string]decimal.Decimal{
	"AL": decimal.NewFromFloat(0.050),
	"AK": decimal.NewFromFloat(0.000),
	"AZ": decimal.NewFromFloat(0.025),
	"AR": decimal.NewFromFloat(0.047),
	"CA": decimal.NewFromFloat(0.093),
	"CO": decimal.NewFromFloat(0.044),
	"CT": decimal.NewFromFloat(0.060),
	"DE": decimal.NewFromFloat(0.066),
	"FL": decimal.NewFromFloat(0.000),
	"GA": decimal.NewFromFloat(0.055),
	"HI": decimal.NewFromFloat(0.080),
	"ID": decimal.NewFromFloat(0.058),
	"IL": decimal.NewFromFloat(0.050),
	"IN": decimal.NewFromFloat(0.032),
	"IA": decimal.NewFromFloat(0.057),
	"KS": decimal.NewFromFloat(0.057),
	"KY": decimal.NewFromFloat(0.045),
	"LA": decimal.NewFromFloat(0.043),
	"ME": decimal.NewFromFloat(0.072),
	"MD": decimal.NewFromFloat(0.058),
	"MA": decimal.NewFromFloat(0.050),
	"MI": decimal.NewFromFloat(0.043),
	"MN": decimal.NewFromFloat(0.079),
	"MS": decimal.NewFromFloat(0.050),
	"MO": decimal.NewFromFloat(0.049),
	"MT": decimal.NewFromFloat(0.059),
	"NE": decimal.NewFromFloat(0.058),
	"NV": decimal.NewFromFloat(0.000),
	"NH": decimal.NewFromFloat(0.000),
	"NJ": decimal.NewFromFloat(0.064),
	"NM": decimal.NewFromFloat(0.049),
	"NY": decimal.NewFromFloat(0.085),
	"NC": decimal.NewFromFloat(0.053),
	"ND": decimal.NewFromFloat(0.025),
	"OH": decimal.NewFromFloat(0.040),
	"OK": decimal.NewFromFloat(0.048),
	"OR": decimal.NewFromFloat(0.099),
	"PA": decimal.NewFromFloat(0.031),
	"RI": decimal.NewFromFloat(0.060),
	"SC": decimal.NewFromFloat(0.065),
	"SD": decimal.NewFromFloat(0.000),
	"TN": decimal.NewFromFloat(0.000),
	"TX": decimal.NewFromFloat(0.000),
	"UT": decimal.NewFromFloat(0.047),
	"VT": decimal.NewFromFloat(0.076),
	"VA": decimal.NewFromFloat(0.058),
	"WA": decimal.NewFromFloat(0.000),
	"WV": decimal.NewFromFloat(0.055),
	"WI": decimal.NewFromFloat(0.065),
	"WY": decimal.NewFromFloat(0.000),
	"DC": decimal.NewFromFloat(0.085),
}

// StateTaxRate resolves a two-letter region code (case-insensitive) to a flat
// tax rate. Unknown codes resolve to DefaultStateTaxRate rather than failing.
func StateTaxRate(stateCode string) decimal.Decimal {
	if rate, ok := stateTaxRates[strings.ToUpper(stateCode)]; ok {
		return rate
	}
	return DefaultStateTaxRate
}

// StateTaxRateWithRules resolves a code against a configured table, falling
// back to the compiled-in table when the rules carry none.
func StateTaxRateWithRules(rules *domain.TaxRules, stateCode string) decimal.Decimal {
	if rules == nil || len(rules.StateRates) == 0 {
		return StateTaxRate(stateCode)
	}
	if rate, ok := rules.StateRates[strings.ToUpper(stateCode)]; ok {
		return rate
	}
	if !rules.DefaultStateRate.IsZero() {
		return rules.DefaultStateRate
	}
	return DefaultStateTaxRate
}
