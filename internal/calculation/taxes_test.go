package calculation

import (
	"testing"

	"github.com/planwell/retirement-compare/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFederalTaxBrackets(t *testing.T) {
	calculator := NewTaxCalculator(domain.FilingSingle, decimal.Zero)

	tests := []struct {
		name             string
		taxableIncome    decimal.Decimal
		expectedFederal  decimal.Decimal
		expectedMarginal decimal.Decimal
	}{
		{
			name:             "first bracket only",
			taxableIncome:    decimal.NewFromInt(10000),
			expectedFederal:  decimal.NewFromInt(1000),
			expectedMarginal: decimal.NewFromFloat(0.10),
		},
		{
			name:             "exactly at first bracket bound",
			taxableIncome:    decimal.NewFromInt(11600),
			expectedFederal:  decimal.NewFromInt(1160),
			expectedMarginal: decimal.NewFromFloat(0.10),
		},
		{
			name:          "spans three brackets",
			taxableIncome: decimal.NewFromInt(50000),
			// 11600*0.10 + 35550*0.12 + 2850*0.22
			expectedFederal:  decimal.NewFromInt(6053),
			expectedMarginal: decimal.NewFromFloat(0.22),
		},
		{
			name:          "22 percent bracket",
			taxableIncome: decimal.NewFromInt(75000),
			// 1160 + 4266 + 27850*0.22
			expectedFederal:  decimal.NewFromInt(11553),
			expectedMarginal: decimal.NewFromFloat(0.22),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := calculator.CalculateTax(tt.taxableIncome, tt.taxableIncome, false)
			assert.True(t, tt.expectedFederal.Equal(result.FederalTax),
				"federal tax: expected %s, got %s", tt.expectedFederal, result.FederalTax)
			assert.True(t, tt.expectedMarginal.Equal(result.MarginalRate),
				"marginal rate: expected %s, got %s", tt.expectedMarginal, result.MarginalRate)
			assert.True(t, result.FICATax.IsZero())
		})
	}
}

func TestFederalTaxMarriedFilingJointly(t *testing.T) {
	calculator := NewTaxCalculator(domain.FilingMarriedJointly, decimal.Zero)

	// 23200*0.10 + 71100*0.12 + 5700*0.22
	result := calculator.CalculateTax(decimal.NewFromInt(100000), decimal.NewFromInt(100000), false)
	assert.True(t, decimal.NewFromInt(12106).Equal(result.FederalTax),
		"expected 12106, got %s", result.FederalTax)
	assert.True(t, decimal.NewFromFloat(0.22).Equal(result.MarginalRate))
}

func TestTaxMonotonicInIncome(t *testing.T) {
	calculator := NewTaxCalculator(domain.FilingSingle, decimal.NewFromFloat(0.05))

	previous := decimal.Zero
	for _, income := range []int64{10000, 50000, 100000, 200000, 500000, 1000000} {
		d := decimal.NewFromInt(income)
		result := calculator.CalculateTax(d, d, true)
		assert.True(t, result.TotalTax.GreaterThan(previous),
			"total tax should grow with income, got %s at %d", result.TotalTax, income)
		previous = result.TotalTax
	}
}

func TestStateTaxAddsToMarginalRate(t *testing.T) {
	stateRate := decimal.NewFromFloat(0.05)
	calculator := NewTaxCalculator(domain.FilingSingle, stateRate)

	result := calculator.CalculateTax(decimal.NewFromInt(50000), decimal.NewFromInt(50000), false)
	assert.True(t, decimal.NewFromInt(2500).Equal(result.StateTax),
		"state tax: expected 2500, got %s", result.StateTax)
	assert.True(t, decimal.NewFromFloat(0.27).Equal(result.MarginalRate),
		"marginal should include state rate, got %s", result.MarginalRate)
}

func TestZeroIncomeReturnsLowestBracketRate(t *testing.T) {
	calculator := NewTaxCalculator(domain.FilingSingle, decimal.NewFromFloat(0.05))

	result := calculator.CalculateTax(decimal.Zero, decimal.Zero, true)
	assert.True(t, result.FederalTax.IsZero())
	assert.True(t, result.StateTax.IsZero())
	assert.True(t, result.FICATax.IsZero())
	assert.True(t, result.TotalTax.IsZero())
	// Lowest federal rate alone, no state component.
	assert.True(t, decimal.NewFromFloat(0.10).Equal(result.MarginalRate),
		"got %s", result.MarginalRate)
}

func TestNegativeTaxableIncomeStillPaysFICA(t *testing.T) {
	calculator := NewTaxCalculator(domain.FilingSingle, decimal.Zero)

	// Deferrals can push taxable income to zero, but FICA stays on gross.
	gross := decimal.NewFromInt(30000)
	result := calculator.CalculateTax(decimal.NewFromInt(-5000), gross, true)
	assert.True(t, result.FederalTax.IsZero())
	expectedFICA := decimal.NewFromFloat(2295.00) // 30000 * (0.062 + 0.0145)
	assert.True(t, expectedFICA.Equal(result.FICATax), "got %s", result.FICATax)
	assert.True(t, expectedFICA.Equal(result.TotalTax))
}

func TestCalculateFICA(t *testing.T) {
	tests := []struct {
		name         string
		filingStatus string
		grossWages   decimal.Decimal
		expected     decimal.Decimal
	}{
		{
			name:         "below wage base",
			filingStatus: domain.FilingSingle,
			grossWages:   decimal.NewFromInt(100000),
			expected:     decimal.NewFromFloat(7650.00), // 6200 SS + 1450 Medicare
		},
		{
			name:         "above wage base and surtax threshold",
			filingStatus: domain.FilingSingle,
			grossWages:   decimal.NewFromInt(250000),
			// SS capped at 168600*0.062, Medicare 3625, surtax 50000*0.009
			expected: decimal.NewFromFloat(14528.20),
		},
		{
			name:         "married surtax threshold is higher",
			filingStatus: domain.FilingMarriedJointly,
			grossWages:   decimal.NewFromInt(250000),
			// no surtax at exactly 250000 MFJ
			expected: decimal.NewFromFloat(14078.20),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calculator := NewTaxCalculator(tt.filingStatus, decimal.Zero)
			got := calculator.CalculateFICA(tt.grossWages)
			assert.True(t, tt.expected.Equal(got), "expected %s, got %s", tt.expected, got)
		})
	}
}

func TestCompareTaxImpact(t *testing.T) {
	calculator := NewTaxCalculator(domain.FilingSingle, decimal.Zero)

	result := calculator.CompareTaxImpact(
		decimal.NewFromInt(100000),
		decimal.NewFromInt(10000),
		decimal.NewFromInt(60000),
	)

	assert.True(t, result.CurrentYearTaxSavings.GreaterThan(decimal.Zero),
		"deferring should save tax now, got %s", result.CurrentYearTaxSavings)
	assert.True(t, decimal.NewFromFloat(0.22).Equal(result.BreakEvenRate),
		"break-even should be post-deferral marginal rate, got %s", result.BreakEvenRate)
	assert.True(t, result.CurrentTraditional.TotalTax.LessThan(result.CurrentRoth.TotalTax))
}

func TestCompareTaxImpactZeroContribution(t *testing.T) {
	calculator := NewTaxCalculator(domain.FilingSingle, decimal.Zero)

	result := calculator.CompareTaxImpact(
		decimal.NewFromInt(100000),
		decimal.Zero,
		decimal.NewFromInt(60000),
	)

	assert.True(t, result.CurrentYearTaxSavings.IsZero())
	assert.True(t, result.BreakEvenRate.IsZero())
}

func TestCalculateOptimalTraditional(t *testing.T) {
	calculator := NewTaxCalculator(domain.FilingSingle, decimal.Zero)
	maxContribution := decimal.NewFromInt(23000)

	t.Run("high current bracket favors full traditional", func(t *testing.T) {
		// Taxable 85400 sits in the 22% bracket; floor for a 12% retirement
		// rate is 47150, so the unclamped reduction exceeds the cap.
		optimal, explanation := calculator.CalculateOptimalTraditional(
			decimal.NewFromInt(100000), maxContribution, decimal.NewFromFloat(0.12))
		assert.True(t, maxContribution.Equal(optimal), "got %s", optimal)
		assert.Contains(t, explanation, "Use 100% Traditional")
	})

	t.Run("high retirement rate favors full roth", func(t *testing.T) {
		optimal, explanation := calculator.CalculateOptimalTraditional(
			decimal.NewFromInt(100000), maxContribution, decimal.NewFromFloat(0.37))
		assert.True(t, optimal.IsZero(), "got %s", optimal)
		assert.Contains(t, explanation, "Use 100% Roth")
	})

	t.Run("partial reduction down to bracket floor", func(t *testing.T) {
		// Taxable 60400, floor for a 15% retirement rate is 47150.
		optimal, explanation := calculator.CalculateOptimalTraditional(
			decimal.NewFromInt(75000), maxContribution, decimal.NewFromFloat(0.15))
		require.True(t, decimal.NewFromInt(13250).Equal(optimal), "got %s", optimal)
		assert.Contains(t, explanation, "Traditional ($13250)")
		assert.Contains(t, explanation, "rest as Roth")
	})
}

func TestTaxCalculatorWithRulesFallback(t *testing.T) {
	rules := &domain.TaxRules{
		Year: 2026,
		BracketsSingle: []domain.BracketRule{
			{UpTo: decimal.NewFromInt(50000), Rate: decimal.NewFromFloat(0.15)},
			{UpTo: decimal.NewFromInt(999999999), Rate: decimal.NewFromFloat(0.30)},
		},
	}

	calculator := NewTaxCalculatorWithRules(rules, domain.FilingSingle, decimal.Zero)
	assert.Equal(t, 2026, calculator.Year)
	assert.Len(t, calculator.Brackets, 2)
	// Unspecified sections keep the compiled-in defaults.
	assert.True(t, decimal.NewFromInt(14600).Equal(calculator.StandardDeduction))
	assert.True(t, decimal.NewFromFloat(0.062).Equal(calculator.FICA.SocialSecurityRate))

	result := calculator.CalculateTax(decimal.NewFromInt(60000), decimal.NewFromInt(60000), false)
	// 50000*0.15 + 10000*0.30
	assert.True(t, decimal.NewFromInt(10500).Equal(result.FederalTax), "got %s", result.FederalTax)
}
