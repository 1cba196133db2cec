package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultComparisonRequestIsValid(t *testing.T) {
	req := DefaultComparisonRequest()
	require.NoError(t, req.Validate())
	assert.Equal(t, ContributionModePercentage, req.ContributionMode)
	assert.Equal(t, TimingMonthly, req.ContributionTiming)
	assert.Equal(t, FilingSingle, req.FilingStatus)
}

func TestApplyDefaults(t *testing.T) {
	req := ComparisonRequest{
		CurrentAge:    30,
		RetirementAge: 65,
		AnnualIncome:  80000,
		CurrentState:  "WA",
	}
	req.ApplyDefaults()

	assert.Equal(t, ContributionModePercentage, req.ContributionMode)
	assert.Equal(t, TimingMonthly, req.ContributionTiming)
	assert.Equal(t, FilingSingle, req.FilingStatus)
	// Retirement state follows the current state when unset.
	assert.Equal(t, "WA", req.RetirementState)
	// Numeric zeroes are meaningful and stay put.
	assert.Equal(t, float64(0), req.ContributionAmount)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ComparisonRequest)
		wantErr string
	}{
		{"current age too low", func(r *ComparisonRequest) { r.CurrentAge = 17 }, "current age"},
		{"current age too high", func(r *ComparisonRequest) { r.CurrentAge = 71 }, "current age"},
		{"retirement age too low", func(r *ComparisonRequest) { r.RetirementAge = 49 }, "retirement age"},
		{"retirement before current", func(r *ComparisonRequest) { r.CurrentAge = 66; r.RetirementAge = 65 }, "greater than current age"},
		{"negative income", func(r *ComparisonRequest) { r.AnnualIncome = -1 }, "annual income"},
		{"negative bonus", func(r *ComparisonRequest) { r.AnnualBonus = -1 }, "annual bonus"},
		{"negative 401k balance", func(r *ComparisonRequest) { r.Initial401kBalance = -1 }, "401k balance"},
		{"bad mode", func(r *ComparisonRequest) { r.ContributionMode = "weekly" }, "contribution mode"},
		{"negative amount", func(r *ComparisonRequest) { r.ContributionAmount = -5 }, "contribution amount"},
		{"bad timing", func(r *ComparisonRequest) { r.ContributionTiming = "quarterly" }, "contribution timing"},
		{"negative mega backdoor", func(r *ComparisonRequest) { r.MegaBackdoorContribution = -1 }, "mega backdoor"},
		{"split out of range", func(r *ComparisonRequest) { r.TraditionalSplit = 101 }, "traditional split"},
		{"match percent out of range", func(r *ComparisonRequest) { r.EmployerMatchPercent = 101 }, "employer match percent"},
		{"bad filing status", func(r *ComparisonRequest) { r.FilingStatus = "head_of_household" }, "filing status"},
		{"savings rate out of range", func(r *ComparisonRequest) { r.SavingsRate = 101 }, "savings rate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := DefaultComparisonRequest()
			tt.mutate(&req)
			err := req.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
