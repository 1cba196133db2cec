package main

import (
	"fmt"
	"os"

	calc "github.com/planwell/retirement-compare/internal/calculation"
	"github.com/planwell/retirement-compare/internal/domain"
	"github.com/shopspring/decimal"
)

// Prints the federal tax owed and the combined marginal rate at a sweep of
// taxable incomes, for eyeballing bracket boundaries against IRS tables.
func main() {
	filingStatus := domain.FilingSingle
	if len(os.Args) > 1 && os.Args[1] == "mfj" {
		filingStatus = domain.FilingMarriedJointly
	}

	tc := calc.NewTaxCalculator(filingStatus, decimal.Zero)

	fmt.Println("TaxableIncome,FederalTax,MarginalRate,EffectiveRate")
	for income := int64(0); income <= 800000; income += 10000 {
		d := decimal.NewFromInt(income)
		r := tc.CalculateTax(d, d, false)
		fmt.Printf("%d,%s,%s,%s\n", income, r.FederalTax.StringFixed(2), r.MarginalRate.StringFixed(4), r.EffectiveRate.StringFixed(4))
	}
}
