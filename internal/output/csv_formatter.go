package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/planwell/retirement-compare/internal/domain"
)

// CSVFormatter exports the year-by-year projections, one row per simulated
// year per side.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(result *domain.ComparisonResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Side", "Year", "Age", "Contribution", "EmployerMatch", "Growth", "Balance", "TaxableBalance", "TotalWealth", "AfterTaxWealth"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, set := range []struct {
		side        string
		projections []domain.YearlyProjection
	}{
		{"traditional", result.TraditionalProjections},
		{"roth", result.RothProjections},
	} {
		for _, p := range set.projections {
			row := []string{
				set.side,
				strconv.Itoa(p.Year),
				strconv.Itoa(p.Age),
				p.Contribution.StringFixed(2),
				p.EmployerMatch.StringFixed(2),
				p.Growth.StringFixed(2),
				p.Balance.StringFixed(2),
				p.TaxableBalance.StringFixed(2),
				p.TotalWealth.StringFixed(2),
				p.AfterTaxWealth.StringFixed(2),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
