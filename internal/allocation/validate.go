package allocation

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// MaxOverdraft is the amount by which the total percentage may exceed 100
// to allow for rounding.
var MaxOverdraft = decimal.RequireFromString("0.1")

// DestinationReport summarizes the reinvoice destinations of one allocation.
type DestinationReport struct {
	Total    decimal.Decimal // Sum of all destination percentages
	Balanced bool            // true if there are no destinations or they sum up to 100
}

// Report is the result of validating an allocation set for saving.
type Report struct {
	TotalPercent decimal.Decimal
	TotalValue   decimal.Decimal
	Balanced     bool                // true if TotalPercent is within [100, 100 + MaxOverdraft]
	Destinations []DestinationReport // One entry per allocation, in the same order
}

// Validate checks that the allocation set can be saved.
//
// The total percentage must be within [100, 100 + MaxOverdraft], the
// percentage of every allocation within [0, 100] and every allocation must
// have a department. Destination totals are reported but are
// never an error. The report is complete even when an error is returned.
func (s *Splitter) Validate() (Report, error) {
	total := s.TotalPercent()

	report := Report{
		TotalPercent: total,
		TotalValue:   s.TotalValue(),
		Balanced:     !total.LessThan(hundred) && !total.GreaterThan(hundred.Add(MaxOverdraft)),
		Destinations: make([]DestinationReport, 0, len(s.allocations)),
	}

	for _, a := range s.allocations {
		destinationTotal := a.DestinationTotal()
		report.Destinations = append(report.Destinations, DestinationReport{
			Total:    destinationTotal,
			Balanced: len(a.Destinations) == 0 || destinationTotal.Equal(hundred),
		})
	}

	if !report.Balanced {
		return report, ErrTotalPercent
	}

	for i, a := range s.allocations {
		if a.Percent.IsNegative() || a.Percent.GreaterThan(hundred) {
			return report, fmt.Errorf("allocation %d: %w", i+1, ErrPercentOutOfRange)
		}
	}

	for i, a := range s.allocations {
		if strings.TrimSpace(a.Department) == "" {
			return report, fmt.Errorf("allocation %d: %w", i+1, ErrMissingDepartment)
		}
	}

	return report, nil
}
