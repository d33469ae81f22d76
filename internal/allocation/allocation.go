// Package allocation implements the splitting of a base value across a set of
// cost allocations.
//
// A Splitter owns one allocation set and keeps every allocation's value
// consistent with its percent of the base value. It does no I/O and is not
// safe for concurrent use; callers serialize access to a Splitter.
package allocation

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Details are the descriptive fields of an allocation. They carry no
// computational role.
type Details struct {
	Company       string
	Brand         string
	Department    string
	Subdepartment string
	Responsible   string
	Comment       string
}

// Destination re-attributes part of an allocation to another cost center.
//
// The percentages of all destinations of an allocation are independent of the
// allocation split and are not required to sum up to 100.
type Destination struct {
	Company       string
	Brand         string
	Department    string
	Subdepartment string
	Percentage    decimal.Decimal
}

// Allocation is a single row of the split.
type Allocation struct {
	Details
	Percent      decimal.Decimal
	Value        decimal.Decimal
	Locked       bool
	Destinations []Destination
}

// DestinationTotal returns the sum of the percentages of all reinvoice destinations.
func (a Allocation) DestinationTotal() decimal.Decimal {
	total := decimal.Zero
	for _, d := range a.Destinations {
		total = total.Add(d.Percentage)
	}
	return total
}

// clone returns a copy of the allocation that does not share the destinations slice.
func (a Allocation) clone() Allocation {
	if a.Destinations != nil {
		a.Destinations = append([]Destination(nil), a.Destinations...)
	}
	return a
}

// valueOf returns the share of base that percent represents.
func valueOf(base, percent decimal.Decimal) decimal.Decimal {
	return base.Mul(percent).Div(hundred)
}
