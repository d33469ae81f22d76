package allocation

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// RemainderPolicy decides what RedistributeOthers does when the changed
// allocation and the locked allocations together exceed 100%.
type RemainderPolicy int

const (
	// RemainderAllowNegative distributes the negative remainder, leaving the
	// other unlocked allocations with negative percentages until the user
	// corrects the split.
	RemainderAllowNegative RemainderPolicy = iota

	// RemainderClampZero sets the other unlocked allocations to 0%.
	RemainderClampZero

	// RemainderReject rejects the edit with ErrNegativeRemainder.
	RemainderReject
)

var remainderPolicyNames = map[RemainderPolicy]string{
	RemainderAllowNegative: "allow-negative",
	RemainderClampZero:     "clamp-zero",
	RemainderReject:        "reject",
}

func (p RemainderPolicy) String() string {
	if name, ok := remainderPolicyNames[p]; ok {
		return name
	}
	return fmt.Sprintf("RemainderPolicy(%d)", int(p))
}

// ParseRemainderPolicy returns the policy with the name. The names are
// "allow-negative", "clamp-zero" and "reject".
func ParseRemainderPolicy(name string) (RemainderPolicy, error) {
	for p, n := range remainderPolicyNames {
		if n == name {
			return p, nil
		}
	}

	return RemainderAllowNegative, fmt.Errorf("unknown remainder policy %q", name)
}

// Option configures a Splitter.
type Option func(*Splitter)

// WithRemainderPolicy sets the policy for negative remainders.
func WithRemainderPolicy(p RemainderPolicy) Option {
	return func(s *Splitter) {
		s.policy = p
	}
}

// Splitter keeps percent and value of a set of allocations consistent
// relative to a base value.
type Splitter struct {
	base        decimal.Decimal
	allocations []Allocation
	policy      RemainderPolicy
}

// New returns a Splitter for a copy of the allocations passed in.
//
// Percentages are rounded to PercentScale and the value of every allocation is
// derived from its percent and the base value.
func New(base decimal.Decimal, allocations []Allocation, opts ...Option) *Splitter {
	s := &Splitter{
		base:        base,
		allocations: make([]Allocation, 0, len(allocations)),
	}

	for _, a := range allocations {
		a = a.clone()
		a.Percent = a.Percent.Round(PercentScale)
		s.allocations = append(s.allocations, a)
	}

	for _, opt := range opts {
		opt(s)
	}

	s.recalculate()
	return s
}

// BaseValue returns the base value the allocations are split from.
func (s *Splitter) BaseValue() decimal.Decimal {
	return s.base
}

// Len returns the number of allocations.
func (s *Splitter) Len() int {
	return len(s.allocations)
}

// Allocations returns a copy of the current allocation set.
func (s *Splitter) Allocations() []Allocation {
	out := make([]Allocation, 0, len(s.allocations))
	for _, a := range s.allocations {
		out = append(out, a.clone())
	}
	return out
}

// Clone returns an independent copy of the splitter.
func (s *Splitter) Clone() *Splitter {
	return &Splitter{
		base:        s.base,
		allocations: s.Allocations(),
		policy:      s.policy,
	}
}

// SetBaseValue sets a new base value and recalculates all values.
// Percentages are not changed.
func (s *Splitter) SetBaseValue(base decimal.Decimal) {
	s.base = base
	s.recalculate()
}

// ApplySmartSplit distributes the percentage not taken by locked allocations
// across the unlocked ones, using the SmartSplit shares in their order.
func (s *Splitter) ApplySmartSplit() {
	lockedPercent := decimal.Zero
	var unlocked []int

	for i, a := range s.allocations {
		if a.Locked {
			lockedPercent = lockedPercent.Add(a.Percent)
			continue
		}
		unlocked = append(unlocked, i)
	}

	remaining := decimal.Max(decimal.Zero, hundred.Sub(lockedPercent))

	for n, share := range splitShares(remaining, len(unlocked)) {
		s.allocations[unlocked[n]].Percent = share
	}

	s.recalculate()
}

// AddAllocation appends a new unlocked allocation and applies the smart split.
//
// The owning company must be set, otherwise ErrMissingCompany is returned.
func (s *Splitter) AddAllocation(details Details) error {
	if details.Company == "" {
		return ErrMissingCompany
	}

	s.allocations = append(s.allocations, Allocation{
		Details: details,
		Percent: decimal.Zero,
		Value:   decimal.Zero,
	})

	s.ApplySmartSplit()
	return nil
}

// RemoveAllocation removes the allocation at index i and applies the smart split.
// The last allocation cannot be removed.
func (s *Splitter) RemoveAllocation(i int) error {
	if !s.exists(i) {
		return ErrIndexOutOfRange
	}

	if len(s.allocations) == 1 {
		return ErrMinOneAllocation
	}

	s.allocations = append(s.allocations[:i], s.allocations[i+1:]...)
	s.ApplySmartSplit()
	return nil
}

// SetPercent sets the percentage of allocation i, clamped to [0, 100] and
// rounded to PercentScale, and redistributes the remainder across the other
// unlocked allocations.
func (s *Splitter) SetPercent(i int, percent decimal.Decimal) error {
	if !s.exists(i) {
		return ErrIndexOutOfRange
	}

	percent = decimal.Max(decimal.Zero, decimal.Min(percent.Round(PercentScale), hundred))
	return s.redistribute(i, percent)
}

// SetValue sets the value of allocation i by converting it to a percentage of
// the base value. With a base value of zero or less, the percentage is 0.
//
// Only the percentage is kept. The value is derived again from the percentage
// rounded to PercentScale, so it can differ from the value passed in beyond
// currency precision.
func (s *Splitter) SetValue(i int, value decimal.Decimal) error {
	if !s.exists(i) {
		return ErrIndexOutOfRange
	}

	percent := decimal.Zero
	if s.base.IsPositive() {
		percent = value.Mul(hundred).Div(s.base)
	}

	return s.SetPercent(i, percent)
}

// RedistributeOthers splits what is left of 100% after allocation i and all
// other locked allocations equally across the other unlocked allocations.
//
// If there are no other unlocked allocations, nothing is redistributed and the
// total may differ from 100%.
func (s *Splitter) RedistributeOthers(i int) error {
	if !s.exists(i) {
		return ErrIndexOutOfRange
	}

	return s.redistribute(i, s.allocations[i].Percent)
}

// ToggleLock flips the lock of allocation i. It does not redistribute.
func (s *Splitter) ToggleLock(i int) error {
	if !s.exists(i) {
		return ErrIndexOutOfRange
	}

	s.allocations[i].Locked = !s.allocations[i].Locked
	return nil
}

// SetDetails replaces the descriptive fields of allocation i.
func (s *Splitter) SetDetails(i int, details Details) error {
	if !s.exists(i) {
		return ErrIndexOutOfRange
	}

	s.allocations[i].Details = details
	return nil
}

// SetDestinations replaces the reinvoice destinations of allocation i.
func (s *Splitter) SetDestinations(i int, destinations []Destination) error {
	if !s.exists(i) {
		return ErrIndexOutOfRange
	}

	s.allocations[i].Destinations = append([]Destination(nil), destinations...)
	return nil
}

// TotalPercent returns the sum of all percentages.
func (s *Splitter) TotalPercent() decimal.Decimal {
	total := decimal.Zero
	for _, a := range s.allocations {
		total = total.Add(a.Percent)
	}
	return total
}

// TotalValue returns the sum of all values.
func (s *Splitter) TotalValue() decimal.Decimal {
	total := decimal.Zero
	for _, a := range s.allocations {
		total = total.Add(a.Value)
	}
	return total
}

// redistribute sets allocation i to percent and splits the remainder equally
// across the other unlocked allocations. Nothing is changed when an error is
// returned.
func (s *Splitter) redistribute(i int, percent decimal.Decimal) error {
	lockedPercent := decimal.Zero
	var others []int

	for j, a := range s.allocations {
		if j == i {
			continue
		}

		if a.Locked {
			lockedPercent = lockedPercent.Add(a.Percent)
			continue
		}
		others = append(others, j)
	}

	remaining := hundred.Sub(percent).Sub(lockedPercent)
	if remaining.IsNegative() && len(others) > 0 {
		switch s.policy {
		case RemainderClampZero:
			remaining = decimal.Zero
		case RemainderReject:
			return ErrNegativeRemainder
		}
	}

	s.allocations[i].Percent = percent
	s.allocations[i].Value = valueOf(s.base, percent)

	if len(others) == 0 {
		return nil
	}

	for n, share := range equalShares(remaining, len(others)) {
		j := others[n]
		s.allocations[j].Percent = share
		s.allocations[j].Value = valueOf(s.base, share)
	}

	return nil
}

// recalculate derives every value from its percent.
func (s *Splitter) recalculate() {
	for i := range s.allocations {
		s.allocations[i].Value = valueOf(s.base, s.allocations[i].Percent)
	}
}

func (s *Splitter) exists(i int) bool {
	return i >= 0 && i < len(s.allocations)
}
