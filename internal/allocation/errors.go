package allocation

// ValidationError is returned when an operation or a save would violate an
// invariant of the allocation set. It is always recoverable, the allocation set
// is left unchanged.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

var (
	ErrMinOneAllocation  = ValidationError{"min one allocation"}
	ErrTotalPercent      = ValidationError{"allocations must sum to 100%"}
	ErrMissingDepartment = ValidationError{"missing department"}
	ErrMissingCompany    = ValidationError{"a company must be chosen before adding allocations"}
	ErrIndexOutOfRange   = ValidationError{"there is no allocation at this index"}
	ErrNegativeRemainder = ValidationError{"the percentage leaves a negative remainder for the other allocations"}
	ErrPercentOutOfRange = ValidationError{"the percentage of an allocation must be between 0 and 100"}
)
