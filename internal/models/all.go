package models

import (
	json "github.com/goccy/go-json"
)

// Model is implemented by all resources.
type Model interface {
	Self() string                     // Human readable name of the resource
	Export() (json.RawMessage, error) // All instances of this model for export
}

// The "Registry" is a slice of all models available
//
// It is maintained so that operations that affect all models do not need to explicitly iterate over every single model,
// increasing the risk of forgetting something when adding a new model
var Registry = []Model{
	Invoice{},
	Allocation{},
	ReinvoiceDestination{},
	AllocationRule{},
}

// export returns all instances of a model, including deleted ones.
func export[T Invoice | Allocation | ReinvoiceDestination | AllocationRule]() (json.RawMessage, error) {
	var resources []T

	err := DB.Unscoped().Find(&resources).Error
	if err != nil {
		return nil, err
	}

	return json.Marshal(resources)
}

func (Invoice) Export() (json.RawMessage, error) {
	return export[Invoice]()
}

func (Allocation) Export() (json.RawMessage, error) {
	return export[Allocation]()
}

func (ReinvoiceDestination) Export() (json.RawMessage, error) {
	return export[ReinvoiceDestination]()
}

func (AllocationRule) Export() (json.RawMessage, error) {
	return export[AllocationRule]()
}
