package v1

import "github.com/prometheus/client_golang/prometheus"

// SavedAllocationSets counts the allocation sets that have been saved for invoices.
var SavedAllocationSets = prometheus.NewCounter(prometheus.CounterOpts{
	Name: "allocation_sets_saved_total",
	Help: "How many allocation sets have been saved for invoices.",
})
