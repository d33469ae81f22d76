package v1

import (
	"fmt"

	"github.com/backoffice-dms/allocations/internal/allocation"
	"github.com/backoffice-dms/allocations/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AllocationItem is a single allocation in the format the allocations of an
// invoice are stored with.
type AllocationItem struct {
	Company               string                 `json:"company" example:"ACME"`                                           // Company the cost is allocated to
	Brand                 *string                `json:"brand" example:"Shiny"`                                            // Brand the cost is allocated to
	Department            string                 `json:"department" example:"Sales"`                                       // Department the cost is allocated to. Must be set to save
	Subdepartment         *string                `json:"subdepartment" example:"Export"`                                   // Subdepartment the cost is allocated to
	AllocationPercent     decimal.Decimal        `json:"allocation_percent" swaggertype:"number" example:"40"`             // Share of the split value in percent
	AllocationValue       decimal.Decimal        `json:"allocation_value" swaggertype:"number" example:"476"`              // Share of the split value. Always derived from the percentage
	Responsible           *string                `json:"responsible" example:"jane.doe"`                                   // Person responsible for the allocation
	ReinvoiceDestinations []ReinvoiceDestination `json:"reinvoice_destinations"`                                           // Cost centers the allocation is reinvoiced to
	Comment               *string                `json:"comment" example:"Trade fair"`                                     // A comment on the allocation
	Locked                bool                   `json:"locked" example:"false"`                                           // Locked allocations keep their percentage when other allocations change
}

// ReinvoiceDestination is a cost center an allocation is reinvoiced to.
type ReinvoiceDestination struct {
	Company       string          `json:"company" example:"ACME Logistics"`             // Company the allocation is reinvoiced to
	Brand         *string         `json:"brand" example:"Shiny"`                        // Brand the allocation is reinvoiced to
	Department    string          `json:"department" example:"Warehouse"`               // Department the allocation is reinvoiced to
	Subdepartment *string         `json:"subdepartment" example:"Inbound"`              // Subdepartment the allocation is reinvoiced to
	Percentage    decimal.Decimal `json:"percentage" swaggertype:"number" example:"50"` // Share of the allocation in percent
}

func (item AllocationItem) split() allocation.Allocation {
	a := allocation.Allocation{
		Details: allocation.Details{
			Company:       item.Company,
			Brand:         stringValue(item.Brand),
			Department:    item.Department,
			Subdepartment: stringValue(item.Subdepartment),
			Responsible:   stringValue(item.Responsible),
			Comment:       stringValue(item.Comment),
		},
		Percent:      item.AllocationPercent,
		Value:        item.AllocationValue,
		Locked:       item.Locked,
		Destinations: destinations(item.ReinvoiceDestinations),
	}

	return a
}

func destinations(items []ReinvoiceDestination) []allocation.Destination {
	var d []allocation.Destination
	for _, item := range items {
		d = append(d, allocation.Destination{
			Company:       item.Company,
			Brand:         stringValue(item.Brand),
			Department:    item.Department,
			Subdepartment: stringValue(item.Subdepartment),
			Percentage:    item.Percentage,
		})
	}
	return d
}

func newAllocationItem(a allocation.Allocation) AllocationItem {
	item := AllocationItem{
		Company:               a.Company,
		Brand:                 nullable(a.Brand),
		Department:            a.Department,
		Subdepartment:         nullable(a.Subdepartment),
		AllocationPercent:     a.Percent,
		AllocationValue:       a.Value,
		Responsible:           nullable(a.Responsible),
		ReinvoiceDestinations: make([]ReinvoiceDestination, 0, len(a.Destinations)),
		Comment:               nullable(a.Comment),
		Locked:                a.Locked,
	}

	for _, d := range a.Destinations {
		item.ReinvoiceDestinations = append(item.ReinvoiceDestinations, ReinvoiceDestination{
			Company:       d.Company,
			Brand:         nullable(d.Brand),
			Department:    d.Department,
			Subdepartment: nullable(d.Subdepartment),
			Percentage:    d.Percentage,
		})
	}

	return item
}

func newAllocationItems(allocations []allocation.Allocation) []AllocationItem {
	items := make([]AllocationItem, 0, len(allocations))
	for _, a := range allocations {
		items = append(items, newAllocationItem(a))
	}
	return items
}

// nullable returns nil for empty strings.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// AllocationSetEditable is the allocation set of an invoice as it is sent to be stored.
type AllocationSetEditable struct {
	Allocations      []AllocationItem `json:"allocations"`                      // The allocations. The values are derived from the percentages and the value of the invoice
	SendNotification bool             `json:"send_notification" example:"true"` // Notify the responsible persons after saving
}

// DestinationReport summarizes the reinvoice destinations of one allocation.
type DestinationReport struct {
	Total    decimal.Decimal `json:"total" swaggertype:"number" example:"100"` // Sum of the reinvoice destination percentages
	Balanced bool            `json:"balanced" example:"true"`                  // true if there are no destinations or their percentages sum up to 100
}

// ValidationReport is the result of validating an allocation set.
type ValidationReport struct {
	TotalPercent          decimal.Decimal     `json:"total_percent" swaggertype:"number" example:"100"` // Sum of all percentages
	TotalValue            decimal.Decimal     `json:"total_value" swaggertype:"number" example:"1190"`  // Sum of all values
	Balanced              bool                `json:"balanced" example:"true"`                          // true if the allocations sum up to 100% (up to 100.1% to allow for rounding)
	ReinvoiceDestinations []DestinationReport `json:"reinvoice_destinations"`                           // Summary of the reinvoice destinations, one entry per allocation
}

func newValidationReport(r allocation.Report) ValidationReport {
	report := ValidationReport{
		TotalPercent:          r.TotalPercent,
		TotalValue:            r.TotalValue,
		Balanced:              r.Balanced,
		ReinvoiceDestinations: make([]DestinationReport, 0, len(r.Destinations)),
	}

	for _, d := range r.Destinations {
		report.ReinvoiceDestinations = append(report.ReinvoiceDestinations, DestinationReport{
			Total:    d.Total,
			Balanced: d.Balanced,
		})
	}

	return report
}

type AllocationSetLinks struct {
	Self    string `json:"self" example:"https://example.com/api/v1/invoices/3b1ea324-d438-4419-882a-2fc91d71772f/allocations"` // The allocation set itself
	Invoice string `json:"invoice" example:"https://example.com/api/v1/invoices/3b1ea324-d438-4419-882a-2fc91d71772f"`         // The invoice the allocations belong to
}

// AllocationSet is the API representation of the stored allocations of an invoice.
type AllocationSet struct {
	InvoiceID   uuid.UUID          `json:"invoiceId" example:"3b1ea324-d438-4419-882a-2fc91d71772f"` // ID of the invoice
	BaseValue   decimal.Decimal    `json:"baseValue" swaggertype:"number" example:"1190"`           // The value that is split
	Allocations []AllocationItem   `json:"allocations"`                                              // The allocations
	Report      ValidationReport   `json:"report"`                                                   // Validation report for the allocations
	Links       AllocationSetLinks `json:"links"`
}

func newAllocationSet(c *gin.Context, invoice models.Invoice, s *allocation.Splitter) AllocationSet {
	url := c.GetString(string(models.DBContextURL))
	invoiceURL := fmt.Sprintf("%s/v1/invoices/%s", url, invoice.ID)

	// Validation errors are part of the report
	report, _ := s.Validate()

	return AllocationSet{
		InvoiceID:   invoice.ID,
		BaseValue:   s.BaseValue(),
		Allocations: newAllocationItems(s.Allocations()),
		Report:      newValidationReport(report),
		Links: AllocationSetLinks{
			Self:    invoiceURL + "/allocations",
			Invoice: invoiceURL,
		},
	}
}

type AllocationSetResponse struct {
	Error *string        `json:"error" example:"allocations must sum to 100%"` // The error, if any occurred
	Data  *AllocationSet `json:"data"`                                         // The allocation set
}
