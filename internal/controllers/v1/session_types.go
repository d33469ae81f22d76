package v1

import (
	"fmt"
	"time"

	"github.com/backoffice-dms/allocations/internal/allocation"
	"github.com/backoffice-dms/allocations/internal/models"
	"github.com/backoffice-dms/allocations/internal/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SessionCreate struct {
	InvoiceID uuid.UUID `json:"invoiceId" example:"3b1ea324-d438-4419-882a-2fc91d71772f"` // ID of the invoice to edit the allocations of
}

// AllocationDetails are the descriptive fields of a new allocation.
type AllocationDetails struct {
	Company       string  `json:"company" example:"ACME"`         // Company the cost is allocated to. Must be set
	Brand         *string `json:"brand" example:"Shiny"`          // Brand the cost is allocated to
	Department    string  `json:"department" example:"Sales"`     // Department the cost is allocated to
	Subdepartment *string `json:"subdepartment" example:"Export"` // Subdepartment the cost is allocated to
	Responsible   *string `json:"responsible" example:"jane.doe"` // Person responsible for the allocation
	Comment       *string `json:"comment" example:"Trade fair"`   // A comment on the allocation
}

func (d AllocationDetails) details() allocation.Details {
	return allocation.Details{
		Company:       d.Company,
		Brand:         stringValue(d.Brand),
		Department:    d.Department,
		Subdepartment: stringValue(d.Subdepartment),
		Responsible:   stringValue(d.Responsible),
		Comment:       stringValue(d.Comment),
	}
}

// AllocationPatch contains the changes to a single allocation of a session.
// Only fields that are set are changed.
//
// At most one of allocation_percent and allocation_value can be set. The
// other unlocked allocations are redistributed when one of them is set.
type AllocationPatch struct {
	Company               *string                 `json:"company" example:"ACME"`                               // Company the cost is allocated to
	Brand                 *string                 `json:"brand" example:"Shiny"`                                // Brand the cost is allocated to
	Department            *string                 `json:"department" example:"Sales"`                           // Department the cost is allocated to
	Subdepartment         *string                 `json:"subdepartment" example:"Export"`                       // Subdepartment the cost is allocated to
	Responsible           *string                 `json:"responsible" example:"jane.doe"`                       // Person responsible for the allocation
	Comment               *string                 `json:"comment" example:"Trade fair"`                         // A comment on the allocation
	AllocationPercent     *decimal.Decimal        `json:"allocation_percent" swaggertype:"number" example:"40"` // New percentage, clamped to [0, 100]
	AllocationValue       *decimal.Decimal        `json:"allocation_value" swaggertype:"number" example:"476"`  // New value, converted to a percentage of the split value
	ReinvoiceDestinations *[]ReinvoiceDestination `json:"reinvoice_destinations"`                               // Replaces all reinvoice destinations
}

// apply applies the changes to the allocation at index i of the splitter.
func (p AllocationPatch) apply(s *allocation.Splitter, i int) error {
	if p.AllocationPercent != nil && p.AllocationValue != nil {
		return errPercentAndValue
	}

	if i < 0 || i >= s.Len() {
		return allocation.ErrIndexOutOfRange
	}

	details := s.Allocations()[i].Details
	set := func(target *string, v *string) {
		if v != nil {
			*target = *v
		}
	}
	set(&details.Company, p.Company)
	set(&details.Brand, p.Brand)
	set(&details.Department, p.Department)
	set(&details.Subdepartment, p.Subdepartment)
	set(&details.Responsible, p.Responsible)
	set(&details.Comment, p.Comment)

	err := s.SetDetails(i, details)
	if err != nil {
		return err
	}

	if p.ReinvoiceDestinations != nil {
		err = s.SetDestinations(i, destinations(*p.ReinvoiceDestinations))
		if err != nil {
			return err
		}
	}

	switch {
	case p.AllocationPercent != nil:
		return s.SetPercent(i, *p.AllocationPercent)
	case p.AllocationValue != nil:
		return s.SetValue(i, *p.AllocationValue)
	}

	return nil
}

type SessionSave struct {
	SendNotification bool `json:"send_notification" example:"true"` // Notify the responsible persons after saving
}

type SessionLinks struct {
	Self        string `json:"self" example:"https://example.com/api/v1/allocation-sessions/0fbb7c09-9ea2-4f5e-8c1b-5b0e1d1a3f43"`                    // The session itself
	Invoice     string `json:"invoice" example:"https://example.com/api/v1/invoices/3b1ea324-d438-4419-882a-2fc91d71772f"`                            // The invoice the session edits the allocations of
	Allocations string `json:"allocations" example:"https://example.com/api/v1/allocation-sessions/0fbb7c09-9ea2-4f5e-8c1b-5b0e1d1a3f43/allocations"` // Add allocations
	SmartSplit  string `json:"smartSplit" example:"https://example.com/api/v1/allocation-sessions/0fbb7c09-9ea2-4f5e-8c1b-5b0e1d1a3f43/smart-split"`  // Apply the smart split
	Save        string `json:"save" example:"https://example.com/api/v1/allocation-sessions/0fbb7c09-9ea2-4f5e-8c1b-5b0e1d1a3f43/save"`               // Save the allocations to the invoice
}

// Session is the API representation of an allocation edit session.
type Session struct {
	ID          uuid.UUID        `json:"id" example:"0fbb7c09-9ea2-4f5e-8c1b-5b0e1d1a3f43"`        // ID of the session
	InvoiceID   uuid.UUID        `json:"invoiceId" example:"3b1ea324-d438-4419-882a-2fc91d71772f"` // ID of the invoice
	OpenedAt    time.Time        `json:"openedAt" example:"2024-03-14T09:12:44.491514Z"`           // Time the session was opened
	LastUsed    time.Time        `json:"lastUsed" example:"2024-03-14T09:20:01.048145Z"`           // Last time the session was used. Sessions expire after a period without use
	BaseValue   decimal.Decimal  `json:"baseValue" swaggertype:"number" example:"1190"`           // The value that is split
	Allocations []AllocationItem `json:"allocations"`                                              // The allocations as currently edited
	Report      ValidationReport `json:"report"`                                                   // Validation report for the allocations
	Links       SessionLinks     `json:"links"`
}

func newSession(c *gin.Context, session sessions.Session) Session {
	url := c.GetString(string(models.DBContextURL))
	self := fmt.Sprintf("%s/v1/allocation-sessions/%s", url, session.ID)

	// Validation errors are part of the report
	report, _ := session.Splitter.Validate()

	return Session{
		ID:          session.ID,
		InvoiceID:   session.InvoiceID,
		OpenedAt:    session.OpenedAt.In(time.UTC),
		LastUsed:    session.LastUsed.In(time.UTC),
		BaseValue:   session.Splitter.BaseValue(),
		Allocations: newAllocationItems(session.Splitter.Allocations()),
		Report:      newValidationReport(report),
		Links: SessionLinks{
			Self:        self,
			Invoice:     fmt.Sprintf("%s/v1/invoices/%s", url, session.InvoiceID),
			Allocations: self + "/allocations",
			SmartSplit:  self + "/smart-split",
			Save:        self + "/save",
		},
	}
}

type SessionResponse struct {
	Error *string  `json:"error" example:"min one allocation"` // The error, if any occurred
	Data  *Session `json:"data"`                               // The session
}
