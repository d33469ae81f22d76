package v1

import (
	"fmt"
	"strings"
	"time"

	"github.com/backoffice-dms/allocations/internal/models"
	"github.com/backoffice-dms/allocations/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type InvoiceEditable struct {
	Number          string           `json:"number" example:"R-2024-0042"`                                   // Number of the invoice. Must be unique
	Supplier        string           `json:"supplier" example:"Office Supplies Ltd."`                        // Name of the supplier. Allocation rules are matched against it
	Company         string           `json:"company" example:"ACME"`                                         // Company that received the invoice
	IssueDate       time.Time        `json:"issueDate" example:"2024-03-14T00:00:00Z"`                       // Date the invoice was issued. Defaults to the time of creation
	AccountingMonth types.Month      `json:"accountingMonth" swaggertype:"string" example:"2024-03"`         // Month the invoice is accounted in. Defaults to the month of the issue date
	Currency        string           `json:"currency" example:"EUR"`                                         // ISO 4217 currency code
	GrossValue      decimal.Decimal  `json:"grossValue" swaggertype:"number" example:"1190" minimum:"0"`     // Gross value of the invoice
	NetValue        decimal.Decimal  `json:"netValue" swaggertype:"number" example:"1000" minimum:"0"`       // Net value of the invoice
	SplitBase       models.SplitBase `json:"splitBase" example:"gross" enums:"gross,net" default:"gross"`    // The value that is split across the allocations
	Note            string           `json:"note" example:"Paper for the second quarter"`                    // A note about the invoice
}

func (editable InvoiceEditable) model() models.Invoice {
	return models.Invoice{
		Number:          editable.Number,
		Supplier:        editable.Supplier,
		Company:         editable.Company,
		IssueDate:       editable.IssueDate,
		AccountingMonth: editable.AccountingMonth,
		Currency:        editable.Currency,
		GrossValue:      editable.GrossValue,
		NetValue:        editable.NetValue,
		SplitBase:       editable.SplitBase,
		Note:            editable.Note,
	}
}

// apply sets the fields of the invoice that are listed in fields.
func (editable InvoiceEditable) apply(invoice *models.Invoice, fields []any) {
	for _, field := range fields {
		switch field {
		case "Number":
			invoice.Number = editable.Number
		case "Supplier":
			invoice.Supplier = editable.Supplier
		case "Company":
			invoice.Company = editable.Company
		case "IssueDate":
			invoice.IssueDate = editable.IssueDate
		case "AccountingMonth":
			invoice.AccountingMonth = editable.AccountingMonth
		case "Currency":
			invoice.Currency = editable.Currency
		case "GrossValue":
			invoice.GrossValue = editable.GrossValue
		case "NetValue":
			invoice.NetValue = editable.NetValue
		case "SplitBase":
			invoice.SplitBase = editable.SplitBase
		case "Note":
			invoice.Note = editable.Note
		}
	}
}

type InvoiceListResponse struct {
	Data       []Invoice   `json:"data"`                                                          // List of Invoices
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type InvoiceCreateResponse struct {
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []InvoiceResponse `json:"data"`                                                          // List of created Invoices
}

func (i *InvoiceCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	i.Data = append(i.Data, InvoiceResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type InvoiceResponse struct {
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this Invoice
	Data  *Invoice `json:"data"`                                                          // The Invoice data, if creation was successful
}

type InvoiceLinks struct {
	Self        string `json:"self" example:"https://example.com/api/v1/invoices/3b1ea324-d438-4419-882a-2fc91d71772f"`                    // The invoice itself
	Allocations string `json:"allocations" example:"https://example.com/api/v1/invoices/3b1ea324-d438-4419-882a-2fc91d71772f/allocations"` // The allocations of the invoice
}

// Invoice is the API representation of an Invoice.
type Invoice struct {
	models.DefaultModel
	InvoiceEditable
	BaseValue decimal.Decimal `json:"baseValue" swaggertype:"number" example:"1190"` // The value that is split across the allocations, selected by splitBase
	Links     InvoiceLinks    `json:"links"`
}

func newInvoice(c *gin.Context, model models.Invoice) Invoice {
	url := c.GetString(string(models.DBContextURL))
	self := fmt.Sprintf("%s/v1/invoices/%s", url, model.ID)

	return Invoice{
		DefaultModel: model.DefaultModel,
		InvoiceEditable: InvoiceEditable{
			Number:          model.Number,
			Supplier:        model.Supplier,
			Company:         model.Company,
			IssueDate:       model.IssueDate,
			AccountingMonth: model.AccountingMonth,
			Currency:        model.Currency,
			GrossValue:      model.GrossValue,
			NetValue:        model.NetValue,
			SplitBase:       model.SplitBase,
			Note:            model.Note,
		},
		BaseValue: model.BaseValue(),
		Links: InvoiceLinks{
			Self:        self,
			Allocations: self + "/allocations",
		},
	}
}

// InvoiceQueryFilter contains the fields that Invoices can be filtered with.
type InvoiceQueryFilter struct {
	Number   string `form:"number" filterField:"false"`   // By number, partial match
	Supplier string `form:"supplier" filterField:"false"` // By supplier, partial match
	Company  string `form:"company"`                      // By receiving company
	Currency string `form:"currency"`                     // By currency
	Month    string `form:"month" filterField:"false"`    // By accounting month in YYYY-MM format
	Search   string `form:"search" filterField:"false"`   // By string in number, supplier or note
	Offset   uint   `form:"offset" filterField:"false"`   // The offset of the first Invoice returned. Defaults to 0.
	Limit    int    `form:"limit" filterField:"false"`    // Maximum number of Invoices to return. Defaults to 50.
}

func (f InvoiceQueryFilter) model() models.Invoice {
	return models.Invoice{
		Company:  f.Company,
		Currency: strings.ToUpper(f.Currency),
	}
}
