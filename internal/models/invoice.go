package models

import (
	"strings"
	"time"

	"github.com/backoffice-dms/allocations/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"gorm.io/gorm"
)

// SplitBase selects the value of an invoice that is split across allocations.
type SplitBase string

const (
	SplitBaseGross SplitBase = "gross"
	SplitBaseNet   SplitBase = "net"
)

// Invoice is a supplier invoice whose value is split across cost allocations.
type Invoice struct {
	DefaultModel
	Number          string          `gorm:"uniqueIndex"`
	Supplier        string
	Company         string // Company that received the invoice
	IssueDate       time.Time
	AccountingMonth types.Month
	Currency        string
	GrossValue      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	NetValue        decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	SplitBase       SplitBase
	Note            string
}

func (i Invoice) Self() string {
	return "Invoice"
}

// BaseValue returns the value that the allocations split.
func (i Invoice) BaseValue() decimal.Decimal {
	if i.SplitBase == SplitBaseNet {
		return i.NetValue
	}
	return i.GrossValue
}

func (i *Invoice) AfterFind(tx *gorm.DB) (err error) {
	err = i.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	i.IssueDate = i.IssueDate.In(time.UTC)
	return nil
}

// BeforeSave
//   - trims whitespace from string fields
//   - defaults the split base to gross and the accounting month to the month of the issue date
//   - validates the invoice
func (i *Invoice) BeforeSave(_ *gorm.DB) (err error) {
	i.Number = strings.TrimSpace(i.Number)
	i.Supplier = strings.TrimSpace(i.Supplier)
	i.Company = strings.TrimSpace(i.Company)
	i.Note = strings.TrimSpace(i.Note)
	i.Currency = strings.ToUpper(strings.TrimSpace(i.Currency))

	if i.SplitBase == "" {
		i.SplitBase = SplitBaseGross
	}

	if i.IssueDate.IsZero() {
		i.IssueDate = time.Now().In(time.UTC)
	} else {
		i.IssueDate = i.IssueDate.In(time.UTC)
	}

	if i.AccountingMonth.IsZero() {
		i.AccountingMonth = types.MonthOf(i.IssueDate)
	}

	return i.Validate()
}

// BeforeDelete deletes the allocations of the invoice.
func (i *Invoice) BeforeDelete(tx *gorm.DB) (err error) {
	return deleteAllocations(tx, i.ID)
}

// Validate checks that the invoice can be stored.
func (i Invoice) Validate() error {
	if i.Number == "" {
		return ErrInvoiceNumberEmpty
	}

	if i.Currency != "" {
		if _, err := currency.ParseISO(i.Currency); err != nil {
			return ErrInvoiceCurrencyInvalid
		}
	}

	if i.GrossValue.IsNegative() || i.NetValue.IsNegative() {
		return ErrInvoiceValueNegative
	}

	if i.SplitBase != SplitBaseGross && i.SplitBase != SplitBaseNet {
		return ErrSplitBaseInvalid
	}

	return nil
}
