package models

import (
	"fmt"
	"strings"

	"github.com/backoffice-dms/allocations/internal/allocation"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Allocation is a persisted row of the allocation split of an invoice.
type Allocation struct {
	DefaultModel
	InvoiceID     uuid.UUID `gorm:"index"`
	Invoice       Invoice   `json:"-"`
	Position      int       // Position of the allocation in the set, starting at 0
	Company       string
	Brand         string
	Department    string
	Subdepartment string
	Responsible   string
	Comment       string
	Percent       decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Value         decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Locked        bool
	Destinations  []ReinvoiceDestination `gorm:"constraint:OnDelete:CASCADE"`
}

func (a Allocation) Self() string {
	return "Allocation"
}

// BeforeSave trims whitespace from string fields.
func (a *Allocation) BeforeSave(_ *gorm.DB) (err error) {
	a.Company = strings.TrimSpace(a.Company)
	a.Brand = strings.TrimSpace(a.Brand)
	a.Department = strings.TrimSpace(a.Department)
	a.Subdepartment = strings.TrimSpace(a.Subdepartment)
	a.Responsible = strings.TrimSpace(a.Responsible)
	a.Comment = strings.TrimSpace(a.Comment)

	return nil
}

// ReinvoiceDestination moves part of an allocation to another cost center.
type ReinvoiceDestination struct {
	DefaultModel
	AllocationID  uuid.UUID `gorm:"index"`
	Position      int
	Company       string
	Brand         string
	Department    string
	Subdepartment string
	Percentage    decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
}

func (d ReinvoiceDestination) Self() string {
	return "Reinvoice Destination"
}

// Split returns the allocation for the splitter.
func (a Allocation) Split() allocation.Allocation {
	split := allocation.Allocation{
		Details: allocation.Details{
			Company:       a.Company,
			Brand:         a.Brand,
			Department:    a.Department,
			Subdepartment: a.Subdepartment,
			Responsible:   a.Responsible,
			Comment:       a.Comment,
		},
		Percent: a.Percent,
		Value:   a.Value,
		Locked:  a.Locked,
	}

	for _, d := range a.Destinations {
		split.Destinations = append(split.Destinations, allocation.Destination{
			Company:       d.Company,
			Brand:         d.Brand,
			Department:    d.Department,
			Subdepartment: d.Subdepartment,
			Percentage:    d.Percentage,
		})
	}

	return split
}

// AllocationsOf converts the allocations of a splitter into models for the invoice.
func AllocationsOf(invoiceID uuid.UUID, split []allocation.Allocation) []Allocation {
	allocations := make([]Allocation, 0, len(split))

	for position, s := range split {
		a := Allocation{
			InvoiceID:     invoiceID,
			Position:      position,
			Company:       s.Company,
			Brand:         s.Brand,
			Department:    s.Department,
			Subdepartment: s.Subdepartment,
			Responsible:   s.Responsible,
			Comment:       s.Comment,
			Percent:       s.Percent,
			Value:         s.Value,
			Locked:        s.Locked,
		}

		for n, d := range s.Destinations {
			a.Destinations = append(a.Destinations, ReinvoiceDestination{
				Position:      n,
				Company:       d.Company,
				Brand:         d.Brand,
				Department:    d.Department,
				Subdepartment: d.Subdepartment,
				Percentage:    d.Percentage,
			})
		}

		allocations = append(allocations, a)
	}

	return allocations
}

// InvoiceAllocations returns the allocations of an invoice ordered by their position.
func InvoiceAllocations(db *gorm.DB, invoiceID uuid.UUID) ([]Allocation, error) {
	var allocations []Allocation

	err := db.
		Preload("Destinations", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("invoice_id = ?", invoiceID).
		Order("position ASC").
		Find(&allocations).Error
	if err != nil {
		return nil, err
	}

	return allocations, nil
}

// ReplaceAllocations replaces all allocations of an invoice in one transaction.
// Either the whole set is stored or nothing is changed.
func ReplaceAllocations(db *gorm.DB, invoiceID uuid.UUID, allocations []Allocation) ([]Allocation, error) {
	err := db.Transaction(func(tx *gorm.DB) error {
		// Verify that the invoice exists
		err := tx.First(&Invoice{}, "id = ?", invoiceID).Error
		if err != nil {
			return err
		}

		err = deleteAllocations(tx, invoiceID)
		if err != nil {
			return err
		}

		for i := range allocations {
			allocations[i].InvoiceID = invoiceID
			allocations[i].Position = i

			err = tx.Create(&allocations[i]).Error
			if err != nil {
				return fmt.Errorf("allocation %d: %w", i+1, err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return InvoiceAllocations(db, invoiceID)
}

// deleteAllocations permanently deletes all allocations of an invoice together
// with their reinvoice destinations.
func deleteAllocations(tx *gorm.DB, invoiceID uuid.UUID) error {
	var ids []uuid.UUID
	err := tx.Unscoped().Model(&Allocation{}).Where("invoice_id = ?", invoiceID).Pluck("id", &ids).Error
	if err != nil {
		return err
	}

	if len(ids) == 0 {
		return nil
	}

	err = tx.Unscoped().Where("allocation_id IN ?", ids).Delete(&ReinvoiceDestination{}).Error
	if err != nil {
		return err
	}

	return tx.Unscoped().Where("invoice_id = ?", invoiceID).Delete(&Allocation{}).Error
}

// RecalculateAllocationValues derives the value of every allocation of the
// invoice from its percent and the current base value of the invoice.
// Percentages are not changed.
func RecalculateAllocationValues(tx *gorm.DB, invoice Invoice) error {
	allocations, err := InvoiceAllocations(tx, invoice.ID)
	if err != nil {
		return err
	}

	split := make([]allocation.Allocation, 0, len(allocations))
	for _, a := range allocations {
		split = append(split, a.Split())
	}

	for i, a := range allocation.New(invoice.BaseValue(), split).Allocations() {
		err = tx.Model(&allocations[i]).Update("value", a.Value).Error
		if err != nil {
			return err
		}
	}

	return nil
}
