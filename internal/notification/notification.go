// Package notification informs the people responsible for allocations that
// the allocations of an invoice were saved.
package notification

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Recipient is the person responsible for one saved allocation.
type Recipient struct {
	Company     string
	Department  string
	Responsible string
	Percent     decimal.Decimal
	Value       decimal.Decimal
}

// Saved describes an allocation set that was saved.
type Saved struct {
	InvoiceID     uuid.UUID
	InvoiceNumber string
	BaseValue     decimal.Decimal
	Recipients    []Recipient
}

// Notifier sends notifications about saved allocations.
type Notifier interface {
	AllocationsSaved(ctx context.Context, saved Saved) error
}

// Log is a Notifier that writes notifications to a logger.
type Log struct {
	Logger zerolog.Logger
}

// NewLog returns a Log notifier writing to logger.
func NewLog(logger zerolog.Logger) *Log {
	return &Log{Logger: logger}
}

func (l *Log) AllocationsSaved(ctx context.Context, saved Saved) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, r := range saved.Recipients {
		// Allocations without a responsible person have no one to notify
		if r.Responsible == "" {
			continue
		}

		l.Logger.Info().
			Str("invoice-id", saved.InvoiceID.String()).
			Str("invoice", saved.InvoiceNumber).
			Str("responsible", r.Responsible).
			Str("company", r.Company).
			Str("department", r.Department).
			Str("percent", r.Percent.String()).
			Str("value", r.Value.StringFixed(2)).
			Msg("Allocation saved")
	}

	return nil
}
