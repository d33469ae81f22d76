package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

// Invoice errors
var (
	ErrInvoiceNumberNotUnique = errors.New("the invoice number must be unique")
	ErrInvoiceNumberEmpty     = errors.New("the invoice number must be set")
	ErrInvoiceCurrencyInvalid = errors.New("the currency must be a valid ISO 4217 currency code")
	ErrInvoiceValueNegative   = errors.New("gross and net value of an invoice must not be negative")
	ErrSplitBaseInvalid       = errors.New("the split base must be one of 'gross' or 'net'")
)

// Allocation rule errors
var (
	ErrAllocationRuleMatchEmpty   = errors.New("the match pattern of an allocation rule must be set")
	ErrAllocationRuleCompanyEmpty = errors.New("the company of an allocation rule must be set")
)
