package v1

import (
	"errors"
	"net/http"

	"github.com/backoffice-dms/allocations/internal/allocation"
	"github.com/backoffice-dms/allocations/internal/models"
	"github.com/backoffice-dms/allocations/internal/sessions"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate HTTP status for an error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) || errors.Is(err, sessions.ErrSessionNotFound) || errors.Is(err, allocation.ErrIndexOutOfRange) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

// Cleanup errors
var errCleanupConfirmation = errors.New("the confirmation for the cleanup API call was incorrect")

// Session errors
var (
	errSessionInvoiceMissing = errors.New("the invoiceId must be set to open an allocation session")
	errPercentAndValue       = errors.New("only one of percent and value can be set")
)

// Smart split errors
var errCountInvalid = errors.New("the count query parameter must be an integer between 1 and 1000")
