package v1

import (
	"context"
	"net/http"

	"github.com/backoffice-dms/allocations/internal/allocation"
	"github.com/backoffice-dms/allocations/internal/httputil"
	"github.com/backoffice-dms/allocations/internal/models"
	"github.com/backoffice-dms/allocations/internal/notification"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Notifier is informed about saved allocation sets when the
// notification is requested.
var Notifier notification.Notifier = notification.NewLog(log.Logger)

// RemainderPolicy is used by all splitters created by the API.
var RemainderPolicy = allocation.RemainderAllowNegative

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Allocations
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/invoices/{id}/allocations [options]
func OptionsInvoiceAllocations(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.First(&models.Invoice{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	httputil.OptionsGetPut(c)
}

// @Summary		Get allocations
// @Description	Returns the allocations of an invoice together with a validation report
// @Tags			Allocations
// @Produce		json
// @Success		200	{object}	AllocationSetResponse
// @Failure		400	{object}	AllocationSetResponse
// @Failure		404	{object}	AllocationSetResponse
// @Failure		500	{object}	AllocationSetResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/invoices/{id}/allocations [get]
func GetInvoiceAllocations(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationSetResponse{Error: &e})
		return
	}

	var invoice models.Invoice
	err = models.DB.First(&invoice, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationSetResponse{Error: &e})
		return
	}

	splitter, err := storedSplitter(invoice)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationSetResponse{Error: &e})
		return
	}

	data := newAllocationSet(c, invoice, splitter)
	c.JSON(http.StatusOK, AllocationSetResponse{Data: &data})
}

// @Summary		Set allocations
// @Description	Replaces all allocations of an invoice. The values of the allocations are derived from their percentages and the value of the invoice. The percentages must sum up to 100 (up to 100.1 to allow for rounding) and every allocation needs a department. Reinvoice destinations that do not sum up to 100 are reported, but do not prevent saving.
// @Tags			Allocations
// @Accept			json
// @Produce		json
// @Success		200			{object}	AllocationSetResponse
// @Failure		400			{object}	AllocationSetResponse
// @Failure		404			{object}	AllocationSetResponse
// @Failure		500			{object}	AllocationSetResponse
// @Param			id			path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			allocations	body		AllocationSetEditable	true	"Allocations"
// @Router			/v1/invoices/{id}/allocations [put]
func SetInvoiceAllocations(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationSetResponse{Error: &e})
		return
	}

	var invoice models.Invoice
	err = models.DB.First(&invoice, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationSetResponse{Error: &e})
		return
	}

	var data AllocationSetEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationSetResponse{Error: &e})
		return
	}

	if len(data.Allocations) == 0 {
		e := allocation.ErrMinOneAllocation.Error()
		c.JSON(status(allocation.ErrMinOneAllocation), AllocationSetResponse{Error: &e})
		return
	}

	split := make([]allocation.Allocation, 0, len(data.Allocations))
	for _, item := range data.Allocations {
		split = append(split, item.split())
	}

	splitter := allocation.New(invoice.BaseValue(), split, allocation.WithRemainderPolicy(RemainderPolicy))

	saved, err := saveAllocations(c, invoice, splitter, data.SendNotification)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationSetResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, AllocationSetResponse{Data: &saved})
}

// storedSplitter returns a splitter for the stored allocations of the invoice.
func storedSplitter(invoice models.Invoice) (*allocation.Splitter, error) {
	allocations, err := models.InvoiceAllocations(models.DB, invoice.ID)
	if err != nil {
		return nil, err
	}

	split := make([]allocation.Allocation, 0, len(allocations))
	for _, a := range allocations {
		split = append(split, a.Split())
	}

	return allocation.New(invoice.BaseValue(), split, allocation.WithRemainderPolicy(RemainderPolicy)), nil
}

// saveAllocations validates the allocations of the splitter and replaces the
// stored allocations of the invoice with them.
//
// If notify is true, the Notifier is informed after the allocations are
// stored. Notification errors are logged, the allocations stay saved.
func saveAllocations(c *gin.Context, invoice models.Invoice, splitter *allocation.Splitter, notify bool) (AllocationSet, error) {
	_, err := splitter.Validate()
	if err != nil {
		return AllocationSet{}, err
	}

	_, err = models.ReplaceAllocations(models.DB, invoice.ID, models.AllocationsOf(invoice.ID, splitter.Allocations()))
	if err != nil {
		return AllocationSet{}, err
	}
	SavedAllocationSets.Inc()

	if notify {
		err = Notifier.AllocationsSaved(context.WithoutCancel(c.Request.Context()), savedNotification(invoice, splitter))
		if err != nil {
			log.Error().Str("request-id", requestid.Get(c)).Str("invoice-id", invoice.ID.String()).Msgf("%T: %v", err, err.Error())
		}
	}

	return newAllocationSet(c, invoice, splitter), nil
}

func savedNotification(invoice models.Invoice, splitter *allocation.Splitter) notification.Saved {
	saved := notification.Saved{
		InvoiceID:     invoice.ID,
		InvoiceNumber: invoice.Number,
		BaseValue:     splitter.BaseValue(),
	}

	for _, a := range splitter.Allocations() {
		saved.Recipients = append(saved.Recipients, notification.Recipient{
			Company:     a.Company,
			Department:  a.Department,
			Responsible: a.Responsible,
			Percent:     a.Percent,
			Value:       a.Value,
		})
	}

	return saved
}
