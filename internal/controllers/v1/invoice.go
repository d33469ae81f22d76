package v1

import (
	"fmt"
	"net/http"

	"github.com/backoffice-dms/allocations/internal/httputil"
	"github.com/backoffice-dms/allocations/internal/models"
	"github.com/backoffice-dms/allocations/internal/types"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// RegisterInvoiceRoutes registers the routes for invoices with
// the RouterGroup that is passed.
func RegisterInvoiceRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsInvoiceList)
		r.GET("", GetInvoices)
		r.POST("", CreateInvoices)
	}

	// Invoice with ID
	{
		r.OPTIONS("/:id", OptionsInvoiceDetail)
		r.GET("/:id", GetInvoice)
		r.PATCH("/:id", UpdateInvoice)
		r.DELETE("/:id", DeleteInvoice)
	}

	// Allocations of the invoice
	{
		r.OPTIONS("/:id/allocations", OptionsInvoiceAllocations)
		r.GET("/:id/allocations", GetInvoiceAllocations)
		r.PUT("/:id/allocations", SetInvoiceAllocations)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Invoices
// @Success		204
// @Router			/v1/invoices [options]
func OptionsInvoiceList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Invoices
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/invoices/{id} [options]
func OptionsInvoiceDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Invoice{})
}

// @Summary		Create invoices
// @Description	Creates invoices from the list of submitted invoice data. The response code is the highest response code number that a single invoice creation would have caused. If it is not equal to 201, at least one invoice has an error.
// @Tags			Invoices
// @Produce		json
// @Success		201			{object}	InvoiceCreateResponse
// @Failure		400			{object}	InvoiceCreateResponse
// @Failure		500			{object}	InvoiceCreateResponse
// @Param			invoices	body		[]InvoiceEditable	true	"Invoices"
// @Router			/v1/invoices [post]
func CreateInvoices(c *gin.Context) {
	var invoices []InvoiceEditable

	err := httputil.BindData(c, &invoices)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InvoiceCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := InvoiceCreateResponse{}

	for _, editable := range invoices {
		invoice := editable.model()

		err = models.DB.Create(&invoice).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newInvoice(c, invoice)
		r.Data = append(r.Data, InvoiceResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get invoices
// @Description	Returns a list of invoices, newest issue date first
// @Tags			Invoices
// @Produce		json
// @Success		200			{object}	InvoiceListResponse
// @Failure		400			{object}	InvoiceListResponse
// @Failure		500			{object}	InvoiceListResponse
// @Param			number		query		string	false	"Filter by number, partial match"
// @Param			supplier	query		string	false	"Filter by supplier, partial match"
// @Param			company		query		string	false	"Filter by receiving company"
// @Param			currency	query		string	false	"Filter by currency"
// @Param			month		query		string	false	"Filter by accounting month (YYYY-MM)"
// @Param			search		query		string	false	"Search for this text in number, supplier and note"
// @Param			offset		query		uint	false	"The offset of the first Invoice returned. Defaults to 0."
// @Param			limit		query		int		false	"Maximum number of Invoices to return. Defaults to 50."
// @Router			/v1/invoices [get]
func GetInvoices(c *gin.Context) {
	var filter InvoiceQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, InvoiceListResponse{
			Error: &s,
		})
		return
	}

	// Get the parameters set in the query string
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)
	model := filter.model()

	q := models.DB.
		Order("issue_date DESC, number ASC").
		Where(&model, queryFields...)

	if filter.Number != "" {
		q = q.Where("number LIKE ?", fmt.Sprintf("%%%s%%", filter.Number))
	}

	if filter.Supplier != "" {
		q = q.Where("supplier LIKE ?", fmt.Sprintf("%%%s%%", filter.Supplier))
	} else if slices.Contains(setFields, "Supplier") {
		q = q.Where("supplier = ''")
	}

	if filter.Month != "" {
		month, err := types.ParseMonth(filter.Month)
		if err != nil {
			s := err.Error()
			c.JSON(http.StatusBadRequest, InvoiceListResponse{
				Error: &s,
			})
			return
		}

		q = q.Where("accounting_month = ?", month)
	}

	if filter.Search != "" {
		search := fmt.Sprintf("%%%s%%", filter.Search)
		q = q.Where("(number LIKE ? OR supplier LIKE ? OR note LIKE ?)", search, search, search)
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 Invoices and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var invoices []models.Invoice
	err := q.Find(&invoices).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InvoiceListResponse{Error: &e})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InvoiceListResponse{Error: &e})
		return
	}

	data := make([]Invoice, 0)
	for _, invoice := range invoices {
		data = append(data, newInvoice(c, invoice))
	}

	c.JSON(http.StatusOK, InvoiceListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get invoice
// @Description	Returns a specific invoice
// @Tags			Invoices
// @Produce		json
// @Success		200	{object}	InvoiceResponse
// @Failure		400	{object}	InvoiceResponse
// @Failure		404	{object}	InvoiceResponse
// @Failure		500	{object}	InvoiceResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/invoices/{id} [get]
func GetInvoice(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InvoiceResponse{Error: &e})
		return
	}

	var invoice models.Invoice
	err = models.DB.First(&invoice, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InvoiceResponse{Error: &e})
		return
	}

	data := newInvoice(c, invoice)
	c.JSON(http.StatusOK, InvoiceResponse{Data: &data})
}

// @Summary		Update invoice
// @Description	Update an invoice. Only values to be updated need to be specified. If the value that is split changes, the values of all allocations are recalculated from their percentages.
// @Tags			Invoices
// @Accept			json
// @Produce		json
// @Success		200		{object}	InvoiceResponse
// @Failure		400		{object}	InvoiceResponse
// @Failure		404		{object}	InvoiceResponse
// @Failure		500		{object}	InvoiceResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			invoice	body		InvoiceEditable	true	"Invoice"
// @Router			/v1/invoices/{id} [patch]
func UpdateInvoice(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InvoiceResponse{Error: &e})
		return
	}

	var invoice models.Invoice
	err = models.DB.First(&invoice, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InvoiceResponse{Error: &e})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, InvoiceEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InvoiceResponse{Error: &e})
		return
	}

	var data InvoiceEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InvoiceResponse{Error: &e})
		return
	}

	base := invoice.BaseValue()
	data.apply(&invoice, updateFields)

	// Save runs the hooks on the updated invoice, which normalizes
	// and validates it
	err = models.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Save(&invoice).Error
		if err != nil {
			return err
		}

		if invoice.BaseValue().Equal(base) {
			return nil
		}

		return models.RecalculateAllocationValues(tx, invoice)
	})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InvoiceResponse{Error: &e})
		return
	}

	apiResource := newInvoice(c, invoice)
	c.JSON(http.StatusOK, InvoiceResponse{Data: &apiResource})
}

// @Summary		Delete invoice
// @Description	Deletes an invoice together with its allocations
// @Tags			Invoices
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/invoices/{id} [delete]
func DeleteInvoice(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var invoice models.Invoice
	err = models.DB.First(&invoice, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.Delete(&invoice).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, gin.H{})
}
