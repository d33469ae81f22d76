package v1

import (
	"net/http"
	"time"

	"github.com/backoffice-dms/allocations/internal/allocation"
	"github.com/backoffice-dms/allocations/internal/httputil"
	"github.com/backoffice-dms/allocations/internal/models"
	"github.com/backoffice-dms/allocations/internal/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sessions holds the open allocation edit sessions.
var Sessions = sessions.NewStore(30 * time.Minute)

// RegisterSessionRoutes registers the routes for allocation sessions with
// the RouterGroup that is passed.
func RegisterSessionRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsSessionList)
		r.POST("", CreateSession)
	}

	// Session with ID
	{
		r.OPTIONS("/:id", OptionsSessionDetail)
		r.GET("/:id", GetSession)
		r.DELETE("/:id", DeleteSession)
	}

	// Allocations of the session
	{
		r.OPTIONS("/:id/allocations", OptionsSessionAllocations)
		r.POST("/:id/allocations", AddSessionAllocation)
		r.OPTIONS("/:id/allocations/:index", OptionsSessionAllocation)
		r.PATCH("/:id/allocations/:index", UpdateSessionAllocation)
		r.DELETE("/:id/allocations/:index", DeleteSessionAllocation)
		r.OPTIONS("/:id/allocations/:index/lock", OptionsSessionAction)
		r.POST("/:id/allocations/:index/lock", LockSessionAllocation)
		r.OPTIONS("/:id/allocations/:index/redistribute", OptionsSessionAction)
		r.POST("/:id/allocations/:index/redistribute", RedistributeSessionAllocations)
	}

	// Session actions
	{
		r.OPTIONS("/:id/smart-split", OptionsSessionAction)
		r.POST("/:id/smart-split", SmartSplitSession)
		r.OPTIONS("/:id/save", OptionsSessionAction)
		r.POST("/:id/save", SaveSession)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Allocation Sessions
// @Success		204
// @Router			/v1/allocation-sessions [options]
func OptionsSessionList(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Allocation Sessions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/allocation-sessions/{id} [options]
func OptionsSessionDetail(c *gin.Context) {
	if !sessionExists(c) {
		return
	}

	httputil.OptionsGetDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Allocation Sessions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/allocation-sessions/{id}/allocations [options]
func OptionsSessionAllocations(c *gin.Context) {
	if !sessionExists(c) {
		return
	}

	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Allocation Sessions
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Param			id		path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			index	path		int		true	"Position of the allocation, starting at 0"
// @Router			/v1/allocation-sessions/{id}/allocations/{index} [options]
func OptionsSessionAllocation(c *gin.Context) {
	var uri URIAllocation
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	session, err := Sessions.Get(uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if uri.Index >= session.Splitter.Len() {
		c.JSON(status(allocation.ErrIndexOutOfRange), httpError{Error: allocation.ErrIndexOutOfRange.Error()})
		return
	}

	httputil.OptionsPatchDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Allocation Sessions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/allocation-sessions/{id}/smart-split [options]
// @Router			/v1/allocation-sessions/{id}/save [options]
func OptionsSessionAction(c *gin.Context) {
	if !sessionExists(c) {
		return
	}

	httputil.OptionsPost(c)
}

// @Summary		Open allocation session
// @Description	Opens an edit session for the allocations of an invoice. The session starts with the stored allocations of the invoice. If the invoice has none, the session starts with one allocation of 100% for the first allocation rule matching the supplier, or for the company that received the invoice.
// @Tags			Allocation Sessions
// @Accept			json
// @Produce		json
// @Success		201		{object}	SessionResponse
// @Failure		400		{object}	SessionResponse
// @Failure		404		{object}	SessionResponse
// @Failure		500		{object}	SessionResponse
// @Param			session	body		SessionCreate	true	"Session"
// @Router			/v1/allocation-sessions [post]
func CreateSession(c *gin.Context) {
	var data SessionCreate
	err := httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SessionResponse{Error: &e})
		return
	}

	if data.InvoiceID == uuid.Nil {
		e := errSessionInvoiceMissing.Error()
		c.JSON(http.StatusBadRequest, SessionResponse{Error: &e})
		return
	}

	var invoice models.Invoice
	err = models.DB.First(&invoice, "id = ?", data.InvoiceID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SessionResponse{Error: &e})
		return
	}

	splitter, err := initialSplitter(invoice)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SessionResponse{Error: &e})
		return
	}

	session := newSession(c, Sessions.Open(invoice.ID, splitter))
	c.JSON(http.StatusCreated, SessionResponse{Data: &session})
}

// @Summary		Get allocation session
// @Description	Returns an allocation session with the current allocations and their validation report
// @Tags			Allocation Sessions
// @Produce		json
// @Success		200	{object}	SessionResponse
// @Failure		400	{object}	SessionResponse
// @Failure		404	{object}	SessionResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/allocation-sessions/{id} [get]
func GetSession(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, SessionResponse{Error: &e})
		return
	}

	session, err := Sessions.Get(uri.ID.UUID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SessionResponse{Error: &e})
		return
	}

	data := newSession(c, session)
	c.JSON(http.StatusOK, SessionResponse{Data: &data})
}

// @Summary		Discard allocation session
// @Description	Discards an allocation session. The stored allocations of the invoice are not changed.
// @Tags			Allocation Sessions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/allocation-sessions/{id} [delete]
func DeleteSession(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	err = Sessions.Discard(uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		Add allocation
// @Description	Adds an unlocked allocation to the session and applies the smart split to all unlocked allocations
// @Tags			Allocation Sessions
// @Accept			json
// @Produce		json
// @Success		201			{object}	SessionResponse
// @Failure		400			{object}	SessionResponse
// @Failure		404			{object}	SessionResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			allocation	body		AllocationDetails	true	"Allocation"
// @Router			/v1/allocation-sessions/{id}/allocations [post]
func AddSessionAllocation(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, SessionResponse{Error: &e})
		return
	}

	var data AllocationDetails
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SessionResponse{Error: &e})
		return
	}

	updateSession(c, uri.ID.UUID, http.StatusCreated, func(s *sessions.Session) error {
		return s.Splitter.AddAllocation(data.details())
	})
}

// @Summary		Update allocation
// @Description	Updates an allocation of the session. Only values to be updated need to be specified. Setting the percentage or the value redistributes the remainder across the other unlocked allocations.
// @Tags			Allocation Sessions
// @Accept			json
// @Produce		json
// @Success		200			{object}	SessionResponse
// @Failure		400			{object}	SessionResponse
// @Failure		404			{object}	SessionResponse
// @Param			id			path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			index		path		int				true	"Position of the allocation, starting at 0"
// @Param			allocation	body		AllocationPatch	true	"Allocation"
// @Router			/v1/allocation-sessions/{id}/allocations/{index} [patch]
func UpdateSessionAllocation(c *gin.Context) {
	var uri URIAllocation
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, SessionResponse{Error: &e})
		return
	}

	var data AllocationPatch
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SessionResponse{Error: &e})
		return
	}

	updateSession(c, uri.ID.UUID, http.StatusOK, func(s *sessions.Session) error {
		return data.apply(s.Splitter, uri.Index)
	})
}

// @Summary		Remove allocation
// @Description	Removes an allocation from the session and applies the smart split to all unlocked allocations. The last allocation cannot be removed.
// @Tags			Allocation Sessions
// @Produce		json
// @Success		200		{object}	SessionResponse
// @Failure		400		{object}	SessionResponse
// @Failure		404		{object}	SessionResponse
// @Param			id		path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			index	path		int		true	"Position of the allocation, starting at 0"
// @Router			/v1/allocation-sessions/{id}/allocations/{index} [delete]
func DeleteSessionAllocation(c *gin.Context) {
	sessionAllocationAction(c, (*allocation.Splitter).RemoveAllocation)
}

// @Summary		Toggle lock
// @Description	Locks an unlocked allocation or unlocks a locked one. Locked allocations keep their percentage when other allocations change.
// @Tags			Allocation Sessions
// @Produce		json
// @Success		200		{object}	SessionResponse
// @Failure		400		{object}	SessionResponse
// @Failure		404		{object}	SessionResponse
// @Param			id		path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			index	path		int		true	"Position of the allocation, starting at 0"
// @Router			/v1/allocation-sessions/{id}/allocations/{index}/lock [post]
func LockSessionAllocation(c *gin.Context) {
	sessionAllocationAction(c, (*allocation.Splitter).ToggleLock)
}

// @Summary		Redistribute
// @Description	Splits what is left of 100% after this allocation and all locked allocations equally across the other unlocked allocations
// @Tags			Allocation Sessions
// @Produce		json
// @Success		200		{object}	SessionResponse
// @Failure		400		{object}	SessionResponse
// @Failure		404		{object}	SessionResponse
// @Param			id		path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			index	path		int		true	"Position of the allocation, starting at 0"
// @Router			/v1/allocation-sessions/{id}/allocations/{index}/redistribute [post]
func RedistributeSessionAllocations(c *gin.Context) {
	sessionAllocationAction(c, (*allocation.Splitter).RedistributeOthers)
}

// @Summary		Apply smart split
// @Description	Distributes the percentage not taken by locked allocations across the unlocked ones
// @Tags			Allocation Sessions
// @Produce		json
// @Success		200	{object}	SessionResponse
// @Failure		400	{object}	SessionResponse
// @Failure		404	{object}	SessionResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/allocation-sessions/{id}/smart-split [post]
func SmartSplitSession(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, SessionResponse{Error: &e})
		return
	}

	updateSession(c, uri.ID.UUID, http.StatusOK, func(s *sessions.Session) error {
		s.Splitter.ApplySmartSplit()
		return nil
	})
}

// @Summary		Save allocations
// @Description	Validates the allocations of the session and stores them for the invoice. The values are recalculated from the current value of the invoice before saving. If saving fails, the session is not changed. The session stays open after saving.
// @Tags			Allocation Sessions
// @Accept			json
// @Produce		json
// @Success		200		{object}	SessionResponse
// @Failure		400		{object}	SessionResponse
// @Failure		404		{object}	SessionResponse
// @Failure		500		{object}	SessionResponse
// @Param			id		path		URIID		true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			options	body		SessionSave	false	"Save options"
// @Router			/v1/allocation-sessions/{id}/save [post]
func SaveSession(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, SessionResponse{Error: &e})
		return
	}

	// The body is optional
	var data SessionSave
	if c.Request.ContentLength != 0 {
		err = httputil.BindData(c, &data)
		if err != nil {
			e := err.Error()
			c.JSON(status(err), SessionResponse{Error: &e})
			return
		}
	}

	updateSession(c, uri.ID.UUID, http.StatusOK, func(s *sessions.Session) error {
		var invoice models.Invoice
		err := models.DB.First(&invoice, "id = ?", s.InvoiceID).Error
		if err != nil {
			return err
		}

		s.Splitter.SetBaseValue(invoice.BaseValue())
		_, err = saveAllocations(c, invoice, s.Splitter, data.SendNotification)
		return err
	})
}

// sessionExists binds the session ID from the URI and reports if the session
// exists. If it does not, the error response is written.
func sessionExists(c *gin.Context) bool {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return false
	}

	_, err = Sessions.Get(uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return false
	}

	return true
}

// sessionAllocationAction runs an action for the allocation at the index in the URI.
func sessionAllocationAction(c *gin.Context, action func(*allocation.Splitter, int) error) {
	var uri URIAllocation
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, SessionResponse{Error: &e})
		return
	}

	updateSession(c, uri.ID.UUID, http.StatusOK, func(s *sessions.Session) error {
		return action(s.Splitter, uri.Index)
	})
}

// updateSession updates the session and writes the response.
func updateSession(c *gin.Context, id uuid.UUID, code int, fn func(*sessions.Session) error) {
	session, err := Sessions.Update(id, fn)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SessionResponse{Error: &e})
		return
	}

	data := newSession(c, session)
	c.JSON(code, SessionResponse{Data: &data})
}

// initialSplitter returns the splitter a new session for the invoice starts with.
func initialSplitter(invoice models.Invoice) (*allocation.Splitter, error) {
	splitter, err := storedSplitter(invoice)
	if err != nil {
		return nil, err
	}

	if splitter.Len() > 0 {
		return splitter, nil
	}

	details := allocation.Details{Company: invoice.Company}

	rule, ok, err := models.MatchingRule(models.DB, invoice.Supplier)
	if err != nil {
		return nil, err
	}

	if ok {
		details = allocation.Details{
			Company:       rule.Company,
			Brand:         rule.Brand,
			Department:    rule.Department,
			Subdepartment: rule.Subdepartment,
		}
	}

	return allocation.New(invoice.BaseValue(), []allocation.Allocation{
		{Details: details, Percent: decimal.NewFromInt(100)},
	}, allocation.WithRemainderPolicy(RemainderPolicy)), nil
}
