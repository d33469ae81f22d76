package v1

import (
	"fmt"
	"net/http"

	"github.com/backoffice-dms/allocations/internal/httputil"
	"github.com/backoffice-dms/allocations/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterAllocationRuleRoutes registers the routes for allocation rules with
// the RouterGroup that is passed.
func RegisterAllocationRuleRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsAllocationRuleList)
		r.GET("", GetAllocationRules)
		r.POST("", CreateAllocationRules)
	}

	// Allocation Rule with ID
	{
		r.OPTIONS("/:id", OptionsAllocationRuleDetail)
		r.GET("/:id", GetAllocationRule)
		r.PATCH("/:id", UpdateAllocationRule)
		r.DELETE("/:id", DeleteAllocationRule)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Allocation Rules
// @Success		204
// @Router			/v1/allocation-rules [options]
func OptionsAllocationRuleList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Allocation Rules
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/allocation-rules/{id} [options]
func OptionsAllocationRuleDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.AllocationRule{})
}

// @Summary		Create allocation rules
// @Description	Creates allocation rules from the list of submitted allocation rule data. The response code is the highest response code number that a single allocation rule creation would have caused. If it is not equal to 201, at least one allocation rule has an error.
// @Tags			Allocation Rules
// @Produce		json
// @Success		201				{object}	AllocationRuleCreateResponse
// @Failure		400				{object}	AllocationRuleCreateResponse
// @Failure		500				{object}	AllocationRuleCreateResponse
// @Param			allocationRules	body		[]AllocationRuleEditable	true	"Allocation Rules"
// @Router			/v1/allocation-rules [post]
func CreateAllocationRules(c *gin.Context) {
	var rules []AllocationRuleEditable

	err := httputil.BindData(c, &rules)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationRuleCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := AllocationRuleCreateResponse{}

	for _, editable := range rules {
		rule := editable.model()

		err = models.DB.Create(&rule).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newAllocationRule(c, rule)
		r.Data = append(r.Data, AllocationRuleResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get allocation rules
// @Description	Returns a list of allocation rules in the order they are checked in
// @Tags			Allocation Rules
// @Produce		json
// @Success		200			{object}	AllocationRuleListResponse
// @Failure		400			{object}	AllocationRuleListResponse
// @Failure		500			{object}	AllocationRuleListResponse
// @Param			priority	query		uint	false	"Filter by priority"
// @Param			match		query		string	false	"Filter by match, partial match"
// @Param			company		query		string	false	"Filter by company"
// @Param			offset		query		uint	false	"The offset of the first Allocation Rule returned. Defaults to 0."
// @Param			limit		query		int		false	"Maximum number of Allocation Rules to return. Defaults to 50."
// @Router			/v1/allocation-rules [get]
func GetAllocationRules(c *gin.Context) {
	var filter AllocationRuleQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, AllocationRuleListResponse{
			Error: &s,
		})
		return
	}

	// Get the parameters set in the query string
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)
	model := filter.model()

	q := models.DB.
		Order("priority ASC, created_at ASC").
		Where(&model, queryFields...)

	// Filter for match containing the query string or explicitly empty one
	if filter.Match != "" {
		q = q.Where("match LIKE ?", fmt.Sprintf("%%%s%%", filter.Match))
	} else if slices.Contains(setFields, "Match") {
		q = q.Where("match = ''")
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 Allocation Rules and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var rules []models.AllocationRule
	err := q.Find(&rules).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationRuleListResponse{Error: &e})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationRuleListResponse{Error: &e})
		return
	}

	data := make([]AllocationRule, 0)
	for _, rule := range rules {
		data = append(data, newAllocationRule(c, rule))
	}

	c.JSON(http.StatusOK, AllocationRuleListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get allocation rule
// @Description	Returns a specific allocation rule
// @Tags			Allocation Rules
// @Produce		json
// @Success		200	{object}	AllocationRuleResponse
// @Failure		400	{object}	AllocationRuleResponse
// @Failure		404	{object}	AllocationRuleResponse
// @Failure		500	{object}	AllocationRuleResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/allocation-rules/{id} [get]
func GetAllocationRule(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationRuleResponse{Error: &e})
		return
	}

	var rule models.AllocationRule
	err = models.DB.First(&rule, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationRuleResponse{Error: &e})
		return
	}

	data := newAllocationRule(c, rule)
	c.JSON(http.StatusOK, AllocationRuleResponse{Data: &data})
}

// @Summary		Update allocation rule
// @Description	Update an allocation rule. Only values to be updated need to be specified.
// @Tags			Allocation Rules
// @Accept			json
// @Produce		json
// @Success		200				{object}	AllocationRuleResponse
// @Failure		400				{object}	AllocationRuleResponse
// @Failure		404				{object}	AllocationRuleResponse
// @Failure		500				{object}	AllocationRuleResponse
// @Param			id				path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			allocationRule	body		AllocationRuleEditable	true	"Allocation Rule"
// @Router			/v1/allocation-rules/{id} [patch]
func UpdateAllocationRule(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationRuleResponse{Error: &e})
		return
	}

	var rule models.AllocationRule
	err = models.DB.First(&rule, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationRuleResponse{Error: &e})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, AllocationRuleEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationRuleResponse{Error: &e})
		return
	}

	var data AllocationRuleEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationRuleResponse{Error: &e})
		return
	}

	// Save runs the hooks on the updated rule, which normalizes
	// and validates it
	data.apply(&rule, updateFields)
	err = models.DB.Save(&rule).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationRuleResponse{Error: &e})
		return
	}

	apiResource := newAllocationRule(c, rule)
	c.JSON(http.StatusOK, AllocationRuleResponse{Data: &apiResource})
}

// @Summary		Delete allocation rule
// @Description	Deletes an allocation rule
// @Tags			Allocation Rules
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/allocation-rules/{id} [delete]
func DeleteAllocationRule(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var rule models.AllocationRule
	err = models.DB.First(&rule, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.Delete(&rule).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, gin.H{})
}
