package v1

import (
	"net/http"

	"github.com/backoffice-dms/allocations/internal/allocation"
	"github.com/backoffice-dms/allocations/internal/httputil"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// SmartSplitQuery is the query of a smart split request. At most 1000
// allocations can be requested.
type SmartSplitQuery struct {
	Count int `form:"count" binding:"required,min=1,max=1000"` // Number of allocations
}

type SmartSplitResponse struct {
	Error *string           `json:"error" example:"the count query parameter must be an integer between 1 and 1000"` // The error, if any occurred
	Data  []decimal.Decimal `json:"data" swaggertype:"array,number" example:"40,30,30"`                             // The default percentages, in allocation order
}

func RegisterSmartSplitRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsSmartSplit)
		r.GET("", GetSmartSplit)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Smart Split
// @Success		204
// @Router			/v1/smart-split [options]
func OptionsSmartSplit(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get smart split
// @Description	Returns the default percentages for a number of allocations. One allocation gets 100%, two get 50% each. For three or more, the first one gets 40% and the others share the remaining 60% equally.
// @Tags			Smart Split
// @Produce		json
// @Success		200		{object}	SmartSplitResponse
// @Failure		400		{object}	SmartSplitResponse
// @Param			count	query		int	true	"Number of allocations"	minimum(1)	maximum(1000)
// @Router			/v1/smart-split [get]
func GetSmartSplit(c *gin.Context) {
	var query SmartSplitQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		e := errCountInvalid.Error()
		c.JSON(status(err), SmartSplitResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, SmartSplitResponse{Data: allocation.SmartSplit(query.Count)})
}
