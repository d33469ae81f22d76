package v1

import (
	"net/http"

	"github.com/backoffice-dms/allocations/internal/httputil"
	"github.com/backoffice-dms/allocations/internal/models"
	"github.com/gin-gonic/gin"
)

func RegisterRootRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.DELETE("", Cleanup)
	r.OPTIONS("", Options)
}

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Invoices           string `json:"invoices" example:"https://example.com/api/v1/invoices"`                       // URL of Invoice collection endpoint
	AllocationRules    string `json:"allocationRules" example:"https://example.com/api/v1/allocation-rules"`        // URL of Allocation Rule collection endpoint
	AllocationSessions string `json:"allocationSessions" example:"https://example.com/api/v1/allocation-sessions"` // URL of Allocation Session collection endpoint
	SmartSplit         string `json:"smartSplit" example:"https://example.com/api/v1/smart-split"`                 // URL of the smart split endpoint
	Export             string `json:"export" example:"https://example.com/api/v1/export"`                          // URL of the export endpoint
}

// Get returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	Response
//	@Router			/v1 [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Invoices:           url + "/v1/invoices",
			AllocationRules:    url + "/v1/allocation-rules",
			AllocationSessions: url + "/v1/allocation-sessions",
			SmartSplit:         url + "/v1/smart-split",
			Export:             url + "/v1/export",
		},
	})
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}
