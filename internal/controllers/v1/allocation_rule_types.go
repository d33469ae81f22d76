package v1

import (
	"fmt"

	"github.com/backoffice-dms/allocations/internal/models"
	"github.com/gin-gonic/gin"
)

type AllocationRuleEditable struct {
	Priority      uint   `json:"priority" example:"3"`            // The priority of the rule. Rules with a lower priority value are checked first
	Match         string `json:"match" example:"Office*"`         // The glob pattern the supplier of an invoice is matched against, case insensitive
	Company       string `json:"company" example:"ACME"`          // Company the new allocation is made for
	Brand         string `json:"brand" example:"Shiny"`           // Brand the new allocation is made for
	Department    string `json:"department" example:"Sales"`      // Department the new allocation is made for
	Subdepartment string `json:"subdepartment" example:"Export"` // Subdepartment the new allocation is made for
}

func (editable AllocationRuleEditable) model() models.AllocationRule {
	return models.AllocationRule{
		Priority:      editable.Priority,
		Match:         editable.Match,
		Company:       editable.Company,
		Brand:         editable.Brand,
		Department:    editable.Department,
		Subdepartment: editable.Subdepartment,
	}
}

// apply sets the fields of the rule that are listed in fields.
func (editable AllocationRuleEditable) apply(rule *models.AllocationRule, fields []any) {
	for _, field := range fields {
		switch field {
		case "Priority":
			rule.Priority = editable.Priority
		case "Match":
			rule.Match = editable.Match
		case "Company":
			rule.Company = editable.Company
		case "Brand":
			rule.Brand = editable.Brand
		case "Department":
			rule.Department = editable.Department
		case "Subdepartment":
			rule.Subdepartment = editable.Subdepartment
		}
	}
}

type AllocationRuleListResponse struct {
	Data       []AllocationRule `json:"data"`                                                          // List of Allocation Rules
	Error      *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination      `json:"pagination"`                                                    // Pagination information
}

type AllocationRuleCreateResponse struct {
	Error *string                  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []AllocationRuleResponse `json:"data"`                                                          // List of created Allocation Rules
}

func (r *AllocationRuleCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, AllocationRuleResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type AllocationRuleResponse struct {
	Error *string         `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this Allocation Rule
	Data  *AllocationRule `json:"data"`                                                          // The Allocation Rule data, if creation was successful
}

type AllocationRuleLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/allocation-rules/95685c82-53c6-455d-b235-f49960b73b21"` // The allocation rule itself
}

// AllocationRule is the API representation of an Allocation Rule.
type AllocationRule struct {
	models.DefaultModel
	AllocationRuleEditable
	Links AllocationRuleLinks `json:"links"`
}

func newAllocationRule(c *gin.Context, model models.AllocationRule) AllocationRule {
	url := c.GetString(string(models.DBContextURL))

	return AllocationRule{
		DefaultModel: model.DefaultModel,
		AllocationRuleEditable: AllocationRuleEditable{
			Priority:      model.Priority,
			Match:         model.Match,
			Company:       model.Company,
			Brand:         model.Brand,
			Department:    model.Department,
			Subdepartment: model.Subdepartment,
		},
		Links: AllocationRuleLinks{
			Self: fmt.Sprintf("%s/v1/allocation-rules/%s", url, model.ID),
		},
	}
}

type AllocationRuleQueryFilter struct {
	Priority uint   `form:"priority"`                   // By priority
	Match    string `form:"match" filterField:"false"`  // By match, partial match
	Company  string `form:"company"`                    // By company
	Offset   uint   `form:"offset" filterField:"false"` // The offset of the first Allocation Rule returned. Defaults to 0.
	Limit    int    `form:"limit" filterField:"false"`  // Maximum number of Allocation Rules to return. Defaults to 50.
}

func (f AllocationRuleQueryFilter) model() models.AllocationRule {
	return models.AllocationRule{
		Priority: f.Priority,
		Company:  f.Company,
	}
}
