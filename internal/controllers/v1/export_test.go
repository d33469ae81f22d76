package v1_test

import (
	"net/http"
	"time"

	v1 "github.com/backoffice-dms/allocations/internal/controllers/v1"
	"github.com/backoffice-dms/allocations/internal/models"
	"github.com/backoffice-dms/allocations/test"
	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExport verifies that the export works correctly
//
// Thorough checks are only executed for the non-data fields since
// the data fields are populated by the Export() methods of the models
func (suite *TestSuiteStandard) TestExport() {
	t := suite.T()

	invoice := createTestInvoice(t, v1.InvoiceEditable{Number: "R-1"})
	rule := createTestAllocationRule(t, v1.AllocationRuleEditable{Match: "Office*"})

	r := test.Request(t, http.MethodPut, invoice.Data.Links.Allocations, v1.AllocationSetEditable{
		Allocations: []v1.AllocationItem{item("ACME", "Sales", "100")},
	})
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	recorder := test.Request(t, http.MethodGet, "http://example.com/v1/export", "")
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	var response v1.ExportResponse
	test.DecodeResponse(t, &recorder, &response)

	// Verify the version and clacks fields
	assert.Equal(t, "GNU Terry Pratchett", response.Clacks)
	assert.Equal(t, "0.0.0", response.Version)

	difference := time.Since(response.CreationTime).Seconds()
	assert.Less(t, difference, float64(5))

	// Basic tests for the data fields. Full testing is done in the respective Export() methods
	// of the models
	assert.Len(t, response.Data, len(models.Registry), "Number of models in export does not match registry")

	var invoices []models.Invoice
	require.Nil(t, json.Unmarshal(response.Data["Invoice"], &invoices))
	require.Len(t, invoices, 1, "Number of invoices in export must be 1")
	assert.Equal(t, invoice.Data.ID, invoices[0].ID)

	var rules []models.AllocationRule
	require.Nil(t, json.Unmarshal(response.Data["AllocationRule"], &rules))
	require.Len(t, rules, 1, "Number of allocation rules in export must be 1")
	assert.Equal(t, rule.Data.ID, rules[0].ID)

	var allocations []models.Allocation
	require.Nil(t, json.Unmarshal(response.Data["Allocation"], &allocations))
	assert.Len(t, allocations, 1)
}

func (suite *TestSuiteStandard) TestExportDBError() {
	suite.CloseDB()

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/export", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)
}
