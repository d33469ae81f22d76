package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/backoffice-dms/allocations/internal/controllers/v1"
	"github.com/backoffice-dms/allocations/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCleanup() {
	invoice := createTestInvoice(suite.T(), v1.InvoiceEditable{})
	_ = createTestAllocationRule(suite.T(), v1.AllocationRuleEditable{Match: "Delete me"})
	session := openTestSession(suite.T(), invoice.Data.ID)

	recorder := test.Request(suite.T(), http.MethodPut, invoice.Data.Links.Allocations, v1.AllocationSetEditable{
		Allocations: []v1.AllocationItem{item("ACME", "Sales", "100")},
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	tests := []string{
		"http://example.com/v1/invoices",
		"http://example.com/v1/allocation-rules",
	}

	// Delete
	recorder = test.Request(suite.T(), http.MethodDelete, "http://example.com/v1?confirm=yes-please-delete-everything", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	// Verify
	for _, tt := range tests {
		suite.T().Run(tt, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, tt, "")
			test.AssertHTTPStatus(t, &recorder, http.StatusOK)

			var response struct {
				Data []any `json:"data"`
			}

			test.DecodeResponse(t, &recorder, &response)
			assert.Len(t, response.Data, 0, "There are resources left for type %s", tt)
		})
	}

	// Sessions are discarded
	recorder = test.Request(suite.T(), http.MethodGet, session.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestCleanupFails() {
	tests := []struct {
		name string
		path string
	}{
		{"Invalid path", "confirm=2"},
		{"Confirmation wrong", "confirm=invalid-confirmation"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodDelete, fmt.Sprintf("http://example.com/v1?%s", tt.path), "")
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestCleanupDBError() {
	suite.CloseDB()

	recorder := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1?confirm=yes-please-delete-everything", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)
}
