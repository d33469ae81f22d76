package v1_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/backoffice-dms/allocations/internal/allocation"
	v1 "github.com/backoffice-dms/allocations/internal/controllers/v1"
	"github.com/backoffice-dms/allocations/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestAllocationsGetEmpty() {
	invoice := createTestInvoice(suite.T(), v1.InvoiceEditable{})

	r := test.Request(suite.T(), http.MethodGet, invoice.Data.Links.Allocations, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.AllocationSetResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Len(suite.T(), response.Data.Allocations, 0)
	assert.False(suite.T(), response.Data.Report.Balanced)
	assert.Equal(suite.T(), invoice.Data.Links.Self, response.Data.Links.Invoice)
	assert.Equal(suite.T(), invoice.Data.Links.Allocations, response.Data.Links.Self)
}

func (suite *TestSuiteStandard) TestAllocationsSet() {
	invoice := createTestInvoice(suite.T(), v1.InvoiceEditable{GrossValue: decimal.NewFromInt(1190)})

	sales := item("ACME", "Sales", "40")
	sales.Brand = ptr("Shiny")
	sales.Responsible = ptr("jane.doe")
	sales.Comment = ptr("Trade fair")
	sales.Locked = true
	sales.ReinvoiceDestinations = []v1.ReinvoiceDestination{
		{Company: "ACME Logistics", Department: "Warehouse", Percentage: decimal.NewFromInt(50)},
		{Company: "ACME Retail", Department: "Stores", Percentage: decimal.NewFromInt(50)},
	}

	marketing := item("ACME", "Marketing", "60")
	// The value is always derived from the percent
	marketing.AllocationValue = decimal.NewFromInt(1)

	r := test.Request(suite.T(), http.MethodPut, invoice.Data.Links.Allocations, v1.AllocationSetEditable{
		Allocations: []v1.AllocationItem{sales, marketing},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.AllocationSetResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data.Allocations, 2)

	assert.True(suite.T(), decimal.NewFromInt(476).Equal(response.Data.Allocations[0].AllocationValue), response.Data.Allocations[0].AllocationValue.String())
	assert.True(suite.T(), decimal.NewFromInt(714).Equal(response.Data.Allocations[1].AllocationValue), response.Data.Allocations[1].AllocationValue.String())
	assert.True(suite.T(), response.Data.Report.Balanced)
	assert.True(suite.T(), decimal.NewFromInt(1190).Equal(response.Data.Report.TotalValue))

	// Stored allocations are returned in order with all details
	r = test.Request(suite.T(), http.MethodGet, invoice.Data.Links.Allocations, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var stored v1.AllocationSetResponse
	test.DecodeResponse(suite.T(), &r, &stored)
	require.Len(suite.T(), stored.Data.Allocations, 2)

	first := stored.Data.Allocations[0]
	assert.Equal(suite.T(), "Sales", first.Department)
	assert.Equal(suite.T(), "Shiny", *first.Brand)
	assert.Equal(suite.T(), "jane.doe", *first.Responsible)
	assert.Equal(suite.T(), "Trade fair", *first.Comment)
	assert.Nil(suite.T(), first.Subdepartment)
	assert.True(suite.T(), first.Locked)
	require.Len(suite.T(), first.ReinvoiceDestinations, 2)
	assert.Equal(suite.T(), "ACME Retail", first.ReinvoiceDestinations[1].Company)

	assert.Equal(suite.T(), "Marketing", stored.Data.Allocations[1].Department)
	assert.Len(suite.T(), stored.Data.Allocations[1].ReinvoiceDestinations, 0)

	require.Len(suite.T(), stored.Data.Report.ReinvoiceDestinations, 2)
	assert.True(suite.T(), stored.Data.Report.ReinvoiceDestinations[0].Balanced)
	assert.True(suite.T(), stored.Data.Report.ReinvoiceDestinations[1].Balanced)
}

func (suite *TestSuiteStandard) TestAllocationsSetReplaces() {
	invoice := createTestInvoice(suite.T(), v1.InvoiceEditable{})

	r := test.Request(suite.T(), http.MethodPut, invoice.Data.Links.Allocations, v1.AllocationSetEditable{
		Allocations: []v1.AllocationItem{
			item("ACME", "Sales", "50"),
			item("ACME", "Marketing", "50"),
		},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodPut, invoice.Data.Links.Allocations, v1.AllocationSetEditable{
		Allocations: []v1.AllocationItem{item("ACME", "Finance", "100")},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodGet, invoice.Data.Links.Allocations, "")
	var response v1.AllocationSetResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data.Allocations, 1)
	assert.Equal(suite.T(), "Finance", response.Data.Allocations[0].Department)
}

func (suite *TestSuiteStandard) TestAllocationsSetTotals() {
	tests := []struct {
		name   string
		second string
		status int
	}{
		{"Below 100", "49.9", http.StatusBadRequest},
		{"Exactly 100", "50", http.StatusOK},
		{"Within rounding tolerance", "50.05", http.StatusOK},
		{"Upper tolerance", "50.1", http.StatusOK},
		{"Above tolerance", "50.2", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			invoice := createTestInvoice(t, v1.InvoiceEditable{})

			r := test.Request(t, http.MethodPut, invoice.Data.Links.Allocations, v1.AllocationSetEditable{
				Allocations: []v1.AllocationItem{
					item("ACME", "Sales", "50"),
					item("ACME", "Marketing", tt.second),
				},
			})
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusBadRequest {
				assert.Equal(t, allocation.ErrTotalPercent.Error(), test.DecodeError(t, r.Body.Bytes()))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestAllocationsSetFails() {
	invoice := createTestInvoice(suite.T(), v1.InvoiceEditable{})

	tests := []struct {
		name   string
		path   string
		body   any
		status int
		err    string
	}{
		{
			"Missing department",
			invoice.Data.Links.Allocations,
			v1.AllocationSetEditable{Allocations: []v1.AllocationItem{
				item("ACME", "Sales", "50"),
				item("ACME", " ", "50"),
			}},
			http.StatusBadRequest,
			fmt.Sprintf("allocation 2: %s", allocation.ErrMissingDepartment),
		},
		{
			"Percent out of range",
			invoice.Data.Links.Allocations,
			v1.AllocationSetEditable{Allocations: []v1.AllocationItem{
				item("ACME", "Sales", "150"),
				item("ACME", "Marketing", "-50"),
			}},
			http.StatusBadRequest,
			fmt.Sprintf("allocation 1: %s", allocation.ErrPercentOutOfRange),
		},
		{
			"Negative percent",
			invoice.Data.Links.Allocations,
			v1.AllocationSetEditable{Allocations: []v1.AllocationItem{
				item("ACME", "Sales", "100"),
				item("ACME", "Marketing", "-10"),
				item("ACME", "Finance", "10"),
			}},
			http.StatusBadRequest,
			fmt.Sprintf("allocation 2: %s", allocation.ErrPercentOutOfRange),
		},
		{
			"No allocations",
			invoice.Data.Links.Allocations,
			v1.AllocationSetEditable{},
			http.StatusBadRequest,
			allocation.ErrMinOneAllocation.Error(),
		},
		{
			"Broken body",
			invoice.Data.Links.Allocations,
			`{ "allocations": "all of it" }`,
			http.StatusBadRequest,
			"",
		},
		{
			"Invoice not found",
			fmt.Sprintf("http://example.com/v1/invoices/%s/allocations", uuid.New()),
			v1.AllocationSetEditable{Allocations: []v1.AllocationItem{item("ACME", "Sales", "100")}},
			http.StatusNotFound,
			"",
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPut, tt.path, tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.err != "" {
				assert.Equal(t, tt.err, test.DecodeError(t, r.Body.Bytes()))
			}
		})
	}

	// Nothing has been stored
	r := test.Request(suite.T(), http.MethodGet, invoice.Data.Links.Allocations, "")
	var response v1.AllocationSetResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Len(suite.T(), response.Data.Allocations, 0)
}

func (suite *TestSuiteStandard) TestAllocationsDestinationsDoNotBlock() {
	invoice := createTestInvoice(suite.T(), v1.InvoiceEditable{})

	sales := item("ACME", "Sales", "100")
	sales.ReinvoiceDestinations = []v1.ReinvoiceDestination{
		{Company: "ACME Logistics", Department: "Warehouse", Percentage: decimal.NewFromInt(30)},
	}

	r := test.Request(suite.T(), http.MethodPut, invoice.Data.Links.Allocations, v1.AllocationSetEditable{
		Allocations: []v1.AllocationItem{sales},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.AllocationSetResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data.Report.ReinvoiceDestinations, 1)
	assert.False(suite.T(), response.Data.Report.ReinvoiceDestinations[0].Balanced)
	assert.True(suite.T(), decimal.NewFromInt(30).Equal(response.Data.Report.ReinvoiceDestinations[0].Total))
}

func (suite *TestSuiteStandard) TestAllocationsNotification() {
	invoice := createTestInvoice(suite.T(), v1.InvoiceEditable{Number: "R-7", GrossValue: decimal.NewFromInt(200)})

	sales := item("ACME", "Sales", "100")
	sales.Responsible = ptr("jane.doe")

	// Without notification
	r := test.Request(suite.T(), http.MethodPut, invoice.Data.Links.Allocations, v1.AllocationSetEditable{
		Allocations: []v1.AllocationItem{sales},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	assert.Len(suite.T(), suite.notifier.notifications(), 0)

	// With notification
	r = test.Request(suite.T(), http.MethodPut, invoice.Data.Links.Allocations, v1.AllocationSetEditable{
		Allocations:      []v1.AllocationItem{sales},
		SendNotification: true,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	notifications := suite.notifier.notifications()
	require.Len(suite.T(), notifications, 1)
	assert.Equal(suite.T(), invoice.Data.ID, notifications[0].InvoiceID)
	assert.Equal(suite.T(), "R-7", notifications[0].InvoiceNumber)
	require.Len(suite.T(), notifications[0].Recipients, 1)
	assert.Equal(suite.T(), "jane.doe", notifications[0].Recipients[0].Responsible)
	assert.True(suite.T(), decimal.NewFromInt(200).Equal(notifications[0].Recipients[0].Value))
}

func (suite *TestSuiteStandard) TestAllocationsNotificationFailureKeepsSave() {
	suite.notifier.err = errors.New("mail server unavailable")
	invoice := createTestInvoice(suite.T(), v1.InvoiceEditable{})

	r := test.Request(suite.T(), http.MethodPut, invoice.Data.Links.Allocations, v1.AllocationSetEditable{
		Allocations:      []v1.AllocationItem{item("ACME", "Sales", "100")},
		SendNotification: true,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodGet, invoice.Data.Links.Allocations, "")
	var response v1.AllocationSetResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Len(suite.T(), response.Data.Allocations, 1)
}
