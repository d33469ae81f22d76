package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	v1 "github.com/backoffice-dms/allocations/internal/controllers/v1"
	"github.com/backoffice-dms/allocations/internal/models"
	"github.com/backoffice-dms/allocations/internal/types"
	"github.com/backoffice-dms/allocations/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestInvoicesCreate() {
	tests := []struct {
		name     string
		invoices []v1.InvoiceEditable
		status   int
		errors   []string
	}{
		{
			"One success, one fail",
			[]v1.InvoiceEditable{
				{Number: "R-1", GrossValue: decimal.NewFromInt(100)},
				{Number: "", GrossValue: decimal.NewFromInt(100)},
			},
			http.StatusBadRequest,
			[]string{"", models.ErrInvoiceNumberEmpty.Error()},
		},
		{
			"Both succeed",
			[]v1.InvoiceEditable{
				{Number: "R-1", Currency: "eur"},
				{Number: "R-2", SplitBase: models.SplitBaseNet},
			},
			http.StatusCreated,
			[]string{"", ""},
		},
		{
			"Duplicate number",
			[]v1.InvoiceEditable{
				{Number: "R-1"},
				{Number: "R-1"},
			},
			http.StatusBadRequest,
			[]string{"", models.ErrInvoiceNumberNotUnique.Error()},
		},
		{
			"Invalid currency and split base",
			[]v1.InvoiceEditable{
				{Number: "R-1", Currency: "EURO"},
				{Number: "R-2", SplitBase: "tax"},
			},
			http.StatusBadRequest,
			[]string{models.ErrInvoiceCurrencyInvalid.Error(), models.ErrSplitBaseInvalid.Error()},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			// Clean database for every test
			suite.SetupTest()
			defer suite.TearDownTest()

			r := test.Request(t, http.MethodPost, "http://example.com/v1/invoices", tt.invoices)
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.InvoiceCreateResponse
			test.DecodeResponse(t, &r, &response)
			require.Len(t, response.Data, len(tt.errors))

			for i, invoice := range response.Data {
				if tt.errors[i] == "" {
					assert.Nil(t, invoice.Error)
					require.NotNil(t, invoice.Data)
					assert.Equal(t, fmt.Sprintf("http://example.com/v1/invoices/%s", invoice.Data.ID), invoice.Data.Links.Self)
					continue
				}

				require.NotNil(t, invoice.Error)
				assert.Equal(t, tt.errors[i], *invoice.Error)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestInvoicesCreateBrokenBody() {
	tests := []struct {
		name string
		body string
	}{
		{"Empty", ""},
		{"Broken JSON", `[{ "number": 2 }`},
		{"Wrong type", `[{ "number": 2 }]`},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/invoices", tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestInvoicesDefaults() {
	issued := time.Date(2024, 3, 14, 12, 0, 0, 0, time.UTC)
	invoice := createTestInvoice(suite.T(), v1.InvoiceEditable{
		Number:     "  R-42 ",
		Currency:   "chf",
		IssueDate:  issued,
		GrossValue: decimal.NewFromInt(1190),
		NetValue:   decimal.NewFromInt(1000),
	})

	assert.Equal(suite.T(), "R-42", invoice.Data.Number)
	assert.Equal(suite.T(), "CHF", invoice.Data.Currency)
	assert.Equal(suite.T(), models.SplitBaseGross, invoice.Data.SplitBase)
	assert.Equal(suite.T(), types.NewMonth(2024, time.March), invoice.Data.AccountingMonth)
	assert.True(suite.T(), decimal.NewFromInt(1190).Equal(invoice.Data.BaseValue))
	assert.Equal(suite.T(), invoice.Data.Links.Self+"/allocations", invoice.Data.Links.Allocations)
}

func (suite *TestSuiteStandard) TestInvoicesGetSingle() {
	invoice := createTestInvoice(suite.T(), v1.InvoiceEditable{Supplier: "Office Supplies Ltd."})

	tests := []struct {
		name   string
		path   string
		status int
	}{
		{"Existing", invoice.Data.Links.Self, http.StatusOK},
		{"Not found", fmt.Sprintf("http://example.com/v1/invoices/%s", uuid.New()), http.StatusNotFound},
		{"Invalid ID", "http://example.com/v1/invoices/not-a-uuid", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, tt.path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status != http.StatusOK {
				return
			}

			var response v1.InvoiceResponse
			test.DecodeResponse(t, &r, &response)
			assert.Equal(t, "Office Supplies Ltd.", response.Data.Supplier)
		})
	}
}

func (suite *TestSuiteStandard) TestInvoicesGetFilter() {
	_ = createTestInvoice(suite.T(), v1.InvoiceEditable{
		Number:          "R-2024-1",
		Supplier:        "Office Supplies Ltd.",
		Company:         "ACME",
		Currency:        "EUR",
		AccountingMonth: types.NewMonth(2024, time.March),
		Note:            "Paper",
	})

	_ = createTestInvoice(suite.T(), v1.InvoiceEditable{
		Number:          "R-2024-2",
		Supplier:        "Coffee Roasters",
		Company:         "ACME",
		Currency:        "USD",
		AccountingMonth: types.NewMonth(2024, time.April),
	})

	_ = createTestInvoice(suite.T(), v1.InvoiceEditable{
		Number:          "X-7",
		Supplier:        "Office Furniture Inc.",
		Company:         "ACME Logistics",
		Currency:        "EUR",
		AccountingMonth: types.NewMonth(2024, time.March),
	})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"All", "", 3},
		{"Number", "number=R-2024", 2},
		{"Supplier", "supplier=Office", 2},
		{"Company", "company=ACME", 2},
		{"Currency", "currency=eur", 2},
		{"Month", "month=2024-03", 2},
		{"Search note", "search=paper", 1},
		{"Search number and supplier", "search=X-7", 1},
		{"Search no match", "search=Tea", 0},
		{"Offset", "offset=1", 2},
		{"Limit", "limit=1", 1},
		{"Combined", "currency=EUR&company=ACME", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/invoices?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.InvoiceListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.len)

			require.NotNil(t, response.Pagination)
			assert.Equal(t, tt.len, response.Pagination.Count)
		})
	}
}

func (suite *TestSuiteStandard) TestInvoicesGetFilterErrors() {
	tests := []struct {
		name  string
		query string
	}{
		{"Broken month", "month=March"},
		{"Broken offset", "offset=-1"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/invoices?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestInvoicesUpdate() {
	invoice := createTestInvoice(suite.T(), v1.InvoiceEditable{
		Number:     "R-1",
		Note:       "Before",
		GrossValue: decimal.NewFromInt(1190),
		NetValue:   decimal.NewFromInt(1000),
	})

	r := test.Request(suite.T(), http.MethodPatch, invoice.Data.Links.Self, map[string]any{
		"note": "After",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.InvoiceResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "After", response.Data.Note)
	assert.Equal(suite.T(), "R-1", response.Data.Number, "Fields not in the body must not change")
	assert.True(suite.T(), decimal.NewFromInt(1190).Equal(response.Data.GrossValue))
}

func (suite *TestSuiteStandard) TestInvoicesUpdateRecalculatesAllocations() {
	invoice := createTestInvoice(suite.T(), v1.InvoiceEditable{
		GrossValue: decimal.NewFromInt(1190),
		NetValue:   decimal.NewFromInt(1000),
	})

	r := test.Request(suite.T(), http.MethodPut, invoice.Data.Links.Allocations, v1.AllocationSetEditable{
		Allocations: []v1.AllocationItem{
			item("ACME", "Sales", "40"),
			item("ACME", "Marketing", "60"),
		},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodPatch, invoice.Data.Links.Self, map[string]any{
		"splitBase": "net",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodGet, invoice.Data.Links.Allocations, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.AllocationSetResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data.Allocations, 2)

	assert.True(suite.T(), decimal.NewFromInt(1000).Equal(response.Data.BaseValue))
	assert.True(suite.T(), decimal.NewFromInt(400).Equal(response.Data.Allocations[0].AllocationValue), response.Data.Allocations[0].AllocationValue.String())
	assert.True(suite.T(), decimal.NewFromInt(600).Equal(response.Data.Allocations[1].AllocationValue), response.Data.Allocations[1].AllocationValue.String())
	assert.True(suite.T(), decimal.NewFromInt(40).Equal(response.Data.Allocations[0].AllocationPercent), "Percentages must not change")
}

func (suite *TestSuiteStandard) TestInvoicesUpdateFails() {
	invoice := createTestInvoice(suite.T(), v1.InvoiceEditable{Number: "R-1"})
	_ = createTestInvoice(suite.T(), v1.InvoiceEditable{Number: "R-2"})

	tests := []struct {
		name   string
		path   string
		body   any
		status int
	}{
		{"Broken body", invoice.Data.Links.Self, `{ "number": 2 }`, http.StatusBadRequest},
		{"Empty number", invoice.Data.Links.Self, map[string]any{"number": ""}, http.StatusBadRequest},
		{"Duplicate number", invoice.Data.Links.Self, map[string]any{"number": "R-2"}, http.StatusBadRequest},
		{"Negative value", invoice.Data.Links.Self, map[string]any{"grossValue": -5}, http.StatusBadRequest},
		{"Not found", fmt.Sprintf("http://example.com/v1/invoices/%s", uuid.New()), map[string]any{"note": "x"}, http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, tt.path, tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestInvoicesDelete() {
	invoice := createTestInvoice(suite.T(), v1.InvoiceEditable{})

	r := test.Request(suite.T(), http.MethodPut, invoice.Data.Links.Allocations, v1.AllocationSetEditable{
		Allocations: []v1.AllocationItem{item("ACME", "Sales", "100")},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodDelete, invoice.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, invoice.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	var count int64
	require.Nil(suite.T(), models.DB.Model(&models.Allocation{}).Where("invoice_id = ?", invoice.Data.ID).Count(&count).Error)
	assert.Equal(suite.T(), int64(0), count, "Allocations of a deleted invoice must be deleted")

	r = test.Request(suite.T(), http.MethodDelete, invoice.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestInvoicesDBError() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/invoices", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
