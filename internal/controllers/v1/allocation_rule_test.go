package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/backoffice-dms/allocations/internal/controllers/v1"
	"github.com/backoffice-dms/allocations/internal/models"
	"github.com/backoffice-dms/allocations/test"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestAllocationRulesCreate() {
	tests := []struct {
		name   string
		rules  []v1.AllocationRuleEditable
		status int
		errors []string
	}{
		{
			"All succeed",
			[]v1.AllocationRuleEditable{
				{Match: "Office*", Company: "ACME", Department: "Administration"},
				{Match: "*Coffee*", Company: "ACME", Priority: 2},
			},
			http.StatusCreated,
			[]string{"", ""},
		},
		{
			"Missing match",
			[]v1.AllocationRuleEditable{
				{Match: "Office*", Company: "ACME"},
				{Match: "  ", Company: "ACME"},
			},
			http.StatusBadRequest,
			[]string{"", models.ErrAllocationRuleMatchEmpty.Error()},
		},
		{
			"Missing company",
			[]v1.AllocationRuleEditable{
				{Match: "Office*"},
			},
			http.StatusBadRequest,
			[]string{models.ErrAllocationRuleCompanyEmpty.Error()},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/allocation-rules", tt.rules)
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.AllocationRuleCreateResponse
			test.DecodeResponse(t, &r, &response)
			require.Len(t, response.Data, len(tt.errors))

			for i, rule := range response.Data {
				if tt.errors[i] == "" {
					require.NotNil(t, rule.Data)
					assert.Equal(t, fmt.Sprintf("http://example.com/v1/allocation-rules/%s", rule.Data.ID), rule.Data.Links.Self)
					continue
				}

				require.NotNil(t, rule.Error)
				assert.Equal(t, tt.errors[i], *rule.Error)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestAllocationRulesCreateBrokenBody() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/allocation-rules", `[{ "priority": "first" }]`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestAllocationRulesGetFilter() {
	_ = createTestAllocationRule(suite.T(), v1.AllocationRuleEditable{Priority: 1, Match: "Office*", Company: "ACME"})
	_ = createTestAllocationRule(suite.T(), v1.AllocationRuleEditable{Priority: 1, Match: "Coffee*", Company: "ACME Logistics"})
	_ = createTestAllocationRule(suite.T(), v1.AllocationRuleEditable{Priority: 2, Match: "*Office Furniture*", Company: "ACME"})

	tests := []struct {
		name  string
		query string
		len   int
		total int64
	}{
		{"All", "", 3, 3},
		{"Priority", "priority=1", 2, 2},
		{"Match", "match=Office", 2, 2},
		{"Company", "company=ACME", 2, 2},
		{"Offset", "offset=2", 1, 3},
		{"Limit", "limit=2", 2, 3},
		{"No match", "match=Tea", 0, 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/allocation-rules?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.AllocationRuleListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.len)
			require.NotNil(t, response.Pagination)
			assert.Equal(t, tt.total, response.Pagination.Total)
		})
	}
}

func (suite *TestSuiteStandard) TestAllocationRulesOrder() {
	_ = createTestAllocationRule(suite.T(), v1.AllocationRuleEditable{Priority: 5, Match: "Late*"})
	_ = createTestAllocationRule(suite.T(), v1.AllocationRuleEditable{Priority: 1, Match: "Early*"})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/allocation-rules", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.AllocationRuleListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data, 2)
	assert.Equal(suite.T(), "Early*", response.Data[0].Match)
	assert.Equal(suite.T(), "Late*", response.Data[1].Match)
}

func (suite *TestSuiteStandard) TestAllocationRulesGetSingle() {
	rule := createTestAllocationRule(suite.T(), v1.AllocationRuleEditable{Match: "Office*"})

	r := test.Request(suite.T(), http.MethodGet, rule.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.AllocationRuleResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "Office*", response.Data.Match)

	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/allocation-rules/%s", uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/allocation-rules/not-a-uuid", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestAllocationRulesUpdate() {
	rule := createTestAllocationRule(suite.T(), v1.AllocationRuleEditable{Priority: 3, Match: "Office*", Department: "Administration"})

	r := test.Request(suite.T(), http.MethodPatch, rule.Data.Links.Self, map[string]any{
		"match":    "  Office Supplies* ",
		"priority": 0,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.AllocationRuleResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "Office Supplies*", response.Data.Match)
	assert.Equal(suite.T(), uint(0), response.Data.Priority, "Zero values must be set when they are in the body")
	assert.Equal(suite.T(), "Administration", response.Data.Department)
}

func (suite *TestSuiteStandard) TestAllocationRulesUpdateFails() {
	rule := createTestAllocationRule(suite.T(), v1.AllocationRuleEditable{Match: "Office*"})

	tests := []struct {
		name   string
		path   string
		body   any
		status int
	}{
		{"Empty match", rule.Data.Links.Self, map[string]any{"match": ""}, http.StatusBadRequest},
		{"Empty company", rule.Data.Links.Self, map[string]any{"company": ""}, http.StatusBadRequest},
		{"Broken body", rule.Data.Links.Self, `{ "priority": "high" }`, http.StatusBadRequest},
		{"Not found", fmt.Sprintf("http://example.com/v1/allocation-rules/%s", uuid.New()), map[string]any{"match": "x"}, http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, tt.path, tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestAllocationRulesDelete() {
	rule := createTestAllocationRule(suite.T(), v1.AllocationRuleEditable{})

	r := test.Request(suite.T(), http.MethodDelete, rule.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, rule.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodDelete, rule.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
