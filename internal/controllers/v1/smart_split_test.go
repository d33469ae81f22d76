package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/backoffice-dms/allocations/internal/controllers/v1"
	"github.com/backoffice-dms/allocations/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestSmartSplit() {
	tests := []struct {
		count    int
		percents []string
	}{
		{1, []string{"100"}},
		{2, []string{"50", "50"}},
		{3, []string{"40", "30", "30"}},
		{4, []string{"40", "20", "20", "20"}},
		{7, []string{"40", "10", "10", "10", "10", "10", "10"}},
	}

	for _, tt := range tests {
		suite.T().Run(fmt.Sprint(tt.count), func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/smart-split?count=%d", tt.count), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.SmartSplitResponse
			test.DecodeResponse(t, &r, &response)
			require.Len(t, response.Data, len(tt.percents))

			for i, p := range tt.percents {
				assert.True(t, decimal.RequireFromString(p).Equal(response.Data[i]), "share %d: expected %s, got %s", i, p, response.Data[i])
			}
		})
	}
}

func (suite *TestSuiteStandard) TestSmartSplitSumsToHundred() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/smart-split?count=6", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SmartSplitResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.True(suite.T(), decimal.Sum(decimal.Zero, response.Data...).Equal(decimal.NewFromInt(100)))
}

func (suite *TestSuiteStandard) TestSmartSplitMaxCount() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/smart-split?count=1000", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SmartSplitResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data, 1000)
	assert.True(suite.T(), decimal.Sum(decimal.Zero, response.Data...).Equal(decimal.NewFromInt(100)))
}

func (suite *TestSuiteStandard) TestSmartSplitInvalidCount() {
	tests := []string{"", "count=", "count=0", "count=-3", "count=1001", "count=2.5", "count=three"}

	for _, tt := range tests {
		suite.T().Run(tt, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/smart-split?%s", tt), "")
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			var response v1.SmartSplitResponse
			test.DecodeResponse(t, &r, &response)
			require.NotNil(t, response.Error)
			assert.Equal(t, "the count query parameter must be an integer between 1 and 1000", *response.Error)
		})
	}
}
