package models_test

import (
	"github.com/backoffice-dms/allocations/internal/allocation"
	"github.com/backoffice-dms/allocations/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestAllocationSelf() {
	suite.Assert().Equal("Allocation", models.Allocation{}.Self())
	suite.Assert().Equal("Reinvoice Destination", models.ReinvoiceDestination{}.Self())
}

func (suite *TestSuiteStandard) TestReplaceAllocations() {
	invoice := suite.createTestInvoice(models.Invoice{GrossValue: decimal.NewFromInt(1000)})

	stored, err := models.ReplaceAllocations(models.DB, invoice.ID, []models.Allocation{
		{Company: "ACME", Department: "Sales", Percent: decimal.NewFromInt(40), Value: decimal.NewFromInt(400)},
		{
			Company:    " ACME ",
			Department: "IT",
			Percent:    decimal.NewFromInt(60),
			Value:      decimal.NewFromInt(600),
			Locked:     true,
			Destinations: []models.ReinvoiceDestination{
				{Company: "Daughter", Department: "IT", Percentage: decimal.NewFromInt(70)},
				{Company: "Sister", Department: "IT", Percentage: decimal.NewFromInt(30)},
			},
		},
	})
	suite.Require().Nil(err)
	suite.Require().Len(stored, 2)

	suite.Assert().Equal(0, stored[0].Position)
	suite.Assert().Equal("Sales", stored[0].Department)
	suite.Assert().Equal(1, stored[1].Position)
	suite.Assert().Equal("ACME", stored[1].Company, "whitespace must be trimmed")
	suite.Assert().True(stored[1].Locked)
	suite.Assert().True(stored[1].Percent.Equal(decimal.NewFromInt(60)))

	suite.Require().Len(stored[1].Destinations, 2)
	suite.Assert().Equal("Daughter", stored[1].Destinations[0].Company)
	suite.Assert().Equal("Sister", stored[1].Destinations[1].Company)

	// Replacing removes the old allocations and their destinations
	stored, err = models.ReplaceAllocations(models.DB, invoice.ID, []models.Allocation{
		{Company: "ACME", Department: "HR", Percent: decimal.NewFromInt(100), Value: decimal.NewFromInt(1000)},
	})
	suite.Require().Nil(err)
	suite.Require().Len(stored, 1)
	suite.Assert().Equal("HR", stored[0].Department)

	var count int64
	suite.Require().Nil(models.DB.Unscoped().Model(&models.Allocation{}).Count(&count).Error)
	suite.Assert().Equal(int64(1), count)

	suite.Require().Nil(models.DB.Unscoped().Model(&models.ReinvoiceDestination{}).Count(&count).Error)
	suite.Assert().Equal(int64(0), count)
}

func (suite *TestSuiteStandard) TestReplaceAllocationsInvoiceNotFound() {
	_, err := models.ReplaceAllocations(models.DB, uuid.New(), []models.Allocation{
		{Company: "ACME", Department: "HR", Percent: decimal.NewFromInt(100)},
	})
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestReplaceAllocationsAtomic() {
	invoice := suite.createTestInvoice(models.Invoice{})

	_, err := models.ReplaceAllocations(models.DB, invoice.ID, []models.Allocation{
		{Company: "ACME", Department: "HR", Percent: decimal.NewFromInt(100)},
	})
	suite.Require().Nil(err)

	// The second allocation reuses the ID of the first one, so the insert fails
	id := uuid.New()
	_, err = models.ReplaceAllocations(models.DB, invoice.ID, []models.Allocation{
		{DefaultModel: models.DefaultModel{ID: id}, Company: "ACME", Department: "Sales", Percent: decimal.NewFromInt(50)},
		{DefaultModel: models.DefaultModel{ID: id}, Company: "ACME", Department: "IT", Percent: decimal.NewFromInt(50)},
	})
	suite.Require().NotNil(err)

	allocations, err := models.InvoiceAllocations(models.DB, invoice.ID)
	suite.Require().Nil(err)
	suite.Require().Len(allocations, 1)
	suite.Assert().Equal("HR", allocations[0].Department)
}

func (suite *TestSuiteStandard) TestInvoiceAllocationsEmpty() {
	invoice := suite.createTestInvoice(models.Invoice{})

	allocations, err := models.InvoiceAllocations(models.DB, invoice.ID)
	suite.Require().Nil(err)
	suite.Assert().Len(allocations, 0)
}

func (suite *TestSuiteStandard) TestAllocationSplitRoundTrip() {
	split := []allocation.Allocation{
		{
			Details: allocation.Details{Company: "ACME", Brand: "Shiny", Department: "Sales", Subdepartment: "Export", Responsible: "J. Doe", Comment: "Trade fair"},
			Percent: decimal.NewFromInt(25),
			Value:   decimal.NewFromInt(250),
			Locked:  true,
			Destinations: []allocation.Destination{
				{Company: "Daughter", Brand: "Dull", Department: "Sales", Subdepartment: "Domestic", Percentage: decimal.NewFromInt(100)},
			},
		},
	}

	invoiceID := uuid.New()
	allocations := models.AllocationsOf(invoiceID, split)
	suite.Require().Len(allocations, 1)
	suite.Assert().Equal(invoiceID, allocations[0].InvoiceID)
	suite.Assert().Equal(0, allocations[0].Position)

	suite.Assert().Equal(split[0], allocations[0].Split())
}

func (suite *TestSuiteStandard) TestRecalculateAllocationValues() {
	invoice := suite.createTestInvoice(models.Invoice{GrossValue: decimal.NewFromInt(1000), NetValue: decimal.NewFromInt(800)})

	_, err := models.ReplaceAllocations(models.DB, invoice.ID, []models.Allocation{
		{Company: "ACME", Department: "Sales", Percent: decimal.NewFromInt(40), Value: decimal.NewFromInt(400)},
		{Company: "ACME", Department: "IT", Percent: decimal.NewFromInt(60), Value: decimal.NewFromInt(600)},
	})
	suite.Require().Nil(err)

	invoice.SplitBase = models.SplitBaseNet
	suite.Require().Nil(models.RecalculateAllocationValues(models.DB, invoice))

	allocations, err := models.InvoiceAllocations(models.DB, invoice.ID)
	suite.Require().Nil(err)
	suite.Require().Len(allocations, 2)
	suite.Assert().True(allocations[0].Value.Equal(decimal.NewFromInt(320)), "value is %s", allocations[0].Value)
	suite.Assert().True(allocations[1].Value.Equal(decimal.NewFromInt(480)), "value is %s", allocations[1].Value)
	suite.Assert().True(allocations[0].Percent.Equal(decimal.NewFromInt(40)), "percent must not change")
}
