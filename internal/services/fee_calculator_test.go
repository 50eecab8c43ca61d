package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/enriquevdb/compliance-engine/internal/logger"
	"github.com/enriquevdb/compliance-engine/internal/services"
	"github.com/enriquevdb/compliance-engine/internal/sources"
	"github.com/enriquevdb/compliance-engine/internal/types/business"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	logger.InitLogger("test")
}

func defaultRateTable(t *testing.T) *business.RateTable {
	t.Helper()
	table, err := services.BuildRateTable(context.Background(), sources.NewDefaultRateSource())
	require.NoError(t, err)
	return table
}

func noExemptions() business.ExemptionData {
	return business.ExemptionData{
		CustomerExemptions: []string{},
		ItemExemptions:     map[string][]string{},
	}
}

func feeTransaction(state, city string, items []business.Item) business.Transaction {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Amount)
	}
	return business.Transaction{
		ID:         "TXN-1001",
		MerchantID: "MERCH-001",
		CustomerID: "CUST-1",
		Destination: business.Destination{
			Country: "US",
			State:   state,
			City:    city,
		},
		Items:       items,
		TotalAmount: total,
		Currency:    "USD",
	}
}

func TestFeeCalculator_CaliforniaSoftware(t *testing.T) {
	calculator := services.NewFeeCalculator(defaultRateTable(t))

	tx := feeTransaction("CA", "LOS_ANGELES", []business.Item{
		{ID: "ITM-1", Category: "SOFTWARE", Amount: decimal.RequireFromString("100.00")},
	})

	result := calculator.CalculateFees(tx, noExemptions())
	require.Len(t, result.Items, 1)

	item := result.Items[0]
	assert.Equal(t, "ITM-1", item.ItemID)
	assert.True(t, item.Fees.StateRate.Amount.Equal(decimal.RequireFromString("6.00")),
		"state fee should be 6.00, got %s", item.Fees.StateRate.Amount)
	require.NotNil(t, item.Fees.CountyRate)
	assert.True(t, item.Fees.CountyRate.Amount.Equal(decimal.RequireFromString("0.25")),
		"county fee should be 0.25, got %s", item.Fees.CountyRate.Amount)
	require.NotNil(t, item.Fees.CityRate)
	assert.True(t, item.Fees.CityRate.Amount.Equal(decimal.RequireFromString("2.25")),
		"city fee should be 2.25, got %s", item.Fees.CityRate.Amount)
	assert.True(t, item.Fees.CategoryModifier.Amount.Equal(decimal.RequireFromString("1.00")),
		"category modifier fee should be 1.00, got %s", item.Fees.CategoryModifier.Amount)

	assert.True(t, item.TotalFee.Equal(decimal.RequireFromString("9.50")),
		"item total should be 9.50, got %s", item.TotalFee)
	assert.True(t, result.TotalFees.Equal(decimal.RequireFromString("9.50")),
		"total fees should be 9.50, got %s", result.TotalFees)
	assert.True(t, result.EffectiveRate.Equal(decimal.RequireFromString("0.095")),
		"effective rate should be 0.095, got %s", result.EffectiveRate)

	// One audit line per applied non-zero component.
	assert.Len(t, result.AuditTrail, 4)
}

func TestFeeCalculator_ItemExemption(t *testing.T) {
	calculator := services.NewFeeCalculator(defaultRateTable(t))

	tests := []struct {
		name       string
		state      string
		city       string
		exemptions business.ExemptionData
		expectZero bool
	}{
		{
			name:  "FOOD exempt in CA",
			state: "CA",
			city:  "LOS_ANGELES",
			exemptions: business.ExemptionData{
				CustomerExemptions: []string{},
				ItemExemptions:     map[string][]string{"ITM-1": {"FOOD exempt in CA"}},
			},
			expectZero: true,
		},
		{
			name:       "FOOD not exempt in NY",
			state:      "NY",
			city:       "NEW_YORK",
			exemptions: noExemptions(),
			expectZero: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := feeTransaction(tt.state, tt.city, []business.Item{
				{ID: "ITM-1", Category: "FOOD", Amount: decimal.RequireFromString("50.00")},
			})

			result := calculator.CalculateFees(tx, tt.exemptions)
			require.Len(t, result.Items, 1)

			if tt.expectZero {
				assert.True(t, result.Items[0].TotalFee.IsZero(),
					"exempt item fee should be zero, got %s", result.Items[0].TotalFee)
				assert.True(t, result.TotalFees.IsZero(),
					"total fees should be zero, got %s", result.TotalFees)
			} else {
				assert.True(t, result.Items[0].TotalFee.GreaterThan(decimal.Zero),
					"non-exempt item should carry a fee")
				assert.True(t, result.TotalFees.GreaterThan(decimal.Zero))
			}
		})
	}
}

func TestFeeCalculator_CustomerExemptionZeroesEverything(t *testing.T) {
	calculator := services.NewFeeCalculator(defaultRateTable(t))

	tx := feeTransaction("CA", "SAN_FRANCISCO", []business.Item{
		{ID: "ITM-1", Category: "SOFTWARE", Amount: decimal.RequireFromString("100.00")},
		{ID: "ITM-2", Category: "LUXURY", Amount: decimal.RequireFromString("250.00")},
		{ID: "ITM-3", Category: "ELECTRONICS", Amount: decimal.RequireFromString("19.99")},
	})

	exemptions := business.ExemptionData{
		CustomerExemptions: []string{"WHOLESALE"},
		ItemExemptions:     map[string][]string{},
	}

	result := calculator.CalculateFees(tx, exemptions)
	require.Len(t, result.Items, 3)

	for _, item := range result.Items {
		assert.True(t, item.TotalFee.IsZero(), "item %s fee should be zero", item.ItemID)
	}
	assert.True(t, result.TotalFees.IsZero())
	assert.True(t, result.EffectiveRate.IsZero())

	// One audit line per exempted item.
	assert.Len(t, result.AuditTrail, 3)
}

func TestFeeCalculator_SumConsistencyManyItems(t *testing.T) {
	calculator := services.NewFeeCalculator(defaultRateTable(t))

	// 47 items with fractional amounts to stress per-component rounding.
	items := make([]business.Item, 0, 47)
	for i := 0; i < 47; i++ {
		amount := decimal.RequireFromString("3.33").
			Add(decimal.NewFromInt(int64(i)).Mul(decimal.RequireFromString("1.07")))
		items = append(items, business.Item{
			ID:       fmt.Sprintf("ITM-%02d", i),
			Category: "ELECTRONICS",
			Amount:   amount,
		})
	}
	tx := feeTransaction("CA", "LOS_ANGELES", items)

	result := calculator.CalculateFees(tx, noExemptions())
	require.Len(t, result.Items, 47)

	sum := decimal.Zero
	for _, item := range result.Items {
		sum = sum.Add(item.TotalFee)
	}

	diff := sum.Sub(result.TotalFees).Abs()
	assert.True(t, diff.LessThanOrEqual(decimal.RequireFromString("0.01")),
		"item fees sum %s should match total %s within one cent", sum, result.TotalFees)

	// Effective rate matches the documented formula.
	expectedRate := result.TotalFees.Div(tx.TotalAmount).Round(4)
	assert.True(t, result.EffectiveRate.Equal(expectedRate),
		"effective rate should be %s, got %s", expectedRate, result.EffectiveRate)
}

func TestFeeCalculator_MixedExemptAndTaxableItems(t *testing.T) {
	calculator := services.NewFeeCalculator(defaultRateTable(t))

	tx := feeTransaction("CA", "SAN_DIEGO", []business.Item{
		{ID: "ITM-1", Category: "FOOD", Amount: decimal.RequireFromString("40.00")},
		{ID: "ITM-2", Category: "SOFTWARE", Amount: decimal.RequireFromString("60.00")},
	})

	exemptions := business.ExemptionData{
		CustomerExemptions: []string{},
		ItemExemptions:     map[string][]string{"ITM-1": {"FOOD exempt in CA"}},
	}

	result := calculator.CalculateFees(tx, exemptions)
	require.Len(t, result.Items, 2)

	assert.True(t, result.Items[0].TotalFee.IsZero(), "exempt item should be zero")
	assert.True(t, result.Items[1].TotalFee.GreaterThan(decimal.Zero), "taxable item should carry a fee")
	assert.True(t, result.TotalFees.Equal(result.Items[1].TotalFee))
}

func TestFeeCalculator_ZeroTotalAmount(t *testing.T) {
	calculator := services.NewFeeCalculator(defaultRateTable(t))

	tx := feeTransaction("CA", "LOS_ANGELES", []business.Item{
		{ID: "ITM-1", Category: "SOFTWARE", Amount: decimal.Zero},
	})

	result := calculator.CalculateFees(tx, noExemptions())
	assert.True(t, result.TotalFees.IsZero())
	assert.True(t, result.EffectiveRate.IsZero(), "effective rate must be zero when totalAmount is zero")
}

func TestFeeCalculator_UnknownStateAndCategory(t *testing.T) {
	calculator := services.NewFeeCalculator(defaultRateTable(t))

	tx := feeTransaction("NV", "RENO", []business.Item{
		{ID: "ITM-1", Category: "UNCLASSIFIED", Amount: decimal.RequireFromString("100.00")},
	})

	result := calculator.CalculateFees(tx, noExemptions())
	require.Len(t, result.Items, 1)

	item := result.Items[0]
	assert.True(t, item.Fees.StateRate.Amount.IsZero(), "unconfigured state rate should be zero")
	assert.Nil(t, item.Fees.CountyRate, "no county override should be present")
	assert.Nil(t, item.Fees.CityRate, "no city rate should be present")
	assert.True(t, item.Fees.CategoryModifier.Amount.IsZero(), "unknown category modifier should be zero")
	assert.True(t, result.TotalFees.IsZero())
}
