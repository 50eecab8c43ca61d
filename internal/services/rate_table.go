package services

import (
	"context"
	"fmt"

	"github.com/enriquevdb/compliance-engine/internal/interfaces"
	"github.com/enriquevdb/compliance-engine/internal/logger"
	"github.com/enriquevdb/compliance-engine/internal/types/business"
	"go.uber.org/zap"
)

// BuildRateTable drains the rate source into an immutable RateTable
// snapshot. This runs once at process start; afterwards every
// calculation reads the snapshot without touching the source again.
func BuildRateTable(ctx context.Context, source interfaces.RateSource) (*business.RateTable, error) {
	stateRates, err := source.StateRates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load state rates: %w", err)
	}

	countyRates, err := source.CountyRates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load county rates: %w", err)
	}

	cityRates, err := source.CityRates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load city rates: %w", err)
	}

	categoryModifiers, err := source.CategoryModifiers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load category modifiers: %w", err)
	}

	logger.Info("Built rate table",
		zap.Int("state_rates", len(stateRates)),
		zap.Int("county_rates", len(countyRates)),
		zap.Int("city_rates", len(cityRates)),
		zap.Int("category_modifiers", len(categoryModifiers)))

	return business.NewRateTable(stateRates, countyRates, cityRates, categoryModifiers), nil
}

// BuildExemptionRules drains the exemption rule source into an immutable
// ExemptionRules snapshot, once at process start.
func BuildExemptionRules(ctx context.Context, source interfaces.ExemptionRuleSource) (*business.ExemptionRules, error) {
	customerTypes, err := source.ExemptCustomerTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load exempt customer types: %w", err)
	}

	itemRules, err := source.ItemExemptionRules(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load item exemption rules: %w", err)
	}

	logger.Info("Built exemption rules",
		zap.Int("customer_types", len(customerTypes)),
		zap.Int("item_rules", len(itemRules)))

	return business.NewExemptionRules(customerTypes, itemRules), nil
}
