package interfaces

import (
	"context"

	"github.com/enriquevdb/compliance-engine/internal/types/business"
	"github.com/shopspring/decimal"
)

// RateSource provides jurisdiction rates and category modifiers. It is
// consumed exactly once, at startup, to build the immutable rate table;
// it is never called per request.
type RateSource interface {
	StateRates(ctx context.Context) (map[string]decimal.Decimal, error)
	CountyRates(ctx context.Context) (map[string]decimal.Decimal, error)
	CityRates(ctx context.Context) (map[string]decimal.Decimal, error)
	CategoryModifiers(ctx context.Context) (map[string]decimal.Decimal, error)
}

// JurisdictionLookup answers whether a state or city is a supported
// jurisdiction. It may be called per request on an address cache miss
// and may fail or time out; callers bound it with a context deadline.
type JurisdictionLookup interface {
	IsStateSupported(ctx context.Context, state string) (bool, error)
	IsCitySupported(ctx context.Context, state, city string) (bool, error)
}

// MerchantVolumeSource provides per-merchant, per-state transaction
// volume and the applicability threshold. Threshold reports ok=false
// when no explicit threshold is configured for the pair.
type MerchantVolumeSource interface {
	Volume(ctx context.Context, merchantID, state string) (decimal.Decimal, error)
	Threshold(ctx context.Context, merchantID, state string) (decimal.Decimal, bool, error)
}

// ExemptionRuleSource provides the exempt customer-type set and the
// (category, state) item exemption rules. Consumed once at startup into
// an immutable ExemptionRules snapshot.
type ExemptionRuleSource interface {
	ExemptCustomerTypes(ctx context.Context) ([]string, error)
	ItemExemptionRules(ctx context.Context) ([]business.ExemptionRule, error)
}
