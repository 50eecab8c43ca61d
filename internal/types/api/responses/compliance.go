package responses

import (
	"github.com/shopspring/decimal"
)

// The JSON field names in this package are a stable contract: downstream
// consumers match on the literal gate names, status values and fee
// component keys.

// FeeComponent is one rate application within an item breakdown. Either
// Jurisdiction (state/county/city components) or Category (modifier
// component) is set.
type FeeComponent struct {
	Jurisdiction string          `json:"jurisdiction,omitempty"`
	Category     string          `json:"category,omitempty"`
	Rate         decimal.Decimal `json:"rate"`
	Amount       decimal.Decimal `json:"amount"`
}

// ItemFeeBreakdown holds the four fee components of a single item.
// County and city components appear only when the rate table has an
// override configured for the destination.
type ItemFeeBreakdown struct {
	StateRate        FeeComponent  `json:"stateRate"`
	CountyRate       *FeeComponent `json:"countyRate,omitempty"`
	CityRate         *FeeComponent `json:"cityRate,omitempty"`
	CategoryModifier FeeComponent  `json:"categoryModifier"`
}

// ItemFeeCalculation is the per-item fee result. Immutable once produced.
type ItemFeeCalculation struct {
	ItemID   string           `json:"itemId"`
	Amount   decimal.Decimal  `json:"amount"`
	Category string           `json:"category"`
	Fees     ItemFeeBreakdown `json:"fees"`
	TotalFee decimal.Decimal  `json:"totalFee"`
}

// CalculationResult aggregates the item calculations. Item totals sum to
// TotalFees within one cent; the last item absorbs any rounding residual.
type CalculationResult struct {
	Items         []ItemFeeCalculation `json:"items"`
	TotalFees     decimal.Decimal      `json:"totalFees"`
	EffectiveRate decimal.Decimal      `json:"effectiveRate"`
	AuditTrail    []string             `json:"auditTrail"`
}

// GateEntry is the public projection of a gate result. AppliedExemptions
// is populated (possibly empty) for the EXEMPTION_CHECK entry only;
// every other entry omits it.
type GateEntry struct {
	Name              string    `json:"name"`
	Passed            bool      `json:"passed"`
	Message           string    `json:"message,omitempty"`
	ErrorType         string    `json:"errorType,omitempty"`
	AppliedExemptions *[]string `json:"appliedExemptions,omitempty"`
}

// ComplianceResponse is the engine's public response shape. Calculation
// is present iff Status is CALCULATED.
type ComplianceResponse struct {
	TransactionID string             `json:"transactionId"`
	Status        string             `json:"status"`
	Gates         []GateEntry        `json:"gates"`
	Calculation   *CalculationResult `json:"calculation,omitempty"`
	AuditTrail    []string           `json:"auditTrail"`
}

// JurisdictionRatesResponse reports the configured rates for one state.
type JurisdictionRatesResponse struct {
	State             string                     `json:"state"`
	StateRate         decimal.Decimal            `json:"stateRate"`
	CountyRate        *decimal.Decimal           `json:"countyRate,omitempty"`
	CityRates         map[string]decimal.Decimal `json:"cityRates,omitempty"`
	CategoryModifiers map[string]decimal.Decimal `json:"categoryModifiers"`
}

// HealthResponse is the health check response
type HealthResponse struct {
	Status string `json:"status"`
}
