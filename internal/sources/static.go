package sources

import (
	"context"

	"github.com/enriquevdb/compliance-engine/internal/types/business"
	"github.com/shopspring/decimal"
)

// Static in-memory providers. These carry the default rule data the
// service ships with and double as fixtures in tests. Rates follow the
// configuration-time-only model: they are read once at startup and never
// refreshed.

// StaticRateSource serves jurisdiction rates from in-memory maps.
type StaticRateSource struct {
	stateRates        map[string]decimal.Decimal
	countyRates       map[string]decimal.Decimal
	cityRates         map[string]decimal.Decimal
	categoryModifiers map[string]decimal.Decimal
}

// NewStaticRateSource creates a rate source over the given maps.
func NewStaticRateSource(stateRates, countyRates, cityRates, categoryModifiers map[string]decimal.Decimal) *StaticRateSource {
	return &StaticRateSource{
		stateRates:        stateRates,
		countyRates:       countyRates,
		cityRates:         cityRates,
		categoryModifiers: categoryModifiers,
	}
}

// NewDefaultRateSource returns the built-in rate configuration.
func NewDefaultRateSource() *StaticRateSource {
	return NewStaticRateSource(
		map[string]decimal.Decimal{
			"CA": decimal.NewFromFloat(0.06),
			"NY": decimal.NewFromFloat(0.04),
			"TX": decimal.NewFromFloat(0.0625),
			"FL": decimal.NewFromFloat(0.06),
			"WA": decimal.NewFromFloat(0.065),
		},
		map[string]decimal.Decimal{
			// State-wide county overrides, with a city-level override for NYC.
			"CA":          decimal.NewFromFloat(0.0025),
			"TX":          decimal.NewFromFloat(0.005),
			"WA":          decimal.NewFromFloat(0.003),
			"NY:NEW_YORK": decimal.NewFromFloat(0.00375),
		},
		map[string]decimal.Decimal{
			"CA:LOS_ANGELES":   decimal.NewFromFloat(0.0225),
			"CA:SAN_FRANCISCO": decimal.NewFromFloat(0.0225),
			"CA:SAN_DIEGO":     decimal.NewFromFloat(0.0175),
			"NY:NEW_YORK":      decimal.NewFromFloat(0.045),
			"TX:AUSTIN":        decimal.NewFromFloat(0.02),
			"WA:SEATTLE":       decimal.NewFromFloat(0.0365),
		},
		map[string]decimal.Decimal{
			"SOFTWARE":    decimal.NewFromFloat(0.01),
			"ELECTRONICS": decimal.NewFromFloat(0.005),
			"LUXURY":      decimal.NewFromFloat(0.02),
		},
	)
}

func (s *StaticRateSource) StateRates(ctx context.Context) (map[string]decimal.Decimal, error) {
	return s.stateRates, nil
}

func (s *StaticRateSource) CountyRates(ctx context.Context) (map[string]decimal.Decimal, error) {
	return s.countyRates, nil
}

func (s *StaticRateSource) CityRates(ctx context.Context) (map[string]decimal.Decimal, error) {
	return s.cityRates, nil
}

func (s *StaticRateSource) CategoryModifiers(ctx context.Context) (map[string]decimal.Decimal, error) {
	return s.categoryModifiers, nil
}

// StaticJurisdictionLookup answers support queries from a local
// JurisdictionSet. It never fails, which also makes it the natural
// fallback snapshot for the address validation gate.
type StaticJurisdictionLookup struct {
	set *business.JurisdictionSet
}

// NewStaticJurisdictionLookup creates a lookup over the given set.
func NewStaticJurisdictionLookup(set *business.JurisdictionSet) *StaticJurisdictionLookup {
	return &StaticJurisdictionLookup{set: set}
}

// DefaultJurisdictionSet returns the built-in supported states and cities.
func DefaultJurisdictionSet() *business.JurisdictionSet {
	return business.NewJurisdictionSet(map[string][]string{
		"CA": {"LOS_ANGELES", "SAN_FRANCISCO", "SAN_DIEGO", "SACRAMENTO"},
		"NY": {"NEW_YORK", "BUFFALO", "ALBANY"},
		"TX": {"AUSTIN", "DALLAS", "HOUSTON"},
		"FL": {"MIAMI", "ORLANDO", "TAMPA"},
		"WA": {"SEATTLE", "SPOKANE"},
	})
}

func (l *StaticJurisdictionLookup) IsStateSupported(ctx context.Context, state string) (bool, error) {
	return l.set.ContainsState(state), nil
}

func (l *StaticJurisdictionLookup) IsCitySupported(ctx context.Context, state, city string) (bool, error) {
	return l.set.ContainsCity(state, city), nil
}

// Set exposes the underlying snapshot for use as a fallback.
func (l *StaticJurisdictionLookup) Set() *business.JurisdictionSet {
	return l.set
}

// merchantStateKey identifies a merchant/state volume record.
type merchantStateKey struct {
	merchantID string
	state      string
}

// StaticMerchantVolumeSource serves merchant volumes and thresholds from
// in-memory records. Unknown merchant/state pairs report zero volume.
type StaticMerchantVolumeSource struct {
	volumes    map[merchantStateKey]decimal.Decimal
	thresholds map[merchantStateKey]decimal.Decimal
}

// NewStaticMerchantVolumeSource creates an empty volume source.
func NewStaticMerchantVolumeSource() *StaticMerchantVolumeSource {
	return &StaticMerchantVolumeSource{
		volumes:    make(map[merchantStateKey]decimal.Decimal),
		thresholds: make(map[merchantStateKey]decimal.Decimal),
	}
}

// NewDefaultMerchantVolumeSource returns the built-in merchant records.
func NewDefaultMerchantVolumeSource() *StaticMerchantVolumeSource {
	s := NewStaticMerchantVolumeSource()
	s.SetVolume("MERCH-001", "CA", decimal.NewFromInt(250_000))
	s.SetVolume("MERCH-002", "CA", decimal.NewFromInt(50_000))
	s.SetVolume("MERCH-003", "NY", decimal.NewFromInt(150_000))
	s.SetVolume("MERCH-001", "TX", decimal.NewFromInt(120_000))
	return s
}

// SetVolume records a merchant's volume for a state.
func (s *StaticMerchantVolumeSource) SetVolume(merchantID, state string, volume decimal.Decimal) {
	s.volumes[merchantStateKey{merchantID, state}] = volume
}

// SetThreshold records an explicit threshold for a merchant/state pair.
func (s *StaticMerchantVolumeSource) SetThreshold(merchantID, state string, threshold decimal.Decimal) {
	s.thresholds[merchantStateKey{merchantID, state}] = threshold
}

func (s *StaticMerchantVolumeSource) Volume(ctx context.Context, merchantID, state string) (decimal.Decimal, error) {
	return s.volumes[merchantStateKey{merchantID, state}], nil
}

func (s *StaticMerchantVolumeSource) Threshold(ctx context.Context, merchantID, state string) (decimal.Decimal, bool, error) {
	threshold, ok := s.thresholds[merchantStateKey{merchantID, state}]
	return threshold, ok, nil
}

// StaticExemptionRuleSource serves the exemption rule configuration.
type StaticExemptionRuleSource struct {
	customerTypes []string
	itemRules     []business.ExemptionRule
}

// NewStaticExemptionRuleSource creates a rule source over the given sets.
func NewStaticExemptionRuleSource(customerTypes []string, itemRules []business.ExemptionRule) *StaticExemptionRuleSource {
	return &StaticExemptionRuleSource{customerTypes: customerTypes, itemRules: itemRules}
}

// NewDefaultExemptionRuleSource returns the built-in exemption rules.
func NewDefaultExemptionRuleSource() *StaticExemptionRuleSource {
	return NewStaticExemptionRuleSource(
		[]string{"WHOLESALE", "NONPROFIT", "GOVERNMENT", "RESELLER"},
		[]business.ExemptionRule{
			{Category: "FOOD", State: "CA"},
			{Category: "MEDICINE", State: "CA"},
			{Category: "FOOD", State: "TX"},
			{Category: "AGRICULTURE", State: "TX"},
		},
	)
}

func (s *StaticExemptionRuleSource) ExemptCustomerTypes(ctx context.Context) ([]string, error) {
	return s.customerTypes, nil
}

func (s *StaticExemptionRuleSource) ItemExemptionRules(ctx context.Context) ([]business.ExemptionRule, error) {
	return s.itemRules, nil
}
