package business

import (
	"strings"

	"github.com/shopspring/decimal"
)

// RateTable is an immutable snapshot of jurisdiction rates and category
// modifiers, built once at process start from a RateSource. County rates
// are keyed by either "STATE" (state-wide override) or "STATE:CITY";
// city rates are keyed by "STATE:CITY". All lookups are pure reads, safe
// for unlimited concurrent use.
type RateTable struct {
	stateRates        map[string]decimal.Decimal
	countyRates       map[string]decimal.Decimal
	cityRates         map[string]decimal.Decimal
	categoryModifiers map[string]decimal.Decimal
}

// NewRateTable constructs a RateTable from the given maps. The maps are
// copied; callers keep no handle into the snapshot.
func NewRateTable(stateRates, countyRates, cityRates, categoryModifiers map[string]decimal.Decimal) *RateTable {
	return &RateTable{
		stateRates:        copyRates(stateRates),
		countyRates:       copyRates(countyRates),
		cityRates:         copyRates(cityRates),
		categoryModifiers: copyRates(categoryModifiers),
	}
}

func copyRates(src map[string]decimal.Decimal) map[string]decimal.Decimal {
	dst := make(map[string]decimal.Decimal, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// JurisdictionKey builds the composite "STATE:CITY" key used by county
// and city rate lookups and by the address validation cache.
func JurisdictionKey(state, city string) string {
	return state + ":" + city
}

// StateRate returns the state rate, zero when the state is unconfigured.
func (t *RateTable) StateRate(state string) decimal.Decimal {
	return t.stateRates[state]
}

// CountyRate returns the county override for the state or state:city
// pair. The city-level key wins over the state-wide one.
func (t *RateTable) CountyRate(state, city string) (decimal.Decimal, bool) {
	if rate, ok := t.countyRates[JurisdictionKey(state, city)]; ok {
		return rate, true
	}
	rate, ok := t.countyRates[state]
	return rate, ok
}

// CityRate returns the city rate for the state:city pair, if configured.
func (t *RateTable) CityRate(state, city string) (decimal.Decimal, bool) {
	rate, ok := t.cityRates[JurisdictionKey(state, city)]
	return rate, ok
}

// CategoryModifier returns the modifier for the category, zero when unknown.
func (t *RateTable) CategoryModifier(category string) decimal.Decimal {
	return t.categoryModifiers[category]
}

// States returns the states that have a configured state rate.
func (t *RateTable) States() []string {
	states := make([]string, 0, len(t.stateRates))
	for state := range t.stateRates {
		states = append(states, state)
	}
	return states
}

// HasState reports whether the state has a configured state rate.
func (t *RateTable) HasState(state string) bool {
	_, ok := t.stateRates[state]
	return ok
}

// CityRatesFor returns the configured city rates within a state, keyed
// by city name.
func (t *RateTable) CityRatesFor(state string) map[string]decimal.Decimal {
	prefix := state + ":"
	rates := make(map[string]decimal.Decimal)
	for key, rate := range t.cityRates {
		if strings.HasPrefix(key, prefix) {
			rates[strings.TrimPrefix(key, prefix)] = rate
		}
	}
	return rates
}

// CategoryModifiers returns a copy of the configured category modifiers.
func (t *RateTable) CategoryModifiers() map[string]decimal.Decimal {
	return copyRates(t.categoryModifiers)
}
