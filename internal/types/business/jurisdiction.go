package business

// JurisdictionSet is an immutable snapshot of the supported states and
// the supported cities per state. It backs the synchronous fallback path
// of address validation and the static jurisdiction lookup.
type JurisdictionSet struct {
	states map[string]bool
	cities map[string]map[string]bool
}

// NewJurisdictionSet builds a JurisdictionSet from a state -> cities map.
// Every key of the map is a supported state.
func NewJurisdictionSet(citiesByState map[string][]string) *JurisdictionSet {
	set := &JurisdictionSet{
		states: make(map[string]bool, len(citiesByState)),
		cities: make(map[string]map[string]bool, len(citiesByState)),
	}
	for state, cities := range citiesByState {
		set.states[state] = true
		cs := make(map[string]bool, len(cities))
		for _, city := range cities {
			cs[city] = true
		}
		set.cities[state] = cs
	}
	return set
}

// ContainsState reports whether the state is supported.
func (s *JurisdictionSet) ContainsState(state string) bool {
	return s.states[state]
}

// ContainsCity reports whether the city is supported within the state.
func (s *JurisdictionSet) ContainsCity(state, city string) bool {
	return s.cities[state][city]
}
