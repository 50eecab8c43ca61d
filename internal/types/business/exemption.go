package business

// ExemptionData is built fresh for each transaction by the exemption
// gate and consumed read-only by the fee calculator. CustomerExemptions
// lists matched customer types; ItemExemptions maps item IDs to
// human-readable exemption reasons.
type ExemptionData struct {
	CustomerExemptions []string            `json:"customerExemptions"`
	ItemExemptions     map[string][]string `json:"itemExemptions"`
}

// HasCustomerExemption reports whether any customer-level exemption applies.
func (e ExemptionData) HasCustomerExemption() bool {
	return len(e.CustomerExemptions) > 0
}

// IsItemExempt reports whether the given item carries an item-level exemption.
func (e ExemptionData) IsItemExempt(itemID string) bool {
	return len(e.ItemExemptions[itemID]) > 0
}

// ExemptionRule identifies a (category, state) pair whose items are exempt.
type ExemptionRule struct {
	Category string
	State    string
}

// ExemptionRules is the immutable rule snapshot built once at startup
// from the ExemptionRuleSource.
type ExemptionRules struct {
	customerTypes map[string]bool
	itemRules     map[ExemptionRule]bool
}

// NewExemptionRules builds an ExemptionRules snapshot from the exempt
// customer-type set and (category, state) rule set.
func NewExemptionRules(customerTypes []string, itemRules []ExemptionRule) *ExemptionRules {
	rules := &ExemptionRules{
		customerTypes: make(map[string]bool, len(customerTypes)),
		itemRules:     make(map[ExemptionRule]bool, len(itemRules)),
	}
	for _, ct := range customerTypes {
		rules.customerTypes[ct] = true
	}
	for _, r := range itemRules {
		rules.itemRules[r] = true
	}
	return rules
}

// IsExemptCustomerType reports whether the customer type is configured as exempt.
func (r *ExemptionRules) IsExemptCustomerType(customerType string) bool {
	return r.customerTypes[customerType]
}

// IsItemExempt reports whether items of the category are exempt in the state.
func (r *ExemptionRules) IsItemExempt(category, state string) bool {
	return r.itemRules[ExemptionRule{Category: category, State: state}]
}
