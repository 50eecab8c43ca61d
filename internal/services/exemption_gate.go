package services

import (
	"context"
	"fmt"

	"github.com/enriquevdb/compliance-engine/internal/constants"
	"github.com/enriquevdb/compliance-engine/internal/types/business"
)

// Metadata keys the exemption gate publishes for the engine.
const (
	MetadataExemptionData     = "exemptionData"
	MetadataAppliedExemptions = "appliedExemptions"
)

// ExemptionGate identifies customer-level and item-level exemptions. It
// computes no monetary amounts and never fails the pipeline; its job is
// to hand ExemptionData to the fee calculator.
type ExemptionGate struct {
	rules *business.ExemptionRules
}

// NewExemptionGate creates the exemption identification gate over an
// immutable rule snapshot.
func NewExemptionGate(rules *business.ExemptionRules) *ExemptionGate {
	return &ExemptionGate{rules: rules}
}

func (g *ExemptionGate) Name() string {
	return constants.GateExemptionCheck
}

func (g *ExemptionGate) Execute(ctx context.Context, tx business.Transaction, reqCtx business.RequestContext) business.GateResult {
	data := business.ExemptionData{
		CustomerExemptions: []string{},
		ItemExemptions:     make(map[string][]string),
	}

	if reqCtx.CustomerType != "" && g.rules.IsExemptCustomerType(reqCtx.CustomerType) {
		data.CustomerExemptions = append(data.CustomerExemptions, reqCtx.CustomerType)
	}

	state := tx.Destination.State
	for _, item := range tx.Items {
		if g.rules.IsItemExempt(item.Category, state) {
			reason := fmt.Sprintf("%s exempt in %s", item.Category, state)
			data.ItemExemptions[item.ID] = append(data.ItemExemptions[item.ID], reason)
		}
	}

	// Flattened view for the public response: customer exemptions first,
	// then item reasons in item order.
	applied := make([]string, 0, len(data.CustomerExemptions)+len(data.ItemExemptions))
	applied = append(applied, data.CustomerExemptions...)
	for _, item := range tx.Items {
		for _, reason := range data.ItemExemptions[item.ID] {
			applied = append(applied, fmt.Sprintf("%s: %s", item.ID, reason))
		}
	}

	message := "no exemptions applied"
	if len(applied) > 0 {
		message = fmt.Sprintf("%d exemption(s) identified", len(applied))
	}

	return business.GateResult{
		GateName: g.Name(),
		Passed:   true,
		Message:  message,
		Metadata: map[string]interface{}{
			MetadataExemptionData:     data,
			MetadataAppliedExemptions: applied,
		},
	}
}
