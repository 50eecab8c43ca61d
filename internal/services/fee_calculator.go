package services

import (
	"fmt"
	"strings"

	"github.com/enriquevdb/compliance-engine/internal/logger"
	"github.com/enriquevdb/compliance-engine/internal/types/api/responses"
	"github.com/enriquevdb/compliance-engine/internal/types/business"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// reconciliationTolerance is the maximum drift, in dollars, allowed
// between the summed item fees and the rounded total before the last
// item absorbs the residual.
var reconciliationTolerance = decimal.NewFromFloat(0.01)

// FeeCalculator applies the layered jurisdiction and category rates to a
// transaction. Each fee component is rounded to the cent independently
// before summation; the aggregate is reconciled so item fees always sum
// exactly to the reported total, whatever the item count.
type FeeCalculator struct {
	rates  *business.RateTable
	logger *zap.Logger
}

// NewFeeCalculator creates a fee calculator over an immutable rate table.
func NewFeeCalculator(rates *business.RateTable) *FeeCalculator {
	return &FeeCalculator{
		rates:  rates,
		logger: logger.Log,
	}
}

// CalculateFees produces the per-item fee breakdowns and reconciled
// totals for a transaction. The exemption data is read-only; the
// calculation is pure and total, so it cannot fail once the gates pass.
func (c *FeeCalculator) CalculateFees(tx business.Transaction, exemptions business.ExemptionData) *responses.CalculationResult {
	result := &responses.CalculationResult{
		Items:      make([]responses.ItemFeeCalculation, 0, len(tx.Items)),
		AuditTrail: []string{},
	}

	for _, item := range tx.Items {
		if exemptions.HasCustomerExemption() || exemptions.IsItemExempt(item.ID) {
			calc := c.exemptItem(tx.Destination, item)
			result.Items = append(result.Items, calc)
			result.AuditTrail = append(result.AuditTrail,
				fmt.Sprintf("item %s exempt: %s", item.ID, c.exemptionReason(item, exemptions)))
			continue
		}

		calc, lines := c.calculateItem(tx.Destination, item)
		result.Items = append(result.Items, calc)
		result.AuditTrail = append(result.AuditTrail, lines...)
	}

	// Exact-decimal aggregate of the per-item totals.
	rawTotal := decimal.Zero
	for _, item := range result.Items {
		rawTotal = rawTotal.Add(item.TotalFee)
	}
	result.TotalFees = rawTotal.Round(2)

	// Reconciliation: force the item fees to sum exactly to the reported
	// total by adjusting the last item with the signed residual.
	if residual := rawTotal.Sub(result.TotalFees); residual.Abs().GreaterThan(reconciliationTolerance) {
		last := len(result.Items) - 1
		result.Items[last].TotalFee = result.Items[last].TotalFee.Sub(residual)
		result.AuditTrail = append(result.AuditTrail,
			fmt.Sprintf("reconciliation: adjusted item %s by %s", result.Items[last].ItemID, residual.Neg()))
	}

	if tx.TotalAmount.IsZero() {
		result.EffectiveRate = decimal.Zero
	} else {
		result.EffectiveRate = result.TotalFees.Div(tx.TotalAmount).Round(4)
	}

	c.logger.Debug("Calculated fees",
		zap.String("transaction_id", tx.ID),
		zap.String("total_fees", result.TotalFees.String()),
		zap.String("effective_rate", result.EffectiveRate.String()))

	return result
}

// calculateItem computes the four fee components for a non-exempt item,
// each rounded to the cent before summation, plus the audit lines for
// the non-zero components.
func (c *FeeCalculator) calculateItem(dest business.Destination, item business.Item) (responses.ItemFeeCalculation, []string) {
	state, city := dest.State, dest.City
	var lines []string

	stateRate := c.rates.StateRate(state)
	stateAmount := stateRate.Mul(item.Amount).Round(2)
	total := stateAmount
	if !stateAmount.IsZero() {
		lines = append(lines, fmt.Sprintf("item %s: %s state rate %s -> %s", item.ID, state, stateRate, stateAmount))
	}

	fees := responses.ItemFeeBreakdown{
		StateRate: responses.FeeComponent{
			Jurisdiction: state,
			Rate:         stateRate,
			Amount:       stateAmount,
		},
	}

	if countyRate, ok := c.rates.CountyRate(state, city); ok {
		countyAmount := countyRate.Mul(item.Amount).Round(2)
		total = total.Add(countyAmount)
		fees.CountyRate = &responses.FeeComponent{
			Jurisdiction: state,
			Rate:         countyRate,
			Amount:       countyAmount,
		}
		if !countyAmount.IsZero() {
			lines = append(lines, fmt.Sprintf("item %s: %s county rate %s -> %s", item.ID, state, countyRate, countyAmount))
		}
	}

	if cityRate, ok := c.rates.CityRate(state, city); ok {
		cityAmount := cityRate.Mul(item.Amount).Round(2)
		total = total.Add(cityAmount)
		jurisdiction := business.JurisdictionKey(state, city)
		fees.CityRate = &responses.FeeComponent{
			Jurisdiction: jurisdiction,
			Rate:         cityRate,
			Amount:       cityAmount,
		}
		if !cityAmount.IsZero() {
			lines = append(lines, fmt.Sprintf("item %s: %s city rate %s -> %s", item.ID, jurisdiction, cityRate, cityAmount))
		}
	}

	modifierRate := c.rates.CategoryModifier(item.Category)
	modifierAmount := modifierRate.Mul(item.Amount).Round(2)
	total = total.Add(modifierAmount)
	fees.CategoryModifier = responses.FeeComponent{
		Category: item.Category,
		Rate:     modifierRate,
		Amount:   modifierAmount,
	}
	if !modifierAmount.IsZero() {
		lines = append(lines, fmt.Sprintf("item %s: %s category modifier %s -> %s", item.ID, item.Category, modifierRate, modifierAmount))
	}

	return responses.ItemFeeCalculation{
		ItemID:   item.ID,
		Amount:   item.Amount,
		Category: item.Category,
		Fees:     fees,
		TotalFee: total.Round(2),
	}, lines
}

// exemptItem produces a fully zeroed calculation for an exempt item.
func (c *FeeCalculator) exemptItem(dest business.Destination, item business.Item) responses.ItemFeeCalculation {
	return responses.ItemFeeCalculation{
		ItemID:   item.ID,
		Amount:   item.Amount,
		Category: item.Category,
		Fees: responses.ItemFeeBreakdown{
			StateRate: responses.FeeComponent{
				Jurisdiction: dest.State,
				Rate:         decimal.Zero,
				Amount:       decimal.Zero,
			},
			CategoryModifier: responses.FeeComponent{
				Category: item.Category,
				Rate:     decimal.Zero,
				Amount:   decimal.Zero,
			},
		},
		TotalFee: decimal.Zero,
	}
}

func (c *FeeCalculator) exemptionReason(item business.Item, exemptions business.ExemptionData) string {
	if reasons := exemptions.ItemExemptions[item.ID]; len(reasons) > 0 {
		return strings.Join(reasons, ", ")
	}
	return "customer exemption: " + strings.Join(exemptions.CustomerExemptions, ", ")
}
