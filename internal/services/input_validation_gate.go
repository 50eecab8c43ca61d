package services

import (
	"context"
	"fmt"

	"github.com/enriquevdb/compliance-engine/internal/constants"
	"github.com/enriquevdb/compliance-engine/internal/types/business"
	"github.com/shopspring/decimal"
)

// amountTolerance is the maximum allowed drift, in dollars, between the
// sum of item amounts and the reported total.
var amountTolerance = decimal.NewFromFloat(0.01)

// InputValidationGate checks the structural invariants of a transaction
// and reports the first violation found. It is internal-only: its result
// is never part of the public gate list.
type InputValidationGate struct{}

// NewInputValidationGate creates the structural validation gate.
func NewInputValidationGate() *InputValidationGate {
	return &InputValidationGate{}
}

func (g *InputValidationGate) Name() string {
	return constants.GateInputValidation
}

func (g *InputValidationGate) Execute(ctx context.Context, tx business.Transaction, reqCtx business.RequestContext) business.GateResult {
	if msg := g.firstViolation(tx); msg != "" {
		return business.GateResult{
			GateName:  g.Name(),
			Passed:    false,
			Message:   msg,
			ErrorType: constants.ErrorTypeValidation,
		}
	}

	return business.GateResult{
		GateName: g.Name(),
		Passed:   true,
		Message:  "transaction structure is valid",
	}
}

// firstViolation walks the checks in their fixed order and returns the
// first failure message, or "" when the transaction is well formed.
func (g *InputValidationGate) firstViolation(tx business.Transaction) string {
	if tx.ID == "" {
		return "transactionId is required"
	}
	if tx.MerchantID == "" {
		return "merchantId is required"
	}
	if tx.CustomerID == "" {
		return "customerId is required"
	}
	if tx.Destination.Country == "" {
		return "destination country is required"
	}
	if tx.Destination.State == "" {
		return "destination state is required"
	}
	if tx.Destination.City == "" {
		return "destination city is required"
	}
	if len(tx.Items) == 0 {
		return "transaction must contain at least one item"
	}

	for i, item := range tx.Items {
		if item.ID == "" {
			return fmt.Sprintf("item %d: id is required", i)
		}
		if item.Category == "" {
			return fmt.Sprintf("item %d: category is required", i)
		}
		if item.Amount.IsNegative() {
			return fmt.Sprintf("item %s: amount must be non-negative", item.ID)
		}
	}

	if tx.TotalAmount.IsNegative() {
		return "totalAmount must be non-negative"
	}
	if tx.Currency != constants.USDCurrency {
		return fmt.Sprintf("unsupported currency %q: only USD is supported", tx.Currency)
	}

	itemSum := decimal.Zero
	for _, item := range tx.Items {
		itemSum = itemSum.Add(item.Amount)
	}
	if itemSum.Sub(tx.TotalAmount).Abs().GreaterThan(amountTolerance) {
		return fmt.Sprintf("item amounts sum to %s but totalAmount is %s", itemSum, tx.TotalAmount)
	}

	return ""
}
