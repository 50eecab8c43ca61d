package services

import (
	"context"
	"fmt"

	"github.com/enriquevdb/compliance-engine/internal/logger"
	"github.com/enriquevdb/compliance-engine/internal/types/business"
	"go.uber.org/zap"
)

// GateOrchestrator runs the gate chain in its fixed order with
// short-circuit on the first failure. It is a small forward-only state
// machine: the state is the index into the gate list plus the two
// terminal outcomes, and each step advances by exactly one gate.
type GateOrchestrator struct {
	gates  []Gate
	logger *zap.Logger
}

// NewGateOrchestrator creates an orchestrator over an explicit ordered
// gate list. Adding a gate is a data change here, not a registration
// mechanism.
func NewGateOrchestrator(gates []Gate) *GateOrchestrator {
	return &GateOrchestrator{
		gates:  gates,
		logger: logger.Log,
	}
}

// Execute runs the gates sequentially against the transaction. On the
// first failure it stops and returns only the results gathered so far.
func (o *GateOrchestrator) Execute(ctx context.Context, tx business.Transaction, reqCtx business.RequestContext) business.OrchestrationResult {
	result := business.OrchestrationResult{
		Results:    make([]business.GateResult, 0, len(o.gates)),
		Passed:     true,
		AuditTrail: []string{},
	}

	for _, gate := range o.gates {
		gateResult := gate.Execute(ctx, tx, reqCtx)
		result.Results = append(result.Results, gateResult)

		if !gateResult.Passed {
			result.AuditTrail = append(result.AuditTrail,
				fmt.Sprintf("%s failed: %s", gateResult.GateName, gateResult.Message))
			result.Passed = false

			o.logger.Info("Gate failed, stopping pipeline",
				zap.String("transaction_id", tx.ID),
				zap.String("gate", gateResult.GateName),
				zap.String("error_type", gateResult.ErrorType),
				zap.String("message", gateResult.Message))
			return result
		}

		result.AuditTrail = append(result.AuditTrail,
			fmt.Sprintf("%s passed", gateResult.GateName))
	}

	return result
}
