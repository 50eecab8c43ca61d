package services

import (
	"context"
	"fmt"

	"github.com/enriquevdb/compliance-engine/internal/constants"
	"github.com/enriquevdb/compliance-engine/internal/logger"
	"github.com/enriquevdb/compliance-engine/internal/types/api/params"
	"github.com/enriquevdb/compliance-engine/internal/types/api/responses"
	"github.com/enriquevdb/compliance-engine/internal/types/business"
	"go.uber.org/zap"
)

// publicGateNames maps internal gate names to the names exposed in the
// compliance response. InputValidation is deliberately absent: it is
// never part of the public gate list.
var publicGateNames = map[string]string{
	constants.GateAddressValidation: constants.PublicGateAddressValidation,
	constants.GateApplicability:     constants.PublicGateApplicability,
	constants.GateExemptionCheck:    constants.PublicGateExemptionCheck,
}

// ComplianceEngine composes the gate orchestrator and the fee calculator
// and maps their internal results onto the public response shape. A
// transaction comes out exactly CALCULATED or REJECTED; FAILED is
// reserved for the transport layer wrapping an unexpected error.
type ComplianceEngine struct {
	orchestrator *GateOrchestrator
	calculator   *FeeCalculator
	logger       *zap.Logger
}

// NewComplianceEngine creates a compliance engine.
func NewComplianceEngine(orchestrator *GateOrchestrator, calculator *FeeCalculator) *ComplianceEngine {
	return &ComplianceEngine{
		orchestrator: orchestrator,
		calculator:   calculator,
		logger:       logger.Log,
	}
}

// Process runs one transaction through the full pipeline.
func (e *ComplianceEngine) Process(ctx context.Context, params params.CalculationParams) (*responses.ComplianceResponse, error) {
	tx := params.Transaction

	e.logger.Info("Processing transaction",
		zap.String("transaction_id", tx.ID),
		zap.String("merchant_id", tx.MerchantID),
		zap.String("state", tx.Destination.State),
		zap.Int("items", len(tx.Items)))

	orchestration := e.orchestrator.Execute(ctx, tx, params.Context)

	response := &responses.ComplianceResponse{
		TransactionID: tx.ID,
		Gates:         e.publicGates(orchestration.Results),
		AuditTrail:    orchestration.AuditTrail,
	}

	if !orchestration.Passed {
		response.Status = constants.StatusRejected
		return response, nil
	}

	exemptions, err := extractExemptionData(orchestration.Results)
	if err != nil {
		return nil, fmt.Errorf("gate pipeline passed without exemption data: %w", err)
	}

	calculation := e.calculator.CalculateFees(tx, exemptions)
	response.Status = constants.StatusCalculated
	response.Calculation = calculation
	response.AuditTrail = append(response.AuditTrail, calculation.AuditTrail...)

	return response, nil
}

// publicGates filters the internal-only validation gate out and renames
// the rest to their stable public names. The EXEMPTION_CHECK entry
// always carries its applied exemptions, even when empty.
func (e *ComplianceEngine) publicGates(results []business.GateResult) []responses.GateEntry {
	gates := make([]responses.GateEntry, 0, len(results))
	for _, result := range results {
		publicName, exposed := publicGateNames[result.GateName]
		if !exposed {
			continue
		}

		entry := responses.GateEntry{
			Name:      publicName,
			Passed:    result.Passed,
			Message:   result.Message,
			ErrorType: result.ErrorType,
		}

		if result.GateName == constants.GateExemptionCheck {
			applied := appliedExemptionsFrom(result)
			entry.AppliedExemptions = &applied
		}

		gates = append(gates, entry)
	}
	return gates
}

// extractExemptionData pulls the ExemptionData the exemption gate stored
// in its result metadata.
func extractExemptionData(results []business.GateResult) (business.ExemptionData, error) {
	for _, result := range results {
		if result.GateName != constants.GateExemptionCheck {
			continue
		}
		data, ok := result.Metadata[MetadataExemptionData].(business.ExemptionData)
		if !ok {
			return business.ExemptionData{}, fmt.Errorf("exemption gate result carries no exemption data")
		}
		return data, nil
	}
	return business.ExemptionData{}, fmt.Errorf("exemption gate result not found")
}

func appliedExemptionsFrom(result business.GateResult) []string {
	if applied, ok := result.Metadata[MetadataAppliedExemptions].([]string); ok && applied != nil {
		return applied
	}
	return []string{}
}
