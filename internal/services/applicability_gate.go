package services

import (
	"context"
	"fmt"

	"github.com/enriquevdb/compliance-engine/internal/constants"
	"github.com/enriquevdb/compliance-engine/internal/interfaces"
	"github.com/enriquevdb/compliance-engine/internal/logger"
	"github.com/enriquevdb/compliance-engine/internal/types/business"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ApplicabilityGate checks whether the merchant's transaction volume in
// the destination state meets the compliance threshold. Merchants below
// the threshold are not subject to fee calculation and are rejected.
type ApplicabilityGate struct {
	volumes interfaces.MerchantVolumeSource
	logger  *zap.Logger
}

// NewApplicabilityGate creates the merchant applicability gate.
func NewApplicabilityGate(volumes interfaces.MerchantVolumeSource) *ApplicabilityGate {
	return &ApplicabilityGate{
		volumes: volumes,
		logger:  logger.Log,
	}
}

func (g *ApplicabilityGate) Name() string {
	return constants.GateApplicability
}

func (g *ApplicabilityGate) Execute(ctx context.Context, tx business.Transaction, reqCtx business.RequestContext) business.GateResult {
	state := tx.Destination.State

	volume, err := g.volumes.Volume(ctx, tx.MerchantID, state)
	if err != nil {
		g.logger.Warn("Merchant volume lookup failed",
			zap.String("merchant_id", tx.MerchantID),
			zap.String("state", state),
			zap.Error(err))
		return business.GateResult{
			GateName:  g.Name(),
			Passed:    false,
			Message:   fmt.Sprintf("unable to determine volume for merchant %s in %s", tx.MerchantID, state),
			ErrorType: constants.ErrorTypeDependency,
		}
	}

	threshold, ok, err := g.volumes.Threshold(ctx, tx.MerchantID, state)
	if err != nil {
		g.logger.Warn("Merchant threshold lookup failed",
			zap.String("merchant_id", tx.MerchantID),
			zap.String("state", state),
			zap.Error(err))
		return business.GateResult{
			GateName:  g.Name(),
			Passed:    false,
			Message:   fmt.Sprintf("unable to determine threshold for merchant %s in %s", tx.MerchantID, state),
			ErrorType: constants.ErrorTypeDependency,
		}
	}
	if !ok {
		threshold = decimal.NewFromInt(constants.DefaultVolumeThreshold)
	}

	metadata := map[string]interface{}{
		"volume":    volume.String(),
		"threshold": threshold.String(),
	}

	if volume.LessThan(threshold) {
		return business.GateResult{
			GateName:  g.Name(),
			Passed:    false,
			Message:   fmt.Sprintf("merchant volume %s in %s is below threshold %s", volume, state, threshold),
			ErrorType: constants.ErrorTypeValidation,
			Metadata:  metadata,
		}
	}

	return business.GateResult{
		GateName: g.Name(),
		Passed:   true,
		Message:  fmt.Sprintf("merchant volume %s in %s meets threshold %s", volume, state, threshold),
		Metadata: metadata,
	}
}
