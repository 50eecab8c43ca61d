package interfaces

import (
	"context"

	"github.com/enriquevdb/compliance-engine/internal/types/api/params"
	"github.com/enriquevdb/compliance-engine/internal/types/api/responses"
)

// ComplianceService processes transactions through the gate pipeline and
// fee calculation, producing the public compliance response.
type ComplianceService interface {
	Process(ctx context.Context, params params.CalculationParams) (*responses.ComplianceResponse, error)
}
