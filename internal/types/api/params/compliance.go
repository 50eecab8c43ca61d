package params

import (
	"github.com/enriquevdb/compliance-engine/internal/types/business"
)

// CalculationParams contains everything the compliance engine needs to
// process one transaction: the transaction itself plus the
// caller-supplied request context.
type CalculationParams struct {
	Transaction business.Transaction
	Context     business.RequestContext
}
