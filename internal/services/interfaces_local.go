package services

import (
	"context"

	"github.com/enriquevdb/compliance-engine/internal/types/business"
)

// Gate is one stage of the sequential transaction pipeline. A gate
// inspects the transaction and request context and returns a structured
// result; it never panics for expected conditions. Gates run strictly
// one after another and never re-run within a single orchestration.
type Gate interface {
	Name() string
	Execute(ctx context.Context, tx business.Transaction, reqCtx business.RequestContext) business.GateResult
}
