package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/enriquevdb/compliance-engine/internal/constants"
	"github.com/enriquevdb/compliance-engine/internal/interfaces"
	"github.com/enriquevdb/compliance-engine/internal/logger"
	"github.com/enriquevdb/compliance-engine/internal/types/business"
	"go.uber.org/zap"
)

// DefaultLookupTimeout bounds a single remote jurisdiction lookup.
const DefaultLookupTimeout = 2 * time.Second

// AddressValidationGate decides whether a destination is a supported
// jurisdiction, with caching and a fallback around the remote lookup.
// The verdict cache is the only mutable shared state in the pipeline;
// concurrent requests may race to populate the same key, which is benign
// because a key always maps to the same verdict.
type AddressValidationGate struct {
	lookup     interfaces.JurisdictionLookup
	fallback   *business.JurisdictionSet
	timeout    time.Duration
	logger     *zap.Logger
	cache      map[string]bool
	cacheMutex sync.RWMutex
}

// NewAddressValidationGate creates the address validation gate. fallback
// holds a local copy of the supported-jurisdiction rules used when the
// remote lookup fails or times out; it may be nil, in which case lookup
// failures surface as DEPENDENCY gate failures instead.
func NewAddressValidationGate(lookup interfaces.JurisdictionLookup, fallback *business.JurisdictionSet, timeout time.Duration) *AddressValidationGate {
	if timeout <= 0 {
		timeout = DefaultLookupTimeout
	}
	return &AddressValidationGate{
		lookup:   lookup,
		fallback: fallback,
		timeout:  timeout,
		logger:   logger.Log,
		cache:    make(map[string]bool),
	}
}

func (g *AddressValidationGate) Name() string {
	return constants.GateAddressValidation
}

func (g *AddressValidationGate) Execute(ctx context.Context, tx business.Transaction, reqCtx business.RequestContext) business.GateResult {
	dest := tx.Destination
	if dest.Country != constants.USCountry {
		return business.GateResult{
			GateName:  g.Name(),
			Passed:    false,
			Message:   fmt.Sprintf("unsupported country %q: only US destinations are supported", dest.Country),
			ErrorType: constants.ErrorTypeValidation,
		}
	}

	cacheKey := business.JurisdictionKey(dest.State, dest.City)
	if verdict, ok := g.cachedVerdict(cacheKey); ok {
		return g.verdictResult(dest, verdict, constants.SourceCache)
	}

	supported, err := g.validateRemote(ctx, dest)
	if err != nil {
		g.logger.Warn("Jurisdiction lookup failed, trying local fallback",
			zap.String("destination", cacheKey),
			zap.Error(err))

		if g.fallback == nil {
			return business.GateResult{
				GateName:  g.Name(),
				Passed:    false,
				Message:   fmt.Sprintf("unable to validate destination %s, %s: jurisdiction lookup unavailable", dest.City, dest.State),
				ErrorType: constants.ErrorTypeDependency,
				Metadata:  map[string]interface{}{"cacheKey": cacheKey},
			}
		}

		supported = g.fallback.ContainsState(dest.State) && g.fallback.ContainsCity(dest.State, dest.City)
		return g.verdictResult(dest, supported, constants.SourceFallback)
	}

	// Cache both positive and negative verdicts.
	g.storeVerdict(cacheKey, supported)
	return g.verdictResult(dest, supported, constants.SourceRemote)
}

// validateRemote runs the supported-state and supported-city checks
// against the remote lookup under the configured timeout. This is the
// only pipeline operation allowed to block.
func (g *AddressValidationGate) validateRemote(ctx context.Context, dest business.Destination) (bool, error) {
	lookupCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	stateSupported, err := g.lookup.IsStateSupported(lookupCtx, dest.State)
	if err != nil {
		return false, fmt.Errorf("state lookup for %q: %w", dest.State, err)
	}
	if !stateSupported {
		return false, nil
	}

	citySupported, err := g.lookup.IsCitySupported(lookupCtx, dest.State, dest.City)
	if err != nil {
		return false, fmt.Errorf("city lookup for %q: %w", business.JurisdictionKey(dest.State, dest.City), err)
	}
	return citySupported, nil
}

func (g *AddressValidationGate) verdictResult(dest business.Destination, supported bool, source string) business.GateResult {
	metadata := map[string]interface{}{"source": source}

	if !supported {
		return business.GateResult{
			GateName:  g.Name(),
			Passed:    false,
			Message:   fmt.Sprintf("unsupported jurisdiction: %s, %s", dest.City, dest.State),
			ErrorType: constants.ErrorTypeValidation,
			Metadata:  metadata,
		}
	}

	return business.GateResult{
		GateName: g.Name(),
		Passed:   true,
		Message:  fmt.Sprintf("destination %s, %s validated", dest.City, dest.State),
		Metadata: metadata,
	}
}

func (g *AddressValidationGate) cachedVerdict(key string) (bool, bool) {
	g.cacheMutex.RLock()
	defer g.cacheMutex.RUnlock()
	verdict, ok := g.cache[key]
	return verdict, ok
}

func (g *AddressValidationGate) storeVerdict(key string, verdict bool) {
	g.cacheMutex.Lock()
	defer g.cacheMutex.Unlock()
	g.cache[key] = verdict
}
