package business

// GateResult is the outcome of a single pipeline gate. A failed result
// carries one of the error kinds from the constants package
// (VALIDATION, DEPENDENCY, SYSTEM); a passed result carries none.
type GateResult struct {
	GateName  string                 `json:"gateName"`
	Passed    bool                   `json:"passed"`
	Message   string                 `json:"message,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	ErrorType string                 `json:"errorType,omitempty"`
}

// OrchestrationResult is what the gate orchestrator hands back to the
// engine: the ordered gate results gathered before termination, whether
// every gate passed, and the audit lines written so far.
type OrchestrationResult struct {
	Results    []GateResult
	Passed     bool
	AuditTrail []string
}
