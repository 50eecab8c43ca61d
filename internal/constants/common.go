package constants

// Common string constants used throughout the codebase
const (
	// Log levels
	ErrorLevel = "error"

	// Environments
	ProdEnvironment = "prod"

	// Currencies
	USDCurrency = "USD"

	// Supported destination country
	USCountry = "US"
)

// Internal gate names
const (
	GateInputValidation   = "InputValidation"
	GateAddressValidation = "AddressValidation"
	GateApplicability     = "Applicability"
	GateExemptionCheck    = "ExemptionCheck"
)

// Public gate names exposed in the compliance response. Downstream
// consumers match on these literal strings.
const (
	PublicGateAddressValidation = "ADDRESS_VALIDATION"
	PublicGateApplicability     = "APPLICABILITY"
	PublicGateExemptionCheck    = "EXEMPTION_CHECK"
)

// Response statuses
const (
	StatusCalculated = "CALCULATED"
	StatusRejected   = "REJECTED"
	StatusFailed     = "FAILED"
)

// Gate error kinds
const (
	ErrorTypeValidation = "VALIDATION"
	ErrorTypeDependency = "DEPENDENCY"
	ErrorTypeSystem     = "SYSTEM"
)

// Address validation sources
const (
	SourceCache    = "cache"
	SourceRemote   = "remote"
	SourceFallback = "fallback"
)

// DefaultVolumeThreshold applies when the volume source has no explicit
// threshold for a merchant/state pair.
const DefaultVolumeThreshold = 100_000
