package domain

// ResolutionSource records which stage of the fallback chain produced a
// resolution. Exposed for logging and metrics.
type ResolutionSource string

const (
	ResolutionExact     ResolutionSource = "exact"
	ResolutionSubstring ResolutionSource = "substring"
	ResolutionEnvHint   ResolutionSource = "env_hint"
)

// Resolution is the outcome of mapping an inbound hostname to a tenant.
// Binding is nil when the tenant was found through an environment hint
// rather than a registered hostname.
type Resolution struct {
	Tenant  *Tenant
	Binding *DomainBinding
	Source  ResolutionSource
}
