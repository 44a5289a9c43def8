package companionsdk

import "go.uber.org/atomic"

// ──────────────────────────────────────────────
// Pipeline Stats — lock-free counters across concurrent requests
// ──────────────────────────────────────────────

// PipelineStats counts pipeline outcomes. All fields are safe to read while
// requests are in flight.
type PipelineStats struct {
	Requests          atomic.Int64
	Completed         atomic.Int64
	CrisisExits       atomic.Int64
	ProviderFallbacks atomic.Int64
	SafetyFallbacks   atomic.Int64
	Failures          atomic.Int64
}

// StatsSnapshot is a point-in-time copy of the counters.
type StatsSnapshot struct {
	Requests          int64 `json:"requests"`
	Completed         int64 `json:"completed"`
	CrisisExits       int64 `json:"crisis_exits"`
	ProviderFallbacks int64 `json:"provider_fallbacks"`
	SafetyFallbacks   int64 `json:"safety_fallbacks"`
	Failures          int64 `json:"failures"`
}

// Snapshot reads every counter once.
func (s *PipelineStats) Snapshot() StatsSnapshot {
	return StatsSnapshot{
		Requests:          s.Requests.Load(),
		Completed:         s.Completed.Load(),
		CrisisExits:       s.CrisisExits.Load(),
		ProviderFallbacks: s.ProviderFallbacks.Load(),
		SafetyFallbacks:   s.SafetyFallbacks.Load(),
		Failures:          s.Failures.Load(),
	}
}
