package companionsdk

import (
	"time"

	"github.com/google/uuid"
)

// ──────────────────────────────────────────────
// Tracing — per-stage span trail for one pipeline run
// ──────────────────────────────────────────────

// StageSpan records one pipeline stage's execution.
type StageSpan struct {
	Stage      PipelineState `json:"stage"`
	StartTime  time.Time     `json:"start_time"`
	DurationMs float64       `json:"duration_ms"`
	Status     string        `json:"status"` // "ok", "error", "skipped"
	Error      string        `json:"error,omitempty"`
}

// runTrace accumulates stage spans for a single request. It is owned by one
// pipeline invocation and needs no locking.
type runTrace struct {
	traceID string
	spans   []StageSpan
}

func newRunTrace() *runTrace {
	return &runTrace{traceID: uuid.NewString()}
}

// begin opens a span for a stage and returns a closer.
func (t *runTrace) begin(stage PipelineState) func(status string, err error) {
	start := time.Now()
	return func(status string, err error) {
		span := StageSpan{
			Stage:      stage,
			StartTime:  start,
			DurationMs: float64(time.Since(start).Microseconds()) / 1000.0,
			Status:     status,
		}
		if err != nil {
			span.Error = err.Error()
		}
		t.spans = append(t.spans, span)
	}
}
