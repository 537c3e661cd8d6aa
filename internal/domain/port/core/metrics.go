package core

import "time"

// Operation outcomes reported to MetricsRecorder
const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeConflict = "conflict"
	OutcomeError    = "error"
)

// MetricsRecorder records wallet operation metrics
type MetricsRecorder interface {
	// ObserveOperation records the outcome and latency of a processor operation
	ObserveOperation(operation string, outcome string, duration time.Duration)
}
