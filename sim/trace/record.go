// Package trace provides per-day event recording for simulation runs.
// This package has no dependencies on sim/; it stores pure data types.
package trace

import "time"

// VisitRecord captures one patient visit (telemedicine session).
type VisitRecord struct {
	PatientID string
	Date      time.Time
}

// TrainingRecord captures one completed training program.
type TrainingRecord struct {
	WorkerID string
	Program  string
	Date     time.Time
}
