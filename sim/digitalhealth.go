package sim

import (
	"maps"
	"slices"
	"time"
)

// DigitalHealth owns electronic health records and telemedicine session logs.
type DigitalHealth struct {
	records  map[string]map[string]any
	sessions map[string][]time.Time
}

// NewDigitalHealth creates an empty DigitalHealth component.
func NewDigitalHealth() *DigitalHealth {
	return &DigitalHealth{
		records:  make(map[string]map[string]any),
		sessions: make(map[string][]time.Time),
	}
}

// RecordSession appends a session marker dated at to the patient's log.
func (dh *DigitalHealth) RecordSession(patientID string, at time.Time) {
	dh.sessions[patientID] = append(dh.sessions[patientID], at)
}

// Sessions returns a copy of the patient's session log.
func (dh *DigitalHealth) Sessions(patientID string) []time.Time {
	out := make([]time.Time, len(dh.sessions[patientID]))
	copy(out, dh.sessions[patientID])
	return out
}

// SessionCount is the number of sessions logged for the patient.
func (dh *DigitalHealth) SessionCount(patientID string) int {
	return len(dh.sessions[patientID])
}

// UpdateRecord merges fields into the patient's record, creating it if absent.
// Existing keys are overwritten.
func (dh *DigitalHealth) UpdateRecord(patientID string, fields map[string]any) {
	record, ok := dh.records[patientID]
	if !ok {
		record = make(map[string]any, len(fields))
		dh.records[patientID] = record
	}
	maps.Copy(record, fields)
}

// GetHistory returns a copy of the patient's record, empty when none exists.
// Nested maps and slices are copied one level deep, so mutating the result
// never reaches the stored record.
func (dh *DigitalHealth) GetHistory(patientID string) map[string]any {
	out := make(map[string]any, len(dh.records[patientID]))
	for k, v := range dh.records[patientID] {
		out[k] = cloneField(v)
	}
	return out
}

func cloneField(v any) any {
	switch x := v.(type) {
	case map[string]any:
		return maps.Clone(x)
	case []string:
		return slices.Clone(x)
	case []ConditionRecord:
		return slices.Clone(x)
	case []any:
		return slices.Clone(x)
	default:
		return v
	}
}

// RecordCount is the number of patients holding an electronic record.
func (dh *DigitalHealth) RecordCount() int { return len(dh.records) }
