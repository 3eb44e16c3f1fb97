package trace

// TraceLevel controls the verbosity of event tracing.
type TraceLevel string

const (
	// TraceLevelNone disables tracing (zero overhead).
	TraceLevelNone TraceLevel = "none"
	// TraceLevelEvents captures every patient visit and training completion.
	TraceLevelEvents TraceLevel = "events"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:   true,
	TraceLevelEvents: true,
	"":               true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// TraceConfig controls trace collection behavior.
type TraceConfig struct {
	Level TraceLevel
}

// SimulationTrace collects per-day event records during a run.
type SimulationTrace struct {
	Config    TraceConfig
	Visits    []VisitRecord
	Trainings []TrainingRecord
}

// NewSimulationTrace creates a SimulationTrace ready for recording.
func NewSimulationTrace(config TraceConfig) *SimulationTrace {
	return &SimulationTrace{
		Config:    config,
		Visits:    make([]VisitRecord, 0),
		Trainings: make([]TrainingRecord, 0),
	}
}

// Enabled reports whether records should be collected. Safe on nil.
func (st *SimulationTrace) Enabled() bool {
	return st != nil && st.Config.Level == TraceLevelEvents
}

// RecordVisit appends a visit record.
func (st *SimulationTrace) RecordVisit(record VisitRecord) {
	st.Visits = append(st.Visits, record)
}

// RecordTraining appends a training completion record.
func (st *SimulationTrace) RecordTraining(record TrainingRecord) {
	st.Trainings = append(st.Trainings, record)
}
