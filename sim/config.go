package sim

import (
	"fmt"
	"math"

	"github.com/healthsim/healthsim/sim/trace"
)

// EngineConfig groups every tunable of the daily stepping loop.
type EngineConfig struct {
	Seed int64 // master seed for PartitionedRNG

	VisitProbability    float64 // per patient per day (default 0.10)
	TrainingProbability float64 // per worker per day (default 0.05)

	UtilizationNoiseStd float64 // std of the Gaussian term added to baseline utilization (default 0.1)
	StaffingRatio       float64 // staff needed per bed for full utilization (default 0.1)

	WorkerQualityWeight    float64 // weight of mean worker performance (default 0.6)
	EquipmentQualityWeight float64 // weight of equipment score (default 0.4)
	EquipmentSaturation    int     // count at which one equipment kind scores 1.0 (default 5)

	DefaultFacilityFunding float64        // allocated by AddFacility (default 1,000,000)
	InitialTraining        string         // assigned by AddHealthcareWorker; empty disables
	CoveragePolicy         CoveragePolicy // used by AddPatient when no policy is passed

	TraceLevel trace.TraceLevel // "none" (default) or "events"
}

// DefaultEngineConfig returns the reference parameters of the simulation.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		Seed:                   42,
		VisitProbability:       0.10,
		TrainingProbability:    0.05,
		UtilizationNoiseStd:    0.1,
		StaffingRatio:          0.1,
		WorkerQualityWeight:    0.6,
		EquipmentQualityWeight: 0.4,
		EquipmentSaturation:    5,
		DefaultFacilityFunding: 1_000_000,
		InitialTraining:        BasicTraining,
		CoveragePolicy:         InsuredCoverage(0.7, 0.0),
		TraceLevel:             trace.TraceLevelNone,
	}
}

// Validate checks that all fields are usable by the engine.
func (c EngineConfig) Validate() error {
	if err := validateProbability("visit_probability", c.VisitProbability); err != nil {
		return err
	}
	if err := validateProbability("training_probability", c.TrainingProbability); err != nil {
		return err
	}
	if math.IsNaN(c.UtilizationNoiseStd) || c.UtilizationNoiseStd < 0 {
		return fmt.Errorf("%w: utilization_noise_std must be non-negative, got %f", ErrInvalidConfig, c.UtilizationNoiseStd)
	}
	if math.IsNaN(c.StaffingRatio) || c.StaffingRatio <= 0 {
		return fmt.Errorf("%w: staffing_ratio must be positive, got %f", ErrInvalidConfig, c.StaffingRatio)
	}
	if c.WorkerQualityWeight < 0 || c.EquipmentQualityWeight < 0 ||
		math.Abs(c.WorkerQualityWeight+c.EquipmentQualityWeight-1) > 1e-9 {
		return fmt.Errorf("%w: quality weights must be non-negative and sum to 1, got %f + %f",
			ErrInvalidConfig, c.WorkerQualityWeight, c.EquipmentQualityWeight)
	}
	if c.EquipmentSaturation <= 0 {
		return fmt.Errorf("%w: equipment_saturation must be positive, got %d", ErrInvalidConfig, c.EquipmentSaturation)
	}
	if !trace.IsValidTraceLevel(string(c.TraceLevel)) {
		return fmt.Errorf("%w: unknown trace level %q; valid: none, events", ErrInvalidConfig, c.TraceLevel)
	}
	return nil
}

func validateProbability(name string, p float64) error {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return fmt.Errorf("%w: %s must be in [0, 1], got %f", ErrInvalidConfig, name, p)
	}
	return nil
}
