package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/healthsim/healthsim/sim"
	"github.com/healthsim/healthsim/sim/population"
	"github.com/healthsim/healthsim/sim/trace"
)

// Coverage policy names accepted by --coverage-policy and the scenario file.
const (
	PolicyInsured = "insured"
	PolicyFlat    = "flat"
)

// Scenario is the YAML description of one simulation run.
// All top-level sections must be listed to satisfy KnownFields(true) strict parsing.
type Scenario struct {
	Start      string            `yaml:"start"` // YYYY-MM-DD
	End        string            `yaml:"end"`   // YYYY-MM-DD, exclusive
	Engine     EngineSection     `yaml:"engine"`
	Coverage   CoverageSection   `yaml:"coverage"`
	Population population.Config `yaml:"population"`
}

// EngineSection mirrors sim.EngineConfig for the scenario file.
type EngineSection struct {
	Seed                   int64   `yaml:"seed"`
	VisitProbability       float64 `yaml:"visit_probability"`
	TrainingProbability    float64 `yaml:"training_probability"`
	UtilizationNoiseStd    float64 `yaml:"utilization_noise_std"`
	StaffingRatio          float64 `yaml:"staffing_ratio"`
	WorkerQualityWeight    float64 `yaml:"worker_quality_weight"`
	EquipmentQualityWeight float64 `yaml:"equipment_quality_weight"`
	EquipmentSaturation    int     `yaml:"equipment_saturation"`
	DefaultFacilityFunding float64 `yaml:"default_facility_funding"`
	InitialTraining        string  `yaml:"initial_training"`
	TraceLevel             string  `yaml:"trace_level"`
}

// CoverageSection selects the policy used when loading patients.
type CoverageSection struct {
	Policy      string  `yaml:"policy"` // insured or flat
	InsuredRate float64 `yaml:"insured_rate"`
	PartialRate float64 `yaml:"partial_rate"`
	FlatRate    float64 `yaml:"flat_rate"`
}

// DefaultScenario is a one-year run over the reference network.
func DefaultScenario() Scenario {
	engine := sim.DefaultEngineConfig()
	return Scenario{
		Start: "2023-01-01",
		End:   "2023-12-31",
		Engine: EngineSection{
			Seed:                   engine.Seed,
			VisitProbability:       engine.VisitProbability,
			TrainingProbability:    engine.TrainingProbability,
			UtilizationNoiseStd:    engine.UtilizationNoiseStd,
			StaffingRatio:          engine.StaffingRatio,
			WorkerQualityWeight:    engine.WorkerQualityWeight,
			EquipmentQualityWeight: engine.EquipmentQualityWeight,
			EquipmentSaturation:    engine.EquipmentSaturation,
			DefaultFacilityFunding: engine.DefaultFacilityFunding,
			InitialTraining:        engine.InitialTraining,
			TraceLevel:             string(engine.TraceLevel),
		},
		Coverage: CoverageSection{
			Policy:      PolicyInsured,
			InsuredRate: 0.7,
			PartialRate: 0.0,
			FlatRate:    0.5,
		},
		Population: population.DefaultConfig(),
	}
}

// LoadScenario reads path over DefaultScenario: keys absent from the file
// keep their default. Unknown keys are rejected.
func LoadScenario(path string) (Scenario, error) {
	sc := DefaultScenario()
	data, err := os.ReadFile(path)
	if err != nil {
		return sc, fmt.Errorf("reading scenario: %w", err)
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&sc); err != nil && !errors.Is(err, io.EOF) {
		return sc, fmt.Errorf("parsing scenario %s: %w", path, err)
	}
	return sc, nil
}

// Dates parses the start and end dates.
func (sc Scenario) Dates() (time.Time, time.Time, error) {
	start, err := time.Parse(time.DateOnly, sc.Start)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid start date %q: %w", sc.Start, err)
	}
	end, err := time.Parse(time.DateOnly, sc.End)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid end date %q: %w", sc.End, err)
	}
	return start, end, nil
}

// CoveragePolicy builds the policy named by the coverage section. Every rate
// must be a number in [0, 1].
func (sc Scenario) CoveragePolicy() (sim.CoveragePolicy, error) {
	rates := []struct {
		name string
		v    float64
	}{
		{"insured_rate", sc.Coverage.InsuredRate},
		{"partial_rate", sc.Coverage.PartialRate},
		{"flat_rate", sc.Coverage.FlatRate},
	}
	for _, r := range rates {
		if math.IsNaN(r.v) || r.v < 0 || r.v > 1 {
			return nil, fmt.Errorf("%w: coverage %s must be in [0, 1], got %v", sim.ErrInvalidConfig, r.name, r.v)
		}
	}
	switch sc.Coverage.Policy {
	case PolicyInsured, "":
		return sim.InsuredCoverage(sc.Coverage.InsuredRate, sc.Coverage.PartialRate), nil
	case PolicyFlat:
		return sim.FlatCoverage(sc.Coverage.FlatRate), nil
	default:
		return nil, fmt.Errorf("unknown coverage policy %q; valid: %s, %s", sc.Coverage.Policy, PolicyInsured, PolicyFlat)
	}
}

// EngineConfig converts the scenario into a validated sim.EngineConfig.
func (sc Scenario) EngineConfig() (sim.EngineConfig, error) {
	policy, err := sc.CoveragePolicy()
	if err != nil {
		return sim.EngineConfig{}, err
	}
	cfg := sim.EngineConfig{
		Seed:                   sc.Engine.Seed,
		VisitProbability:       sc.Engine.VisitProbability,
		TrainingProbability:    sc.Engine.TrainingProbability,
		UtilizationNoiseStd:    sc.Engine.UtilizationNoiseStd,
		StaffingRatio:          sc.Engine.StaffingRatio,
		WorkerQualityWeight:    sc.Engine.WorkerQualityWeight,
		EquipmentQualityWeight: sc.Engine.EquipmentQualityWeight,
		EquipmentSaturation:    sc.Engine.EquipmentSaturation,
		DefaultFacilityFunding: sc.Engine.DefaultFacilityFunding,
		InitialTraining:        sc.Engine.InitialTraining,
		CoveragePolicy:         policy,
		TraceLevel:             trace.TraceLevel(sc.Engine.TraceLevel),
	}
	if err := cfg.Validate(); err != nil {
		return sim.EngineConfig{}, err
	}
	return cfg, nil
}
