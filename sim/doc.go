// Package sim provides the daily-stepped healthcare network simulation engine.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - entities.go: the passive records (locations, facilities, workers, patients, treatments, resources)
//   - simulator.go: registration with foreign-key checks, the daily Step and the summaries
//   - rng.go: per-subsystem seeded randomness that makes runs reproducible
//
// # Architecture
//
// The Simulator owns four components and is the only caller that joins
// data across them:
//   - Infrastructure: facilities, resources, utilization and quality scores
//   - Workforce: workers, training assignments, performance
//   - Financing: per-patient coverage rates and per-facility funding
//   - DigitalHealth: electronic health records and telemedicine sessions
//
// Sub-packages build on the engine without being imported by it:
//   - sim/trace/: per-day visit and training event recording
//   - sim/population/: seeded synthetic network generation
//   - sim/report/: statistical summaries and recommendations over metric series
//   - sim/export/: Prometheus gauges fed by StepObserver
//
// # Determinism
//
// Entities are iterated in insertion order and every stochastic concern
// draws from its own PartitionedRNG subsystem, so two simulators built from
// the same seed and the same entities produce identical metric series.
package sim
