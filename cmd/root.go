package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/healthsim/healthsim/sim"
	"github.com/healthsim/healthsim/sim/export"
	"github.com/healthsim/healthsim/sim/population"
	"github.com/healthsim/healthsim/sim/report"
	"github.com/healthsim/healthsim/sim/trace"
)

var (
	// CLI flags for the run command
	seed           int64   // Seed for both population generation and the daily draws
	startDate      string  // First simulated day (YYYY-MM-DD)
	endDate        string  // Exclusive end date (YYYY-MM-DD)
	scenarioPath   string  // Optional YAML scenario file
	coveragePolicy string  // insured or flat
	flatRate       float64 // Coverage rate used by the flat policy
	logLevel       string  // Log verbosity level
	traceLevel     string  // Event trace level (none, events)
	metricsOut     string  // Prometheus textfile written after the run
	reportOut      string  // Report file written in addition to stdout
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "healthsim",
	Short: "Daily-stepped simulator for healthcare networks",
}

// runCmd executes the simulation using the scenario file and CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the healthcare network simulation",
	Run: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		sc := DefaultScenario()
		if scenarioPath != "" {
			if sc, err = LoadScenario(scenarioPath); err != nil {
				logrus.Fatalf("%v", err)
			}
			logrus.Infof("Loaded scenario %s", scenarioPath)
		}
		applyFlagOverrides(cmd, &sc)

		if err := runSimulation(sc, runOutputs{Report: reportOut, Metrics: metricsOut}, os.Stdout); err != nil {
			logrus.Fatalf("%v", err)
		}
		logrus.Info("Simulation complete.")
	},
}

// applyFlagOverrides copies explicitly set flags over scenario values.
func applyFlagOverrides(cmd *cobra.Command, sc *Scenario) {
	flags := cmd.Flags()
	if flags.Changed("seed") {
		sc.Engine.Seed = seed
		sc.Population.Seed = seed
	}
	if flags.Changed("start") {
		sc.Start = startDate
	}
	if flags.Changed("end") {
		sc.End = endDate
	}
	if flags.Changed("coverage-policy") {
		sc.Coverage.Policy = coveragePolicy
	}
	if flags.Changed("flat-rate") {
		sc.Coverage.FlatRate = flatRate
	}
	if flags.Changed("trace") {
		sc.Engine.TraceLevel = traceLevel
	}
}

// runOutputs names the optional files a run writes.
type runOutputs struct {
	Report  string
	Metrics string
}

// runSimulation builds the network described by sc, runs it to completion
// and writes the report to out.
func runSimulation(sc Scenario, outputs runOutputs, out io.Writer) error {
	start, end, err := sc.Dates()
	if err != nil {
		return err
	}
	cfg, err := sc.EngineConfig()
	if err != nil {
		return err
	}
	s, err := sim.NewSimulator(start, end, cfg)
	if err != nil {
		return err
	}

	pop, err := population.Generate(sc.Population, start)
	if err != nil {
		return err
	}
	if err := pop.Load(s, nil); err != nil {
		return err
	}
	logrus.Infof("Loaded network: %d locations, %d facilities, %d workers, %d patients",
		len(pop.Locations), len(pop.Facilities), len(pop.Workers), len(pop.Patients))

	var exporter *export.Exporter
	if outputs.Metrics != "" {
		exporter = export.NewExporter("")
		s.AddObserver(exporter)
	}

	wallStart := time.Now()
	s.Run()
	logrus.Infof("Simulated %d days in %s", s.StepCount, time.Since(wallStart).Round(time.Millisecond))

	r := report.Build(s.GetMetrics())
	if err := r.Write(out); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	if s.Trace.Enabled() {
		writeTraceSummary(out, trace.Summarize(s.Trace))
	}
	if outputs.Report != "" {
		if err := writeReportFile(outputs.Report, r); err != nil {
			return err
		}
	}
	if exporter != nil {
		if err := exporter.WriteTextfile(outputs.Metrics); err != nil {
			return err
		}
	}
	return nil
}

func writeReportFile(path string, r report.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report file: %w", err)
	}
	if err := r.Write(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing report file: %w", err)
	}
	return f.Close()
}

func writeTraceSummary(out io.Writer, ts *trace.TraceSummary) {
	_, _ = fmt.Fprintf(out, "\nEvent Trace\n-----------\n")
	_, _ = fmt.Fprintf(out, "Visits:    %d (%d unique patients, busiest day %d)\n", ts.TotalVisits, ts.UniquePatients, ts.BusiestDayVisits)
	_, _ = fmt.Fprintf(out, "Trainings: %d (%d unique workers)\n", ts.TotalTrainings, ts.UniqueWorkers)
	for _, program := range sim.AdvancedTrainingPrograms {
		if n := ts.ProgramCounts[program]; n > 0 {
			_, _ = fmt.Fprintf(out, "  %-24s %d\n", program, n)
		}
	}
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for population generation and daily randomness")
	runCmd.Flags().StringVar(&startDate, "start", "2023-01-01", "First simulated day (YYYY-MM-DD)")
	runCmd.Flags().StringVar(&endDate, "end", "2023-12-31", "End date, exclusive (YYYY-MM-DD)")
	runCmd.Flags().StringVar(&scenarioPath, "scenario", "", "Path to a YAML scenario file")
	runCmd.Flags().StringVar(&coveragePolicy, "coverage-policy", PolicyInsured, "Patient coverage policy (insured, flat)")
	runCmd.Flags().Float64Var(&flatRate, "flat-rate", 0.5, "Coverage rate applied by the flat policy")
	runCmd.Flags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().StringVar(&traceLevel, "trace", "none", "Event trace level (none, events)")
	runCmd.Flags().StringVar(&metricsOut, "metrics-out", "", "Write final Prometheus metrics to this textfile")
	runCmd.Flags().StringVar(&reportOut, "report", "", "Also write the report to this file")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
