package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalVisits      int
	UniquePatients   int
	TotalTrainings   int
	UniqueWorkers    int
	ProgramCounts    map[string]int // program -> completions
	BusiestDayVisits int            // max visits recorded on a single date
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		ProgramCounts: make(map[string]int),
	}
	if st == nil {
		return summary
	}

	patients := make(map[string]struct{})
	perDay := make(map[int64]int)
	for _, v := range st.Visits {
		patients[v.PatientID] = struct{}{}
		day := v.Date.Unix()
		perDay[day]++
		if perDay[day] > summary.BusiestDayVisits {
			summary.BusiestDayVisits = perDay[day]
		}
	}
	summary.TotalVisits = len(st.Visits)
	summary.UniquePatients = len(patients)

	workers := make(map[string]struct{})
	for _, tr := range st.Trainings {
		workers[tr.WorkerID] = struct{}{}
		summary.ProgramCounts[tr.Program]++
	}
	summary.TotalTrainings = len(st.Trainings)
	summary.UniqueWorkers = len(workers)

	return summary
}
