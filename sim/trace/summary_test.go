package trace

import "testing"

func TestSummarize_NilTrace_ZeroValues(t *testing.T) {
	summary := Summarize(nil)

	if summary.TotalVisits != 0 || summary.TotalTrainings != 0 {
		t.Error("expected zero totals for nil trace")
	}
	if summary.ProgramCounts == nil {
		t.Error("expected non-nil program counts map")
	}
}

func TestSummarize_EmptyTrace_ZeroValues(t *testing.T) {
	// GIVEN an empty trace
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelEvents})

	// WHEN summarized
	summary := Summarize(st)

	// THEN all counts are zero
	if summary.TotalVisits != 0 || summary.UniquePatients != 0 {
		t.Errorf("expected no visits, got %d (%d unique)", summary.TotalVisits, summary.UniquePatients)
	}
	if summary.TotalTrainings != 0 || summary.UniqueWorkers != 0 {
		t.Errorf("expected no trainings, got %d (%d unique)", summary.TotalTrainings, summary.UniqueWorkers)
	}
	if len(summary.ProgramCounts) != 0 {
		t.Error("expected empty program counts")
	}
	if summary.BusiestDayVisits != 0 {
		t.Errorf("expected busiest day 0, got %d", summary.BusiestDayVisits)
	}
}

func TestSummarize_PopulatedTrace_CorrectCounts(t *testing.T) {
	// GIVEN a trace with visits over two days and three trainings
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelEvents})
	day1 := day0.AddDate(0, 0, 1)
	st.RecordVisit(VisitRecord{PatientID: "p1", Date: day0})
	st.RecordVisit(VisitRecord{PatientID: "p2", Date: day0})
	st.RecordVisit(VisitRecord{PatientID: "p1", Date: day1})
	st.RecordTraining(TrainingRecord{WorkerID: "w1", Program: "advanced_care", Date: day0})
	st.RecordTraining(TrainingRecord{WorkerID: "w1", Program: "quality_improvement", Date: day1})
	st.RecordTraining(TrainingRecord{WorkerID: "w2", Program: "advanced_care", Date: day1})

	// WHEN summarized
	summary := Summarize(st)

	// THEN counts reflect the records
	if summary.TotalVisits != 3 {
		t.Errorf("expected 3 visits, got %d", summary.TotalVisits)
	}
	if summary.UniquePatients != 2 {
		t.Errorf("expected 2 unique patients, got %d", summary.UniquePatients)
	}
	if summary.BusiestDayVisits != 2 {
		t.Errorf("expected busiest day 2, got %d", summary.BusiestDayVisits)
	}
	if summary.TotalTrainings != 3 || summary.UniqueWorkers != 2 {
		t.Errorf("expected 3 trainings by 2 workers, got %d by %d", summary.TotalTrainings, summary.UniqueWorkers)
	}
	if summary.ProgramCounts["advanced_care"] != 2 {
		t.Errorf("expected advanced_care=2, got %d", summary.ProgramCounts["advanced_care"])
	}
}
