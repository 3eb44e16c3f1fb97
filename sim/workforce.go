package sim

import (
	"math/rand"
	"slices"

	"github.com/sirupsen/logrus"
)

// Workforce owns workers and the training programs each has completed.
type Workforce struct {
	workers  *Registry[*Worker]
	training map[string][]string // worker id -> programs in assignment order
}

// NewWorkforce creates an empty Workforce component.
func NewWorkforce() *Workforce {
	return &Workforce{
		workers:  NewRegistry[*Worker]("worker"),
		training: make(map[string][]string),
	}
}

// AddWorker registers w with an empty training list.
func (wf *Workforce) AddWorker(w *Worker) error {
	if err := wf.workers.Add(w); err != nil {
		return err
	}
	wf.training[w.ID] = []string{}
	return nil
}

// Worker returns the worker with the given id.
func (wf *Workforce) Worker(id string) (*Worker, bool) {
	return wf.workers.Get(id)
}

// Workers exposes the worker registry for ordered iteration.
func (wf *Workforce) Workers() *Registry[*Worker] {
	return wf.workers
}

// AssignTraining appends program to the worker's training list.
// Assigning a program the worker already holds is a no-op.
// Unknown workers are ignored.
func (wf *Workforce) AssignTraining(workerID, program string) {
	if !wf.workers.Has(workerID) {
		logrus.Debugf("AssignTraining: unknown worker %q ignored", workerID)
		return
	}
	programs := wf.training[workerID]
	if slices.Contains(programs, program) {
		return
	}
	wf.training[workerID] = append(programs, program)
}

// Training returns a copy of the worker's training list.
func (wf *Workforce) Training(workerID string) []string {
	return slices.Clone(wf.training[workerID])
}

// UpdatePerformance clamps score to [0,1] and stores it on the worker.
// Unknown workers are ignored.
func (wf *Workforce) UpdatePerformance(workerID string, score float64) {
	w, ok := wf.workers.Get(workerID)
	if !ok {
		logrus.Debugf("UpdatePerformance: unknown worker %q ignored", workerID)
		return
	}
	w.PerformanceScore = clamp01(score)
}

// GetQualifications returns base qualifications followed by training
// programs in assignment order. Unknown workers have none.
func (wf *Workforce) GetQualifications(workerID string) []string {
	w, ok := wf.workers.Get(workerID)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(w.Qualifications)+len(wf.training[workerID]))
	out = append(out, w.Qualifications...)
	return append(out, wf.training[workerID]...)
}

// CompleteTraining applies the daily training-completion rule to one worker:
// with probability p a program is drawn uniformly from
// AdvancedTrainingPrograms and assigned. Exactly one draw is consumed per
// call, plus one more when training completes.
func (wf *Workforce) CompleteTraining(workerID string, p float64, rng *rand.Rand) (string, bool) {
	if rng.Float64() >= p {
		return "", false
	}
	program := AdvancedTrainingPrograms[rng.Intn(len(AdvancedTrainingPrograms))]
	wf.AssignTraining(workerID, program)
	return program, true
}

// MeanPerformanceByFacility groups workers by facility in one pass and
// returns the mean performance per facility id. Facilities without workers
// are absent from the result.
func (wf *Workforce) MeanPerformanceByFacility() map[string]float64 {
	scores := make(map[string][]float64)
	wf.workers.Each(func(w *Worker) {
		scores[w.FacilityID] = append(scores[w.FacilityID], w.PerformanceScore)
	})
	out := make(map[string]float64, len(scores))
	for facilityID, s := range scores {
		out[facilityID] = mean(s)
	}
	return out
}
