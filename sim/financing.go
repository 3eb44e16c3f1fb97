package sim

// Financing owns per-patient insurance coverage and per-facility funding.
type Financing struct {
	coverage      map[string]float64
	coverageOrder []string // patient ids in first-set order
	funding       map[string]float64
}

// NewFinancing creates an empty Financing component.
func NewFinancing() *Financing {
	return &Financing{
		coverage: make(map[string]float64),
		funding:  make(map[string]float64),
	}
}

// SetCoverage clamps rate to [0,1] and stores it for patientID, replacing
// any earlier value.
func (fi *Financing) SetCoverage(patientID string, rate float64) {
	if _, exists := fi.coverage[patientID]; !exists {
		fi.coverageOrder = append(fi.coverageOrder, patientID)
	}
	fi.coverage[patientID] = clamp01(rate)
}

// Coverage returns the coverage rate for patientID, 0 when unknown.
func (fi *Financing) Coverage(patientID string) float64 {
	return fi.coverage[patientID]
}

// CoveredPatients returns the patient ids with a coverage entry, in the
// order they were first set.
func (fi *Financing) CoveredPatients() []string {
	out := make([]string, len(fi.coverageOrder))
	copy(out, fi.coverageOrder)
	return out
}

// CoverageCount is the number of patients with a coverage entry.
func (fi *Financing) CoverageCount() int { return len(fi.coverageOrder) }

// AllocateFunding replaces the funding of facilityID. The amount is not
// validated.
func (fi *Financing) AllocateFunding(facilityID string, amount float64) {
	fi.funding[facilityID] = amount
}

// Funding returns the funding of facilityID, 0 when unknown.
func (fi *Financing) Funding(facilityID string) float64 {
	return fi.funding[facilityID]
}

// GetPatientCost returns what the patient pays: treatmentCost * (1 - coverage).
// Unknown patients are treated as uninsured.
func (fi *Financing) GetPatientCost(patientID string, treatmentCost float64) float64 {
	return treatmentCost - treatmentCost*fi.coverage[patientID]
}

// GetCoverageRate is the mean coverage over all patients, 0 when none.
func (fi *Financing) GetCoverageRate() float64 {
	if len(fi.coverageOrder) == 0 {
		return 0.0
	}
	sum := 0.0
	for _, id := range fi.coverageOrder {
		sum += fi.coverage[id]
	}
	return sum / float64(len(fi.coverageOrder))
}
