package sim

// CoveragePolicy decides the insurance coverage rate a patient starts with.
type CoveragePolicy func(p *Patient) float64

// FlatCoverage gives every patient the same rate regardless of insurance status.
func FlatCoverage(rate float64) CoveragePolicy {
	return func(*Patient) float64 { return rate }
}

// InsuredCoverage gives insuredRate to insured patients, partialRate to
// partially insured patients and nothing to the uninsured.
func InsuredCoverage(insuredRate, partialRate float64) CoveragePolicy {
	return func(p *Patient) float64 {
		switch p.InsuranceStatus {
		case Insured:
			return insuredRate
		case Partial:
			return partialRate
		default:
			return 0.0
		}
	}
}
