package population

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("invalid population config")

// Config sizes the synthetic network. The administrative hierarchy is
// district → upazila → union; facilities and patients hang off unions.
type Config struct {
	Seed                  int64 `yaml:"seed"`
	Districts             int   `yaml:"districts"`
	UpazilasPerDistrict   int   `yaml:"upazilas_per_district"`
	UnionsPerUpazila      int   `yaml:"unions_per_upazila"`
	FacilitiesPerUnion    int   `yaml:"facilities_per_union"`
	MaxWorkersPerFacility int   `yaml:"max_workers_per_facility"` // caps the facility's staff count
	ResourcesPerFacility  int   `yaml:"resources_per_facility"`
	PatientsPerUnion      int   `yaml:"patients_per_union"`
	Treatments            int   `yaml:"treatments"`
}

// DefaultConfig returns the reference network size.
func DefaultConfig() Config {
	return Config{
		Seed:                  42,
		Districts:             8,
		UpazilasPerDistrict:   5,
		UnionsPerUpazila:      10,
		FacilitiesPerUnion:    3,
		MaxWorkersPerFacility: 10,
		ResourcesPerFacility:  5,
		PatientsPerUnion:      1000,
		Treatments:            50,
	}
}

// Validate rejects negative sizes.
func (c Config) Validate() error {
	sizes := []struct {
		name string
		v    int
	}{
		{"districts", c.Districts},
		{"upazilas_per_district", c.UpazilasPerDistrict},
		{"unions_per_upazila", c.UnionsPerUpazila},
		{"facilities_per_union", c.FacilitiesPerUnion},
		{"max_workers_per_facility", c.MaxWorkersPerFacility},
		{"resources_per_facility", c.ResourcesPerFacility},
		{"patients_per_union", c.PatientsPerUnion},
		{"treatments", c.Treatments},
	}
	for _, s := range sizes {
		if s.v < 0 {
			return fmt.Errorf("%w: %s must be non-negative, got %d", ErrInvalidConfig, s.name, s.v)
		}
	}
	return nil
}
