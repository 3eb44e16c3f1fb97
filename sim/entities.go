// Defines the entities of the healthcare network. Entities are plain data;
// the component that owns an entity is the only code that mutates it.

package sim

import (
	"fmt"
	"time"
)

// LocationType is a level of the administrative hierarchy.
type LocationType string

const (
	LocationDistrict LocationType = "district"
	LocationUpazila  LocationType = "upazila"
	LocationUnion    LocationType = "union"
	LocationWard     LocationType = "ward"
)

// InsuranceStatus of a patient.
type InsuranceStatus string

const (
	Insured   InsuranceStatus = "insured"
	Uninsured InsuranceStatus = "uninsured"
	Partial   InsuranceStatus = "partial"
)

// SocioeconomicStatus of a patient.
type SocioeconomicStatus string

const (
	SocioeconomicLow    SocioeconomicStatus = "low"
	SocioeconomicMiddle SocioeconomicStatus = "middle"
	SocioeconomicHigh   SocioeconomicStatus = "high"
)

// ResourceStatus is the lifecycle state of a resource.
type ResourceStatus string

const (
	ResourceActive      ResourceStatus = "active"
	ResourceMaintenance ResourceStatus = "maintenance"
	ResourceRetired     ResourceStatus = "retired"
)

// Entity is anything stored in a Registry.
type Entity interface {
	EntityID() string
}

// Coordinates is a WGS84 latitude/longitude pair.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Location is a node of the administrative hierarchy
// (district → upazila → union → ward).
type Location struct {
	ID          string
	Name        string
	Type        LocationType
	Population  int
	Coordinates Coordinates
	ParentID    string // empty for roots
}

func (l *Location) EntityID() string { return l.ID }

// Facility is a healthcare facility. QualityScore is in [0,1] and is only
// written by Infrastructure.
type Facility struct {
	ID                string
	Name              string
	Type              string // key into FacilityTypes
	LocationID        string
	Capacity          int
	StaffCount        int
	Equipment         map[string]int // equipment kind -> count
	Services          []string
	QualityScore      float64
	OperationalStatus string
}

func (f *Facility) EntityID() string { return f.ID }

func (f *Facility) String() string {
	return fmt.Sprintf("Facility: (ID: %s, Type: %s, Capacity: %d, Staff: %d, Quality: %.3f)",
		f.ID, f.Type, f.Capacity, f.StaffCount, f.QualityScore)
}

// Worker is a healthcare worker assigned to one facility.
type Worker struct {
	ID               string
	Name             string
	Type             string // key into WorkerTypes
	Specialization   string
	FacilityID       string
	ExperienceYears  int
	Qualifications   []string
	Skills           []string
	PerformanceScore float64
}

func (w *Worker) EntityID() string { return w.ID }

// ConditionRecord is one dated entry of a patient's medical history.
type ConditionRecord struct {
	Condition     string    `json:"condition"`
	DiagnosisDate time.Time `json:"diagnosis_date"`
	Treatment     string    `json:"treatment"`
	Status        string    `json:"status"` // active, resolved, chronic
}

// Patient is a member of the synthetic population. Coverage and health
// records are keyed by ID in their owning components, not stored here.
type Patient struct {
	ID                  string
	Name                string
	Age                 int
	Gender              string
	LocationID          string
	InsuranceStatus     InsuranceStatus
	MedicalHistory      []ConditionRecord
	CurrentConditions   []string
	SocioeconomicStatus SocioeconomicStatus
	LastVisit           *time.Time
}

func (p *Patient) EntityID() string { return p.ID }

// Treatment is a catalog entry. Treatments are never executed against
// patients; they are immutable after creation.
type Treatment struct {
	ID                string
	Name              string
	Type              string // key into TreatmentTypes
	Cost              float64
	DurationMinutes   int
	SuccessRate       float64
	ComplicationsRate float64
	RequiredEquipment []string
	RequiredStaff     []string
}

func (t *Treatment) EntityID() string { return t.ID }

// MaintenanceSchedule describes how often a resource is serviced.
type MaintenanceSchedule struct {
	FrequencyDays   int
	NextMaintenance time.Time
	Kind            string // preventive, corrective, predictive
}

// Resource is a stock of equipment, supplies or medicine held by a facility.
type Resource struct {
	ID              string
	Name            string
	Type            string // key into ResourceTypes
	Quantity        int
	UnitCost        float64
	FacilityID      string
	Status          ResourceStatus
	Maintenance     MaintenanceSchedule
	LastMaintenance time.Time
}

func (r *Resource) EntityID() string { return r.ID }
