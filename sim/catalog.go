// Static catalogs of facility, worker, treatment and resource types.
// Catalogs are ordered slices so that random draws over them are reproducible.

package sim

// IntRange is an inclusive integer range.
type IntRange struct{ Min, Max int }

// FloatRange is a closed float range.
type FloatRange struct{ Min, Max float64 }

// FacilityType describes one kind of facility.
type FacilityType struct {
	Name              string
	Capacity          IntRange
	RequiredEquipment []string
	RequiredStaff     []string
	Services          []string
}

// WorkerType describes one kind of healthcare worker.
type WorkerType struct {
	Name            string
	Experience      IntRange
	Qualifications  []string
	Specializations []string
	Skills          []string
}

// TreatmentType describes one kind of treatment.
type TreatmentType struct {
	Name              string
	Cost              FloatRange
	DurationMinutes   IntRange
	RequiredEquipment []string
	RequiredStaff     []string
}

// ResourceType describes one kind of resource.
type ResourceType struct {
	Name                     string
	Quantity                 IntRange
	UnitCost                 FloatRange
	MaintenanceFrequencyDays int
}

// BasicTraining is assigned to every worker on registration.
const BasicTraining = "basic_healthcare"

// AdvancedTrainingPrograms are drawn uniformly when a worker completes training.
var AdvancedTrainingPrograms = []string{
	"advanced_care",
	"specialized_treatment",
	"emergency_response",
	"quality_improvement",
}

// FacilityTypes is the facility catalog.
var FacilityTypes = []FacilityType{
	{
		Name:              "tertiary_hospital",
		Capacity:          IntRange{500, 1000},
		RequiredEquipment: []string{"mri_scanner", "ct_scanner", "xray_machine", "ultrasound_machine", "ventilator", "defibrillator"},
		RequiredStaff:     []string{"specialist_doctor", "general_doctor", "nurse", "technician", "pharmacist", "administrator"},
		Services:          []string{"specialized_surgery", "cancer_treatment", "cardiac_care"},
	},
	{
		Name:              "secondary_hospital",
		Capacity:          IntRange{200, 500},
		RequiredEquipment: []string{"xray_machine", "ultrasound_machine", "ventilator", "defibrillator"},
		RequiredStaff:     []string{"general_doctor", "nurse", "technician", "pharmacist", "administrator"},
		Services:          []string{"basic_surgery", "maternity_care", "pediatric_care"},
	},
	{
		Name:              "primary_hospital",
		Capacity:          IntRange{50, 200},
		RequiredEquipment: []string{"xray_machine", "basic_laboratory_equipment"},
		RequiredStaff:     []string{"general_doctor", "nurse", "pharmacist"},
		Services:          []string{"basic_healthcare", "vaccination", "family_planning"},
	},
	{
		Name:              "clinic",
		Capacity:          IntRange{10, 50},
		RequiredEquipment: []string{"basic_medical_equipment"},
		RequiredStaff:     []string{"general_doctor", "nurse"},
		Services:          []string{"outpatient_care", "basic_diagnostics", "pharmacy"},
	},
	{
		Name:              "diagnostic_center",
		Capacity:          IntRange{20, 100},
		RequiredEquipment: []string{"xray_machine", "ultrasound_machine", "laboratory_equipment"},
		RequiredStaff:     []string{"technician", "radiologist", "laboratory_technician"},
		Services:          []string{"laboratory_tests", "imaging", "specialized_diagnostics"},
	},
	{
		Name:              "specialized_center",
		Capacity:          IntRange{30, 150},
		RequiredEquipment: []string{"specialized_equipment"},
		RequiredStaff:     []string{"specialist_doctor", "nurse", "technician"},
		Services:          []string{"specialized_treatment", "rehabilitation", "research"},
	},
}

// WorkerTypes is the worker catalog.
var WorkerTypes = []WorkerType{
	{
		Name:            "doctor",
		Experience:      IntRange{0, 40},
		Qualifications:  []string{"MBBS", "MD", "PhD"},
		Specializations: []string{"cardiology", "neurology", "pediatrics", "surgery", "gynecology", "orthopedics"},
		Skills:          []string{"diagnosis", "treatment_planning", "surgery", "patient_care"},
	},
	{
		Name:            "nurse",
		Experience:      IntRange{0, 35},
		Qualifications:  []string{"BSc Nursing", "MSc Nursing"},
		Specializations: []string{"critical_care", "pediatric", "emergency", "surgical", "community_health"},
		Skills:          []string{"patient_care", "medication_administration", "emergency_care"},
	},
	{
		Name:            "technician",
		Experience:      IntRange{0, 30},
		Qualifications:  []string{"Diploma", "BSc", "Certification"},
		Specializations: []string{"radiology", "laboratory", "biomedical", "pharmacy", "maintenance"},
		Skills:          []string{"equipment_operation", "maintenance", "quality_control"},
	},
	{
		Name:            "pharmacist",
		Experience:      IntRange{0, 30},
		Qualifications:  []string{"BPharm", "MPharm"},
		Specializations: []string{"clinical", "hospital", "research", "retail", "industrial"},
		Skills:          []string{"medication_dispensing", "inventory_management", "patient_counseling"},
	},
	{
		Name:            "administrator",
		Experience:      IntRange{0, 35},
		Qualifications:  []string{"MBA", "MHA", "BBA"},
		Specializations: []string{"hospital", "clinical", "healthcare", "operations", "finance"},
		Skills:          []string{"management", "planning", "coordination"},
	},
	{
		Name:            "support_staff",
		Experience:      IntRange{0, 25},
		Qualifications:  []string{"High School", "Vocational Training"},
		Specializations: []string{"maintenance", "logistics", "security", "housekeeping", "transportation"},
		Skills:          []string{"maintenance", "logistics", "customer_service"},
	},
}

// TreatmentTypes is the treatment catalog.
var TreatmentTypes = []TreatmentType{
	{
		Name:              "consultation",
		Cost:              FloatRange{100, 500},
		DurationMinutes:   IntRange{15, 60},
		RequiredEquipment: []string{"basic_medical_equipment"},
		RequiredStaff:     []string{"doctor"},
	},
	{
		Name:              "surgery",
		Cost:              FloatRange{5000, 100000},
		DurationMinutes:   IntRange{60, 480},
		RequiredEquipment: []string{"surgical_instruments", "anesthesia_machine", "monitoring_equipment"},
		RequiredStaff:     []string{"surgeon", "anesthesiologist", "nurse", "technician"},
	},
	{
		Name:              "diagnostic_test",
		Cost:              FloatRange{200, 2000},
		DurationMinutes:   IntRange{30, 120},
		RequiredEquipment: []string{"xray_machine", "ultrasound", "laboratory_equipment"},
		RequiredStaff:     []string{"technician", "radiologist"},
	},
	{
		Name:              "therapy",
		Cost:              FloatRange{300, 1000},
		DurationMinutes:   IntRange{45, 90},
		RequiredEquipment: []string{"therapy_equipment", "exercise_equipment"},
		RequiredStaff:     []string{"therapist", "nurse"},
	},
	{
		Name:              "emergency_care",
		Cost:              FloatRange{1000, 5000},
		DurationMinutes:   IntRange{30, 180},
		RequiredEquipment: []string{"defibrillator", "ventilator", "monitoring_equipment"},
		RequiredStaff:     []string{"emergency_physician", "nurse", "paramedic"},
	},
	{
		Name:              "preventive_care",
		Cost:              FloatRange{50, 300},
		DurationMinutes:   IntRange{15, 60},
		RequiredEquipment: []string{"vaccination_equipment", "screening_tools"},
		RequiredStaff:     []string{"general_physician", "nurse"},
	},
}

// ResourceTypes is the resource catalog.
var ResourceTypes = []ResourceType{
	{Name: "medical_equipment", Quantity: IntRange{1, 10}, UnitCost: FloatRange{1000, 100000}, MaintenanceFrequencyDays: 90},
	{Name: "pharmaceuticals", Quantity: IntRange{100, 1000}, UnitCost: FloatRange{10, 1000}, MaintenanceFrequencyDays: 30},
	{Name: "supplies", Quantity: IntRange{1000, 10000}, UnitCost: FloatRange{1, 100}, MaintenanceFrequencyDays: 7},
	{Name: "technology", Quantity: IntRange{1, 5}, UnitCost: FloatRange{500, 5000}, MaintenanceFrequencyDays: 60},
	{Name: "furniture", Quantity: IntRange{10, 100}, UnitCost: FloatRange{100, 1000}, MaintenanceFrequencyDays: 180},
}

// LookupFacilityType returns the catalog entry for name.
func LookupFacilityType(name string) (FacilityType, bool) {
	for _, ft := range FacilityTypes {
		if ft.Name == name {
			return ft, true
		}
	}
	return FacilityType{}, false
}

// LookupWorkerType returns the catalog entry for name.
func LookupWorkerType(name string) (WorkerType, bool) {
	for _, wt := range WorkerTypes {
		if wt.Name == name {
			return wt, true
		}
	}
	return WorkerType{}, false
}

// LookupResourceType returns the catalog entry for name.
func LookupResourceType(name string) (ResourceType, bool) {
	for _, rt := range ResourceTypes {
		if rt.Name == name {
			return rt, true
		}
	}
	return ResourceType{}, false
}
