package schema

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const ObservationCollection = "observation"

// Susceptibility result codes. Any other code is excluded from both the
// numerator and the denominator of resistance percentages.
const (
	ResultResistant    = "R"
	ResultIntermediate = "I"
	ResultSusceptible  = "S"
)

// ValidResult reports whether code is one of the three susceptibility codes.
func ValidResult(code string) bool {
	switch code {
	case ResultResistant, ResultIntermediate, ResultSusceptible:
		return true
	}
	return false
}

// Observation is one pathogen x antibiotic susceptibility test result.
// The observation ledger is append-only. Facility region and location are
// denormalized at ingest time so aggregations do not need a lookup stage.
type Observation struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ReportID     string             `bson:"report_id" json:"report_id"`
	FacilityID   primitive.ObjectID `bson:"facility_id" json:"facility_id"`
	ActorID      string             `bson:"actor_id" json:"actor_id"`
	PathogenID   primitive.ObjectID `bson:"pathogen_id" json:"pathogen_id"`
	AntibioticID primitive.ObjectID `bson:"antibiotic_id" json:"antibiotic_id"`

	PathogenName   string `bson:"pathogen_name" json:"pathogen_name"`
	AntibioticName string `bson:"antibiotic_name" json:"antibiotic_name"`

	Result       string  `bson:"result" json:"result"`
	MICValue     float64 `bson:"mic_value,omitempty" json:"mic_value,omitempty"`
	MutationData string  `bson:"mutation_data,omitempty" json:"mutation_data,omitempty"`

	SampleType        string `bson:"sample_type,omitempty" json:"sample_type,omitempty"`
	PatientAge        int    `bson:"patient_age,omitempty" json:"patient_age,omitempty"`
	PatientGender     string `bson:"patient_gender,omitempty" json:"patient_gender,omitempty"`
	PatientIdentifier string `bson:"patient_identifier,omitempty" json:"-"`
	ClinicalDiagnosis string `bson:"clinical_diagnosis,omitempty" json:"clinical_diagnosis,omitempty"`

	Region   string   `bson:"region,omitempty" json:"region,omitempty"`
	City     string   `bson:"city,omitempty" json:"city,omitempty"`
	Location *GeoJSON `bson:"location,omitempty" json:"location,omitempty"`

	ReportTS int64 `bson:"report_ts" json:"report_ts"`
	SampleTS int64 `bson:"sample_ts,omitempty" json:"sample_ts,omitempty"`
}
