package ingest

import (
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
)

const logPrefix = "ingest"

// ErrMissingField rejects a record lacking one of the required fields
// (pathogen, antibiotic, result).
var ErrMissingField = errors.New("missing required field")

// Record is one raw uploaded key-value record. File parsing happens
// upstream; the normalizer only sees already-decoded values.
type Record map[string]interface{}

// NormalizedRecord is a validated, canonicalized resistance observation
// still keyed by catalog names. Catalog id resolution happens at the
// storage layer.
type NormalizedRecord struct {
	PathogenName   string
	ScientificName string
	PathogenType   string

	AntibioticName string
	DrugClass      string

	Result       string
	MICValue     float64
	MutationData string

	SampleType        string
	PatientAge        int
	PatientGender     string
	PatientHash       string
	ClinicalDiagnosis string

	ReportTime time.Time
	SampleTime *time.Time

	Critical bool
}

// Normalizer validates raw records and hashes patient identifiers.
type Normalizer struct {
	hasher *PatientHasher
	now    func() time.Time
}

func NewNormalizer(hasher *PatientHasher) *Normalizer {
	return &Normalizer{
		hasher: hasher,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Normalize canonicalizes one raw record. Missing required fields reject
// the record; unknown extra fields are ignored. An unparseable optional
// date is dropped, an unparseable report date falls back to now.
func (n *Normalizer) Normalize(raw Record) (*NormalizedRecord, error) {
	for _, field := range []string{"pathogen", "antibiotic", "result"} {
		if stringValue(raw, field) == "" {
			return nil, fmt.Errorf("%w: %s", ErrMissingField, field)
		}
	}

	rec := &NormalizedRecord{
		PathogenName:   stringValue(raw, "pathogen"),
		ScientificName: stringValue(raw, "scientific_name"),
		PathogenType:   stringValue(raw, "pathogen_type"),

		AntibioticName: stringValue(raw, "antibiotic"),
		DrugClass:      stringValue(raw, "drug_class"),

		Result:       stringValue(raw, "result"),
		MICValue:     floatValue(raw, "mic_value"),
		MutationData: stringValue(raw, "mutation_data"),

		SampleType:        stringValue(raw, "sample_type"),
		PatientAge:        intValue(raw, "patient_age"),
		PatientGender:     stringValue(raw, "patient_gender"),
		ClinicalDiagnosis: stringValue(raw, "clinical_diagnosis"),

		Critical: boolValue(raw, "is_critical"),
	}

	rec.ReportTime = n.now()
	if v := stringValue(raw, "report_date"); v != "" {
		if t, err := ParseDate(v); err == nil {
			rec.ReportTime = t
		} else {
			log.WithFields(log.Fields{
				"prefix": logPrefix,
				"value":  v,
			}).Warn("unparseable report date, default to now")
		}
	}

	if v := stringValue(raw, "sample_date"); v != "" {
		if t, err := ParseDate(v); err == nil {
			rec.SampleTime = &t
		} else {
			log.WithFields(log.Fields{
				"prefix": logPrefix,
				"value":  v,
			}).Warn("unparseable sample date dropped")
		}
	}

	if id := stringValue(raw, "patient_id"); id != "" {
		rec.PatientHash = n.hasher.Hash(id)
	}

	return rec, nil
}

func stringValue(raw Record, key string) string {
	v, ok := raw[key]
	if !ok || v == nil {
		return ""
	}
	switch s := v.(type) {
	case string:
		return s
	default:
		return fmt.Sprintf("%v", v)
	}
}

func floatValue(raw Record, key string) float64 {
	switch v := raw[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	default:
		return 0
	}
}

func intValue(raw Record, key string) int {
	switch v := raw[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}

func boolValue(raw Record, key string) bool {
	switch v := raw[key].(type) {
	case bool:
		return v
	case string:
		return v == "true" || v == "TRUE" || v == "True"
	default:
		return false
	}
}
