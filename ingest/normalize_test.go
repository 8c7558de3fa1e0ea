package ingest_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/openamr/surveillance-api/ingest"
)

func newTestNormalizer() *ingest.Normalizer {
	return ingest.NewNormalizer(ingest.NewPatientHasher("test-salt"))
}

func TestNormalizeValidRecord(t *testing.T) {
	n := newTestNormalizer()

	rec, err := n.Normalize(ingest.Record{
		"pathogen":        "E. coli",
		"scientific_name": "Escherichia coli",
		"antibiotic":      "Ciprofloxacin",
		"drug_class":      "Fluoroquinolone",
		"result":          "R",
		"mic_value":       float64(2),
		"sample_type":     "urine",
		"patient_age":     float64(42),
		"report_date":     "2020-03-15",
		"sample_date":     "2020/03/10 08:30:00",
		"is_critical":     true,
	})

	assert.NoError(t, err)
	assert.Equal(t, "E. coli", rec.PathogenName)
	assert.Equal(t, "Ciprofloxacin", rec.AntibioticName)
	assert.Equal(t, "R", rec.Result)
	assert.Equal(t, float64(2), rec.MICValue)
	assert.Equal(t, 42, rec.PatientAge)
	assert.True(t, rec.Critical)
	assert.Equal(t, time.Date(2020, 3, 15, 0, 0, 0, 0, time.UTC), rec.ReportTime)
	if assert.NotNil(t, rec.SampleTime) {
		assert.Equal(t, time.Date(2020, 3, 10, 8, 30, 0, 0, time.UTC), *rec.SampleTime)
	}
}

func TestNormalizeMissingRequiredField(t *testing.T) {
	n := newTestNormalizer()

	for _, missing := range []string{"pathogen", "antibiotic", "result"} {
		raw := ingest.Record{
			"pathogen":   "E. coli",
			"antibiotic": "Ciprofloxacin",
			"result":     "S",
		}
		delete(raw, missing)

		rec, err := n.Normalize(raw)
		assert.Nil(t, rec)
		assert.True(t, errors.Is(err, ingest.ErrMissingField), "expected missing field error for %s", missing)
	}
}

func TestNormalizeIgnoresUnknownFields(t *testing.T) {
	n := newTestNormalizer()

	rec, err := n.Normalize(ingest.Record{
		"pathogen":      "K. pneumoniae",
		"antibiotic":    "Meropenem",
		"result":        "I",
		"lab_machine":   "vitek-2",
		"internal_note": "retest",
	})

	assert.NoError(t, err)
	assert.Equal(t, "K. pneumoniae", rec.PathogenName)
}

func TestNormalizeUnparseableOptionalDateDropped(t *testing.T) {
	n := newTestNormalizer()

	rec, err := n.Normalize(ingest.Record{
		"pathogen":    "E. coli",
		"antibiotic":  "Ampicillin",
		"result":      "R",
		"sample_date": "last tuesday",
	})

	assert.NoError(t, err)
	assert.Nil(t, rec.SampleTime)
}

func TestNormalizeUnparseableReportDateDefaultsToNow(t *testing.T) {
	n := newTestNormalizer()
	before := time.Now().UTC()

	rec, err := n.Normalize(ingest.Record{
		"pathogen":    "E. coli",
		"antibiotic":  "Ampicillin",
		"result":      "S",
		"report_date": "not a date",
	})

	assert.NoError(t, err)
	assert.False(t, rec.ReportTime.Before(before))
}

func TestNormalizeHashesPatientID(t *testing.T) {
	n := newTestNormalizer()

	rec, err := n.Normalize(ingest.Record{
		"pathogen":   "E. coli",
		"antibiotic": "Ampicillin",
		"result":     "R",
		"patient_id": "MRN-0012345",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, rec.PatientHash)
	assert.NotContains(t, rec.PatientHash, "MRN-0012345")
	assert.Len(t, rec.PatientHash, 64)
}

func TestParseDateFormats(t *testing.T) {
	expected := time.Date(2020, 3, 15, 0, 0, 0, 0, time.UTC)
	for _, value := range []string{
		"2020-03-15",
		"2020/03/15",
		"15-03-2020",
		"15/03/2020",
	} {
		parsed, err := ingest.ParseDate(value)
		assert.NoError(t, err, value)
		assert.Equal(t, expected, parsed, value)
	}

	withTime, err := ingest.ParseDate("15/03/2020 13:45:00")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2020, 3, 15, 13, 45, 0, 0, time.UTC), withTime)

	_, err = ingest.ParseDate("03-2020")
	assert.Error(t, err)
}
