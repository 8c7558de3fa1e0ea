package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/openamr/surveillance-api/ingest"
	"github.com/openamr/surveillance-api/resistance"
	"github.com/openamr/surveillance-api/schema"
)

const ingestLogPrefix = "ingest"

// RecordError reports why one record of a batch was rejected. The index
// is the record's position in the uploaded batch.
type RecordError struct {
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}

// IngestResult summarizes one batch ingestion: how many records were
// committed, how many alert copies were fanned out, and per-record
// rejections.
type IngestResult struct {
	Processed int           `json:"processed"`
	Rejected  int           `json:"rejected"`
	Alerts    int           `json:"alerts_created"`
	Errors    []RecordError `json:"errors,omitempty"`
}

// IngestLabBatch validates, normalizes and commits a batch of lab
// records. The batch has two failure tiers: an invalid facility or actor
// rejects the whole batch, while an invalid record is skipped with a
// per-record error and the rest of the batch proceeds. All surviving
// observations and their fanned-out alerts commit in one transaction.
func (s *SurveillanceStore) IngestLabBatch(facilityID primitive.ObjectID, actorID string, records []ingest.Record) (*IngestResult, error) {
	facility, err := s.mongo.GetFacility(facilityID)
	if err != nil {
		if err == ErrFacilityNotFound {
			return nil, fmt.Errorf("%w: facility %s", ErrInvalidReference, facilityID.Hex())
		}
		return nil, err
	}

	actor, err := s.GetUser(actorID)
	if err != nil {
		if err == ErrUserNotFound {
			return nil, fmt.Errorf("%w: user %s", ErrInvalidReference, actorID)
		}
		return nil, err
	}

	result := &IngestResult{Errors: make([]RecordError, 0)}
	observations := make([]schema.Observation, 0, len(records))
	payloads := make([]schema.AlertPayload, 0)

	for i, raw := range records {
		rec, err := s.normalizer.Normalize(raw)
		if err != nil {
			result.Errors = append(result.Errors, RecordError{Index: i, Reason: err.Error()})
			continue
		}

		pathogen, err := s.mongo.ResolvePathogen(rec.PathogenName, rec.ScientificName, rec.PathogenType)
		if err != nil {
			result.Errors = append(result.Errors, RecordError{Index: i, Reason: err.Error()})
			continue
		}

		antibiotic, err := s.mongo.ResolveAntibiotic(rec.AntibioticName, rec.DrugClass)
		if err != nil {
			result.Errors = append(result.Errors, RecordError{Index: i, Reason: err.Error()})
			continue
		}

		o := schema.Observation{
			ReportID:     uuid.New().String(),
			FacilityID:   facility.ID,
			ActorID:      actor.ID.String(),
			PathogenID:   pathogen.ID,
			AntibioticID: antibiotic.ID,

			PathogenName:   pathogen.Name,
			AntibioticName: antibiotic.Name,

			Result:       rec.Result,
			MICValue:     rec.MICValue,
			MutationData: rec.MutationData,

			SampleType:        rec.SampleType,
			PatientAge:        rec.PatientAge,
			PatientGender:     rec.PatientGender,
			PatientIdentifier: rec.PatientHash,
			ClinicalDiagnosis: rec.ClinicalDiagnosis,

			Region:   facility.State,
			City:     facility.City,
			Location: facility.Location,

			ReportTS: rec.ReportTime.Unix(),
		}
		if rec.SampleTime != nil {
			o.SampleTS = rec.SampleTime.Unix()
		}

		observations = append(observations, o)

		if rec.Critical && rec.Result == schema.ResultResistant {
			payloads = append(payloads, schema.AlertPayload{
				Title: fmt.Sprintf("Critical Resistance: %s", pathogen.Name),
				Message: fmt.Sprintf("Critical resistance of %s to %s detected at %s",
					pathogen.Name, antibiotic.Name, facility.Name),
				AlertType:    schema.AlertTypeCriticalResistance,
				Severity:     4,
				Location:     facility.Location,
				Region:       facility.State,
				PathogenID:   pathogen.ID,
				AntibioticID: antibiotic.ID,
			})
		}
	}

	alerts, err := s.fanOutAlerts(payloads, schema.RoleDoctor, schema.RolePublicHealthOfficial)
	if err != nil {
		return nil, err
	}

	if err := s.mongo.CommitLabBatch(observations, alerts); err != nil {
		return nil, err
	}

	result.Processed = len(observations)
	result.Rejected = len(result.Errors)
	result.Alerts = len(alerts)

	log.WithFields(log.Fields{
		"prefix":    ingestLogPrefix,
		"facility":  facility.Name,
		"processed": result.Processed,
		"rejected":  result.Rejected,
		"alerts":    result.Alerts,
	}).Info("ingested lab batch")

	return result, nil
}

// fanOutAlerts materializes one alert copy per payload per recipient
// holding one of the given roles. The copies are returned for the caller
// to commit, not written here.
func (s *SurveillanceStore) fanOutAlerts(payloads []schema.AlertPayload, roles ...schema.UserRole) ([]schema.Alert, error) {
	if len(payloads) == 0 {
		return nil, nil
	}

	recipients, err := s.ListActiveUsersByRole(roles...)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC().Unix()
	alerts := make([]schema.Alert, 0, len(payloads)*len(recipients))
	for _, payload := range payloads {
		for _, recipient := range recipients {
			alerts = append(alerts, schema.NewAlert(payload, recipient.ID.String(), now))
		}
	}
	return alerts, nil
}

// ProcessEnvironmentalSample resolves the detected pathogen, stores the
// sample and alerts public health officials on a high pathogen load.
func (s *SurveillanceStore) ProcessEnvironmentalSample(actorID string, sample schema.EnvironmentalSample) (*schema.EnvironmentalSample, error) {
	actor, err := s.GetUser(actorID)
	if err != nil {
		if err == ErrUserNotFound {
			return nil, fmt.Errorf("%w: user %s", ErrInvalidReference, actorID)
		}
		return nil, err
	}
	sample.CollectorID = actor.ID.String()

	if sample.PathogenDetected && sample.PathogenName != "" {
		pathogen, err := s.mongo.ResolvePathogen(sample.PathogenName, "", "")
		if err != nil {
			return nil, err
		}
		sample.PathogenID = pathogen.ID
		sample.PathogenName = pathogen.Name
	}

	saved, err := s.mongo.SaveEnvironmentalSample(sample)
	if err != nil {
		return nil, err
	}

	if saved.PathogenDetected && saved.PathogenLoad > 500 {
		location := saved.Location
		payload := schema.AlertPayload{
			Title: fmt.Sprintf("Environmental Detection: %s", saved.PathogenName),
			Message: fmt.Sprintf("%s detected in %s sample (load %.0f) at %s",
				saved.PathogenName, saved.SampleType, saved.PathogenLoad, saved.LocationDescription),
			AlertType:  schema.AlertTypeEnvironmentalDetection,
			Severity:   resistance.LoadSeverity(saved.PathogenLoad),
			Location:   &location,
			Region:     saved.Region,
			PathogenID: saved.PathogenID,
		}

		if _, err := s.BroadcastAlert(payload, []schema.UserRole{schema.RolePublicHealthOfficial}); err != nil {
			log.WithFields(log.Fields{
				"prefix":    ingestLogPrefix,
				"sample_id": saved.SampleID,
				"error":     err,
			}).Error("broadcast environmental alert")
		}
	}

	return saved, nil
}

// BroadcastAlert fans one payload out to every active user holding one
// of the given roles.
func (s *SurveillanceStore) BroadcastAlert(payload schema.AlertPayload, roles []schema.UserRole) (int, error) {
	recipients, err := s.ListActiveUsersByRole(roles...)
	if err != nil {
		return 0, err
	}

	userIDs := make([]string, 0, len(recipients))
	for _, recipient := range recipients {
		userIDs = append(userIDs, recipient.ID.String())
	}

	return s.mongo.CreateAlerts(payload, userIDs)
}

// BroadcastOutbreakAlerts turns detection signals into alerts for
// doctors and public health officials.
func (s *SurveillanceStore) BroadcastOutbreakAlerts(signals []schema.OutbreakSignal) (int, error) {
	total := 0
	for _, signal := range signals {
		area := signal.Region
		if signal.City != "" {
			area = fmt.Sprintf("%s, %s", signal.City, signal.Region)
		}

		payload := schema.AlertPayload{
			Title: fmt.Sprintf("Outbreak Signal: %s in %s", signal.PathogenName, area),
			Message: fmt.Sprintf("Resistance of %s reached %.1f%% in %s (baseline %.1f%%)",
				signal.PathogenName, signal.Percentage, area, signal.Baseline),
			AlertType:  schema.AlertTypeOutbreak,
			Severity:   signal.Severity,
			Location:   signal.Location,
			Region:     signal.Region,
			PathogenID: signal.PathogenID,
		}

		created, err := s.BroadcastAlert(payload, []schema.UserRole{
			schema.RoleDoctor, schema.RolePublicHealthOfficial,
		})
		if err != nil {
			return total, err
		}
		total += created
	}
	return total, nil
}
