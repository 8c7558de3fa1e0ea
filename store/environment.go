package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/openamr/surveillance-api/external/geoinfo"
	"github.com/openamr/surveillance-api/schema"
)

// EnvironmentOperator stores environmental surveillance samples. The
// stream is independent from lab observations and only meets them on the
// risk map.
type EnvironmentOperator interface {
	SaveEnvironmentalSample(sample schema.EnvironmentalSample) (*schema.EnvironmentalSample, error)
	ListEnvironmentalSamples() ([]schema.EnvironmentalSample, error)
	ListDetectedSamples() ([]schema.EnvironmentalSample, error)
}

func (m *mongoDB) SaveEnvironmentalSample(sample schema.EnvironmentalSample) (*schema.EnvironmentalSample, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if sample.SampleID == "" {
		sample.SampleID = fmt.Sprintf("ENV-%s", uuid.New().String()[:8])
	}

	if sample.Region == "" && m.geoClient != nil && len(sample.Location.Coordinates) == 2 {
		// reverse geocoding is best effort, a failure never blocks the write
		results, err := m.geoClient.Get(schema.Location{
			Latitude:  sample.Location.Latitude(),
			Longitude: sample.Location.Longitude(),
		})
		if err != nil {
			log.WithFields(log.Fields{
				"prefix":    mongoLogPrefix,
				"sample_id": sample.SampleID,
				"error":     err,
			}).Warn("reverse geocode environmental sample")
		} else {
			sample.Region, _ = geoinfo.RegionCity(results)
		}
	}

	result, err := m.client.Database(m.database).Collection(schema.EnvironmentalSampleCollection).
		InsertOne(ctx, &sample)
	if err != nil {
		return nil, err
	}

	sample.ID = result.InsertedID.(primitive.ObjectID)

	log.WithFields(log.Fields{
		"prefix":    mongoLogPrefix,
		"sample_id": sample.SampleID,
		"detected":  sample.PathogenDetected,
	}).Info("saved environmental sample")

	return &sample, nil
}

func (m *mongoDB) ListEnvironmentalSamples() ([]schema.EnvironmentalSample, error) {
	return m.findEnvironmentalSamples(bson.M{})
}

// ListDetectedSamples returns only samples where a pathogen was detected,
// the subset surfaced on the risk map.
func (m *mongoDB) ListDetectedSamples() ([]schema.EnvironmentalSample, error) {
	return m.findEnvironmentalSamples(bson.M{"pathogen_detected": true})
}

func (m *mongoDB) findEnvironmentalSamples(filter bson.M) ([]schema.EnvironmentalSample, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.M{"collection_ts": -1})
	cur, err := m.client.Database(m.database).Collection(schema.EnvironmentalSampleCollection).
		Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	samples := make([]schema.EnvironmentalSample, 0)
	if err := cur.All(ctx, &samples); err != nil {
		return nil, err
	}
	return samples, nil
}
