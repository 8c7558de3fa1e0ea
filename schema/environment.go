package schema

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const EnvironmentalSampleCollection = "environmentalSample"

// EnvironmentalSample is an independent surveillance stream. It is merged
// into the risk map but never into resistance-percentage statistics.
type EnvironmentalSample struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SampleID            string             `bson:"sample_id" json:"sample_id"`
	SampleType          string             `bson:"sample_type,omitempty" json:"sample_type,omitempty"`
	CollectionTS        int64              `bson:"collection_ts" json:"collection_ts"`
	Location            GeoJSON            `bson:"location" json:"location"`
	LocationDescription string             `bson:"location_description,omitempty" json:"location_description,omitempty"`
	Region              string             `bson:"region,omitempty" json:"region,omitempty"`
	PathogenDetected    bool               `bson:"pathogen_detected" json:"pathogen_detected"`
	PathogenID          primitive.ObjectID `bson:"pathogen_id,omitempty" json:"pathogen_id,omitempty"`
	PathogenName        string             `bson:"pathogen_name,omitempty" json:"pathogen_name,omitempty"`
	PathogenLoad        float64            `bson:"pathogen_load,omitempty" json:"pathogen_load,omitempty"`
	CollectorID         string             `bson:"collector_id" json:"collector_id"`
	Notes               string             `bson:"notes,omitempty" json:"notes,omitempty"`
}
