package schema

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const FacilityCollection = "facility"

// Facility is a hospital, lab or clinic submitting lab reports.
type Facility struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	FacilityType string             `bson:"facility_type,omitempty" json:"facility_type,omitempty"`
	Address      string             `bson:"address,omitempty" json:"address,omitempty"`
	City         string             `bson:"city,omitempty" json:"city,omitempty"`
	State        string             `bson:"state,omitempty" json:"state,omitempty"`
	Country      string             `bson:"country,omitempty" json:"country,omitempty"`
	Location     *GeoJSON           `bson:"location,omitempty" json:"location,omitempty"`
	ContactEmail string             `bson:"contact_email,omitempty" json:"contact_email,omitempty"`
	ContactPhone string             `bson:"contact_phone,omitempty" json:"contact_phone,omitempty"`
	CreatedAt    int64              `bson:"created_at" json:"created_at"`
}
