package schema

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	PathogenCollection   = "pathogen"
	AntibioticCollection = "antibiotic"
)

// Pathogen is a catalog entity deduplicated by name. Created on first
// sight during ingestion and never deleted.
type Pathogen struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name           string             `bson:"name" json:"name"`
	ScientificName string             `bson:"scientific_name,omitempty" json:"scientific_name,omitempty"`
	PathogenType   string             `bson:"pathogen_type,omitempty" json:"pathogen_type,omitempty"`
	Description    string             `bson:"description,omitempty" json:"description,omitempty"`
}

// Antibiotic is a catalog entity deduplicated by name.
type Antibiotic struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	DrugClass   string             `bson:"drug_class,omitempty" json:"drug_class,omitempty"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
}
