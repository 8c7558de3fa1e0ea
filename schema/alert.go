package schema

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const AlertCollection = "alert"

const (
	AlertTypeCriticalResistance     = "critical_resistance"
	AlertTypeEnvironmentalDetection = "environmental_detection"
	AlertTypeOutbreak               = "outbreak"
	AlertTypeManual                 = "manual"
)

// AlertPayload is the value built by the surveillance core. It carries no
// recipient: the dispatcher materializes one persisted Alert per resolved
// recipient in an explicit fan-out step.
type AlertPayload struct {
	Title        string             `json:"title"`
	Message      string             `json:"message"`
	AlertType    string             `json:"alert_type"`
	Severity     int                `json:"severity"`
	Location     *GeoJSON           `json:"location,omitempty"`
	Region       string             `json:"region,omitempty"`
	PathogenID   primitive.ObjectID `json:"pathogen_id,omitempty"`
	AntibioticID primitive.ObjectID `json:"antibiotic_id,omitempty"`
}

// Alert is one delivered copy of a payload, owned by a single user.
type Alert struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID       string             `bson:"user_id" json:"user_id"`
	Title        string             `bson:"title" json:"title"`
	Message      string             `bson:"message" json:"message"`
	AlertType    string             `bson:"alert_type" json:"alert_type"`
	Severity     int                `bson:"severity" json:"severity"`
	Location     *GeoJSON           `bson:"location,omitempty" json:"location,omitempty"`
	Region       string             `bson:"region,omitempty" json:"region,omitempty"`
	PathogenID   primitive.ObjectID `bson:"pathogen_id,omitempty" json:"pathogen_id,omitempty"`
	AntibioticID primitive.ObjectID `bson:"antibiotic_id,omitempty" json:"antibiotic_id,omitempty"`
	Read         bool               `bson:"read" json:"read"`
	ActionTaken  bool               `bson:"action_taken" json:"action_taken"`
	CreatedTS    int64              `bson:"created_ts" json:"created_ts"`
}

// NewAlert materializes a payload for one recipient.
func NewAlert(p AlertPayload, userID string, createdTS int64) Alert {
	return Alert{
		UserID:       userID,
		Title:        p.Title,
		Message:      p.Message,
		AlertType:    p.AlertType,
		Severity:     p.Severity,
		Location:     p.Location,
		Region:       p.Region,
		PathogenID:   p.PathogenID,
		AntibioticID: p.AntibioticID,
		CreatedTS:    createdTS,
	}
}
