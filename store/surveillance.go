package store

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/openamr/surveillance-api/ingest"
	"github.com/openamr/surveillance-api/schema"
)

// SurveillanceCore is the main datastore of the surveillance system.
// Accounts live in Postgres, surveillance documents in MongoDB; the core
// orchestrates flows that touch both.
type SurveillanceCore interface {
	Ping() error

	// User
	CreateUser(username, email string, role schema.UserRole, fullName, phoneNumber string) (*schema.User, error)
	GetUser(id string) (*schema.User, error)
	ListActiveUsersByRole(roles ...schema.UserRole) ([]schema.User, error)
	UpdateLastLogin(id string) error
	DeactivateUser(id string) error

	// Ingestion
	IngestLabBatch(facilityID primitive.ObjectID, actorID string, records []ingest.Record) (*IngestResult, error)
	ProcessEnvironmentalSample(actorID string, sample schema.EnvironmentalSample) (*schema.EnvironmentalSample, error)

	// Alerting
	BroadcastAlert(payload schema.AlertPayload, roles []schema.UserRole) (int, error)
	BroadcastOutbreakAlerts(signals []schema.OutbreakSignal) (int, error)
}

// UserRegistry is the account surface of the core. Ingestion and alert
// fan-out resolve actors and recipients through it.
type UserRegistry interface {
	Ping() error
	CreateUser(username, email string, role schema.UserRole, fullName, phoneNumber string) (*schema.User, error)
	GetUser(id string) (*schema.User, error)
	ListActiveUsersByRole(roles ...schema.UserRole) ([]schema.User, error)
	UpdateLastLogin(id string) error
	DeactivateUser(id string) error
}

// SurveillanceStore is an implementation of SurveillanceCore
type SurveillanceStore struct {
	UserRegistry

	mongo      MongoStore
	normalizer *ingest.Normalizer
}

func NewSurveillanceStore(users UserRegistry, mongo MongoStore, normalizer *ingest.Normalizer) *SurveillanceStore {
	return &SurveillanceStore{
		UserRegistry: users,
		mongo:        mongo,
		normalizer:   normalizer,
	}
}

// Ping is to check the storage health status
func (s *SurveillanceStore) Ping() error {
	if err := s.UserRegistry.Ping(); err != nil {
		return err
	}
	return s.mongo.Ping()
}
