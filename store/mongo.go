package store

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/openamr/surveillance-api/external/geoinfo"
)

const (
	mongoLogPrefix = "mongo"
	defaultTimeout = 5 * time.Second

	DuplicateKeyCode = 11000
)

// MongoStore - interface for mongodb operations
type MongoStore interface {
	Catalog
	FacilityOperator
	ObservationLedger
	EnvironmentOperator
	AlertOperator
	StatsOperator
	TrendOperator
	Closer
	Pinger
}

// Closer - close db connection
type Closer interface {
	Close()
}

// Pinger - ping database
type Pinger interface {
	Ping() error
}

type mongoDB struct {
	client    *mongo.Client
	database  string
	geoClient geoinfo.GeoInfo
}

// Ping - ping mongo db
func (m *mongoDB) Ping() error {
	return m.client.Ping(context.Background(), nil)
}

// Close - close mongo db connections
func (m *mongoDB) Close() {
	log.WithField("prefix", mongoLogPrefix).Info("closing mongo db connections")
	_ = m.client.Disconnect(context.Background())
}

// NewMongoStore - return mongo db operations
func NewMongoStore(client *mongo.Client, database string, geoClient geoinfo.GeoInfo) MongoStore {
	return &mongoDB{
		client:    client,
		database:  database,
		geoClient: geoClient,
	}
}

// isDuplicateKeyError unwraps mongo write exceptions looking for the
// unique-index violation the catalog resolver retries on.
func isDuplicateKeyError(err error) bool {
	if we, ok := err.(mongo.WriteException); ok {
		for _, e := range we.WriteErrors {
			if e.Code == DuplicateKeyCode {
				return true
			}
		}
	}
	return false
}
