package schema

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBIndexer struct {
	ctx      context.Context
	dbName   string
	Client   *mongo.Client
	Database *mongo.Database
}

func NewMongoDBIndexer(connectionString, dbName string) *MongoDBIndexer {
	ctx := context.Background()
	opts := options.Client().ApplyURI(connectionString)
	client, err := mongo.NewClient(opts)
	if err != nil {
		panic(err)
	}
	if err := client.Connect(ctx); err != nil {
		panic(err)
	}

	return &MongoDBIndexer{
		ctx:      ctx,
		dbName:   dbName,
		Client:   client,
		Database: client.Database(dbName),
	}
}

func (m *MongoDBIndexer) createIndex(collection string, index mongo.IndexModel) error {
	c := m.Database.Collection(collection)
	_, err := c.Indexes().CreateOne(m.ctx, index)
	return err
}

func panicIfError(err error) {
	if err != nil {
		panic(err)
	}
}

func (m *MongoDBIndexer) IndexAll() {
	panicIfError(m.IndexCatalogCollections())
	panicIfError(m.IndexFacilityCollection())
	panicIfError(m.IndexObservationCollection())
	panicIfError(m.IndexEnvironmentalSampleCollection())
	panicIfError(m.IndexAlertCollection())
}

// IndexCatalogCollections sets the unique name indexes the catalog resolver
// relies on for race-safe find-or-create.
func (m *MongoDBIndexer) IndexCatalogCollections() error {
	if err := m.createIndex(PathogenCollection, mongo.IndexModel{
		Keys: bson.M{
			"name": 1,
		},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return err
	}

	return m.createIndex(AntibioticCollection, mongo.IndexModel{
		Keys: bson.M{
			"name": 1,
		},
		Options: options.Index().SetUnique(true),
	})
}

func (m *MongoDBIndexer) IndexFacilityCollection() error {
	return m.createIndex(FacilityCollection, mongo.IndexModel{
		Keys: bson.M{
			"location": "2dsphere",
		},
	})
}

func (m *MongoDBIndexer) IndexObservationCollection() error {
	if err := m.createIndex(ObservationCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "facility_id", Value: 1},
			{Key: "report_ts", Value: 1},
		},
	}); err != nil {
		return err
	}

	if err := m.createIndex(ObservationCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "pathogen_id", Value: 1},
			{Key: "report_ts", Value: 1},
		},
	}); err != nil {
		return err
	}

	return m.createIndex(ObservationCollection, mongo.IndexModel{
		Keys: bson.M{
			"report_id": 1,
		},
		Options: options.Index().SetUnique(true),
	})
}

func (m *MongoDBIndexer) IndexEnvironmentalSampleCollection() error {
	if err := m.createIndex(EnvironmentalSampleCollection, mongo.IndexModel{
		Keys: bson.M{
			"sample_id": 1,
		},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return err
	}

	return m.createIndex(EnvironmentalSampleCollection, mongo.IndexModel{
		Keys: bson.M{
			"location": "2dsphere",
		},
	})
}

func (m *MongoDBIndexer) IndexAlertCollection() error {
	return m.createIndex(AlertCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "user_id", Value: 1},
			{Key: "created_ts", Value: -1},
		},
	})
}
