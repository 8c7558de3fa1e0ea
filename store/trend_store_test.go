package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/openamr/surveillance-api/schema"
)

type TrendTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database

	pathogenID primitive.ObjectID
	facilityID primitive.ObjectID
}

func NewTrendTestSuite(connURI, dbName string) *TrendTestSuite {
	return &TrendTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *TrendTestSuite) SetupSuite() {
	if s.connURI == "" || s.testDBName == "" {
		s.T().Fatal("invalid test suite configuration")
	}

	opts := options.Client().ApplyURI(s.connURI)
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		s.T().Fatalf("create mongo client with error: %s", err)
	}

	if err = mongoClient.Connect(context.Background()); nil != err {
		s.T().Fatalf("connect mongo database with error: %s", err.Error())
	}

	s.mongoClient = mongoClient
	s.testDatabase = mongoClient.Database(s.testDBName)

	// make sure the test suite is run with a clean environment
	if err := s.CleanMongoDB(); err != nil {
		s.T().Fatal(err)
	}

	schema.NewMongoDBIndexer(s.connURI, s.testDBName).IndexAll()

	if err := s.LoadMongoDBFixtures(); err != nil {
		s.T().Fatal(err)
	}
}

// CleanMongoDB drop the whole test mongodb
func (s *TrendTestSuite) CleanMongoDB() error {
	return s.testDatabase.Drop(context.Background())
}

// LoadMongoDBFixtures inserts three days of observations for one
// (region, city, pathogen) group. Daily percentages are 10, 10 and 85,
// which breaches both the absolute floor and the baseline delta.
func (s *TrendTestSuite) LoadMongoDBFixtures() error {
	ctx := context.Background()

	s.pathogenID = primitive.NewObjectID()
	s.facilityID = primitive.NewObjectID()

	dayStart := func(daysAgo int) int64 {
		ts := time.Now().UTC().AddDate(0, 0, -daysAgo).Unix()
		return ts - ts%(24*60*60)
	}

	days := []struct {
		day       int64
		total     int
		resistant int
	}{
		{dayStart(3), 20, 2},
		{dayStart(2), 20, 2},
		{dayStart(1), 20, 17},
	}

	docs := make([]interface{}, 0)
	for _, d := range days {
		for i := 0; i < d.total; i++ {
			result := schema.ResultSusceptible
			if i < d.resistant {
				result = schema.ResultResistant
			}
			docs = append(docs, schema.Observation{
				ReportID:       primitive.NewObjectID().Hex(),
				FacilityID:     s.facilityID,
				ActorID:        "tester",
				PathogenID:     s.pathogenID,
				AntibioticID:   primitive.NewObjectID(),
				PathogenName:   "Acinetobacter baumannii",
				AntibioticName: "Meropenem",
				Result:         result,
				Region:         "South",
				City:           "Port City",
				ReportTS:       d.day + 3600,
			})
		}
	}

	_, err := s.testDatabase.Collection(schema.ObservationCollection).InsertMany(ctx, docs)
	return err
}

func (s *TrendTestSuite) TestTrendWindowGroupsByDay() {
	store := NewMongoStore(s.mongoClient, s.testDBName, nil)

	points, err := store.TrendWindow(time.Now())
	s.NoError(err)
	s.Len(points, 3)

	// sorted by day ascending
	s.True(points[0].Day < points[1].Day)
	s.True(points[1].Day < points[2].Day)

	s.Equal("South", points[0].Region)
	s.Equal("Port City", points[0].City)
	s.Equal(s.pathogenID, points[0].PathogenID)
	s.Equal(20, points[0].Total)
	s.Equal(2, points[0].Resistant)
	s.Equal(17, points[2].Resistant)
}

func (s *TrendTestSuite) TestDetectOutbreaks() {
	store := NewMongoStore(s.mongoClient, s.testDBName, nil)

	signals, err := store.DetectOutbreaks(time.Now())
	s.NoError(err)
	s.Len(signals, 1)

	signal := signals[0]
	s.Equal("Acinetobacter baumannii", signal.PathogenName)
	s.Equal("South", signal.Region)
	s.Equal("Port City", signal.City)
	s.Equal(85.0, signal.Percentage)
	s.Equal(10.0, signal.Baseline)
	s.Equal(5, signal.Severity)
	s.Equal(20, signal.TotalSamples)
	s.Equal(17, signal.ResistantSamples)
}

func TestTrendTestSuite(t *testing.T) {
	suite.Run(t, NewTrendTestSuite("mongodb://127.0.0.1:27017/?compressors=disabled", "test-db-trend"))
}
