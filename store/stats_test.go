package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/openamr/surveillance-api/resistance"
	"github.com/openamr/surveillance-api/schema"
)

type StatsTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database

	facilityWest primitive.ObjectID
	facilityEast primitive.ObjectID
	ecoliID      primitive.ObjectID
	klebsiellaID primitive.ObjectID
	ampicillinID primitive.ObjectID
	ciproID      primitive.ObjectID
}

func NewStatsTestSuite(connURI, dbName string) *StatsTestSuite {
	return &StatsTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *StatsTestSuite) SetupSuite() {
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
func (s *StatsTestSuite) CleanMongoDB() error {
	return s.testDatabase.Drop(context.Background())
}

// LoadMongoDBFixtures preloads two facilities and nine observations:
// West is 3R/1S on E. coli x Ampicillin plus one unknown result code,
// East is 1R/3S on Klebsiella x Ciprofloxacin.
func (s *StatsTestSuite) LoadMongoDBFixtures() error {
	ctx := context.Background()

	s.facilityWest = primitive.NewObjectID()
	s.facilityEast = primitive.NewObjectID()
	s.ecoliID = primitive.NewObjectID()
	s.klebsiellaID = primitive.NewObjectID()
	s.ampicillinID = primitive.NewObjectID()
	s.ciproID = primitive.NewObjectID()

	westLocation := schema.NewPoint(37.7749, -122.4194)
	eastLocation := schema.NewPoint(40.7128, -74.0060)

	if _, err := s.testDatabase.Collection(schema.FacilityCollection).InsertMany(ctx, []interface{}{
		schema.Facility{
			ID:           s.facilityWest,
			Name:         "West General Hospital",
			FacilityType: "hospital",
			City:         "San Francisco",
			State:        "West",
			Country:      "US",
			Location:     &westLocation,
		},
		schema.Facility{
			ID:           s.facilityEast,
			Name:         "East Clinic",
			FacilityType: "clinic",
			City:         "New York",
			State:        "East",
			Country:      "US",
			Location:     &eastLocation,
		},
	}); err != nil {
		return err
	}

	if _, err := s.testDatabase.Collection(schema.PathogenCollection).InsertMany(ctx, []interface{}{
		schema.Pathogen{ID: s.ecoliID, Name: "E. coli", PathogenType: "bacteria"},
		schema.Pathogen{ID: s.klebsiellaID, Name: "Klebsiella pneumoniae", PathogenType: "bacteria"},
	}); err != nil {
		return err
	}

	now := time.Now().UTC().Unix()
	docs := make([]interface{}, 0)

	add := func(facility primitive.ObjectID, region, city string, pathogen primitive.ObjectID, pathogenName string,
		antibiotic primitive.ObjectID, antibioticName, result string) {
		docs = append(docs, schema.Observation{
			ReportID:       primitive.NewObjectID().Hex(),
			FacilityID:     facility,
			ActorID:        "tester",
			PathogenID:     pathogen,
			AntibioticID:   antibiotic,
			PathogenName:   pathogenName,
			AntibioticName: antibioticName,
			Result:         result,
			Region:         region,
			City:           city,
			ReportTS:       now,
		})
	}

	for _, result := range []string{"R", "R", "R", "S"} {
		add(s.facilityWest, "West", "San Francisco", s.ecoliID, "E. coli", s.ampicillinID, "Ampicillin", result)
	}
	// unknown code, excluded from every percentage
	add(s.facilityWest, "West", "San Francisco", s.ecoliID, "E. coli", s.ampicillinID, "Ampicillin", "U")

	for _, result := range []string{"R", "S", "S", "S"} {
		add(s.facilityEast, "East", "New York", s.klebsiellaID, "Klebsiella pneumoniae", s.ciproID, "Ciprofloxacin", result)
	}

	_, err := s.testDatabase.Collection(schema.ObservationCollection).InsertMany(ctx, docs)
	return err
}

func (s *StatsTestSuite) TestAggregateByRegion() {
	store := NewMongoStore(s.mongoClient, s.testDBName, nil)

	stats, err := store.AggregateBy(DimensionRegion, StatFilter{})
	s.NoError(err)
	s.Len(stats, 2)

	// sorted by percentage descending
	s.Equal("West", stats[0].GroupKey)
	s.Equal(4, stats[0].Total)
	s.Equal(3, stats[0].Resistant)
	s.Equal(75.0, stats[0].Percentage)
	s.Equal(resistance.LevelVeryHigh, stats[0].RiskLevel)

	s.Equal("East", stats[1].GroupKey)
	s.Equal(4, stats[1].Total)
	s.Equal(1, stats[1].Resistant)
	s.Equal(25.0, stats[1].Percentage)
	s.Equal(resistance.LevelMedium, stats[1].RiskLevel)
}

func (s *StatsTestSuite) TestAggregateByPathogen() {
	store := NewMongoStore(s.mongoClient, s.testDBName, nil)

	stats, err := store.AggregateBy(DimensionPathogen, StatFilter{})
	s.NoError(err)
	s.Len(stats, 2)
	s.Equal("E. coli", stats[0].GroupKey)
	s.Equal(75.0, stats[0].Percentage)
	s.Equal("Klebsiella pneumoniae", stats[1].GroupKey)
	s.Equal(25.0, stats[1].Percentage)
}

func (s *StatsTestSuite) TestAggregateByUnknownDimension() {
	store := NewMongoStore(s.mongoClient, s.testDBName, nil)

	_, err := store.AggregateBy("patient", StatFilter{})
	s.Error(err)
}

func (s *StatsTestSuite) TestAggregateByWithPathogenFilter() {
	store := NewMongoStore(s.mongoClient, s.testDBName, nil)

	stats, err := store.AggregateBy(DimensionRegion, StatFilter{PathogenID: s.ecoliID})
	s.NoError(err)
	s.Len(stats, 1)
	s.Equal("West", stats[0].GroupKey)
}

func (s *StatsTestSuite) TestAntibioticBreakdown() {
	store := NewMongoStore(s.mongoClient, s.testDBName, nil)

	breakdown, err := store.AntibioticBreakdown()
	s.NoError(err)
	s.Len(breakdown, 2)

	byName := make(map[string]schema.AntibioticEffectiveness)
	for _, b := range breakdown {
		byName[b.Antibiotic] = b
	}

	ampicillin := byName["Ampicillin"]
	s.Equal(4, ampicillin.Total)
	s.Equal(75.0, ampicillin.ResistantPercent)
	s.Equal(25.0, ampicillin.SusceptiblePercent)
	s.Equal(0.0, ampicillin.IntermediatePercent)

	cipro := byName["Ciprofloxacin"]
	s.Equal(25.0, cipro.ResistantPercent)
	s.Equal(75.0, cipro.SusceptiblePercent)
}

func (s *StatsTestSuite) TestTreatmentOptions() {
	store := NewMongoStore(s.mongoClient, s.testDBName, nil)

	options, err := store.TreatmentOptions(s.ecoliID, "")
	s.NoError(err)
	s.Len(options, 1)
	s.Equal("Ampicillin", options[0].AntibioticName)
	s.Equal(75.0, options[0].Percentage)
	s.Equal("Low", options[0].Effectiveness)
}

func (s *StatsTestSuite) TestPathogenDistribution() {
	store := NewMongoStore(s.mongoClient, s.testDBName, nil)

	distribution, err := store.PathogenDistribution()
	s.NoError(err)
	s.Len(distribution, 2)
	// raw document counts, the unknown result code still counts here
	s.Equal("E. coli", distribution[0].Name)
	s.Equal(5, distribution[0].Count)
	s.Equal("Klebsiella pneumoniae", distribution[1].Name)
	s.Equal(4, distribution[1].Count)
}

func (s *StatsTestSuite) TestDashboardSummary() {
	store := NewMongoStore(s.mongoClient, s.testDBName, nil)

	summary, err := store.DashboardSummary()
	s.NoError(err)
	s.Equal(9, summary.TotalObservations)
	s.Equal(2, summary.TotalFacilities)
	s.Equal(2, summary.TotalPathogens)
	// 4 resistant out of 8 known results
	s.Equal(50.0, summary.ResistanceRate)
	s.NotEmpty(summary.TopResistant)
	s.Equal("E. coli", summary.TopResistant[0].Name)
}

func (s *StatsTestSuite) TestMonthlyResistanceTrendZeroFills() {
	store := NewMongoStore(s.mongoClient, s.testDBName, nil)

	points, err := store.MonthlyResistanceTrend(StatFilter{})
	s.NoError(err)
	s.Len(points, 12)

	current := points[len(points)-1]
	s.Equal(time.Now().UTC().Format("2006-01"), current.Month)
	s.Equal(8, current.Total)
	s.Equal(4, current.Resistant)
	s.Equal(50.0, current.Percentage)

	for _, p := range points[:len(points)-1] {
		s.Equal(0, p.Total)
		s.Equal(0.0, p.Percentage)
	}
}

func (s *StatsTestSuite) TestResistanceMap() {
	store := NewMongoStore(s.mongoClient, s.testDBName, nil)

	_, err := store.SaveEnvironmentalSample(schema.EnvironmentalSample{
		SampleType:          "water",
		CollectionTS:        time.Now().UTC().Unix(),
		Location:            schema.NewPoint(37.8044, -122.2712),
		LocationDescription: "Lake Merritt outflow",
		Region:              "West",
		PathogenDetected:    true,
		PathogenName:        "E. coli",
		PathogenLoad:        1500,
		CollectorID:         "tester",
	})
	s.NoError(err)

	points, err := store.ResistanceMap(StatFilter{})
	s.NoError(err)
	s.Len(points, 3)

	byName := make(map[string]schema.MapPoint)
	for _, p := range points {
		byName[p.Name] = p
	}

	west := byName["West General Hospital"]
	s.NotNil(west.ResistancePercentage)
	s.Equal(75.0, *west.ResistancePercentage)
	s.Equal(resistance.LevelVeryHigh, west.RiskLevel)
	s.Equal(resistance.ColorRed, west.Color)
	s.Len(west.Pathogens, 1)

	var env schema.MapPoint
	for _, p := range points {
		if p.IsEnvironmental {
			env = p
		}
	}
	s.True(env.IsEnvironmental)
	s.Nil(env.ResistancePercentage)
	s.Equal(resistance.LevelVeryHigh, env.RiskLevel)
	s.Equal(1500.0, env.PathogenLoad)
}

func TestStatsTestSuite(t *testing.T) {
	suite.Run(t, NewStatsTestSuite("mongodb://127.0.0.1:27017/?compressors=disabled", "test-db-stats"))
}
