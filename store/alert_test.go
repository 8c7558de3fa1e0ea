package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/openamr/surveillance-api/schema"
)

type AlertTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
}

func NewAlertTestSuite(connURI, dbName string) *AlertTestSuite {
	return &AlertTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *AlertTestSuite) SetupSuite() {
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
}

// CleanMongoDB drop the whole test mongodb
func (s *AlertTestSuite) CleanMongoDB() error {
	return s.testDatabase.Drop(context.Background())
}

func (s *AlertTestSuite) payload() schema.AlertPayload {
	return schema.AlertPayload{
		Title:     "Critical Resistance: MRSA",
		Message:   "Critical resistance of MRSA to Vancomycin detected at West General Hospital",
		AlertType: schema.AlertTypeCriticalResistance,
		Severity:  4,
		Region:    "West",
	}
}

func (s *AlertTestSuite) TestCreateAlertsFansOutPerRecipient() {
	store := NewMongoStore(s.mongoClient, s.testDBName, nil)

	created, err := store.CreateAlerts(s.payload(), []string{"doctor-1", "doctor-2", "official-1"})
	s.NoError(err)
	s.Equal(3, created)

	alerts, err := store.ListAlerts("doctor-1", AlertFilter{})
	s.NoError(err)
	s.Len(alerts, 1)
	s.Equal("doctor-1", alerts[0].UserID)
	s.Equal(schema.AlertTypeCriticalResistance, alerts[0].AlertType)
	s.Equal(4, alerts[0].Severity)
	s.False(alerts[0].Read)
	s.False(alerts[0].ActionTaken)
}

func (s *AlertTestSuite) TestCreateAlertsNoRecipients() {
	store := NewMongoStore(s.mongoClient, s.testDBName, nil)

	created, err := store.CreateAlerts(s.payload(), nil)
	s.NoError(err)
	s.Equal(0, created)
}

func (s *AlertTestSuite) TestAcknowledgeResolveDismiss() {
	store := NewMongoStore(s.mongoClient, s.testDBName, nil)

	_, err := store.CreateAlerts(s.payload(), []string{"doctor-3"})
	s.NoError(err)

	alerts, err := store.ListAlerts("doctor-3", AlertFilter{})
	s.NoError(err)
	s.Len(alerts, 1)
	alertID := alerts[0].ID

	// another user must not be able to touch the copy
	s.Equal(ErrAlertNotFound, store.AcknowledgeAlert("doctor-4", alertID))
	s.Equal(ErrAlertNotFound, store.DismissAlert("doctor-4", alertID))

	s.NoError(store.AcknowledgeAlert("doctor-3", alertID))
	alerts, err = store.ListAlerts("doctor-3", AlertFilter{})
	s.NoError(err)
	s.True(alerts[0].Read)
	s.False(alerts[0].ActionTaken)

	s.NoError(store.ResolveAlert("doctor-3", alertID))
	alerts, err = store.ListAlerts("doctor-3", AlertFilter{})
	s.NoError(err)
	s.True(alerts[0].ActionTaken)

	s.NoError(store.DismissAlert("doctor-3", alertID))
	alerts, err = store.ListAlerts("doctor-3", AlertFilter{})
	s.NoError(err)
	s.Empty(alerts)
}

func (s *AlertTestSuite) TestUnreadCountAndFilter() {
	store := NewMongoStore(s.mongoClient, s.testDBName, nil)

	_, err := store.CreateAlerts(s.payload(), []string{"official-2"})
	s.NoError(err)

	outbreak := s.payload()
	outbreak.AlertType = schema.AlertTypeOutbreak
	outbreak.Severity = 4
	_, err = store.CreateAlerts(outbreak, []string{"official-2"})
	s.NoError(err)

	count, err := store.CountUnreadAlerts("official-2")
	s.NoError(err)
	s.Equal(int64(2), count)

	alerts, err := store.ListAlerts("official-2", AlertFilter{AlertType: schema.AlertTypeOutbreak})
	s.NoError(err)
	s.Len(alerts, 1)
	s.Equal(schema.AlertTypeOutbreak, alerts[0].AlertType)

	alerts, err = store.ListAlerts("official-2", AlertFilter{})
	s.NoError(err)
	s.Len(alerts, 2)

	s.NoError(store.AcknowledgeAlert("official-2", alerts[0].ID))

	count, err = store.CountUnreadAlerts("official-2")
	s.NoError(err)
	s.Equal(int64(1), count)

	unread, err := store.ListAlerts("official-2", AlertFilter{UnreadOnly: true})
	s.NoError(err)
	s.Len(unread, 1)
}

func TestAlertTestSuite(t *testing.T) {
	suite.Run(t, NewAlertTestSuite("mongodb://127.0.0.1:27017/?compressors=disabled", "test-db-alert"))
}
