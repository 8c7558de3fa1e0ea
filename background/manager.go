package background

import (
	"errors"
	"net/http"
	"time"

	"github.com/RichardKnop/machinery/v1"
	"github.com/jinzhu/gorm"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/openamr/surveillance-api/external/onesignal"
	"github.com/openamr/surveillance-api/ingest"
	"github.com/openamr/surveillance-api/store"
)

// BackgroundManager is a struct for the surveillance background manager
type BackgroundManager struct {
	store store.SurveillanceCore

	mongo store.MongoStore

	onesignal *onesignal.OneSignalClient

	taskServer *machinery.Server

	worker *machinery.Worker
}

func New(ormDB *gorm.DB, mongoClient *mongo.Client, taskServer *machinery.Server) *BackgroundManager {
	mongoStore := store.NewMongoStore(
		mongoClient,
		viper.GetString("mongo.database"),
		nil,
	)

	normalizer := ingest.NewNormalizer(
		ingest.NewPatientHasher(viper.GetString("ingest.patient_salt")),
	)

	o := onesignal.NewClient(&http.Client{
		Timeout: 15 * time.Second,
	})

	return &BackgroundManager{
		store:      store.NewSurveillanceStore(store.NewUserRegistry(ormDB), mongoStore, normalizer),
		mongo:      mongoStore,
		onesignal:  o,
		taskServer: taskServer,
	}
}

func (m *BackgroundManager) RegisterTask(name string, taskFunc interface{}) error {
	return m.taskServer.RegisterTask(name, taskFunc)
}

// Run spawn workers to execute background jobs
func (m *BackgroundManager) Run() error {
	if m.worker != nil {
		return errors.New("background worker has started")
	}
	m.worker = m.taskServer.NewWorker("openamr-worker", 5)
	return m.worker.Launch()
}
