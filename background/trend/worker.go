package trend

import (
	"net/http"
	"time"

	"github.com/uber-go/tally"
	"go.uber.org/cadence/.gen/go/cadence/workflowserviceclient"
	"go.uber.org/cadence/activity"
	"go.uber.org/cadence/worker"
	"go.uber.org/cadence/workflow"
	"go.uber.org/zap"

	"github.com/openamr/surveillance-api/background"
	"github.com/openamr/surveillance-api/external/onesignal"
	"github.com/openamr/surveillance-api/store"
)

const TaskListName = "amr-trend-tasks"

// OutbreakScanWorker runs the periodic outbreak detection scan over the
// observation ledger and fans alerts out for every breaching group.
type OutbreakScanWorker struct {
	background.Background
	domain string
	mongo  store.MongoStore
	core   store.SurveillanceCore
}

func NewOutbreakScanWorker(domain string, mongo store.MongoStore, core store.SurveillanceCore) *OutbreakScanWorker {
	o := onesignal.NewClient(&http.Client{
		Timeout: 15 * time.Second,
	})

	b := background.Background{Onesignal: o}
	return &OutbreakScanWorker{
		Background: b,
		domain:     domain,
		mongo:      mongo,
		core:       core,
	}
}

func (w *OutbreakScanWorker) Register() {
	workflow.RegisterWithOptions(w.OutbreakScanWorkflow, workflow.RegisterOptions{Name: "OutbreakScanWorkflow"})

	activity.RegisterWithOptions(w.DetectOutbreaksActivity, activity.RegisterOptions{Name: "DetectOutbreaksActivity"})
	activity.RegisterWithOptions(w.BroadcastSignalsActivity, activity.RegisterOptions{Name: "BroadcastSignalsActivity"})
	activity.RegisterWithOptions(w.NotifyOutbreakActivity, activity.RegisterOptions{Name: "NotifyOutbreakActivity"})
}

func (w *OutbreakScanWorker) Start(service workflowserviceclient.Interface, logger *zap.Logger) {
	// TaskListName identifies set of client workflows, activities, and workers.
	// It could be your group or client or application name.
	workerOptions := worker.Options{
		Logger:       logger,
		MetricsScope: tally.NewTestScope(TaskListName, map[string]string{}),
	}

	worker := worker.New(
		service,
		w.domain,
		TaskListName,
		workerOptions)

	if err := worker.Start(); err != nil {
		panic("Failed to start worker")
	}

	logger.Info("Started Worker.", zap.String("worker", TaskListName))

	select {}
}
