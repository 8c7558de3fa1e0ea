package trend

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/cadence/testsuite"
	"go.uber.org/cadence/worker"
	"go.uber.org/zap"

	"github.com/openamr/surveillance-api/external/cadence"
	"github.com/openamr/surveillance-api/schema"
)

var breachingSignals = []schema.OutbreakSignal{
	{
		PathogenName:     "Acinetobacter baumannii",
		Region:           "South",
		City:             "Port City",
		Percentage:       85,
		Baseline:         10,
		Severity:         5,
		TotalSamples:     20,
		ResistantSamples: 17,
		Date:             "2020-05-27",
	},
}

type TrendWorkflowTestSuite struct {
	suite.Suite
	testsuite.WorkflowTestSuite
	env    *testsuite.TestWorkflowEnvironment
	worker *OutbreakScanWorker
}

func (ts *TrendWorkflowTestSuite) SetupSuite() {
	ts.SetLogger(zap.NewNop())
	ts.worker = testWorker
}

func (ts *TrendWorkflowTestSuite) SetupTest() {
	ts.env = ts.NewTestWorkflowEnvironment()
	ts.env.SetWorkerOptions(worker.Options{
		DataConverter: cadence.NewMsgPackDataConverter(),
	})
}

// TestOutbreakScanWorkflowQuietRun tests a scan that finds no signal:
// neither broadcast nor notification runs.
func (ts *TrendWorkflowTestSuite) TestOutbreakScanWorkflowQuietRun() {
	ts.env.OnActivity(ts.worker.DetectOutbreaksActivity, mock.Anything).Return(
		func(ctx context.Context) ([]schema.OutbreakSignal, error) {
			return []schema.OutbreakSignal{}, nil
		})

	ts.env.ExecuteWorkflow(ts.worker.OutbreakScanWorkflow)

	ts.env.AssertNumberOfCalls(ts.T(), "DetectOutbreaksActivity", 1)
	ts.env.AssertNotCalled(ts.T(), "BroadcastSignalsActivity", mock.Anything, mock.Anything)
	ts.True(ts.env.IsWorkflowCompleted())
	ts.EqualError(ts.env.GetWorkflowError(), "ContinueAsNew")
}

// TestOutbreakScanWorkflowBreachingRun tests that a breaching scan fans
// alerts out and pushes notifications.
func (ts *TrendWorkflowTestSuite) TestOutbreakScanWorkflowBreachingRun() {
	ts.env.OnActivity(ts.worker.DetectOutbreaksActivity, mock.Anything).Return(
		func(ctx context.Context) ([]schema.OutbreakSignal, error) {
			return breachingSignals, nil
		})

	ts.env.OnActivity(ts.worker.BroadcastSignalsActivity, mock.Anything, mock.Anything).Return(
		func(ctx context.Context, signals []schema.OutbreakSignal) (int, error) {
			ts.Len(signals, 1)
			ts.Equal("Acinetobacter baumannii", signals[0].PathogenName)
			return 4, nil
		})

	ts.env.OnActivity(ts.worker.NotifyOutbreakActivity, mock.Anything, mock.Anything).Return(
		func(ctx context.Context, signalCount int) error {
			ts.Equal(1, signalCount)
			return nil
		})

	ts.env.ExecuteWorkflow(ts.worker.OutbreakScanWorkflow)

	ts.env.AssertNumberOfCalls(ts.T(), "DetectOutbreaksActivity", 1)
	ts.env.AssertNumberOfCalls(ts.T(), "BroadcastSignalsActivity", 1)
	ts.env.AssertNumberOfCalls(ts.T(), "NotifyOutbreakActivity", 1)
	ts.True(ts.env.IsWorkflowCompleted())
	ts.EqualError(ts.env.GetWorkflowError(), "ContinueAsNew")
}

// TestOutbreakScanWorkflowNoRecipients tests that an empty fan-out skips
// the push notification.
func (ts *TrendWorkflowTestSuite) TestOutbreakScanWorkflowNoRecipients() {
	ts.env.OnActivity(ts.worker.DetectOutbreaksActivity, mock.Anything).Return(
		func(ctx context.Context) ([]schema.OutbreakSignal, error) {
			return breachingSignals, nil
		})

	ts.env.OnActivity(ts.worker.BroadcastSignalsActivity, mock.Anything, mock.Anything).Return(
		func(ctx context.Context, signals []schema.OutbreakSignal) (int, error) {
			return 0, nil
		})

	ts.env.ExecuteWorkflow(ts.worker.OutbreakScanWorkflow)

	ts.env.AssertNotCalled(ts.T(), "NotifyOutbreakActivity", mock.Anything, mock.Anything)
	ts.True(ts.env.IsWorkflowCompleted())
	ts.EqualError(ts.env.GetWorkflowError(), "ContinueAsNew")
}

func TestTrendWorkflowTestSuite(t *testing.T) {
	suite.Run(t, new(TrendWorkflowTestSuite))
}
