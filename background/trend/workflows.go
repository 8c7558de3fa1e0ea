package trend

import (
	"time"

	"github.com/getsentry/sentry-go"
	"go.uber.org/cadence/workflow"
	"go.uber.org/zap"

	"github.com/openamr/surveillance-api/schema"
)

// OutbreakScanInterval is how often the rolling window is re-scanned
// when no signal arrives in between.
const OutbreakScanInterval = time.Hour

var activityOptions = workflow.ActivityOptions{
	ScheduleToStartTimeout: time.Minute,
	StartToCloseTimeout:    time.Minute,
	HeartbeatTimeout:       time.Second * 20,
}

// OutbreakScanWorkflow waits for either the scan interval or an explicit
// signal, runs detection over the rolling window, broadcasts alerts for
// every breaching group and continues as new.
func (w *OutbreakScanWorker) OutbreakScanWorkflow(ctx workflow.Context) error {
	ctx = workflow.WithActivityOptions(ctx, activityOptions)
	signalChan := workflow.GetSignalChannel(ctx, "outbreakScanSignal")
	defer signalChan.Close()

	logger := workflow.GetLogger(ctx)
	selector := workflow.NewSelector(ctx)

	timerCancelCtx, cancelTimerHandler := workflow.WithCancel(ctx)
	timerFuture := workflow.NewTimer(timerCancelCtx, OutbreakScanInterval)
	selector.AddFuture(timerFuture, func(f workflow.Future) {
		logger.Info("Start periodic outbreak scan")
	})

	selector.AddReceive(signalChan, func(c workflow.Channel, more bool) {
		cancelTimerHandler()
		signalChan.Receive(ctx, nil)

		logger.Info("Trigger outbreak scan by signal")
	})

	selector.Select(ctx)

	var signals []schema.OutbreakSignal
	if err := workflow.ExecuteActivity(ctx, w.DetectOutbreaksActivity).Get(ctx, &signals); err != nil {
		logger.Error("Fail to detect outbreaks.", zap.Error(err))
		sentry.CaptureException(err)
		return workflow.NewContinueAsNewError(ctx, w.OutbreakScanWorkflow)
	}

	if len(signals) == 0 {
		return workflow.NewContinueAsNewError(ctx, w.OutbreakScanWorkflow)
	}

	var created int
	if err := workflow.ExecuteActivity(ctx, w.BroadcastSignalsActivity, signals).Get(ctx, &created); err != nil {
		logger.Error("Fail to broadcast outbreak alerts.", zap.Error(err))
		sentry.CaptureException(err)
		return workflow.NewContinueAsNewError(ctx, w.OutbreakScanWorkflow)
	}

	if created > 0 {
		if err := workflow.ExecuteActivity(ctx, w.NotifyOutbreakActivity, len(signals)).Get(ctx, nil); err != nil {
			logger.Error("Fail to push outbreak notifications.", zap.Error(err))
			sentry.CaptureException(err)
		}
	}

	return workflow.NewContinueAsNewError(ctx, w.OutbreakScanWorkflow)
}
