package trend

import (
	"context"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/cadence/activity"
	"go.uber.org/zap"

	"github.com/openamr/surveillance-api/schema"
)

// DetectOutbreaksActivity runs signal detection over the rolling window.
// Detection is read-only; alert fan-out happens in a separate activity.
func (w *OutbreakScanWorker) DetectOutbreaksActivity(ctx context.Context) ([]schema.OutbreakSignal, error) {
	logger := activity.GetLogger(ctx)

	signals, err := w.mongo.DetectOutbreaks(time.Now())
	if err != nil {
		return nil, err
	}

	logger.Info("Outbreak detection scan finished.", zap.Int("signals", len(signals)))
	return signals, nil
}

// BroadcastSignalsActivity persists one alert copy per signal per
// doctor and public health official.
func (w *OutbreakScanWorker) BroadcastSignalsActivity(ctx context.Context, signals []schema.OutbreakSignal) (int, error) {
	logger := activity.GetLogger(ctx)

	created, err := w.core.BroadcastOutbreakAlerts(signals)
	if err != nil {
		return 0, err
	}

	logger.Info("Broadcasted outbreak alerts.", zap.Int("alerts", created))
	return created, nil
}

// NotifyOutbreakActivity pushes one notification to every doctor and
// public health official after their alert copies were written.
func (w *OutbreakScanWorker) NotifyOutbreakActivity(ctx context.Context, signalCount int) error {
	recipients, err := w.core.ListActiveUsersByRole(schema.RoleDoctor, schema.RolePublicHealthOfficial)
	if err != nil {
		return err
	}

	userIDs := make([]string, 0, len(recipients))
	for _, r := range recipients {
		userIDs = append(userIDs, r.ID.String())
	}

	return w.NotifyUsersByTemplate(userIDs, viper.GetString("onesignal.templates.outbreak"), map[string]interface{}{
		"notification_type": "OUTBREAK_SIGNAL",
		"signal_count":      signalCount,
	})
}
