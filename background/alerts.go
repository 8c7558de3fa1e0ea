package background

import (
	"context"
	"time"

	"github.com/RichardKnop/machinery/v1"
	"github.com/RichardKnop/machinery/v1/tasks"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/openamr/surveillance-api/external/onesignal"
	"github.com/openamr/surveillance-api/schema"
)

const (
	TaskScanOutbreaks = "scan_outbreaks"
	TaskNotifyAlert   = "notify_alert"
)

// ScanOutbreaks is a background job that runs detection over the rolling
// window, persists alerts for every signal and pushes notifications to
// the affected roles.
func (m *BackgroundManager) ScanOutbreaks() error {
	signals, err := m.mongo.DetectOutbreaks(time.Now())
	if err != nil {
		return err
	}

	if len(signals) == 0 {
		log.WithField("prefix", "background").Info("outbreak scan found no signals")
		return nil
	}

	created, err := m.store.BroadcastOutbreakAlerts(signals)
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"prefix":  "background",
		"signals": len(signals),
		"alerts":  created,
	}).Info("outbreak scan broadcasted alerts")

	recipients, err := m.store.ListActiveUsersByRole(schema.RoleDoctor, schema.RolePublicHealthOfficial)
	if err != nil {
		return err
	}

	userIDs := make([]string, 0, len(recipients))
	for _, r := range recipients {
		userIDs = append(userIDs, r.ID.String())
	}

	center := NewOnesignalNotificationCenter(viper.GetString("onesignal.appid"), m.onesignal)
	return center.NotifyUsersByTemplate(userIDs, viper.GetString("onesignal.templates.outbreak"), map[string]interface{}{
		"notification_type": "OUTBREAK_SIGNAL",
		"signal_count":      len(signals),
	})
}

// NotifyAlert pushes one alert payload to all subscribed devices. The
// persisted per-user alert copies are written before this job is queued.
func (m *BackgroundManager) NotifyAlert(title, message, alertType string, recipients int64) error {
	heading, body := LocalizedNotification("en", alertType, title, message)

	req := &onesignal.NotificationRequest{
		AppID:    viper.GetString("onesignal.appid"),
		Headings: map[string]string{"en": heading},
		Contents: map[string]string{"en": body},
		Segments: []string{"Subscribed Users"},
		Data: map[string]interface{}{
			"notification_type": "ALERT_BROADCAST",
			"alert_type":        alertType,
			"recipients":        recipients,
		},
		LocalChannelID: "amr_alert",
	}
	return m.onesignal.SendNotification(context.Background(), req)
}

// EnqueueAlertNotification queues a push notification job for an alert
// that has already been fanned out.
func EnqueueAlertNotification(server *machinery.Server, payload schema.AlertPayload, recipients int) error {
	_, err := server.SendTask(&tasks.Signature{
		Name: TaskNotifyAlert,
		Args: []tasks.Arg{
			{Type: "string", Value: payload.Title},
			{Type: "string", Value: payload.Message},
			{Type: "string", Value: payload.AlertType},
			{Type: "int64", Value: int64(recipients)},
		},
	})
	return err
}
