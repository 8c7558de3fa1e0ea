package background

import (
	"context"

	"github.com/openamr/surveillance-api/external/onesignal"
)

type NotificationCenter interface {
	NotifyUserByText(userID string, headings, contents map[string]string, data map[string]interface{}) error
	NotifyUsersByTemplate(userIDs []string, templateID string, data map[string]interface{}) error
}

type OnesignalNotificationCenter struct {
	appID  string
	client *onesignal.OneSignalClient
}

func NewOnesignalNotificationCenter(appID string, client *onesignal.OneSignalClient) *OnesignalNotificationCenter {
	return &OnesignalNotificationCenter{
		appID:  appID,
		client: client,
	}
}

func (o *OnesignalNotificationCenter) NotifyUserByText(userID string, headings, contents map[string]string, data map[string]interface{}) error {
	filters := []map[string]string{
		{
			"field":    "tag",
			"key":      "user_id",
			"relation": "=",
			"value":    userID,
		},
	}

	req := &onesignal.NotificationRequest{
		AppID:          o.appID,
		Headings:       headings,
		Contents:       contents,
		Filters:        filters,
		Data:           data,
		LocalChannelID: "amr_alert",
	}
	return o.client.SendNotification(context.Background(), req)
}

// NotifyUsersByTemplate consolidates user ids into filter batches of 100,
// the onesignal filter list limit.
func (o *OnesignalNotificationCenter) NotifyUsersByTemplate(userIDs []string, templateID string, data map[string]interface{}) error {
	filters := []map[string]string{}
	for i, id := range userIDs {
		if i%100 == 0 {
			filters = append(filters, map[string]string{
				"field":    "tag",
				"key":      "user_id",
				"relation": "=",
				"value":    id,
			})
		} else {
			filters = append(filters,
				map[string]string{"operator": "OR"},
				map[string]string{
					"field":    "tag",
					"key":      "user_id",
					"relation": "=",
					"value":    id,
				})
		}
		if i%100 == 99 {
			req := &onesignal.NotificationRequest{
				AppID:          o.appID,
				TemplateID:     templateID,
				Filters:        filters,
				Data:           data,
				LocalChannelID: "amr_alert",
			}
			if err := o.client.SendNotification(context.Background(), req); err != nil {
				return err
			}
			filters = []map[string]string{}
		}
	}

	// send rest of notification
	req := &onesignal.NotificationRequest{
		AppID:          o.appID,
		TemplateID:     templateID,
		Filters:        filters,
		Data:           data,
		LocalChannelID: "amr_alert",
	}
	return o.client.SendNotification(context.Background(), req)
}
