package background

import (
	"context"

	"github.com/spf13/viper"

	"github.com/openamr/surveillance-api/external/onesignal"
)

// NotifyUsersByTemplate will consolidate user ids and submit notification requests
func (b *Background) NotifyUsersByTemplate(userIDs []string, templateID string, data map[string]interface{}) error {
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
				AppID:          viper.GetString("onesignal.appid"),
				TemplateID:     templateID,
				Filters:        filters,
				Data:           data,
				LocalChannelID: "amr_alert",
			}
			if err := b.Onesignal.SendNotification(context.Background(), req); err != nil {
				return err
			}
			filters = []map[string]string{}
		}
	}
	// send rest of notification
	req := &onesignal.NotificationRequest{
		AppID:          viper.GetString("onesignal.appid"),
		TemplateID:     templateID,
		Filters:        filters,
		Data:           data,
		LocalChannelID: "amr_alert",
	}
	return b.Onesignal.SendNotification(context.Background(), req)
}

// NotifyUserByText will send message to a user by raw headings, contents and data
func (b *Background) NotifyUserByText(userID string, headings, contents map[string]string, data map[string]interface{}) error {
	filters := []map[string]string{
		{
			"field":    "tag",
			"key":      "user_id",
			"relation": "=",
			"value":    userID,
		},
	}

	req := &onesignal.NotificationRequest{
		AppID:          viper.GetString("onesignal.appid"),
		Headings:       headings,
		Contents:       contents,
		Filters:        filters,
		Data:           data,
		LocalChannelID: "amr_alert",
	}
	return b.Onesignal.SendNotification(context.Background(), req)
}
