package onesignal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const logPrefix = "onesignal"

const apiEndpoint = "https://onesignal.com/api/v1"

// NotificationRequest is a request body of the onesignal notification API.
type NotificationRequest struct {
	AppID          string                 `json:"app_id"`
	TemplateID     string                 `json:"template_id,omitempty"`
	Headings       map[string]string      `json:"headings,omitempty"`
	Contents       map[string]string      `json:"contents,omitempty"`
	Filters        []map[string]string    `json:"filters,omitempty"`
	Segments       []string               `json:"included_segments,omitempty"`
	Data           map[string]interface{} `json:"data,omitempty"`
	LocalChannelID string                 `json:"existing_android_channel_id,omitempty"`
}

// OneSignalClient is a client to send push notifications through onesignal.
type OneSignalClient struct {
	httpClient *http.Client
}

func NewClient(client *http.Client) *OneSignalClient {
	return &OneSignalClient{
		httpClient: client,
	}
}

// SendNotification submits a notification request. A non-2xx response is
// returned as an error.
func (c *OneSignalClient) SendNotification(ctx context.Context, request *NotificationRequest) error {
	body, err := json.Marshal(request)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		apiEndpoint+"/notifications", bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Basic %s", viper.GetString("onesignal.apikey")))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp struct {
			Errors []string `json:"errors"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && len(errResp.Errors) > 0 {
			return fmt.Errorf("onesignal: %s", errResp.Errors[0])
		}
		return fmt.Errorf("onesignal: unexpected status %d", resp.StatusCode)
	}

	log.WithFields(log.Fields{
		"prefix":      logPrefix,
		"template_id": request.TemplateID,
	}).Debug("sent notification")

	return nil
}
