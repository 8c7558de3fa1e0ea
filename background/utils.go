package background

import (
	"fmt"

	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/openamr/surveillance-api/utils"
)

// LocalizedNotification returns the push heading and body for an alert
// type. Falls back to the given defaults when no translation exists.
func LocalizedNotification(lang, alertType, defaultTitle, defaultBody string) (string, string) {
	loc := utils.NewLocalizer(lang)

	title := defaultTitle
	if v, err := loc.Localize(&i18n.LocalizeConfig{
		MessageID: fmt.Sprintf("notification.%s.title", alertType),
	}); err == nil {
		title = v
	}

	body := defaultBody
	if v, err := loc.Localize(&i18n.LocalizeConfig{
		MessageID: fmt.Sprintf("notification.%s.body", alertType),
	}); err == nil {
		body = v
	}

	return title, body
}
