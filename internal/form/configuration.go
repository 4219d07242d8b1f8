package form

import (
	"strconv"
	"strings"

	"visa-admin-backend/internal/model"
)

// ConfigurationForm is the controller behind the settings page. Every field
// is mandatory; sleep_time must be at least one second.
type ConfigurationForm struct {
	*Form
}

func NewConfigurationForm(existing model.Configuration) *ConfigurationForm {
	f := New().
		Add("base_url", existing.BaseURL, Required("Base URL is required")).
		Add("hub_address", existing.HubAddress, Required("Hub Address is required")).
		Add("sleep_time", formatSleepTime(existing.SleepTime), All(
			Required("Sleep time is required"),
			MinNumber(1, "Sleep time must be at least 1 second"),
		)).
		Add("push_token", existing.PushToken, Required("Push token is required")).
		Add("push_user", existing.PushUser, Required("Push user is required")).
		Add("df_msg", existing.DfMsg, Required("Default message is required"))

	return &ConfigurationForm{Form: f}
}

// UpdatePayload validates the form and builds the settings update. Nothing
// reaches the network while any field holds an error.
func (f *ConfigurationForm) UpdatePayload() (model.ConfigurationUpdate, bool) {
	if !f.Validate() {
		return model.ConfigurationUpdate{}, false
	}
	sleep, _ := strconv.ParseFloat(strings.TrimSpace(f.Value("sleep_time")), 64)
	return model.ConfigurationUpdate{
		BaseURL:    strings.TrimSpace(f.Value("base_url")),
		HubAddress: strings.TrimSpace(f.Value("hub_address")),
		SleepTime:  sleep,
		PushToken:  f.Value("push_token"),
		PushUser:   f.Value("push_user"),
		DfMsg:      f.Value("df_msg"),
	}, true
}

func formatSleepTime(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
