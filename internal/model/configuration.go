package model

// Configuration is the remote service's singleton settings record. It is
// updated in place and never created or deleted through this client.
type Configuration struct {
	ID         int64   `json:"id"`
	BaseURL    string  `json:"base_url"`
	HubAddress string  `json:"hub_address"`
	SleepTime  float64 `json:"sleep_time"`
	PushToken  string  `json:"push_token"`
	PushUser   string  `json:"push_user"`
	DfMsg      string  `json:"df_msg"`
	CreatedAt  string  `json:"created_at,omitempty"`
	UpdatedAt  string  `json:"updated_at,omitempty"`
}

// ConfigurationUpdate carries the full set of editable settings.
type ConfigurationUpdate struct {
	BaseURL    string  `json:"base_url"`
	HubAddress string  `json:"hub_address"`
	SleepTime  float64 `json:"sleep_time"`
	PushToken  string  `json:"push_token"`
	PushUser   string  `json:"push_user"`
	DfMsg      string  `json:"df_msg"`
}
