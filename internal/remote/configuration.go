package remote

import (
	"context"
	"fmt"
	"net/http"

	"visa-admin-backend/internal/model"
)

// GetConfiguration returns the singleton settings record.
func (c *Client) GetConfiguration(ctx context.Context) (model.Configuration, error) {
	var cfg model.Configuration
	if err := c.do(ctx, http.MethodGet, "/api/configuration/", nil, nil, &cfg); err != nil {
		return model.Configuration{}, err
	}
	return cfg, nil
}

// UpdateConfiguration updates the settings record in place.
func (c *Client) UpdateConfiguration(ctx context.Context, id int64, payload model.ConfigurationUpdate) (model.Configuration, error) {
	var cfg model.Configuration
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/configuration/%d", id), nil, payload, &cfg); err != nil {
		return model.Configuration{}, err
	}
	return cfg, nil
}
