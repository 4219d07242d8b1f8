package service

import (
	"context"

	"visa-admin-backend/internal/cache"
	"visa-admin-backend/internal/model"
	"visa-admin-backend/internal/mutate"
	"visa-admin-backend/internal/remote"
)

// ConfigurationService serves the singleton settings record.
type ConfigurationService struct {
	remote *remote.Client
	store  *cache.Store

	update *mutate.Orchestrator[model.Configuration]
}

func NewConfigurationService(rc *remote.Client, store *cache.Store) *ConfigurationService {
	return &ConfigurationService{
		remote: rc,
		store:  store,

		update: mutate.New(store, func(model.Configuration) []cache.Prefix {
			return []cache.Prefix{cache.ConfigurationPrefix()}
		}),
	}
}

// Get returns the settings record, served from the cache when fresh.
func (s *ConfigurationService) Get(ctx context.Context) (model.Configuration, error) {
	return cache.Fetch(ctx, s.store, cache.ConfigurationKey(), s.remote.GetConfiguration)
}

// Update replaces the settings in place.
func (s *ConfigurationService) Update(ctx context.Context, id int64, payload model.ConfigurationUpdate) (model.Configuration, error) {
	return s.update.Do(ctx, func(ctx context.Context) (model.Configuration, error) {
		return s.remote.UpdateConfiguration(ctx, id, payload)
	})
}
