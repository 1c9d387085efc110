package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validClientConfig() *ClientConfig {
	return newClientConfig(defaults())
}

func TestClientConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *ClientConfig)
		wantErr error
	}{
		{name: "defaults are valid", mutate: func(*ClientConfig) {}},
		{
			name:    "in-memory dsn",
			mutate:  func(cfg *ClientConfig) { cfg.Storage.DSN = "file::memory:" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "missing adapter address",
			mutate:  func(cfg *ClientConfig) { cfg.Adapter.HTTPAddress = "" },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "zero queue interval",
			mutate:  func(cfg *ClientConfig) { cfg.Workers.QueueInterval = 0 },
			wantErr: ErrInvalidWorkerConfigs,
		},
		{
			name:    "negative fresh ttl",
			mutate:  func(cfg *ClientConfig) { cfg.Gateway.FreshTTL = -time.Second },
			wantErr: ErrInvalidGatewayConfigs,
		},
		{
			name:    "local index outside local prefix",
			mutate:  func(cfg *ClientConfig) { cfg.Paths.LocalIndexKey = "SHOPPING_LISTS" },
			wantErr: ErrInvalidPathConfigs,
		},
		{
			name:    "local index under list prefix",
			mutate:  func(cfg *ClientConfig) { cfg.Paths.LocalIndexKey = "LOCAL_LIST_DATA_index" },
			wantErr: ErrInvalidPathConfigs,
		},
		{
			name:    "remote index under local prefix",
			mutate:  func(cfg *ClientConfig) { cfg.Paths.RemoteIndexPath = "LOCAL_index.json" },
			wantErr: ErrInvalidPathConfigs,
		},
		{
			name:    "remote index under list prefix",
			mutate:  func(cfg *ClientConfig) { cfg.Paths.RemoteIndexPath = "/shop-sync/list_index.json" },
			wantErr: ErrInvalidPathConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validClientConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestServerConfigValidate(t *testing.T) {
	cfg := newServerConfig(defaults())
	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)

	cfg.DB.DSN = "postgres://localhost/shop"
	assert.ErrorIs(t, cfg.validate(), ErrInvalidAuthConfigs)

	cfg.Auth.TokenSignKey = "secret"
	assert.NoError(t, cfg.validate())

	cfg.Server.RequestTimeout = 0
	assert.ErrorIs(t, cfg.validate(), ErrInvalidServerConfigs)
}
