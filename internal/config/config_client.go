package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the remote file server address.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// Token is the bearer token. Empty means local staging mode.
	Token string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DSN is the SQLite file holding the cache and the write queue.
	DSN string
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	QueueInterval time.Duration
	SyncInterval  time.Duration
	MaxAttempts   int
	BatchSize     int
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	Version string
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
	Paths   Paths
	Gateway Gateway
	Log     Log
}

// Online reports whether the client has a bearer token for the remote store.
func (cfg *ClientConfig) Online() bool {
	return cfg.Token() != ""
}

// Token returns the configured bearer token.
func (cfg *ClientConfig) Token() string {
	return cfg.Adapter.Token
}

// GetClientConfig builds and validates the client view of the merged
// configuration. overrides takes precedence over every other source; the
// client CLI passes its command-line flags there. Pass nil for none.
func GetClientConfig(overrides *StructuredConfig) (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withConfig(overrides).
		withEnv().
		withJSON().
		withDefaults().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)

	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		Version: cfg.App.Version,
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			Token:          cfg.Adapter.Token,
		},
		Storage: ClientStorage{DSN: cfg.Storage.Local.DSN},
		Workers: ClientWorkers{
			QueueInterval: cfg.Workers.QueueInterval,
			SyncInterval:  cfg.Workers.SyncInterval,
			MaxAttempts:   cfg.Workers.MaxAttempts,
			BatchSize:     cfg.Workers.BatchSize,
		},
		Paths:   cfg.Paths,
		Gateway: cfg.Gateway,
		Log:     cfg.Log,
	}
}
