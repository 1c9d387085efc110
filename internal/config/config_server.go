package config

import "fmt"

// ServerConfig is the remote file server view of [StructuredConfig].
type ServerConfig struct {
	Version string
	Auth    Auth
	DB      DB
	Server  Server
}

// GetServerConfig loads the configuration from flags, environment, JSON and
// defaults, and validates the server view.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := newServerConfig(cfg)

	return serverCfg, serverCfg.validate()
}

func newServerConfig(cfg *StructuredConfig) *ServerConfig {
	return &ServerConfig{
		Version: cfg.App.Version,
		Auth:    cfg.Auth,
		DB:      cfg.Storage.DB,
		Server:  cfg.Server,
	}
}
