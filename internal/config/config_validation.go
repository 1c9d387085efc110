// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DSN == "" || strings.Contains(cfg.Storage.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.QueueInterval <= 0 || cfg.Workers.SyncInterval <= 0 ||
		cfg.Workers.MaxAttempts < 1 || cfg.Workers.BatchSize < 1 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.Gateway.FreshTTL < 0 {
		return ErrInvalidGatewayConfigs
	}

	return cfg.Paths.validate()
}

// validate rejects path layouts where local staging keys and remote paths
// could collide, or where the index would be read as a list document.
func (p Paths) validate() error {
	if p.LocalPrefix == "" || p.RemoteIndexPath == "" || p.RemoteListPrefix == "" {
		return fmt.Errorf("%w: empty prefix", ErrInvalidPathConfigs)
	}

	if !strings.HasPrefix(p.LocalIndexKey, p.LocalPrefix) || !strings.HasPrefix(p.LocalListPrefix, p.LocalPrefix) {
		return fmt.Errorf("%w: local keys must start with %q", ErrInvalidPathConfigs, p.LocalPrefix)
	}

	if p.LocalIndexKey == p.LocalListPrefix || strings.HasPrefix(p.LocalIndexKey, p.LocalListPrefix) {
		return fmt.Errorf("%w: local index key overlaps list prefix", ErrInvalidPathConfigs)
	}

	remoteListPrefix := p.AppFolder + p.RemoteListPrefix
	for _, remote := range []string{p.RemoteIndexPath, remoteListPrefix} {
		if strings.HasPrefix(remote, p.LocalPrefix) {
			return fmt.Errorf("%w: remote path %q uses the local prefix", ErrInvalidPathConfigs, remote)
		}
	}

	if strings.HasPrefix(p.RemoteIndexPath, remoteListPrefix) {
		return fmt.Errorf("%w: remote index overlaps list prefix", ErrInvalidPathConfigs)
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Auth.TokenSignKey == "" || cfg.Auth.TokenIssuer == "" || cfg.Auth.TokenDuration <= 0 {
		return ErrInvalidAuthConfigs
	}

	return nil
}
