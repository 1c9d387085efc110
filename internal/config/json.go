package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON shape of [StructuredConfig].
// Durations are strings accepted by time.ParseDuration (e.g. "30s").
type StructuredJSONConfig struct {
	App struct {
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Auth struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
	} `json:"auth,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Local struct {
			DSN string `json:"dsn"`
		} `json:"local,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		Token          string   `json:"token"`
	} `json:"adapter,omitempty"`

	Workers struct {
		QueueInterval Duration `json:"queue_interval"`
		SyncInterval  Duration `json:"sync_interval"`
		MaxAttempts   int      `json:"max_attempts"`
		BatchSize     int      `json:"batch_size"`
	} `json:"workers,omitempty"`

	Paths struct {
		AppFolder        string `json:"app_folder"`
		RemoteIndexPath  string `json:"remote_index"`
		RemoteListPrefix string `json:"remote_list_prefix"`
		LocalPrefix      string `json:"local_prefix"`
		LocalIndexKey    string `json:"local_index"`
		LocalListPrefix  string `json:"local_list_prefix"`
	} `json:"paths,omitempty"`

	Gateway struct {
		FreshTTL Duration `json:"fresh_ttl"`
	} `json:"gateway,omitempty"`

	Log struct {
		FilePath   string `json:"file"`
		MaxSizeMB  int    `json:"max_size_mb"`
		MaxBackups int    `json:"max_backups"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{Version: jsonCfg.App.Version},
		Auth: Auth{
			TokenSignKey:  jsonCfg.Auth.TokenSignKey,
			TokenIssuer:   jsonCfg.Auth.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.Auth.TokenDuration),
		},
		Storage: Storage{
			DB:    DB{DSN: jsonCfg.Storage.DB.DSN},
			Local: Local{DSN: jsonCfg.Storage.Local.DSN},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			Token:          jsonCfg.Adapter.Token,
		},
		Workers: Workers{
			QueueInterval: time.Duration(jsonCfg.Workers.QueueInterval),
			SyncInterval:  time.Duration(jsonCfg.Workers.SyncInterval),
			MaxAttempts:   jsonCfg.Workers.MaxAttempts,
			BatchSize:     jsonCfg.Workers.BatchSize,
		},
		Paths: Paths{
			AppFolder:        jsonCfg.Paths.AppFolder,
			RemoteIndexPath:  jsonCfg.Paths.RemoteIndexPath,
			RemoteListPrefix: jsonCfg.Paths.RemoteListPrefix,
			LocalPrefix:      jsonCfg.Paths.LocalPrefix,
			LocalIndexKey:    jsonCfg.Paths.LocalIndexKey,
			LocalListPrefix:  jsonCfg.Paths.LocalListPrefix,
		},
		Gateway: Gateway{FreshTTL: time.Duration(jsonCfg.Gateway.FreshTTL)},
		Log: Log{
			FilePath:   jsonCfg.Log.FilePath,
			MaxSizeMB:  jsonCfg.Log.MaxSizeMB,
			MaxBackups: jsonCfg.Log.MaxBackups,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
