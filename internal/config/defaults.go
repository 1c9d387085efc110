package config

import "time"

// Default values applied when no other source sets a field.
const (
	DefaultAppFolder        = "/shop-sync"
	DefaultRemoteIndexPath  = "/shop-sync/shopping-lists.json"
	DefaultRemoteListPrefix = "/list_"
	DefaultLocalPrefix      = "LOCAL_"
	DefaultLocalIndexKey    = "LOCAL_SHOPPING_LISTS"
	DefaultLocalListPrefix  = "LOCAL_LIST_DATA_"
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{Version: "dev"},
		Auth: Auth{
			TokenIssuer:   "go-shop-sync",
			TokenDuration: 30 * 24 * time.Hour,
		},
		Storage: Storage{
			Local: Local{DSN: "shop-cache.db"},
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
		Adapter: Adapter{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 15 * time.Second,
		},
		Workers: Workers{
			QueueInterval: 5 * time.Second,
			SyncInterval:  time.Minute,
			MaxAttempts:   10,
			BatchSize:     50,
		},
		Paths: Paths{
			AppFolder:        DefaultAppFolder,
			RemoteIndexPath:  DefaultRemoteIndexPath,
			RemoteListPrefix: DefaultRemoteListPrefix,
			LocalPrefix:      DefaultLocalPrefix,
			LocalIndexKey:    DefaultLocalIndexKey,
			LocalListPrefix:  DefaultLocalListPrefix,
		},
		Gateway: Gateway{FreshTTL: 30 * time.Second},
		Log: Log{
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}
