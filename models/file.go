package models

import (
	"encoding/json"
	"time"
)

// RemoteFile is a JSON document held by the remote store.
type RemoteFile struct {
	// Owner is the subject of the bearer token the document belongs to.
	// It is never sent over the wire.
	Owner string `json:"-"`

	// Path is the logical path of the document (e.g. "/shopping-lists.json").
	Path string `json:"path"`

	// Data is the raw JSON document.
	Data json.RawMessage `json:"data"`

	// Revision is a content hash of Data. Clients use it to detect remote
	// changes without comparing whole documents.
	Revision string `json:"revision"`

	UpdatedAt time.Time `json:"updated_at"`
}

// CacheEntry is a locally cached document.
type CacheEntry struct {
	Key       string
	Data      json.RawMessage
	State     CacheState
	Revision  string
	FetchedAt time.Time
	UpdatedAt time.Time
}

// CacheInfo summarises the cache entries under a key prefix.
type CacheInfo struct {
	HasCache  bool     `json:"has_cache"`
	KeysCount int      `json:"keys_count"`
	Keys      []string `json:"keys"`
}
