package models

import (
	"encoding/json"
	"time"
)

// QueueEntry is a single durable write waiting for delivery to the remote
// store.
type QueueEntry struct {
	// ID is a UUIDv7, so entries sort by enqueue time.
	ID string `json:"id"`

	// Collection selects how ItemID is resolved to a remote path
	// (e.g. "shopping-lists").
	Collection string `json:"collection"`

	// ItemID identifies the document inside the collection.
	ItemID string `json:"item_id"`

	// Payload is the JSON document to write.
	Payload json.RawMessage `json:"payload"`

	// Attempts counts failed delivery attempts.
	Attempts int `json:"attempts"`

	// LastError keeps the message of the last failed attempt.
	LastError string `json:"last_error,omitempty"`

	CreatedAt     time.Time `json:"created_at"`
	NextAttemptAt time.Time `json:"next_attempt_at"`
}
