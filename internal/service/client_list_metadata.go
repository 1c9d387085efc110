package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/go-shop-sync/models"
)

// isoTimestamp matches the millisecond UTC timestamps written by the web
// client, e.g. 2024-01-01T00:00:00.000Z.
const isoTimestamp = "2006-01-02T15:04:05.000Z07:00"

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(isoTimestamp)
}

// repairSummary overwrites the derived fields of summary from content.
// The content timestamp wins; now is used only when content carries none.
// Members the summary does not declare are kept.
func repairSummary(summary models.ListSummary, content *models.ListContent, now time.Time) models.ListSummary {
	itemCount, completedCount := content.Counts()

	updatedAt := ""
	if content != nil {
		updatedAt = content.UpdatedAt
	}
	if updatedAt == "" {
		updatedAt = formatTimestamp(now)
	}

	return summary.Derive(itemCount, completedCount, updatedAt)
}

// toProfile wraps metadata into the remote index payload.
func toProfile(metadata models.ListsMetadata) models.ListsProfile {
	lists := metadata.Lists
	if lists == nil {
		lists = models.ListsIndex{}
	}
	return models.ListsProfile{ShoppingLists: lists, Extra: metadata.Extra}
}

func decodeListsProfile(data []byte) (models.ListsIndex, error) {
	metadata, err := decodeRemoteMetadata(data)
	return metadata.Lists, err
}

// decodeRemoteMetadata unwraps the remote index document, keeping its other
// top-level members in Extra.
func decodeRemoteMetadata(data []byte) (models.ListsMetadata, error) {
	if isEmptyDocument(data) {
		return models.ListsMetadata{Lists: models.ListsIndex{}}, nil
	}

	var profile models.ListsProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return models.ListsMetadata{}, fmt.Errorf("decode lists index: %w", err)
	}
	if profile.ShoppingLists == nil {
		profile.ShoppingLists = models.ListsIndex{}
	}

	return models.ListsMetadata{Lists: profile.ShoppingLists, Extra: profile.Extra}, nil
}

func decodeListsMetadata(data []byte) (models.ListsMetadata, error) {
	metadata := models.ListsMetadata{Lists: models.ListsIndex{}}
	if isEmptyDocument(data) {
		return metadata, nil
	}

	if err := json.Unmarshal(data, &metadata); err != nil {
		return models.ListsMetadata{}, fmt.Errorf("decode local lists index: %w", err)
	}
	if metadata.Lists == nil {
		metadata.Lists = models.ListsIndex{}
	}

	return metadata, nil
}

// decodeListContent returns nil for an absent document.
func decodeListContent(data []byte) (*models.ListContent, error) {
	if isEmptyDocument(data) {
		return nil, nil
	}

	var content models.ListContent
	if err := json.Unmarshal(data, &content); err != nil {
		return nil, fmt.Errorf("decode list content: %w", err)
	}

	return &content, nil
}

func isEmptyDocument(data []byte) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// marshalDocument encodes data as JSON. Raw bytes are taken as-is and must
// already be valid JSON.
func marshalDocument(data any) ([]byte, error) {
	var raw []byte
	switch v := data.(type) {
	case json.RawMessage:
		raw = v
	case []byte:
		raw = v
	default:
		encoded, err := json.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
		}
		raw = encoded
	}

	if !json.Valid(raw) {
		return nil, ErrInvalidDocument
	}

	return raw, nil
}
