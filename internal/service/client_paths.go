package service

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-shop-sync/internal/config"
)

// CollectionShoppingLists is the write queue collection of list contents.
const CollectionShoppingLists = "shopping-lists"

// listPaths resolves list identifiers to remote paths and local staging keys.
type listPaths struct {
	cfg config.Paths
}

func newListPaths(cfg config.Paths) listPaths {
	return listPaths{cfg: cfg}
}

func (p listPaths) remoteIndex() string {
	return p.cfg.RemoteIndexPath
}

func (p listPaths) remoteList(listID string) string {
	return p.cfg.AppFolder + p.cfg.RemoteListPrefix + listID + ".json"
}

func (p listPaths) localPrefix() string {
	return p.cfg.LocalPrefix
}

func (p listPaths) localIndex() string {
	return p.cfg.LocalIndexKey
}

func (p listPaths) localList(listID string) string {
	return p.cfg.LocalListPrefix + listID
}

// resolve maps a write queue entry to the remote path it is delivered to.
func (p listPaths) resolve(collection, itemID string) (string, error) {
	switch collection {
	case CollectionShoppingLists:
		if err := validateListID(itemID); err != nil {
			return "", err
		}
		return p.remoteList(itemID), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownCollection, collection)
	}
}

func validateListID(listID string) error {
	if listID == "" || strings.TrimSpace(listID) != listID || strings.ContainsAny(listID, `/\`) {
		return fmt.Errorf("%w: %q", ErrInvalidListID, listID)
	}
	return nil
}
