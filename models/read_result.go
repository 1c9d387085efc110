// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CacheState describes where the data of a read came from.
type CacheState string

const (
	// CacheStateMissing means neither the cache nor the remote store had a value.
	CacheStateMissing CacheState = "missing"

	// CacheStateCached means the value was served from the local cache and may
	// be stale.
	CacheStateCached CacheState = "cached"

	// CacheStateFresh means the value was just fetched from the remote store or
	// the cached copy is younger than the freshness window.
	CacheStateFresh CacheState = "fresh"

	// CacheStatePending means the cached value holds a local write that the
	// remote store has not confirmed yet.
	CacheStatePending CacheState = "pending"
)

// SyncHandler registers callbacks for a background reconciliation that was
// offered by a read.
//
// onSyncStatusChange(true) is observed before any onUpdate, and exactly one
// terminal onSyncStatusChange(false) follows. onUpdate is only invoked when the
// remote value differs from the one already returned.
type SyncHandler[T any] func(onUpdate func(T), onSyncStatusChange func(isSyncing bool))

// ReadResult is the outcome of an optimistic read. Sync is nil when no
// background reconciliation is available for the read (e.g. the value is
// already fresh).
type ReadResult[T any] struct {
	Data  T
	State CacheState
	Sync  SyncHandler[T]
}

// HasSync reports whether the read offers a background sync.
func (r ReadResult[T]) HasSync() bool {
	return r.Sync != nil
}

// Subscribe registers the callbacks on the sync handler, if there is one.
// It returns false when the read offers no background sync.
func (r ReadResult[T]) Subscribe(onUpdate func(T), onSyncStatusChange func(isSyncing bool)) bool {
	if r.Sync == nil {
		return false
	}
	r.Sync(onUpdate, onSyncStatusChange)
	return true
}
