// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	getCacheEntry = `
		SELECT key, data, state, revision, fetched_at, updated_at
		FROM cache_entries
		WHERE key = ?;`

	putCacheEntry = `
		INSERT INTO cache_entries (key, data, state, revision, fetched_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (key) DO UPDATE SET
			data = excluded.data,
			state = excluded.state,
			revision = excluded.revision,
			fetched_at = excluded.fetched_at,
			updated_at = excluded.updated_at;`

	refreshCacheEntry = `
		INSERT INTO cache_entries (key, data, state, revision, fetched_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (key) DO UPDATE SET
			data = excluded.data,
			state = excluded.state,
			revision = excluded.revision,
			fetched_at = excluded.fetched_at,
			updated_at = excluded.updated_at
		WHERE cache_entries.state <> 'pending';`

	markCacheEntrySynced = `
		UPDATE cache_entries
		SET state = 'cached', revision = ?, fetched_at = ?
		WHERE key = ? AND state = 'pending' AND data = ?;`

	deleteCacheEntry = `DELETE FROM cache_entries WHERE key = ?;`

	// substr instead of LIKE: "_" is a LIKE wildcard and appears in prefixes
	deleteCacheEntriesByPrefix = `
		DELETE FROM cache_entries
		WHERE substr(key, 1, length(?)) = ?;`

	listCacheKeys = `
		SELECT key
		FROM cache_entries
		WHERE substr(key, 1, length(?)) = ?
		ORDER BY key;`

	deleteQueuedItem = `
		DELETE FROM write_queue
		WHERE collection = ? AND item_id = ?;`

	insertQueueEntry = `
		INSERT INTO write_queue (id, collection, item_id, payload, attempts, last_error, created_at, next_attempt_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?);`

	getDueQueueEntries = `
		SELECT id, collection, item_id, payload, attempts, last_error, created_at, next_attempt_at
		FROM write_queue
		WHERE next_attempt_at <= ?
		ORDER BY created_at, id
		LIMIT ?;`

	deleteQueueEntry = `DELETE FROM write_queue WHERE id = ?;`

	markQueueEntryFailed = `
		UPDATE write_queue
		SET attempts = ?, last_error = ?, next_attempt_at = ?
		WHERE id = ?;`

	countQueueEntries = `SELECT COUNT(*) FROM write_queue;`
)
