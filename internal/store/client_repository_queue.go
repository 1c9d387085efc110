package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-shop-sync/internal/logger"
	"github.com/MKhiriev/go-shop-sync/models"
)

// queueRepository is the SQLite-backed [QueueRepository] over the write_queue
// table.
type queueRepository struct {
	*DB
	logger *logger.Logger
}

func NewQueueRepository(db *DB, logger *logger.Logger) QueueRepository {
	return &queueRepository{
		DB:     db,
		logger: logger,
	}
}

// Enqueue replaces any entry queued earlier for the same item: only the latest
// payload of a document needs to reach the remote store.
func (q *queueRepository) Enqueue(ctx context.Context, entry models.QueueEntry) error {
	log := logger.FromContext(ctx)

	tx, err := q.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "queueRepository.Enqueue").
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deleteQueuedItem, entry.Collection, entry.ItemID); err != nil {
		log.Err(err).
			Str("func", "queueRepository.Enqueue").
			Str("collection", entry.Collection).
			Str("item_id", entry.ItemID).
			Msg("failed to drop superseded queue entries")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	createdAt := entry.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	nextAttemptAt := entry.NextAttemptAt
	if nextAttemptAt.IsZero() {
		nextAttemptAt = createdAt
	}

	_, err = tx.ExecContext(ctx, insertQueueEntry,
		entry.ID,
		entry.Collection,
		entry.ItemID,
		[]byte(entry.Payload),
		entry.Attempts,
		entry.LastError,
		toMillis(createdAt),
		toMillis(nextAttemptAt),
	)
	if err != nil {
		log.Err(err).
			Str("func", "queueRepository.Enqueue").
			Str("id", entry.ID).
			Msg("failed to insert queue entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "queueRepository.Enqueue").
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (q *queueRepository) Due(ctx context.Context, now time.Time, limit int) ([]models.QueueEntry, error) {
	log := logger.FromContext(ctx)

	rows, err := q.DB.QueryContext(ctx, getDueQueueEntries, toMillis(now), limit)
	if err != nil {
		log.Err(err).
			Str("func", "queueRepository.Due").
			Msg("failed to execute query for due queue entries")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.QueueEntry, 0, limit)
	for rows.Next() {
		var (
			entry         models.QueueEntry
			payload       []byte
			createdAt     int64
			nextAttemptAt int64
		)

		scanErr := rows.Scan(
			&entry.ID,
			&entry.Collection,
			&entry.ItemID,
			&payload,
			&entry.Attempts,
			&entry.LastError,
			&createdAt,
			&nextAttemptAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "queueRepository.Due").
				Msg("failed to scan queue entry row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		entry.Payload = payload
		entry.CreatedAt = fromMillis(createdAt)
		entry.NextAttemptAt = fromMillis(nextAttemptAt)
		entries = append(entries, entry)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "queueRepository.Due").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return entries, nil
}

func (q *queueRepository) MarkDone(ctx context.Context, id string) error {
	if _, err := q.DB.ExecContext(ctx, deleteQueueEntry, id); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "queueRepository.MarkDone").
			Str("id", id).
			Msg("failed to delete delivered queue entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (q *queueRepository) MarkFailed(ctx context.Context, id string, attempts int, lastErr string, nextAttemptAt time.Time) error {
	if _, err := q.DB.ExecContext(ctx, markQueueEntryFailed, attempts, lastErr, toMillis(nextAttemptAt), id); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "queueRepository.MarkFailed").
			Str("id", id).
			Msg("failed to reschedule queue entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (q *queueRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := q.DB.QueryRowContext(ctx, countQueueEntries).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return count, nil
}
