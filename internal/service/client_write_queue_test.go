package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-shop-sync/internal/config"
	"github.com/MKhiriev/go-shop-sync/internal/logger"
	"github.com/MKhiriev/go-shop-sync/internal/mock"
	"github.com/MKhiriev/go-shop-sync/models"
)

func newTestWriteQueue(t *testing.T) (*writeQueue, *mock.MockQueueRepository, *mock.MockStorageGateway) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mock.NewMockQueueRepository(ctrl)
	gateway := mock.NewMockStorageGateway(ctrl)

	q := NewWriteQueue(repo, gateway, config.ClientWorkers{MaxAttempts: 3, BatchSize: 10}, testPaths(), logger.Nop()).(*writeQueue)
	q.now = fixedClock

	return q, repo, gateway
}

// ── Enqueue ──────────────────────────────────────────────────────────────────

func TestWriteQueue_Enqueue(t *testing.T) {
	q, repo, _ := newTestWriteQueue(t)

	var stored models.QueueEntry
	repo.EXPECT().Enqueue(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e models.QueueEntry) error {
		stored = e
		return nil
	})

	err := q.Enqueue(context.Background(), CollectionShoppingLists, "abc", &models.ListContent{ID: "abc"})
	require.NoError(t, err)

	assert.NotEmpty(t, stored.ID)
	assert.Equal(t, CollectionShoppingLists, stored.Collection)
	assert.Equal(t, "abc", stored.ItemID)
	assert.JSONEq(t, `{"id":"abc","items":null}`, string(stored.Payload))
	assert.True(t, testNow.Equal(stored.NextAttemptAt))
	assert.Zero(t, stored.Attempts)
}

func TestWriteQueue_Enqueue_KeepsRawPayload(t *testing.T) {
	q, repo, _ := newTestWriteQueue(t)
	raw := []byte(`{"id":"abc", "items":[]}`)

	repo.EXPECT().Enqueue(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e models.QueueEntry) error {
		assert.Equal(t, json.RawMessage(raw), e.Payload)
		return nil
	})

	require.NoError(t, q.Enqueue(context.Background(), CollectionShoppingLists, "abc", raw))
}

func TestWriteQueue_Enqueue_Rejects(t *testing.T) {
	q, _, _ := newTestWriteQueue(t)
	ctx := context.Background()

	assert.ErrorIs(t, q.Enqueue(ctx, "notes", "abc", `{}`), ErrUnknownCollection)
	assert.ErrorIs(t, q.Enqueue(ctx, CollectionShoppingLists, "a/b", `{}`), ErrInvalidListID)
	assert.ErrorIs(t, q.Enqueue(ctx, CollectionShoppingLists, "", `{}`), ErrInvalidListID)
	assert.ErrorIs(t, q.Enqueue(ctx, CollectionShoppingLists, "abc", []byte(`{`)), ErrInvalidDocument)
}

// ── Drain ────────────────────────────────────────────────────────────────────

func TestWriteQueue_Drain_Offline(t *testing.T) {
	q, _, gateway := newTestWriteQueue(t)
	gateway.EXPECT().Online().Return(false)

	delivered, err := q.Drain(context.Background())

	require.NoError(t, err)
	assert.Zero(t, delivered)
}

func TestWriteQueue_Drain_Delivers(t *testing.T) {
	q, repo, gateway := newTestWriteQueue(t)
	ctx := context.Background()

	entries := []models.QueueEntry{
		{ID: "e1", Collection: CollectionShoppingLists, ItemID: "a", Payload: json.RawMessage(`{"id":"a"}`)},
		{ID: "e2", Collection: CollectionShoppingLists, ItemID: "b", Payload: json.RawMessage(`{"id":"b"}`)},
	}

	gateway.EXPECT().Online().Return(true)
	gomock.InOrder(
		repo.EXPECT().Due(ctx, testNow, 10).Return(entries, nil),
		gateway.EXPECT().PushFile(ctx, "/shop-sync/list_a.json", []byte(`{"id":"a"}`)).Return(nil),
		repo.EXPECT().MarkDone(ctx, "e1").Return(nil),
		gateway.EXPECT().PushFile(ctx, "/shop-sync/list_b.json", []byte(`{"id":"b"}`)).Return(nil),
		repo.EXPECT().MarkDone(ctx, "e2").Return(nil),
	)

	delivered, err := q.Drain(ctx)

	require.NoError(t, err)
	assert.Equal(t, 2, delivered)
}

func TestWriteQueue_Drain_ReschedulesFailure(t *testing.T) {
	q, repo, gateway := newTestWriteQueue(t)
	ctx := context.Background()

	entry := models.QueueEntry{ID: "e1", Collection: CollectionShoppingLists, ItemID: "a", Payload: json.RawMessage(`{}`), Attempts: 1}

	gateway.EXPECT().Online().Return(true)
	repo.EXPECT().Due(ctx, testNow, 10).Return([]models.QueueEntry{entry}, nil)
	gateway.EXPECT().PushFile(ctx, "/shop-sync/list_a.json", gomock.Any()).Return(ErrRemoteUnavailable)
	repo.EXPECT().MarkFailed(ctx, "e1", 2, ErrRemoteUnavailable.Error(), testNow.Add(2*time.Second)).Return(nil)

	delivered, err := q.Drain(ctx)

	require.NoError(t, err)
	assert.Zero(t, delivered)
}

func TestWriteQueue_Drain_DropsAfterMaxAttempts(t *testing.T) {
	q, repo, gateway := newTestWriteQueue(t)
	ctx := context.Background()

	entry := models.QueueEntry{ID: "e1", Collection: CollectionShoppingLists, ItemID: "a", Payload: json.RawMessage(`{}`), Attempts: 2}

	gateway.EXPECT().Online().Return(true)
	repo.EXPECT().Due(ctx, testNow, 10).Return([]models.QueueEntry{entry}, nil)
	gateway.EXPECT().PushFile(ctx, gomock.Any(), gomock.Any()).Return(ErrRemoteUnavailable)
	repo.EXPECT().MarkDone(ctx, "e1").Return(nil)

	delivered, err := q.Drain(ctx)

	require.NoError(t, err)
	assert.Zero(t, delivered)
}

func TestWriteQueue_Drain_DropsUnknownCollection(t *testing.T) {
	q, repo, gateway := newTestWriteQueue(t)
	ctx := context.Background()

	gateway.EXPECT().Online().Return(true)
	repo.EXPECT().Due(ctx, testNow, 10).Return([]models.QueueEntry{{ID: "e1", Collection: "legacy", ItemID: "x"}}, nil)
	repo.EXPECT().MarkDone(ctx, "e1").Return(nil)

	delivered, err := q.Drain(ctx)

	require.NoError(t, err)
	assert.Zero(t, delivered)
}

func TestWriteQueue_Drain_RepositoryError(t *testing.T) {
	q, repo, gateway := newTestWriteQueue(t)
	ctx := context.Background()

	gateway.EXPECT().Online().Return(true)
	repo.EXPECT().Due(ctx, testNow, 10).Return(nil, assert.AnError)

	_, err := q.Drain(ctx)

	assert.ErrorIs(t, err, assert.AnError)
}

func TestWriteQueue_Backoff(t *testing.T) {
	q, _, _ := newTestWriteQueue(t)

	tests := []struct {
		attempts int
		want     time.Duration
	}{
		{attempts: 1, want: time.Second},
		{attempts: 2, want: 2 * time.Second},
		{attempts: 3, want: 4 * time.Second},
		{attempts: 9, want: 256 * time.Second},
		{attempts: 12, want: defaultBackoffCap},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, q.backoff(tt.attempts), "attempts=%d", tt.attempts)
	}
}

func TestWriteQueue_Pending(t *testing.T) {
	q, repo, _ := newTestWriteQueue(t)
	repo.EXPECT().Count(gomock.Any()).Return(4, nil)

	count, err := q.Pending(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 4, count)
}
