package service

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-shop-sync/internal/config"
	"github.com/MKhiriev/go-shop-sync/internal/logger"
	"github.com/MKhiriev/go-shop-sync/internal/store"
	"github.com/MKhiriev/go-shop-sync/models"
)

const (
	testIndexPath = "/shop-sync/shopping-lists.json"
	testLocalIdx  = "LOCAL_SHOPPING_LISTS"
)

var testNow = time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC)

func testPaths() config.Paths {
	return config.Paths{
		AppFolder:        config.DefaultAppFolder,
		RemoteIndexPath:  config.DefaultRemoteIndexPath,
		RemoteListPrefix: config.DefaultRemoteListPrefix,
		LocalPrefix:      config.DefaultLocalPrefix,
		LocalIndexKey:    config.DefaultLocalIndexKey,
		LocalListPrefix:  config.DefaultLocalListPrefix,
	}
}

func fixedClock() time.Time {
	return testNow
}

func newTestClientStorages(t *testing.T) *store.ClientStorages {
	t.Helper()

	storages, err := store.NewClientStorages(context.Background(),
		config.ClientStorage{DSN: filepath.Join(t.TempDir(), "cache.db")}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	return storages
}

// syncRecorder collects the callbacks of one sync handle.
type syncRecorder[T any] struct {
	mu      sync.Mutex
	events  []string
	updates []T
	done    chan struct{}
	once    sync.Once
}

func newSyncRecorder[T any]() *syncRecorder[T] {
	return &syncRecorder[T]{done: make(chan struct{})}
}

func (r *syncRecorder[T]) onUpdate(v T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, "update")
	r.updates = append(r.updates, v)
}

func (r *syncRecorder[T]) onStatus(syncing bool) {
	r.mu.Lock()
	if syncing {
		r.events = append(r.events, "syncing")
	} else {
		r.events = append(r.events, "idle")
	}
	r.mu.Unlock()

	if !syncing {
		r.once.Do(func() { close(r.done) })
	}
}

func (r *syncRecorder[T]) wait(t *testing.T, tasks *Background) {
	t.Helper()

	select {
	case <-r.done:
	case <-time.After(5 * time.Second):
		t.Fatal("sync did not finish")
	}
	tasks.Wait()
}

func (r *syncRecorder[T]) snapshot() ([]string, []T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.events...), append([]T(nil), r.updates...)
}

// requireStatusDiscipline checks that the first event is "syncing", that no
// update precedes it and that exactly one terminal "idle" ends the sequence.
func requireStatusDiscipline(t *testing.T, events []string) {
	t.Helper()

	require.NotEmpty(t, events)
	require.Equal(t, "syncing", events[0], "events: %v", events)
	require.Equal(t, "idle", events[len(events)-1], "events: %v", events)

	idle := 0
	for _, e := range events {
		if e == "idle" {
			idle++
		}
	}
	require.Equal(t, 1, idle, "events: %v", events)
}

// immediateSync is a gateway sync handle that reports data at once.
func immediateSync(data []byte) models.SyncHandler[[]byte] {
	return func(onUpdate func([]byte), onSyncStatusChange func(bool)) {
		onSyncStatusChange(true)
		if data != nil {
			onUpdate(data)
		}
		onSyncStatusChange(false)
	}
}
