package client

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-shop-sync/internal/adapter"
	"github.com/MKhiriev/go-shop-sync/internal/config"
	"github.com/MKhiriev/go-shop-sync/internal/logger"
	"github.com/MKhiriev/go-shop-sync/internal/service"
	"github.com/MKhiriev/go-shop-sync/internal/store"
	"github.com/MKhiriev/go-shop-sync/internal/workers"
	"github.com/MKhiriev/go-shop-sync/models"
)

type App struct {
	services *service.ClientServices
	storages *store.ClientStorages

	queueWorker *workers.Periodic
	syncWorker  *workers.Periodic
	workers     *workers.Workers

	logger *logger.Logger
}

// SyncReport summarizes one Sync call.
type SyncReport struct {
	Online    bool
	Merge     models.MergeResult
	Delivered int
	Pending   int
}

// NewApp opens the local cache and builds the client. Without an adapter
// address the client never goes online.
func NewApp(ctx context.Context, cfg *config.ClientConfig, logger *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	var remote adapter.RemoteStore
	if cfg.Adapter.HTTPAddress != "" {
		remote, err = adapter.NewHTTPRemoteStore(cfg.Adapter, logger)
		if err != nil {
			_ = storages.Close()
			return nil, fmt.Errorf("create remote adapter: %w", err)
		}
	}

	return newApp(storages, remote, cfg, logger), nil
}

func newApp(storages *store.ClientStorages, remote adapter.RemoteStore, cfg *config.ClientConfig, logger *logger.Logger) *App {
	services := service.NewClientServices(storages, remote, cfg, logger)

	a := &App{
		services: services,
		storages: storages,
		logger:   logger,
	}
	a.queueWorker = workers.NewQueueWorker(services.Queue, cfg.Workers.QueueInterval, logger)
	a.syncWorker = workers.NewIndexSyncWorker(services.Remote, cfg.Workers.SyncInterval, a.indexChanged, logger)
	a.workers = workers.NewWorkers(a.queueWorker, a.syncWorker)

	return a
}

func (a *App) indexChanged(index models.ListsIndex) {
	a.logger.Info().Int("lists", len(index)).Msg("lists index changed remotely")
}

// Online reports whether the client has a bearer token.
func (a *App) Online() bool {
	return a.services.Gateway.Online()
}

// Lists returns the provider matching the current mode: remote when online,
// local staging otherwise.
func (a *App) Lists() service.ShoppingListProvider {
	return a.services.Lists()
}

// Remote returns the remote provider for the operations only it offers.
func (a *App) Remote() service.RemoteListProvider {
	return a.services.Remote
}

func (a *App) Gateway() service.StorageGateway {
	return a.services.Gateway
}

// Start merges local staging lists when online and launches the background
// workers. A failed merge is logged; the local lists stay for the next try.
func (a *App) Start(ctx context.Context) {
	if a.Online() {
		if _, err := a.services.Remote.MergeLocalListsWithRemote(ctx); err != nil {
			a.logger.Err(err).Msg("merge on start failed")
		}
	}

	a.workers.Run(ctx)
}

// Sync runs one full cycle in the foreground: merge, queue delivery and an
// index refresh.
func (a *App) Sync(ctx context.Context) (SyncReport, error) {
	report := SyncReport{Online: a.Online()}

	if report.Online {
		merge, err := a.services.Remote.MergeLocalListsWithRemote(ctx)
		report.Merge = merge
		if err != nil {
			return report, err
		}

		report.Delivered, err = a.services.Queue.Drain(ctx)
		if err != nil {
			return report, fmt.Errorf("deliver queued writes: %w", err)
		}

		if err = a.syncWorker.Trigger(ctx); err != nil {
			return report, err
		}
	}

	pending, err := a.services.Queue.Pending(ctx)
	if err != nil {
		return report, err
	}
	report.Pending = pending

	return report, nil
}

// Flush delivers due queued writes when online and returns how many were
// delivered.
func (a *App) Flush(ctx context.Context) (int, error) {
	if !a.Online() {
		return 0, nil
	}

	delivered, err := a.services.Queue.Drain(ctx)
	if err != nil {
		return delivered, fmt.Errorf("deliver queued writes: %w", err)
	}
	return delivered, nil
}

// Stop halts the workers, waits for background syncs and pushes, and closes
// the local cache.
func (a *App) Stop() error {
	a.workers.Stop()
	a.services.Tasks.Wait()

	return a.storages.Close()
}

// Run implements Client. It starts the app and blocks until SIGTERM, SIGINT
// or SIGQUIT.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	a.Start(ctx)
	a.logger.Info().Bool("online", a.Online()).Msg("client started")

	<-ctx.Done()

	if err := a.Stop(); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("stop client: %w", err)
	}
	a.logger.Info().Msg("client stopped")

	return nil
}
