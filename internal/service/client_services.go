package service

import (
	"github.com/MKhiriev/go-shop-sync/internal/adapter"
	"github.com/MKhiriev/go-shop-sync/internal/config"
	"github.com/MKhiriev/go-shop-sync/internal/logger"
	"github.com/MKhiriev/go-shop-sync/internal/store"
)

type ClientServices struct {
	Gateway StorageGateway
	Queue   WriteQueue
	Remote  RemoteListProvider
	Local   ShoppingListProvider
	Tasks   *Background
}

// NewClientServices wires the client side. remote may be nil for a client
// that never goes online.
func NewClientServices(storages *store.ClientStorages, remote adapter.RemoteStore, cfg *config.ClientConfig, logger *logger.Logger) *ClientServices {
	tasks := NewBackground(logger)
	gateway := NewStorageGateway(storages.Cache, remote, cfg.Gateway, cfg.Paths, tasks, logger)
	queue := NewWriteQueue(storages.Queue, gateway, cfg.Workers, cfg.Paths, logger)

	return &ClientServices{
		Gateway: gateway,
		Queue:   queue,
		Remote:  NewRemoteListProvider(gateway, queue, cfg.Paths, tasks, logger),
		Local:   NewLocalListProvider(gateway, cfg.Paths, logger),
		Tasks:   tasks,
	}
}

// Lists returns the remote provider while the gateway is online and the
// local staging provider otherwise.
func (s *ClientServices) Lists() ShoppingListProvider {
	if s.Gateway.Online() {
		return s.Remote
	}
	return s.Local
}
