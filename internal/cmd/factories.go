package cmd

import (
	"context"

	"replog/internal/adapters/clock"
	"replog/internal/adapters/idgen"
	"replog/internal/adapters/storage"
	syncclient "replog/internal/adapters/sync"
	"replog/internal/config"
	"replog/internal/ports"
	"replog/internal/store"
)

// Container holds all dependencies for the application
type Container struct {
	Gateway *storage.Gateway
	Store   *store.SessionStore

	// Internal - for cleanup only
	local      *storage.SQLiteStore
	syncClient *syncclient.Client
}

// NewContainer creates a new Container with all dependencies wired.
// The sync replica is only attached when a sync URL is configured.
func NewContainer(settings *config.Settings) (*Container, error) {
	local, err := storage.NewSQLiteStore(config.GetDBPath(settings))
	if err != nil {
		return nil, err
	}

	var synced ports.KeyValueStore
	var syncClient *syncclient.Client
	if settings != nil && settings.SyncURL != "" {
		syncClient = syncclient.NewClient(settings.SyncURL)
		synced = syncClient
	}

	gateway := storage.NewGateway(local, synced)
	sessionStore := store.New(context.Background(), clock.NewSystem(), idgen.NewUUID(), gateway)

	return &Container{
		Gateway:    gateway,
		Store:      sessionStore,
		local:      local,
		syncClient: syncClient,
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.syncClient != nil {
		if err := c.syncClient.Close(); err != nil {
			return err
		}
	}
	if c.local != nil {
		return c.local.Close()
	}
	return nil
}
