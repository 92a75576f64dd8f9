package storage

import (
	"context"
	"fmt"
	"sync"
	"time"

	"vault-srv/config"
	"vault-srv/pkg/log"
	storagepkg "vault-srv/pkg/storage"
)

const (
	// defaultConnectTimeout is the maximum time to wait for initial connection
	defaultConnectTimeout = 5 * time.Second
)

var (
	instance storagepkg.Storage
	once     sync.Once
	mu       sync.RWMutex
	initErr  error // Stores the last initialization error to allow retry
)

// Connect initializes and connects to the document object store using
// singleton pattern. If connection fails, it can be retried by calling
// Connect() again.
func Connect(ctx context.Context, l log.Logger, cfg config.MinIOConfig) (storagepkg.Storage, error) {
	mu.Lock()
	defer mu.Unlock()

	// Return existing instance if already connected
	if instance != nil {
		return instance, nil
	}

	// Reset sync.Once if previous initialization failed to allow retry
	if initErr != nil {
		once = sync.Once{}
		initErr = nil
	}

	var err error
	once.Do(func() {
		connectCtx, cancel := context.WithTimeout(ctx, defaultConnectTimeout)
		defer cancel()

		impl, implErr := storagepkg.New(l, storagepkg.Config{
			Endpoint:  cfg.Endpoint,
			AccessKey: cfg.AccessKey,
			SecretKey: cfg.SecretKey,
			UseSSL:    cfg.UseSSL,
			Region:    cfg.Region,
			Bucket:    cfg.Bucket,
		})
		if implErr != nil {
			err = fmt.Errorf("failed to create storage client: %w", implErr)
			initErr = err
			return
		}

		// Verify the bucket is reachable
		if connectErr := impl.Connect(connectCtx); connectErr != nil {
			err = fmt.Errorf("failed to connect to storage: %w", connectErr)
			initErr = err
			return
		}

		instance = impl
	})

	return instance, err
}

// GetClient returns the singleton storage client instance.
// Panics if the client has not been initialized by calling Connect() first.
func GetClient() storagepkg.Storage {
	mu.RLock()
	defer mu.RUnlock()

	if instance == nil {
		panic("storage client not initialized. Call Connect() first")
	}
	return instance
}

// Disconnect closes the storage connection and resets the singleton instance.
func Disconnect(ctx context.Context) error {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		if err := instance.Close(); err != nil {
			return fmt.Errorf("failed to close storage connection: %w", err)
		}

		instance = nil
		initErr = nil
		once = sync.Once{} // Reset to allow reconnection
	}
	return nil
}

// HealthCheck performs a health check on the storage connection.
func HealthCheck(ctx context.Context) error {
	mu.RLock()
	defer mu.RUnlock()

	if instance == nil {
		return fmt.Errorf("storage client not initialized")
	}

	return instance.HealthCheck(ctx)
}

// IsConnected checks if the storage client instance exists.
// Use HealthCheck() to verify the connection is actually alive.
func IsConnected() bool {
	mu.RLock()
	defer mu.RUnlock()

	return instance != nil
}
