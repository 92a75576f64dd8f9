package redis

import (
	"context"
	"fmt"
	"sync"

	"vault-srv/config"
	pkgRedis "vault-srv/pkg/redis"
)

var (
	instance pkgRedis.IRedis
	mu       sync.RWMutex
)

// Connect initializes and returns a Redis client
func Connect(ctx context.Context, cfg config.RedisConfig) (pkgRedis.IRedis, error) {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance, nil
	}

	client, err := pkgRedis.New(pkgRedis.RedisConfig{
		Host:     cfg.Host,
		Port:     cfg.Port,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	instance = client
	return instance, nil
}

// GetClient returns the singleton Redis client instance.
// Panics if the client has not been initialized by calling Connect() first.
func GetClient() pkgRedis.IRedis {
	mu.RLock()
	defer mu.RUnlock()

	if instance == nil {
		panic("Redis client not initialized. Call Connect() first")
	}
	return instance
}

// HealthCheck pings Redis to verify the connection is alive.
func HealthCheck(ctx context.Context) error {
	mu.RLock()
	defer mu.RUnlock()

	if instance == nil {
		return fmt.Errorf("Redis client not initialized")
	}

	return instance.Ping(ctx)
}

// Disconnect closes the Redis connection
func Disconnect() error {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		err := instance.Close()
		instance = nil
		return err
	}
	return nil
}
