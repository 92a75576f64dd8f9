package storage

import (
	"context"
	"errors"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"vault-srv/pkg/log"
)

var (
	ErrMissingEndpoint = errors.New("storage: endpoint is required")
	ErrMissingBucket   = errors.New("storage: bucket is required")
)

// Storage mints short-lived retrieval URLs for vault documents. URLs are
// derived on demand and never persisted.
type Storage interface {
	Connect(ctx context.Context) error
	SignedViewURL(ctx context.Context, objectPath string, ttl time.Duration) (string, error)
	SignedDownloadURL(ctx context.Context, objectPath, fileName string, ttl time.Duration) (string, error)
	HealthCheck(ctx context.Context) error
	Close() error
}

// New creates a Storage backed by MinIO.
func New(l log.Logger, cfg Config) (Storage, error) {
	if cfg.Endpoint == "" {
		return nil, ErrMissingEndpoint
	}
	if cfg.Bucket == "" {
		return nil, ErrMissingBucket
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, err
	}

	return &implStorage{
		l:           l,
		minioClient: client,
		config:      cfg,
	}, nil
}
