package storage

import (
	"sync"

	"github.com/minio/minio-go/v7"

	"vault-srv/pkg/log"
)

// Config holds the connection settings for the document object store.
type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Region    string
	Bucket    string
}

// implStorage wraps the MinIO client for the documents bucket.
type implStorage struct {
	l           log.Logger
	minioClient *minio.Client
	config      Config

	mu        sync.RWMutex
	connected bool
}
