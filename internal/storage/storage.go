package storage

import (
	"context"
	"errors"
	"io"
	"time"
)

// Package storage reads source documents from an S3-compatible object store.
// Nothing is ever written back: generated papers are returned to the caller only.

var ErrObjectNotFound = errors.New("object not found")

// ObjectInfo contains basic information about an object in storage.
type ObjectInfo struct {
	Key          string
	Size         int64
	ETag         string
	ContentType  string
	LastModified time.Time
	Metadata     map[string]string
}

// Storage is a read-only, S3-compatible object storage client interface.
type Storage interface {
	// Get retrieves an object's content as a streaming reader alongside its info.
	// A missing key yields an error wrapping ErrObjectNotFound.
	Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error)
}
