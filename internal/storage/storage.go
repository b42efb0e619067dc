// Package storage abstracts where document attachments live. The production
// backend is an S3-compatible bucket; everything streams, nothing touches
// local disk.
package storage

import (
	"context"
	"io"
	"time"
)

// PutOptions carries optional upload parameters. Size should be the exact
// byte count when known, -1 otherwise.
type PutOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo describes a stored attachment.
type ObjectInfo struct {
	Key          string
	Size         int64
	ContentType  string
	LastModified time.Time
}

// Storage stores and retrieves attachment binaries by key.
type Storage interface {
	// Put uploads the reader's content under key.
	Put(ctx context.Context, key string, r io.Reader, opt PutOptions) (ObjectInfo, error)
	// Get streams an attachment's content along with its info.
	Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error)
	// Delete removes an attachment by key.
	Delete(ctx context.Context, key string) error
}
