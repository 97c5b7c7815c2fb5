package storage

import (
	"context"
	"errors"
	"io"
)

// ErrDisabled is returned by the store used when no bucket is configured.
var ErrDisabled = errors.New("object storage is not configured")

// BlobStore keeps uploaded files outside the database.
type BlobStore interface {
	// Put stores body under key and returns the public URL of the object.
	Put(ctx context.Context, key, contentType string, body io.Reader) (string, error)
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// Disabled rejects every write.
type Disabled struct{}

func (Disabled) Put(context.Context, string, string, io.Reader) (string, error) {
	return "", ErrDisabled
}

func (Disabled) Delete(context.Context, string) error { return ErrDisabled }

func IsDisabled(err error) bool { return errors.Is(err, ErrDisabled) }
