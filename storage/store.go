package storage

import (
	"context"
	"errors"
	"io"
)

// ErrNotFound distinguishes a missing object from other backend failures;
// a DB row can outlive its object (see the download handler).
var ErrNotFound = errors.New("object not found in storage")

// Store persists attachment objects. Keys are relative paths like
// "incidencias/<stored-name>".
type Store interface {
	Save(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	Exists(ctx context.Context, key string) (bool, error)
	Delete(ctx context.Context, key string) error
}
