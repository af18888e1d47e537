package storage

import (
	"context"
	"io"
)

// PhotoStore persists check-in photo evidence. Implementations must be
// safe for concurrent use; callers treat failures as non-fatal.
type PhotoStore interface {
	// Upload stores the photo under key and returns a public URL.
	Upload(ctx context.Context, key string, photo io.Reader) (string, error)

	// Delete removes a stored photo.
	Delete(ctx context.Context, key string) error

	// Exists checks whether a photo is stored under key.
	Exists(ctx context.Context, key string) (bool, error)
}
