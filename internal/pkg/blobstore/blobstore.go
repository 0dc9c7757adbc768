package blobstore

import (
	"context"
	"io"
)

// Store is the external object-storage collaborator. Upload returns a
// retrievable URL plus an opaque handle usable to delete the asset later.
type Store interface {
	// Upload stores the object under key and returns its public URL and
	// deletion handle.
	Upload(ctx context.Context, key, contentType string, body io.Reader) (url, ref string, err error)

	// Delete removes a previously uploaded object by its handle.
	Delete(ctx context.Context, ref string) error
}
