package ports

import (
	"context"
	"io"
)

// ObjectStorage is the asset host the portal uploads images to. Upload
// returns the object key; the public URL is assembled by the caller.
type ObjectStorage interface {
	Upload(ctx context.Context, bucket, objectName, contentType string, reader io.Reader, size int64) (string, error)
}
