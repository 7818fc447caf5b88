package ports

import (
	"context"
	"io"
)

// Low-level object storage client.
type StorageClient interface {
	PutObject(ctx context.Context, key string, r io.Reader, size int64, contentType string) (publicURL string, err error)
	GetObject(ctx context.Context, key string) (io.ReadCloser, error)
	RemoveObject(ctx context.Context, key string) error
}

type StorageService interface {
	// ObjectKey builds the bucket path for a clip.
	ObjectKey(kind, clipID, filename string) string
	SaveClip(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error)
	OpenClip(ctx context.Context, key string) (io.ReadCloser, error)
	DeleteClip(ctx context.Context, key string) error
}
