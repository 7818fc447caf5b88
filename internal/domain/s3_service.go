package domain

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/voicereplay/voice-replay/internal/ports"
)

type storageService struct {
	client ports.StorageClient
}

func NewStorageService(client ports.StorageClient) ports.StorageService {
	return &storageService{client: client}
}

// ObjectKey builds kind/date/id_filename, unguessable through the clip id.
func (s *storageService) ObjectKey(kind, clipID, filename string) string {
	date := time.Now().Format("2006-01-02")
	clean := filepath.Base(filename)
	return fmt.Sprintf("%s/%s/%s_%s", kind, date, clipID, clean)
}

func (s *storageService) SaveClip(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error) {
	if key == "" {
		return "", fmt.Errorf("storage key required")
	}
	return s.client.PutObject(ctx, key, r, size, contentType)
}

func (s *storageService) OpenClip(ctx context.Context, key string) (io.ReadCloser, error) {
	return s.client.GetObject(ctx, key)
}

func (s *storageService) DeleteClip(ctx context.Context, key string) error {
	return s.client.RemoveObject(ctx, key)
}
