package domain

import (
	"context"
	"log"

	"github.com/voicereplay/voice-replay/internal/ports"
)

type clipService struct {
	repo    ports.ClipRepo
	storage ports.StorageService
}

func NewClipService(repo ports.ClipRepo, storage ports.StorageService) ports.ClipService {
	return &clipService{repo: repo, storage: storage}
}

func (s *clipService) List(ctx context.Context) ([]ports.Clip, error) {
	return s.repo.List(ctx)
}

func (s *clipService) Get(ctx context.Context, id string) (ports.Clip, error) {
	return s.repo.Get(ctx, id)
}

// Delete removes the metadata row first; a dangling storage object
// is preferable to a row pointing at nothing.
func (s *clipService) Delete(ctx context.Context, id string) error {
	clip, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.storage.DeleteClip(ctx, clip.StorageKey); err != nil {
		log.Printf("[clips] orphaned object %s: %v", clip.StorageKey, err)
	}
	return nil
}
