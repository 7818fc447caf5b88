package ports

import (
	"context"
	"io"
)

type UploadInput struct {
	EntityID    string
	Filename    string
	ContentType string
	Audio       io.Reader
}

// ReplayService is the core flow: take audio in, store it, play it
// on the selected media player.
type ReplayService interface {
	UploadAndPlay(ctx context.Context, in UploadInput) (Clip, error)
	SynthesizeAndPlay(ctx context.Context, text, engine, entityID string) (Clip, error)
	// Replay plays an already stored clip again.
	Replay(ctx context.Context, clipID, entityID string) error
}
