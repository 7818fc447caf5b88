package ports

import (
	"context"
	"time"
)

// Clip is one stored audio artifact, either a browser recording or a
// synthesized utterance.
type Clip struct {
	ID          string
	Kind        string // "recording" | "tts"
	Filename    string
	ContentType string
	SizeBytes   int64
	StorageKey  string
	URL         string
	Text        *string // original text for tts clips
	CreatedAt   time.Time
}

const (
	ClipKindRecording = "recording"
	ClipKindTTS       = "tts"
)

type ClipRepo interface {
	Create(ctx context.Context, clip Clip) error
	List(ctx context.Context) ([]Clip, error)
	Get(ctx context.Context, id string) (Clip, error)
	Delete(ctx context.Context, id string) error
}

type ClipService interface {
	List(ctx context.Context) ([]Clip, error)
	Get(ctx context.Context, id string) (Clip, error)
	Delete(ctx context.Context, id string) error
}
