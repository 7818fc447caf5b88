package convert

import (
	"context"
	"io"
	"time"
)

// AudioConverter normalizes uploaded audio for playback on home
// speakers. prependSilence pads the front so slow-starting players
// (Sonos) do not cut the clip off.
type AudioConverter interface {
	ToMP3(ctx context.Context, audio io.Reader, prependSilence time.Duration) ([]byte, error)
}
