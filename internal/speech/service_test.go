package speech

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTTS struct {
	audio []byte
	calls int
}

func (f *fakeTTS) Synthesize(context.Context, string) ([]byte, string, error) {
	f.calls++
	return f.audio, "audio/mpeg", nil
}

func TestSynthesizeRoutesToNamedEngine(t *testing.T) {
	a := &fakeTTS{audio: []byte("aaa")}
	b := &fakeTTS{audio: []byte("bbb")}
	s := NewService("openai", map[string]TTSClient{"openai": a, "elevenlabs": b})

	audio, ct, err := s.Synthesize(context.Background(), "elevenlabs", "hallo")
	require.NoError(t, err)
	assert.Equal(t, []byte("bbb"), audio)
	assert.Equal(t, "audio/mpeg", ct)
	assert.Zero(t, a.calls)
}

func TestSynthesizeAutoUsesDefault(t *testing.T) {
	a := &fakeTTS{audio: []byte("aaa")}
	s := NewService("openai", map[string]TTSClient{"openai": a})

	for _, engine := range []string{"", "auto"} {
		_, _, err := s.Synthesize(context.Background(), engine, "hallo")
		require.NoError(t, err)
	}
	assert.Equal(t, 2, a.calls)
}

func TestSynthesizeRejectsEmptyTextAndUnknownEngine(t *testing.T) {
	s := NewService("openai", map[string]TTSClient{"openai": &fakeTTS{}})

	_, _, err := s.Synthesize(context.Background(), "openai", "   ")
	assert.Error(t, err)

	_, _, err = s.Synthesize(context.Background(), "nope", "hallo")
	assert.Error(t, err)
}
