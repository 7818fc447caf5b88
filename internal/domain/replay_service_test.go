package domain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voicereplay/voice-replay/internal/ports"
)

type fakeClipRepo struct {
	clips map[string]ports.Clip
}

func newFakeClipRepo() *fakeClipRepo {
	return &fakeClipRepo{clips: map[string]ports.Clip{}}
}

func (f *fakeClipRepo) Create(_ context.Context, c ports.Clip) error {
	f.clips[c.ID] = c
	return nil
}

func (f *fakeClipRepo) List(context.Context) ([]ports.Clip, error) {
	var out []ports.Clip
	for _, c := range f.clips {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeClipRepo) Get(_ context.Context, id string) (ports.Clip, error) {
	c, ok := f.clips[id]
	if !ok {
		return ports.Clip{}, errors.New("clip not found")
	}
	return c, nil
}

func (f *fakeClipRepo) Delete(_ context.Context, id string) error {
	delete(f.clips, id)
	return nil
}

type fakeStorage struct {
	saved map[string][]byte
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{saved: map[string][]byte{}}
}

func (f *fakeStorage) ObjectKey(kind, clipID, filename string) string {
	return fmt.Sprintf("%s/%s_%s", kind, clipID, filename)
}

func (f *fakeStorage) SaveClip(_ context.Context, key string, r io.Reader, _ int64, _ string) (string, error) {
	b, _ := io.ReadAll(r)
	f.saved[key] = b
	return "https://cdn.example/" + key, nil
}

func (f *fakeStorage) OpenClip(context.Context, string) (io.ReadCloser, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeStorage) DeleteClip(_ context.Context, key string) error {
	delete(f.saved, key)
	return nil
}

type fakePlayers struct {
	played []string
	err    error
}

func (f *fakePlayers) List(context.Context) ([]ports.MediaPlayer, error) { return nil, nil }

func (f *fakePlayers) Play(_ context.Context, entityID, mediaURL, _ string) error {
	f.played = append(f.played, entityID+" "+mediaURL)
	return f.err
}

type fakeSynth struct {
	audio []byte
}

func (f *fakeSynth) Synthesize(context.Context, string, string) ([]byte, string, error) {
	return f.audio, "audio/mpeg", nil
}

type fakeConverter struct {
	prepends []time.Duration
}

func (f *fakeConverter) ToMP3(_ context.Context, r io.Reader, prepend time.Duration) ([]byte, error) {
	f.prepends = append(f.prepends, prepend)
	b, _ := io.ReadAll(r)
	return append([]byte("mp3:"), b...), nil
}

type fakeNotifier struct {
	ops []string
}

func (f *fakeNotifier) Notify(_ context.Context, op string, _ error, _ string) error {
	f.ops = append(f.ops, op)
	return nil
}

type replayFixture struct {
	repo     *fakeClipRepo
	storage  *fakeStorage
	players  *fakePlayers
	conv     *fakeConverter
	notifier *fakeNotifier
	svc      ports.ReplayService
}

func newReplayFixture(t *testing.T) *replayFixture {
	t.Helper()
	f := &replayFixture{
		repo:     newFakeClipRepo(),
		storage:  newFakeStorage(),
		players:  &fakePlayers{},
		conv:     &fakeConverter{},
		notifier: &fakeNotifier{},
	}
	f.svc = NewReplayService(
		f.repo, f.storage, f.players,
		&fakeSynth{audio: []byte("tts-audio")},
		f.conv, f.notifier, DefaultReplayOptions(),
	)
	return f
}

func TestUploadAndPlay(t *testing.T) {
	f := newReplayFixture(t)

	clip, err := f.svc.UploadAndPlay(context.Background(), ports.UploadInput{
		EntityID:    "media_player.kitchen",
		Filename:    "recording.webm",
		ContentType: "audio/webm",
		Audio:       bytesReader("raw"),
	})
	require.NoError(t, err)

	assert.Equal(t, ports.ClipKindRecording, clip.Kind)
	assert.Equal(t, "audio/mpeg", clip.ContentType)
	assert.NotEmpty(t, clip.ID)
	assert.Contains(t, clip.URL, "https://cdn.example/")

	require.Len(t, f.players.played, 1)
	assert.Contains(t, f.players.played[0], "media_player.kitchen")

	// Plain speaker: no silence pad.
	assert.Equal(t, []time.Duration{0}, f.conv.prepends)

	stored, err := f.repo.Get(context.Background(), clip.ID)
	require.NoError(t, err)
	assert.Equal(t, clip.StorageKey, stored.StorageKey)
}

func TestUploadAndPlaySonosGetsSilencePad(t *testing.T) {
	f := newReplayFixture(t)

	_, err := f.svc.UploadAndPlay(context.Background(), ports.UploadInput{
		EntityID: "media_player.sonos_living",
		Filename: "recording.webm",
		Audio:    bytesReader("raw"),
	})
	require.NoError(t, err)
	assert.Equal(t, []time.Duration{3 * time.Second}, f.conv.prepends)
}

func TestUploadRequiresEntity(t *testing.T) {
	f := newReplayFixture(t)
	_, err := f.svc.UploadAndPlay(context.Background(), ports.UploadInput{Audio: bytesReader("raw")})
	assert.Error(t, err)
}

func TestSynthesizeAndPlay(t *testing.T) {
	f := newReplayFixture(t)

	clip, err := f.svc.SynthesizeAndPlay(context.Background(), "Abendessen ist fertig", "openai", "media_player.kitchen")
	require.NoError(t, err)

	assert.Equal(t, ports.ClipKindTTS, clip.Kind)
	require.NotNil(t, clip.Text)
	assert.Equal(t, "Abendessen ist fertig", *clip.Text)

	// Non-sonos target: tts audio goes out unconverted.
	assert.Empty(t, f.conv.prepends)
	require.Len(t, f.players.played, 1)
}

func TestSynthesizeAndPlaySonosPadsAudio(t *testing.T) {
	f := newReplayFixture(t)

	_, err := f.svc.SynthesizeAndPlay(context.Background(), "hallo", "openai", "media_player.sonos_living")
	require.NoError(t, err)
	assert.Equal(t, []time.Duration{3 * time.Second}, f.conv.prepends)
}

func TestPlayFailureNotifies(t *testing.T) {
	f := newReplayFixture(t)
	f.players.err = errors.New("speaker offline")

	_, err := f.svc.UploadAndPlay(context.Background(), ports.UploadInput{
		EntityID: "media_player.kitchen",
		Filename: "recording.webm",
		Audio:    bytesReader("raw"),
	})
	require.Error(t, err)
	assert.Contains(t, f.notifier.ops, "play")
}

func TestReplayStoredClip(t *testing.T) {
	f := newReplayFixture(t)

	clip, err := f.svc.UploadAndPlay(context.Background(), ports.UploadInput{
		EntityID: "media_player.kitchen",
		Filename: "recording.webm",
		Audio:    bytesReader("raw"),
	})
	require.NoError(t, err)

	require.NoError(t, f.svc.Replay(context.Background(), clip.ID, "media_player.bedroom"))
	require.Len(t, f.players.played, 2)
	assert.Contains(t, f.players.played[1], "media_player.bedroom")

	assert.Error(t, f.svc.Replay(context.Background(), "missing", "media_player.bedroom"))
}

func bytesReader(s string) io.Reader {
	return strings.NewReader(s)
}
