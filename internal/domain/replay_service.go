package domain

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/voicereplay/voice-replay/internal/convert"
	"github.com/voicereplay/voice-replay/internal/notify"
	"github.com/voicereplay/voice-replay/internal/players"
	"github.com/voicereplay/voice-replay/internal/ports"
)

// Synthesizer is the slice of the speech service the replay flow
// needs.
type Synthesizer interface {
	Synthesize(ctx context.Context, engine, text string) ([]byte, string, error)
}

type ReplayOptions struct {
	// PrependSilence pads clips heading to a Sonos speaker in
	// silence mode so the start is not cut off.
	PrependSilence time.Duration
	SonosMode      players.AnnouncementMode
}

func DefaultReplayOptions() ReplayOptions {
	return ReplayOptions{
		PrependSilence: 3 * time.Second,
		SonosMode:      players.AnnouncementSilence,
	}
}

type replayService struct {
	clips    ports.ClipRepo
	storage  ports.StorageService
	players  ports.PlayerService
	tts      Synthesizer
	conv     convert.AudioConverter
	notifier notify.Notificator
	opts     ReplayOptions
}

func NewReplayService(
	clips ports.ClipRepo,
	storage ports.StorageService,
	playerSvc ports.PlayerService,
	tts Synthesizer,
	conv convert.AudioConverter,
	notifier notify.Notificator,
	opts ReplayOptions,
) ports.ReplayService {
	return &replayService{
		clips:    clips,
		storage:  storage,
		players:  playerSvc,
		tts:      tts,
		conv:     conv,
		notifier: notifier,
		opts:     opts,
	}
}

func (s *replayService) UploadAndPlay(ctx context.Context, in ports.UploadInput) (ports.Clip, error) {
	if in.EntityID == "" {
		return ports.Clip{}, fmt.Errorf("entity_id required")
	}

	mp3, err := s.conv.ToMP3(ctx, in.Audio, s.prependFor(in.EntityID))
	if err != nil {
		s.notifier.Notify(ctx, "convert", err, "upload "+in.Filename)
		return ports.Clip{}, err
	}

	clip, err := s.storeClip(ctx, ports.ClipKindRecording, in.Filename, mp3, nil)
	if err != nil {
		return ports.Clip{}, err
	}

	if err := s.players.Play(ctx, in.EntityID, clip.URL, clip.ContentType); err != nil {
		s.notifier.Notify(ctx, "play", err, "entity "+in.EntityID)
		return clip, err
	}
	return clip, nil
}

func (s *replayService) SynthesizeAndPlay(ctx context.Context, text, engine, entityID string) (ports.Clip, error) {
	if entityID == "" {
		return ports.Clip{}, fmt.Errorf("entity_id required")
	}

	audio, _, err := s.tts.Synthesize(ctx, engine, text)
	if err != nil {
		s.notifier.Notify(ctx, "tts", err, "engine "+engine)
		return ports.Clip{}, err
	}

	// TTS output is already mp3; run it through ffmpeg only when a
	// silence pad is needed.
	if pad := s.prependFor(entityID); pad > 0 {
		audio, err = s.conv.ToMP3(ctx, bytes.NewReader(audio), pad)
		if err != nil {
			s.notifier.Notify(ctx, "convert", err, "tts pad")
			return ports.Clip{}, err
		}
	}

	clip, err := s.storeClip(ctx, ports.ClipKindTTS, "speech.mp3", audio, &text)
	if err != nil {
		return ports.Clip{}, err
	}

	if err := s.players.Play(ctx, entityID, clip.URL, clip.ContentType); err != nil {
		s.notifier.Notify(ctx, "play", err, "entity "+entityID)
		return clip, err
	}
	return clip, nil
}

func (s *replayService) Replay(ctx context.Context, clipID, entityID string) error {
	clip, err := s.clips.Get(ctx, clipID)
	if err != nil {
		return err
	}
	if err := s.players.Play(ctx, entityID, clip.URL, clip.ContentType); err != nil {
		s.notifier.Notify(ctx, "replay", err, "clip "+clipID)
		return err
	}
	return nil
}

func (s *replayService) storeClip(ctx context.Context, kind, filename string, audio []byte, text *string) (ports.Clip, error) {
	id := uuid.New().String()
	key := s.storage.ObjectKey(kind, id, filename)

	url, err := s.storage.SaveClip(ctx, key, bytes.NewReader(audio), int64(len(audio)), "audio/mpeg")
	if err != nil {
		s.notifier.Notify(ctx, "store", err, "key "+key)
		return ports.Clip{}, err
	}

	clip := ports.Clip{
		ID:          id,
		Kind:        kind,
		Filename:    filename,
		ContentType: "audio/mpeg",
		SizeBytes:   int64(len(audio)),
		StorageKey:  key,
		URL:         url,
		Text:        text,
		CreatedAt:   time.Now(),
	}
	if err := s.clips.Create(ctx, clip); err != nil {
		s.notifier.Notify(ctx, "record clip", err, "id "+id)
		return ports.Clip{}, err
	}
	return clip, nil
}

// prependFor decides the leading-silence pad for the target
// speaker. Only Sonos in silence mode gets one.
func (s *replayService) prependFor(entityID string) time.Duration {
	if players.IsSonos(entityID) && s.opts.SonosMode == players.AnnouncementSilence {
		return s.opts.PrependSilence
	}
	return 0
}
