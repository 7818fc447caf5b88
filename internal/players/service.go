package players

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/voicereplay/voice-replay/internal/ports"
)

type AnnouncementMode string

const (
	// AnnouncementSilence relies on leading silence baked into the
	// clip at conversion time.
	AnnouncementSilence AnnouncementMode = "silence"
	// AnnouncementVerbal plays a configured chime/announcement clip
	// before the actual one.
	AnnouncementVerbal AnnouncementMode = "announcement"
	// AnnouncementDisabled skips the prelude; faster but the start
	// of the clip may be cut off.
	AnnouncementDisabled AnnouncementMode = "disabled"
)

type Options struct {
	SonosMode          AnnouncementMode
	VolumeBoostEnabled bool
	VolumeBoost        float64
	AnnouncementURL    string
	// RestoreAfter schedules the sonos state restore; zero disables
	// it.
	RestoreAfter time.Duration
}

func DefaultOptions() Options {
	return Options{
		SonosMode:          AnnouncementSilence,
		VolumeBoostEnabled: true,
		VolumeBoost:        0.10,
		RestoreAfter:       30 * time.Second,
	}
}

type service struct {
	ha   ports.HAClient
	opts Options
}

func NewService(ha ports.HAClient, opts Options) ports.PlayerService {
	return &service{ha: ha, opts: opts}
}

func (s *service) List(ctx context.Context) ([]ports.MediaPlayer, error) {
	return s.ha.MediaPlayers(ctx)
}

func (s *service) Play(ctx context.Context, entityID, mediaURL, contentType string) error {
	players, err := s.ha.MediaPlayers(ctx)
	if err != nil {
		return err
	}

	var target *ports.MediaPlayer
	for i := range players {
		if players[i].EntityID == entityID {
			target = &players[i]
			break
		}
	}
	if target == nil {
		return fmt.Errorf("unknown media player %q", entityID)
	}

	if IsSonos(entityID) {
		if err := s.sonosPrelude(ctx, target); err != nil {
			return err
		}
	}

	err = s.ha.CallService(ctx, "media_player", "play_media", map[string]any{
		"entity_id":          entityID,
		"media_content_id":   mediaURL,
		"media_content_type": contentType,
	})
	if err != nil {
		return err
	}

	if IsSonos(entityID) && s.opts.RestoreAfter > 0 {
		go s.restoreLater(entityID)
	}
	return nil
}

// sonosPrelude snapshots the speaker state, optionally boosts the
// volume and, in verbal mode, plays the announcement clip first.
func (s *service) sonosPrelude(ctx context.Context, target *ports.MediaPlayer) error {
	err := s.ha.CallService(ctx, "sonos", "snapshot", map[string]any{
		"entity_id": target.EntityID,
	})
	if err != nil {
		return err
	}

	if s.opts.VolumeBoostEnabled {
		err := s.ha.CallService(ctx, "media_player", "volume_set", map[string]any{
			"entity_id":    target.EntityID,
			"volume_level": boostedVolume(target.Volume, s.opts.VolumeBoost),
		})
		if err != nil {
			return err
		}
	}

	if s.opts.SonosMode == AnnouncementVerbal && s.opts.AnnouncementURL != "" {
		err := s.ha.CallService(ctx, "media_player", "play_media", map[string]any{
			"entity_id":          target.EntityID,
			"media_content_id":   s.opts.AnnouncementURL,
			"media_content_type": "audio/mpeg",
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *service) restoreLater(entityID string) {
	time.Sleep(s.opts.RestoreAfter)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	err := s.ha.CallService(ctx, "sonos", "restore", map[string]any{
		"entity_id": entityID,
	})
	if err != nil {
		log.Printf("[players] sonos restore %s: %v", entityID, err)
	}
}

func boostedVolume(current, boost float64) float64 {
	v := current + boost
	if v > 1.0 {
		return 1.0
	}
	return v
}

func IsSonos(entityID string) bool {
	return strings.Contains(strings.ToLower(entityID), "sonos")
}
