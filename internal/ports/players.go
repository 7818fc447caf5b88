package ports

import "context"

// MediaPlayer mirrors a media_player entity exposed by Home
// Assistant.
type MediaPlayer struct {
	EntityID string  `json:"entity_id"`
	Name     string  `json:"name"`
	State    string  `json:"state"`
	Volume   float64 `json:"volume"`
}

// HAClient is the narrow slice of the Home Assistant REST API the
// server consumes. Home Assistant itself is an external
// collaborator; nothing of its platform behavior is reimplemented.
type HAClient interface {
	MediaPlayers(ctx context.Context) ([]MediaPlayer, error)
	CallService(ctx context.Context, domain, service string, data map[string]any) error
}

type PlayerService interface {
	List(ctx context.Context) ([]MediaPlayer, error)
	// Play sends the media URL to the entity, with Sonos
	// snapshot/volume handling where it applies.
	Play(ctx context.Context, entityID, mediaURL, contentType string) error
}
