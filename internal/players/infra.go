package players

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	json "github.com/goccy/go-json"

	"github.com/voicereplay/voice-replay/internal/ports"
)

type haClient struct {
	base  string
	token string
	http  *http.Client
}

// NewHAClient talks to the Home Assistant REST API with a
// long-lived access token.
func NewHAClient() (ports.HAClient, error) {
	base := strings.TrimRight(os.Getenv("HASS_URL"), "/")
	token := os.Getenv("HASS_TOKEN")
	if base == "" || token == "" {
		return nil, fmt.Errorf("HASS_URL and HASS_TOKEN must be set")
	}

	return &haClient{
		base:  base,
		token: token,
		http:  &http.Client{Timeout: 15 * time.Second},
	}, nil
}

type haState struct {
	EntityID   string         `json:"entity_id"`
	State      string         `json:"state"`
	Attributes map[string]any `json:"attributes"`
}

func (c *haClient) MediaPlayers(ctx context.Context) ([]ports.MediaPlayer, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", c.base+"/api/states", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("list states: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("list states: %s", string(b))
	}

	var states []haState
	if err := json.NewDecoder(resp.Body).Decode(&states); err != nil {
		return nil, fmt.Errorf("decode states: %w", err)
	}

	var result []ports.MediaPlayer
	for _, s := range states {
		if !strings.HasPrefix(s.EntityID, "media_player.") {
			continue
		}

		name := s.EntityID
		if fn, ok := s.Attributes["friendly_name"].(string); ok && fn != "" {
			name = fn
		}
		volume := 0.0
		if v, ok := s.Attributes["volume_level"].(float64); ok {
			volume = v
		}

		result = append(result, ports.MediaPlayer{
			EntityID: s.EntityID,
			Name:     name,
			State:    s.State,
			Volume:   volume,
		})
	}
	return result, nil
}

func (c *haClient) CallService(ctx context.Context, domain, service string, data map[string]any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/api/services/%s/%s", c.base, domain, service)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("call %s.%s: %w", domain, service, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("call %s.%s: %s", domain, service, string(b))
	}
	return nil
}
