package speech

import (
	"context"
	"fmt"
	"strings"
)

// TTSClient turns text into encoded audio. Engine internals stay
// behind the provider APIs.
type TTSClient interface {
	Synthesize(ctx context.Context, text string) (audio []byte, contentType string, err error)
}

type Service struct {
	engines map[string]TTSClient
	def     string
}

// NewService routes synthesis to the named engine, falling back to
// the default one.
func NewService(def string, engines map[string]TTSClient) *Service {
	return &Service{engines: engines, def: def}
}

func (s *Service) Synthesize(ctx context.Context, engine, text string) ([]byte, string, error) {
	if strings.TrimSpace(text) == "" {
		return nil, "", fmt.Errorf("empty text")
	}

	name := engine
	if name == "" || name == "auto" {
		name = s.def
	}
	client, ok := s.engines[name]
	if !ok {
		return nil, "", fmt.Errorf("unknown tts engine %q", name)
	}

	return client.Synthesize(ctx, text)
}

// Engines lists the configured engine names.
func (s *Service) Engines() []string {
	names := make([]string, 0, len(s.engines))
	for name := range s.engines {
		names = append(names, name)
	}
	return names
}
