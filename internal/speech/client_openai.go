package speech

import (
	"context"
	"io"
	"os"

	openai "github.com/sashabaranov/go-openai"
)

type OpenAIClient struct {
	client *openai.Client
	voice  openai.SpeechVoice
}

func NewOpenAIClient() *OpenAIClient {
	key := os.Getenv("OPENAI_API_KEY")
	if key == "" {
		panic("OPENAI_API_KEY not set")
	}

	voice := openai.SpeechVoice(os.Getenv("OPENAI_TTS_VOICE"))
	if voice == "" {
		voice = openai.VoiceAlloy
	}

	return &OpenAIClient{
		client: openai.NewClient(key),
		voice:  voice,
	}
}

func (c *OpenAIClient) Synthesize(ctx context.Context, text string) ([]byte, string, error) {
	resp, err := c.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model:          openai.TTSModel1,
		Input:          text,
		Voice:          c.voice,
		ResponseFormat: openai.SpeechResponseFormatMp3,
	})
	if err != nil {
		return nil, "", err
	}
	defer resp.Close()

	audio, err := io.ReadAll(resp)
	if err != nil {
		return nil, "", err
	}
	return audio, "audio/mpeg", nil
}
