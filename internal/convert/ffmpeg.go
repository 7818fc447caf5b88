package convert

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"time"
)

type FFmpegConverter struct{}

func NewFFmpegConverter() *FFmpegConverter {
	return &FFmpegConverter{}
}

func (c *FFmpegConverter) ToMP3(ctx context.Context, audio io.Reader, prependSilence time.Duration) ([]byte, error) {
	buf, err := io.ReadAll(audio)
	if err != nil {
		return nil, err
	}

	tmpDir, err := os.MkdirTemp("", "audioconv-*")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(tmpDir)

	input := filepath.Join(tmpDir, "input.webm")
	if err := os.WriteFile(input, buf, 0644); err != nil {
		return nil, err
	}

	output := filepath.Join(tmpDir, "output.mp3")

	cmd := exec.CommandContext(ctx, "ffmpeg", ffmpegArgs(input, output, int(prependSilence.Milliseconds()))...)
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("ffmpeg: %w", err)
	}

	mp3, err := os.ReadFile(output)
	if err != nil {
		return nil, fmt.Errorf("ffmpeg produced no output: %w", err)
	}
	return mp3, nil
}

// ffmpegArgs builds the fixed transcode command: 44.1 kHz stereo
// 128k mp3 with the requested leading silence.
func ffmpegArgs(input, output string, silenceMs int) []string {
	afilter := fmt.Sprintf("adelay=%d:all=1,aresample=44100", silenceMs)
	return []string{
		"-hide_banner",
		"-loglevel",
		"error",
		"-i",
		input,
		"-af",
		afilter,
		"-ar",
		"44100",
		"-ac",
		"2",
		"-b:a",
		"128k",
		"-f",
		"mp3",
		"-y",
		output,
	}
}
