package convert

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFFmpegArgsSilenceFilter(t *testing.T) {
	tests := []struct {
		silence    time.Duration
		wantFilter string
	}{
		{0, "adelay=0:all=1,aresample=44100"},
		{1 * time.Second, "adelay=1000:all=1,aresample=44100"},
		{3 * time.Second, "adelay=3000:all=1,aresample=44100"},
		{5 * time.Second, "adelay=5000:all=1,aresample=44100"},
	}

	for _, tt := range tests {
		args := ffmpegArgs("/tmp/in.webm", "/tmp/out.mp3", int(tt.silence.Milliseconds()))

		var got string
		for i, a := range args {
			if a == "-af" {
				got = args[i+1]
			}
		}
		assert.Equal(t, tt.wantFilter, got)
	}
}

func TestFFmpegArgsOutputFormat(t *testing.T) {
	args := ffmpegArgs("/tmp/in.webm", "/tmp/out.mp3", 0)

	joined := ""
	for _, a := range args {
		joined += a + " "
	}
	assert.Contains(t, joined, "-ar 44100")
	assert.Contains(t, joined, "-ac 2")
	assert.Contains(t, joined, "-b:a 128k")
	assert.Contains(t, joined, "-f mp3")
	assert.Equal(t, "/tmp/out.mp3", args[len(args)-1])
}
