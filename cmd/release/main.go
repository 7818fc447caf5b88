package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/voicereplay/voice-replay/internal/gitrepo"
	"github.com/voicereplay/voice-replay/internal/release"
	"github.com/voicereplay/voice-replay/internal/spin"
)

func main() {
	var configPath string
	pflag.StringVar(&configPath, "config", release.DefaultConfigPath, "release config file")
	pflag.Parse()

	cfg, err := release.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	git := gitrepo.NewClient(gitrepo.NewRunner("."))
	prompt := release.NewPrompter(os.Stdin, os.Stdout)
	orch := release.NewOrchestrator(git, cfg, prompt, spin.New(), os.Stdout)

	if err := orch.Run(context.Background()); err != nil {
		if errors.Is(err, release.ErrCancelled) {
			fmt.Println("release cancelled; nothing was pushed")
			return
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
