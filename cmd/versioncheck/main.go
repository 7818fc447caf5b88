package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/voicereplay/voice-replay/internal/release"
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

	v, readings, err := release.NewChecker(cfg.Files).Check()
	release.WriteReport(os.Stdout, readings)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	fmt.Printf("all declaration files agree: %s\n", v)
}
