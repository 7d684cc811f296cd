package main

import (
	"os"

	"github.com/alecthomas/kong"

	"github.com/ontypehq/timbre/cmd"
	"github.com/ontypehq/timbre/internal/config"
	"github.com/ontypehq/timbre/internal/ui"
)

var cli struct {
	Design   cmd.DesignCmd   `cmd:"" help:"Generate speech from a natural-language voice description"`
	Custom   cmd.CustomCmd   `cmd:"" help:"Speak with a predefined speaker, optionally styled by an instruction"`
	Clone    cmd.CloneCmd    `cmd:"" help:"Clone the voice of a reference audio clip"`
	Speakers cmd.SpeakersCmd `cmd:"" help:"List predefined speakers"`
	Record   cmd.RecordCmd   `cmd:"" help:"Record a reference clip from the microphone"`
	Engine   cmd.EngineCmd   `cmd:"" help:"Inspect the local inference daemon"`
	Cache    cmd.CacheCmd    `cmd:"" help:"Manage the synthesized audio cache"`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("timbre"),
		kong.Description("Voice design, custom voices, and voice cloning — powered by Qwen3-TTS"),
		kong.UsageOnError(),
	)

	cfg, err := config.Load()
	if err != nil {
		ui.Error("Failed to load config: %v", err)
		os.Exit(1)
	}

	err = ctx.Run(cfg)
	ctx.FatalIfErrorf(err)
}
