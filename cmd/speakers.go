package cmd

import (
	"github.com/ontypehq/timbre/internal/config"
	"github.com/ontypehq/timbre/internal/engine"
	"github.com/ontypehq/timbre/internal/ui"
)

type SpeakersCmd struct{}

func (c *SpeakersCmd) Run(cfg *config.AppConfig) error {
	ui.Info("\n%s", ui.Key("Speakers"))
	ui.Info("%s", ui.Dim("  (use with: timbre custom --speaker <name> -t \"text\")"))
	for _, s := range engine.Speakers {
		ui.Info("  %-10s %s  %s", ui.Key(s.Name), ui.Dim(s.Gender), ui.Dim(s.Language))
	}

	if cfg.State.LastSpeaker != "" {
		ui.Info("")
		ui.KV("Last used", cfg.State.LastSpeaker)
	}
	return nil
}
