package cmd

import (
	"fmt"

	"github.com/ontypehq/timbre/internal/config"
	"github.com/ontypehq/timbre/internal/engine"
	"github.com/ontypehq/timbre/internal/ui"
)

type DesignCmd struct {
	Text     string `short:"t" required:"" help:"Text to synthesize"`
	Voice    string `short:"v" help:"Voice description string or path to a .txt file"`
	Language string `short:"l" help:"Language (default English)"`
	Output   string `short:"o" help:"Output WAV path (default output_design.wav)"`
	Play     bool   `help:"Play the audio after saving"`
	NoCache  bool   `help:"Skip the audio cache"`
}

func (c *DesignCmd) Run(cfg *config.AppConfig) error {
	// Voice design ships in a single size, so no size flag here.
	model, err := engine.ModelFor(engine.ModeDesign, "")
	if err != nil {
		return fmt.Errorf("model selection: %w", err)
	}

	voice := c.Voice
	if voice == "" {
		voice = cfg.Config.VoiceDescription
	}
	if voice == "" {
		voice = defaultVoiceDescription
	}
	voiceDesc, err := readFileOrString(voice)
	if err != nil {
		return fmt.Errorf("resolve voice: %w", err)
	}

	req, err := engine.BuildRequest(engine.Request{
		Mode:     engine.ModeDesign,
		Model:    model,
		Text:     c.Text,
		Voice:    voiceDesc,
		Language: language(cfg, c.Language),
	})
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	ui.Info("%s %s %s", ui.Dim("mode"), ui.Key("design"), ui.Dim("("+model+")"))
	ui.Info("%s %s", ui.Dim("voice"), ui.Dim(truncate(voiceDesc, 80)))

	return synthesize(cfg, req, outputPath(c.Output, "output_design.wav"), c.Play, c.NoCache)
}
