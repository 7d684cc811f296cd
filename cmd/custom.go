package cmd

import (
	"fmt"

	"github.com/ontypehq/timbre/internal/config"
	"github.com/ontypehq/timbre/internal/engine"
	"github.com/ontypehq/timbre/internal/ui"
)

type CustomCmd struct {
	Text      string `short:"t" required:"" help:"Text to synthesize"`
	Speaker   string `short:"s" help:"Speaker name (see: timbre speakers)"`
	Instruct  string `short:"i" help:"Style instruction string or path to a .txt file"`
	Language  string `short:"l" help:"Language (default English)"`
	Output    string `short:"o" help:"Output WAV path (default output_custom.wav)"`
	ModelSize string `default:"1.7B" enum:"0.6B,1.7B" help:"Model size"`
	Play      bool   `help:"Play the audio after saving"`
	NoCache   bool   `help:"Skip the audio cache"`
}

func (c *CustomCmd) Run(cfg *config.AppConfig) error {
	model, err := engine.ModelFor(engine.ModeCustom, engine.ModelSize(c.ModelSize))
	if err != nil {
		return fmt.Errorf("model selection: %w", err)
	}

	name := c.Speaker
	if name == "" {
		name = cfg.State.LastSpeaker
	}
	if name == "" {
		name = "Aiden" // default speaker
	}
	speaker, err := engine.LookupSpeaker(name)
	if err != nil {
		return fmt.Errorf("speaker lookup: %w", err)
	}

	instruct := ""
	if c.Instruct != "" {
		instruct, err = readFileOrString(c.Instruct)
		if err != nil {
			return fmt.Errorf("resolve instruct: %w", err)
		}
	}

	req, err := engine.BuildRequest(engine.Request{
		Mode:     engine.ModeCustom,
		Model:    model,
		Text:     c.Text,
		Speaker:  speaker.Name,
		Instruct: instruct,
		Language: language(cfg, c.Language),
	})
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	ui.Info("%s %s %s %s", ui.Dim("mode"), ui.Key("custom"), ui.Key(speaker.Name), ui.Dim("("+model+")"))
	if instruct != "" {
		ui.Info("%s %s", ui.Dim("instruct"), ui.Dim(truncate(instruct, 80)))
	}

	if err := synthesize(cfg, req, outputPath(c.Output, "output_custom.wav"), c.Play, c.NoCache); err != nil {
		return err
	}

	cfg.State.LastSpeaker = speaker.Name
	cfg.State.LastModelSize = c.ModelSize
	cfg.SaveState()

	return nil
}
