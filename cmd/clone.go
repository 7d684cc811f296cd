package cmd

import (
	"fmt"

	"github.com/ontypehq/timbre/internal/audio"
	"github.com/ontypehq/timbre/internal/config"
	"github.com/ontypehq/timbre/internal/engine"
	"github.com/ontypehq/timbre/internal/ui"
)

type CloneCmd struct {
	Text      string `short:"t" required:"" help:"Text to synthesize"`
	RefAudio  string `short:"r" required:"" help:"Path to the reference WAV file"`
	RefText   string `required:"" help:"Transcript of the reference audio"`
	Output    string `short:"o" help:"Output WAV path (default output_clone.wav)"`
	ModelSize string `default:"1.7B" enum:"0.6B,1.7B" help:"Model size"`
	Play      bool   `help:"Play the audio after saving"`
	NoCache   bool   `help:"Skip the audio cache"`
}

func (c *CloneCmd) Run(cfg *config.AppConfig) error {
	model, err := engine.ModelFor(engine.ModeClone, engine.ModelSize(c.ModelSize))
	if err != nil {
		return fmt.Errorf("model selection: %w", err)
	}

	clip, err := audio.LoadReference(c.RefAudio)
	if err != nil {
		return fmt.Errorf("reference audio: %w", err)
	}
	for _, w := range audio.Advisories(clip) {
		ui.Warn("%s", w)
	}

	req, err := engine.BuildRequest(engine.Request{
		Mode:     engine.ModeClone,
		Model:    model,
		Text:     c.Text,
		RefAudio: clip,
		RefText:  c.RefText,
	})
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	ui.Info("%s %s %s", ui.Dim("mode"), ui.Key("clone"), ui.Dim("("+model+")"))
	ui.Info("%s %s %s", ui.Dim("reference"), ui.Key(c.RefAudio), ui.Dim(fmt.Sprintf("%.1fs", clip.Duration().Seconds())))

	if err := synthesize(cfg, req, outputPath(c.Output, "output_clone.wav"), c.Play, c.NoCache); err != nil {
		return err
	}

	cfg.State.LastModelSize = c.ModelSize
	cfg.SaveState()

	return nil
}
