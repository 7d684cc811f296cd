package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ontypehq/timbre/internal/config"
	"github.com/ontypehq/timbre/internal/engine"
	"github.com/ontypehq/timbre/internal/ui"
)

type EngineCmd struct {
	Status EngineStatusCmd `cmd:"" default:"withargs" help:"Check the inference daemon"`
	Load   EngineLoadCmd   `cmd:"" help:"Prewarm a model on the daemon"`
}

type EngineStatusCmd struct{}

func (c *EngineStatusCmd) Run(cfg *config.AppConfig) error {
	client := engine.NewClient(cfg.Config.EngineURL)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	st, err := client.Health(ctx)
	if err != nil {
		ui.Error("Engine daemon is down")
		return fmt.Errorf("engine status: %w", err)
	}

	ui.Success("Engine daemon is up")
	ui.KV("Endpoint", client.BaseURL())
	ui.KV("Version", st.Version)
	if len(st.LoadedModels) > 0 {
		ui.KV("Loaded", strings.Join(st.LoadedModels, ", "))
	} else {
		ui.KV("Loaded", ui.Dim("no models yet"))
	}
	return nil
}

type EngineLoadCmd struct {
	Mode      string `arg:"" enum:"design,custom,clone" help:"Synthesis mode to prewarm"`
	ModelSize string `default:"1.7B" enum:"0.6B,1.7B" help:"Model size"`
}

func (c *EngineLoadCmd) Run(cfg *config.AppConfig) error {
	model, err := engine.ModelFor(engine.Mode(c.Mode), engine.ModelSize(c.ModelSize))
	if err != nil {
		return fmt.Errorf("model selection: %w", err)
	}

	ui.Info("%s %s", ui.Dim("loading"), ui.Key(model))

	// First load may download weights, give it room.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	client := engine.NewClient(cfg.Config.EngineURL)
	if err := client.LoadModel(ctx, model); err != nil {
		return fmt.Errorf("model load: %w", err)
	}

	ui.Success("Model ready: %s", model)
	return nil
}
