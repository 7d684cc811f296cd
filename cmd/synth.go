package cmd

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ontypehq/timbre/internal/audio"
	"github.com/ontypehq/timbre/internal/config"
	"github.com/ontypehq/timbre/internal/engine"
	"github.com/ontypehq/timbre/internal/ui"
)

const (
	defaultLanguage         = "English"
	defaultVoiceDescription = "A warm, friendly female voice with clear enunciation."

	synthTimeout = 10 * time.Minute
)

// Synthesizer is the narrow surface the commands need from the inference
// daemon: one fully validated request in, PCM chunks out.
type Synthesizer interface {
	Synthesize(ctx context.Context, req engine.Request, onAudio func([]byte)) error
}

// swapped out by tests
var newSynthesizer = func(cfg *config.AppConfig) Synthesizer {
	return engine.NewClient(cfg.Config.EngineURL)
}

// synthesize runs the back half of every synthesis command: cache probe,
// engine stream, WAV write, optional playback. The request must already have
// passed engine.BuildRequest. The output file is only written after the full
// take is in memory, so an aborted run leaves nothing behind.
func synthesize(cfg *config.AppConfig, req engine.Request, outputPath string, play, noCache bool) error {
	cachePath := filepath.Join(cfg.CacheDir(), cacheKey(req)+".pcm")
	if !noCache {
		if pcm, err := os.ReadFile(cachePath); err == nil {
			ui.Info("%s", ui.Dim("cached"))
			return deliver(pcm, outputPath, play, 0)
		}
	}

	var buf bytes.Buffer
	var player *audio.StreamPlayer
	if play {
		player = audio.NewStreamPlayer()
	}

	ctx, cancel := context.WithTimeout(context.Background(), synthTimeout)
	defer cancel()

	t0 := time.Now()
	err := newSynthesizer(cfg).Synthesize(ctx, req, func(pcm []byte) {
		if buf.Len() == 0 {
			ui.Info("%s %s", ui.Dim("first audio"), ui.Dim(time.Since(t0).Round(time.Millisecond).String()))
		}
		buf.Write(pcm)
		if player != nil {
			player.Write(pcm)
		}
	})
	if player != nil {
		player.Close()
	}
	if err != nil {
		return fmt.Errorf("inference: %w", err)
	}
	if buf.Len() == 0 {
		return errors.New("inference: no audio generated")
	}

	if !noCache {
		os.WriteFile(cachePath, buf.Bytes(), 0644)
	}

	return deliver(buf.Bytes(), outputPath, false, time.Since(t0))
}

func deliver(pcm []byte, outputPath string, play bool, elapsed time.Duration) error {
	if play {
		player := audio.NewStreamPlayer()
		player.Write(pcm)
		player.Close()
	}

	if err := audio.WriteWAV(outputPath, pcm); err != nil {
		return fmt.Errorf("write: %w", err)
	}

	seconds := float64(len(pcm)/2) / float64(audio.SampleRate)
	if elapsed > 0 {
		ui.Success("Saved %s (%.1fs audio, generated in %.1fs)", outputPath, seconds, elapsed.Seconds())
	} else {
		ui.Success("Saved %s (%.1fs audio)", outputPath, seconds)
	}
	return nil
}

// cacheKey hashes every request field that affects the audio.
func cacheKey(req engine.Request) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s:%s:%s:%s:%s:%s:%s:%s",
		req.Mode, req.Model, req.Voice, req.Speaker, req.Instruct, req.Language, req.RefText, req.Text)
	if req.RefAudio != nil {
		h.Write(audio.SamplesToPCM(req.RefAudio.Samples))
	}
	return hex.EncodeToString(h.Sum(nil))
}

func outputPath(flag, fallback string) string {
	if flag != "" {
		return flag
	}
	return fallback
}

func language(cfg *config.AppConfig, flag string) string {
	if flag != "" {
		return flag
	}
	if cfg.Config.Language != "" {
		return cfg.Config.Language
	}
	return defaultLanguage
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "…"
}
