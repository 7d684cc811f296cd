package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/ontypehq/timbre/internal/audio"
	"github.com/ontypehq/timbre/internal/config"
	"github.com/ontypehq/timbre/internal/ui"
)

// Sample texts for the user to read aloud while recording a reference clip.
var sampleTexts = map[string]string{
	"en": "The quick brown fox jumps over the lazy dog. Technology is evolving faster than ever before, reshaping how we live and work.",
	"zh": "今天天气真不错，适合出去走走。技术正在以前所未有的速度发展，改变着我们的生活方式。",
	"ja": "今日はとても良い天気ですね。テクノロジーはかつてないスピードで進化しています。私たちの生活を大きく変えています。",
	"ko": "오늘 날씨가 정말 좋네요, 산책하기 딱 좋아요. 기술은 전례 없는 속도로 발전하며 우리의 생활 방식을 바꾸고 있습니다.",
	"de": "Das Wetter ist heute wirklich schön, perfekt für einen Spaziergang. Die Technologie entwickelt sich schneller als je zuvor.",
	"fr": "Le temps est vraiment magnifique aujourd'hui, parfait pour une promenade. La technologie évolue plus vite que jamais.",
	"es": "El tiempo está muy bonito hoy, perfecto para dar un paseo. La tecnología avanza más rápido que nunca.",
}

type RecordCmd struct {
	Duration int    `short:"d" default:"8" help:"Recording duration in seconds (3-10s recommended)"`
	Lang     string `short:"l" default:"en" help:"Language of the prompt text (en, zh, ja, ko, de, fr, es)"`
	Output   string `short:"o" help:"Output WAV path (default: ~/.timbre/refs/ref-<timestamp>.wav)"`
}

func (c *RecordCmd) Run(cfg *config.AppConfig) error {
	sample, ok := sampleTexts[c.Lang]
	if !ok {
		sample = sampleTexts["en"]
	}

	ui.Info("\n%s", ui.Key("Read this aloud:"))
	ui.Info("  %s\n", sample)
	ui.Info("Recording for %ds... %s", c.Duration, ui.Dim("(speak now)"))

	pcm, err := audio.Capture(time.Duration(c.Duration) * time.Second)
	if err != nil {
		return fmt.Errorf("record: %w", err)
	}
	if len(pcm) == 0 {
		return fmt.Errorf("record: no audio captured")
	}

	out := c.Output
	if out == "" {
		out = filepath.Join(cfg.RefsDir(), fmt.Sprintf("ref-%d.wav", time.Now().Unix()))
	}
	if err := audio.WriteWAV(out, pcm); err != nil {
		return fmt.Errorf("write: %w", err)
	}

	seconds := float64(len(pcm)/2) / float64(audio.SampleRate)
	ui.Success("Saved %s (%.1fs audio)", out, seconds)
	ui.Info("\n  Use it: %s", ui.Key(fmt.Sprintf("timbre clone -r %s --ref-text \"<what you read>\" -t \"Hello!\"", out)))

	return nil
}
