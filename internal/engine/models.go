// Package engine talks to the local Qwen3-TTS inference daemon and owns the
// request vocabulary: synthesis modes, model artifacts, and the speaker
// catalog.
package engine

import (
	"errors"
	"fmt"
)

// Mode selects which of the three synthesis paths a request takes.
type Mode string

const (
	ModeDesign Mode = "design"
	ModeCustom Mode = "custom"
	ModeClone  Mode = "clone"
)

// ModelSize is the parameter-count variant of a model artifact.
type ModelSize string

const (
	SizeSmall ModelSize = "0.6B"
	SizeLarge ModelSize = "1.7B"
)

// Model artifacts, one per (mode, size) pair. Voice design ships only as 1.7B.
const (
	ModelDesign      = "mlx-community/Qwen3-TTS-12Hz-1.7B-VoiceDesign-bf16"
	ModelCustomSmall = "mlx-community/Qwen3-TTS-12Hz-0.6B-CustomVoice-bf16"
	ModelCustomLarge = "mlx-community/Qwen3-TTS-12Hz-1.7B-CustomVoice-bf16"
	ModelBaseSmall   = "mlx-community/Qwen3-TTS-12Hz-0.6B-Base-bf16"
	ModelBaseLarge   = "mlx-community/Qwen3-TTS-12Hz-1.7B-Base-bf16"
)

var (
	ErrUnknownMode      = errors.New("unknown synthesis mode")
	ErrInvalidModelSize = errors.New("invalid model size")
)

var models = map[Mode]map[ModelSize]string{
	ModeCustom: {
		SizeSmall: ModelCustomSmall,
		SizeLarge: ModelCustomLarge,
	},
	ModeClone: {
		SizeSmall: ModelBaseSmall,
		SizeLarge: ModelBaseLarge,
	},
}

// ModelFor maps a mode and size to a concrete model artifact. Design has a
// single variant, so the size knob is ignored there. An empty size means the
// large default.
func ModelFor(mode Mode, size ModelSize) (string, error) {
	if mode == ModeDesign {
		return ModelDesign, nil
	}
	bySize, ok := models[mode]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
	if size == "" {
		size = SizeLarge
	}
	id, ok := bySize[size]
	if !ok {
		return "", fmt.Errorf("%w: %q (want %s or %s)", ErrInvalidModelSize, size, SizeSmall, SizeLarge)
	}
	return id, nil
}
