package engine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ontypehq/timbre/internal/audio"
)

var (
	ErrMissingField   = errors.New("missing required field")
	ErrForbiddenField = errors.New("field not allowed")
)

// Request is a fully resolved synthesis request. Which fields may be set
// depends on Mode; BuildRequest enforces the contract.
type Request struct {
	Mode     Mode
	Model    string
	Text     string
	Voice    string      // design: natural-language voice description
	Speaker  string      // custom: catalog speaker name
	Instruct string      // custom: optional style instruction
	Language string      // design, custom
	RefAudio *audio.Clip // clone: normalized reference clip
	RefText  string      // clone: transcript of the reference clip
}

// BuildRequest validates the per-mode field contract. It runs before any
// engine traffic so an invalid request never triggers a model download.
func BuildRequest(r Request) (Request, error) {
	if r.Model == "" {
		return Request{}, missing("model")
	}
	if strings.TrimSpace(r.Text) == "" {
		return Request{}, missing("text")
	}

	switch r.Mode {
	case ModeDesign:
		if r.Voice == "" {
			return Request{}, missing("voice")
		}
		if r.Speaker != "" {
			return Request{}, forbidden("speaker", r.Mode)
		}
		if r.Instruct != "" {
			return Request{}, forbidden("instruct", r.Mode)
		}
		if r.RefAudio != nil || r.RefText != "" {
			return Request{}, forbidden("reference audio", r.Mode)
		}
	case ModeCustom:
		if r.Speaker == "" {
			return Request{}, missing("speaker")
		}
		if r.Voice != "" {
			return Request{}, forbidden("voice", r.Mode)
		}
		if r.RefAudio != nil || r.RefText != "" {
			return Request{}, forbidden("reference audio", r.Mode)
		}
	case ModeClone:
		if r.RefAudio == nil {
			return Request{}, missing("ref-audio")
		}
		if r.RefText == "" {
			return Request{}, missing("ref-text")
		}
		if r.Voice != "" {
			return Request{}, forbidden("voice", r.Mode)
		}
		if r.Speaker != "" {
			return Request{}, forbidden("speaker", r.Mode)
		}
		if r.Instruct != "" {
			return Request{}, forbidden("instruct", r.Mode)
		}
		if r.Language != "" {
			return Request{}, forbidden("language", r.Mode)
		}
	default:
		return Request{}, fmt.Errorf("%w: %q", ErrUnknownMode, r.Mode)
	}

	return r, nil
}

func missing(name string) error {
	return fmt.Errorf("%w: %s", ErrMissingField, name)
}

func forbidden(name string, mode Mode) error {
	return fmt.Errorf("%w in %s mode: %s", ErrForbiddenField, mode, name)
}
