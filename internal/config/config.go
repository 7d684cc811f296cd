package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

const appDir = ".timbre"

// Config holds user-set defaults, read from ~/.timbre/config.json.
type Config struct {
	EngineURL        string `json:"engine_url,omitempty"`
	Language         string `json:"language,omitempty"`
	VoiceDescription string `json:"voice_description,omitempty"`
}

// State remembers the last run so flags can be omitted next time.
type State struct {
	LastSpeaker   string `json:"last_speaker,omitempty"`
	LastModelSize string `json:"last_model_size,omitempty"`
}

type AppConfig struct {
	Config Config
	State  State
	Dir    string
}

func Dir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, appDir)
}

func Load() (*AppConfig, error) {
	dir := Dir()
	os.MkdirAll(dir, 0755)
	os.MkdirAll(filepath.Join(dir, "refs"), 0755)
	os.MkdirAll(filepath.Join(dir, "cache"), 0755)

	ac := &AppConfig{Dir: dir}

	if data, err := os.ReadFile(filepath.Join(dir, "config.json")); err == nil {
		json.Unmarshal(data, &ac.Config)
	}
	if data, err := os.ReadFile(filepath.Join(dir, "state.json")); err == nil {
		json.Unmarshal(data, &ac.State)
	}

	return ac, nil
}

func (ac *AppConfig) SaveConfig() error {
	return writeJSON(filepath.Join(ac.Dir, "config.json"), ac.Config)
}

func (ac *AppConfig) SaveState() error {
	return writeJSON(filepath.Join(ac.Dir, "state.json"), ac.State)
}

// CacheDir is where synthesized PCM is cached.
func (ac *AppConfig) CacheDir() string {
	return filepath.Join(ac.Dir, "cache")
}

// RefsDir is where recorded reference clips are saved.
func (ac *AppConfig) RefsDir() string {
	return filepath.Join(ac.Dir, "refs")
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
