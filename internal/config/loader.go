package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// SourceEmbedded and SourceBuiltin name the non-file config sources.
const (
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// configNames are tried in order inside every config directory.
var configNames = []string{"skirmish.yaml", "skirmish.yml", "skirmish.toml"}

// LoadSkirmish loads the skirmish configuration.
// Search order: customPath -> ~/.skirmish/configs/skirmish.{yaml,yml,toml}
// -> ./configs/skirmish.{yaml,yml,toml} -> embedded default.
//
// Files are decoded on top of the defaults, so a file only needs the keys
// it changes.
func LoadSkirmish(customPath string) (SkirmishConfig, error) {
	cfg, _, err := ResolveSkirmish(customPath)
	return cfg, err
}

// ResolveSkirmish is LoadSkirmish that also reports where the config came
// from: a file path, SourceEmbedded or SourceBuiltin.
func ResolveSkirmish(customPath string) (SkirmishConfig, string, error) {
	// Try custom path first; failures here are the caller's to see
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, customPath, err
		}
		return cfg, customPath, nil
	}

	// Then the user and local config directories; broken files are skipped
	for _, dir := range searchDirs() {
		for _, name := range configNames {
			path := filepath.Join(dir, name)
			if cfg, err := loadFile(path); err == nil {
				return cfg, path, nil
			}
		}
	}

	// Use embedded default YAML
	cfg := DefaultSkirmishConfig()
	if err := yaml.Unmarshal(defaultSkirmishYAML, &cfg); err != nil {
		return DefaultSkirmishConfig(), SourceBuiltin, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

func loadFile(path string) (SkirmishConfig, error) {
	cfg := DefaultSkirmishConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := Decode(path, data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// searchDirs returns the config directories in priority order.
func searchDirs() []string {
	var dirs []string
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".skirmish", "configs"))
	}
	return append(dirs, "configs")
}

// Decode parses data into cfg, choosing TOML for .toml names and YAML
// otherwise.
func Decode(name string, data []byte, cfg *SkirmishConfig) error {
	if isTOML(name) {
		return toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields().Decode(cfg)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return err
	}
	return nil
}

// Encode writes cfg as "yaml" or "toml".
func Encode(w io.Writer, cfg SkirmishConfig, format string) error {
	switch strings.ToLower(format) {
	case "toml":
		return toml.NewEncoder(w).Encode(cfg)
	case "yaml", "yml", "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown config format %q (yaml, toml)", format)
	}
}

func isTOML(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".toml")
}

// ApplySkirmishPreset modifies the config based on a difficulty preset.
func ApplySkirmishPreset(cfg *SkirmishConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Player.Unit.Health = 15
		cfg.AI.FireRange = cfg.AI.FireRange * 0.75
	case DifficultyHard:
		cfg.Player.Unit.Health = 6
		cfg.AI.FireRange = cfg.AI.FireRange * 1.5
	}
}
