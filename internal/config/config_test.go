package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	cfg := DefaultSkirmishConfig()
	if err := Decode("skirmish.yaml", defaultSkirmishYAML, &cfg); err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultSkirmishConfig()) {
		t.Errorf("embedded defaults drifted from DefaultSkirmishConfig:\n%+v\n%+v", cfg, DefaultSkirmishConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadCustomYAMLOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, `
world:
  width: 800
enemies:
  per_wave: 5
  spawns:
    - {x: 60, y: 60}
sprites:
  kawak_red: magenta
`)

	cfg, err := LoadSkirmish(path)
	if err != nil {
		t.Fatalf("LoadSkirmish failed: %v", err)
	}

	if cfg.World.Width != 800 {
		t.Errorf("World.Width = %v, expected 800", cfg.World.Width)
	}
	if cfg.World.Height != 500 {
		t.Errorf("World.Height = %v, expected the default 500", cfg.World.Height)
	}
	if cfg.Enemies.PerWave != 5 || len(cfg.Enemies.Spawns) != 1 {
		t.Errorf("Enemies = %+v, expected 5 per wave and one spawn point", cfg.Enemies)
	}
	if got := cfg.SpriteColor("kawak_red"); got != "magenta" {
		t.Errorf("SpriteColor(kawak_red) = %q, expected magenta", got)
	}
	if got := cfg.SpriteColor("shot"); got != "yellow" {
		t.Errorf("SpriteColor(shot) = %q, expected the default yellow", got)
	}
}

func TestLoadCustomTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	writeFile(t, path, `
[ai]
fire_range = 50.0

[weapons.player]
damage = 7

[[enemies.spawns]]
x = 10.0
y = 20.0
`)

	cfg, err := LoadSkirmish(path)
	if err != nil {
		t.Fatalf("LoadSkirmish failed: %v", err)
	}
	if cfg.AI.FireRange != 50 {
		t.Errorf("AI.FireRange = %v, expected 50", cfg.AI.FireRange)
	}
	if cfg.Weapons.Player.Damage != 7 {
		t.Errorf("Weapons.Player.Damage = %d, expected 7", cfg.Weapons.Player.Damage)
	}
	if cfg.Weapons.Player.CooldownMS != 250 {
		t.Errorf("Weapons.Player.CooldownMS = %d, expected the default 250", cfg.Weapons.Player.CooldownMS)
	}
	if len(cfg.Enemies.Spawns) != 1 || cfg.Enemies.Spawns[0] != (Point{X: 10, Y: 20}) {
		t.Errorf("Enemies.Spawns = %v, expected [{10 20}]", cfg.Enemies.Spawns)
	}
}

func TestLoadCustomErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		file    string
		content string
		want    string
	}{
		{"missing file", "absent.yaml", "", "failed to read"},
		{"unknown yaml key", "bad.yaml", "wrld:\n  width: 1\n", "failed to parse"},
		{"unknown toml key", "bad.toml", "[wrld]\nwidth = 1.0\n", "failed to parse"},
		{"invalid value", "zero.yaml", "world:\n  width: 0\n", "invalid config"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, tc.file)
			if tc.content != "" {
				writeFile(t, path, tc.content)
			}
			_, err := LoadSkirmish(path)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Errorf("LoadSkirmish error = %v, expected it to mention %q", err, tc.want)
			}
		})
	}
}

func TestResolveSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	cfg, source, err := ResolveSkirmish("")
	if err != nil {
		t.Fatalf("ResolveSkirmish failed: %v", err)
	}
	if source != SourceEmbedded {
		t.Errorf("source = %q, expected %q", source, SourceEmbedded)
	}
	if cfg.World.Width != 500 {
		t.Errorf("World.Width = %v, expected 500", cfg.World.Width)
	}

	writeFile(t, filepath.Join(work, "configs", "skirmish.toml"), "[world]\nwidth = 300.0\n")
	cfg, source, _ = ResolveSkirmish("")
	if source != filepath.Join("configs", "skirmish.toml") || cfg.World.Width != 300 {
		t.Errorf("local config not picked up: source %q width %v", source, cfg.World.Width)
	}

	// A broken user file is skipped, a valid one wins over the local one.
	userDir := filepath.Join(home, ".skirmish", "configs")
	writeFile(t, filepath.Join(userDir, "skirmish.yaml"), "world: [not, a, map]\n")
	writeFile(t, filepath.Join(userDir, "skirmish.yml"), "world:\n  width: 200\n")
	cfg, source, _ = ResolveSkirmish("")
	if source != filepath.Join(userDir, "skirmish.yml") || cfg.World.Width != 200 {
		t.Errorf("user config not picked up: source %q width %v", source, cfg.World.Width)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SkirmishConfig)
	}{
		{"zero width", func(c *SkirmishConfig) { c.World.Width = 0 }},
		{"negative per wave", func(c *SkirmishConfig) { c.Enemies.PerWave = -1 }},
		{"margin too wide", func(c *SkirmishConfig) { c.Enemies.Margin = 250 }},
		{"projectile size", func(c *SkirmishConfig) { c.Projectile.Size = 0 }},
		{"fire range", func(c *SkirmishConfig) { c.AI.FireRange = -1 }},
		{"progression type", func(c *SkirmishConfig) { c.Difficulty.Progression.Type = "time" }},
	}

	for _, tc := range tests {
		cfg := DefaultSkirmishConfig()
		tc.mutate(&cfg)
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("%s: Validate() = %v, expected ErrInvalidConfig", tc.name, err)
		}
	}
}

func TestEncodeFormats(t *testing.T) {
	for _, format := range []string{"yaml", "toml"} {
		var buf bytes.Buffer
		if err := Encode(&buf, DefaultSkirmishConfig(), format); err != nil {
			t.Fatalf("Encode(%s) failed: %v", format, err)
		}

		var cfg SkirmishConfig
		if err := Decode("out."+format, buf.Bytes(), &cfg); err != nil {
			t.Fatalf("Decode(%s) failed: %v\n%s", format, err, buf.String())
		}
		if cfg.Player.Unit.Name != "kawak" || cfg.AI.FireRange != 180 {
			t.Errorf("%s output lost values: %+v", format, cfg)
		}
	}

	if err := Encode(&bytes.Buffer{}, DefaultSkirmishConfig(), "ini"); err == nil {
		t.Error("Encode should reject unknown formats")
	}
}

func TestApplySkirmishPreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		enabled bool
		level   float64
		health  int
		rng     float64
	}{
		{DifficultyEasy, true, 0.0, 15, 135},
		{DifficultyNormal, true, 0.3, 10, 180},
		{DifficultyHard, true, 0.7, 6, 270},
		{DifficultyFixed, false, 0.0, 10, 180},
	}

	for _, tc := range tests {
		cfg := DefaultSkirmishConfig()
		ApplySkirmishPreset(&cfg, tc.preset)

		if cfg.Difficulty.Enabled != tc.enabled {
			t.Errorf("%s: Enabled = %v, expected %v", tc.preset, cfg.Difficulty.Enabled, tc.enabled)
		}
		if cfg.Difficulty.InitialLevel != tc.level {
			t.Errorf("%s: InitialLevel = %v, expected %v", tc.preset, cfg.Difficulty.InitialLevel, tc.level)
		}
		if cfg.Player.Unit.Health != tc.health {
			t.Errorf("%s: player health = %d, expected %d", tc.preset, cfg.Player.Unit.Health, tc.health)
		}
		if cfg.AI.FireRange != tc.rng {
			t.Errorf("%s: fire range = %v, expected %v", tc.preset, cfg.AI.FireRange, tc.rng)
		}
	}
}

func TestParseDifficulty(t *testing.T) {
	if p, err := ParseDifficulty(" Hard "); err != nil || p != DifficultyHard {
		t.Errorf("ParseDifficulty(Hard) = %q, %v", p, err)
	}
	if _, err := ParseDifficulty("nightmare"); err == nil {
		t.Error("ParseDifficulty should reject unknown names")
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
