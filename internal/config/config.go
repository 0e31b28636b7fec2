// Package config provides YAML/TOML configuration loading and difficulty
// management for the skirmish game.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// SkirmishConfig contains all configuration for a skirmish match.
type SkirmishConfig struct {
	World      WorldConfig       `yaml:"world" toml:"world"`
	Player     PlayerConfig      `yaml:"player" toml:"player"`
	Enemies    EnemyConfig       `yaml:"enemies" toml:"enemies"`
	Weapons    WeaponsConfig     `yaml:"weapons" toml:"weapons"`
	Projectile ProjectileConfig  `yaml:"projectile" toml:"projectile"`
	AI         AIConfig          `yaml:"ai" toml:"ai"`
	Difficulty DifficultyConfig  `yaml:"difficulty" toml:"difficulty"`
	Sprites    map[string]string `yaml:"sprites" toml:"sprites"` // sprite id -> color name
}

// WorldConfig defines the playing field in world units.
type WorldConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// UnitConfig defines the body of a unit.
type UnitConfig struct {
	Name   string  `yaml:"name" toml:"name"`
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
	Health int     `yaml:"health" toml:"health"`
	Speed  float64 `yaml:"speed" toml:"speed"`
	Sprite string  `yaml:"sprite" toml:"sprite"`
}

// PlayerConfig defines the player unit. A zero start point means the
// center of the world.
type PlayerConfig struct {
	Unit   UnitConfig `yaml:"unit" toml:"unit"`
	StartX float64    `yaml:"start_x" toml:"start_x"`
	StartY float64    `yaml:"start_y" toml:"start_y"`
}

// EnemyConfig defines AI units and how waves are placed.
type EnemyConfig struct {
	Unit    UnitConfig `yaml:"unit" toml:"unit"`
	PerWave int        `yaml:"per_wave" toml:"per_wave"`
	Margin  float64    `yaml:"margin" toml:"margin"`     // keep spawns this far from the edges
	MinGap  float64    `yaml:"min_gap" toml:"min_gap"`   // minimum spawn distance from the player
	Spawns  []Point    `yaml:"spawns" toml:"spawns"`     // fixed spawn points, random when empty
	MaxWave int        `yaml:"max_wave" toml:"max_wave"` // 0 means endless
}

// Point is a position in world units.
type Point struct {
	X float64 `yaml:"x" toml:"x"`
	Y float64 `yaml:"y" toml:"y"`
}

// WeaponsConfig holds the loadouts of both sides.
type WeaponsConfig struct {
	Player WeaponConfig `yaml:"player" toml:"player"`
	Enemy  WeaponConfig `yaml:"enemy" toml:"enemy"`
}

// WeaponConfig defines a three-gun loadout.
type WeaponConfig struct {
	Damage          int     `yaml:"damage" toml:"damage"`
	ProjectileSpeed float64 `yaml:"projectile_speed" toml:"projectile_speed"`
	CooldownMS      int     `yaml:"cooldown_ms" toml:"cooldown_ms"`
	Spread          float64 `yaml:"spread" toml:"spread"`   // side gun angle, degrees
	Lateral         float64 `yaml:"lateral" toml:"lateral"` // side gun offset from the center line
	Sprite          string  `yaml:"sprite" toml:"sprite"`
}

// ProjectileConfig defines projectile bodies.
type ProjectileConfig struct {
	Size float64 `yaml:"size" toml:"size"`
}

// AIConfig defines AI behavior beyond wandering.
type AIConfig struct {
	FireRange float64 `yaml:"fire_range" toml:"fire_range"` // 0 disables AI fire
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled" toml:"enabled"`
	InitialLevel float64           `yaml:"initial_level" toml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression" toml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling" toml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a match.
type ProgressionConfig struct {
	Type  string `yaml:"type" toml:"type"`     // "wave", "score", or "none"
	MaxAt int    `yaml:"max_at" toml:"max_at"` // wave/score at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes at level 1.0.
type ScalingConfig struct {
	SpeedMultiplier   float64 `yaml:"speed_multiplier" toml:"speed_multiplier"`
	HealthBonus       int     `yaml:"health_bonus" toml:"health_bonus"`
	CountBonus        int     `yaml:"count_bonus" toml:"count_bonus"`
	CooldownReduction float64 `yaml:"cooldown_reduction" toml:"cooldown_reduction"` // fraction of the cooldown removed
}

// Validate reports the first setting that would make the match unplayable.
func (c SkirmishConfig) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("%w: world size %gx%g", ErrInvalidConfig, c.World.Width, c.World.Height)
	case c.Enemies.PerWave < 0:
		return fmt.Errorf("%w: enemies.per_wave %d", ErrInvalidConfig, c.Enemies.PerWave)
	case c.Enemies.Margin < 0 || 2*c.Enemies.Margin >= c.World.Width || 2*c.Enemies.Margin >= c.World.Height:
		return fmt.Errorf("%w: enemies.margin %g leaves no room in a %gx%g world",
			ErrInvalidConfig, c.Enemies.Margin, c.World.Width, c.World.Height)
	case c.Projectile.Size <= 0:
		return fmt.Errorf("%w: projectile.size %g", ErrInvalidConfig, c.Projectile.Size)
	case c.AI.FireRange < 0:
		return fmt.Errorf("%w: ai.fire_range %g", ErrInvalidConfig, c.AI.FireRange)
	}
	switch c.Difficulty.Progression.Type {
	case "wave", "score", "none", "":
	default:
		return fmt.Errorf("%w: difficulty.progression.type %q", ErrInvalidConfig, c.Difficulty.Progression.Type)
	}
	return nil
}

// SpriteColor returns the configured color name for a sprite id.
func (c SkirmishConfig) SpriteColor(sprite string) string {
	return c.Sprites[sprite]
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficulty converts a flag value into a preset.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	}
	return "", fmt.Errorf("unknown difficulty %q (easy, normal, hard, fixed)", s)
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
