package config

import (
	_ "embed"
)

//go:embed defaults/skirmish.yaml
var defaultSkirmishYAML []byte

// DefaultSkirmishConfig returns the hardcoded skirmish configuration. It
// mirrors defaults/skirmish.yaml and is used when the embedded file cannot
// be parsed.
func DefaultSkirmishConfig() SkirmishConfig {
	return SkirmishConfig{
		World: WorldConfig{Width: 500, Height: 500},
		Player: PlayerConfig{
			Unit: UnitConfig{
				Name:   "kawak",
				Width:  32,
				Height: 32,
				Health: 10,
				Speed:  2,
				Sprite: "kawak_green",
			},
		},
		Enemies: EnemyConfig{
			Unit: UnitConfig{
				Name:   "drone",
				Width:  24,
				Height: 24,
				Health: 4,
				Speed:  1.5,
				Sprite: "kawak_red",
			},
			PerWave: 3,
			Margin:  40,
			MinGap:  150,
		},
		Weapons: WeaponsConfig{
			Player: WeaponConfig{
				Damage:          2,
				ProjectileSpeed: 2,
				CooldownMS:      250,
				Spread:          20,
				Lateral:         10,
				Sprite:          "shot",
			},
			Enemy: WeaponConfig{
				Damage:          1,
				ProjectileSpeed: 1.5,
				CooldownMS:      900,
				Spread:          15,
				Lateral:         8,
				Sprite:          "shot_enemy",
			},
		},
		Projectile: ProjectileConfig{Size: 4},
		AI:         AIConfig{FireRange: 180},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "wave",
				MaxAt: 10,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   1.0,
				HealthBonus:       6,
				CountBonus:        5,
				CooldownReduction: 0.5,
			},
		},
		Sprites: map[string]string{
			"kawak_green": "green",
			"kawak_red":   "red",
			"shot":        "yellow",
			"shot_enemy":  "orange",
		},
	}
}
