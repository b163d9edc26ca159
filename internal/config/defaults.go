package config

import (
	"embed"

	"github.com/vovakirdan/toybox/internal/entity"
)

//go:embed defaults/*.yaml
var defaultsFS embed.FS

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: SnakeBoard{
			Edge: entity.EdgeWrap,
		},
		MoveEvery: 0.12,
		StartLen:  1,
		Difficulty: DifficultyConfig{
			Enabled: true,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 30,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}

// DefaultInvadersConfig returns the default Space Invaders configuration.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Ship: InvadersShip{
			Width: 5,
			Speed: 40,
		},
		Bullets: InvadersBullets{
			Speed:    30,
			Cooldown: 6,
		},
		Enemies: InvadersEnemies{
			SpawnEvery: 90,
			Width:      3,
			Height:     1,
			Speed:      8,
			Drop:       1,
			Points:     10,
		},
		Difficulty: DifficultyConfig{
			Enabled: true,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 500,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
				PeriodReduction: 0.6,
			},
		},
	}
}

// DefaultShooterConfig returns the default Shooter configuration.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		Ship: ShooterShip{
			Width:  3,
			Height: 1,
			Speed:  30,
		},
		Boss: ShooterBoss{
			Width:      6,
			Height:     5,
			Speed:      6,
			Life:       100,
			ShootEvery: 60,
			HurtTicks:  3,
		},
		Bullets: ShooterBullets{
			Size:     1,
			Speed:    25,
			Cooldown: 8,
		},
		Background: 4,
		Difficulty: DifficultyConfig{
			Enabled: true,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 3600,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
				PeriodReduction: 0.5,
			},
		},
	}
}

// DefaultAntsConfig returns the default ants configuration.
func DefaultAntsConfig() AntsConfig {
	return AntsConfig{
		Count: 20,
		Edge:  entity.EdgeWrap,
	}
}

// DefaultParticlesConfig returns the default particle fountain configuration.
func DefaultParticlesConfig() ParticlesConfig {
	return ParticlesConfig{
		SpawnEvery: 2,
		PerSpawn:   6,
		MinSpeed:   4,
		MaxSpeed:   12,
		Lifetime:   3,
		MaxAlive:   600,
		Edge:       entity.EdgeReflect,
	}
}

// DefaultFlappyConfig returns the default Flappy Bird configuration.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Physics: FlappyPhysics{
			Gravity:      0.25,
			JumpImpulse:  -1.8,
			MaxFallSpeed: 3.0,
			BaseSpeed:    0.8,
		},
		Obstacles: FlappyObstacles{
			PipeWidth:    5,
			SpawnEvery:   50,
			MinGapSize:   8,
			MaxGapSize:   12,
			TopMargin:    3,
			BottomMargin: 3,
		},
		Player: FlappyPlayer{
			X:      10,
			Width:  2,
			Height: 2,
		},
		Difficulty: DifficultyConfig{
			Enabled: true,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 50,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
				PeriodReduction: 0.3,
				GapReduction:    3,
			},
		},
	}
}

// DefaultDinoConfig returns the default Dino Runner configuration.
func DefaultDinoConfig() DinoConfig {
	return DinoConfig{
		Physics: DinoPhysics{
			Gravity:      0.3,
			JumpImpulse:  -2.5,
			MaxFallSpeed: 4.0,
			BaseSpeed:    0.5,
		},
		Obstacles: DinoObstacles{
			MinWidth:   1,
			MaxWidth:   3,
			MinHeight:  2,
			MaxHeight:  4,
			SpawnEvery: []int{50, 100},
		},
		Player: DinoPlayer{
			X:            8,
			Width:        3,
			Height:       3,
			GroundOffset: 2,
		},
		Difficulty: DifficultyConfig{
			Enabled: true,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 3000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
				PeriodReduction: 0.4,
			},
		},
	}
}

// DefaultRoadConfig returns the default Road Fighter configuration.
func DefaultRoadConfig() RoadConfig {
	return RoadConfig{
		Width:       30,
		BorderCrash: true,
		Player: RoadCar{
			Width:  3,
			Height: 3,
			Speed:  25,
		},
		Traffic: RoadTraffic{
			SpawnEvery: 45,
			Speed:      15,
			Width:      3,
			Height:     3,
		},
		Difficulty: DifficultyConfig{
			Enabled: true,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 3600,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
				PeriodReduction: 0.5,
			},
		},
	}
}

// DefaultGalleryConfig returns the default shooting gallery configuration.
func DefaultGalleryConfig() GalleryConfig {
	return GalleryConfig{
		Cannon: GalleryCannon{
			Angle:     45,
			TurnSpeed: 1,
			Power:     2.0,
			Ammo:      20,
		},
		Physics: GalleryPhysics{
			Gravity:    0.05,
			Resistance: 0.98,
		},
		Targets: GalleryTargets{
			SpawnEvery: 600,
			MaxAlive:   3,
			Width:      5,
			Height:     3,
			Speed:      0.3,
			MinX:       20,
		},
		Difficulty: DifficultyConfig{
			Enabled: true,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 15,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
				PeriodReduction: 0.5,
			},
		},
	}
}

// DefaultPlatformerConfig returns the default platformer configuration.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		Gravity:      60,
		JumpSpeed:    24,
		MaxFallSpeed: 30,
		RunSpeed:     12,
		EnemySpeed:   4,
		StompPoints:  100,
		FlagPoints:   1000,
	}
}

// DefaultSpiralConfig returns the default spiral configuration.
func DefaultSpiralConfig() SpiralConfig {
	return SpiralConfig{
		Alpha:      0.25,
		AngleStep:  0.5,
		PointEvery: 2,
		MarkEvery:  10,
		MarkSides:  6,
	}
}

// DefaultTilingsConfig returns the default tilings configuration.
func DefaultTilingsConfig() TilingsConfig {
	return TilingsConfig{
		Kind:          "hexagons",
		Size:          3,
		RevealPerTick: 1,
	}
}
