// Package config provides YAML-based tuning for each game, the difficulty
// presets, and the difficulty manager that scales speed and spawn cadence.
package config

import "github.com/vovakirdan/toybox/internal/entity"

// SnakeConfig tunes the Snake game.
type SnakeConfig struct {
	Board      SnakeBoard       `yaml:"board"`
	MoveEvery  float64          `yaml:"move_every"` // Seconds between moves
	StartLen   int              `yaml:"start_len"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// SnakeBoard defines the snake's play field.
type SnakeBoard struct {
	Width  int               `yaml:"width"`  // 0 = fit screen
	Height int               `yaml:"height"` // 0 = fit screen
	Edge   entity.EdgePolicy `yaml:"edge"`   // wrap or none (none = walls kill)
	Layout string            `yaml:"layout"` // Optional board asset name
}

// InvadersConfig tunes Space Invaders.
type InvadersConfig struct {
	Ship       InvadersShip     `yaml:"ship"`
	Bullets    InvadersBullets  `yaml:"bullets"`
	Enemies    InvadersEnemies  `yaml:"enemies"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// InvadersShip defines the player's cannon.
type InvadersShip struct {
	Width int     `yaml:"width"`
	Speed float64 `yaml:"speed"` // Cells per second
}

// InvadersBullets defines the player's shots.
type InvadersBullets struct {
	Speed    float64 `yaml:"speed"`
	Cooldown int     `yaml:"cooldown"` // Ticks between shots
}

// InvadersEnemies defines invader spawning and movement.
type InvadersEnemies struct {
	SpawnEvery int     `yaml:"spawn_every"` // Ticks between spawns
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Speed      float64 `yaml:"speed"`
	Drop       int     `yaml:"drop"` // Rows moved down on each wall bounce
	Points     int     `yaml:"points"`
}

// ShooterConfig tunes the boss-fight shooter.
type ShooterConfig struct {
	Ship       ShooterShip      `yaml:"ship"`
	Boss       ShooterBoss      `yaml:"boss"`
	Bullets    ShooterBullets   `yaml:"bullets"`
	Background float64          `yaml:"background_speed"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ShooterShip defines the player's ship.
type ShooterShip struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Speed  float64 `yaml:"speed"`
}

// ShooterBoss defines the boss.
type ShooterBoss struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Speed      float64 `yaml:"speed"`
	Life       int     `yaml:"life"`
	ShootEvery int     `yaml:"shoot_every"` // Ticks between volleys
	HurtTicks  int     `yaml:"hurt_ticks"`  // Flash duration after a hit
}

// ShooterBullets defines both sides' bullets.
type ShooterBullets struct {
	Size     float64 `yaml:"size"`
	Speed    float64 `yaml:"speed"`
	Cooldown int     `yaml:"cooldown"` // Ticks between player shots
}

// AntsConfig tunes the Langton's ants simulation.
type AntsConfig struct {
	Count  int               `yaml:"count"`
	Width  int               `yaml:"width"`  // 0 = fit screen
	Height int               `yaml:"height"` // 0 = fit screen
	Edge   entity.EdgePolicy `yaml:"edge"`
}

// ParticlesConfig tunes the particle fountain.
type ParticlesConfig struct {
	SpawnEvery int               `yaml:"spawn_every"`
	PerSpawn   int               `yaml:"per_spawn"`
	MinSpeed   float64           `yaml:"min_speed"`
	MaxSpeed   float64           `yaml:"max_speed"`
	Lifetime   float64           `yaml:"lifetime"` // Seconds
	MaxAlive   int               `yaml:"max_alive"`
	Edge       entity.EdgePolicy `yaml:"edge"`
}

// FlappyConfig tunes Flappy Bird. Physics values are in cells per tick.
type FlappyConfig struct {
	Physics    FlappyPhysics    `yaml:"physics"`
	Obstacles  FlappyObstacles  `yaml:"obstacles"`
	Player     FlappyPlayer     `yaml:"player"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FlappyPhysics defines physics parameters for Flappy Bird.
type FlappyPhysics struct {
	Gravity      float64 `yaml:"gravity"`
	JumpImpulse  float64 `yaml:"jump_impulse"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	BaseSpeed    float64 `yaml:"base_speed"`
}

// FlappyObstacles defines pipe parameters for Flappy Bird.
type FlappyObstacles struct {
	PipeWidth    int `yaml:"pipe_width"`
	SpawnEvery   int `yaml:"spawn_every"` // Ticks between pipes
	MinGapSize   int `yaml:"min_gap_size"`
	MaxGapSize   int `yaml:"max_gap_size"`
	TopMargin    int `yaml:"top_margin"`
	BottomMargin int `yaml:"bottom_margin"`
}

// FlappyPlayer defines the bird's hitbox.
type FlappyPlayer struct {
	X      int `yaml:"x"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// DinoConfig tunes Dino Runner. Physics values are in cells per tick.
type DinoConfig struct {
	Physics    DinoPhysics      `yaml:"physics"`
	Obstacles  DinoObstacles    `yaml:"obstacles"`
	Player     DinoPlayer       `yaml:"player"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// DinoPhysics defines physics parameters for Dino Runner.
type DinoPhysics struct {
	Gravity      float64 `yaml:"gravity"`
	JumpImpulse  float64 `yaml:"jump_impulse"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	BaseSpeed    float64 `yaml:"base_speed"`
}

// DinoObstacles defines cactus parameters for Dino Runner.
type DinoObstacles struct {
	MinWidth   int   `yaml:"min_width"`
	MaxWidth   int   `yaml:"max_width"`
	MinHeight  int   `yaml:"min_height"`
	MaxHeight  int   `yaml:"max_height"`
	SpawnEvery []int `yaml:"spawn_every"` // Candidate tick gaps, one picked per cactus
}

// DinoPlayer defines the dino's hitbox and ground line.
type DinoPlayer struct {
	X            int `yaml:"x"`
	Width        int `yaml:"width"`
	Height       int `yaml:"height"`
	GroundOffset int `yaml:"ground_offset"`
}

// RoadConfig tunes the Road Fighter toy.
type RoadConfig struct {
	Width       int              `yaml:"width"` // Road width in cells, 0 = fit screen
	BorderCrash bool             `yaml:"border_crash"`
	Player      RoadCar          `yaml:"player"`
	Traffic     RoadTraffic      `yaml:"traffic"`
	Difficulty  DifficultyConfig `yaml:"difficulty"`
}

// RoadCar defines the player's car.
type RoadCar struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Speed  float64 `yaml:"speed"` // Cells per second, sideways
}

// RoadTraffic defines oncoming cars.
type RoadTraffic struct {
	SpawnEvery int     `yaml:"spawn_every"` // Ticks between cars
	Speed      float64 `yaml:"speed"`       // Cells per second, downwards
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
}

// GalleryConfig tunes the shooting gallery.
type GalleryConfig struct {
	Cannon     GalleryCannon    `yaml:"cannon"`
	Physics    GalleryPhysics   `yaml:"physics"`
	Targets    GalleryTargets   `yaml:"targets"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// GalleryCannon defines the cannon in the bottom-left corner.
type GalleryCannon struct {
	Angle     float64 `yaml:"angle"`      // Starting angle in degrees
	TurnSpeed float64 `yaml:"turn_speed"` // Degrees per tick while turning
	Power     float64 `yaml:"power"`      // Launch speed in cells per tick
	Ammo      int     `yaml:"ammo"`       // Shots per round, 0 = endless
}

// GalleryPhysics defines projectile flight, per tick.
type GalleryPhysics struct {
	Gravity    float64 `yaml:"gravity"`
	Resistance float64 `yaml:"resistance"` // Velocity kept each tick
}

// GalleryTargets defines the patrolling bins.
type GalleryTargets struct {
	SpawnEvery int     `yaml:"spawn_every"` // Ticks between new bins
	MaxAlive   int     `yaml:"max_alive"`
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Speed      float64 `yaml:"speed"`    // Cells per tick
	MinX       float64 `yaml:"min_x"`    // Left end of the patrol lane
	Lifetime   int     `yaml:"lifetime"` // Ticks before a bin leaves, 0 = forever
}

// PlatformerConfig tunes the platformer. Speeds are in cells per second.
type PlatformerConfig struct {
	Level        string  `yaml:"level"` // Optional board asset name
	Gravity      float64 `yaml:"gravity"`
	JumpSpeed    float64 `yaml:"jump_speed"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	RunSpeed     float64 `yaml:"run_speed"`
	EnemySpeed   float64 `yaml:"enemy_speed"`
	StompPoints  int     `yaml:"stomp_points"`
	FlagPoints   int     `yaml:"flag_points"`
}

// SpiralConfig tunes the spiral visualizer. Radii are in rows.
type SpiralConfig struct {
	Alpha      float64 `yaml:"alpha"`       // Radius gained per radian
	AngleStep  float64 `yaml:"angle_step"`  // Radians between points
	PointEvery int     `yaml:"point_every"` // Ticks between points
	MarkEvery  int     `yaml:"mark_every"`  // Every n-th point gets a polygon marker
	MarkSides  int     `yaml:"mark_sides"`
}

// TilingsConfig tunes the tilings visualizer.
type TilingsConfig struct {
	Kind          string  `yaml:"kind"` // triangles, squares or hexagons
	Size          float64 `yaml:"size"` // Tile edge in rows
	RevealPerTick int     `yaml:"reveal_per_tick"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to speed at max difficulty
	PeriodReduction float64 `yaml:"period_reduction"` // Fraction cut from spawn periods at max difficulty
	GapReduction    int     `yaml:"gap_reduction"`    // Cells cut from pipe gaps at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset adjusts a difficulty block for a preset. An empty preset
// leaves the config as loaded.
func ApplyPreset(cfg *DifficultyConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Enabled = false
	default:
		cfg.Enabled = true
		cfg.InitialLevel = InitialLevelForPreset(preset)
	}
}
