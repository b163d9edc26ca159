package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/toybox/internal/entity"
)

func TestLoadEmbeddedDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	snake, err := LoadSnake("")
	require.NoError(t, err)
	assert.Equal(t, entity.EdgeWrap, snake.Board.Edge)
	assert.InDelta(t, 0.12, snake.MoveEvery, 1e-9)

	shooter, err := LoadShooter("")
	require.NoError(t, err)
	assert.Equal(t, 100, shooter.Boss.Life)
	assert.Equal(t, 60, shooter.Boss.ShootEvery)

	particles, err := LoadParticles("")
	require.NoError(t, err)
	assert.Equal(t, entity.EdgeReflect, particles.Edge)
}

func TestEmbeddedMatchesHardcoded(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	inv, err := LoadInvaders("")
	require.NoError(t, err)
	assert.Equal(t, DefaultInvadersConfig(), inv)

	ants, err := LoadAnts("")
	require.NoError(t, err)
	assert.Equal(t, DefaultAntsConfig(), ants)

	flappy, err := LoadFlappy("")
	require.NoError(t, err)
	assert.Equal(t, DefaultFlappyConfig(), flappy)

	dino, err := LoadDino("")
	require.NoError(t, err)
	assert.Equal(t, DefaultDinoConfig(), dino)

	road, err := LoadRoad("")
	require.NoError(t, err)
	assert.Equal(t, DefaultRoadConfig(), road)

	gallery, err := LoadGallery("")
	require.NoError(t, err)
	assert.Equal(t, DefaultGalleryConfig(), gallery)

	plat, err := LoadPlatformer("")
	require.NoError(t, err)
	assert.Equal(t, DefaultPlatformerConfig(), plat)

	spiral, err := LoadSpiral("")
	require.NoError(t, err)
	assert.Equal(t, DefaultSpiralConfig(), spiral)

	tilings, err := LoadTilings("")
	require.NoError(t, err)
	assert.Equal(t, DefaultTilingsConfig(), tilings)
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ants.yaml")
	require.NoError(t, os.WriteFile(path, []byte("count: 3\nedge: clamp\n"), 0o644))

	cfg, err := LoadAnts(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Count)
	assert.Equal(t, entity.EdgeClamp, cfg.Edge)
}

func TestLoadCustomPathErrors(t *testing.T) {
	_, err := LoadAnts(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("edge: sideways\n"), 0o644))
	_, err = LoadAnts(bad)
	assert.Error(t, err)
}

func TestLoadLocalOverridesEmbedded(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", t.TempDir())
	require.NoError(t, os.MkdirAll("configs", 0o755))
	require.NoError(t, os.WriteFile(filepath.Join("configs", "snake.yaml"), []byte("move_every: 0.5\n"), 0o644))

	cfg, err := LoadSnake("")
	require.NoError(t, err)
	assert.InDelta(t, 0.5, cfg.MoveEvery, 1e-9)
	// Unset keys keep their defaults.
	assert.Equal(t, entity.EdgeWrap, cfg.Board.Edge)
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultShooterConfig().Difficulty

	ApplyPreset(&cfg, DifficultyHard)
	assert.True(t, cfg.Enabled)
	assert.InDelta(t, 0.7, cfg.InitialLevel, 1e-9)

	ApplyPreset(&cfg, DifficultyFixed)
	assert.False(t, cfg.Enabled)

	ApplyPreset(&cfg, "")
	assert.False(t, cfg.Enabled)
}

func TestDifficultyManager(t *testing.T) {
	tests := []struct {
		name   string
		cfg    DifficultyConfig
		score  int
		ticks  int
		level  float64
		period int
	}{
		{
			name:   "disabled keeps initial level",
			cfg:    DifficultyConfig{InitialLevel: 0.5, Scaling: ScalingConfig{PeriodReduction: 0.5}},
			score:  1000,
			level:  0.5,
			period: 75,
		},
		{
			name: "score halfway",
			cfg: DifficultyConfig{
				Enabled:     true,
				Progression: ProgressionConfig{Type: "score", MaxAt: 100},
				Scaling:     ScalingConfig{PeriodReduction: 0.5},
			},
			score:  50,
			level:  0.5,
			period: 75,
		},
		{
			name: "time saturates",
			cfg: DifficultyConfig{
				Enabled:     true,
				Progression: ProgressionConfig{Type: "time", MaxAt: 10},
				Scaling:     ScalingConfig{PeriodReduction: 1},
			},
			ticks:  500,
			level:  1,
			period: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDifficultyManager(tt.cfg)
			assert.InDelta(t, tt.level, d.Level(tt.score, tt.ticks), 1e-9)
			assert.Equal(t, tt.period, d.Period(100, tt.score, tt.ticks))
		})
	}
}

func TestDifficultySpeed(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 10},
		Scaling:     ScalingConfig{SpeedMultiplier: 1},
	})
	assert.InDelta(t, 10.0, d.Speed(10, 0, 0), 1e-9)
	assert.InDelta(t, 20.0, d.Speed(10, 10, 0), 1e-9)
}

func TestDifficultySpeedNegativeMultiplier(t *testing.T) {
	for _, mult := range []float64{-1, -5} {
		d := NewDifficultyManager(DifficultyConfig{
			Enabled:     true,
			Progression: ProgressionConfig{Type: "score", MaxAt: 10},
			Scaling:     ScalingConfig{SpeedMultiplier: mult},
		})
		got := d.Speed(10, 10, 0)
		assert.InDelta(t, 10*minSpeedFactor, got, 1e-9, "multiplier %v", mult)
	}
}

func TestDifficultyGap(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 10},
		Scaling:     ScalingConfig{GapReduction: 3},
	})
	assert.Equal(t, 10, d.Gap(10, 0, 0))
	assert.Equal(t, 7, d.Gap(10, 10, 0))
	assert.Equal(t, minGap, d.Gap(5, 10, 0), "never below the minimum")
}
