package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads the tuning for gameID into a copy of def.
// Search order: customPath -> ~/.toybox/configs/<id>.yaml -> ./configs/<id>.yaml -> embedded default -> def.
// Only a broken customPath is an error; the other sources are skipped when unreadable.
func Load[T any](gameID, customPath string, def T) (T, error) {
	filename := gameID + ".yaml"

	// Try custom path first
	if customPath != "" {
		cfg := def
		data, err := os.ReadFile(customPath)
		if err != nil {
			return def, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return def, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath(filename), filepath.Join("configs", filename)} {
		if path == "" {
			continue
		}
		if cfg, ok := decodeFile(path, def); ok {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if data, err := defaultsFS.ReadFile("defaults/" + filename); err == nil {
		cfg := def
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}
	return def, nil // Fallback to hardcoded
}

func decodeFile[T any](path string, def T) (T, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return def, false
	}
	cfg := def
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return def, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".toybox", "configs", filename)
}

// LoadSnake loads Snake configuration.
func LoadSnake(customPath string) (SnakeConfig, error) {
	return Load("snake", customPath, DefaultSnakeConfig())
}

// LoadInvaders loads Space Invaders configuration.
func LoadInvaders(customPath string) (InvadersConfig, error) {
	return Load("invaders", customPath, DefaultInvadersConfig())
}

// LoadShooter loads Shooter configuration.
func LoadShooter(customPath string) (ShooterConfig, error) {
	return Load("shooter", customPath, DefaultShooterConfig())
}

// LoadAnts loads the ants configuration. The clamped variant shares the file
// and overrides the edge policy.
func LoadAnts(customPath string) (AntsConfig, error) {
	return Load("ants", customPath, DefaultAntsConfig())
}

// LoadParticles loads the particle fountain configuration.
func LoadParticles(customPath string) (ParticlesConfig, error) {
	return Load("particles", customPath, DefaultParticlesConfig())
}

// LoadFlappy loads Flappy Bird configuration.
func LoadFlappy(customPath string) (FlappyConfig, error) {
	return Load("flappy", customPath, DefaultFlappyConfig())
}

// LoadDino loads Dino Runner configuration.
func LoadDino(customPath string) (DinoConfig, error) {
	return Load("dino", customPath, DefaultDinoConfig())
}

// LoadRoad loads Road Fighter configuration.
func LoadRoad(customPath string) (RoadConfig, error) {
	return Load("road", customPath, DefaultRoadConfig())
}

// LoadGallery loads shooting gallery configuration.
func LoadGallery(customPath string) (GalleryConfig, error) {
	return Load("gallery", customPath, DefaultGalleryConfig())
}

// LoadPlatformer loads platformer configuration.
func LoadPlatformer(customPath string) (PlatformerConfig, error) {
	return Load("platformer", customPath, DefaultPlatformerConfig())
}

// LoadSpiral loads the spiral configuration.
func LoadSpiral(customPath string) (SpiralConfig, error) {
	return Load("spiral", customPath, DefaultSpiralConfig())
}

// LoadTilings loads the tilings configuration.
func LoadTilings(customPath string) (TilingsConfig, error) {
	return Load("tilings", customPath, DefaultTilingsConfig())
}
