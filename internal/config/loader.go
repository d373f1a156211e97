package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const platformerConfigName = "platformer.yaml"

// LoadPlatformer resolves the game config. An explicit path must parse.
// Otherwise the user config, a local configs/ directory, and finally
// the embedded defaults are tried in order.
func LoadPlatformer(customPath string) (PlatformerConfig, error) {
	var cfg PlatformerConfig

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{
		userConfigPath(platformerConfigName),
		filepath.Join("configs", platformerConfigName),
	} {
		if path != "" && tryLoad(path, &cfg) {
			return cfg, nil
		}
	}

	if err := yaml.Unmarshal(defaultPlatformerYAML, &cfg); err != nil {
		return DefaultPlatformerConfig(), nil
	}
	return cfg, nil
}

// tryLoad reads and parses one candidate file. A missing or malformed
// file is not an error, the caller just moves down its list.
func tryLoad(path string, cfg *PlatformerConfig) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	return yaml.Unmarshal(data, cfg) == nil
}

// userConfigPath builds ~/.platformer/configs/<filename>, or empty when
// the home directory is unknown.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".platformer", "configs", filename)
}

// InstallDefault writes the embedded defaults for gameID into the user
// config directory, where they can be edited and are picked up on the
// next run. An existing file is left alone. Returns the config path.
func InstallDefault(gameID string) (string, error) {
	data := GetDefaultYAML(gameID)
	if data == nil {
		return "", fmt.Errorf("no default config for game %q", gameID)
	}

	path := userConfigPath(platformerConfigName)
	if path == "" {
		return "", fmt.Errorf("cannot locate home directory")
	}
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// ApplyPlatformerPreset rewrites the config for a named preset. The
// fixed preset freezes progression at the configured initial level,
// the rest pick a starting level plus a few gameplay knobs.
func ApplyPlatformerPreset(cfg *PlatformerConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Gameplay.InvulnTicks = 150
		cfg.Enemies.EnemySpeed = 0.04
		cfg.Enemies.SpawnerTicks = 220
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Gameplay.InvulnTicks = 60
		cfg.Enemies.EnemySpeed = 0.07
		cfg.Enemies.BossHealth = 4
		cfg.Enemies.SpawnerTicks = 110
	}
}
