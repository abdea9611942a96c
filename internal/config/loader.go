package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to every environment override, e.g. SUBMARINES_ROWS
// or SUBMARINES_FLEET_JETS.
const EnvPrefix = "SUBMARINES_"

const matchFile = "match.yaml"

// Load resolves the match configuration.
// Search order: customPath -> ~/.submarines/match.yaml -> ./configs/match.yaml
// -> embedded default -> hardcoded default. Environment overrides are applied
// on top of whichever source won. The result is not validated.
func Load(customPath string) (MatchConfig, error) {
	cfg, err := loadFile(customPath)
	if err != nil {
		return cfg, err
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return cfg, fmt.Errorf("failed to parse environment overrides: %w", err)
	}
	return cfg, nil
}

func loadFile(customPath string) (MatchConfig, error) {
	var cfg MatchConfig

	// An explicit path must exist and parse.
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

	if fileCfg, _, ok := searchFiles(); ok {
		return fileCfg, nil
	}

	if err := yaml.Unmarshal(defaultMatchYAML, &cfg); err != nil {
		return DefaultMatchConfig(), nil
	}
	return cfg, nil
}

// userConfigPath returns the per-user config file path, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".submarines", filename)
}

// Source reports which file Load would read for customPath, or "embedded".
func Source(customPath string) string {
	if customPath != "" {
		return customPath
	}
	if _, path, ok := searchFiles(); ok {
		return path
	}
	return "embedded"
}

// searchFiles returns the first readable and parseable file among the user
// and local config locations. Unreadable or malformed files are skipped.
func searchFiles() (MatchConfig, string, bool) {
	for _, path := range []string{userConfigPath(matchFile), filepath.Join("configs", matchFile)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var cfg MatchConfig
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, path, true
		}
	}
	return MatchConfig{}, "", false
}
