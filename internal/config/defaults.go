package config

import (
	_ "embed"
)

//go:embed defaults/match.yaml
var defaultMatchYAML []byte

// DefaultMatchConfig returns the hardcoded match configuration, used when the
// embedded YAML cannot be parsed.
func DefaultMatchConfig() MatchConfig {
	return MatchConfig{
		Rows: 5,
		Cols: 5,
		Fleet: FleetConfig{
			Submarines: 2,
			Destroyers: 1,
			Jets:       1,
		},
		FirstPlayer: 1,
	}
}

// DefaultYAML returns the embedded default match file.
func DefaultYAML() []byte {
	return defaultMatchYAML
}
