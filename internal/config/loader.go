package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SourceEmbedded is reported when the embedded defaults were used.
const SourceEmbedded = "embedded"

// Load loads the Nut Wars configuration.
// Search order: customPath -> ~/.nutwars/configs/nutwars.yaml -> ./configs/nutwars.yaml -> embedded default.
// Files are decoded over the defaults, so a file only needs the keys it changes.
// The returned source names the file that was used.
func Load(customPath string) (NutWarsConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return NutWarsConfig{}, "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return NutWarsConfig{}, "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	// Try user config directory, then the local configs directory
	candidates := []string{userConfigPath("nutwars.yaml"), filepath.Join("configs", "nutwars.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := Parse(data); err == nil {
			return cfg, path, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultNutWarsYAML)
	if err != nil {
		return DefaultNutWarsConfig(), SourceEmbedded, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// Parse decodes YAML over the default configuration and validates the result.
func Parse(data []byte) (NutWarsConfig, error) {
	cfg := DefaultNutWarsConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return NutWarsConfig{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return NutWarsConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes a configuration as YAML.
func Marshal(cfg NutWarsConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("yaml marshal: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".nutwars", "configs", filename)
}
