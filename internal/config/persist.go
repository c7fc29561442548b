package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

const (
	configDirName  = "burrow"
	configFileName = "config.json"
)

func Path() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, configDirName, configFileName), nil
}

func Load() (Config, error) {
	cfg := Default()
	path, err := Path()
	if err != nil {
		return cfg, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	var stored fileConfig
	if err := json.Unmarshal(data, &stored); err != nil {
		return cfg, err
	}
	return merge(cfg, stored), nil
}

func Save(cfg Config) error {
	path, err := Path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

func merge(base Config, stored fileConfig) Config {
	merged := base
	if stored.Path != nil {
		merged.Path = *stored.Path
	}
	if stored.ShowHidden != nil {
		merged.ShowHidden = *stored.ShowHidden
	}
	if stored.Workers != nil && *stored.Workers > 0 {
		merged.Workers = *stored.Workers
	}
	return merged
}
