package config

import (
	"os"

	"burrow/internal/scan"
)

// Config holds startup preferences. Fields missing from the stored file
// fall back to defaults; the environment and flags override the file.
type Config struct {
	Path       string `json:"path"`
	ShowHidden bool   `json:"showHidden"`
	Workers    int    `json:"workers"`
}

type fileConfig struct {
	Path       *string `json:"path"`
	ShowHidden *bool   `json:"showHidden"`
	Workers    *int    `json:"workers"`
}

func Default() Config {
	path, err := os.UserHomeDir()
	if err != nil || path == "" {
		path = "."
	}
	return Config{
		Path:       path,
		ShowHidden: false,
		Workers:    scan.DefaultWorkers,
	}
}
