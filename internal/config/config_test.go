package config

import (
	"os"
	"path/filepath"
	"testing"
)

func isolateConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return dir
}

func TestMergePointerFields(t *testing.T) {
	base := Config{Path: "/home/user", ShowHidden: false, Workers: 10}

	merged := merge(base, fileConfig{})
	if merged != base {
		t.Fatalf("empty stored config changed defaults: %+v", merged)
	}

	path := "/srv"
	hidden := true
	workers := 4
	merged = merge(base, fileConfig{Path: &path, ShowHidden: &hidden, Workers: &workers})
	if merged.Path != "/srv" || !merged.ShowHidden || merged.Workers != 4 {
		t.Fatalf("merge dropped stored values: %+v", merged)
	}

	bad := 0
	merged = merge(base, fileConfig{Workers: &bad})
	if merged.Workers != 10 {
		t.Fatalf("non-positive workers accepted: %d", merged.Workers)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	isolateConfigDir(t)

	saved := Config{Path: "/var/data", ShowHidden: true, Workers: 7}
	if err := Save(saved); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if loaded != saved {
		t.Fatalf("Load = %+v, want %+v", loaded, saved)
	}
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	isolateConfigDir(t)

	loaded, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if loaded != Default() {
		t.Fatalf("Load without file = %+v, want defaults", loaded)
	}
}

func TestLoadCorruptFile(t *testing.T) {
	dir := isolateConfigDir(t)
	path := filepath.Join(dir, configDirName, configFileName)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Fatal("expected error loading corrupt config")
	}
}

func TestFromArgsPrecedence(t *testing.T) {
	isolateConfigDir(t)

	stored := Default()
	stored.Path = "/from/file"
	if err := Save(stored); err != nil {
		t.Fatal(err)
	}

	t.Setenv(EnvPath, "")
	cfg := FromArgs(nil)
	if cfg.Path != "/from/file" {
		t.Fatalf("file path not used: %q", cfg.Path)
	}

	t.Setenv(EnvPath, "/from/env")
	cfg = FromArgs(nil)
	if cfg.Path != "/from/env" {
		t.Fatalf("env did not override file: %q", cfg.Path)
	}

	cfg = FromArgs([]string{"/from/arg"})
	if cfg.Path != "/from/arg" {
		t.Fatalf("positional arg did not override env: %q", cfg.Path)
	}
}

func TestFromArgsFlags(t *testing.T) {
	isolateConfigDir(t)
	t.Setenv(EnvPath, "")

	cfg := FromArgs([]string{"--show-hidden", "--workers", "3"})
	if !cfg.ShowHidden {
		t.Error("--show-hidden not applied")
	}
	if cfg.Workers != 3 {
		t.Errorf("workers = %d, want 3", cfg.Workers)
	}
}
