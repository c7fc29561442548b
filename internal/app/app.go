// Package app wires the pieces together: configuration, scanner, remover,
// and the bubbletea program.
package app

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"burrow/internal/config"
	"burrow/internal/scan"
	"burrow/internal/state"
	"burrow/internal/ui"
)

// Run resolves configuration, validates the start directory, and runs the
// interactive explorer until the user quits.
func Run(args []string) error {
	cfg := config.FromArgs(args)

	path, err := filepath.Abs(cfg.Path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", cfg.Path, err)
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", path)
	}
	cfg.Path = path

	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return fmt.Errorf("interactive mode requires a terminal")
	}

	nav := state.New(path)
	scanner := scan.NewDirScanner(cfg.Workers)
	remover := scan.NewFSRemover()
	model := ui.NewModel(nav, scanner, remover, cfg)

	final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("run ui: %w", err)
	}

	if provider, ok := final.(ui.ConfigProvider); ok {
		// Best effort: a failed save should not turn a clean session
		// into an error exit.
		_ = config.Save(provider.ConfigSnapshot())
	}
	return nil
}
