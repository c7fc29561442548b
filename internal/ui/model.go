package ui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"burrow/internal/config"
	"burrow/internal/domain"
	"burrow/internal/scan"
	"burrow/internal/state"
)

const barWidth = 20

// ConfigProvider exposes the preferences a model accumulated during a
// session so the caller can persist them on exit.
type ConfigProvider interface {
	ConfigSnapshot() config.Config
}

// Model is the bubbletea model for the explorer. All mutation happens in
// Update; scans run in the background and report back as messages.
type Model struct {
	nav     *state.State
	scanner scan.Scanner
	remover scan.Remover
	keys    keyMap
	spin    spinner.Model

	entries   []domain.Entry
	totalSize int64
	duration  time.Duration
	status    string
	scanning  bool

	showHidden bool
	workers    int

	// generation tags scan requests so that results from a scan that was
	// superseded by navigation are dropped instead of overwriting state.
	generation uint64
	counters   *scan.Counters
	scanCancel context.CancelFunc

	confirmDelete bool
	deleteTarget  domain.Entry

	width  int
	height int
}

func NewModel(nav *state.State, scanner scan.Scanner, remover scan.Remover, cfg config.Config) *Model {
	spin := spinner.New()
	spin.Spinner = spinner.MiniDot
	return &Model{
		nav:        nav,
		scanner:    scanner,
		remover:    remover,
		keys:       defaultKeyMap(),
		spin:       spin,
		showHidden: cfg.ShowHidden,
		workers:    cfg.Workers,
		width:      80,
		height:     24,
	}
}

func (model *Model) Init() tea.Cmd {
	return tea.Batch(model.beginScan(), model.spin.Tick)
}

func (model *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		model.width = msg.Width
		model.height = msg.Height
		model.nav.Clamp(len(model.entries), model.viewportHeight())
		return model, nil

	case spinner.TickMsg:
		if !model.scanning {
			return model, nil
		}
		var cmd tea.Cmd
		model.spin, cmd = model.spin.Update(msg)
		return model, cmd

	case scanResultMsg:
		return model.handleScanResult(msg)

	case deleteResultMsg:
		if msg.err != nil {
			model.status = fmt.Sprintf("delete failed: %v", msg.err)
			return model, nil
		}
		return model, model.beginScan()

	case tea.KeyMsg:
		return model.handleKey(msg)
	}
	return model, nil
}

func (model *Model) handleScanResult(msg scanResultMsg) (tea.Model, tea.Cmd) {
	if msg.generation != model.generation {
		return model, nil
	}
	model.scanning = false
	if msg.err != nil {
		if errors.Is(msg.err, context.Canceled) {
			return model, nil
		}
		model.entries = nil
		model.totalSize = 0
		model.status = fmt.Sprintf("scan failed: %v", msg.err)
		model.nav.Clamp(0, model.viewportHeight())
		return model, nil
	}
	model.entries = msg.result.Entries
	model.totalSize = msg.result.TotalSize
	model.duration = msg.result.Duration
	model.status = ""
	model.nav.Clamp(len(model.entries), model.viewportHeight())
	return model, nil
}

func (model *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if model.confirmDelete {
		model.confirmDelete = false
		if msg.String() == "y" {
			return model, model.deleteCmd(model.deleteTarget)
		}
		model.status = ""
		return model, nil
	}

	switch {
	case key.Matches(msg, model.keys.Quit):
		if model.nav.Back() {
			return model, model.beginScan()
		}
		return model, tea.Quit

	case key.Matches(msg, model.keys.Up):
		model.nav.MoveSelection(-1, len(model.entries), model.viewportHeight())
		return model, nil

	case key.Matches(msg, model.keys.Down):
		model.nav.MoveSelection(1, len(model.entries), model.viewportHeight())
		return model, nil

	case key.Matches(msg, model.keys.Descend):
		if model.scanning {
			return model, nil
		}
		selected, ok := model.selected()
		if !ok || !selected.IsDir {
			return model, nil
		}
		model.nav.Descend(selected.Path)
		return model, model.beginScan()

	case key.Matches(msg, model.keys.Back):
		if model.nav.Ascend() {
			return model, model.beginScan()
		}
		return model, nil

	case key.Matches(msg, model.keys.Refresh):
		if model.scanning {
			return model, nil
		}
		return model, model.beginScan()

	case key.Matches(msg, model.keys.Hidden):
		model.showHidden = !model.showHidden
		return model, model.beginScan()

	case key.Matches(msg, model.keys.Delete):
		if model.scanning {
			return model, nil
		}
		selected, ok := model.selected()
		if !ok {
			return model, nil
		}
		model.confirmDelete = true
		model.deleteTarget = selected
		model.status = fmt.Sprintf("delete %s? (y/n)", selected.Name)
		return model, nil
	}
	return model, nil
}

// beginScan cancels any in-flight scan, bumps the generation, and kicks
// off a fresh scan of the current directory with fresh counters.
func (model *Model) beginScan() tea.Cmd {
	if model.scanCancel != nil {
		model.scanCancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	model.scanCancel = cancel

	model.generation++
	model.scanning = true
	model.status = ""
	model.counters = scan.NewCounters()

	generation := model.generation
	request := scan.Request{
		RootPath:   model.nav.Path,
		ShowHidden: model.showHidden,
		Counters:   model.counters,
	}
	scanner := model.scanner
	return tea.Batch(
		func() tea.Msg {
			result, err := scanner.Scan(ctx, request)
			return scanResultMsg{generation: generation, result: result, err: err}
		},
		model.spin.Tick,
	)
}

func (model *Model) deleteCmd(target domain.Entry) tea.Cmd {
	remover := model.remover
	return func() tea.Msg {
		err := remover.Remove(context.Background(), target.Path)
		return deleteResultMsg{path: target.Path, err: err}
	}
}

func (model *Model) selected() (domain.Entry, bool) {
	if model.nav.Cursor < 0 || model.nav.Cursor >= len(model.entries) {
		return domain.Entry{}, false
	}
	return model.entries[model.nav.Cursor], true
}

// viewportHeight is the number of entry rows that fit between the header
// and footer chrome.
func (model *Model) viewportHeight() int {
	height := model.height - 6
	if height < 5 {
		height = 5
	}
	return height
}

func (model *Model) ConfigSnapshot() config.Config {
	return config.Config{
		Path:       model.nav.Path,
		ShowHidden: model.showHidden,
		Workers:    model.workers,
	}
}

// displayPath abbreviates the home directory prefix to ~ for the header.
func displayPath(path string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	if path == home {
		return "~"
	}
	if strings.HasPrefix(path, home+string(filepath.Separator)) {
		return "~" + path[len(home):]
	}
	return path
}
