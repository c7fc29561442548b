package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"burrow/internal/format"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	barStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	promptStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
)

func (model *Model) View() string {
	var view strings.Builder

	view.WriteString(headerStyle.Render(displayPath(model.nav.Path)))
	view.WriteString("\n\n")

	switch {
	case model.scanning:
		files, dirs := int64(0), int64(0)
		if model.counters != nil {
			files, dirs = model.counters.Snapshot()
		}
		view.WriteString(fmt.Sprintf("%s Scanning… %s files, %s dirs\n",
			model.spin.View(),
			humanize.Comma(files),
			humanize.Comma(dirs)))

	case model.status != "" && !model.confirmDelete:
		view.WriteString(errorStyle.Render(model.status))
		view.WriteString("\n")

	case len(model.entries) == 0:
		view.WriteString(dimStyle.Render("(empty directory)"))
		view.WriteString("\n")

	default:
		model.writeEntries(&view)
	}

	view.WriteString("\n")
	if model.confirmDelete {
		view.WriteString(promptStyle.Render(model.status))
	} else if !model.scanning && model.status == "" {
		view.WriteString(dimStyle.Render(fmt.Sprintf("Total: %s in %s",
			format.Humanize(model.totalSize), model.duration.Round(time.Millisecond))))
	}
	view.WriteString("\n")
	view.WriteString(dimStyle.Render("↑/↓ move · enter open · ← back · r refresh · h hidden · d delete · q quit"))
	view.WriteString("\n")
	return view.String()
}

func (model *Model) writeEntries(view *strings.Builder) {
	height := model.viewportHeight()
	start := model.nav.Offset
	end := start + height
	if end > len(model.entries) {
		end = len(model.entries)
	}

	for index := start; index < end; index++ {
		entry := model.entries[index]

		marker := "  "
		if index == model.nav.Cursor {
			marker = "> "
		}

		icon := "📄"
		name := entry.Name
		if entry.IsDir {
			icon = "📁"
			name += "/"
		}
		if entry.Incomplete {
			name += " ?"
		}

		size := fmt.Sprintf("%10s", format.Humanize(entry.Size))
		bar := barStyle.Render(format.Bar(entry.Size, model.totalSize, barWidth))

		row := fmt.Sprintf("%s%s %s %s  %s", marker, size, bar, icon, name)
		if index == model.nav.Cursor {
			row = selectedStyle.Render(row)
		}
		view.WriteString(row)
		view.WriteString("\n")
	}

	if remaining := len(model.entries) - end; remaining > 0 {
		view.WriteString(dimStyle.Render(fmt.Sprintf("  … %d more", remaining)))
		view.WriteString("\n")
	}
}
