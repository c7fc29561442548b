// Package format holds the pure display helpers: byte humanization and
// proportional bar sizing. No state, no I/O.
package format

import (
	"fmt"
	"strings"
)

// Humanize renders a byte count with binary (1024) units and one decimal
// place above the smallest unit: "512 B", "1023 B", "1.0 KB", "5.5 MB".
func Humanize(size int64) string {
	if size < 0 {
		size = 0
	}
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(size)/float64(div), "KMGTPE"[exp])
}

// ProportionalWidth maps size/total onto [0, maxWidth] for bar rendering.
// An empty directory (total 0) always maps to 0.
func ProportionalWidth(size, total int64, maxWidth int) int {
	if total <= 0 || maxWidth <= 0 || size <= 0 {
		return 0
	}
	width := int(float64(size) / float64(total) * float64(maxWidth))
	if width > maxWidth {
		return maxWidth
	}
	return width
}

// Bar renders a fixed-width usage bar, filled proportionally to size/total.
func Bar(size, total int64, width int) string {
	filled := ProportionalWidth(size, total, width)
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
