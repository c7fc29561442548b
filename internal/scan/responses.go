package scan

import (
	"time"

	"burrow/internal/domain"
)

// Result is the completed listing of one scan: every immediate child of
// the root, sized, sorted by size descending. A Result is rebuilt from
// scratch on every scan and wholly supersedes the previous one.
type Result struct {
	RootPath  string
	Entries   []domain.Entry
	TotalSize int64
	Duration  time.Duration
}
