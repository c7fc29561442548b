package scan

import (
	"io/fs"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/charlievieth/fastwalk"
)

// walkWorkers caps fastwalk's internal parallelism. Directory walks
// already run inside the scanner's bounded worker pool, so each walk only
// gets a small slice of its own.
const walkWorkers = 4

// sizeOf sums the lengths of every regular file beneath root. Errors along
// the way are swallowed: the failing subtree contributes 0 bytes, sibling
// subtrees keep walking, and the returned incomplete flag is set. Every
// directory visited (root included) bumps the dirs counter exactly once
// and every file the files counter, atomically, since walks for other
// children run concurrently against the same counters.
func sizeOf(root string, counters *Counters, showHidden bool) (int64, bool) {
	var total atomic.Int64
	var incomplete atomic.Bool

	conf := &fastwalk.Config{
		Follow:     false,
		NumWorkers: walkWorkers,
	}
	err := fastwalk.Walk(conf, root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			incomplete.Store(true)
			return nil
		}
		if entry.IsDir() {
			if path != root && !showHidden && isHidden(entry.Name()) {
				return filepath.SkipDir
			}
			counters.AddDir()
			return nil
		}
		if !showHidden && isHidden(entry.Name()) {
			return nil
		}
		counters.AddFile()
		if !entry.Type().IsRegular() {
			return nil
		}
		info, err := entry.Info()
		if err != nil {
			incomplete.Store(true)
			return nil
		}
		total.Add(info.Size())
		return nil
	})
	if err != nil {
		incomplete.Store(true)
	}
	return total.Load(), incomplete.Load()
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
