package scan

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"burrow/internal/domain"
)

// DefaultWorkers bounds how many children are sized at once. Sizing is
// filesystem-bound, so the limit is deliberately small and independent of
// the number of children in the directory.
const DefaultWorkers = 10

// DirScanner sizes the immediate children of a directory with a bounded
// pool of concurrent workers.
type DirScanner struct {
	workers int
}

func NewDirScanner(workers int) *DirScanner {
	if workers < 1 {
		workers = DefaultWorkers
	}
	return &DirScanner{workers: workers}
}

// Scan lists the immediate children of req.RootPath and sizes each one:
// files with a single stat, directories with a full recursive walk. The
// only caller-visible failure is the root listing itself; errors below a
// child degrade that child's size to a possibly-undercounted value instead
// of failing the scan. The result is assembled only after every worker has
// finished, so no entry is ever delivered partially sized.
func (scanner *DirScanner) Scan(ctx context.Context, req Request) (Result, error) {
	start := time.Now()

	children, err := os.ReadDir(req.RootPath)
	if err != nil {
		return Result{}, err
	}

	counters := req.Counters
	if counters == nil {
		counters = NewCounters()
	}

	listed := make([]os.DirEntry, 0, len(children))
	for _, child := range children {
		if !req.ShowHidden && isHidden(child.Name()) {
			continue
		}
		listed = append(listed, child)
	}

	// Each entry lands at its enumeration index so the stable sort below
	// can keep filesystem order as the tie-break.
	entries := make([]domain.Entry, len(listed))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(scanner.workers)
	for i, child := range listed {
		i, child := i, child
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			entry := domain.Entry{
				Name:  child.Name(),
				Path:  filepath.Join(req.RootPath, child.Name()),
				IsDir: child.IsDir(),
			}
			if child.IsDir() {
				entry.Size, entry.Incomplete = sizeOf(entry.Path, counters, req.ShowHidden)
			} else {
				counters.AddFile()
				if info, err := child.Info(); err == nil {
					entry.Size = info.Size()
				} else {
					entry.Incomplete = true
				}
			}
			entries[i] = entry
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return Result{}, err
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Size > entries[j].Size
	})

	var total int64
	for _, entry := range entries {
		total += entry.Size
	}

	return Result{
		RootPath:  req.RootPath,
		Entries:   entries,
		TotalSize: total,
		Duration:  time.Since(start),
	}, nil
}
