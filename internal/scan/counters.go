package scan

import "sync/atomic"

// Counters tracks the progress of one in-flight scan. A fresh instance is
// injected per scan session, so walkers from a superseded scan can never
// pollute the counters of the current one.
type Counters struct {
	files atomic.Int64
	dirs  atomic.Int64
}

func NewCounters() *Counters {
	return &Counters{}
}

func (c *Counters) AddFile() {
	c.files.Add(1)
}

func (c *Counters) AddDir() {
	c.dirs.Add(1)
}

// Snapshot returns the current counts. It may trail in-flight increments
// by a few updates; callers use it for progress display only.
func (c *Counters) Snapshot() (files, dirs int64) {
	return c.files.Load(), c.dirs.Load()
}

// Reset zeroes both counts. Callers must sequence this so that no scan is
// still incrementing.
func (c *Counters) Reset() {
	c.files.Store(0)
	c.dirs.Store(0)
}
