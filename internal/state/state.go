package state

import "path/filepath"

// Snapshot is one remembered position on the history stack.
type Snapshot struct {
	Path   string
	Cursor int
	Offset int
}

// State is the navigation state of the explorer: where the user is, which
// row is selected, how far the list is scrolled, and where they came from.
// It is owned by the UI goroutine; background scans never touch it.
type State struct {
	Path    string
	Cursor  int
	Offset  int
	history []Snapshot
}

func New(path string) *State {
	return &State{Path: path}
}

// Descend pushes the current position onto the history stack and moves
// into child with a reset cursor and scroll.
func (nav *State) Descend(child string) {
	nav.history = append(nav.history, Snapshot{Path: nav.Path, Cursor: nav.Cursor, Offset: nav.Offset})
	nav.Path = child
	nav.Cursor = 0
	nav.Offset = 0
}

// Back pops the most recent snapshot and restores it verbatim. It reports
// false when the history is empty and nothing changed.
func (nav *State) Back() bool {
	if len(nav.history) == 0 {
		return false
	}
	last := nav.history[len(nav.history)-1]
	nav.history = nav.history[:len(nav.history)-1]
	nav.Path = last.Path
	nav.Cursor = last.Cursor
	nav.Offset = last.Offset
	return true
}

// Ascend is Back when history exists. With empty history it moves to the
// filesystem parent fresh, pushing nothing since there is no prior
// position to restore. At a root (parent equals self) it reports false
// and changes nothing.
func (nav *State) Ascend() bool {
	if nav.Back() {
		return true
	}
	parent := filepath.Dir(nav.Path)
	if parent == nav.Path {
		return false
	}
	nav.Path = parent
	nav.Cursor = 0
	nav.Offset = 0
	return true
}

// HasHistory reports whether Back has anywhere to go.
func (nav *State) HasHistory() bool {
	return len(nav.history) > 0
}

// MoveSelection shifts the cursor by delta, clamped to [0, entryCount-1],
// scrolling the offset as needed to keep the cursor inside the viewport.
func (nav *State) MoveSelection(delta, entryCount, viewportHeight int) {
	nav.Cursor += delta
	nav.Clamp(entryCount, viewportHeight)
}

// Clamp forces cursor and offset back into range after the entry list
// changed underneath them (refresh, delete, resize).
func (nav *State) Clamp(entryCount, viewportHeight int) {
	if entryCount <= 0 {
		nav.Cursor = 0
		nav.Offset = 0
		return
	}
	if nav.Cursor > entryCount-1 {
		nav.Cursor = entryCount - 1
	}
	if nav.Cursor < 0 {
		nav.Cursor = 0
	}
	if viewportHeight < 1 {
		viewportHeight = 1
	}
	if nav.Cursor < nav.Offset {
		nav.Offset = nav.Cursor
	}
	if nav.Cursor >= nav.Offset+viewportHeight {
		nav.Offset = nav.Cursor - viewportHeight + 1
	}
	maxOffset := entryCount - viewportHeight
	if maxOffset < 0 {
		maxOffset = 0
	}
	if nav.Offset > maxOffset {
		nav.Offset = maxOffset
	}
	if nav.Offset < 0 {
		nav.Offset = 0
	}
}
