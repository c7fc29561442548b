package domain

// Entry is one immediate child of a scanned directory together with the
// bytes it owns: its own length for a file, the recursive sum of all
// descendant file lengths for a directory. Entries are built fresh on
// every scan and never mutated afterwards.
type Entry struct {
	Name  string
	Path  string
	Size  int64
	IsDir bool
	// Incomplete marks an entry whose size is possibly undercounted
	// because errors were swallowed somewhere beneath it.
	Incomplete bool
}
