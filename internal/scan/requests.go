package scan

// Request describes one scan of a directory's immediate children.
type Request struct {
	// RootPath is the directory whose children are listed and sized.
	RootPath string
	// ShowHidden includes dot entries in the listing and the walks.
	ShowHidden bool
	// Counters receives progress increments for this scan session.
	// When nil, the scan counts into a throwaway instance.
	Counters *Counters
}
