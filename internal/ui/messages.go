package ui

import "burrow/internal/scan"

// scanResultMsg carries a finished scan back into Update. The generation
// tag identifies which request produced it so results from superseded
// scans can be discarded.
type scanResultMsg struct {
	generation uint64
	result     scan.Result
	err        error
}

// deleteResultMsg reports the outcome of a remove operation.
type deleteResultMsg struct {
	path string
	err  error
}
