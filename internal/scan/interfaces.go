package scan

import "context"

// Scanner produces a sized listing of a directory's immediate children.
type Scanner interface {
	Scan(ctx context.Context, req Request) (Result, error)
}

// Remover deletes a single entry from disk.
type Remover interface {
	Remove(ctx context.Context, path string) error
}
