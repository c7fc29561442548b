package scan

import (
	"context"
	"time"
)

// MockScanner returns a canned result, optionally after a delay. UI tests
// use it to exercise scan sequencing without touching the filesystem.
type MockScanner struct {
	Result Result
	Err    error
	Delay  time.Duration
}

func (scanner *MockScanner) Scan(ctx context.Context, req Request) (Result, error) {
	if scanner.Delay > 0 {
		select {
		case <-ctx.Done():
			return Result{}, ctx.Err()
		case <-time.After(scanner.Delay):
		}
	}
	if scanner.Err != nil {
		return Result{}, scanner.Err
	}
	result := scanner.Result
	result.RootPath = req.RootPath
	return result, nil
}

// MockRemover records removals instead of performing them.
type MockRemover struct {
	Removed []string
	Err     error
}

func (remover *MockRemover) Remove(ctx context.Context, path string) error {
	if remover.Err != nil {
		return remover.Err
	}
	remover.Removed = append(remover.Removed, path)
	return nil
}
