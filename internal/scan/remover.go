package scan

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FSRemover deletes entries from the local filesystem.
type FSRemover struct{}

func NewFSRemover() *FSRemover {
	return &FSRemover{}
}

// Remove deletes path recursively. The filesystem root and the user's
// home directory are refused outright.
func (remover *FSRemover) Remove(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if abs == string(filepath.Separator) {
		return fmt.Errorf("refusing to delete %q", abs)
	}
	if home, homeErr := os.UserHomeDir(); homeErr == nil && abs == home {
		return fmt.Errorf("refusing to delete %q", abs)
	}
	return os.RemoveAll(abs)
}
