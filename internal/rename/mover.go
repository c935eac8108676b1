package rename

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Mover applies a single rename.
type Mover interface {
	Move(from, to string) error
}

// OSMover renames files on disk. It never overwrites: an existing target
// fails with ErrTargetExists.
type OSMover struct{}

func (OSMover) Move(from, to string) error {
	if _, err := os.Lstat(to); err == nil {
		return fmt.Errorf("%w: %s", ErrTargetExists, to)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat %s: %w", to, err)
	}
	if err := os.Rename(from, to); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}

// DryRunMover accepts every move and changes nothing.
type DryRunMover struct{}

func (DryRunMover) Move(string, string) error { return nil }
