package pipeline

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"
)

// LockFileName is created in the root by the first modifying run and kept
// afterwards. Only the lock on it matters, not its existence.
const LockFileName = ".spritenorm.lock"

// ErrLocked is returned when another run holds the lock on the same root.
var ErrLocked = errors.New("another spritenorm run is working on this folder")

// lockRoot takes an exclusive lock on root without waiting. The returned
// function releases it. The file is not removed: a run that opened it while
// we held the lock would otherwise end up locking an unlinked file.
func lockRoot(root string) (func(), error) {
	path := filepath.Join(root, LockFileName)
	lock := flock.New(path)
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("lock %s: %w", path, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w (%s)", ErrLocked, path)
	}
	return func() { _ = lock.Unlock() }, nil
}
