package rename

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// claims tracks the target paths taken during one run so that two sources
// never end up on the same name, including in a dry run where nothing moves.
// Paths are compared case-insensitively.
type claims struct {
	owners  map[string]string // lower(target) → source that owns it
	vacated map[string]bool   // lower(source) already moved away
}

func newClaims() *claims {
	return &claims{
		owners:  make(map[string]string),
		vacated: make(map[string]bool),
	}
}

// claim reserves to for from. It fails when another source owns to, or when
// to exists on disk and has not been moved away earlier in the run.
func (c *claims) claim(from, to string) error {
	key := strings.ToLower(to)
	if owner, ok := c.owners[key]; ok && owner != from {
		return fmt.Errorf("%w: %s is taken by %s", ErrTargetExists, filepath.Base(to), filepath.Base(owner))
	}
	if !c.vacated[key] {
		if _, err := os.Lstat(to); err == nil {
			return fmt.Errorf("%w: %s", ErrTargetExists, filepath.Base(to))
		}
	}
	c.owners[key] = from
	return nil
}

// drop releases a claim whose move failed.
func (c *claims) drop(to string) {
	delete(c.owners, strings.ToLower(to))
}

// vacate records that from no longer exists under its old name.
func (c *claims) vacate(from string) {
	c.vacated[strings.ToLower(from)] = true
}
