package rename

import (
	"fmt"

	"github.com/backmassage/spritenorm/internal/layout"
)

// Move is one applied (or, in a dry run, planned) rename. Paths are absolute
// or relative to the working directory, as given to Run.
type Move struct {
	Zone layout.Zone `yaml:"zone"`
	From string      `yaml:"from"`
	To   string      `yaml:"to"`
}

// Skip is a file left alone because it cannot be renamed safely.
type Skip struct {
	Zone   layout.Zone `yaml:"zone"`
	File   string      `yaml:"file"`
	Reason string      `yaml:"reason"`
}

// Failure is a move that was attempted and refused.
type Failure struct {
	Move
	Err error
}

// UnmappedError reports a dependent file whose counterpart was not renamed.
// It wraps ErrUnmappedDependentFile.
type UnmappedError struct {
	Zone layout.Zone
	File string
	From layout.Zone
}

func (e *UnmappedError) Error() string {
	return fmt.Sprintf("%s/%s: %v of %s", e.Zone, e.File, ErrUnmappedDependentFile, e.From)
}

func (e *UnmappedError) Unwrap() error { return ErrUnmappedDependentFile }

// Result is the outcome of one Run.
type Result struct {
	Moves      []Move
	Unchanged  int
	Skipped    []Skip
	Unmapped   []*UnmappedError
	Failed     []Failure
	ZoneErrors []layout.ZoneError
}

// Clean reports whether every file was renamed or already in place.
func (r *Result) Clean() bool {
	return len(r.Skipped) == 0 && len(r.Unmapped) == 0 && len(r.Failed) == 0 && len(r.ZoneErrors) == 0
}
