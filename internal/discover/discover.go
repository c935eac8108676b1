// Package discover lists the sprite files of one directory and groups them
// by canonical category.
package discover

import (
	"cmp"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/backmassage/spritenorm/internal/layout"
	"github.com/backmassage/spritenorm/internal/naming"
)

// ErrDirectoryNotFound is returned when a directory to scan does not exist.
var ErrDirectoryNotFound = errors.New("directory not found")

// List returns the regular files directly inside dir whose lower-cased name
// matches pattern (e.g. "*.png"), in lexical name order. Subdirectories and
// non-matching files are ignored.
func List(dir, pattern string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDirectoryNotFound, dir)
		}
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}
	pattern = strings.ToLower(pattern)

	var files []string
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		ok, err := doublestar.Match(pattern, strings.ToLower(e.Name()))
		if err != nil {
			return nil, fmt.Errorf("bad file pattern %q: %w", pattern, err)
		}
		if ok {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	// os.ReadDir already sorts by name; keep the guarantee explicit.
	sort.Strings(files)
	return files, nil
}

// Entry is one grouped file.
type Entry struct {
	Path string
	Name naming.Name
}

// Base returns the file name of e.
func (e Entry) Base() string { return filepath.Base(e.Path) }

// Groups maps categories to files in encounter order.
type Groups struct {
	Dir     string
	buckets map[layout.Category][]Entry
}

// Group lists dir with [List] and buckets every file by the category canon
// assigns it.
func Group(dir, pattern string, canon naming.Canonicalizer) (*Groups, error) {
	files, err := List(dir, pattern)
	if err != nil {
		return nil, err
	}
	g := &Groups{Dir: dir, buckets: make(map[layout.Category][]Entry)}
	for _, f := range files {
		n := canon.Canonicalize(filepath.Base(f))
		cat := layout.Category(n.Category)
		g.buckets[cat] = append(g.buckets[cat], Entry{Path: f, Name: n})
	}
	return g, nil
}

// Has reports whether at least one file belongs to c.
func (g *Groups) Has(c layout.Category) bool {
	return len(g.buckets[c]) > 0
}

// Len returns the number of files in c.
func (g *Groups) Len(c layout.Category) int {
	return len(g.buckets[c])
}

// Categories returns every category present, sorted.
func (g *Groups) Categories() []layout.Category {
	cats := make([]layout.Category, 0, len(g.buckets))
	for c := range g.buckets {
		cats = append(cats, c)
	}
	slices.Sort(cats)
	return cats
}

// Entries returns the files of c in encounter order.
func (g *Groups) Entries(c layout.Category) []Entry {
	return slices.Clone(g.buckets[c])
}

// Sorted returns the files of c ordered by ordinal, files without an
// ordinal first. Equal ordinals keep lexical file-name order.
func (g *Groups) Sorted(c layout.Category) []Entry {
	return SortByOrdinal(g.Entries(c))
}

// All returns every file in category order, each category in encounter order.
func (g *Groups) All() []Entry {
	var out []Entry
	for _, c := range g.Categories() {
		out = append(out, g.buckets[c]...)
	}
	return out
}

// SortByOrdinal sorts entries in place by ordinal and returns them.
func SortByOrdinal(entries []Entry) []Entry {
	slices.SortStableFunc(entries, func(a, b Entry) int {
		if c := cmp.Compare(a.Name.Ordinal, b.Name.Ordinal); c != 0 {
			return c
		}
		return strings.Compare(a.Base(), b.Base())
	})
	return entries
}
