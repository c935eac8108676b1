package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"
	"strings"
)

var (
	// ErrConfigNotFound is returned when the folder allow-list file does not exist.
	ErrConfigNotFound = errors.New("folder allow-list not found")
	// ErrEmptyAllowList is returned when the allow-list names no top-level folder.
	ErrEmptyAllowList = errors.New("folder allow-list has no top-level folders")
)

// AllowList is the folder layout an event tree must have. Keys are compared
// case-insensitively; the spelling from the file is kept for reports.
//
// File format, one entry per line:
//
//	equipment          required top-level folder
//	equipment\icon     required nested folder
//	-element           ignored folder: valid, never reported missing, contents unchecked
//	*skin*             surrounding '*' and '-' are stripped
type AllowList struct {
	Top     map[string]string            // lower(name) → name
	Sub     map[string]map[string]string // lower(parent) → lower(sub path) → sub path
	Ignored map[string]string            // lower(slash path) → slash path
}

// NewAllowList returns an empty AllowList.
func NewAllowList() AllowList {
	return AllowList{
		Top:     make(map[string]string),
		Sub:     make(map[string]map[string]string),
		Ignored: make(map[string]string),
	}
}

// LoadAllowList reads and parses the allow-list at path.
func LoadAllowList(path string) (AllowList, error) {
	f, err := os.Open(path) //#nosec G304 -- path comes from the user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return AllowList{}, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return AllowList{}, fmt.Errorf("read folder allow-list: %w", err)
	}
	defer f.Close()

	al, err := ParseAllowList(f)
	if err != nil {
		return AllowList{}, fmt.Errorf("read folder allow-list %s: %w", path, err)
	}
	if len(al.Top) == 0 {
		return al, fmt.Errorf("%w: %s", ErrEmptyAllowList, path)
	}
	return al, nil
}

// ParseAllowList parses allow-list entries from r. Blank lines are skipped.
func ParseAllowList(r io.Reader) (AllowList, error) {
	al := NewAllowList()
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		ignored := strings.HasPrefix(line, "-")
		entry := strings.Trim(line, "*-")
		parts := splitEntry(entry)
		if len(parts) == 0 {
			continue
		}

		if ignored {
			p := strings.Join(parts, "/")
			al.Ignored[strings.ToLower(p)] = p
			continue
		}
		if len(parts) == 1 {
			al.Top[strings.ToLower(parts[0])] = parts[0]
			continue
		}
		parent := strings.ToLower(parts[0])
		sub := strings.Join(parts[1:], "/")
		if al.Sub[parent] == nil {
			al.Sub[parent] = make(map[string]string)
		}
		al.Sub[parent][strings.ToLower(sub)] = parts[0] + "/" + sub
	}
	return al, sc.Err()
}

// splitEntry splits a config entry on '\' or '/' and drops empty parts.
func splitEntry(entry string) []string {
	fields := strings.FieldsFunc(entry, func(r rune) bool { return r == '\\' || r == '/' })
	out := fields[:0]
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// Allowed returns every required folder as a slash path keyed by its lower-case form.
func (a AllowList) Allowed() map[string]string {
	out := make(map[string]string, len(a.Top))
	for k, v := range a.Top {
		out[k] = v
	}
	for parent, subs := range a.Sub {
		for sub, path := range subs {
			out[parent+"/"+sub] = path
		}
	}
	return out
}

// IsIgnored reports whether rel (slash path) is an ignored folder or lies under one.
func (a AllowList) IsIgnored(rel string) bool {
	lower := strings.ToLower(rel)
	if _, ok := a.Ignored[lower]; ok {
		return true
	}
	for ig := range a.Ignored {
		if strings.HasPrefix(lower, ig+"/") {
			return true
		}
	}
	return false
}

// Counts returns the number of top-level folders, sub-folder groups and ignored folders.
func (a AllowList) Counts() (top, subGroups, ignored int) {
	return len(a.Top), len(a.Sub), len(a.Ignored)
}

// sortedValues returns the values of m sorted by key.
func sortedValues(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = m[k]
	}
	return out
}

// TopFolders returns the required top-level folders in sorted order.
func (a AllowList) TopFolders() []string { return sortedValues(a.Top) }
