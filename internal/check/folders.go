package check

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/backmassage/spritenorm/internal/config"
	"github.com/backmassage/spritenorm/internal/discover"
)

// FolderReport lists the differences between a tree and its allow-list.
// Paths are slash-separated and relative to the audited root.
type FolderReport struct {
	Missing []string `yaml:"missing"`
	Extra   []string `yaml:"extra"`
}

// IsAllCorrect reports whether the tree matches the allow-list exactly.
func (r FolderReport) IsAllCorrect() bool {
	return len(r.Missing) == 0 && len(r.Extra) == 0
}

// CheckFolders compares the directories under root with allow. Comparison is
// case-insensitive. An extra folder hides its own sub-folders from the report,
// and ignored folders hide everything beneath them. The filesystem is not modified.
func CheckFolders(root string, allow config.AllowList) (FolderReport, error) {
	var report FolderReport

	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return report, fmt.Errorf("%w: %s", discover.ErrDirectoryNotFound, root)
	}

	existing, err := listDirs(root)
	if err != nil {
		return report, err
	}
	onDisk := make(map[string]bool, len(existing))
	for _, rel := range existing {
		onDisk[strings.ToLower(rel)] = true
	}

	allowed := allow.Allowed()
	for key, path := range allowed {
		if _, ignored := allow.Ignored[key]; ignored {
			continue
		}
		if !onDisk[key] {
			report.Missing = append(report.Missing, path)
		}
	}
	sort.Slice(report.Missing, func(i, j int) bool {
		return strings.ToLower(report.Missing[i]) < strings.ToLower(report.Missing[j])
	})

	// existing is in walk order, so a parent is always seen before its children.
	var flagged []string
	for _, rel := range existing {
		lower := strings.ToLower(rel)
		if allow.IsIgnored(rel) || underAny(lower, flagged) {
			continue
		}
		if _, ok := allowed[lower]; ok {
			continue
		}
		report.Extra = append(report.Extra, rel)
		flagged = append(flagged, lower)
	}
	return report, nil
}

// listDirs walks root and returns every directory below it as a slash path.
func listDirs(root string) ([]string, error) {
	var dirs []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() || path == root {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		dirs = append(dirs, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}
	return dirs, nil
}

func underAny(lower string, parents []string) bool {
	for _, p := range parents {
		if strings.HasPrefix(lower, p+"/") {
			return true
		}
	}
	return false
}
