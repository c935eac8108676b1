// Package cleanup deletes folders that the folder check reported as extra.
package cleanup

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Protected is the top-level folder that is never deleted, even when the
// allow-list does not name it.
const Protected = "element"

// Logger is the logging surface used by this package.
type Logger interface {
	Info(string, ...any)
	Success(string, ...any)
	Warn(string, ...any)
	Error(string, ...any)
}

// Result lists what happened to each requested folder. Paths are the
// slash-separated relative paths that were passed in.
type Result struct {
	Deleted   []string
	Protected []string
	Failed    map[string]error
}

// DeleteExtraFolders removes every folder in extra (relative to root) with its
// contents. A top-level Protected folder is kept. With dryRun set nothing is
// removed and the folders that would go are reported as deleted.
func DeleteExtraFolders(root string, extra []string, dryRun bool, log Logger) Result {
	res := Result{Failed: make(map[string]error)}
	if len(extra) == 0 {
		log.Info("No extra folders to delete.")
		return res
	}

	for _, rel := range extra {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if strings.EqualFold(strings.Trim(rel, "/"), Protected) {
			log.Warn("Skipping %s (protected)", path)
			res.Protected = append(res.Protected, rel)
			continue
		}
		if dryRun {
			log.Info("Would delete %s", path)
			res.Deleted = append(res.Deleted, rel)
			continue
		}
		if err := remove(root, path); err != nil {
			log.Error("Error deleting %s: %v", path, err)
			res.Failed[rel] = err
			continue
		}
		log.Success("Deleted %s", path)
		res.Deleted = append(res.Deleted, rel)
	}
	return res
}

// remove deletes path after making sure it lies strictly inside root.
func remove(root, path string) error {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return fmt.Errorf("%s is not inside %s", path, root)
	}
	info, err := os.Lstat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", path)
	}
	return os.RemoveAll(path)
}
