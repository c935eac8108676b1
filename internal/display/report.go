// Package display prints the banner and the human-readable audit, rename and
// cleanup reports.
package display

import (
	"github.com/backmassage/spritenorm/internal/check"
	"github.com/backmassage/spritenorm/internal/cleanup"
	"github.com/backmassage/spritenorm/internal/rename"
)

// Logger is the output surface of the report printers.
type Logger interface {
	Info(string, ...any)
	Success(string, ...any)
	Warn(string, ...any)
	Error(string, ...any)
}

// PrintFolderReport prints missing and extra folders, or a success line for each empty list.
func PrintFolderReport(log Logger, rep check.FolderReport) {
	log.Info("Folder check results:")
	printList(log, "Missing folders:", "No missing folders.", rep.Missing)
	printList(log, "Extra folders:", "No extra folders.", rep.Extra)
	log.Success("Folder check complete.")
}

// PrintSpriteReport prints sprite findings grouped as missing and invalid,
// then any zone that could not be checked.
func PrintSpriteReport(log Logger, rep check.SpriteReport) {
	log.Info("Sprite check results:")
	printList(log, "Missing files:", "No missing files.", findingLines(rep.Missing))
	printList(log, "Invalid files:", "No invalid files.", findingLines(rep.Invalid))
	for _, ze := range rep.Errors {
		log.Error("Not checked: %v", ze)
	}
}

func findingLines(fs []check.Finding) []string {
	sorted := append([]check.Finding(nil), fs...)
	check.SortFindings(sorted)
	out := make([]string, len(sorted))
	for i, f := range sorted {
		out[i] = f.String()
	}
	return out
}

func printList(log Logger, title, empty string, items []string) {
	if len(items) == 0 {
		log.Success("%s", empty)
		return
	}
	log.Warn("%s", title)
	for _, it := range items {
		log.Info("  - %s", it)
	}
}

// PrintRenameSummary prints the totals of a rename run followed by every
// problem that needs attention.
func PrintRenameSummary(log Logger, res *rename.Result, dryRun bool) {
	verb := "renamed"
	if dryRun {
		verb = "to rename"
	}
	log.Info("==============================")
	log.Info("Done: %s %s, %d unchanged, %d skipped, %d failed",
		Plural(len(res.Moves), "file"), verb, res.Unchanged, len(res.Skipped)+len(res.Unmapped), len(res.Failed))

	for _, u := range res.Unmapped {
		log.Warn("  Unmapped: %v", u)
	}
	for _, f := range res.Failed {
		log.Error("  Failed: %s: %v", FormatMove(f.Move), f.Err)
	}
	for _, ze := range res.ZoneErrors {
		log.Error("  Not renamed: %v", ze)
	}
	if res.Clean() {
		log.Success("All sprites follow the naming scheme.")
	}
}

// PrintCleanupSummary prints the outcome of an extra-folder cleanup.
func PrintCleanupSummary(log Logger, res cleanup.Result, dryRun bool) {
	verb := "deleted"
	if dryRun {
		verb = "to delete"
	}
	log.Info("Done: %s %s, %d protected, %d failed",
		Plural(len(res.Deleted), "folder"), verb, len(res.Protected), len(res.Failed))
}
