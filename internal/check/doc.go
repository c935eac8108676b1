// Package check audits an event sprite tree without modifying it.
//
// [CheckFolders] compares the directory layout with the folder allow-list.
// [Checker] compares each sprite zone with its icon zone and reports files
// without a counterpart, files whose category is not legal in the zone, and
// mandatory categories that have no file.
package check
