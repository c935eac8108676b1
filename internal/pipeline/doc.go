// Package pipeline runs the spritenorm workflows on one event tree:
//
//	audit   load the allow-list, check folders and sprites, print the reports
//	rename  audit, confirm, lock the tree, rename, summarize, optional YAML report
//	clean   check folders, confirm, delete extra folders
//
// Fatal conditions (allow-list missing or empty, root missing, a lock held by
// another run) are returned as errors. Everything else is reported and the
// run goes on.
package pipeline
