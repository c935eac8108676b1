// Package logtest provides an in-memory logger for tests.
package logtest

import (
	"fmt"
	"strings"
	"sync"
)

// Entry is one recorded log line.
type Entry struct {
	Level string
	Text  string
}

// Recorder satisfies the Logger interfaces of the check, rename and pipeline
// packages and keeps every line in memory.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

func (r *Recorder) add(level, format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, Entry{Level: level, Text: fmt.Sprintf(format, args...)})
}

func (r *Recorder) Info(format string, args ...any)    { r.add("INFO", format, args...) }
func (r *Recorder) Success(format string, args ...any) { r.add("SUCCESS", format, args...) }
func (r *Recorder) Warn(format string, args ...any)    { r.add("WARN", format, args...) }
func (r *Recorder) Error(format string, args ...any)   { r.add("ERROR", format, args...) }
func (r *Recorder) Debug(format string, args ...any)   { r.add("DEBUG", format, args...) }

// Entries returns a copy of everything logged so far.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Entry(nil), r.entries...)
}

// Lines returns the text of every entry at level.
func (r *Recorder) Lines(level string) []string {
	var out []string
	for _, e := range r.Entries() {
		if e.Level == level {
			out = append(out, e.Text)
		}
	}
	return out
}

// Contains reports whether some entry at level contains substr.
func (r *Recorder) Contains(level, substr string) bool {
	for _, line := range r.Lines(level) {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}
