package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"
)

// Placeholder event names returned by [LoadEventName] when no usable name exists.
const (
	EventUnknown = "Unknown Event"       // file absent
	EventUnnamed = "Unnamed Event"       // file empty
	EventError   = "Error Reading Event" // file unreadable
)

// LoadEventName returns the trimmed content of the event-name file at path,
// or one of the placeholder names. It never fails; callers decide whether a
// placeholder is acceptable with [IsPlaceholderEvent].
func LoadEventName(path string) string {
	b, err := os.ReadFile(path) //#nosec G304 -- path comes from the user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return EventUnknown
		}
		return EventError
	}
	name := strings.TrimSpace(strings.TrimPrefix(string(b), "\ufeff"))
	if name == "" {
		return EventUnnamed
	}
	return name
}

// IsPlaceholderEvent reports whether name is one of the placeholder names.
func IsPlaceholderEvent(name string) bool {
	switch name {
	case EventUnknown, EventUnnamed, EventError:
		return true
	}
	return false
}

// ResolveEventName returns the --event override when set, else the content of
// the event file.
func (c *Config) ResolveEventName() string {
	if name := strings.TrimSpace(c.EventName); name != "" {
		return name
	}
	return LoadEventName(c.EventFile)
}
