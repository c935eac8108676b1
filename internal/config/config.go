// Package config holds runtime configuration: defaults, CLI flag binding,
// validation, and the two plain-text inputs that sit next to the executable
// (the folder allow-list and the event-name file).
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/backmassage/spritenorm/internal/layout"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Default file names, resolved beside the executable.
const (
	DefaultAllowListName = "FolderCheckerConfig.txt"
	DefaultEventFileName = "EventName.txt"
	DefaultExtension     = ".png"
)

// Config holds all runtime settings. It is populated by [DefaultConfig],
// then by flags bound with [BindFlags], and checked with [Config.Validate].
type Config struct {
	// Root of the event sprite tree (positional argument).
	RootDir string `validate:"required"`

	// Inputs.
	AllowListFile string `validate:"required"`
	EventFile     string // Ignored when EventName is set.
	EventName     string // --event override.

	// Sprite selection.
	Extension string   `validate:"required,startswith=.,excludesall=/*?"`
	Zones     []string // Rename units; empty means all.

	// Behavior.
	AssumeYes  bool   // Skip the confirmation prompt.
	DryRun     bool   // Plan renames without moving files.
	ReportFile string // Optional YAML run report.

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode `validate:"oneof=auto always never"`
	LogFile   string
}

// DefaultConfig returns a Config whose input files live beside the executable.
func DefaultConfig() Config {
	return Config{
		AllowListFile: BesideExecutable(DefaultAllowListName),
		EventFile:     BesideExecutable(DefaultEventFileName),
		Extension:     DefaultExtension,
		ColorMode:     ColorAuto,
	}
}

// BesideExecutable joins name to the directory of the running binary, or
// returns name unchanged when that directory cannot be determined.
func BesideExecutable(name string) string {
	exe, err := os.Executable()
	if err != nil {
		return name
	}
	return filepath.Join(filepath.Dir(exe), name)
}

// NormalizeDirArg strips trailing separators from a directory path.
// The filesystem root is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" || path == `\` {
		return path
	}
	return strings.TrimRight(path, `/\`)
}

// NormalizeExt lower-cases ext and makes sure it starts with a dot.
func NormalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" || strings.HasPrefix(ext, ".") {
		return ext
	}
	return "." + ext
}

// Pattern returns the file glob matching the configured extension.
func (c *Config) Pattern() string {
	return "*" + c.Extension
}

// Units converts Zones to typed rename units.
func (c *Config) Units() ([]layout.Zone, error) {
	units := make([]layout.Zone, 0, len(c.Zones))
	for _, z := range c.Zones {
		u, err := layout.ParseUnit(z)
		if err != nil {
			return nil, err
		}
		units = append(units, u)
	}
	return units, nil
}

var validate = validator.New()

// Validate normalizes the extension and checks every field.
func (c *Config) Validate() error {
	c.Extension = NormalizeExt(c.Extension)
	c.RootDir = NormalizeDirArg(c.RootDir)

	if err := validate.Struct(c); err != nil {
		return friendlyError(err)
	}
	if _, err := c.Units(); err != nil {
		return err
	}
	return nil
}

// friendlyError turns validator errors into one readable line.
func friendlyError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, fieldMessage(e))
	}
	return errors.New(strings.Join(msgs, "; "))
}

func fieldMessage(e validator.FieldError) string {
	switch e.Field() {
	case "RootDir":
		return "need exactly one root directory"
	case "AllowListFile":
		return "folder allow-list path must not be empty"
	case "ColorMode":
		return fmt.Sprintf("invalid color mode %q (use 'auto', 'always' or 'never')", e.Value())
	case "Extension":
		return fmt.Sprintf("invalid extension %q (use e.g. '.png')", e.Value())
	}
	return fmt.Sprintf("invalid %s (%s)", e.Field(), e.Tag())
}
