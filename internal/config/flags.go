package config

// This file binds Config fields to pflag flag sets. Commands own the flag
// sets (cobra); this package only knows which flag fills which field.
// --no-color is captured separately and folded into ColorMode by [Flags.Apply]
// so the default from DefaultConfig holds unless the user passes it.

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// Flags holds values that are applied to the Config after parsing.
type Flags struct {
	noColor bool
}

// BindFlags registers the flags shared by every command on fs.
func BindFlags(fs *pflag.FlagSet, cfg *Config) *Flags {
	f := &Flags{}
	defineInputFlags(fs, cfg)
	defineDisplayFlags(fs, cfg, f)
	return f
}

// BindRenameFlags registers the flags of the rename command on fs.
func BindRenameFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.StringSliceVarP(&cfg.Zones, "zone", "z", nil, "Rename only these zones: equipment, pet, skin, ingredient, npc (repeatable)")
	fs.StringVar(&cfg.ReportFile, "report", "", "Write a YAML report of the run to this file")
	BindChangeFlags(fs, cfg)
}

// BindChangeFlags registers --dry-run and --yes for commands that modify the tree.
func BindChangeFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.BoolVarP(&cfg.DryRun, "dry-run", "d", false, "Show what would change; do not touch files")
	fs.BoolVarP(&cfg.AssumeYes, "yes", "y", false, "Do not ask for confirmation")
}

// defineInputFlags registers --config, --event-file, --event and --ext.
func defineInputFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.AllowListFile, "config", cfg.AllowListFile, "Folder allow-list file")
	fs.StringVar(&cfg.EventFile, "event-file", cfg.EventFile, "File holding the event name")
	fs.StringVarP(&cfg.EventName, "event", "e", "", "Event name (overrides --event-file)")
	fs.StringVar(&cfg.Extension, "ext", cfg.Extension, "Sprite file extension")
}

// defineDisplayFlags registers --color, --no-color, --verbose and --log.
func defineDisplayFlags(fs *pflag.FlagSet, cfg *Config, f *Flags) {
	fs.Var(&colorModeValue{&cfg.ColorMode}, "color", "Colored logs: auto | always | never")
	fs.Lookup("color").NoOptDefVal = string(ColorAlways)
	fs.BoolVar(&f.noColor, "no-color", false, "Same as --color=never")
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Verbose output")
	fs.StringVarP(&cfg.LogFile, "log", "l", "", "Append logs to file")
}

// Apply folds captured flags into cfg. --no-color wins over --color.
func (f *Flags) Apply(cfg *Config) {
	if f.noColor {
		cfg.ColorMode = ColorNever
	}
}

// colorModeValue adapts ColorMode to pflag.Value.
type colorModeValue struct{ p *ColorMode }

func (c *colorModeValue) String() string {
	if c.p == nil {
		return ""
	}
	return string(*c.p)
}

func (c *colorModeValue) Set(s string) error {
	switch strings.ToLower(s) {
	case "auto":
		*c.p = ColorAuto
	case "always":
		*c.p = ColorAlways
	case "never":
		*c.p = ColorNever
	default:
		return fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", s)
	}
	return nil
}

func (c *colorModeValue) Type() string { return "mode" }
