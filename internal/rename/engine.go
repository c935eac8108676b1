// Package rename renames event sprites into the canonical
// "<Event>_<Category>_<index>" scheme while keeping paired directories aligned.
//
// Each rename unit runs in a fixed order:
//
//	equipment, pet   zone and zone/icon get the same index per category
//	skin             skin and skin/icon, then skin/evo continuing the skin
//	                 indices, then skin/evo/icon by looking up the evo renames
//	ingredient       one sequence "<Event> Item_<index>"
//	npc              "<stem>_<Event>" suffix, no reindexing
//
// A missing zone directory is recorded and the remaining units still run.
// Nothing is rolled back: a failure part way through leaves earlier moves in place.
package rename

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/backmassage/spritenorm/internal/layout"
	"github.com/backmassage/spritenorm/internal/naming"
)

var (
	// ErrInvalidEventName is returned by Run for a blank event name or one
	// that cannot be part of a file name.
	ErrInvalidEventName = errors.New("invalid event name")
	// ErrUnmappedDependentFile marks a dependent file with no entry in its rename map.
	ErrUnmappedDependentFile = errors.New("no counterpart in rename map")
	// ErrTargetExists is returned when a move would overwrite another file.
	ErrTargetExists = errors.New("target already exists")
)

// Logger is the logging surface used by the engine.
type Logger interface {
	Info(string, ...any)
	Success(string, ...any)
	Warn(string, ...any)
	Error(string, ...any)
	Debug(string, ...any)
}

// Options tune file selection and naming.
type Options struct {
	// Pattern selects sprite files in a zone directory. Default "*.png".
	Pattern string
	// Ext is the extension given to renamed sprites. Default ".png".
	Ext string
}

// Engine renames sprite trees. It holds no per-run state and can be reused.
type Engine struct {
	table layout.Table
	mover Mover
	log   Logger
	opts  Options
}

// New returns an Engine that checks categories against table and applies
// moves through mover.
func New(table layout.Table, mover Mover, log Logger, opts Options) *Engine {
	if opts.Ext == "" {
		opts.Ext = ".png"
	}
	if opts.Pattern == "" {
		opts.Pattern = "*" + opts.Ext
	}
	if mover == nil {
		mover = OSMover{}
	}
	return &Engine{table: table, mover: mover, log: log, opts: opts}
}

// Run renames the given units under root for eventName. With no units every
// unit in [layout.Units] runs. Units always run in that fixed order whatever
// order they are passed in.
//
// The error is non-nil only for an invalid event name or a zone that is not a
// rename unit; in that case the filesystem is not touched. Per-zone problems
// are reported in the Result.
func (e *Engine) Run(root, eventName string, units ...layout.Zone) (*Result, error) {
	event := strings.TrimSpace(eventName)
	if event == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidEventName)
	}
	if strings.ContainsAny(event, `/\`) {
		return nil, fmt.Errorf("%w: %q contains a path separator", ErrInvalidEventName, event)
	}
	ordered, err := orderUnits(units)
	if err != nil {
		return nil, err
	}

	p := &pass{
		Engine: e,
		root:   root,
		event:  event,
		canon:  naming.NewCanonicalizer(event),
		claims: newClaims(),
		res:    &Result{},
	}
	for _, u := range ordered {
		e.log.Debug("Renaming %s", u)
		switch u {
		case layout.Equipment, layout.Pet:
			p.pair(u, nil)
		case layout.Skin:
			p.skin()
		case layout.Ingredient:
			p.ingredient()
		case layout.NPC:
			p.npc()
		}
	}
	return p.res, nil
}

func orderUnits(units []layout.Zone) ([]layout.Zone, error) {
	if len(units) == 0 {
		return slices.Clone(layout.Units), nil
	}
	for _, u := range units {
		if !slices.Contains(layout.Units, u) {
			return nil, fmt.Errorf("zone %q is not a rename unit", u)
		}
	}
	var out []layout.Zone
	for _, u := range layout.Units {
		if slices.Contains(units, u) {
			out = append(out, u)
		}
	}
	return out, nil
}

// pass is the state of one Run.
type pass struct {
	*Engine
	root   string
	event  string
	canon  naming.Canonicalizer
	claims *claims
	res    *Result
}

// zoneFailed records a zone that could not be processed.
func (p *pass) zoneFailed(zone layout.Zone, err error) {
	p.log.Error("Skipping %s: %v", zone, err)
	p.res.ZoneErrors = append(p.res.ZoneErrors, layout.ZoneError{Zone: zone, Err: err})
}

func (p *pass) skip(zone layout.Zone, file, reason string) {
	p.log.Warn("Skipped %s/%s: %s", zone, file, reason)
	p.res.Skipped = append(p.res.Skipped, Skip{Zone: zone, File: file, Reason: reason})
}

// move renames from to newName in the same directory. It reports whether
// from now carries newName, either moved or already named so.
func (p *pass) move(zone layout.Zone, from, newName string) bool {
	oldName := filepath.Base(from)
	if strings.EqualFold(oldName, newName) {
		p.res.Unchanged++
		p.log.Debug("Unchanged %s/%s", zone, oldName)
		return true
	}
	to := filepath.Join(filepath.Dir(from), newName)
	m := Move{Zone: zone, From: from, To: to}
	if filepath.Base(newName) != newName {
		p.fail(m, fmt.Errorf("%w: %q is not a plain file name", ErrInvalidEventName, newName))
		return false
	}

	if err := p.claims.claim(from, to); err != nil {
		p.fail(m, err)
		return false
	}
	if err := p.mover.Move(from, to); err != nil {
		p.claims.drop(to)
		p.fail(m, err)
		return false
	}
	p.claims.vacate(from)
	p.res.Moves = append(p.res.Moves, m)
	p.log.Info("%s %s/%s -> %s", p.verb(), zone, oldName, newName)
	return true
}

func (p *pass) fail(m Move, err error) {
	p.log.Error("Cannot rename %s/%s: %v", m.Zone, filepath.Base(m.From), err)
	p.res.Failed = append(p.res.Failed, Failure{Move: m, Err: err})
}

func (p *pass) verb() string {
	if _, ok := p.mover.(DryRunMover); ok {
		return "Would rename"
	}
	return "Renamed"
}
