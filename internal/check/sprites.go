package check

import (
	"fmt"
	"sort"

	"github.com/backmassage/spritenorm/internal/discover"
	"github.com/backmassage/spritenorm/internal/layout"
	"github.com/backmassage/spritenorm/internal/naming"
)

// Kind classifies a sprite finding.
type Kind string

const (
	// KindCounterpart: a valid file has no file with the same category and
	// ordinal on the other side of its pair.
	KindCounterpart Kind = "counterpart"
	// KindEssential: a mandatory category has no file at all.
	KindEssential Kind = "essential"
	// KindInvalid: the file's category is not legal in its zone.
	KindInvalid Kind = "invalid"
)

// Finding is one audit result. Zone is where the problem is: for a missing
// counterpart that is the side lacking the file.
type Finding struct {
	Zone layout.Zone `yaml:"zone"`
	Name string      `yaml:"name"`
	Kind Kind        `yaml:"kind"`
}

func (f Finding) String() string {
	switch f.Kind {
	case KindInvalid:
		return fmt.Sprintf("Invalid file in %s: %s", f.Zone, f.Name)
	case KindEssential:
		return fmt.Sprintf("Missing in %s: no %s file", f.Zone, f.Name)
	default:
		return fmt.Sprintf("Missing in %s: %s", f.Zone, f.Name)
	}
}

// PairReport is the result of checking one zone.
type PairReport struct {
	Zone    layout.Zone
	Missing []Finding
	Invalid []Finding
}

// SpriteReport aggregates every zone of a tree.
type SpriteReport struct {
	Missing []Finding          `yaml:"missing"`
	Invalid []Finding          `yaml:"invalid"`
	Errors  []layout.ZoneError `yaml:"-"`
}

// IsAllCorrect reports whether no finding and no zone error was recorded.
func (r SpriteReport) IsAllCorrect() bool {
	return len(r.Missing) == 0 && len(r.Invalid) == 0 && len(r.Errors) == 0
}

// Logger is the logging surface used by this package.
type Logger interface {
	Info(string, ...any)
	Success(string, ...any)
	Warn(string, ...any)
	Error(string, ...any)
	Debug(string, ...any)
}

// Checker audits sprite files against a category table. It never modifies files.
type Checker struct {
	table   layout.Table
	canon   naming.Canonicalizer
	pattern string
	log     Logger
}

// NewChecker returns a Checker. pattern selects the sprite files, e.g. "*.png".
func NewChecker(table layout.Table, canon naming.Canonicalizer, pattern string, log Logger) *Checker {
	return &Checker{table: table, canon: canon, pattern: pattern, log: log}
}

// CheckPair compares zone with zone/icon. If either directory cannot be
// listed the error is returned and the report is empty.
func (c *Checker) CheckPair(root string, zone layout.Zone) (PairReport, error) {
	rep := PairReport{Zone: zone}
	icon := zone.Icon()

	primary, err := discover.Group(zone.Dir(root), c.pattern, c.canon)
	if err != nil {
		return rep, err
	}
	side, err := discover.Group(icon.Dir(root), c.pattern, c.canon)
	if err != nil {
		return rep, err
	}

	var missing findingSet
	c.counterparts(primary, side, zone, icon, &missing)
	c.counterparts(side, primary, icon, zone, &missing)
	c.essentials(primary, zone, &missing)
	c.essentials(side, icon, &missing)
	rep.Missing = missing.list

	rep.Invalid = append(c.invalid(primary, zone), c.invalid(side, icon)...)
	return rep, nil
}

// CheckNPC checks the single npc directory: every essential category must be
// present and every file must be a legal npc category.
func (c *Checker) CheckNPC(root string) (PairReport, error) {
	rep := PairReport{Zone: layout.NPC}
	g, err := discover.Group(layout.NPC.Dir(root), c.pattern, c.canon)
	if err != nil {
		return rep, err
	}
	var missing findingSet
	c.essentials(g, layout.NPC, &missing)
	rep.Missing = missing.list
	rep.Invalid = c.invalid(g, layout.NPC)
	return rep, nil
}

// CheckSprites runs CheckPair for every paired zone and then CheckNPC.
// Unreadable zones are logged and collected in Errors; the other zones are
// still checked.
func (c *Checker) CheckSprites(root string) SpriteReport {
	var out SpriteReport
	add := func(zone layout.Zone, rep PairReport, err error) {
		if err != nil {
			c.log.Error("Cannot check %s: %v", zone, err)
			out.Errors = append(out.Errors, layout.ZoneError{Zone: zone, Err: err})
			return
		}
		c.log.Debug("%s: %d missing, %d invalid", zone, len(rep.Missing), len(rep.Invalid))
		out.Missing = append(out.Missing, rep.Missing...)
		out.Invalid = append(out.Invalid, rep.Invalid...)
	}
	for _, z := range layout.Pairs {
		rep, err := c.CheckPair(root, z)
		add(z, rep, err)
	}
	rep, err := c.CheckNPC(root)
	add(layout.NPC, rep, err)
	return out
}

// counterparts records every valid file of from whose canonical key has no
// match in to.
func (c *Checker) counterparts(from, to *discover.Groups, fromZone, toZone layout.Zone, set *findingSet) {
	have := keys(to)
	for _, e := range from.All() {
		if !c.table.IsValid(fromZone, layout.Category(e.Name.Category)) {
			continue
		}
		if !have[e.Name.Key()] {
			set.add(Finding{Zone: toZone, Name: e.Name.Key(), Kind: KindCounterpart})
		}
	}
}

func (c *Checker) essentials(g *discover.Groups, zone layout.Zone, set *findingSet) {
	for _, cat := range c.table.Essential(zone) {
		if !g.Has(cat) {
			set.add(Finding{Zone: zone, Name: string(cat), Kind: KindEssential})
		}
	}
}

func (c *Checker) invalid(g *discover.Groups, zone layout.Zone) []Finding {
	var out []Finding
	for _, cat := range g.Categories() {
		if c.table.IsValid(zone, cat) {
			continue
		}
		for _, e := range g.Sorted(cat) {
			out = append(out, Finding{Zone: zone, Name: e.Base(), Kind: KindInvalid})
		}
	}
	return out
}

func keys(g *discover.Groups) map[string]bool {
	out := make(map[string]bool)
	for _, e := range g.All() {
		out[e.Name.Key()] = true
	}
	return out
}

// findingSet keeps findings unique in insertion order.
type findingSet struct {
	seen map[Finding]bool
	list []Finding
}

func (s *findingSet) add(f Finding) {
	if s.seen == nil {
		s.seen = make(map[Finding]bool)
	}
	if s.seen[f] {
		return
	}
	s.seen[f] = true
	s.list = append(s.list, f)
}

// SortFindings orders findings by zone, then name.
func SortFindings(fs []Finding) {
	sort.SliceStable(fs, func(i, j int) bool {
		if fs[i].Zone != fs[j].Zone {
			return fs[i].Zone < fs[j].Zone
		}
		return fs[i].Name < fs[j].Name
	})
}
