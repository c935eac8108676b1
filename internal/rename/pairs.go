package rename

import (
	"fmt"
	"slices"

	"github.com/backmassage/spritenorm/internal/discover"
	"github.com/backmassage/spritenorm/internal/layout"
	"github.com/backmassage/spritenorm/internal/naming"
)

// pair renames zone and zone/icon. Every eligible category is numbered from
// start[category] on both sides independently; the shared index keeps the two
// sides aligned. It returns how many indices each category used in zone, and
// false when either directory could not be read.
func (p *pass) pair(zone layout.Zone, start map[layout.Category]int) (map[layout.Category]int, bool) {
	icon := zone.Icon()
	primary, err := discover.Group(zone.Dir(p.root), p.opts.Pattern, p.canon)
	if err != nil {
		p.zoneFailed(zone, err)
		return nil, false
	}
	side, err := discover.Group(icon.Dir(p.root), p.opts.Pattern, p.canon)
	if err != nil {
		p.zoneFailed(icon, err)
		return nil, false
	}

	eligible := p.eligible(zone, primary, side)
	p.skipIneligible(zone, icon, primary, eligible)
	p.skipIneligible(icon, zone, side, eligible)

	used := make(map[layout.Category]int, len(eligible))
	for _, cat := range eligible {
		used[cat] = p.renameCategory(zone, primary, cat, start[cat])
		p.renameCategory(icon, side, cat, start[cat])
	}
	return used, true
}

// eligible returns the categories of a that are valid in zone and also
// present in b, sorted.
func (p *pass) eligible(zone layout.Zone, a, b *discover.Groups) []layout.Category {
	var out []layout.Category
	for _, cat := range a.Categories() {
		if b.Has(cat) && p.table.IsValid(zone, cat) {
			out = append(out, cat)
		}
	}
	return out
}

// skipIneligible reports every file of g outside eligible. other is the zone
// g is paired with.
func (p *pass) skipIneligible(zone, other layout.Zone, g *discover.Groups, eligible []layout.Category) {
	for _, cat := range g.Categories() {
		if slices.Contains(eligible, cat) {
			continue
		}
		reason := fmt.Sprintf("no %s file in %s", cat, other)
		if !p.table.IsValid(zone, cat) {
			reason = fmt.Sprintf("%q is not valid in %s", cat, zone)
		}
		for _, e := range g.Sorted(cat) {
			p.skip(zone, e.Base(), reason)
		}
	}
}

// renameCategory numbers the files of cat in ordinal order from start and
// returns how many there were.
func (p *pass) renameCategory(zone layout.Zone, g *discover.Groups, cat layout.Category, start int) int {
	files := g.Sorted(cat)
	for i, e := range files {
		p.move(zone, e.Path, naming.SpriteName(p.event, string(cat), start+i, p.opts.Ext))
	}
	return len(files)
}
