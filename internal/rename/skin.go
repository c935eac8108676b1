package rename

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/backmassage/spritenorm/internal/discover"
	"github.com/backmassage/spritenorm/internal/layout"
	"github.com/backmassage/spritenorm/internal/naming"
)

var errSkinNotRenamed = errors.New("skin was not renamed, evo indices cannot be assigned")

// RenameMap maps original file names to the names they were given. Lookups
// ignore case. Files that already had their final name are included.
type RenameMap struct {
	names map[string]string
}

func newRenameMap() RenameMap {
	return RenameMap{names: make(map[string]string)}
}

func (m RenameMap) add(from, to string) {
	m.names[strings.ToLower(from)] = to
}

// Lookup returns the new name of the file originally called name.
func (m RenameMap) Lookup(name string) (string, bool) {
	to, ok := m.names[strings.ToLower(name)]
	return to, ok
}

// Len returns the number of entries.
func (m RenameMap) Len() int { return len(m.names) }

// skin runs the skin chain: skin with skin/icon, then skin/evo numbered after
// skin, then skin/evo/icon through the evo rename map.
func (p *pass) skin() {
	used, ok := p.pair(layout.Skin, nil)
	if !ok {
		p.zoneFailed(layout.SkinEvo, errSkinNotRenamed)
		return
	}
	renames, ok := p.evo(used)
	if !ok {
		return
	}
	p.evoIcon(renames)
}

// evo renames skin/evo. Category c is numbered from start[c]. Only categories
// present in skin/evo/icon too are renamed, so that every renamed evo file
// has an icon to follow it.
func (p *pass) evo(start map[layout.Category]int) (RenameMap, bool) {
	evo, err := discover.Group(layout.SkinEvo.Dir(p.root), p.opts.Pattern, p.canon)
	if err != nil {
		p.zoneFailed(layout.SkinEvo, err)
		return RenameMap{}, false
	}
	icons, err := discover.Group(layout.SkinEvoIcon.Dir(p.root), p.opts.Pattern, p.canon)
	if err != nil {
		p.zoneFailed(layout.SkinEvoIcon, err)
		return RenameMap{}, false
	}

	eligible := p.eligible(layout.SkinEvo, evo, icons)
	p.skipIneligible(layout.SkinEvo, layout.SkinEvoIcon, evo, eligible)

	renames := newRenameMap()
	for _, cat := range eligible {
		for i, e := range evo.Sorted(cat) {
			name := naming.SpriteName(p.event, string(cat), start[cat]+i, p.opts.Ext)
			if p.move(layout.SkinEvo, e.Path, name) {
				renames.add(e.Base(), name)
			}
		}
	}
	p.log.Debug("skin/evo rename map has %d entries", renames.Len())
	return renames, true
}

// evoIcon gives every skin/evo/icon file the new name of the skin/evo file
// that had the same original name. Files with no such entry are reported
// unmapped and left alone.
func (p *pass) evoIcon(renames RenameMap) {
	files, err := discover.List(layout.SkinEvoIcon.Dir(p.root), p.opts.Pattern)
	if err != nil {
		p.zoneFailed(layout.SkinEvoIcon, err)
		return
	}
	for _, f := range files {
		base := filepath.Base(f)
		name, ok := renames.Lookup(base)
		if !ok {
			u := &UnmappedError{Zone: layout.SkinEvoIcon, File: base, From: layout.SkinEvo}
			p.log.Warn("Skipped %v", u)
			p.res.Unmapped = append(p.res.Unmapped, u)
			continue
		}
		p.move(layout.SkinEvoIcon, f, name)
	}
}
