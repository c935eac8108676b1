package rename

import (
	"path/filepath"
	"strings"

	"github.com/backmassage/spritenorm/internal/discover"
	"github.com/backmassage/spritenorm/internal/layout"
	"github.com/backmassage/spritenorm/internal/naming"
)

// ingredient numbers every ingredient file as one sequence in ordinal order.
func (p *pass) ingredient() {
	g, err := discover.Group(layout.Ingredient.Dir(p.root), p.opts.Pattern, p.canon)
	if err != nil {
		p.zoneFailed(layout.Ingredient, err)
		return
	}
	for i, e := range discover.SortByOrdinal(g.All()) {
		p.move(layout.Ingredient, e.Path, naming.IngredientName(p.event, i, p.opts.Ext))
	}
}

// npc appends "_<event>" to every npc file stem. Stems that already end with
// it are left alone.
func (p *pass) npc() {
	files, err := discover.List(layout.NPC.Dir(p.root), p.opts.Pattern)
	if err != nil {
		p.zoneFailed(layout.NPC, err)
		return
	}
	for _, f := range files {
		base := filepath.Base(f)
		ext := filepath.Ext(base)
		stem := strings.TrimSuffix(base, ext)
		if naming.HasEventSuffix(stem, p.event) {
			p.res.Unchanged++
			p.log.Debug("Unchanged %s/%s", layout.NPC, base)
			continue
		}
		p.move(layout.NPC, f, naming.NPCName(stem, p.event, ext))
	}
}
