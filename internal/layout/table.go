package layout

import "slices"

// Rule lists the categories legal in a zone. Categories not in Optional are
// essential: the zone is incomplete without at least one file of each.
type Rule struct {
	Valid    []Category
	Optional []Category
}

// Table maps a main zone to its Rule. Icon zones share the rule of their
// main zone. A Table is immutable once built and is shared by the checker and
// the rename engine.
type Table struct {
	rules map[Zone]Rule
}

// NewTable builds a Table from rules. The rules are copied.
func NewTable(rules map[Zone]Rule) Table {
	t := Table{rules: make(map[Zone]Rule, len(rules))}
	for z, r := range rules {
		t.rules[z] = Rule{Valid: slices.Clone(r.Valid), Optional: slices.Clone(r.Optional)}
	}
	return t
}

// DefaultTable is the fixed category vocabulary of event sprite trees.
func DefaultTable() Table {
	skin := []Category{"body", "eye", "hair", "facehair"}
	return NewTable(map[Zone]Rule{
		Equipment: {Valid: []Category{"weapon", "back", "boot", "cloth", "helmet"}},
		Pet:       {Valid: []Category{"pet"}},
		Skin:      {Valid: skin},
		SkinEvo:   {Valid: skin},
		NPC: {
			Valid:    []Category{"back", "cloth", "helmet", "boot", "weapon"},
			Optional: []Category{"weapon"},
		},
	})
}

func (t Table) rule(z Zone) Rule {
	if r, ok := t.rules[z]; ok {
		return r
	}
	// icon zones fall back to their main zone
	for main, r := range t.rules {
		if main.Icon() == z {
			return r
		}
	}
	return Rule{}
}

// Valid returns the legal categories of z in table order.
func (t Table) Valid(z Zone) []Category {
	return slices.Clone(t.rule(z).Valid)
}

// IsValid reports whether c is legal in z.
func (t Table) IsValid(z Zone, c Category) bool {
	return slices.Contains(t.rule(z).Valid, c)
}

// Essential returns the categories of z that must have at least one file.
func (t Table) Essential(z Zone) []Category {
	r := t.rule(z)
	out := make([]Category, 0, len(r.Valid))
	for _, c := range r.Valid {
		if !slices.Contains(r.Optional, c) {
			out = append(out, c)
		}
	}
	return out
}
