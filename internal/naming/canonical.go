package naming

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// NoOrdinal marks a name without a numeric suffix. It sorts before every
// real ordinal.
const NoOrdinal = -1

// Name is the canonical form of a sprite file name.
type Name struct {
	Category string
	Ordinal  int
}

// HasOrdinal reports whether the raw name carried a numeric suffix.
func (n Name) HasOrdinal() bool { return n.Ordinal != NoOrdinal }

// Key renders n the way the audit reports it: "weapon(2)" or "weapon".
func (n Name) Key() string {
	if !n.HasOrdinal() {
		return n.Category
	}
	return n.Category + "(" + strconv.Itoa(n.Ordinal) + ")"
}

// reSuffix splits a lower-cased stem into prefix and trailing digits. The
// digits may be parenthesized and preceded by spaces, underscores or hyphens:
// "weapon", "weapon2", "weapon_2", "weapon (2)", "weapon-(2)".
var reSuffix = regexp.MustCompile(`^(.*?)[\s_\-]*\(?(\d*)\)?$`)

// Canonicalize maps a raw file name to its category and ordinal without any
// knowledge of the event name. It never fails.
func Canonicalize(raw string) Name {
	return Canonicalizer{}.Canonicalize(raw)
}

// Canonicalizer canonicalizes file names for one event. Names already
// carrying the "<event>_" prefix produced by the rename engine canonicalize to
// the same category as the raw name they came from.
type Canonicalizer struct {
	prefix string
}

// NewCanonicalizer returns a Canonicalizer for eventName. A blank event name
// gives the plain behavior of [Canonicalize].
func NewCanonicalizer(eventName string) Canonicalizer {
	ev := strings.ToLower(strings.TrimSpace(eventName))
	if ev == "" {
		return Canonicalizer{}
	}
	return Canonicalizer{prefix: ev + "_"}
}

// Canonicalize lower-cases raw, drops its extension and the event prefix,
// and splits off the trailing ordinal. The prefix is kept when removing it
// would leave no category, so with event "Pet" the raw "pet_1.png" is still
// {pet 1}.
func (c Canonicalizer) Canonicalize(raw string) Name {
	base := filepath.Base(raw)
	stem := strings.ToLower(strings.TrimSuffix(base, filepath.Ext(base)))
	if c.prefix != "" && len(stem) > len(c.prefix) && strings.HasPrefix(stem, c.prefix) {
		if n, ok := split(stem[len(c.prefix):]); ok {
			return n
		}
	}
	if n, ok := split(stem); ok {
		return n
	}
	return Name{Category: strings.TrimSpace(stem), Ordinal: NoOrdinal}
}

// split separates stem into category and ordinal. It fails when no category
// is left or the ordinal does not fit an int.
func split(stem string) (Name, bool) {
	m := reSuffix.FindStringSubmatch(stem)
	if m == nil {
		return Name{}, false
	}
	category := strings.TrimSpace(strings.TrimRight(m[1], " _-"))
	if category == "" {
		return Name{}, false
	}
	if m[2] == "" {
		return Name{Category: category, Ordinal: NoOrdinal}, true
	}
	n, err := strconv.Atoi(m[2])
	if err != nil {
		return Name{}, false
	}
	return Name{Category: category, Ordinal: n}, true
}
