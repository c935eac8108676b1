// Package layout names the directory zones of an event sprite tree and holds
// the table of categories that are legal in each zone.
//
// Zones and categories are typed strings. Raw strings from flags or config are
// converted at the boundary with [ParseZone] so that the rest of the program
// never compares free-form folder names.
package layout

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"
)

// Zone is a sprite area relative to the audited root, slash-separated and lower case.
type Zone string

const (
	Equipment     Zone = "equipment"
	EquipmentIcon Zone = "equipment/icon"
	Pet           Zone = "pet"
	PetIcon       Zone = "pet/icon"
	Skin          Zone = "skin"
	SkinIcon      Zone = "skin/icon"
	SkinEvo       Zone = "skin/evo"
	SkinEvoIcon   Zone = "skin/evo/icon"
	Ingredient    Zone = "ingredient"
	NPC           Zone = "npc"
)

// Units are the independent rename groups, in the order the engine runs them.
// Skin stands for the whole skin, skin/icon, skin/evo, skin/evo/icon chain.
var Units = []Zone{Equipment, Pet, Skin, Ingredient, NPC}

// Pairs are the zones audited against their icon counterpart.
var Pairs = []Zone{Equipment, Pet, Skin, SkinEvo}

var allZones = []Zone{
	Equipment, EquipmentIcon, Pet, PetIcon, Skin, SkinIcon,
	SkinEvo, SkinEvoIcon, Ingredient, NPC,
}

// ParseZone converts user input such as "Skin\Evo" or "skin/evo/" to a Zone.
func ParseZone(s string) (Zone, error) {
	norm := strings.ToLower(strings.Trim(strings.ReplaceAll(strings.TrimSpace(s), `\`, "/"), "/"))
	for _, z := range allZones {
		if string(z) == norm {
			return z, nil
		}
	}
	return "", fmt.Errorf("unknown zone %q", s)
}

// ParseUnit is like ParseZone but only accepts rename units.
func ParseUnit(s string) (Zone, error) {
	z, err := ParseZone(s)
	if err != nil {
		return "", err
	}
	if !slices.Contains(Units, z) {
		return "", fmt.Errorf("zone %q cannot be renamed on its own (use one of %s)", s, unitNames())
	}
	return z, nil
}

func unitNames() string {
	names := make([]string, len(Units))
	for i, u := range Units {
		names[i] = string(u)
	}
	return strings.Join(names, ", ")
}

// Icon returns the icon zone paired with z.
func (z Zone) Icon() Zone { return z + "/icon" }

// Evo returns the evolved-variant zone of z.
func (z Zone) Evo() Zone { return z + "/evo" }

// Dir returns the on-disk directory of z under root.
func (z Zone) Dir(root string) string {
	return filepath.Join(root, filepath.FromSlash(string(z)))
}

func (z Zone) String() string { return string(z) }

// Category is a canonical, lower-case sprite role such as "weapon" or "body".
type Category string

func (c Category) String() string { return string(c) }

// ZoneError records a zone that could not be processed. Callers collect it and
// go on with the next zone.
type ZoneError struct {
	Zone Zone
	Err  error
}

func (e ZoneError) Error() string { return fmt.Sprintf("%s: %v", e.Zone, e.Err) }

func (e ZoneError) Unwrap() error { return e.Err }
