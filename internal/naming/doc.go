// Package naming turns raw sprite file names into a canonical
// (category, ordinal) pair and builds the target names used by the rename
// engine.
//
// Canonicalization is pure: it lower-cases the name, drops the extension,
// and splits a trailing number (bare or parenthesized, optionally after a
// space, underscore or hyphen) from the category. "Weapon (2).png" and
// "weapon_2.PNG" both become {weapon 2}; "Cloth.png" becomes {cloth -1}.
//
// Target names:
//
//	equipment, pet, skin:  <Event>_<Category>_<i>.png
//	ingredient:            <Event> Item_<i>.png
//	npc:                   <stem>_<Event>.png
package naming
