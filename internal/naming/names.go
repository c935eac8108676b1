package naming

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Capitalize upper-cases the first letter of s and lower-cases the rest:
// "faceHair" becomes "Facehair".
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	// cases.Caser keeps state and is not safe for reuse across goroutines.
	return cases.Title(language.Und).String(strings.ToLower(s))
}

// SpriteName builds "<event>_<Category>_<index><ext>", the name given to
// equipment, pet and skin sprites.
func SpriteName(eventName, category string, index int, ext string) string {
	return fmt.Sprintf("%s_%s_%d%s", eventName, Capitalize(category), index, ext)
}

// IngredientName builds "<event> Item_<index><ext>". Ingredients have no
// category token and a space before "Item".
func IngredientName(eventName string, index int, ext string) string {
	return fmt.Sprintf("%s Item_%d%s", eventName, index, ext)
}

// NPCName appends the event to an NPC sprite stem: "<stem>_<event><ext>".
func NPCName(stem, eventName, ext string) string {
	return stem + "_" + eventName + ext
}

// HasEventSuffix reports whether stem already ends with "_<event>",
// compared case-insensitively.
func HasEventSuffix(stem, eventName string) bool {
	suffix := "_" + strings.ToLower(eventName)
	return strings.HasSuffix(strings.ToLower(stem), suffix)
}
