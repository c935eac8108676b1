package display

import (
	"fmt"
	"path/filepath"

	"github.com/backmassage/spritenorm/internal/rename"
)

// Plural returns "1 file", "2 files", "0 files".
func Plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}

// FormatMove renders a move as "zone/old.png -> New.png".
func FormatMove(m rename.Move) string {
	return fmt.Sprintf("%s/%s -> %s", m.Zone, filepath.Base(m.From), filepath.Base(m.To))
}
