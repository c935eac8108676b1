package display

import (
	"fmt"
	"io"

	"github.com/backmassage/spritenorm/internal/term"
)

const banner = ` ____             _ _       _   _
/ ___| _ __  _ __(_) |_ ___| \ | | ___  _ __ _ __ ___
\___ \| '_ \| '__| | __/ _ \  \| |/ _ \| '__| '_ ` + "`" + ` _ \
 ___) | |_) | |  | | ||  __/ |\  | (_) | |  | | | | | |
|____/| .__/|_|  |_|\__\___|_| \_|\___/|_|  |_| |_| |_|
      |_|`

const tagline = "event sprite audit and rename"

// PrintBanner writes the ASCII art banner to w, in magenta when colors are on,
// followed by a bold tagline.
func PrintBanner(w io.Writer) {
	fmt.Fprintln(w, term.Paint(term.Magenta, banner))
	fmt.Fprintln(w, term.Paint(term.Bold, "  "+tagline))
}
