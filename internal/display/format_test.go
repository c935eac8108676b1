package display

import (
	"path/filepath"
	"testing"

	"github.com/backmassage/spritenorm/internal/layout"
	"github.com/backmassage/spritenorm/internal/rename"
)

func TestPlural(t *testing.T) {
	tests := []struct {
		n    int
		word string
		want string
	}{
		{0, "file", "0 files"},
		{1, "file", "1 file"},
		{2, "folder", "2 folders"},
	}
	for _, tt := range tests {
		if got := Plural(tt.n, tt.word); got != tt.want {
			t.Errorf("Plural(%d, %q) = %q, want %q", tt.n, tt.word, got, tt.want)
		}
	}
}

func TestFormatMove(t *testing.T) {
	m := rename.Move{
		Zone: layout.SkinEvoIcon,
		From: filepath.Join("root", "skin", "evo", "icon", "body(1).png"),
		To:   filepath.Join("root", "skin", "evo", "icon", "Spring_Body_4.png"),
	}
	want := "skin/evo/icon/body(1).png -> Spring_Body_4.png"
	if got := FormatMove(m); got != want {
		t.Errorf("FormatMove = %q, want %q", got, want)
	}
}
