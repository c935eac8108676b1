package discover

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/spritenorm/internal/layout"
	"github.com/backmassage/spritenorm/internal/naming"
)

func touch(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
}

func basenames(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Base()
	}
	return out
}

func TestList_FiltersExtension(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "weapon.png")
	touch(t, dir, "Back.PNG")
	touch(t, dir, "notes.txt")
	touch(t, dir, "weapon.png.bak")
	touch(t, filepath.Join(dir, "icon"), "weapon.png")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "folder.png"), 0o755))

	files, err := List(dir, "*.png")
	require.NoError(t, err)

	var got []string
	for _, f := range files {
		got = append(got, filepath.Base(f))
	}
	assert.Equal(t, []string{"Back.PNG", "weapon.png"}, got)
}

func TestList_MissingDirectory(t *testing.T) {
	_, err := List(filepath.Join(t.TempDir(), "nope"), "*.png")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDirectoryNotFound))
}

func TestGroup_BucketsByCategory(t *testing.T) {
	dir := t.TempDir()
	for _, n := range []string{"weapon(2).png", "Weapon.png", "weapon (10).png", "back.png", "hat.png"} {
		touch(t, dir, n)
	}

	g, err := Group(dir, "*.png", naming.NewCanonicalizer(""))
	require.NoError(t, err)

	assert.Equal(t, []layout.Category{"back", "hat", "weapon"}, g.Categories())
	assert.Equal(t, 3, g.Len("weapon"))
	assert.True(t, g.Has("back"))
	assert.False(t, g.Has("boot"))
	assert.Len(t, g.All(), 5)
	assert.Equal(t, dir, g.Dir)

	// absent ordinal sorts first, then numeric order (not lexical)
	assert.Equal(t, []string{"Weapon.png", "weapon(2).png", "weapon (10).png"}, basenames(g.Sorted("weapon")))
}

func TestGroup_TieBreakIsLexical(t *testing.T) {
	dir := t.TempDir()
	for _, n := range []string{"body_b.png", "body.png", "body-1.png", "body_1.png"} {
		touch(t, dir, n)
	}
	g, err := Group(dir, "*.png", naming.Canonicalizer{})
	require.NoError(t, err)

	assert.Equal(t, []string{"body.png", "body-1.png", "body_1.png"}, basenames(g.Sorted("body")))
	assert.Equal(t, []string{"body_b.png"}, basenames(g.Sorted("body_b")))
}

func TestGroup_EventAware(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "Spring_Body_0.png")
	touch(t, dir, "Fall_Body_0.png")

	g, err := Group(dir, "*.png", naming.NewCanonicalizer("Spring"))
	require.NoError(t, err)
	assert.Equal(t, []layout.Category{"body", "fall_body"}, g.Categories())
}

func TestSortByOrdinal_DoesNotTouchGroups(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a(3).png")
	touch(t, dir, "a(1).png")
	g, err := Group(dir, "*.png", naming.Canonicalizer{})
	require.NoError(t, err)

	_ = g.Sorted("a")
	// encounter order is the directory listing order
	assert.Equal(t, []string{"a(1).png", "a(3).png"}, basenames(g.Entries("a")))
}
