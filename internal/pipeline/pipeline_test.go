package pipeline

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofrs/flock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/backmassage/spritenorm/internal/config"
	"github.com/backmassage/spritenorm/internal/discover"
	"github.com/backmassage/spritenorm/internal/layout"
	"github.com/backmassage/spritenorm/internal/logging/logtest"
)

const allowListText = `equipment
equipment\icon
pet
pet\icon
-element
`

// answer is a Confirmer with a fixed reply that remembers whether it was asked.
type answer struct {
	yes   bool
	asked bool
}

func (a *answer) Confirm(string) (bool, error) {
	a.asked = true
	return a.yes, nil
}

func touch(t *testing.T, dir string, names ...string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	for _, n := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, n), []byte(n), 0o644))
	}
}

// ls returns the names of the regular files in dir.
func ls(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var out []string
	for _, e := range entries {
		if !e.IsDir() {
			out = append(out, e.Name())
		}
	}
	return out
}

// setup builds a small event tree and a config pointing at it.
func setup(t *testing.T) *config.Config {
	t.Helper()
	base := t.TempDir()
	root := filepath.Join(base, "event")
	touch(t, layout.Equipment.Dir(root), "weapon.png", "back.png", "boot.png", "cloth.png", "helmet.png")
	touch(t, layout.EquipmentIcon.Dir(root), "weapon.png", "back.png", "boot.png", "cloth.png", "helmet.png")
	touch(t, layout.Pet.Dir(root), "pet.png")
	touch(t, layout.PetIcon.Dir(root), "pet.png")

	allow := filepath.Join(base, config.DefaultAllowListName)
	require.NoError(t, os.WriteFile(allow, []byte(allowListText), 0o644))

	cfg := config.DefaultConfig()
	cfg.RootDir = root
	cfg.AllowListFile = allow
	cfg.EventFile = filepath.Join(base, config.DefaultEventFileName)
	cfg.EventName = "Spring"
	cfg.Zones = []string{"equipment", "pet"}
	require.NoError(t, cfg.Validate())
	return &cfg
}

// assertUnlocked checks that the lock file was left in root and released.
func assertUnlocked(t *testing.T, root string) {
	t.Helper()
	path := filepath.Join(root, LockFileName)
	assert.FileExists(t, path)
	l := flock.New(path)
	ok, err := l.TryLock()
	require.NoError(t, err)
	assert.True(t, ok, "lock still held")
	require.NoError(t, l.Unlock())
}

func TestAudit(t *testing.T) {
	cfg := setup(t)
	touch(t, filepath.Join(cfg.RootDir, "junk"))
	touch(t, layout.Pet.Dir(cfg.RootDir), "dragon.png")

	log := &logtest.Recorder{}
	audit, err := NewRunner(cfg, log, &answer{}).Audit()
	require.NoError(t, err)

	assert.Equal(t, "Spring", audit.Event)
	assert.Equal(t, []string{"junk"}, audit.Folders.Extra)
	require.Len(t, audit.Sprites.Invalid, 1)
	assert.Equal(t, "dragon.png", audit.Sprites.Invalid[0].Name)
	// skin, skin/evo and npc do not exist in this tree
	assert.Len(t, audit.Sprites.Errors, 3)
	assert.False(t, audit.IsAllCorrect())
	assert.True(t, log.Contains("INFO", "  - junk"))
}

func TestAudit_FatalInputs(t *testing.T) {
	cfg := setup(t)
	cfg.AllowListFile = filepath.Join(t.TempDir(), "missing.txt")
	_, err := NewRunner(cfg, &logtest.Recorder{}, &answer{}).Audit()
	assert.True(t, errors.Is(err, config.ErrConfigNotFound))

	cfg = setup(t)
	cfg.RootDir = filepath.Join(cfg.RootDir, "nope")
	_, err = NewRunner(cfg, &logtest.Recorder{}, &answer{}).Audit()
	assert.True(t, errors.Is(err, discover.ErrDirectoryNotFound))
}

func TestAudit_PlaceholderEventWarns(t *testing.T) {
	cfg := setup(t)
	cfg.EventName = ""

	log := &logtest.Recorder{}
	audit, err := NewRunner(cfg, log, &answer{}).Audit()
	require.NoError(t, err)
	assert.Equal(t, config.EventUnknown, audit.Event)
	assert.True(t, log.Contains("WARN", "No event name found"))
}

func TestRename(t *testing.T) {
	cfg := setup(t)
	cfg.ReportFile = filepath.Join(t.TempDir(), "reports", "run.yaml")

	confirm := &answer{yes: true}
	r := NewRunner(cfg, &logtest.Recorder{}, confirm)
	stats, err := r.Rename()
	require.NoError(t, err)

	assert.True(t, confirm.asked)
	assert.Equal(t, 12, stats.Renamed)
	assert.True(t, stats.OK())
	assert.Equal(t, 12, stats.Total())
	assert.Contains(t, ls(t, layout.PetIcon.Dir(cfg.RootDir)), "Spring_Pet_0.png")
	assertUnlocked(t, cfg.RootDir)

	data, err := os.ReadFile(cfg.ReportFile)
	require.NoError(t, err)
	var rep Report
	require.NoError(t, yaml.Unmarshal(data, &rep))
	assert.Equal(t, r.RunID(), rep.RunID)
	assert.Equal(t, "Spring", rep.Event)
	assert.Len(t, rep.Moves, 12)
	assert.Equal(t, "equipment/back.png", rep.Moves[0].From)
	assert.Equal(t, "equipment/Spring_Back_0.png", rep.Moves[0].To)
	assert.Equal(t, 12, rep.Stats.Renamed)
	assert.True(t, strings.HasPrefix(rep.Problems[0], "not checked: "))
}

func TestRename_Declined(t *testing.T) {
	cfg := setup(t)

	stats, err := NewRunner(cfg, &logtest.Recorder{}, &answer{yes: false}).Rename()
	require.NoError(t, err)
	assert.True(t, stats.Cancelled)
	assert.Equal(t, []string{"pet.png"}, ls(t, layout.Pet.Dir(cfg.RootDir)))
}

func TestRename_AssumeYesAndDryRunSkipPrompt(t *testing.T) {
	cfg := setup(t)
	cfg.DryRun = true

	confirm := &answer{}
	log := &logtest.Recorder{}
	stats, err := NewRunner(cfg, log, confirm).Rename()
	require.NoError(t, err)

	assert.False(t, confirm.asked)
	assert.Equal(t, 12, stats.Renamed)
	assert.Equal(t, []string{"pet.png"}, ls(t, layout.Pet.Dir(cfg.RootDir)))
	assert.True(t, log.Contains("INFO", "Would rename"))
}

func TestRename_Locked(t *testing.T) {
	cfg := setup(t)
	cfg.AssumeYes = true

	held := flock.New(filepath.Join(cfg.RootDir, LockFileName))
	ok, err := held.TryLock()
	require.NoError(t, err)
	require.True(t, ok)
	defer held.Unlock()

	_, err = NewRunner(cfg, &logtest.Recorder{}, nil).Rename()
	assert.ErrorIs(t, err, ErrLocked)
	assert.Equal(t, []string{"pet.png"}, ls(t, layout.Pet.Dir(cfg.RootDir)))
}

func TestRename_BadZone(t *testing.T) {
	cfg := setup(t)
	cfg.Zones = []string{"skin/evo"}
	_, err := NewRunner(cfg, &logtest.Recorder{}, &answer{yes: true}).Rename()
	require.Error(t, err)
}

func TestClean(t *testing.T) {
	cfg := setup(t)
	touch(t, filepath.Join(cfg.RootDir, "junk", "deep"))
	touch(t, filepath.Join(cfg.RootDir, "Element"))
	touch(t, filepath.Join(cfg.RootDir, "pet", "old"))

	res, err := NewRunner(cfg, &logtest.Recorder{}, &answer{yes: true}).Clean()
	require.NoError(t, err)

	// Element is ignored by the allow-list, so it is never reported extra
	assert.Equal(t, []string{"junk", "pet/old"}, res.Deleted)
	assert.NoDirExists(t, filepath.Join(cfg.RootDir, "junk"))
	assert.DirExists(t, filepath.Join(cfg.RootDir, "Element"))
	assertUnlocked(t, cfg.RootDir)
}

func TestClean_Declined(t *testing.T) {
	cfg := setup(t)
	touch(t, filepath.Join(cfg.RootDir, "junk"))

	res, err := NewRunner(cfg, &logtest.Recorder{}, &answer{}).Clean()
	require.NoError(t, err)
	assert.Empty(t, res.Deleted)
	assert.DirExists(t, filepath.Join(cfg.RootDir, "junk"))
}

func TestPrompt(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"y\n", true},
		{" YES \r\n", true},
		{"yes", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
	}
	for _, tt := range tests {
		var out strings.Builder
		got, err := Prompt{In: strings.NewReader(tt.in), Out: &out}.Confirm("Go?")
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
		assert.Equal(t, "Go? [y/N]: ", out.String())
	}
}

func TestRename_LockFileIsReused(t *testing.T) {
	cfg := setup(t)
	cfg.AssumeYes = true

	first, err := NewRunner(cfg, &logtest.Recorder{}, nil).Rename()
	require.NoError(t, err)
	assert.Equal(t, 12, first.Renamed)

	second, err := NewRunner(cfg, &logtest.Recorder{}, nil).Rename()
	require.NoError(t, err)
	assert.Equal(t, 12, second.Unchanged)
	assertUnlocked(t, cfg.RootDir)
}
