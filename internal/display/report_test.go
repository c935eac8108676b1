package display

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/backmassage/spritenorm/internal/check"
	"github.com/backmassage/spritenorm/internal/layout"
	"github.com/backmassage/spritenorm/internal/logging/logtest"
	"github.com/backmassage/spritenorm/internal/rename"
)

func TestPrintFolderReport(t *testing.T) {
	log := &logtest.Recorder{}
	PrintFolderReport(log, check.FolderReport{Extra: []string{"a/c"}})

	if !log.Contains("SUCCESS", "No missing folders.") {
		t.Error("expected success line for missing folders")
	}
	if !log.Contains("WARN", "Extra folders:") || !log.Contains("INFO", "  - a/c") {
		t.Errorf("extra folders not listed: %v", log.Entries())
	}
}

func TestPrintSpriteReport_SortsFindings(t *testing.T) {
	log := &logtest.Recorder{}
	PrintSpriteReport(log, check.SpriteReport{
		Missing: []check.Finding{
			{Zone: layout.Skin, Name: "eye", Kind: check.KindEssential},
			{Zone: layout.EquipmentIcon, Name: "weapon(2)", Kind: check.KindCounterpart},
		},
		Errors: []layout.ZoneError{{Zone: layout.NPC, Err: errors.New("directory not found")}},
	})

	info := log.Lines("INFO")
	if len(info) != 3 {
		t.Fatalf("got %d info lines, want 3: %v", len(info), info)
	}
	if info[1] != "  - Missing in equipment/icon: weapon(2)" {
		t.Errorf("first finding = %q", info[1])
	}
	if !log.Contains("SUCCESS", "No invalid files.") {
		t.Error("expected success line for invalid files")
	}
	if !log.Contains("ERROR", "npc: directory not found") {
		t.Error("zone error not reported")
	}
}

func TestPrintRenameSummary(t *testing.T) {
	log := &logtest.Recorder{}
	res := &rename.Result{
		Moves:     []rename.Move{{Zone: layout.Pet, From: "pet/pet.png", To: "pet/Spring_Pet_0.png"}},
		Unchanged: 2,
		Unmapped:  []*rename.UnmappedError{{Zone: layout.SkinEvoIcon, File: "body(5).png", From: layout.SkinEvo}},
	}
	PrintRenameSummary(log, res, true)

	if !log.Contains("INFO", "Done: 1 file to rename, 2 unchanged, 1 skipped, 0 failed") {
		t.Errorf("summary line missing: %v", log.Lines("INFO"))
	}
	if !log.Contains("WARN", "body(5).png") {
		t.Error("unmapped file not reported")
	}
	if len(log.Lines("SUCCESS")) != 0 {
		t.Error("unclean result must not print success")
	}
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf)
	if !strings.Contains(buf.String(), "|_|\n") {
		t.Errorf("banner art missing: %q", buf.String())
	}
	if !strings.HasSuffix(buf.String(), "  "+tagline+"\n") {
		t.Errorf("unexpected banner ending: %q", buf.String())
	}
}
