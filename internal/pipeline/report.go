package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/backmassage/spritenorm/internal/check"
	"github.com/backmassage/spritenorm/internal/config"
	"github.com/backmassage/spritenorm/internal/layout"
	"github.com/backmassage/spritenorm/internal/rename"
)

// Report is the YAML record of one rename run. Paths are relative to Root.
type Report struct {
	RunID    string             `yaml:"run_id"`
	Started  time.Time          `yaml:"started"`
	Root     string             `yaml:"root"`
	Event    string             `yaml:"event"`
	DryRun   bool               `yaml:"dry_run"`
	Folders  check.FolderReport `yaml:"folders"`
	Sprites  check.SpriteReport `yaml:"sprites"`
	Stats    RunStats           `yaml:"stats"`
	Moves    []ReportMove       `yaml:"moves"`
	Skipped  []rename.Skip      `yaml:"skipped,omitempty"`
	Problems []string           `yaml:"problems,omitempty"`
}

// ReportMove is a rename as written to the report.
type ReportMove struct {
	Zone layout.Zone `yaml:"zone"`
	From string      `yaml:"from"`
	To   string      `yaml:"to"`
}

// NewReport assembles the report of a finished run.
func NewReport(runID string, started time.Time, cfg *config.Config, audit *Audit, res *rename.Result) *Report {
	rep := &Report{
		RunID:   runID,
		Started: started,
		Root:    cfg.RootDir,
		Event:   audit.Event,
		DryRun:  cfg.DryRun,
		Folders: audit.Folders,
		Sprites: audit.Sprites,
		Stats:   statsFrom(res),
		Skipped: res.Skipped,
		Moves:   make([]ReportMove, 0, len(res.Moves)),
	}
	for _, m := range res.Moves {
		rep.Moves = append(rep.Moves, ReportMove{
			Zone: m.Zone,
			From: relTo(cfg.RootDir, m.From),
			To:   relTo(cfg.RootDir, m.To),
		})
	}
	for _, ze := range audit.Sprites.Errors {
		rep.Problems = append(rep.Problems, "not checked: "+ze.Error())
	}
	for _, u := range res.Unmapped {
		rep.Problems = append(rep.Problems, "unmapped: "+u.Error())
	}
	for _, f := range res.Failed {
		rep.Problems = append(rep.Problems, fmt.Sprintf("failed: %s: %v", relTo(cfg.RootDir, f.From), f.Err))
	}
	for _, ze := range res.ZoneErrors {
		rep.Problems = append(rep.Problems, "not renamed: "+ze.Error())
	}
	return rep
}

// WriteReport writes rep to path as YAML, creating parent directories.
func WriteReport(path string, rep *Report) error {
	data, err := yaml.Marshal(rep)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create report directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func relTo(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}
