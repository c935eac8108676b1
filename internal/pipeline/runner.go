package pipeline

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/backmassage/spritenorm/internal/check"
	"github.com/backmassage/spritenorm/internal/cleanup"
	"github.com/backmassage/spritenorm/internal/config"
	"github.com/backmassage/spritenorm/internal/display"
	"github.com/backmassage/spritenorm/internal/layout"
	"github.com/backmassage/spritenorm/internal/naming"
	"github.com/backmassage/spritenorm/internal/rename"
)

// Logger is the logging surface used by the pipeline.
type Logger interface {
	Info(string, ...any)
	Success(string, ...any)
	Warn(string, ...any)
	Error(string, ...any)
	Debug(string, ...any)
}

// Runner runs the workflows for one validated Config.
type Runner struct {
	cfg     *config.Config
	log     Logger
	confirm Confirmer
	table   layout.Table
	runID   string
	now     func() time.Time
}

// NewRunner returns a Runner. A nil confirm prompts on the terminal.
func NewRunner(cfg *config.Config, log Logger, confirm Confirmer) *Runner {
	if confirm == nil {
		confirm = Prompt{In: os.Stdin, Out: os.Stdout}
	}
	return &Runner{
		cfg:     cfg,
		log:     log,
		confirm: confirm,
		table:   layout.DefaultTable(),
		runID:   uuid.New().String(),
		now:     time.Now,
	}
}

// RunID identifies this run in logs and reports.
func (r *Runner) RunID() string { return r.runID }

// Audit is the read-only result of checking a tree.
type Audit struct {
	Event   string
	Folders check.FolderReport
	Sprites check.SpriteReport
}

// IsAllCorrect reports whether neither check found anything.
func (a *Audit) IsAllCorrect() bool {
	return a.Folders.IsAllCorrect() && a.Sprites.IsAllCorrect()
}

// Audit checks the folder layout against the allow-list and every sprite
// zone, printing both reports. It never modifies the tree.
func (r *Runner) Audit() (*Audit, error) {
	allow, err := r.loadAllowList()
	if err != nil {
		return nil, err
	}
	folders, err := check.CheckFolders(r.cfg.RootDir, allow)
	if err != nil {
		return nil, err
	}

	event := r.eventName()
	r.log.Info("Root:  %s", r.cfg.RootDir)
	r.log.Info("Event: %s", event)
	display.PrintFolderReport(r.log, folders)

	checker := check.NewChecker(r.table, naming.NewCanonicalizer(event), r.cfg.Pattern(), r.log)
	sprites := checker.CheckSprites(r.cfg.RootDir)
	display.PrintSpriteReport(r.log, sprites)

	return &Audit{Event: event, Folders: folders, Sprites: sprites}, nil
}

// Rename audits the tree, asks for confirmation, and renames the configured
// units. A declined confirmation is not an error; it is reported through
// RunStats.Cancelled.
func (r *Runner) Rename() (RunStats, error) {
	var stats RunStats
	units, err := r.cfg.Units()
	if err != nil {
		return stats, err
	}
	audit, err := r.Audit()
	if err != nil {
		return stats, err
	}
	if strings.TrimSpace(audit.Event) == "" {
		return stats, rename.ErrInvalidEventName
	}

	ok, err := r.proceed(fmt.Sprintf("Rename sprites in %s for event %q?", r.cfg.RootDir, audit.Event))
	if err != nil {
		return stats, err
	}
	if !ok {
		r.log.Warn("Rename cancelled")
		stats.Cancelled = true
		return stats, nil
	}

	unlock, err := lockRoot(r.cfg.RootDir)
	if err != nil {
		return stats, err
	}
	defer unlock()

	var mover rename.Mover = rename.OSMover{}
	if r.cfg.DryRun {
		r.log.Warn("DRY RUN: no file will be moved")
		mover = rename.DryRunMover{}
	}
	engine := rename.New(r.table, mover, r.log, rename.Options{Pattern: r.cfg.Pattern(), Ext: r.cfg.Extension})

	start := r.now()
	res, err := engine.Run(r.cfg.RootDir, audit.Event, units...)
	if err != nil {
		return stats, err
	}
	stats = statsFrom(res)
	display.PrintRenameSummary(r.log, res, r.cfg.DryRun)
	r.log.Debug("Rename took %s", time.Since(start).Round(time.Millisecond))

	if r.cfg.ReportFile != "" {
		rep := NewReport(r.runID, start, r.cfg, audit, res)
		if err := WriteReport(r.cfg.ReportFile, rep); err != nil {
			return stats, err
		}
		r.log.Info("Report written to %s", r.cfg.ReportFile)
	}
	return stats, nil
}

// Clean deletes the folders the folder check reports as extra, after
// confirmation. The top-level "element" folder is always kept.
func (r *Runner) Clean() (cleanup.Result, error) {
	allow, err := r.loadAllowList()
	if err != nil {
		return cleanup.Result{}, err
	}
	folders, err := check.CheckFolders(r.cfg.RootDir, allow)
	if err != nil {
		return cleanup.Result{}, err
	}
	display.PrintFolderReport(r.log, folders)
	if len(folders.Extra) == 0 {
		return cleanup.DeleteExtraFolders(r.cfg.RootDir, nil, r.cfg.DryRun, r.log), nil
	}

	ok, err := r.proceed(fmt.Sprintf("Delete %s from %s?", display.Plural(len(folders.Extra), "extra folder"), r.cfg.RootDir))
	if err != nil {
		return cleanup.Result{}, err
	}
	if !ok {
		r.log.Warn("Cleanup cancelled")
		return cleanup.Result{}, nil
	}

	unlock, err := lockRoot(r.cfg.RootDir)
	if err != nil {
		return cleanup.Result{}, err
	}
	defer unlock()

	res := cleanup.DeleteExtraFolders(r.cfg.RootDir, folders.Extra, r.cfg.DryRun, r.log)
	display.PrintCleanupSummary(r.log, res, r.cfg.DryRun)
	return res, nil
}

func (r *Runner) loadAllowList() (config.AllowList, error) {
	allow, err := config.LoadAllowList(r.cfg.AllowListFile)
	if err != nil {
		return allow, err
	}
	top, groups, ignored := allow.Counts()
	r.log.Debug("Allow-list %s: %d top-level folders, %d nested groups, %d ignored",
		r.cfg.AllowListFile, top, groups, ignored)
	r.log.Debug("Required top-level folders: %s", strings.Join(allow.TopFolders(), ", "))
	return allow, nil
}

// eventName resolves the event and warns when only a placeholder is available.
func (r *Runner) eventName() string {
	ev := r.cfg.ResolveEventName()
	if config.IsPlaceholderEvent(ev) {
		r.log.Warn("No event name found, using %q (set --event or edit %s)", ev, r.cfg.EventFile)
	}
	return ev
}

// proceed asks the confirmer unless --yes or --dry-run was given.
func (r *Runner) proceed(question string) (bool, error) {
	if r.cfg.AssumeYes || r.cfg.DryRun {
		return true, nil
	}
	return r.confirm.Confirm(question)
}
