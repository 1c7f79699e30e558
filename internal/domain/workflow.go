package domain

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/mouse-blink/junitmig/internal/adapter"
	"github.com/mouse-blink/junitmig/internal/controller"
	"github.com/mouse-blink/junitmig/internal/domain/fixers"
	"github.com/mouse-blink/junitmig/internal/domain/rewriter"
	m "github.com/mouse-blink/junitmig/internal/model"
)

var (
	// ErrMissingFile is returned when a target file does not exist.
	ErrMissingFile = errors.New("file not found")
	// ErrIncomplete is returned when a batch run skipped missing or failed files.
	ErrIncomplete = errors.New("some files could not be processed")
)

// Targets selects the files of a run.
type Targets struct {
	// Files are explicit targets. A single file runs in single-file mode,
	// where a missing file aborts the run.
	Files []m.Path
	// All processes every file under Dir matching Pattern. A relative Dir is
	// resolved against the project root; a "/..." suffix recurses.
	All     bool
	Dir     m.Path
	Pattern string
}

func (t Targets) single() bool {
	return !t.All && len(t.Files) == 1
}

// RunOptions are shared by every run.
type RunOptions struct {
	Mode        m.Mode
	Interactive bool
	Diff        bool
	// Report, when set, is where the run summary is saved.
	Report m.Path
}

// FixArgs configures an assertion reordering run.
type FixArgs struct {
	Targets
	RunOptions
	Rewriter *rewriter.Rewriter
}

// MigrateArgs configures a JUnit 5 migration run.
type MigrateArgs struct {
	Targets
	RunOptions
	// Tags added to untagged classes; nil selects the defaults.
	Tags []string
}

// JavadocArgs configures a Javadoc period run.
type JavadocArgs struct {
	RunOptions
	// Reports is a glob of checkstyle XML reports.
	Reports string
}

// CIArgs configures a CI workflow patch run.
type CIArgs struct {
	RunOptions
	Workflow m.Path
	Rules    []fixers.LineRule
}

// Workflow defines the fix operations offered by the CLI.
type Workflow interface {
	Fix(args FixArgs) (m.Summary, error)
	Migrate(args MigrateArgs) (m.Summary, error)
	FixJavadoc(args JavadocArgs) (m.Summary, error)
	PatchWorkflow(args CIArgs) (m.Summary, error)
}

type workflow struct {
	fsAdapter   adapter.SourceFSAdapter
	textAdapter adapter.TextFileAdapter
	checkstyle  adapter.CheckstyleReader
	reportStore adapter.ReportStore
	ui          controller.UI
	reviewer    controller.Reviewer
	committer   Committer
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
// The reviewer is consulted only for interactive runs.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	textAdapter adapter.TextFileAdapter,
	checkstyle adapter.CheckstyleReader,
	reportStore adapter.ReportStore,
	ui controller.UI,
	reviewer controller.Reviewer,
	committer Committer,
) Workflow {
	return &workflow{
		fsAdapter:   fsAdapter,
		textAdapter: textAdapter,
		checkstyle:  checkstyle,
		reportStore: reportStore,
		ui:          ui,
		reviewer:    reviewer,
		committer:   committer,
	}
}

// Fix reorders message-first assertion calls.
func (w *workflow) Fix(args FixArgs) (m.Summary, error) {
	rw := args.Rewriter
	if rw == nil {
		rw = rewriter.New(rewriter.DefaultRules, rewriter.NewClassifier(nil, nil), rewriter.NewFormatter(0, 0))
	}

	return w.run(fixers.NewAssertions(rw), "Fixing JUnit Assertion Parameter Order", args.Targets, args.RunOptions, args.single())
}

// Migrate renames JUnit 4 imports and annotations to JUnit 5.
func (w *workflow) Migrate(args MigrateArgs) (m.Summary, error) {
	return w.run(fixers.NewJUnit5(args.Tags), "JUnit 5 Migration", args.Targets, args.RunOptions, args.single())
}

// FixJavadoc adds missing first sentence periods on lines flagged by
// checkstyle reports.
func (w *workflow) FixJavadoc(args JavadocArgs) (m.Summary, error) {
	reports, err := w.fsAdapter.Glob(args.Reports)
	if err != nil {
		return m.Summary{}, err
	}

	violations := make(map[m.Path][]int)

	for _, report := range reports {
		found, err := w.checkstyle.Read(report, fixers.PeriodViolation)
		if err != nil {
			return m.Summary{}, err
		}

		for _, v := range found {
			violations[v.Path] = append(violations[v.Path], v.Line)
		}

		slog.Debug("checkstyle report loaded", "report", report, "violations", len(found))
	}

	fixer := fixers.NewJavadoc(violations)

	return w.run(fixer, "Fixing Javadoc First Sentence Periods", Targets{Files: fixer.Files()}, args.RunOptions, false)
}

// PatchWorkflow rewrites the release download steps of a CI workflow file.
func (w *workflow) PatchWorkflow(args CIArgs) (m.Summary, error) {
	return w.run(
		fixers.NewDownloads(args.Rules),
		"Patching CI Workflow Downloads",
		Targets{Files: []m.Path{args.Workflow}},
		args.RunOptions,
		true,
	)
}

// run processes the targets in order. In single mode a missing target aborts
// the run; otherwise it is reported and skipped.
func (w *workflow) run(fixer Fixer, title string, targets Targets, opts RunOptions, single bool) (m.Summary, error) {
	if opts.Mode == "" {
		opts.Mode = m.ModePreview
	}

	summary := m.Summary{Kind: fixer.Kind().Name, Mode: opts.Mode}

	files, missing, err := w.resolveTargets(targets)
	if err != nil {
		return summary, err
	}

	startOptions := []controller.StartOption{
		controller.WithTitle(title),
		controller.WithFileCount(len(files) + len(missing)),
		controller.WithDiff(opts.Diff),
	}
	if opts.Mode.Writes() {
		startOptions = append(startOptions, controller.WithApplyMode())
	} else {
		startOptions = append(startOptions, controller.WithPreviewMode())
	}

	if err := w.ui.Start(startOptions...); err != nil {
		return summary, err
	}
	defer w.ui.Close()

	for _, path := range missing {
		w.ui.DisplayMissing(path)
		summary.Missing = append(summary.Missing, path)
		slog.Warn("target not found", "path", path)

		if single {
			return summary, fmt.Errorf("%w: %s", ErrMissingFile, path)
		}
	}

	for _, path := range files {
		result := w.processFile(fixer, path, opts)
		if result.Error != "" {
			w.ui.DisplayFailure(path, errors.New(result.Error))
		} else {
			w.ui.DisplayFileResult(result)
		}

		summary.Add(result)
	}

	if err := w.ui.DisplaySummary(summary); err != nil {
		return summary, err
	}

	if opts.Report != "" {
		if err := w.reportStore.SaveReport(opts.Report, summary); err != nil {
			return summary, err
		}
	}

	if !summary.Clean() {
		return summary, fmt.Errorf("%w: %d missing, %d failed", ErrIncomplete, len(summary.Missing), len(summary.Failed))
	}

	return summary, nil
}

// resolveTargets expands targets into existing files and missing paths.
func (w *workflow) resolveTargets(targets Targets) ([]m.Path, []m.Path, error) {
	var files, missing []m.Path

	seen := make(map[m.Path]struct{})

	add := func(paths ...m.Path) {
		for _, p := range paths {
			if _, ok := seen[p]; ok {
				continue
			}

			seen[p] = struct{}{}
			files = append(files, p)
		}
	}

	for _, target := range targets.Files {
		if strings.HasSuffix(string(target), "/...") {
			found, err := w.fsAdapter.Get([]m.Path{target}, targets.Pattern)
			if err != nil {
				return nil, nil, err
			}

			add(found...)

			continue
		}

		info, err := w.fsAdapter.FileInfo(target)
		if err != nil {
			missing = append(missing, target)
			continue
		}

		if !info.IsDir() {
			add(target)
			continue
		}

		found, err := w.fsAdapter.Get([]m.Path{target}, targets.Pattern)
		if err != nil {
			return nil, nil, err
		}

		add(found...)
	}

	if targets.All && targets.Dir != "" {
		dir := w.resolveDir(targets.Dir)

		found, err := w.fsAdapter.Get([]m.Path{dir}, targets.Pattern)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to list %s: %w", dir, err)
		}

		add(found...)
	}

	return files, missing, nil
}

func (w *workflow) resolveDir(dir m.Path) m.Path {
	if filepath.IsAbs(string(dir)) {
		return dir
	}

	root, err := w.fsAdapter.FindProjectRoot(".")
	if err != nil {
		slog.Debug("no project root, using working directory", "err", err)
		return dir
	}

	return w.fsAdapter.JoinPath(string(root), string(dir))
}

// processFile runs fixer over one file and writes the result in apply mode.
// Files without fixes are never written.
func (w *workflow) processFile(fixer Fixer, path m.Path, opts RunOptions) m.FileResult {
	result := m.FileResult{Path: path, Kind: fixer.Kind().Name}

	fail := func(err error) m.FileResult {
		result.Error = err.Error()
		slog.Error("file failed", "path", path, "err", err)

		return result
	}

	data, err := w.fsAdapter.ReadFile(path)
	if err != nil {
		return fail(fmt.Errorf("failed to read: %w", err))
	}

	source := w.textAdapter.Decode(path, data)

	patch, err := fixer.Fix(source)
	if err != nil {
		return fail(err)
	}

	for _, skip := range patch.Skips {
		slog.Debug("statement left unchanged", "path", path, "line", skip.Line, "reason", skip.Reason)
	}

	kept, ignored := buildIgnoreIndex(source.Lines).split(patch.Changes)
	for _, c := range ignored {
		slog.Debug("change ignored by directive", "path", path, "line", c.Line(), "kind", c.Kind.Name)
	}

	if opts.Interactive && len(kept) > 0 {
		kept, err = w.reviewer.Review(path, kept)
		if err != nil {
			return fail(err)
		}
	}

	result.Skipped = patch.Skipped()
	result.Ignored = len(ignored)
	result.Fixes = len(kept)
	result.Changes = kept

	if result.Fixes == 0 {
		return result
	}

	after := m.Patch{Changes: kept}.Apply(source.Lines)

	if opts.Diff || opts.Report != "" {
		diff, err := unifiedDiff(path, source.Lines, after)
		if err != nil {
			return fail(fmt.Errorf("failed to diff: %w", err))
		}

		result.Diff = diff
	}

	if !opts.Mode.Writes() {
		return result
	}

	if err := w.committer.Commit(source, after); err != nil {
		return fail(err)
	}

	result.Written = true

	return result
}
