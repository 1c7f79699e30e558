// Package cmd provides the root command and CLI setup for junitmig.
package cmd

import (
	"errors"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/junitmig/internal/adapter"
	"github.com/mouse-blink/junitmig/internal/config"
	"github.com/mouse-blink/junitmig/internal/controller"
	"github.com/mouse-blink/junitmig/internal/domain"
	m "github.com/mouse-blink/junitmig/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var textAdapter adapter.TextFileAdapter
var checkstyleReader adapter.CheckstyleReader
var reportStore adapter.ReportStore
var committer domain.Committer
var reviewer controller.Reviewer
var workflow domain.Workflow
var ui controller.UI

// settings is loaded before every command runs.
var settings = config.Default()

func init() {
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	textAdapter = adapter.NewLocalTextFileAdapter()
	checkstyleReader = adapter.NewCheckstyleReader(fsAdapter)
	reportStore = adapter.NewReportStore(fsAdapter)
	committer = domain.NewCommitter(fsAdapter, textAdapter)
	reviewer = controller.NewTeaReviewer(os.Stdin, os.Stdout)
	workflow = domain.NewWorkflow(
		fsAdapter,
		textAdapter,
		checkstyleReader,
		reportStore,
		ui,
		reviewer,
		committer,
	)
}

var errNoTargets = errors.New("no files given: pass one or more files or use --all")

var configFlag string
var verboseFlag bool
var reportFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "junitmig",
		Short: "Fix JUnit test sources in place",
		Long: `junitmig rewrites Java test sources and their build files:

  fix      move message-first assertion arguments to the last position
  migrate  rename JUnit 4 imports and annotations to JUnit 5
  javadoc  add missing first sentence periods flagged by checkstyle
  ci       update release download steps of a CI workflow

Every command previews by default. Pass --apply to write the files.`,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			level := slog.LevelWarn
			if verboseFlag {
				level = slog.LevelDebug
			}

			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: level,
			})))

			loaded, err := config.LoadSettings(configFlag)
			if err != nil {
				return err
			}

			settings = loaded

			return nil
		},
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&configFlag, "config", config.DefaultPath, "path to config file")
	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&reportFlag, "report", "", "save the run summary to this file (.json, .yaml or .yml)")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// runFlags are shared by every fixing command.
type runFlags struct {
	apply       bool
	dryRun      bool
	interactive bool
	diff        bool
}

func addRunFlags(cmd *cobra.Command, f *runFlags) {
	cmd.Flags().BoolVar(&f.apply, "apply", false, "write the fixed files")
	cmd.Flags().BoolVar(&f.dryRun, "dry-run", false, "only report what would change (default)")
	cmd.Flags().BoolVarP(&f.interactive, "interactive", "i", false, "review every change before it is kept")
	cmd.Flags().BoolVar(&f.diff, "diff", false, "show a unified diff of every changed file")
	cmd.MarkFlagsMutuallyExclusive("apply", "dry-run")
}

func (f runFlags) options() domain.RunOptions {
	mode := m.ModePreview
	if f.apply {
		mode = m.ModeApply
	}

	return domain.RunOptions{
		Mode:        mode,
		Interactive: f.interactive,
		Diff:        f.diff,
		Report:      m.Path(reportFlag),
	}
}

// targetFlags select the files of the fix and migrate commands.
type targetFlags struct {
	all     bool
	dir     string
	pattern string
}

func addTargetFlags(cmd *cobra.Command, f *targetFlags) {
	cmd.Flags().BoolVarP(&f.all, "all", "a", false, "process every matching file under the test directory")
	cmd.Flags().StringVar(&f.dir, "dir", "", "test directory for --all (default from config, \"/...\" recurses)")
	cmd.Flags().StringVar(&f.pattern, "pattern", "", "file name glob for --all and directory targets (default from config)")
}

func (f targetFlags) targets(args []string) (domain.Targets, error) {
	if len(args) == 0 && !f.all {
		return domain.Targets{}, errNoTargets
	}

	dir := f.dir
	if dir == "" {
		dir = settings.TestDir
	}

	pattern := f.pattern
	if pattern == "" {
		pattern = settings.Pattern
	}

	return domain.Targets{
		Files:   parsePaths(args),
		All:     f.all,
		Dir:     m.Path(dir),
		Pattern: pattern,
	}, nil
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
