package controller

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/junitmig/internal/model"
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd *cobra.Command
	cfg StartConfig
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start prints the run banner.
func (s *SimpleUI) Start(options ...StartOption) error {
	s.cfg = newStartConfig(options)

	if s.cfg.title != "" {
		s.printf("%s\n", s.cfg.title)
	}

	s.printf("Processing %d files (%s)\n\n", s.cfg.files, modeLabel(s.cfg.mode))

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {
}

// DisplayFileResult prints one progress line per file.
func (s *SimpleUI) DisplayFileResult(result m.FileResult) {
	if !result.Changed() {
		s.printf("  - %s: no changes\n", result.Path)
	} else {
		s.printf("  + %s: %d fixes (%s)\n", result.Path, result.Fixes, resultStatus(result, s.cfg.mode))
	}

	if result.Skipped > 0 {
		s.printf("    %d statements left unchanged\n", result.Skipped)
	}

	if result.Ignored > 0 {
		s.printf("    %d changes ignored\n", result.Ignored)
	}

	if s.cfg.diff && result.Diff != "" {
		s.printf("%s\n", result.Diff)
	}
}

// DisplayMissing reports a target that does not exist.
func (s *SimpleUI) DisplayMissing(path m.Path) {
	s.printf("  ! %s: file not found\n", path)
}

// DisplayFailure reports a file that could not be processed.
func (s *SimpleUI) DisplayFailure(path m.Path, err error) {
	s.printf("  x %s: %v\n", path, err)
}

// DisplaySummary prints the per-file table and the totals.
func (s *SimpleUI) DisplaySummary(summary m.Summary) error {
	if len(summary.Results) > 0 {
		var tableBuffer bytes.Buffer

		table := tablewriter.NewWriter(&tableBuffer)
		table.SetHeader([]string{"Path", "Fixes", "Skipped", "Status"})
		table.SetBorder(false)
		table.SetCenterSeparator("")
		table.SetColumnAlignment([]int{
			tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT,
		})

		for _, result := range summary.Results {
			table.Append([]string{
				string(result.Path),
				strconv.Itoa(result.Fixes),
				strconv.Itoa(result.Skipped),
				resultStatus(result, s.cfg.mode),
			})
		}

		table.SetFooter([]string{
			fmt.Sprintf("Total Files %d", summary.Files),
			strconv.Itoa(summary.Fixes),
			strconv.Itoa(summary.Skipped),
			fmt.Sprintf("%d changed", summary.Changed),
		})

		table.Render()
		s.printf("\n%s", tableBuffer.String())
	}

	s.printf("\nComplete: %d/%d files fixed, %d fixes\n", summary.Changed, summary.Files, summary.Fixes)

	if len(summary.Missing) > 0 {
		s.printf("Missing: %d files\n", len(summary.Missing))
	}

	if len(summary.Failed) > 0 {
		s.printf("Failed: %d files\n", len(summary.Failed))
	}

	if !summary.Mode.Writes() && summary.Changed > 0 {
		s.printf("Preview only, re-run with --apply to write changes\n")
	}

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
