package controller

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	m "github.com/mouse-blink/junitmig/internal/model"
)

const defaultWidth = 80

var (
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	accentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	fixedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	removedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	addedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// TUI implements UI with lipgloss styling for interactive terminals.
type TUI struct {
	output io.Writer
	width  int
	cfg    StartConfig
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	width := defaultWidth

	if f, ok := output.(*os.File); ok {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			width = w
		}
	}

	return &TUI{output: output, width: width}
}

// Start prints the run banner.
func (t *TUI) Start(options ...StartOption) error {
	t.cfg = newStartConfig(options)

	if t.cfg.title != "" {
		t.println(titleStyle.Render(t.cfg.title))
	}

	t.println(mutedStyle.Render(strings.Repeat("─", min(t.width, 60))))
	t.println(fmt.Sprintf("Processing %s files %s",
		accentStyle.Render(fmt.Sprintf("%d", t.cfg.files)),
		mutedStyle.Render("("+modeLabel(t.cfg.mode)+")"),
	))
	t.println("")

	return nil
}

// Close finalizes the UI.
func (t *TUI) Close() {
}

// DisplayFileResult prints one styled progress line per file.
func (t *TUI) DisplayFileResult(result m.FileResult) {
	path := truncateToWidth(string(result.Path), t.width-30)

	if result.Changed() {
		t.println(fmt.Sprintf("  %s %s %s",
			fixedStyle.Render("✓"),
			path,
			accentStyle.Render(fmt.Sprintf("%d fixes, %s", result.Fixes, resultStatus(result, t.cfg.mode))),
		))
	} else {
		t.println(fmt.Sprintf("  %s %s", mutedStyle.Render("-"), mutedStyle.Render(path+" no changes")))
	}

	if result.Skipped > 0 {
		t.println(warnStyle.Render(fmt.Sprintf("    %d statements left unchanged", result.Skipped)))
	}

	if result.Ignored > 0 {
		t.println(mutedStyle.Render(fmt.Sprintf("    %d changes ignored", result.Ignored)))
	}

	if t.cfg.diff && result.Diff != "" {
		t.println(renderDiff(result.Diff))
	}
}

// DisplayMissing reports a target that does not exist.
func (t *TUI) DisplayMissing(path m.Path) {
	t.println(fmt.Sprintf("  %s %s %s", warnStyle.Render("!"), path, warnStyle.Render("file not found")))
}

// DisplayFailure reports a file that could not be processed.
func (t *TUI) DisplayFailure(path m.Path, err error) {
	t.println(fmt.Sprintf("  %s %s %s", errorStyle.Render("✗"), path, errorStyle.Render(err.Error())))
}

// DisplaySummary prints the boxed totals.
func (t *TUI) DisplaySummary(summary m.Summary) error {
	lines := []string{
		fmt.Sprintf("Files:   %s", accentStyle.Render(fmt.Sprintf("%d", summary.Files))),
		fmt.Sprintf("Changed: %s", fixedStyle.Render(fmt.Sprintf("%d", summary.Changed))),
		fmt.Sprintf("Fixes:   %s", fixedStyle.Render(fmt.Sprintf("%d", summary.Fixes))),
	}

	if summary.Skipped > 0 {
		lines = append(lines, fmt.Sprintf("Skipped: %s", warnStyle.Render(fmt.Sprintf("%d", summary.Skipped))))
	}

	if len(summary.Missing) > 0 {
		lines = append(lines, fmt.Sprintf("Missing: %s", warnStyle.Render(fmt.Sprintf("%d", len(summary.Missing)))))
	}

	if len(summary.Failed) > 0 {
		lines = append(lines, fmt.Sprintf("Failed:  %s", errorStyle.Render(fmt.Sprintf("%d", len(summary.Failed)))))
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Padding(0, 1)

	t.println("")
	t.println(box.Render(lipgloss.JoinVertical(lipgloss.Left, lines...)))

	if !summary.Mode.Writes() && summary.Changed > 0 {
		t.println(mutedStyle.Render("Preview only, re-run with --apply to write changes"))
	}

	return nil
}

func (t *TUI) println(s string) {
	_, _ = fmt.Fprintln(t.output, s)
}

func renderDiff(diff string) string {
	lines := strings.Split(strings.TrimRight(diff, "\n"), "\n")

	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "---"), strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "@@"):
			lines[i] = mutedStyle.Render(line)
		case strings.HasPrefix(line, "-"):
			lines[i] = removedStyle.Render(line)
		case strings.HasPrefix(line, "+"):
			lines[i] = addedStyle.Render(line)
		}
	}

	return strings.Join(lines, "\n")
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	if width <= 1 {
		return ellipsis
	}

	maxWidth := width - lipgloss.Width(ellipsis)
	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}
