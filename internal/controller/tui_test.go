package controller

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	m "github.com/mouse-blink/junitmig/internal/model"
)

func TestTUI_Display(t *testing.T) {
	var buf bytes.Buffer

	ui := NewTUI(&buf)
	if err := ui.Start(WithTitle("JUnit 5 Migration"), WithFileCount(2), WithApplyMode(), WithDiff(true)); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	ui.DisplayFileResult(m.FileResult{Path: "ATest.java", Fixes: 4, Written: true, Ignored: 1, Diff: "@@ -1 +1 @@\n-old\n+new\n"})
	ui.DisplayFileResult(m.FileResult{Path: "BTest.java", Skipped: 2})
	ui.DisplayMissing("CTest.java")
	ui.DisplayFailure("DTest.java", errors.New("boom"))

	summary := m.Summary{Mode: m.ModeApply, Files: 2, Changed: 1, Fixes: 4, Skipped: 2, Missing: []m.Path{"CTest.java"}, Failed: []m.Path{"DTest.java"}}
	if err := ui.DisplaySummary(summary); err != nil {
		t.Fatalf("DisplaySummary() error = %v", err)
	}

	ui.Close()

	got := buf.String()

	for _, want := range []string{
		"JUnit 5 Migration",
		"Processing 2 files",
		"ATest.java",
		"4 fixes, written",
		"1 changes ignored",
		"-old",
		"+new",
		"BTest.java no changes",
		"2 statements left unchanged",
		"CTest.java",
		"file not found",
		"boom",
		"Files:",
		"Missing:",
		"Failed:",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output does not contain %q\nGot: %q", want, got)
		}
	}

	if strings.Contains(got, "re-run with --apply") {
		t.Errorf("apply mode printed preview hint")
	}
}

func TestTUI_PreviewHint(t *testing.T) {
	var buf bytes.Buffer

	ui := NewTUI(&buf)
	_ = ui.Start()
	_ = ui.DisplaySummary(m.Summary{Mode: m.ModePreview, Files: 1, Changed: 1, Fixes: 1})

	if !strings.Contains(buf.String(), "re-run with --apply") {
		t.Fatalf("preview hint missing\nGot: %q", buf.String())
	}
}

func TestTruncateToWidth(t *testing.T) {
	if got := truncateToWidth("hello", 0); got != "" {
		t.Fatalf("truncateToWidth width 0 = %q, want empty", got)
	}

	if got := truncateToWidth("hello", 10); got != "hello" {
		t.Fatalf("truncateToWidth no truncation = %q", got)
	}

	if got := truncateToWidth("hello", 1); got != "…" {
		t.Fatalf("truncateToWidth width 1 = %q, want ellipsis", got)
	}

	if got := truncateToWidth("hello", 2); got != "h…" {
		t.Fatalf("truncateToWidth width 2 = %q, want h…", got)
	}
}
