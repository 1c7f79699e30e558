package fixers

import (
	"regexp"
	"slices"
	"strings"

	m "github.com/mouse-blink/junitmig/internal/model"
)

// PeriodViolation is the checkstyle message that selects Javadoc lines.
const PeriodViolation = "First sentence should end with a period"

var javadocLine = regexp.MustCompile(`^(\s*(?:/\*\*|\*+)\s*)(.*)$`)

// Javadoc appends a period to the first sentence of Javadoc comments on the
// lines a checkstyle report flagged.
type Javadoc struct {
	violations map[m.Path][]int
}

// NewJavadoc creates a fixer for the given one-based line numbers per file.
func NewJavadoc(violations map[m.Path][]int) *Javadoc {
	return &Javadoc{violations: violations}
}

// Kind implements the domain fixer contract.
func (j *Javadoc) Kind() m.FixKind {
	return m.FixJavadoc
}

// Files returns the flagged files in sorted order.
func (j *Javadoc) Files() []m.Path {
	files := make([]m.Path, 0, len(j.violations))
	for path := range j.violations {
		files = append(files, path)
	}

	slices.Sort(files)

	return files
}

// Fix implements the domain fixer contract.
func (j *Javadoc) Fix(source m.Source) (m.Patch, error) {
	lines := slices.Clone(j.violations[source.Path])
	slices.Sort(lines)
	lines = slices.Compact(lines)

	var patch m.Patch

	for _, n := range lines {
		idx := n - 1
		if idx < 0 || idx >= len(source.Lines) {
			patch.Skips = append(patch.Skips, m.Skip{Line: n, Reason: "line out of range"})
			continue
		}

		fixed, ok, reason := addPeriod(source.Lines[idx])
		if !ok {
			if reason != "" {
				patch.Skips = append(patch.Skips, m.Skip{Line: n, Reason: reason})
			}

			continue
		}

		patch.Changes = append(patch.Changes, m.Change{
			Kind:   m.FixJavadoc,
			Start:  idx,
			Before: []string{source.Lines[idx]},
			After:  []string{fixed},
		})
	}

	return patch, nil
}

// addPeriod returns the line with a period appended to its comment text.
// A non-empty reason means the line is not a Javadoc text line at all; an
// empty reason with ok=false means it needs no period.
func addPeriod(line string) (string, bool, string) {
	match := javadocLine.FindStringSubmatch(line)
	if match == nil {
		return line, false, "not a javadoc line"
	}

	prefix, text := match[1], strings.TrimRight(match[2], " \t")

	closing := ""
	if strings.HasSuffix(text, "*/") {
		closing = " */"
		text = strings.TrimRight(strings.TrimSuffix(text, "*/"), " \t")
	}

	switch {
	case text == "", strings.HasPrefix(text, "/"):
		return line, false, ""
	case strings.HasPrefix(text, "@"):
		return line, false, ""
	case strings.HasSuffix(text, ".") || strings.HasSuffix(text, "!") || strings.HasSuffix(text, "?") ||
		strings.HasSuffix(text, ":") || strings.HasSuffix(text, "}"):
		return line, false, ""
	}

	return prefix + text + "." + closing, true, ""
}
