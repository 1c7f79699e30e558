package model

import (
	"slices"
	"sort"
)

// FixKind represents the category of fix a fixer produces.
type FixKind struct {
	Name    string
	Summary string
}

var (
	// FixAssertions moves assertion messages from first to last argument.
	FixAssertions = FixKind{Name: "assertions", Summary: "assertion parameter order"}
	// FixJUnit5 renames JUnit 4 imports and annotations to JUnit 5.
	FixJUnit5 = FixKind{Name: "junit5", Summary: "JUnit 4 to JUnit 5 migration"}
	// FixJavadoc appends missing periods to Javadoc first sentences.
	FixJavadoc = FixKind{Name: "javadoc", Summary: "Javadoc first sentence period"}
	// FixDownloads patches release download steps of a CI workflow.
	FixDownloads = FixKind{Name: "downloads", Summary: "CI workflow download commands"}
)

// Change replaces the lines [Start, Start+len(Before)) of a source with After.
// Line indexes are zero based.
type Change struct {
	Kind   FixKind
	Start  int
	Before []string
	After  []string
	Note   string
}

// End returns the index of the last original line covered by the change.
func (c Change) End() int {
	return c.Start + len(c.Before) - 1
}

// Line returns the one-based line number where the change starts.
func (c Change) Line() int {
	return c.Start + 1
}

// Skip records a candidate site that was left alone because its shape was
// not understood.
type Skip struct {
	Line   int
	Reason string
}

// Patch is the outcome of running a fixer over one source.
type Patch struct {
	Changes []Change
	Skips   []Skip
}

// Skipped returns the number of candidate sites left alone.
func (p Patch) Skipped() int {
	return len(p.Skips)
}

// Apply returns a copy of lines with every change of the patch applied.
// Changes are applied in line order; a change overlapping an earlier one or
// whose Before lines no longer match is dropped.
func (p Patch) Apply(lines []string) []string {
	changes := make([]Change, len(p.Changes))
	copy(changes, p.Changes)
	sort.SliceStable(changes, func(i, j int) bool { return changes[i].Start < changes[j].Start })

	out := make([]string, 0, len(lines))
	next := 0

	for _, c := range changes {
		if c.Start < next || c.Start > len(lines) || c.End() >= len(lines) || !slices.Equal(lines[c.Start:c.End()+1], c.Before) {
			continue
		}

		out = append(out, lines[next:c.Start]...)
		out = append(out, c.After...)
		next = c.End() + 1
	}

	return append(out, lines[next:]...)
}
