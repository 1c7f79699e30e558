// Package domain contains the fix workflow: target resolution, fixer runs,
// ignore directives, review and committing.
package domain

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	m "github.com/mouse-blink/junitmig/internal/model"
)

// Fixer turns a source into a patch. Fixers never touch the filesystem.
type Fixer interface {
	Kind() m.FixKind
	Fix(source m.Source) (m.Patch, error)
}

// unifiedDiff renders the difference between two versions of a file.
func unifiedDiff(path m.Path, before, after []string) (string, error) {
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        withNewlines(before),
		B:        withNewlines(after),
		FromFile: "a/" + strings.TrimPrefix(string(path), "/"),
		ToFile:   "b/" + strings.TrimPrefix(string(path), "/"),
		Context:  2,
	})
}

func withNewlines(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = line + "\n"
	}

	return out
}
