// Package fixers holds the line-based fixers run by the workflow. Each fixer
// turns a source into a patch and never touches the filesystem.
package fixers

import (
	"github.com/mouse-blink/junitmig/internal/domain/rewriter"
	m "github.com/mouse-blink/junitmig/internal/model"
)

// Assertions reorders message-first assertion calls.
type Assertions struct {
	rw *rewriter.Rewriter
}

// NewAssertions creates an assertion fixer around a configured rewriter.
func NewAssertions(rw *rewriter.Rewriter) *Assertions {
	return &Assertions{rw: rw}
}

// Kind implements the domain fixer contract.
func (a *Assertions) Kind() m.FixKind {
	return m.FixAssertions
}

// Fix implements the domain fixer contract.
func (a *Assertions) Fix(source m.Source) (m.Patch, error) {
	return a.rw.Process(source.Lines), nil
}
