package rewriter

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// DefaultColumnBudget is the widest combined length emitted on one line.
	DefaultColumnBudget = 100
	// DefaultContinuation indents the message line of a two-line rewrite.
	DefaultContinuation = "    "
)

// Formatter renders a reordered call.
type Formatter struct {
	ColumnBudget int
	Continuation string
}

// NewFormatter returns a Formatter, using defaults for zero values.
func NewFormatter(budget int, continuation int) Formatter {
	f := Formatter{ColumnBudget: budget, Continuation: DefaultContinuation}
	if f.ColumnBudget <= 0 {
		f.ColumnBudget = DefaultColumnBudget
	}

	if continuation > 0 {
		f.Continuation = strings.Repeat(" ", continuation)
	}

	return f
}

// Rewrite emits method(condition, message); on one line when
// indent+method+condition+message fits the column budget, otherwise on two
// lines with the message beneath the condition.
func (f Formatter) Rewrite(method, indent, condition, message string) []string {
	condition = CollapseSpace(condition)
	message = CollapseSpace(message)

	width := utf8.RuneCountInString(indent) +
		utf8.RuneCountInString(method) +
		utf8.RuneCountInString(condition) +
		utf8.RuneCountInString(message)

	if width <= f.ColumnBudget {
		return []string{indent + method + "(" + condition + ", " + message + ");"}
	}

	return []string{
		indent + method + "(" + condition + ",",
		indent + f.Continuation + message + ");",
	}
}

// CollapseSpace trims s and replaces every whitespace run outside quoted
// literals with a single space.
func CollapseSpace(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	var (
		quote   rune
		escape  bool
		pending bool
	)

	for _, r := range strings.TrimSpace(s) {
		if quote != 0 {
			b.WriteRune(r)

			switch {
			case escape:
				escape = false
			case r == '\\':
				escape = true
			case r == quote:
				quote = 0
			}

			continue
		}

		if unicode.IsSpace(r) {
			pending = true
			continue
		}

		if pending {
			b.WriteByte(' ')

			pending = false
		}

		if r == '"' || r == '\'' {
			quote = r
		}

		b.WriteRune(r)
	}

	return b.String()
}
