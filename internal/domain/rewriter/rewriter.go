package rewriter

import (
	"strings"

	m "github.com/mouse-blink/junitmig/internal/model"
)

// Rule names an assertion method and the argument count at which its
// message-first overload applies.
type Rule struct {
	Method  string
	MinArgs int
}

// DefaultRules are the two-argument boolean assertions.
var DefaultRules = []Rule{
	{Method: "assertTrue", MinArgs: 2},
	{Method: "assertFalse", MinArgs: 2},
}

// ExtendedRules cover the remaining JUnit 4 message-first overloads.
var ExtendedRules = []Rule{
	{Method: "assertNull", MinArgs: 2},
	{Method: "assertNotNull", MinArgs: 2},
	{Method: "assertEquals", MinArgs: 3},
	{Method: "assertNotEquals", MinArgs: 3},
	{Method: "assertSame", MinArgs: 3},
	{Method: "assertNotSame", MinArgs: 3},
	{Method: "assertArrayEquals", MinArgs: 3},
}

// Rewriter moves leading message arguments of recognized assertion calls to
// the last position.
type Rewriter struct {
	rules      []Rule
	classifier Classifier
	formatter  Formatter
}

// New creates a Rewriter. Rules with an empty method are dropped and MinArgs
// below two is raised to two.
func New(rules []Rule, classifier Classifier, formatter Formatter) *Rewriter {
	kept := make([]Rule, 0, len(rules))

	for _, rule := range rules {
		if rule.Method == "" {
			continue
		}

		if rule.MinArgs < 2 {
			rule.MinArgs = 2
		}

		kept = append(kept, rule)
	}

	return &Rewriter{rules: kept, classifier: classifier, formatter: formatter}
}

// Match reports the rule whose call opens line: after leading whitespace the
// line starts with the method name, optional blanks and "(".
func (rw *Rewriter) Match(line string) (Rule, bool) {
	trimmed := strings.TrimLeft(line, " \t")

	for _, rule := range rw.rules {
		if !strings.HasPrefix(trimmed, rule.Method) {
			continue
		}

		if strings.HasPrefix(strings.TrimLeft(trimmed[len(rule.Method):], " \t"), "(") {
			return rule, true
		}
	}

	return Rule{}, false
}

// RewriteStatement returns the replacement lines for stmt. The boolean is
// false when the call is already in condition-first order or its arguments
// are ambiguous. Shape errors wrap ErrUnparsableStatement or ErrNotSplittable.
func (rw *Rewriter) RewriteStatement(rule Rule, stmt Statement) ([]string, bool, error) {
	c, err := parseCall(stmt, rule.Method)
	if err != nil {
		return nil, false, err
	}

	first, rest, err := SplitArguments(c.params)
	if err != nil {
		return nil, false, err
	}

	if rw.classifier.Classify(first) != Message {
		return nil, false, nil
	}

	last := rest

	if rule.MinArgs > 2 {
		args := SplitAll(c.params)
		if len(args) < rule.MinArgs {
			return nil, false, nil
		}

		last = args[len(args)-1]
	}

	// A message in last position means the call is already reordered, or
	// both ends look like messages; either way nothing is safe to move.
	if rw.classifier.Classify(last) == Message {
		return nil, false, nil
	}

	return rw.formatter.Rewrite(c.method, c.indent, rest, first), true, nil
}

// Process scans lines for recognized calls and returns one change per
// statement that needs reordering. Lines inside a consumed statement are not
// matched again. A statement that never balances consumes only its first line.
func (rw *Rewriter) Process(lines []string) m.Patch {
	var patch m.Patch

	for i := 0; i < len(lines); {
		rule, ok := rw.Match(lines[i])
		if !ok {
			i++
			continue
		}

		stmt, err := LocateStatement(lines, i)
		if err != nil {
			patch.Skips = append(patch.Skips, m.Skip{Line: i + 1, Reason: err.Error()})
			i++

			continue
		}

		after, changed, err := rw.RewriteStatement(rule, stmt)

		switch {
		case err != nil:
			patch.Skips = append(patch.Skips, m.Skip{Line: i + 1, Reason: err.Error()})
		case changed:
			patch.Changes = append(patch.Changes, m.Change{
				Kind:   m.FixAssertions,
				Start:  stmt.Start,
				Before: append([]string(nil), stmt.Lines...),
				After:  after,
				Note:   rule.Method,
			})
		}

		i = stmt.End + 1
	}

	return patch
}
