// Package rewriter locates assertion call statements in Java source lines and
// reorders their arguments from message-first to message-last.
package rewriter

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnparsableStatement is returned when a located statement does not
	// have the expected name(...) shape.
	ErrUnparsableStatement = errors.New("unparsable statement")
	// ErrUnbalancedStatement is returned when parentheses never return to
	// depth zero before the end of input.
	ErrUnbalancedStatement = fmt.Errorf("%w: unbalanced parentheses", ErrUnparsableStatement)
	// ErrNotSplittable is returned when an argument list has no top-level comma.
	ErrNotSplittable = errors.New("no top-level comma")
)

// Statement is a contiguous, inclusive range of lines holding one call.
type Statement struct {
	Start int
	End   int
	Lines []string
}

// Text joins the statement lines with newlines.
func (s Statement) Text() string {
	return strings.Join(s.Lines, "\n")
}

// scanner tracks bracket depth, quoted literals and line comments one rune
// at a time. Brackets inside literals or comments are ignored.
type scanner struct {
	depth   int
	quote   rune // delimiter of the open literal, 0 outside literals
	escape  bool
	comment bool // inside a // comment until the next newline
	// sawComment is set once a line comment has been seen.
	sawComment bool
	prev       rune
}

func (s *scanner) feed(r rune) {
	defer func() { s.prev = r }()

	if s.comment {
		if r == '\n' {
			s.comment = false
		}

		return
	}

	if s.quote != 0 {
		switch {
		case s.escape:
			s.escape = false
		case r == '\\':
			s.escape = true
		case r == s.quote:
			s.quote = 0
		}

		return
	}

	switch r {
	case '"', '\'':
		s.quote = r
	case '(', '[', '{':
		s.depth++
	case ')', ']', '}':
		s.depth--
	case '/':
		if s.prev == '/' {
			s.comment = true
			s.sawComment = true
			r = 0
		}
	}
}

// topLevel reports whether the scanner sits outside every bracket, literal
// and comment.
func (s *scanner) topLevel() bool {
	return s.depth == 0 && s.quote == 0 && !s.comment
}

func (s *scanner) line(text string) {
	for _, r := range text {
		s.feed(r)
	}

	s.feed('\n')
}

// LocateStatement finds the extent of the call statement that begins on
// lines[start]. Scanning stops on the first line, start included, where the
// bracket depth returns to zero. When the input ends first, the scanned
// range is returned together with ErrUnbalancedStatement.
func LocateStatement(lines []string, start int) (Statement, error) {
	if start < 0 || start >= len(lines) {
		return Statement{}, fmt.Errorf("start line %d out of range [0, %d)", start, len(lines))
	}

	var sc scanner

	for i := start; i < len(lines); i++ {
		sc.line(lines[i])

		if sc.depth <= 0 {
			return Statement{Start: start, End: i, Lines: lines[start : i+1]}, nil
		}
	}

	end := len(lines) - 1

	return Statement{Start: start, End: end, Lines: lines[start:]}, ErrUnbalancedStatement
}

// SplitArguments splits an argument list, outer parentheses already removed,
// at its first top-level comma. Both halves are trimmed.
func SplitArguments(text string) (string, string, error) {
	var sc scanner

	for i, r := range text {
		if r == ',' && sc.topLevel() {
			return strings.TrimSpace(text[:i]), strings.TrimSpace(text[i+1:]), nil
		}

		sc.feed(r)
	}

	return "", "", ErrNotSplittable
}

// SplitAll splits an argument list at every top-level comma by applying
// SplitArguments repeatedly. A list without commas yields one argument.
func SplitAll(text string) []string {
	var args []string

	rest := text

	for {
		first, tail, err := SplitArguments(rest)
		if err != nil {
			return append(args, strings.TrimSpace(rest))
		}

		args = append(args, first)
		rest = tail
	}
}

// call is a parsed statement of the form indent + method(params) + [;].
type call struct {
	indent string
	method string
	params string
}

// parseCall checks that the statement is exactly one call to method with an
// optional terminating semicolon, and extracts its parts.
func parseCall(stmt Statement, method string) (call, error) {
	text := stmt.Text()
	rest := strings.TrimLeft(text, " \t")
	indent := text[:len(text)-len(rest)]

	if !strings.HasPrefix(rest, method) {
		return call{}, fmt.Errorf("%w: does not start with %s", ErrUnparsableStatement, method)
	}

	afterName := strings.TrimLeft(rest[len(method):], " \t")
	if !strings.HasPrefix(afterName, "(") {
		return call{}, fmt.Errorf("%w: %s is not followed by (", ErrUnparsableStatement, method)
	}

	var sc scanner

	closeAt := -1

	for i, r := range afterName {
		sc.feed(r)

		if sc.depth == 0 && sc.quote == 0 && r == ')' {
			closeAt = i
			break
		}
	}

	if closeAt < 0 {
		return call{}, ErrUnbalancedStatement
	}

	if sc.sawComment {
		return call{}, fmt.Errorf("%w: comment inside arguments", ErrUnparsableStatement)
	}

	tail := strings.TrimSpace(afterName[closeAt+1:])
	if tail != "" && tail != ";" {
		return call{}, fmt.Errorf("%w: unexpected trailing text %q", ErrUnparsableStatement, tail)
	}

	return call{
		indent: indent,
		method: method,
		params: strings.TrimSpace(afterName[1:closeAt]),
	}, nil
}
