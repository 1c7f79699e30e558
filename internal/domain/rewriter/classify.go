package rewriter

import (
	"strings"
	"unicode"
)

// Kind tags an assertion argument.
type Kind int

const (
	// Condition is the boolean value or comparison being checked.
	Condition Kind = iota
	// Message is a human-readable description of the failure.
	Message
)

func (k Kind) String() string {
	if k == Message {
		return "message"
	}

	return "condition"
}

// DefaultMessageBuilders lists helpers whose calls produce a failure message.
var DefaultMessageBuilders = []string{"constructWrongValueMessage"}

// DefaultConditionMarkers lists operators and method calls that mark an
// argument as a condition.
var DefaultConditionMarkers = []string{
	"==", "!=", ".equals(", ".compareTo(", ">=", "<=", ">", "<", "&&", "||",
}

// Classifier decides whether an argument is a message or a condition.
type Classifier struct {
	MessageBuilders  []string
	ConditionMarkers []string
}

// NewClassifier returns a Classifier, falling back to the defaults for any
// empty list.
func NewClassifier(builders, markers []string) Classifier {
	if len(builders) == 0 {
		builders = DefaultMessageBuilders
	}

	if len(markers) == 0 {
		markers = DefaultConditionMarkers
	}

	return Classifier{MessageBuilders: builders, ConditionMarkers: markers}
}

// Classify tags arg. Anything that is not clearly a message is a condition,
// so ambiguous input is never swapped.
func (c Classifier) Classify(arg string) Kind {
	kind, _ := c.Explain(arg)

	return kind
}

// Explain classifies arg and names the rule that decided it.
func (c Classifier) Explain(arg string) (Kind, string) {
	s := strings.TrimSpace(arg)

	if strings.HasPrefix(s, `"`) && !literalIsReceiver(s) {
		return Message, "string literal"
	}

	for _, builder := range c.MessageBuilders {
		if startsWithCall(s, builder) {
			return Message, "message builder " + builder
		}
	}

	for _, marker := range c.ConditionMarkers {
		if strings.Contains(s, marker) {
			return Condition, "contains " + marker
		}
	}

	return Condition, "default"
}

// literalIsReceiver reports whether the leading string literal of s is the
// receiver of a method call, as in "abc".equals(x).
func literalIsReceiver(s string) bool {
	escape := false

	for i, r := range s {
		if i == 0 {
			continue
		}

		switch {
		case escape:
			escape = false
		case r == '\\':
			escape = true
		case r == '"':
			return strings.HasPrefix(strings.TrimSpace(s[i+1:]), ".")
		}
	}

	return false
}

func startsWithCall(s, name string) bool {
	if name == "" || !strings.HasPrefix(s, name) {
		return false
	}

	rest := s[len(name):]
	if rest == "" {
		return true
	}

	next := []rune(rest)[0]

	return !unicode.IsLetter(next) && !unicode.IsDigit(next) && next != '_' && next != '$'
}
