package domain

import (
	"strings"

	m "github.com/mouse-blink/junitmig/internal/model"
)

// IgnoreDirective marks a line or a whole file as off limits for fixers.
// Written as a comment, optionally followed by a comma separated list of fix
// kinds: "// junitmig:ignore assertions, junit5".
const IgnoreDirective = "junitmig:ignore"

var commentOpeners = []string{"//", "/*", "#"}

type ignoreRule struct {
	all   bool
	names map[string]struct{}
}

func (r ignoreRule) ignores(kind m.FixKind) bool {
	if r.all {
		return true
	}

	if len(r.names) == 0 {
		return false
	}

	_, ok := r.names[strings.ToLower(kind.Name)]

	return ok
}

func (r ignoreRule) empty() bool {
	return !r.all && len(r.names) == 0
}

func mergeIgnoreRule(dst *ignoreRule, src ignoreRule) {
	if src.all {
		dst.all = true
		dst.names = nil

		return
	}

	if dst.all || len(src.names) == 0 {
		return
	}

	if dst.names == nil {
		dst.names = make(map[string]struct{}, len(src.names))
	}

	for name := range src.names {
		dst.names[name] = struct{}{}
	}
}

// parseIgnoreDirective finds a directive comment in line. leading is set when
// the comment is the only thing on the line.
func parseIgnoreDirective(line string) (rule ignoreRule, leading bool, ok bool) {
	idx := strings.Index(line, IgnoreDirective)
	if idx < 0 {
		return ignoreRule{}, false, false
	}

	before := strings.TrimRight(line[:idx], " \t")

	opener := ""

	for _, o := range commentOpeners {
		if strings.HasSuffix(before, o) {
			opener = o
			break
		}
	}

	if opener == "" {
		return ignoreRule{}, false, false
	}

	leading = strings.TrimSpace(strings.TrimSuffix(before, opener)) == ""

	rest := line[idx+len(IgnoreDirective):]
	if opener == "/*" {
		if end := strings.Index(rest, "*/"); end >= 0 {
			rest = rest[:end]
		}
	}

	if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
		return ignoreRule{}, false, false
	}

	rest = strings.TrimSpace(rest)
	if rest == "" {
		return ignoreRule{all: true}, leading, true
	}

	parts := strings.Split(rest, ",")
	rule = ignoreRule{names: make(map[string]struct{}, len(parts))}

	for _, part := range parts {
		name := strings.ToLower(strings.TrimSpace(part))
		if name == "" {
			continue
		}

		rule.names[name] = struct{}{}
	}

	if len(rule.names) == 0 {
		rule.all = true
		rule.names = nil
	}

	return rule, leading, true
}

type ignoreIndex struct {
	file ignoreRule
	line map[int]ignoreRule
}

// buildIgnoreIndex collects directives of a file. Directives above the first
// code line apply to the whole file; a leading directive applies to the next
// line and a trailing one to its own line. Line keys are zero based.
func buildIgnoreIndex(lines []string) ignoreIndex {
	index := ignoreIndex{line: make(map[int]ignoreRule)}
	header := true

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if header && trimmed != "" && !isCommentLine(trimmed) {
			header = false
		}

		r, leading, ok := parseIgnoreDirective(line)
		if !ok {
			continue
		}

		if header {
			mergeIgnoreRule(&index.file, r)
			continue
		}

		target := i
		if leading {
			target = i + 1
		}

		current := index.line[target]
		mergeIgnoreRule(&current, r)
		index.line[target] = current
	}

	return index
}

func isCommentLine(trimmed string) bool {
	for _, o := range commentOpeners {
		if strings.HasPrefix(trimmed, o) {
			return true
		}
	}

	return strings.HasPrefix(trimmed, "*")
}

// ignored reports whether any line covered by c carries a matching directive.
func (idx ignoreIndex) ignored(c m.Change) bool {
	if idx.file.ignores(c.Kind) {
		return true
	}

	for i := c.Start; i <= c.End(); i++ {
		if r, ok := idx.line[i]; ok && r.ignores(c.Kind) {
			return true
		}
	}

	return false
}

// split separates changes suppressed by directives from the rest.
func (idx ignoreIndex) split(changes []m.Change) (kept, ignored []m.Change) {
	if idx.file.empty() && len(idx.line) == 0 {
		return changes, nil
	}

	for _, c := range changes {
		if idx.ignored(c) {
			ignored = append(ignored, c)
		} else {
			kept = append(kept, c)
		}
	}

	return kept, ignored
}
