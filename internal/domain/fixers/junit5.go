package fixers

import (
	"regexp"
	"slices"
	"strings"

	m "github.com/mouse-blink/junitmig/internal/model"
)

const (
	jupiterPackage = "org.junit.jupiter.api"
	jupiterImport  = "import org.junit.jupiter.api."
	tagImport      = "import org.junit.jupiter.api.Tag;"
)

// DefaultTags are added to migrated test classes without any @Tag.
var DefaultTags = []string{"unit", "fast"}

type importRename struct {
	from string
	to   string
}

// Literal import replacements, applied in order.
var importRenames = []importRename{
	{"import static org.junit.Assert.", "import static org.junit.jupiter.api.Assertions."},
	{"import org.junit.After;", "import org.junit.jupiter.api.AfterEach;"},
	{"import org.junit.AfterClass;", "import org.junit.jupiter.api.AfterAll;"},
	{"import org.junit.Before;", "import org.junit.jupiter.api.BeforeEach;"},
	{"import org.junit.BeforeClass;", "import org.junit.jupiter.api.BeforeAll;"},
	{"import org.junit.Test;", "import org.junit.jupiter.api.Test;"},
	{"import org.junit.Ignore;", "import org.junit.jupiter.api.Disabled;"},
	{"import org.junit.runner.RunWith;", "// import org.junit.runner.RunWith; // JUnit 5 - not needed"},
	{"import org.junit.runners.Suite;", "// import org.junit.runners.Suite; // JUnit 5 - use @Suite instead"},
}

type annotationRename struct {
	re *regexp.Regexp
	to string
}

// The Class variants come first so @Before never shadows @BeforeClass.
var annotationRenames = []annotationRename{
	{regexp.MustCompile(`@BeforeClass\b`), "@BeforeAll"},
	{regexp.MustCompile(`@AfterClass\b`), "@AfterAll"},
	{regexp.MustCompile(`@Before\b`), "@BeforeEach"},
	{regexp.MustCompile(`@After\b`), "@AfterEach"},
	{regexp.MustCompile(`@Ignore\b`), "@Disabled"},
}

var publicClass = regexp.MustCompile(`^(\s*)public\s+(?:(?:abstract|final|static)\s+)*class\s+\w+`)

// JUnit5 migrates JUnit 4 imports and annotations to JUnit 5 and tags test
// classes.
type JUnit5 struct {
	tags []string
}

// NewJUnit5 creates a migration fixer. A nil tags slice selects DefaultTags;
// an empty non-nil slice disables tagging.
func NewJUnit5(tags []string) *JUnit5 {
	if tags == nil {
		tags = DefaultTags
	}

	return &JUnit5{tags: tags}
}

// Kind implements the domain fixer contract.
func (j *JUnit5) Kind() m.FixKind {
	return m.FixJUnit5
}

// Fix implements the domain fixer contract.
func (j *JUnit5) Fix(source m.Source) (m.Patch, error) {
	renamed := make([]string, len(source.Lines))
	for i, line := range source.Lines {
		renamed[i] = renameLine(line)
	}

	content := strings.Join(renamed, "\n")
	before := make(map[int][]string)
	after := make(map[int][]string)

	if strings.Contains(content, jupiterPackage) && !strings.Contains(content, tagImport) {
		if last := lastJupiterImport(renamed); last >= 0 {
			after[last] = append(after[last], tagImport)
		}
	}

	if len(j.tags) > 0 && strings.Contains(content, jupiterPackage) && !strings.Contains(content, "@Tag(") {
		if idx, indent := firstPublicClass(renamed); idx >= 0 {
			for _, tag := range j.tags {
				before[idx] = append(before[idx], indent+`@Tag("`+tag+`")`)
			}
		}
	}

	var patch m.Patch

	for i, line := range source.Lines {
		out := make([]string, 0, 1+len(before[i])+len(after[i]))
		out = append(out, before[i]...)
		out = append(out, renamed[i])
		out = append(out, after[i]...)

		if slices.Equal(out, []string{line}) {
			continue
		}

		patch.Changes = append(patch.Changes, m.Change{
			Kind:   m.FixJUnit5,
			Start:  i,
			Before: []string{line},
			After:  out,
		})
	}

	return patch, nil
}

func renameLine(line string) string {
	if strings.HasPrefix(strings.TrimSpace(line), "//") {
		return line
	}

	for _, r := range importRenames {
		line = strings.ReplaceAll(line, r.from, r.to)
	}

	for _, r := range annotationRenames {
		line = r.re.ReplaceAllString(line, r.to)
	}

	return line
}

// lastJupiterImport returns the last non-static Jupiter import, or the last
// import of any kind when there is none.
func lastJupiterImport(lines []string) int {
	last, lastAny := -1, -1

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, jupiterImport) {
			last = i
		}

		if strings.HasPrefix(trimmed, "import ") {
			lastAny = i
		}
	}

	if last < 0 {
		return lastAny
	}

	return last
}

// firstPublicClass prefers an unindented declaration and falls back to the
// first indented one.
func firstPublicClass(lines []string) (int, string) {
	fallback, fallbackIndent := -1, ""

	for i, line := range lines {
		match := publicClass.FindStringSubmatch(line)
		if match == nil {
			continue
		}

		if match[1] == "" {
			return i, ""
		}

		if fallback < 0 {
			fallback, fallbackIndent = i, match[1]
		}
	}

	return fallback, fallbackIndent
}
