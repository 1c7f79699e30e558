package rewriter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatter_Rewrite(t *testing.T) {
	f := NewFormatter(0, 0)

	assert.Equal(t,
		[]string{`        assertTrue(result.equals(expected), "value was wrong");`},
		f.Rewrite("assertTrue", "        ", "result.equals(expected)", `"value was wrong"`),
	)
}

func TestFormatter_RewriteBudgetBoundary(t *testing.T) {
	f := NewFormatter(20, 2)

	// 0 + 1 + 9 + 10 == 20 fits.
	fits := f.Rewrite("a", "", "123456789", "1234567890")
	assert.Equal(t, []string{"a(123456789, 1234567890);"}, fits)

	over := f.Rewrite("a", "", "1234567890", "1234567890")
	assert.Equal(t, []string{"a(1234567890,", "  1234567890);"}, over)
}

func TestFormatter_RewriteCountsRunes(t *testing.T) {
	f := NewFormatter(10, 0)

	got := f.Rewrite("m", "", "ééééé", `"ü"`)
	assert.Len(t, got, 1)
}

func TestCollapseSpace(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  a   ==\n\t b  ", "a == b"},
		{`"keep   this"   +  x`, `"keep   this" + x`},
		{`'a'  ==  c`, `'a' == c`},
		{`"esc \"  q"  y`, `"esc \"  q" y`},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CollapseSpace(tt.in), "input %q", tt.in)
	}
}

func TestNewFormatter_Defaults(t *testing.T) {
	f := NewFormatter(-1, 0)

	assert.Equal(t, DefaultColumnBudget, f.ColumnBudget)
	assert.Equal(t, DefaultContinuation, f.Continuation)
	assert.Equal(t, strings.Repeat(" ", 6), NewFormatter(0, 6).Continuation)
}
