package rewriter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifier_Classify(t *testing.T) {
	c := NewClassifier(nil, nil)

	tests := []struct {
		arg  string
		want Kind
	}{
		{`"value was wrong"`, Message},
		{`  "padded"  `, Message},
		{`"count: " + count`, Message},
		{`"escaped \" quote".length() > 0`, Condition},
		{`"abc".equals(x)`, Condition},
		{`constructWrongValueMessage("a", "b", c)`, Message},
		{`constructWrongValueMessageX(a)`, Condition},
		{`x == y`, Condition},
		{`a.compareTo(b) <= 0`, Condition},
		{`left && right`, Condition},
		{`flag`, Condition},
		{`msg`, Condition},
		{``, Condition},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.arg))
		})
	}
}

func TestClassifier_Explain(t *testing.T) {
	c := NewClassifier([]string{"describe"}, []string{"?"})

	kind, reason := c.Explain(`describe(x)`)
	assert.Equal(t, Message, kind)
	assert.Equal(t, "message builder describe", reason)

	kind, reason = c.Explain(`a ? b : c`)
	assert.Equal(t, Condition, kind)
	assert.Equal(t, "contains ?", reason)

	kind, reason = c.Explain(`a == b`)
	assert.Equal(t, Condition, kind)
	assert.Equal(t, "default", reason)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "message", Message.String())
	assert.Equal(t, "condition", Condition.String())
}
