package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPatch_Apply(t *testing.T) {
	lines := []string{"a", "b", "c", "d", "e"}

	tests := []struct {
		name    string
		changes []Change
		want    []string
	}{
		{
			name: "no changes",
			want: lines,
		},
		{
			name: "multi line replaced by one",
			changes: []Change{
				{Start: 1, Before: []string{"b", "c"}, After: []string{"bc"}},
			},
			want: []string{"a", "bc", "d", "e"},
		},
		{
			name: "out of order changes",
			changes: []Change{
				{Start: 4, Before: []string{"e"}, After: []string{"E"}},
				{Start: 0, Before: []string{"a"}, After: []string{"A", "A2"}},
			},
			want: []string{"A", "A2", "b", "c", "d", "E"},
		},
		{
			name: "overlap dropped",
			changes: []Change{
				{Start: 1, Before: []string{"b", "c"}, After: []string{"X"}},
				{Start: 2, Before: []string{"c"}, After: []string{"Y"}},
			},
			want: []string{"a", "X", "d", "e"},
		},
		{
			name: "stale before dropped",
			changes: []Change{
				{Start: 3, Before: []string{"z"}, After: []string{"Z"}},
			},
			want: lines,
		},
		{
			name: "past end dropped",
			changes: []Change{
				{Start: 4, Before: []string{"e", "f"}, After: []string{"F"}},
			},
			want: lines,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Patch{Changes: tt.changes}.Apply(lines)
			assert.Equal(t, tt.want, got)
		})
	}

	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, lines)
}

func TestChange_Lines(t *testing.T) {
	c := Change{Start: 4, Before: []string{"x", "y", "z"}}

	assert.Equal(t, 6, c.End())
	assert.Equal(t, 5, c.Line())
}

func TestSummary_Add(t *testing.T) {
	var s Summary

	s.Add(FileResult{Path: "A.java", Fixes: 2, Skipped: 1})
	s.Add(FileResult{Path: "B.java"})
	s.Add(FileResult{Path: "C.java", Error: "permission denied"})

	assert.Equal(t, 3, s.Files)
	assert.Equal(t, 1, s.Changed)
	assert.Equal(t, 2, s.Fixes)
	assert.Equal(t, 1, s.Skipped)
	assert.Equal(t, []Path{"C.java"}, s.Failed)
	assert.Len(t, s.Results, 3)
	assert.False(t, s.Clean())

	assert.True(t, Summary{}.Clean())
	assert.False(t, Summary{Missing: []Path{"D.java"}}.Clean())
}

func TestMode_Writes(t *testing.T) {
	assert.True(t, ModeApply.Writes())
	assert.False(t, ModePreview.Writes())
	assert.False(t, Mode("").Writes())
}
