package controller

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/junitmig/internal/model"
)

func sampleChanges() []m.Change {
	return []m.Change{
		{Kind: m.FixAssertions, Start: 3, Before: []string{`assertTrue("a", x);`}, After: []string{`assertTrue(x, "a");`}},
		{Kind: m.FixAssertions, Start: 7, Before: []string{`assertTrue("b", y);`}, After: []string{`assertTrue(y, "b");`}},
		{Kind: m.FixAssertions, Start: 9, Before: []string{`assertFalse("c", z);`}, After: []string{`assertFalse(z, "c");`}},
	}
}

func press(t *testing.T, model tea.Model, keys ...string) (reviewModel, tea.Cmd) {
	t.Helper()

	var cmd tea.Cmd

	for _, k := range keys {
		model, cmd = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)})
	}

	rm, ok := model.(reviewModel)
	require.True(t, ok)

	return rm, cmd
}

func TestReviewModel_AcceptReject(t *testing.T) {
	changes := sampleChanges()

	rm, cmd := press(t, newReviewModel("ATest.java", changes), "y", "n")
	assert.Nil(t, cmd)
	assert.False(t, rm.done())

	rm, cmd = press(t, rm, "y")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, rm.done())
	assert.Equal(t, undecided, rm.rest)
	assert.Equal(t, []m.Change{changes[0], changes[2]}, rm.acceptedChanges())
}

func TestReviewModel_AcceptRest(t *testing.T) {
	changes := sampleChanges()

	rm, cmd := press(t, newReviewModel("ATest.java", changes), "n", "a")
	require.NotNil(t, cmd)
	assert.Equal(t, acceptRest, rm.rest)
	assert.Equal(t, changes[1:], rm.acceptedChanges())
}

func TestReviewModel_Quit(t *testing.T) {
	rm, cmd := press(t, newReviewModel("ATest.java", sampleChanges()), "y", "q")
	require.NotNil(t, cmd)
	assert.Equal(t, rejectRest, rm.rest)
	assert.Len(t, rm.acceptedChanges(), 1)
}

func TestReviewModel_IgnoresOtherKeys(t *testing.T) {
	rm, cmd := press(t, newReviewModel("ATest.java", sampleChanges()), "x", "z")
	assert.Nil(t, cmd)
	assert.Equal(t, 0, rm.index)
}

func TestReviewModel_View(t *testing.T) {
	view := newReviewModel("ATest.java", sampleChanges()).View()

	for _, want := range []string{"ATest.java:4", "change 1 of 3", `- assertTrue("a", x);`, `+ assertTrue(x, "a");`, "apply all"} {
		assert.True(t, strings.Contains(view, want), "view missing %q\n%s", want, view)
	}
}

func TestTeaReviewer_StickyDecision(t *testing.T) {
	changes := sampleChanges()

	r := NewTeaReviewer(strings.NewReader(""), &strings.Builder{})

	got, err := r.Review("ATest.java", nil)
	require.NoError(t, err)
	assert.Nil(t, got)

	r.rest = acceptRest
	got, err = r.Review("ATest.java", changes)
	require.NoError(t, err)
	assert.Equal(t, changes, got)

	r.rest = rejectRest
	got, err = r.Review("ATest.java", changes)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestAcceptAll(t *testing.T) {
	changes := sampleChanges()

	got, err := AcceptAll().Review("ATest.java", changes)
	require.NoError(t, err)
	assert.Equal(t, changes, got)
}
