package controller

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/junitmig/internal/model"
)

// Reviewer decides which of the changes proposed for a file are kept.
type Reviewer interface {
	Review(path m.Path, changes []m.Change) ([]m.Change, error)
}

type acceptAll struct{}

// AcceptAll returns a Reviewer that keeps every change.
func AcceptAll() Reviewer {
	return acceptAll{}
}

func (acceptAll) Review(_ m.Path, changes []m.Change) ([]m.Change, error) {
	return changes, nil
}

// decision is a verdict that applies to the remaining changes of the run.
type decision int

const (
	undecided decision = iota
	acceptRest
	rejectRest
)

// TeaReviewer asks about every change in a Bubble Tea program. Answering
// "all" or "quit" applies to every remaining change of the run.
type TeaReviewer struct {
	input  io.Reader
	output io.Writer
	rest   decision
}

// NewTeaReviewer creates an interactive reviewer on the given terminal streams.
func NewTeaReviewer(input io.Reader, output io.Writer) *TeaReviewer {
	return &TeaReviewer{input: input, output: output}
}

// Review runs the prompt for the changes of one file.
func (r *TeaReviewer) Review(path m.Path, changes []m.Change) ([]m.Change, error) {
	switch {
	case len(changes) == 0:
		return nil, nil
	case r.rest == acceptRest:
		return changes, nil
	case r.rest == rejectRest:
		return nil, nil
	}

	program := tea.NewProgram(newReviewModel(path, changes), tea.WithInput(r.input), tea.WithOutput(r.output))

	final, err := program.Run()
	if err != nil {
		return nil, fmt.Errorf("review %s: %w", path, err)
	}

	model, ok := final.(reviewModel)
	if !ok {
		return nil, fmt.Errorf("review %s: unexpected model %T", path, final)
	}

	r.rest = model.rest

	return model.acceptedChanges(), nil
}

type reviewKeyMap struct {
	Accept key.Binding
	Reject key.Binding
	All    key.Binding
	Quit   key.Binding
}

func (k reviewKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Accept, k.Reject, k.All, k.Quit}
}

func (k reviewKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func newReviewKeyMap() reviewKeyMap {
	return reviewKeyMap{
		Accept: key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "apply")),
		Reject: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "skip")),
		All:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "apply all")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "skip all")),
	}
}

type reviewModel struct {
	path     m.Path
	changes  []m.Change
	accepted []bool
	index    int
	rest     decision
	keys     reviewKeyMap
	help     help.Model
}

func newReviewModel(path m.Path, changes []m.Change) reviewModel {
	return reviewModel{
		path:     path,
		changes:  changes,
		accepted: make([]bool, len(changes)),
		keys:     newReviewKeyMap(),
		help:     help.New(),
	}
}

func (rm reviewModel) Init() tea.Cmd {
	return nil
}

func (rm reviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		rm.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, rm.keys.Accept):
			rm.accepted[rm.index] = true
			rm.index++
		case key.Matches(msg, rm.keys.Reject):
			rm.index++
		case key.Matches(msg, rm.keys.All):
			rm.rest = acceptRest
			for i := rm.index; i < len(rm.changes); i++ {
				rm.accepted[i] = true
			}

			rm.index = len(rm.changes)
		case key.Matches(msg, rm.keys.Quit):
			rm.rest = rejectRest
			rm.index = len(rm.changes)
		}

		if rm.done() {
			return rm, tea.Quit
		}
	}

	return rm, nil
}

func (rm reviewModel) done() bool {
	return rm.index >= len(rm.changes)
}

func (rm reviewModel) acceptedChanges() []m.Change {
	var out []m.Change

	for i, ok := range rm.accepted {
		if ok {
			out = append(out, rm.changes[i])
		}
	}

	return out
}

func (rm reviewModel) View() string {
	if rm.done() {
		return ""
	}

	c := rm.changes[rm.index]

	header := titleStyle.Render(fmt.Sprintf("%s:%d", rm.path, c.Line())) + " " +
		mutedStyle.Render(fmt.Sprintf("[%s] change %d of %d", c.Kind.Name, rm.index+1, len(rm.changes)))

	var body strings.Builder

	for _, line := range c.Before {
		body.WriteString(removedStyle.Render("- "+line) + "\n")
	}

	for _, line := range c.After {
		body.WriteString(addedStyle.Render("+ "+line) + "\n")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		body.String(),
		rm.help.View(rm.keys),
	) + "\n"
}
