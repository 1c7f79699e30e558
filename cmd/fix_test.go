package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/junitmig/internal/config"
	"github.com/mouse-blink/junitmig/internal/domain"
	"github.com/mouse-blink/junitmig/internal/domain/rewriter"
	m "github.com/mouse-blink/junitmig/internal/model"
)

func TestFixCmd_PreviewByDefault(t *testing.T) {
	cmd, mockWorkflow := newTestRoot(t, newFixCmd())

	mockWorkflow.On("Fix", mock.MatchedBy(func(args domain.FixArgs) bool {
		return args.Mode == m.ModePreview &&
			!args.All &&
			len(args.Files) == 2 &&
			args.Files[0] == m.Path("ATest.java") &&
			args.Files[1] == m.Path("BTest.java") &&
			args.Pattern == "*Test.java" &&
			args.Rewriter != nil
	})).Return(m.Summary{}, nil)

	cmd.SetArgs([]string{"fix", "ATest.java", "BTest.java"})
	require.NoError(t, cmd.Execute())
}

func TestFixCmd_ApplyAll(t *testing.T) {
	cmd, mockWorkflow := newTestRoot(t, newFixCmd())

	mockWorkflow.On("Fix", mock.MatchedBy(func(args domain.FixArgs) bool {
		return args.Mode == m.ModeApply &&
			args.All &&
			args.Dir == m.Path("src/test/java/...") &&
			args.Pattern == "*Spec.java" &&
			args.Interactive &&
			args.Diff &&
			args.Report == m.Path("report.json")
	})).Return(m.Summary{}, nil)

	cmd.SetArgs([]string{
		"--report", "report.json",
		"fix", "--apply", "--all", "--dir", "src/test/java/...", "--pattern", "*Spec.java",
		"--interactive", "--diff",
	})
	require.NoError(t, cmd.Execute())
}

func TestFixCmd_NoTargets(t *testing.T) {
	cmd, _ := newTestRoot(t, newFixCmd())

	cmd.SetArgs([]string{"fix"})
	require.ErrorIs(t, cmd.Execute(), errNoTargets)
}

func TestFixCmd_ApplyAndDryRunConflict(t *testing.T) {
	cmd, _ := newTestRoot(t, newFixCmd())

	cmd.SetArgs([]string{"fix", "--apply", "--dry-run", "ATest.java"})
	require.Error(t, cmd.Execute())
}

func TestNewRewriter(t *testing.T) {
	s := config.Default()

	line := `        assertEquals("sizes differ", 3, list.size());`

	plain := newRewriter(s, false)
	_, ok := plain.Match(line)
	assert.False(t, ok)

	extended := newRewriter(s, true)
	rule, ok := extended.Match(line)
	require.True(t, ok)
	assert.Equal(t, rewriter.Rule{Method: "assertEquals", MinArgs: 3}, rule)
}

func TestExtendedRules(t *testing.T) {
	assert.Equal(t, rewriter.ExtendedRules, extendedRules(nil))

	assert.Equal(t, []rewriter.Rule{
		{Method: "assertNull", MinArgs: 2},
		{Method: "assertThat", MinArgs: 2},
	}, extendedRules([]string{"assertNull", "assertThat"}))
}
