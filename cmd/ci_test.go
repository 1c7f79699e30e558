package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/junitmig/internal/config"
	"github.com/mouse-blink/junitmig/internal/domain"
	m "github.com/mouse-blink/junitmig/internal/model"
)

func TestCICmd_DefaultWorkflow(t *testing.T) {
	cmd, mockWorkflow := newTestRoot(t, newCICmd())

	mockWorkflow.On("PatchWorkflow", mock.MatchedBy(func(args domain.CIArgs) bool {
		return args.Workflow == m.Path(".github/workflows/maven-build.yml") &&
			len(args.Rules) == 0 &&
			args.Mode == m.ModePreview
	})).Return(m.Summary{}, nil)

	cmd.SetArgs([]string{"ci"})
	require.NoError(t, cmd.Execute())
}

func TestCICmd_RulesFromConfig(t *testing.T) {
	cmd, mockWorkflow := newTestRoot(t, newCICmd())

	path := writeConfig(t, `ci:
  rules:
    - name: runner
      pattern: 'ubuntu-22\.04'
      replace: ubuntu-24.04
`)

	mockWorkflow.On("PatchWorkflow", mock.MatchedBy(func(args domain.CIArgs) bool {
		return args.Workflow == m.Path("ci.yml") &&
			len(args.Rules) == 1 &&
			args.Rules[0].Name == "runner" &&
			args.Rules[0].Pattern.MatchString("runs-on: ubuntu-22.04") &&
			args.Mode == m.ModeApply
	})).Return(m.Summary{}, nil)

	cmd.SetArgs([]string{"--config", path, "ci", "--apply", "ci.yml"})
	require.NoError(t, cmd.Execute())
}

func TestLineRules(t *testing.T) {
	rules, err := lineRules(nil)
	require.NoError(t, err)
	assert.Empty(t, rules)

	_, err = lineRules(&config.CIConfig{Rules: []config.CIRule{{Name: "bad", Pattern: "("}}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad")
}
