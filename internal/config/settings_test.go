package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), DefaultPath)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadSettings_Valid(t *testing.T) {
	path := writeTemp(t, `
test_dir: core/src/test/java
pattern: "*IT.java"
methods: [assertTrue, assertFalse, assumeTrue]
message_builders: [buildMessage]
column_budget: 120
continuation_indent: 8
junit5:
  tags: [integration]
javadoc:
  reports: "target/checkstyle-result.xml"
ci:
  workflow: .github/workflows/ci.yml
  rules:
    - name: runner
      pattern: 'ubuntu-22\.04'
      replace: ubuntu-24.04
`)

	s, err := LoadSettings(path)
	require.NoError(t, err)

	assert.Equal(t, "core/src/test/java", s.TestDir)
	assert.Equal(t, "*IT.java", s.Pattern)
	assert.Equal(t, []string{"assertTrue", "assertFalse", "assumeTrue"}, s.Methods)
	assert.Equal(t, []string{"buildMessage"}, s.MessageBuilders)
	assert.Equal(t, 120, s.ColumnBudget)
	assert.Equal(t, 8, s.ContinuationIndent)
	assert.Equal(t, []string{"integration"}, s.Tags())
	assert.Equal(t, "target/checkstyle-result.xml", s.Reports())
	assert.Equal(t, ".github/workflows/ci.yml", s.Workflow())
	require.Len(t, s.CI.Rules, 1)
	assert.Equal(t, "runner", s.CI.Rules[0].Name)
}

func TestLoadSettings_PartialKeepsDefaults(t *testing.T) {
	s, err := LoadSettings(writeTemp(t, `column_budget: 80`))
	require.NoError(t, err)

	assert.Equal(t, 80, s.ColumnBudget)
	assert.Equal(t, "*Test.java", s.Pattern)
	assert.Equal(t, []string{"assertTrue", "assertFalse"}, s.Methods)
	assert.Equal(t, []string{"unit", "fast"}, s.Tags())
}

func TestLoadSettings_EmptyTagsDisableTagging(t *testing.T) {
	s, err := LoadSettings(writeTemp(t, "junit5:\n  tags: []\n"))
	require.NoError(t, err)

	assert.Empty(t, s.Tags())
	assert.NotNil(t, s.Tags())
}

func TestLoadSettings_MissingFile(t *testing.T) {
	s, err := LoadSettings(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)

	assert.Equal(t, Default(), s)
}

func TestLoadSettings_InvalidYAML(t *testing.T) {
	_, err := LoadSettings(writeTemp(t, "column_budget: [nope"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestLoadSettings_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"zero budget", "column_budget: 0", "column_budget"},
		{"negative continuation", "continuation_indent: -1", "continuation_indent"},
		{"empty pattern", `pattern: " "`, "pattern"},
		{"empty method", `methods: ["assertTrue", ""]`, "method names"},
		{"bad rule", "ci:\n  rules:\n    - name: broken\n      pattern: '('\n", "broken"},
		{"rule without pattern", "ci:\n  rules:\n    - name: empty\n", "pattern is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadSettings(writeTemp(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
