package cmd

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/junitmig/internal/domain"
	m "github.com/mouse-blink/junitmig/internal/model"
)

func TestJavadocCmd_DefaultReports(t *testing.T) {
	cmd, mockWorkflow := newTestRoot(t, newJavadocCmd())

	mockWorkflow.On("FixJavadoc", mock.MatchedBy(func(args domain.JavadocArgs) bool {
		return args.Reports == "*/target/checkstyle-result.xml" && args.Mode == m.ModePreview
	})).Return(m.Summary{}, nil)

	cmd.SetArgs([]string{"javadoc"})
	require.NoError(t, cmd.Execute())
}

func TestJavadocCmd_ReportsFlag(t *testing.T) {
	cmd, mockWorkflow := newTestRoot(t, newJavadocCmd())

	mockWorkflow.On("FixJavadoc", mock.MatchedBy(func(args domain.JavadocArgs) bool {
		return args.Reports == "target/checkstyle-result.xml" && args.Mode == m.ModeApply
	})).Return(m.Summary{}, nil)

	cmd.SetArgs([]string{"javadoc", "--apply", "--reports", "target/checkstyle-result.xml"})
	require.NoError(t, cmd.Execute())
}

func TestJavadocCmd_RejectsArgs(t *testing.T) {
	cmd, _ := newTestRoot(t, newJavadocCmd())

	cmd.SetArgs([]string{"javadoc", "Foo.java"})
	require.Error(t, cmd.Execute())
}
