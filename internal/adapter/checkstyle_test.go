package adapter

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/junitmig/internal/model"
)

const checkstyleXML = `<?xml version="1.0" encoding="UTF-8"?>
<checkstyle version="10.12.4">
<file name="/p/object/src/main/java/object/Attribute.java">
<error line="12" column="5" severity="warning" message="First sentence should end with a period." source="com.puppycrawl.tools.checkstyle.checks.javadoc.SummaryJavadocCheck"/>
<error line="40" severity="warning" message="Line is longer than 100 characters (found 120)." source="com.puppycrawl.tools.checkstyle.checks.sizes.LineLengthCheck"/>
</file>
<file name="/p/object/src/main/java/object/Clean.java">
</file>
<file name="/p/object/src/main/java/object/Group.java">
<error line="7" severity="warning" message="First sentence should end with a period." source="com.puppycrawl.tools.checkstyle.checks.javadoc.SummaryJavadocCheck"/>
</file>
</checkstyle>
`

func TestCheckstyleReader_Read(t *testing.T) {
	path := filepath.Join(t.TempDir(), "checkstyle-result.xml")
	writeTestFile(t, path, checkstyleXML)

	reader := NewCheckstyleReader(NewLocalSourceFSAdapter())

	t.Run("filtered", func(t *testing.T) {
		got, err := reader.Read(m.Path(path), "First sentence should end with a period")
		require.NoError(t, err)

		assert.Equal(t, []Violation{
			{Path: "/p/object/src/main/java/object/Attribute.java", Line: 12, Message: "First sentence should end with a period."},
			{Path: "/p/object/src/main/java/object/Group.java", Line: 7, Message: "First sentence should end with a period."},
		}, got)
	})

	t.Run("unfiltered", func(t *testing.T) {
		got, err := reader.Read(m.Path(path), "")
		require.NoError(t, err)
		assert.Len(t, got, 3)
	})
}

func TestCheckstyleReader_Errors(t *testing.T) {
	reader := NewCheckstyleReader(NewLocalSourceFSAdapter())

	_, err := reader.Read(m.Path(filepath.Join(t.TempDir(), "missing.xml")), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read checkstyle report")

	broken := filepath.Join(t.TempDir(), "broken.xml")
	writeTestFile(t, broken, "<checkstyle><file name=")

	_, err = reader.Read(m.Path(broken), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse checkstyle report")
}
