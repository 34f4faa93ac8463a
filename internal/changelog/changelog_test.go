package changelog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsert_BeforeFirstExistingEntry(t *testing.T) {
	document := "# Changelog\n\nAll notable changes.\n\n## [2024-01-01 09:00:00]\n\n### Older entry\n"
	entry := "\n## [2024-02-01 09:00:00]\n\n### Newer entry\n"

	updated := Insert(document, entry)

	newer := strings.Index(updated, "Newer entry")
	older := strings.Index(updated, "Older entry")
	assert.Less(t, newer, older, "new entry must precede existing entries")
}

func TestInsert_AlwaysBeforeFirstHeading(t *testing.T) {
	// Repeated insertion keeps placing entries at the top, never after
	// later headings.
	document := DefaultHeader
	for _, label := range []string{"first", "second", "third"} {
		document = Insert(document, "\n## [ts]\n\n### "+label+"\n")
	}

	first := strings.Index(document, "### third")
	second := strings.Index(document, "### second")
	third := strings.Index(document, "### first")
	assert.True(t, first < second && second < third,
		"entries should be newest-first:\n%s", document)
}

func TestInsert_AfterTitleWhenNoEntries(t *testing.T) {
	document := "# Changelog\n\nAll notable changes to this project will be documented in this file.\n\n"
	entry := "\n## [2024-02-01 09:00:00]\n\n### First entry\n"

	updated := Insert(document, entry)

	lines := strings.Split(updated, "\n")
	require.Greater(t, len(lines), 4)
	assert.Equal(t, "# Changelog", lines[0])
	assert.Equal(t, "", lines[1])
	// Entry heading lands between the title and the description paragraph.
	assert.Less(t, strings.Index(updated, "## [2024-02-01 09:00:00]"),
		strings.Index(updated, "All notable changes"))
}

func TestInsert_AppendsWhenNoAnchorFound(t *testing.T) {
	updated := Insert("", "\n## [ts]\n\n### Entry\n")
	assert.Contains(t, updated, "### Entry")
}

func TestUpdate_CreatesFileWithHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "CHANGELOG.md")

	require.NoError(t, Update(path, "\n## [ts]\n\n### Initial\n"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# Changelog")
	assert.Contains(t, string(data), "### Initial")
}

func TestUpdate_PreservesExistingContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "CHANGELOG.md")
	existing := "# Changelog\n\nCustom description kept intact.\n\n## [2024-01-01 09:00:00]\n\n### Old\n"
	require.NoError(t, os.WriteFile(path, []byte(existing), 0644))

	require.NoError(t, Update(path, "\n## [2024-02-01 09:00:00]\n\n### New\n"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "Custom description kept intact.")
	assert.Less(t, strings.Index(content, "### New"), strings.Index(content, "### Old"))
}
