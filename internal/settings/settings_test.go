package settings

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readSettings(t *testing.T, dir string) map[string]any {
	t.Helper()
	data, err := os.ReadFile(Path(dir))
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	return doc
}

func TestInstall_CreatesSettingsFile(t *testing.T) {
	dir := t.TempDir()

	changed, err := Install(dir)
	require.NoError(t, err)
	assert.True(t, changed)

	doc := readSettings(t, dir)
	hooks := doc["hooks"].(map[string]any)
	entries := hooks["PreToolUse"].([]any)
	require.Len(t, entries, 1)

	entry := entries[0].(map[string]any)
	assert.Equal(t, "Bash", entry["matcher"])

	assert.True(t, IsInstalled(dir))
}

func TestInstall_Idempotent(t *testing.T) {
	dir := t.TempDir()

	_, err := Install(dir)
	require.NoError(t, err)

	changed, err := Install(dir)
	require.NoError(t, err)
	assert.False(t, changed, "second install should be a no-op")

	entries := readSettings(t, dir)["hooks"].(map[string]any)["PreToolUse"].([]any)
	assert.Len(t, entries, 1)
}

func TestInstall_PreservesUnrelatedSettings(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".claude"), 0755))
	existing := `{
  "permissions": {"allow": ["Bash(npm test)"]},
  "hooks": {
    "PreToolUse": [
      {"matcher": "Write", "hooks": [{"type": "command", "command": "other-tool check"}]}
    ]
  }
}`
	require.NoError(t, os.WriteFile(Path(dir), []byte(existing), 0644))

	changed, err := Install(dir)
	require.NoError(t, err)
	assert.True(t, changed)

	doc := readSettings(t, dir)
	assert.Contains(t, doc, "permissions")

	entries := doc["hooks"].(map[string]any)["PreToolUse"].([]any)
	require.Len(t, entries, 2)
	first := entries[0].(map[string]any)
	assert.Equal(t, "Write", first["matcher"], "existing hooks keep their position")
}

func TestUninstall(t *testing.T) {
	dir := t.TempDir()

	_, err := Install(dir)
	require.NoError(t, err)

	changed, err := Uninstall(dir)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.False(t, IsInstalled(dir))

	// Empty hook containers are removed entirely.
	doc := readSettings(t, dir)
	assert.NotContains(t, doc, "hooks")
}

func TestUninstall_NotInstalled(t *testing.T) {
	dir := t.TempDir()

	changed, err := Uninstall(dir)
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestUninstall_KeepsOtherHooks(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".claude"), 0755))
	existing := `{
  "hooks": {
    "PreToolUse": [
      {"matcher": "Write", "hooks": [{"type": "command", "command": "other-tool check"}]},
      {"matcher": "Bash", "hooks": [{"type": "command", "command": "autolog hook"}]}
    ]
  }
}`
	require.NoError(t, os.WriteFile(Path(dir), []byte(existing), 0644))

	changed, err := Uninstall(dir)
	require.NoError(t, err)
	assert.True(t, changed)

	entries := readSettings(t, dir)["hooks"].(map[string]any)["PreToolUse"].([]any)
	require.Len(t, entries, 1)
	assert.Equal(t, "Write", entries[0].(map[string]any)["matcher"])
}

func TestIsInstalled_MissingFile(t *testing.T) {
	assert.False(t, IsInstalled(t.TempDir()))
}
