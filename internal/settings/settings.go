// Package settings manages the autolog entry in Claude Code's project-level
// .claude/settings.json. Edits are read-modify-write over the raw JSON
// document so unrelated settings and hooks survive untouched.
package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// HookCommand is the shell command registered for the PreToolUse event.
const HookCommand = "autolog hook"

// matcher is the tool-name pattern the hook subscribes to.
const matcher = "Bash"

// Path returns the project settings file location under dir.
func Path(dir string) string {
	return filepath.Join(dir, ".claude", "settings.json")
}

// Install registers the autolog PreToolUse hook in the settings file under
// dir, creating the file if needed. Returns true if the file changed, false
// if the hook was already registered.
func Install(dir string) (bool, error) {
	path := Path(dir)

	doc, err := load(path)
	if err != nil {
		return false, err
	}

	hooks := childMap(doc, "hooks")
	entries := childList(hooks, "PreToolUse")

	if findHook(entries) >= 0 {
		return false, nil
	}

	entries = append(entries, map[string]any{
		"matcher": matcher,
		"hooks": []any{
			map[string]any{"type": "command", "command": HookCommand},
		},
	})
	hooks["PreToolUse"] = entries
	doc["hooks"] = hooks

	if err := save(path, doc); err != nil {
		return false, err
	}
	return true, nil
}

// Uninstall removes the autolog hook from the settings file under dir.
// Returns true if the file changed, false if the hook was not registered.
func Uninstall(dir string) (bool, error) {
	path := Path(dir)
	if _, err := os.Stat(path); err != nil {
		return false, nil
	}

	doc, err := load(path)
	if err != nil {
		return false, err
	}

	hooks := childMap(doc, "hooks")
	entries := childList(hooks, "PreToolUse")

	idx := findHook(entries)
	if idx < 0 {
		return false, nil
	}

	entries = append(entries[:idx], entries[idx+1:]...)
	if len(entries) > 0 {
		hooks["PreToolUse"] = entries
	} else {
		delete(hooks, "PreToolUse")
	}
	if len(hooks) > 0 {
		doc["hooks"] = hooks
	} else {
		delete(doc, "hooks")
	}

	if err := save(path, doc); err != nil {
		return false, err
	}
	return true, nil
}

// IsInstalled reports whether the autolog hook is registered under dir.
func IsInstalled(dir string) bool {
	doc, err := load(Path(dir))
	if err != nil {
		return false
	}
	return findHook(childList(childMap(doc, "hooks"), "PreToolUse")) >= 0
}

// load parses the settings file, returning an empty document if it does not
// exist yet.
func load(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return map[string]any{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading settings %s: %w", path, err)
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing settings %s: %w", path, err)
	}
	if doc == nil {
		doc = map[string]any{}
	}
	return doc, nil
}

// save writes the settings document back with stable indentation.
func save(path string, doc map[string]any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating settings directory: %w", err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("writing settings %s: %w", path, err)
	}
	return nil
}

// childMap returns doc[key] as a map, or an empty one.
func childMap(doc map[string]any, key string) map[string]any {
	if m, ok := doc[key].(map[string]any); ok {
		return m
	}
	return map[string]any{}
}

// childList returns m[key] as a list, or nil.
func childList(m map[string]any, key string) []any {
	if l, ok := m[key].([]any); ok {
		return l
	}
	return nil
}

// findHook returns the index of the entry whose hooks include the autolog
// command, or -1.
func findHook(entries []any) int {
	for i, raw := range entries {
		entry, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		for _, h := range childList(entry, "hooks") {
			hm, ok := h.(map[string]any)
			if !ok {
				continue
			}
			if cmd, _ := hm["command"].(string); cmd == HookCommand {
				return i
			}
		}
	}
	return -1
}
