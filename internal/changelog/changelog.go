// Package changelog maintains the CHANGELOG.md document: it initializes the
// header block for new files and splices freshly rendered entries in directly
// below the header, newest first.
package changelog

import (
	"fmt"
	"os"
	"strings"
)

// DefaultHeader is the document synthesized when no changelog exists yet.
const DefaultHeader = "# Changelog\n\nAll notable changes to this project will be documented in this file.\n\n"

// Insert splices an entry into the document text and returns the result.
// The entry lands immediately before the first level-2 heading; in a document
// without one, immediately after the first blank line that ends the header
// paragraph; failing both, at the end.
func Insert(document, entry string) string {
	lines := strings.Split(document, "\n")

	index := insertIndex(lines)
	lines = append(lines[:index], append([]string{entry}, lines[index:]...)...)

	return strings.Join(lines, "\n")
}

// insertIndex finds where a new entry belongs within the document lines.
func insertIndex(lines []string) int {
	for i, line := range lines {
		if strings.HasPrefix(line, "##") {
			return i
		}
		if i > 0 && strings.TrimSpace(line) == "" && strings.TrimSpace(lines[i-1]) != "" {
			return i + 1
		}
	}
	return len(lines)
}

// Update reads the changelog at path (or starts one from DefaultHeader),
// inserts the entry, and writes the whole document back.
func Update(path, entry string) error {
	document := DefaultHeader
	if data, err := os.ReadFile(path); err == nil {
		document = string(data)
	}

	if err := os.WriteFile(path, []byte(Insert(document, entry)), 0644); err != nil {
		return fmt.Errorf("writing changelog %s: %w", path, err)
	}

	return nil
}
