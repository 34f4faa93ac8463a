// Package analyze turns raw staged-diff text into a structured view of a
// pending commit: which paths were added, modified, deleted, or renamed, and a
// best-effort reading of what the change touches (components, new functions,
// technology integrations). The reading is line-local pattern matching over
// paths and added diff lines, not semantic analysis. It can match inside
// comments or strings and miss multi-line declarations; that is accepted.
package analyze

import (
	"regexp"
	"strings"
)

// Rename records a renamed path pair. To is empty when the diff line carried
// no destination path.
type Rename struct {
	From string
	To   string
}

// ChangeSet holds staged paths grouped by status code, in diff order. A path
// appearing on both an A and an M line is kept in both lists.
type ChangeSet struct {
	Added    []string
	Modified []string
	Deleted  []string
	Renamed  []Rename
}

// Analysis holds the heuristic reading of a change. Components is a set;
// Features and Technical are append-only and deduplicated at render time.
type Analysis struct {
	Components map[string]bool
	Features   []string
	Technical  []string
}

var (
	funcDeclRe   = regexp.MustCompile(`^\+\s*(export\s+)?(async\s+)?function\s+(\w+)`)
	constFuncRe  = regexp.MustCompile(`^\+\s*(export\s+)?const\s+(\w+)\s*=\s*(async\s+)?\(`)
	funcNameRe   = regexp.MustCompile(`function\s+(\w+)`)
	httpVerbList = []string{"get(", "post(", "put(", "delete("}
)

// techKeywords maps case-insensitive patch substrings to technical tags.
// Ordered so the emitted tags are stable for a given patch.
var techKeywords = []struct {
	keyword string
	tag     string
}{
	{"convex", "Convex integration"},
	{"clerk", "Clerk authentication"},
	{"drizzle", "Drizzle ORM"},
	{"migration", "Database migrations"},
}

// Classify parses a name-status summary and the corresponding staged patch
// into a ChangeSet and an Analysis. For identical inputs the ChangeSet is
// fully deterministic; Components membership is deterministic but unordered.
func Classify(nameStatus, patch string) (ChangeSet, Analysis) {
	changes := parseNameStatus(nameStatus)

	analysis := Analysis{Components: make(map[string]bool)}
	inferFromPaths(&analysis, changes)
	inferFromPatch(&analysis, patch)
	inferTechnologies(&analysis, patch)

	return changes, analysis
}

// parseNameStatus splits "<status>\t<path>[\t<new-path>]" lines into a
// ChangeSet. Lines without a tab-separated path are skipped.
func parseNameStatus(nameStatus string) ChangeSet {
	var changes ChangeSet

	for _, line := range strings.Split(nameStatus, "\n") {
		if line == "" {
			continue
		}

		parts := strings.Split(line, "\t")
		if len(parts) < 2 {
			continue
		}

		status, path := parts[0], parts[1]
		switch {
		case status == "A":
			changes.Added = append(changes.Added, path)
		case status == "M":
			changes.Modified = append(changes.Modified, path)
		case status == "D":
			changes.Deleted = append(changes.Deleted, path)
		case strings.HasPrefix(status, "R"):
			rename := Rename{From: path}
			if len(parts) > 2 {
				rename.To = parts[2]
			}
			changes.Renamed = append(changes.Renamed, rename)
		}
	}

	return changes
}

// inferFromPaths derives component labels and technical tags from the
// directory conventions of added and modified paths. The rules are
// independent: a single path may satisfy several of them.
func inferFromPaths(analysis *Analysis, changes ChangeSet) {
	for _, path := range append(append([]string{}, changes.Added...), changes.Modified...) {
		if segment, ok := afterLast(path, "/components/"); ok {
			component, _, _ := strings.Cut(segment, "/")
			analysis.Components[stripSourceExt(component)+" component"] = true
		}
		if segment, ok := afterLast(path, "/routes/"); ok {
			route := strings.ReplaceAll(segment, ".tsx", "")
			route = strings.ReplaceAll(route, ".jsx", "")
			analysis.Components[route+" route"] = true
		}
		if segment, ok := afterLast(path, "/hooks/"); ok {
			hook := strings.ReplaceAll(segment, ".ts", "")
			hook = strings.ReplaceAll(hook, ".js", "")
			analysis.Components[hook+" hook"] = true
		}
		if strings.Contains(path, "/convex/") {
			analysis.Technical = append(analysis.Technical, "Convex backend functions")
		}
		if strings.Contains(path, "schema") {
			analysis.Technical = append(analysis.Technical, "Database schema")
		}
	}
}

// stripSourceExt drops a trailing source-file extension from a component
// segment so files and directories yield the same label.
func stripSourceExt(segment string) string {
	for _, ext := range []string{".tsx", ".jsx", ".ts", ".js"} {
		if strings.HasSuffix(segment, ext) {
			return strings.TrimSuffix(segment, ext)
		}
	}
	return segment
}

// afterLast returns the substring after the last occurrence of sep.
func afterLast(path, sep string) (string, bool) {
	idx := strings.LastIndex(path, sep)
	if idx < 0 {
		return "", false
	}
	return path[idx+len(sep):], true
}

// inferFromPatch scans added patch lines for function declarations, exported
// component declarations, and router/app endpoint registrations. The branches
// are checked in order; the first match wins for a given line.
func inferFromPatch(analysis *Analysis, patch string) {
	for _, line := range strings.Split(patch, "\n") {
		if !strings.HasPrefix(line, "+") || strings.HasPrefix(line, "+++") {
			continue
		}

		switch {
		case funcDeclRe.MatchString(line):
			m := funcDeclRe.FindStringSubmatch(line)
			analysis.Features = append(analysis.Features, "New function: "+m[3])
		case constFuncRe.MatchString(line):
			m := constFuncRe.FindStringSubmatch(line)
			analysis.Features = append(analysis.Features, "New function: "+m[2])
		case strings.Contains(line, "export default function") || strings.Contains(line, "export function"):
			if m := funcNameRe.FindStringSubmatch(line); m != nil {
				analysis.Components[m[1]+" component"] = true
			}
		case strings.Contains(line, "router.") || strings.Contains(line, "app."):
			if containsHTTPVerb(line) {
				analysis.Features = append(analysis.Features, "API endpoint changes")
			}
		}
	}
}

func containsHTTPVerb(line string) bool {
	for _, verb := range httpVerbList {
		if strings.Contains(line, verb) {
			return true
		}
	}
	return false
}

// inferTechnologies adds one technical tag per known technology keyword found
// anywhere in the patch, added or removed lines alike.
func inferTechnologies(analysis *Analysis, patch string) {
	lower := strings.ToLower(patch)
	for _, tech := range techKeywords {
		if strings.Contains(lower, tech.keyword) {
			analysis.Technical = append(analysis.Technical, tech.tag)
		}
	}
}
