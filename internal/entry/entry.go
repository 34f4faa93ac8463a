// Package entry renders a changelog section for a pending commit: a
// timestamped heading, the commit message, a summary of inferred changes, and
// categorized file listings. Output is markdown designed to splice directly
// into an existing CHANGELOG.md without disturbing its structure.
package entry

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/raveheart1/autolog/internal/analyze"
)

// Caps bounds the size of rendered sections. Entries beyond a cap collapse
// into an "...and N more" summary bullet.
type Caps struct {
	FilesPerCategory int
	Features         int
	Renames          int
}

// DefaultCaps returns the standard section limits.
func DefaultCaps() Caps {
	return Caps{FilesPerCategory: 10, Features: 5, Renames: 5}
}

// category pairs a section heading with the path substrings that route a file
// into it. Categories are checked in order; the first match wins.
var categories = []struct {
	name     string
	patterns []string
}{
	{"Frontend Components", []string{"/components/", "/routes/", "/hooks/", ".tsx", ".jsx"}},
	{"Backend/API", []string{"/api/", "/convex/", "/workers/", "trpc"}},
	{"Database", []string{"schema", "migration", ".sql", "database"}},
	{"Configuration", []string{".json", ".config", ".env", "wrangler", "package"}},
	{"Documentation", []string{".md", "README", "CHANGELOG", "docs/"}},
	{"Tests", []string{"test", "spec", "__tests__"}},
}

// Render produces the changelog entry text for a commit. The entry always
// begins with a level-2 timestamp heading and the commit message as a level-3
// heading; every other section is emitted only when it has content.
func Render(message string, changes analyze.ChangeSet, analysis analyze.Analysis, now time.Time, caps Caps) string {
	var b strings.Builder

	fmt.Fprintf(&b, "\n## [%s]\n\n", now.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "### %s\n\n", message)

	writeSummary(&b, analysis, caps)
	writeFileCategories(&b, changes, caps)
	writeRemoved(&b, changes.Deleted, caps)
	writeRenamed(&b, changes.Renamed, caps)
	writeTechnicalDetails(&b, changes)

	return b.String()
}

// writeSummary emits the Changes block: sorted components, deduplicated
// features (capped), and deduplicated technical tags.
func writeSummary(b *strings.Builder, analysis analyze.Analysis, caps Caps) {
	if len(analysis.Components) == 0 && len(analysis.Features) == 0 && len(analysis.Technical) == 0 {
		return
	}

	b.WriteString("**Changes:**\n")

	components := make([]string, 0, len(analysis.Components))
	for c := range analysis.Components {
		components = append(components, c)
	}
	sort.Strings(components)
	for _, c := range components {
		fmt.Fprintf(b, "- Updated %s\n", c)
	}

	features := dedupe(analysis.Features)
	if len(features) > caps.Features {
		features = features[:caps.Features]
	}
	for _, f := range features {
		fmt.Fprintf(b, "- %s\n", f)
	}

	for _, tech := range dedupe(analysis.Technical) {
		fmt.Fprintf(b, "- %s updates\n", tech)
	}

	b.WriteString("\n")
}

// writeFileCategories groups added and modified paths into the fixed category
// list and emits one section per non-empty category.
func writeFileCategories(b *strings.Builder, changes analyze.ChangeSet, caps Caps) {
	grouped := make(map[string][]string)
	for _, path := range append(append([]string{}, changes.Added...), changes.Modified...) {
		name := categorize(path)
		grouped[name] = append(grouped[name], path)
	}

	added := make(map[string]bool, len(changes.Added))
	for _, path := range changes.Added {
		added[path] = true
	}

	order := make([]string, 0, len(categories)+1)
	for _, cat := range categories {
		order = append(order, cat.name)
	}
	order = append(order, "Other")

	for _, name := range order {
		files := grouped[name]
		if len(files) == 0 {
			continue
		}

		fmt.Fprintf(b, "**%s:**\n", name)
		for _, path := range capSlice(files, caps.FilesPerCategory) {
			action := "Modified"
			if added[path] {
				action = "Added"
			}
			writeFileBullet(b, action, path, "in")
		}
		writeOverflow(b, len(files), caps.FilesPerCategory)
		b.WriteString("\n")
	}
}

// categorize assigns a path to the first category whose pattern it contains,
// or "Other" when nothing matches.
func categorize(path string) string {
	for _, cat := range categories {
		for _, pattern := range cat.patterns {
			if strings.Contains(path, pattern) {
				return cat.name
			}
		}
	}
	return "Other"
}

// writeRemoved emits the Removed block for deleted paths.
func writeRemoved(b *strings.Builder, deleted []string, caps Caps) {
	if len(deleted) == 0 {
		return
	}

	b.WriteString("**Removed:**\n")
	for _, path := range capSlice(deleted, caps.FilesPerCategory) {
		writeFileBullet(b, "Removed", path, "from")
	}
	writeOverflow(b, len(deleted), caps.FilesPerCategory)
	b.WriteString("\n")
}

// writeRenamed emits the Renamed block as "from → to" bullets.
func writeRenamed(b *strings.Builder, renamed []analyze.Rename, caps Caps) {
	if len(renamed) == 0 {
		return
	}

	b.WriteString("**Renamed:**\n")
	limit := len(renamed)
	if limit > caps.Renames {
		limit = caps.Renames
	}
	for _, r := range renamed[:limit] {
		if r.To != "" {
			fmt.Fprintf(b, "- %s → %s\n", r.From, r.To)
		} else {
			fmt.Fprintf(b, "- %s\n", r.From)
		}
	}
	writeOverflow(b, len(renamed), caps.Renames)
	b.WriteString("\n")
}

// writeTechnicalDetails emits the fixed path-membership inference rules.
// These are intentionally separate from the keyword scan in package analyze;
// both rule sets ship as-is.
func writeTechnicalDetails(b *strings.Builder, changes analyze.ChangeSet) {
	touched := append(append([]string{}, changes.Added...), changes.Modified...)

	var details []string
	if anyContainsFold(touched, "convex") {
		details = append(details, "Convex real-time database integration")
	}
	if anyContainsFold(touched, "clerk") {
		details = append(details, "Clerk authentication system")
	}
	if anyContainsFold(changes.Deleted, "migration") {
		details = append(details, "Removed database migrations (migrated to new system)")
	}
	if anyContains(changes.Deleted, ".sql") {
		details = append(details, "Removed SQL files")
	}

	if len(details) == 0 {
		return
	}

	b.WriteString("**Technical Details:**\n")
	for _, d := range details {
		fmt.Fprintf(b, "- %s\n", d)
	}
	b.WriteString("\n")
}

// writeFileBullet renders "- <action> `<filename>` <preposition> <dir>",
// omitting the directory clause for top-level paths.
func writeFileBullet(b *strings.Builder, action, path, preposition string) {
	filename := path
	context := ""
	if idx := strings.LastIndex(path, "/"); idx >= 0 {
		filename = path[idx+1:]
		context = path[:idx]
	}

	if context != "" {
		fmt.Fprintf(b, "- %s `%s` %s %s\n", action, filename, preposition, context)
	} else {
		fmt.Fprintf(b, "- %s `%s`\n", action, filename)
	}
}

// writeOverflow emits the "...and N more files" bullet when total exceeds limit.
func writeOverflow(b *strings.Builder, total, limit int) {
	if total > limit {
		fmt.Fprintf(b, "- ...and %d more files\n", total-limit)
	}
}

func capSlice(s []string, n int) []string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

// dedupe removes duplicates preserving first-seen order, keeping rendered
// output stable for identical inputs.
func dedupe(items []string) []string {
	seen := make(map[string]bool, len(items))
	var out []string
	for _, item := range items {
		if !seen[item] {
			seen[item] = true
			out = append(out, item)
		}
	}
	return out
}

func anyContains(paths []string, substr string) bool {
	for _, p := range paths {
		if strings.Contains(p, substr) {
			return true
		}
	}
	return false
}

func anyContainsFold(paths []string, substr string) bool {
	for _, p := range paths {
		if strings.Contains(strings.ToLower(p), substr) {
			return true
		}
	}
	return false
}
