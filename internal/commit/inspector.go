// Package commit inspects shell commands about to be executed by the agent and
// decides whether they represent a genuine git commit attempt. For qualifying
// commands it extracts the intended commit message, handling both simple quoted
// messages and the multi-line heredoc form Claude Code emits, stripping the
// auto-appended attribution footer from the latter.
package commit

import (
	"regexp"
	"strings"
)

// FallbackMessage is used when a commit command carries no extractable message.
const FallbackMessage = "Update"

var (
	// heredocRe matches the heredoc commit form:
	//   git commit -m "$(cat <<'EOF' ... EOF)"
	heredocRe = regexp.MustCompile(`(?s)git commit -m "\$\(cat <<'EOF'\n(.*?)\nEOF`)

	// Attribution footer patterns stripped from heredoc bodies. Each matches a
	// blank line followed by tooling signature, co-author credit, or emoji line.
	signatureRe = regexp.MustCompile(`(?s)\n\n.*Generated with \[Claude Code\].*`)
	coAuthorRe  = regexp.MustCompile(`(?s)\n\nCo-Authored-By:.*`)
	emojiRe     = regexp.MustCompile(`(?s)\n\n🤖.*`)

	// Single-line message forms.
	messageFlagRe = regexp.MustCompile(`git commit -m ["']([^"']+)["']`)
	messageLongRe = regexp.MustCompile(`git commit --message[= ]["']([^"']+)["']`)
)

// IsCommit reports whether the command contains a git commit invocation.
func IsCommit(command string) bool {
	return strings.Contains(command, "git commit")
}

// IsExcluded reports whether the commit command is a variant that should not
// produce a changelog entry: amends, dry runs, and no-verify (-n) commits.
// The -n check is a substring match over the whole command, so any command
// containing "-n" is skipped.
func IsExcluded(command string) bool {
	return strings.Contains(command, "--amend") ||
		strings.Contains(command, "--dry-run") ||
		strings.Contains(command, "-n")
}

// Qualifies reports whether the command is a commit attempt that should be
// processed: it contains a commit invocation and is not an excluded variant.
func Qualifies(command string) bool {
	return IsCommit(command) && !IsExcluded(command)
}

// ExtractMessage pulls the intended commit message out of a git commit command.
// Precedence: heredoc body (with attribution footer stripped), then a quoted
// -m/--message argument, then FallbackMessage.
func ExtractMessage(command string) string {
	if m := heredocRe.FindStringSubmatch(command); m != nil {
		return stripFooter(strings.TrimSpace(m[1]))
	}

	for _, re := range []*regexp.Regexp{messageFlagRe, messageLongRe} {
		if m := re.FindStringSubmatch(command); m != nil {
			return strings.TrimSpace(m[1])
		}
	}

	return FallbackMessage
}

// stripFooter removes the attribution footer from a heredoc commit body.
func stripFooter(message string) string {
	message = signatureRe.ReplaceAllString(message, "")
	message = coAuthorRe.ReplaceAllString(message, "")
	message = emojiRe.ReplaceAllString(message, "")
	return strings.TrimSpace(message)
}
