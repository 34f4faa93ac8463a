// Package hook implements the PreToolUse handler that generates changelog
// entries for git commits made through Claude Code. It reads the hook event
// from stdin, inspects the staged diff, renders an entry, and splices it into
// the changelog, then reports an "allow" decision. The handler never blocks
// the commit: every failure path degrades to allow, and non-qualifying events
// produce no output at all.
package hook

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/raveheart1/autolog/internal/analyze"
	"github.com/raveheart1/autolog/internal/changelog"
	"github.com/raveheart1/autolog/internal/commit"
	"github.com/raveheart1/autolog/internal/config"
	"github.com/raveheart1/autolog/internal/entry"
	"github.com/raveheart1/autolog/internal/git"
)

// eventName is the hook event this handler responds to.
const eventName = "PreToolUse"

// toolName is the shell-execution tool whose commands are inspected.
const toolName = "Bash"

// Input is the JSON Claude Code sends on stdin to PreToolUse hooks. Fields
// not needed by autolog are ignored.
type Input struct {
	HookEventName string    `json:"hook_event_name"`
	ToolName      string    `json:"tool_name"`
	ToolInput     ToolInput `json:"tool_input"`
}

// ToolInput carries the Bash tool parameters.
type ToolInput struct {
	Command string `json:"command"`
}

// Output is the JSON envelope written to stdout when the event matches.
type Output struct {
	HookSpecificOutput SpecificOutput `json:"hookSpecificOutput"`
	SystemMessage      string         `json:"systemMessage"`
}

// SpecificOutput is the PreToolUse permission decision. Autolog always
// decides "allow"; the reason reports what happened to the changelog.
type SpecificOutput struct {
	HookEventName            string `json:"hookEventName"`
	PermissionDecision       string `json:"permissionDecision"`
	PermissionDecisionReason string `json:"permissionDecisionReason"`
}

// Options configures a handler run. Zero values select production behavior.
type Options struct {
	// Config supplies changelog path and section caps. Nil means defaults.
	Config *config.Configuration

	// Dir is the working directory for git queries and the changelog file.
	// Empty means the current directory.
	Dir string

	// Now returns the entry timestamp. Nil means time.Now.
	Now func() time.Time

	// Diff overrides the git queries (tests). Nil means query the real index.
	Diff DiffSource
}

// DiffSource abstracts the two staged-diff queries.
type DiffSource interface {
	StagedNameStatus() string
	StagedPatch() string
}

// gitDiff queries the real index in a directory.
type gitDiff struct{ dir string }

func (g gitDiff) StagedNameStatus() string { return git.StagedNameStatus(g.dir) }
func (g gitDiff) StagedPatch() string      { return git.StagedPatch(g.dir) }

// Run executes the hook pipeline: parse input, filter events, collect the
// staged diff, classify, render, and update the changelog. The decision
// envelope is written to stdout only for qualifying events; every other case
// is a silent no-op. Run itself never returns an error -- the hook process
// always exits zero.
func Run(stdin io.Reader, stdout io.Writer, opts Options) {
	var input Input
	if err := json.NewDecoder(stdin).Decode(&input); err != nil {
		return
	}

	if input.HookEventName != eventName || input.ToolName != toolName {
		return
	}

	command := input.ToolInput.Command
	if !commit.Qualifies(command) {
		return
	}

	cfg := opts.Config
	if cfg == nil {
		cfg = config.Defaults()
	}

	diff := opts.Diff
	if diff == nil {
		diff = gitDiff{dir: opts.Dir}
	}

	nameStatus := diff.StagedNameStatus()
	if nameStatus == "" {
		// Nothing staged; let git surface its own "nothing to commit".
		return
	}

	if err := generate(command, nameStatus, diff.StagedPatch(), cfg, opts); err != nil {
		writeDecision(stdout, fmt.Sprintf("Changelog generation failed: %v", err),
			fmt.Sprintf("⚠️ Changelog generation failed: %v", err))
		return
	}

	writeDecision(stdout, fmt.Sprintf("Changelog entry added to %s", cfg.ChangelogPath),
		fmt.Sprintf("✅ Changelog entry automatically added to %s", cfg.ChangelogPath))
}

// generate runs classification, rendering, and the changelog write.
func generate(command, nameStatus, patch string, cfg *config.Configuration, opts Options) error {
	message := commit.ExtractMessage(command)
	if message == commit.FallbackMessage && cfg.FallbackMessage != "" {
		message = cfg.FallbackMessage
	}

	changes, analysis := analyze.Classify(nameStatus, patch)

	now := time.Now()
	if opts.Now != nil {
		now = opts.Now()
	}

	caps := entry.Caps{
		FilesPerCategory: cfg.MaxFilesPerCategory,
		Features:         cfg.MaxFeatures,
		Renames:          cfg.MaxRenames,
	}
	rendered := entry.Render(message, changes, analysis, now, caps)

	path := cfg.ChangelogPath
	if opts.Dir != "" {
		path = changelogPath(opts.Dir, cfg.ChangelogPath)
	}

	return changelog.Update(path, rendered)
}

// changelogPath resolves the changelog location against the working
// directory, leaving absolute paths untouched.
func changelogPath(dir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

// writeDecision emits the allow envelope. Encoding failures are swallowed;
// there is nowhere left to report them.
func writeDecision(stdout io.Writer, reason, message string) {
	out := Output{
		HookSpecificOutput: SpecificOutput{
			HookEventName:            eventName,
			PermissionDecision:       "allow",
			PermissionDecisionReason: reason,
		},
		SystemMessage: message,
	}
	_ = json.NewEncoder(stdout).Encode(out)
}
