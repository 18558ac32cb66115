// Package editor launches the user's editor to compose journal text.
package editor

import (
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"strings"
)

// hintPattern matches the instruction comment placed at the top of a new
// journal file.
var hintPattern = regexp.MustCompile(`(?s)<!--.*?-->`)

// ResolveEditor determines which editor to use based on config, env vars, and fallback.
func ResolveEditor(configEditor string) string {
	if configEditor != "" {
		return configEditor
	}
	if ed := os.Getenv("EDITOR"); ed != "" {
		return ed
	}
	if ed := os.Getenv("VISUAL"); ed != "" {
		return ed
	}
	return "vi"
}

// Hint returns the comment written above the journal text for the given day
// and mood label.
func Hint(date, moodLabel string) string {
	return fmt.Sprintf("<!--\nJournal for %s (%s).\nWrite markdown below. This comment is removed on save.\nLeave the file empty to skip the journal.\n-->\n\n", date, moodLabel)
}

// Strip removes instruction comments and surrounding whitespace.
func Strip(content string) string {
	return strings.TrimSpace(hintPattern.ReplaceAllString(content, ""))
}

// Compose opens the editor on a file seeded with initial and returns the text
// the user wrote, with instruction comments removed. An empty result means
// the user wrote nothing.
func Compose(editorCmd, initial string) (string, error) {
	parts := strings.Fields(editorCmd)
	if len(parts) == 0 {
		return "", fmt.Errorf("empty editor command")
	}

	tmp, err := os.CreateTemp("", "moodctl-*.md")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.WriteString(initial); err != nil {
		tmp.Close()
		return "", fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("writing temp file: %w", err)
	}

	cmd := exec.Command(parts[0], append(parts[1:], tmpName)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("editor exited with error: %w", err)
	}

	data, err := os.ReadFile(tmpName)
	if err != nil {
		return "", fmt.Errorf("reading edited file: %w", err)
	}
	return Strip(string(data)), nil
}
