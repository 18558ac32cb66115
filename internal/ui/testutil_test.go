package ui

import "regexp"

var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// stripANSI removes ANSI escape sequences so assertions can match plain text.
func stripANSI(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}
