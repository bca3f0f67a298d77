package source

import "strings"

// StripComments removes `//`-to-end-of-line comments and tab characters,
// matching the Driver's preprocessing step before lexing (§6). The
// stripped text, not the original, is what gets lexed; callers that want
// diagnostics against the original text should retain it separately.
func StripComments(text string) string {
	var out strings.Builder
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if idx := strings.Index(line, "//"); idx >= 0 {
			line = line[:idx]
		}
		line = strings.ReplaceAll(line, "\t", "")
		out.WriteString(line)
		if i != len(lines)-1 {
			out.WriteByte('\n')
		}
	}
	return out.String()
}
