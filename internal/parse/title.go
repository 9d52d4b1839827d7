package parse

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// intentPrefixes are task-intent phrases stripped from the front of the text
// before it becomes a title. Order matters: the first entry that matches
// wins, so longer phrases must precede their prefixes ("create a task for"
// before "create task for", "add task:" before "task:").
var intentPrefixes = []string{
	"follow up with",
	"follow up on",
	"remind me to",
	"schedule",
	"create a task for",
	"create task for",
	"add task:",
	"task:",
}

// ExtractTitle derives a task title from free text. If the trimmed text
// starts with one of the known intent prefixes (case-insensitive), that
// prefix is stripped; the remainder — or the whole text when no prefix
// matches — is returned with its first letter capitalized.
func ExtractTitle(text string) string {
	trimmed := strings.TrimSpace(text)
	lower := strings.ToLower(trimmed)

	for _, prefix := range intentPrefixes {
		if strings.HasPrefix(lower, prefix) {
			rest := strings.TrimSpace(trimmed[len(prefix):])
			if rest != "" {
				return capitalize(rest)
			}
			// Nothing after the prefix; fall back to the original text.
			break
		}
	}

	return capitalize(trimmed)
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
