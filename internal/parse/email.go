package parse

import (
	"regexp"
	"strings"
)

var (
	// A line of exactly "--" (the conventional trailing space included)
	// introduces a signature block; it and everything after it is dropped.
	signaturePattern = regexp.MustCompile(`(?m)^--\s*$`)

	// "On <date>, <someone> wrote:" attribution lines above quoted replies.
	attributionPattern = regexp.MustCompile(`(?m)^On .* wrote:\s*$`)

	// Quoted reply lines.
	quotedLinePattern = regexp.MustCompile(`(?m)^>.*$`)

	// Three or more consecutive newlines collapse to a single blank line.
	excessNewlines = regexp.MustCompile(`\n{3,}`)
)

// CleanEmailBody strips the parts of an email body that carry no task
// content: the trailing signature block, "On ... wrote:" attribution lines,
// and ">"-quoted reply lines. Runs of three or more newlines are collapsed
// to two and the result is trimmed. The cleanup is purely textual; it has
// no understanding of MIME or email structure.
func CleanEmailBody(text string) string {
	if loc := signaturePattern.FindStringIndex(text); loc != nil {
		text = text[:loc[0]]
	}

	text = attributionPattern.ReplaceAllString(text, "")
	text = quotedLinePattern.ReplaceAllString(text, "")
	text = excessNewlines.ReplaceAllString(text, "\n\n")

	return strings.TrimSpace(text)
}
