// Package ingestion turns source documents (plain text or PDF) into the
// normalized text blob the extraction engine consumes, together with
// per-document metadata.
package ingestion

import (
	"regexp"
	"strings"
)

var (
	spaceRunRe   = regexp.MustCompile(`[ \t]+`)
	blankLinesRe = regexp.MustCompile(`\n[ \t]*\n[ \t]*(?:\n[ \t]*)+`)
)

// charReplacer canonicalizes characters NormalizeText cares about. Dash
// variants collapse to a plain hyphen, curly quotes to straight quotes, and
// zero-width or otherwise invisible code points are dropped entirely.
var charReplacer = strings.NewReplacer(
	"–", "-", // en dash
	"—", "-", // em dash
	"―", "-", // horizontal bar
	"−", "-", // minus sign
	"‘", "'", // left single quote
	"’", "'", // right single quote
	"“", `"`, // left double quote
	"”", `"`, // right double quote
	" ", " ", // no-break space
	"​", "", // zero-width space
	"‌", "", // zero-width non-joiner
	"‍", "", // zero-width joiner
	"⁠", "", // word joiner
	"\ufeff", "", // byte order mark
	"­", "", // soft hyphen
)

// NormalizeText canonicalizes raw extracted text: line endings, dash and
// quote variants, invisible characters, space runs, and excessive blank
// lines. It is a pure function and idempotent: re-normalizing its own output
// yields the same string.
func NormalizeText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	content = charReplacer.Replace(content)

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		line = spaceRunRe.ReplaceAllString(line, " ")
		lines[i] = strings.TrimRight(line, " ")
	}
	content = strings.Join(lines, "\n")

	// Runs of blank lines collapse to exactly one, preserving structural
	// paragraph breaks.
	content = blankLinesRe.ReplaceAllString(content, "\n\n")

	return strings.TrimSpace(content)
}
