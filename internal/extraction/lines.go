package extraction

import (
	"regexp"
	"strings"
)

var (
	bulletPrefixRe = regexp.MustCompile(`^[ \t]*[•·▪‣*○o-][ \t]+`)
	whitespaceRe   = regexp.MustCompile(`\s+`)
)

// isBulletLine reports whether the line opens with a bullet marker.
func isBulletLine(line string) bool {
	return bulletPrefixRe.MatchString(line)
}

// stripBullet removes a leading bullet marker and surrounding whitespace.
func stripBullet(line string) string {
	return strings.TrimSpace(bulletPrefixRe.ReplaceAllString(line, ""))
}

// collapseWhitespace folds all whitespace runs (including newlines) into
// single spaces and trims the result.
func collapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

// containsAny reports whether the lowercased string contains any of the
// given lowercase keywords as a substring.
func containsAny(s string, keywords []string) bool {
	lower := strings.ToLower(s)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// lineStart returns the offset of the first character of the line containing
// pos, and lineEnd the offset just past its last character.
func lineStart(s string, pos int) int {
	if i := strings.LastIndexByte(s[:pos], '\n'); i >= 0 {
		return i + 1
	}
	return 0
}

func lineEnd(s string, pos int) int {
	if i := strings.IndexByte(s[pos:], '\n'); i >= 0 {
		return pos + i
	}
	return len(s)
}

// joinDescription flattens a block of description text: bullet markers are
// stripped and lines joined with single spaces.
func joinDescription(block string) string {
	var parts []string
	for _, line := range strings.Split(block, "\n") {
		line = stripBullet(line)
		if line == "" {
			continue
		}
		parts = append(parts, line)
	}
	return collapseWhitespace(strings.Join(parts, " "))
}
