// Package extraction implements the per-section entity extractors. Every
// extractor is a pure function over a section body plus the active pattern
// library; a miss produces an empty value, never an error.
package extraction

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	presentRe = regexp.MustCompile(`(?i)^(?:present|current|now|ongoing|till date|to date)$`)

	// A two-digit year is the trailing digit pair of a token, not preceded
	// by another digit ("Jun 21", "Jun '85", "3/20", but not "2021").
	twoDigitYearRe = regexp.MustCompile(`(^|[^0-9])'?(\d{2})$`)
)

// twoDigitYearPivot is the boundary of the 2-digit-year disambiguation rule:
// values 00 through the pivot expand into the 2000s, everything above into
// the 1900s ("21" → 2021, "85" → 1985, "50" → 2050, "51" → 1951).
const twoDigitYearPivot = 50

// NormalizeDateToken canonicalizes one raw date token from an anchor:
// whitespace runs collapse to a single space, present-style markers become
// the literal "Present", and a trailing 2-digit year expands to four digits.
func NormalizeDateToken(token string) string {
	token = strings.Join(strings.Fields(token), " ")
	if token == "" {
		return ""
	}
	if presentRe.MatchString(token) {
		return "Present"
	}
	return ExpandTwoDigitYear(token)
}

// ExpandTwoDigitYear rewrites a trailing 2-digit year into its 4-digit form,
// dropping an abbreviating apostrophe if present. Tokens without a trailing
// 2-digit year pass through unchanged.
func ExpandTwoDigitYear(token string) string {
	m := twoDigitYearRe.FindStringSubmatchIndex(token)
	if m == nil {
		return token
	}
	two, err := strconv.Atoi(token[m[4]:m[5]])
	if err != nil {
		return token
	}
	year := 1900 + two
	if two <= twoDigitYearPivot {
		year = 2000 + two
	}
	return token[:m[3]] + strconv.Itoa(year)
}

// anchor is one date-range occurrence inside a section body.
type anchor struct {
	start, end int // offsets of the whole match
	startToken string
	endToken   string
}

// findAnchors locates every date-range occurrence in body using the
// library's range pattern, in document order.
func findAnchors(body string, rangeRe *regexp.Regexp) []anchor {
	var anchors []anchor
	for _, m := range rangeRe.FindAllStringSubmatchIndex(body, -1) {
		anchors = append(anchors, anchor{
			start:      m[0],
			end:        m[1],
			startToken: body[m[2]:m[3]],
			endToken:   body[m[4]:m[5]],
		})
	}
	return anchors
}
