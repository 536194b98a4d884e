package extraction

import (
	"regexp"
	"strings"

	"github.com/SatvikPraveen/Resume-Template-Generator/internal/patterns"
	"github.com/SatvikPraveen/Resume-Template-Generator/internal/types"
)

const (
	// labelScanLines is how many non-empty lines after the name are
	// considered when looking for the headline.
	labelScanLines = 5

	// labelMaxLen is the length ceiling for a plausible headline.
	labelMaxLen = 80

	// locationScanBytes restricts location matching to the contact block at
	// the top of the document, keeping institution addresses further down
	// from producing false positives.
	locationScanBytes = 300
)

var (
	emailRe = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	// Phone patterns, most specific first. The first match wins.
	phoneRes = []*regexp.Regexp{
		regexp.MustCompile(`\+\d{1,3}[\s.-]?\(?\d{1,4}\)?(?:[\s.-]?\d{2,4}){2,3}`),
		regexp.MustCompile(`\(\d{3}\)[\s.-]?\d{3}[\s.-]?\d{4}`),
		regexp.MustCompile(`\b\d{3}[\s.-]\d{3}[\s.-]\d{4}\b`),
		regexp.MustCompile(`\b\d{10}\b`),
	}

	// URL patterns, most explicit first.
	urlRes = []*regexp.Regexp{
		regexp.MustCompile(`https?://[^\s|,]+`),
		regexp.MustCompile(`\bwww\.[^\s|,]+`),
		regexp.MustCompile(`\blinkedin\.com/in/[^\s|,]+`),
		regexp.MustCompile(`\bgithub\.com/[^\s|,]+`),
	}

	// Location patterns restricted to the contact block, in priority order:
	// "City, ST", "City, Country", "City, ST 78701". Multi-word cities stay
	// on one physical line.
	locationRes = []*regexp.Regexp{
		regexp.MustCompile(`([A-Z][A-Za-z.'-]+(?:[ \t][A-Z][A-Za-z.'-]+)*),[ \t]*([A-Z]{2})\b(?:[ \t]+\d{5})?`),
		regexp.MustCompile(`([A-Z][A-Za-z.'-]+(?:[ \t][A-Z][A-Za-z.'-]+)*),[ \t]*([A-Z][a-z]+(?:[ \t][A-Z][a-z]+)*)`),
	}

	cityStateTokenRe = regexp.MustCompile(`[A-Z][a-z]+,\s*[A-Z]{2}\b`)
	trailingPhoneRe  = regexp.MustCompile(`[\s|,]*\+?\(?\d[\d\s().-]{6,}$`)

	profileDomains = []string{"linkedin.com", "github.com", "twitter.com", "x.com", "gitlab.com"}
)

// ExtractBasics pulls contact information from the top of the document and
// the summary from the section map.
func ExtractBasics(text string, sections map[patterns.Kind]string, lib *patterns.Library) types.Basics {
	basics := types.Basics{}
	if strings.TrimSpace(text) == "" {
		return basics
	}

	lines := nonEmptyLines(text)
	if len(lines) > 0 {
		basics.Name = extractName(lines[0])
		basics.Label = extractLabel(lines[1:], lib)
	}

	basics.Email = emailRe.FindString(text)
	basics.Phone = extractPhone(text)
	basics.URL = firstMatch(text, urlRes)
	basics.Location = extractLocation(text)

	if summary, ok := sections[patterns.KindSummary]; ok {
		basics.Summary = collapseWhitespace(summary)
	}

	return basics
}

func nonEmptyLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}

// extractName takes the first non-empty line, keeps only the text before a
// field separator, and strips a trailing phone-like digit group.
func extractName(line string) string {
	if i := strings.Index(line, "|"); i >= 0 {
		line = line[:i]
	}
	line = trailingPhoneRe.ReplaceAllString(line, "")
	return strings.TrimSpace(line)
}

// extractLabel scans the lines after the name for the first one that is not
// contact data, not dated, and not a location token.
func extractLabel(lines []string, lib *patterns.Library) string {
	limit := labelScanLines
	if len(lines) < limit {
		limit = len(lines)
	}
	for _, line := range lines[:limit] {
		if len(line) > labelMaxLen {
			continue
		}
		if strings.Contains(line, "@") || strings.Contains(line, "|") {
			continue
		}
		if firstMatch(line, phoneRes) != "" || firstMatch(line, urlRes) != "" {
			continue
		}
		if containsAny(line, profileDomains) {
			continue
		}
		if lib.MatchesDate(line) || cityStateTokenRe.MatchString(line) {
			continue
		}
		return line
	}
	return ""
}

func extractPhone(text string) string {
	phone := firstMatch(text, phoneRes)
	// Internal whitespace runs collapse; other separators stay as written.
	return strings.Join(strings.Fields(phone), " ")
}

func extractLocation(text string) string {
	block := text
	if len(block) > locationScanBytes {
		block = block[:locationScanBytes]
	}
	for _, re := range locationRes {
		if m := re.FindStringSubmatch(block); m != nil {
			return strings.TrimSpace(m[0])
		}
	}
	return ""
}

func firstMatch(s string, res []*regexp.Regexp) string {
	for _, re := range res {
		if m := re.FindString(s); m != "" {
			return m
		}
	}
	return ""
}
