package extraction

import (
	"regexp"
	"strings"

	"github.com/SatvikPraveen/Resume-Template-Generator/internal/patterns"
	"github.com/SatvikPraveen/Resume-Template-Generator/internal/types"
)

const (
	// institutionLookback bounds the backward search (in bytes) from a date
	// anchor to the institution line.
	institutionLookback = 400

	// degreeLookahead bounds the forward search from a date anchor when no
	// further anchor limits it.
	degreeLookahead = 400
)

var (
	// "in Computer Science" / "of Arts" after a degree keyword. The field
	// runs until a comma or line break.
	fieldOfStudyRe = regexp.MustCompile(`(?i)^\s*(?:\([^)\n]*\)\s*)?(?:in|of)\s+([^,\n]+)`)

	// "Austin, TX" / "Chicago, Illinois": a capitalized city followed by a
	// region code or name, tried in that order.
	cityRegionRes = []*regexp.Regexp{
		regexp.MustCompile(`([A-Z][A-Za-z.'-]+(?:[ \t][A-Z][A-Za-z.'-]+)*),[ \t]*([A-Z]{2})\b`),
		regexp.MustCompile(`([A-Z][A-Za-z.'-]+(?:[ \t][A-Z][A-Za-z.'-]+)*),[ \t]*([A-Z][a-z]+(?:[ \t][A-Z][a-z]+)*)`),
	}

	// A capitalized word followed by a comma, used to cut a field of study
	// short when a trailing "City," leaked into it.
	trailingCityRe = regexp.MustCompile(`\s+[A-Z][a-z]+,`)
)

// ExtractEducation parses the education section body. Entries anchor on date
// ranges; the primary tier requires both an institution and a recognized
// degree type, the robust tier accepts either signal alone.
func ExtractEducation(body string, lib *patterns.Library, opts Options) []types.EducationEntry {
	entries := []types.EducationEntry{}
	if strings.TrimSpace(body) == "" {
		return entries
	}

	anchors := findAnchors(body, lib.DateRange())
	for i, a := range anchors {
		entry := types.EducationEntry{
			StartDate: NormalizeDateToken(a.startToken),
			EndDate:   NormalizeDateToken(a.endToken),
		}

		windowStart := a.start - institutionLookback
		if windowStart < 0 {
			windowStart = 0
		}
		entry.Institution = findInstitution(body[windowStart:a.start], lib)

		windowEnd := a.end + degreeLookahead
		if i+1 < len(anchors) && anchors[i+1].start < windowEnd {
			windowEnd = anchors[i+1].start
		}
		if windowEnd > len(body) {
			windowEnd = len(body)
		}
		// The degree frequently sits above or on the anchor's own line,
		// before the date; the window reaches back into this entry's block
		// but never past the previous anchor.
		degStart := a.start - degreeLookahead
		if i > 0 && anchors[i-1].end > degStart {
			degStart = anchors[i-1].end
		}
		if degStart < 0 {
			degStart = 0
		}
		entry.StudyType, entry.Area, entry.Location = findDegree(body[degStart:windowEnd], lib)

		keep := entry.Institution != "" && entry.StudyType != ""
		if opts.Robust {
			keep = entry.Institution != "" || entry.StudyType != ""
		}
		if keep {
			entries = append(entries, entry)
		}
	}

	return entries
}

// findInstitution scans the window backward for the nearest line containing
// an institution keyword and returns that line up to its first comma.
func findInstitution(window string, lib *patterns.Library) string {
	lines := strings.Split(window, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		line := stripBullet(lines[i])
		if line == "" || !containsAny(line, lib.InstitutionKeywords()) {
			continue
		}
		if c := strings.Index(line, ","); c >= 0 {
			line = line[:c]
		}
		return strings.TrimSpace(line)
	}
	return ""
}

// findDegree searches the entry window for a degree keyword in priority
// order, then captures the field of study and a trailing location.
func findDegree(window string, lib *patterns.Library) (studyType, area, location string) {
	studyType, idx, ok := lib.MatchDegree(window)
	if !ok {
		return "", "", ""
	}

	rest := window[idx:]
	if m := fieldOfStudyRe.FindStringSubmatch(rest); m != nil {
		area = strings.TrimSpace(m[1])
		// A capitalized "City," token terminates the field.
		if loc := trailingCityRe.FindStringIndex(area); loc != nil {
			area = strings.TrimSpace(area[:loc[0]])
		}
	}

	// Location lookup stays on the degree keyword's own line so a later
	// entry's "City, Region" cannot bleed into this one.
	locWindow := rest
	if i := strings.IndexByte(locWindow, '\n'); i >= 0 {
		locWindow = locWindow[:i]
	}
	for _, re := range cityRegionRes {
		if m := re.FindStringSubmatch(locWindow); m != nil {
			location = m[1] + ", " + m[2]
			break
		}
	}

	return studyType, area, location
}
