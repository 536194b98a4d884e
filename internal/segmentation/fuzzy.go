package segmentation

import (
	"strings"

	"github.com/SatvikPraveen/Resume-Template-Generator/internal/patterns"
)

const (
	// marginBefore / marginAfter extend an inferred region around its
	// signal lines to capture adjacent context.
	marginBefore = 1
	marginAfter  = 4

	// skillLineMaxLen is the length ceiling above which a separator-heavy
	// line is treated as prose rather than a skill list.
	skillLineMaxLen = 120

	// minListSeparators is how many list separators a line needs to count
	// as list-shaped.
	minListSeparators = 2
)

// FuzzyLocate infers section bodies from per-line content signals when no
// header line matched. Regions may overlap; downstream extractors filter out
// non-matching content on their own.
func FuzzyLocate(text string, lib *patterns.Library) map[patterns.Kind]string {
	sections := map[patterns.Kind]string{}
	if strings.TrimSpace(text) == "" {
		return sections
	}

	lines := strings.Split(text, "\n")

	eduFirst, eduLast := -1, -1
	expFirst, expLast := -1, -1
	sklFirst, sklLast := -1, -1

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if hasEducationSignal(trimmed, lib) {
			eduFirst, eduLast = extendRegion(eduFirst, eduLast, i)
		}
		if lib.MatchesDate(trimmed) {
			expFirst, expLast = extendRegion(expFirst, expLast, i)
		}
		if isListShaped(trimmed, lib) {
			sklFirst, sklLast = extendRegion(sklFirst, sklLast, i)
		}
	}

	if body := sliceRegion(lines, eduFirst, eduLast); body != "" {
		sections[patterns.KindEducation] = body
	}
	if body := sliceRegion(lines, expFirst, expLast); body != "" {
		sections[patterns.KindExperience] = body
	}
	if body := sliceRegion(lines, sklFirst, sklLast); body != "" {
		sections[patterns.KindSkills] = body
	}

	return sections
}

func extendRegion(first, last, line int) (int, int) {
	if first == -1 {
		return line, line
	}
	return first, line
}

// sliceRegion cuts the line range [first-marginBefore, last+marginAfter],
// clamped to the document, and joins it back into a section body.
func sliceRegion(lines []string, first, last int) string {
	if first == -1 {
		return ""
	}
	start := first - marginBefore
	if start < 0 {
		start = 0
	}
	end := last + marginAfter + 1
	if end > len(lines) {
		end = len(lines)
	}
	return strings.TrimSpace(strings.Join(lines[start:end], "\n"))
}

// hasEducationSignal reports whether the line mentions an institution or
// degree keyword.
func hasEducationSignal(line string, lib *patterns.Library) bool {
	lower := strings.ToLower(line)
	for _, kw := range lib.InstitutionKeywords() {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	for _, d := range lib.DegreeTypes() {
		if strings.Contains(lower, d.Keyword) {
			return true
		}
	}
	return false
}

// isListShaped reports whether the line looks like a skill list: short,
// separator-heavy, and not date-bearing (which would make it a dated
// sentence, not a list).
func isListShaped(line string, lib *patterns.Library) bool {
	if len(line) >= skillLineMaxLen {
		return false
	}
	separators := strings.Count(line, ",") +
		strings.Count(line, "•") +
		strings.Count(line, "|") +
		strings.Count(line, "·")
	if separators < minListSeparators {
		return false
	}
	return !lib.MatchesDate(line)
}
