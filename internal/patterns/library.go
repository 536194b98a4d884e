// Package patterns provides the read-only catalogs of section header
// keywords, date-fragment patterns, and indicator keyword lists used by
// segmentation and extraction. A Library is built once per tier, may be
// extended before first use, and is safe for concurrent reads afterward.
package patterns

import (
	"fmt"
	"regexp"
	"strings"
)

// Kind identifies a résumé section type.
type Kind string

// Section kinds recognized by the segmenter.
const (
	KindExperience     Kind = "experience"
	KindEducation      Kind = "education"
	KindSkills         Kind = "skills"
	KindProjects       Kind = "projects"
	KindSummary        Kind = "summary"
	KindCertifications Kind = "certifications"
	KindLanguages      Kind = "languages"
)

// Tier selects one complete pattern configuration. The engine runs the
// primary tier first and escalates to the robust tier only when the primary
// pass produced no structural content.
type Tier string

// Pattern tiers.
const (
	TierPrimary Tier = "primary"
	TierRobust  Tier = "robust"
)

// SectionPattern is one compiled header matcher for a (kind, keyword) pair.
type SectionPattern struct {
	Kind    Kind
	Keyword string
	Re      *regexp.Regexp
}

// Library holds one tier's pattern catalogs.
type Library struct {
	tier Tier

	sectionPatterns []SectionPattern

	dateFragments []*regexp.Regexp
	dateRange     *regexp.Regexp
	fragmentExprs []string
	endMarkers    []string

	companyIndicators   []string
	titleIndicators     []string
	institutionKeywords []string
	degreeKeywords      []degreeKeyword
}

type degreeKeyword struct {
	keyword   string
	studyType string
	re        *regexp.Regexp
}

func newDegreeKeyword(keyword, studyType string) degreeKeyword {
	return degreeKeyword{
		keyword:   keyword,
		studyType: studyType,
		re:        regexp.MustCompile(`(?i)` + regexp.QuoteMeta(keyword)),
	}
}

// Tier reports which tier this library was built for.
func (l *Library) Tier() Tier { return l.tier }

// Primary returns the pattern library tuned for well-formed résumés.
func Primary() *Library {
	l := &Library{tier: TierPrimary}

	for _, kind := range kindOrder {
		for _, kw := range primarySectionKeywords[kind] {
			l.AddSectionKeyword(kind, kw)
		}
	}

	l.endMarkers = []string{"present", "current"}
	for _, expr := range primaryDateFragments {
		l.mustAddDateFragment(expr)
	}

	l.companyIndicators = append(l.companyIndicators, companySuffixes...)
	l.titleIndicators = append(l.titleIndicators, jobTitleKeywords...)
	l.institutionKeywords = append(l.institutionKeywords, institutionKeywords...)
	l.degreeKeywords = append(l.degreeKeywords, degreeKeywords...)

	return l
}

// Robust returns the expanded pattern library used by the fallback tier.
// It is a superset of the primary library: broader keyword coverage and
// looser date notations.
func Robust() *Library {
	l := Primary()
	l.tier = TierRobust

	for _, kind := range kindOrder {
		for _, kw := range robustSectionKeywords[kind] {
			l.AddSectionKeyword(kind, kw)
		}
	}

	l.endMarkers = append(l.endMarkers, "now", "ongoing", "till date", "to date")
	for _, expr := range robustDateFragments {
		l.mustAddDateFragment(expr)
	}

	l.companyIndicators = append(l.companyIndicators, robustCompanySuffixes...)
	l.titleIndicators = append(l.titleIndicators, robustJobTitleKeywords...)

	return l
}

// AddSectionKeyword appends a header keyword for the given kind. The keyword
// is matched case-insensitively as a standalone or colon-terminated line,
// tolerating letter-spaced headers and up to three qualifying words before
// the keyword.
func (l *Library) AddSectionKeyword(kind Kind, keyword string) {
	keyword = strings.TrimSpace(strings.ToLower(keyword))
	if keyword == "" {
		return
	}
	l.sectionPatterns = append(l.sectionPatterns, SectionPattern{
		Kind:    kind,
		Keyword: keyword,
		Re:      compileHeaderPattern(keyword),
	})
}

// AddDateFragment appends a custom date-fragment expression. The expression
// must not contain capture groups; it becomes one alternative of the date
// range pattern. The standalone matcher requires the fragment to start the
// string or follow a non-digit, non-separator character, so the "2020" in
// "03.2020" does not count as a year on its own.
func (l *Library) AddDateFragment(expr string) error {
	if _, err := regexp.Compile(expr); err != nil {
		return fmt.Errorf("invalid date fragment %q: %w", expr, err)
	}
	l.fragmentExprs = append(l.fragmentExprs, expr)
	l.dateFragments = append(l.dateFragments, regexp.MustCompile(`(?i)(?:\A|[^0-9./-])(`+expr+`)`))
	l.recompileRange()
	return nil
}

func (l *Library) mustAddDateFragment(expr string) {
	if err := l.AddDateFragment(expr); err != nil {
		panic(err)
	}
}

// AddCompanyIndicator appends a company-suffix indicator word.
func (l *Library) AddCompanyIndicator(word string) {
	word = strings.TrimSpace(strings.ToLower(word))
	if word != "" {
		l.companyIndicators = append(l.companyIndicators, word)
	}
}

// AddTitleIndicator appends a job-title indicator word.
func (l *Library) AddTitleIndicator(word string) {
	word = strings.TrimSpace(strings.ToLower(word))
	if word != "" {
		l.titleIndicators = append(l.titleIndicators, word)
	}
}

// AddInstitutionKeyword appends an institution keyword used by the education
// extractor and the fuzzy locator.
func (l *Library) AddInstitutionKeyword(word string) {
	word = strings.TrimSpace(strings.ToLower(word))
	if word != "" {
		l.institutionKeywords = append(l.institutionKeywords, word)
	}
}

// SectionPatterns returns the compiled header matchers in registration order.
func (l *Library) SectionPatterns() []SectionPattern { return l.sectionPatterns }

// DateFragments returns the compiled standalone fragment patterns. Each
// pattern carries a leading boundary guard; the fragment itself is capture
// group 1.
func (l *Library) DateFragments() []*regexp.Regexp { return l.dateFragments }

// MatchesDate reports whether s contains any date fragment.
func (l *Library) MatchesDate(s string) bool {
	for _, re := range l.dateFragments {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}

// FindDateFragment returns the first date fragment found in s along with its
// byte offsets, or ok=false when none matches. When several fragments match,
// the earliest occurrence wins.
func (l *Library) FindDateFragment(s string) (token string, start, end int, ok bool) {
	start = -1
	for _, re := range l.dateFragments {
		loc := re.FindStringSubmatchIndex(s)
		if loc == nil {
			continue
		}
		// Group 1 is the fragment without its boundary guard.
		if start == -1 || loc[2] < start {
			start, end = loc[2], loc[3]
			token = s[start:end]
		}
	}
	return token, start, end, start != -1
}

// DateRange returns the compiled date-range pattern (start token, separator,
// end token or present marker). Group 1 captures the start token and group 2
// the end token.
func (l *Library) DateRange() *regexp.Regexp { return l.dateRange }

func (l *Library) recompileRange() {
	l.dateRange = compileRangePattern(l.fragmentExprs, l.endMarkers)
}

// CompanyIndicators returns the company-suffix indicator words.
func (l *Library) CompanyIndicators() []string { return l.companyIndicators }

// TitleIndicators returns the job-title indicator words.
func (l *Library) TitleIndicators() []string { return l.titleIndicators }

// InstitutionKeywords returns the institution keyword list.
func (l *Library) InstitutionKeywords() []string { return l.institutionKeywords }

// MatchDegree scans s for the highest-priority degree keyword, matching
// case-insensitively on the original bytes, and returns the canonical study
// type together with the byte offset just past the match.
func (l *Library) MatchDegree(s string) (studyType string, end int, ok bool) {
	for _, d := range l.degreeKeywords {
		if loc := d.re.FindStringIndex(s); loc != nil {
			return d.studyType, loc[1], true
		}
	}
	return "", 0, false
}

// DegreeTypes returns the degree keywords in match-priority order together
// with their canonical study-type labels.
func (l *Library) DegreeTypes() []struct{ Keyword, StudyType string } {
	out := make([]struct{ Keyword, StudyType string }, 0, len(l.degreeKeywords))
	for _, d := range l.degreeKeywords {
		out = append(out, struct{ Keyword, StudyType string }{d.keyword, d.studyType})
	}
	return out
}

// compileHeaderPattern builds the header matcher for one keyword. The
// keyword must fill its own line (optionally colon-terminated), may be
// letter-spaced ("E D U C A T I O N"), and may be preceded by up to three
// qualifying words ("PROFESSIONAL EXPERIENCE", "VOLUNTEERING EXPERIENCE").
func compileHeaderPattern(keyword string) *regexp.Regexp {
	words := strings.Fields(keyword)
	spaced := make([]string, 0, len(words))
	for _, w := range words {
		letters := make([]string, 0, len(w))
		for _, r := range w {
			letters = append(letters, regexp.QuoteMeta(string(r)))
		}
		spaced = append(spaced, strings.Join(letters, `[ \t]?`))
	}
	body := strings.Join(spaced, `[ \t]+`)
	expr := `(?mi)^[ \t]*(?:[a-z&/.'-]+[ \t]+){0,3}` + body + `[ \t]*:?[ \t]*$`
	return regexp.MustCompile(expr)
}

// compileRangePattern assembles the date-range matcher from the fragment
// alternatives and the present-style end markers.
func compileRangePattern(fragments, endMarkers []string) *regexp.Regexp {
	frag := "(?:" + strings.Join(fragments, "|") + ")"
	end := frag + "|" + strings.Join(endMarkers, "|")
	sep := `[ \t]*(?:-|–|—|to|through|until)[ \t]*`
	return regexp.MustCompile(`(?i)(` + frag + `)` + sep + `(` + end + `)`)
}
