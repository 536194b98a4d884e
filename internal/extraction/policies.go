package extraction

import (
	"strings"

	"github.com/SatvikPraveen/Resume-Template-Generator/internal/patterns"
)

// Options tunes extractor behavior. The zero value is the primary-tier
// configuration with the position/company swap policy enabled.
type Options struct {
	// Robust enables the fallback branches: indicator-based work entries
	// when no date anchors exist, and education entries with only one of
	// institution/degree present.
	Robust bool

	// DisableSwap turns off ShouldSwapPositionCompany. The swap heuristic
	// misfires on title-like company names ("Principal Solutions Group"),
	// so hosts can opt out.
	DisableSwap bool
}

// Tie-break policies extracted from the work-experience heuristics so each
// ambiguous rule is testable on its own.

// SplitPositionCompany applies the closest-line rule for block-style
// entries: a line containing a comma splits on the first comma into
// position and company; otherwise the whole line is the position and the
// company comes from the next-closest line (passed by the caller).
func SplitPositionCompany(line string) (position, company string) {
	if i := strings.Index(line, ","); i >= 0 {
		return strings.TrimSpace(line[:i]), strings.TrimSpace(line[i+1:])
	}
	return strings.TrimSpace(line), ""
}

// LooksLikeJobTitle reports whether the line carries a job-title indicator.
func LooksLikeJobTitle(line string, lib *patterns.Library) bool {
	return containsAny(line, lib.TitleIndicators())
}

// LooksLikeCompany reports whether the line carries a company-suffix
// indicator.
func LooksLikeCompany(line string, lib *patterns.Library) bool {
	return containsAny(line, lib.CompanyIndicators())
}

// ShouldSwapPositionCompany decides whether a position/company pair was
// assigned backwards: the company text reads like a title while the
// position text does not.
func ShouldSwapPositionCompany(position, company string, lib *patterns.Library, opts Options) bool {
	if opts.DisableSwap || position == "" || company == "" {
		return false
	}
	return LooksLikeJobTitle(company, lib) && !LooksLikeJobTitle(position, lib)
}
