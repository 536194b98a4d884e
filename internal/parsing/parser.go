// Package parsing ties segmentation and extraction into the two-tier résumé
// parsing engine: a primary pass tuned for well-formed documents and a
// robust fallback pass with broader patterns and fuzzy segmentation.
package parsing

import (
	"github.com/SatvikPraveen/Resume-Template-Generator/internal/extraction"
	"github.com/SatvikPraveen/Resume-Template-Generator/internal/ingestion"
	"github.com/SatvikPraveen/Resume-Template-Generator/internal/patterns"
	"github.com/SatvikPraveen/Resume-Template-Generator/internal/segmentation"
	"github.com/SatvikPraveen/Resume-Template-Generator/internal/types"
)

// Parser is the extraction engine. It is immutable after construction and
// safe for concurrent use; every Parse call produces a fresh record.
type Parser struct {
	primary *patterns.Library
	robust  *patterns.Library
	opts    extraction.Options
}

// ParserOption customizes a Parser at construction time.
type ParserOption func(*Parser)

// WithLibraries replaces the default tier libraries, letting hosts append
// custom patterns before handing them over. Libraries must not be mutated
// after this point.
func WithLibraries(primary, robust *patterns.Library) ParserOption {
	return func(p *Parser) {
		p.primary = primary
		p.robust = robust
	}
}

// WithSwapPolicy enables or disables the position/company swap heuristic.
func WithSwapPolicy(enabled bool) ParserOption {
	return func(p *Parser) { p.opts.DisableSwap = !enabled }
}

// NewParser builds a Parser with default tier libraries.
func NewParser(opts ...ParserOption) *Parser {
	p := &Parser{
		primary: patterns.Primary(),
		robust:  patterns.Robust(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse converts raw résumé text into a structured record. It never fails:
// malformed or empty input degrades to an empty, fully shaped record. The
// returned tier reports which pass produced the record, as a diagnostic
// signal rather than an error.
func (p *Parser) Parse(text string) (*types.ResumeRecord, patterns.Tier) {
	normalized := ingestion.NormalizeText(text)

	record := p.runTier(normalized, p.primary, false)
	if HasStructuralContent(record) {
		return CleanRecord(record), patterns.TierPrimary
	}

	// The primary pass found nothing structural; re-run everything with
	// the expanded patterns, fuzzy segmentation, and fallback branches.
	// One tier's full output wins; results are never merged.
	record = p.runTier(normalized, p.robust, true)
	return CleanRecord(record), patterns.TierRobust
}

// runTier executes one complete segmentation + extraction pass.
func (p *Parser) runTier(text string, lib *patterns.Library, robust bool) *types.ResumeRecord {
	sections := segmentation.Segment(text, lib)
	if robust && len(sections) == 0 {
		sections = segmentation.FuzzyLocate(text, lib)
	}

	opts := p.opts
	opts.Robust = robust

	record := types.NewResumeRecord()
	record.Basics = extraction.ExtractBasics(text, sections, lib)

	if body, ok := sections[patterns.KindExperience]; ok {
		record.Work = extraction.ExtractWork(body, lib, opts)
	}
	if body, ok := sections[patterns.KindEducation]; ok {
		record.Education = extraction.ExtractEducation(body, lib, opts)
	}
	if body, ok := sections[patterns.KindSkills]; ok {
		record.Skills = extraction.ExtractSkills(body)
	}
	if body, ok := sections[patterns.KindProjects]; ok {
		record.Projects = extraction.ExtractProjects(body)
	}
	if body, ok := sections[patterns.KindCertifications]; ok {
		record.Certifications = extraction.ExtractCertifications(body, lib)
	}

	return record
}

// HasStructuralContent is the escalation predicate: a record counts as
// non-empty only when it carries work, education, skill, or project data.
// Contact info alone does not count as successful extraction.
func HasStructuralContent(record *types.ResumeRecord) bool {
	if record == nil {
		return false
	}
	return len(record.Work) > 0 ||
		len(record.Education) > 0 ||
		len(record.Skills) > 0 ||
		len(record.Projects) > 0
}
