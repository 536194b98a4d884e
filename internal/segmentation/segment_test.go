package segmentation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SatvikPraveen/Resume-Template-Generator/internal/patterns"
)

func TestSegment_BasicSections(t *testing.T) {
	text := `John Doe

SUMMARY
Backend engineer with eight years of experience in distributed systems.

EXPERIENCE
Senior Developer, Acme Corp
Jan 2020 - Present

EDUCATION
State University

SKILLS
Go, Python, SQL`

	sections := Segment(text, patterns.Primary())

	require.Len(t, sections, 4)
	assert.Contains(t, sections[patterns.KindSummary], "distributed systems")
	assert.Contains(t, sections[patterns.KindExperience], "Acme Corp")
	assert.Equal(t, "State University", sections[patterns.KindEducation])
	assert.Equal(t, "Go, Python, SQL", sections[patterns.KindSkills])
}

func TestSegment_NoHeaders(t *testing.T) {
	sections := Segment("Just a paragraph of plain prose with no headers.", patterns.Primary())
	assert.Empty(t, sections)
}

func TestSegment_RepeatedHeadersConcatenate(t *testing.T) {
	text := `PROFESSIONAL EXPERIENCE
Developer, First Corp
Jan 2020 - Dec 2021

EDUCATION
State University

PROFESSIONAL EXPERIENCE
Intern, Second Corp
Jun 2019 - Aug 2019`

	sections := Segment(text, patterns.Primary())

	exp := sections[patterns.KindExperience]
	assert.Contains(t, exp, "First Corp")
	assert.Contains(t, exp, "Second Corp")
	assert.Contains(t, exp, "\n\n")
	assert.Contains(t, sections[patterns.KindEducation], "State University")
	assert.NotContains(t, sections[patterns.KindEducation], "Second Corp")
}

func TestSegment_OverlappingKeywordsDeduped(t *testing.T) {
	// "WORK EXPERIENCE" matches both "experience" and "work experience";
	// the line must produce a single section, not a duplicated body.
	text := `WORK EXPERIENCE
Developer, Acme Corp
Jan 2020 - Present`

	sections := Segment(text, patterns.Primary())

	require.Contains(t, sections, patterns.KindExperience)
	assert.Len(t, sections, 1)
	assert.Equal(t, 1, strings.Count(sections[patterns.KindExperience], "Acme Corp"))
}

func TestSegment_LanguagesFoldsIntoSkills(t *testing.T) {
	text := `LANGUAGES
English, Spanish, German

EDUCATION
State University`

	sections := Segment(text, patterns.Primary())

	assert.Equal(t, "English, Spanish, German", sections[patterns.KindSkills])
	assert.NotContains(t, sections, patterns.KindLanguages)
}

func TestSegment_LanguagesDroppedWhenSkillsPresent(t *testing.T) {
	text := `SKILLS
Go, Python

LANGUAGES
English, Spanish

EDUCATION
State University`

	sections := Segment(text, patterns.Primary())

	// The languages body is dropped, but the header still bounds the
	// skills section above it.
	assert.Equal(t, "Go, Python", sections[patterns.KindSkills])
	assert.NotContains(t, sections[patterns.KindSkills], "Spanish")
	assert.Contains(t, sections[patterns.KindEducation], "State University")
}

func TestSegment_EmptyBodySkipped(t *testing.T) {
	text := `EXPERIENCE

EDUCATION
State University`

	sections := Segment(text, patterns.Primary())

	assert.NotContains(t, sections, patterns.KindExperience)
	assert.Contains(t, sections[patterns.KindEducation], "State University")
}

func TestSegment_LetterSpacedHeader(t *testing.T) {
	text := `E D U C A T I O N
State University, 2015 - 2019`

	sections := Segment(text, patterns.Primary())

	assert.Contains(t, sections[patterns.KindEducation], "State University")
}
