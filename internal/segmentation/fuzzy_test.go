package segmentation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SatvikPraveen/Resume-Template-Generator/internal/patterns"
)

func TestFuzzyLocate_DateLinesBecomeExperience(t *testing.T) {
	text := `Jane Smith
Senior Developer at Acme Corp
Jan 2020 - Present
Built internal tooling for the platform team`

	sections := FuzzyLocate(text, patterns.Robust())

	exp := sections[patterns.KindExperience]
	assert.Contains(t, exp, "Jan 2020 - Present")
	assert.Contains(t, exp, "Senior Developer at Acme Corp")
	assert.Contains(t, exp, "Built internal tooling")
}

func TestFuzzyLocate_EducationSignals(t *testing.T) {
	text := `Jane Smith
State University
Bachelor of Science in Physics
Graduated with honors`

	sections := FuzzyLocate(text, patterns.Robust())

	edu := sections[patterns.KindEducation]
	assert.Contains(t, edu, "State University")
	assert.Contains(t, edu, "Bachelor of Science")
}

func TestFuzzyLocate_ListShapedLinesBecomeSkills(t *testing.T) {
	text := `Jane Smith
Go, Python, SQL, Docker, Kubernetes
A longer paragraph that describes her background in plain prose and
carries no separators at all`

	sections := FuzzyLocate(text, patterns.Robust())

	assert.Contains(t, sections[patterns.KindSkills], "Go, Python, SQL")
}

func TestFuzzyLocate_LongSeparatorHeavyLineIsNotSkills(t *testing.T) {
	long := "In this role she coordinated planning, execution, delivery, and retrospectives across four product teams, while also mentoring junior engineers"
	sections := FuzzyLocate("Jane Smith\n"+long, patterns.Robust())

	assert.NotContains(t, sections, patterns.KindSkills)
}

func TestFuzzyLocate_DatedLineIsNotSkills(t *testing.T) {
	sections := FuzzyLocate("Jane Smith\nAcme, Beta, Jan 2020", patterns.Robust())

	assert.NotContains(t, sections, patterns.KindSkills)
	assert.Contains(t, sections, patterns.KindExperience)
}

func TestFuzzyLocate_Empty(t *testing.T) {
	assert.Empty(t, FuzzyLocate("", patterns.Robust()))
	assert.Empty(t, FuzzyLocate("  \n \n ", patterns.Robust()))
}

func TestFuzzyLocate_NoSignals(t *testing.T) {
	sections := FuzzyLocate("A short note about nothing in particular", patterns.Robust())
	assert.Empty(t, sections)
}
