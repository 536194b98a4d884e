package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SatvikPraveen/Resume-Template-Generator/internal/patterns"
)

func TestExtractBasics_FullContactBlock(t *testing.T) {
	text := `Jordan Avery
Senior Software Engineer
Austin, TX
jordan.avery@example.com | (555) 010-7788
https://linkedin.com/in/jordanavery`

	sections := map[patterns.Kind]string{
		patterns.KindSummary: "Engineer with six years\nof backend experience.",
	}
	basics := ExtractBasics(text, sections, patterns.Primary())

	assert.Equal(t, "Jordan Avery", basics.Name)
	assert.Equal(t, "Senior Software Engineer", basics.Label)
	assert.Equal(t, "jordan.avery@example.com", basics.Email)
	assert.Equal(t, "(555) 010-7788", basics.Phone)
	assert.Equal(t, "https://linkedin.com/in/jordanavery", basics.URL)
	assert.Equal(t, "Austin, TX", basics.Location)
	assert.Equal(t, "Engineer with six years of backend experience.", basics.Summary)
}

func TestExtractBasics_NameBeforePipeSeparator(t *testing.T) {
	text := "Jordan Avery | jordan@example.com | 555-010-7788"

	basics := ExtractBasics(text, nil, patterns.Primary())

	assert.Equal(t, "Jordan Avery", basics.Name)
	assert.Equal(t, "jordan@example.com", basics.Email)
	assert.Equal(t, "555-010-7788", basics.Phone)
}

func TestExtractBasics_TrailingPhoneStrippedFromName(t *testing.T) {
	basics := ExtractBasics("Jordan Avery 555-010-7788", nil, patterns.Primary())
	assert.Equal(t, "Jordan Avery", basics.Name)
}

func TestExtractBasics_LabelSkipsContactLines(t *testing.T) {
	text := `Jordan Avery
jordan@example.com
(555) 010-7788
github.com/jordanavery
Austin, TX
Platform Engineer`

	basics := ExtractBasics(text, nil, patterns.Primary())

	assert.Equal(t, "Platform Engineer", basics.Label)
}

func TestExtractBasics_LabelSkipsDatedLines(t *testing.T) {
	text := `Jordan Avery
Jan 2020 - Present
Data Engineer`

	basics := ExtractBasics(text, nil, patterns.Primary())

	assert.Equal(t, "Data Engineer", basics.Label)
}

func TestExtractBasics_PhonePriorityOrder(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{"international", "call +1 512 555 0178 today", "+1 512 555 0178"},
		{"parenthesized area code", "(555) 010-7788", "(555) 010-7788"},
		{"dashed", "555-010-7788", "555-010-7788"},
		{"bare ten digits", "reach me at 5550107788", "5550107788"},
		{"none", "no phone here", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractPhone(tt.text))
		})
	}
}

func TestExtractBasics_URLPriorityOrder(t *testing.T) {
	assert.Equal(t, "https://example.com/about",
		firstMatch("see https://example.com/about and www.other.com", urlRes))
	assert.Equal(t, "www.other.com", firstMatch("visit www.other.com", urlRes))
	assert.Equal(t, "linkedin.com/in/javery", firstMatch("on linkedin.com/in/javery", urlRes))
	assert.Equal(t, "github.com/javery", firstMatch("code at github.com/javery", urlRes))
}

func TestExtractBasics_LocationRestrictedToContactBlock(t *testing.T) {
	text := "Jordan Avery\nAustin, TX\n" + pad(400) + "\nState University, Boston, MA"

	basics := ExtractBasics(text, nil, patterns.Primary())

	assert.Equal(t, "Austin, TX", basics.Location)
}

func TestExtractBasics_Empty(t *testing.T) {
	basics := ExtractBasics("", nil, patterns.Primary())
	assert.Empty(t, basics.Name)
	assert.Empty(t, basics.Email)
}

func pad(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = 'x'
	}
	return string(b)
}
