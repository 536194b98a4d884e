package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SatvikPraveen/Resume-Template-Generator/internal/patterns"
)

func TestExpandTwoDigitYear(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		expected string
	}{
		{"recent year expands to 2000s", "Jun 21", "Jun 2021"},
		{"older year expands to 1900s", "Jun 85", "Jun 1985"},
		{"pivot value stays in 2000s", "Jun 50", "Jun 2050"},
		{"just past pivot goes to 1900s", "Jun 51", "Jun 1951"},
		{"zero", "Jan 00", "Jan 2000"},
		{"ninety-nine", "Jan 99", "Jan 1999"},
		{"apostrophe form", "Jun '21", "Jun 2021"},
		{"four-digit year untouched", "Jan 2020", "Jan 2020"},
		{"bare four-digit year untouched", "2015", "2015"},
		{"no year at all", "Present", "Present"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExpandTwoDigitYear(tt.token))
		})
	}
}

func TestNormalizeDateToken(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		expected string
	}{
		{"collapses whitespace", "Jan   2020", "Jan 2020"},
		{"present marker", "present", "Present"},
		{"current marker", "CURRENT", "Present"},
		{"now marker", "now", "Present"},
		{"ongoing marker", "Ongoing", "Present"},
		{"expands short year", "Mar  '19", "Mar 2019"},
		{"empty", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeDateToken(tt.token))
		})
	}
}

func TestFindAnchors(t *testing.T) {
	lib := patterns.Primary()
	body := `Senior Developer, Acme Corp
Jan 2020 - Present
Built things.

Developer, Beta LLC
Jun 2017 - Dec 2019`

	anchors := findAnchors(body, lib.DateRange())
	require.Len(t, anchors, 2)

	assert.Equal(t, "Jan 2020", anchors[0].startToken)
	assert.Equal(t, "Present", anchors[0].endToken)
	assert.Equal(t, "Jun 2017", anchors[1].startToken)
	assert.Equal(t, "Dec 2019", anchors[1].endToken)
	assert.Less(t, anchors[0].start, anchors[1].start)
}

func TestFindAnchors_None(t *testing.T) {
	lib := patterns.Primary()
	assert.Empty(t, findAnchors("no dates in this body", lib.DateRange()))
}
