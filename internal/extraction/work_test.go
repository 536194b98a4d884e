package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SatvikPraveen/Resume-Template-Generator/internal/patterns"
)

func TestExtractWork_BlockEntries(t *testing.T) {
	body := `Senior Developer, Acme Corp
Jan 2020 - Present
• Built the data pipeline
• Mentored junior engineers

Developer, Beta LLC
Jun 2017 - Dec 2019
• Maintained the monolith`

	entries := ExtractWork(body, patterns.Primary(), Options{})
	require.Len(t, entries, 2)

	first := entries[0]
	assert.Equal(t, "Senior Developer", first.Position)
	assert.Equal(t, "Acme Corp", first.Company)
	assert.Equal(t, "Jan 2020", first.StartDate)
	assert.Equal(t, "Present", first.EndDate)
	assert.Equal(t, "Built the data pipeline Mentored junior engineers", first.Summary)

	second := entries[1]
	assert.Equal(t, "Developer", second.Position)
	assert.Equal(t, "Beta LLC", second.Company)
	assert.Equal(t, "Jun 2017", second.StartDate)
	assert.Equal(t, "Dec 2019", second.EndDate)
	assert.Equal(t, "Maintained the monolith", second.Summary)
}

func TestExtractWork_NextEntryHeaderNotInSummary(t *testing.T) {
	body := `Developer, First Corp
Jan 2020 - Dec 2021
• Shipped the feature
Intern, Second Corp
Jun 2019 - Aug 2019`

	entries := ExtractWork(body, patterns.Primary(), Options{})
	require.Len(t, entries, 2)

	assert.Equal(t, "Shipped the feature", entries[0].Summary)
	assert.Equal(t, "Intern", entries[1].Position)
	assert.Equal(t, "Second Corp", entries[1].Company)
}

func TestExtractWork_SameLineEntry(t *testing.T) {
	body := `• Senior Developer - Jan 2020 - Present
Responsible for platform reliability`

	entries := ExtractWork(body, patterns.Primary(), Options{})
	require.Len(t, entries, 1)

	assert.Equal(t, "Senior Developer", entries[0].Position)
	assert.Empty(t, entries[0].Company)
	assert.Equal(t, "Jan 2020", entries[0].StartDate)
	assert.Equal(t, "Present", entries[0].EndDate)
	assert.Equal(t, "Responsible for platform reliability", entries[0].Summary)
}

func TestExtractWork_CompanyOnSeparateLine(t *testing.T) {
	body := `Acme Corp
Senior Developer
Jan 2020 - Present`

	entries := ExtractWork(body, patterns.Primary(), Options{})
	require.Len(t, entries, 1)

	assert.Equal(t, "Senior Developer", entries[0].Position)
	assert.Equal(t, "Acme Corp", entries[0].Company)
}

func TestExtractWork_SwapsReversedPair(t *testing.T) {
	body := `Acme Corp, Senior Developer
Jan 2020 - Present`

	entries := ExtractWork(body, patterns.Primary(), Options{})
	require.Len(t, entries, 1)
	assert.Equal(t, "Senior Developer", entries[0].Position)
	assert.Equal(t, "Acme Corp", entries[0].Company)

	entries = ExtractWork(body, patterns.Primary(), Options{DisableSwap: true})
	require.Len(t, entries, 1)
	assert.Equal(t, "Acme Corp", entries[0].Position)
	assert.Equal(t, "Senior Developer", entries[0].Company)
}

func TestExtractWork_TwoDigitYearsExpand(t *testing.T) {
	body := `Developer, Acme Corp
Jun 18 - Dec 19`

	entries := ExtractWork(body, patterns.Primary(), Options{})
	require.Len(t, entries, 1)
	assert.Equal(t, "Jun 2018", entries[0].StartDate)
	assert.Equal(t, "Dec 2019", entries[0].EndDate)
}

func TestExtractWork_NoAnchorsPrimary(t *testing.T) {
	body := "Acme Technologies\nLed rearchitecture of the billing stack"

	entries := ExtractWork(body, patterns.Primary(), Options{})
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestExtractWork_IndicatorFallback(t *testing.T) {
	body := `Acme Technologies
Rebuilt the billing stack from scratch
Senior Developer, Beta Systems
Shipped the new mobile app`

	entries := ExtractWork(body, patterns.Robust(), Options{Robust: true})
	require.Len(t, entries, 2)

	assert.Equal(t, "Acme Technologies", entries[0].Company)
	assert.Empty(t, entries[0].Position)
	assert.Equal(t, "Rebuilt the billing stack from scratch", entries[0].Summary)

	assert.Equal(t, "Senior Developer", entries[1].Position)
	assert.Equal(t, "Beta Systems", entries[1].Company)
	assert.Equal(t, "Shipped the new mobile app", entries[1].Summary)
}

func TestExtractWork_EmptyBody(t *testing.T) {
	entries := ExtractWork("   \n  ", patterns.Primary(), Options{})
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}
