package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SatvikPraveen/Resume-Template-Generator/internal/patterns"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `{
		"out": "parsed",
		"verbose": true,
		"concurrency": 8,
		"section_keywords": {"experience": ["berufserfahrung"]},
		"company_indicators": ["kabushiki"]
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "parsed", cfg.Out)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, 8, cfg.Concurrency)
	assert.Equal(t, []string{"berufserfahrung"}, cfg.SectionKeywords["experience"])
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = LoadConfig(writeConfig(t, "{not json"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"zero value", Config{}, false},
		{"valid concurrency", Config{Concurrency: 4}, false},
		{"concurrency too high", Config{Concurrency: 100}, true},
		{"negative concurrency", Config{Concurrency: -1}, true},
		{
			"unknown section kind",
			Config{SectionKeywords: map[string][]string{"hobbies": {"hobbies"}}},
			true,
		},
		{
			"empty keyword",
			Config{SectionKeywords: map[string][]string{"skills": {""}}},
			true,
		},
		{
			"valid patterns",
			Config{
				SectionKeywords: map[string][]string{"education": {"formation"}},
				DateFragments:   []string{`\d{4}`},
			},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSwapEnabled(t *testing.T) {
	assert.True(t, (&Config{}).SwapEnabled())

	off := false
	assert.False(t, (&Config{SwapTitleCompany: &off}).SwapEnabled())

	on := true
	assert.True(t, (&Config{SwapTitleCompany: &on}).SwapEnabled())
}

func TestApplyTo(t *testing.T) {
	cfg := &Config{
		SectionKeywords:   map[string][]string{"experience": {"berufserfahrung"}},
		DateFragments:     []string{`\d{4}年`},
		CompanyIndicators: []string{"kabushiki"},
		TitleIndicators:   []string{"wrangler"},
	}

	lib := patterns.Primary()
	require.NoError(t, cfg.ApplyTo(lib))

	assert.True(t, lib.MatchesDate("2020年"))
	assert.Contains(t, lib.CompanyIndicators(), "kabushiki")
	assert.Contains(t, lib.TitleIndicators(), "wrangler")

	var matched bool
	for _, p := range lib.SectionPatterns() {
		if p.Kind == patterns.KindExperience && p.Re.MatchString("BERUFSERFAHRUNG") {
			matched = true
		}
	}
	assert.True(t, matched)
}

func TestApplyTo_BadFragment(t *testing.T) {
	cfg := &Config{DateFragments: []string{`bad(`}}
	assert.Error(t, cfg.ApplyTo(patterns.Primary()))
}
