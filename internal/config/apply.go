package config

import (
	"github.com/SatvikPraveen/Resume-Template-Generator/internal/patterns"
)

// ApplyTo appends the configured custom patterns to a tier library. Must be
// called before the library is handed to a Parser.
func (c *Config) ApplyTo(lib *patterns.Library) error {
	for kind, keywords := range c.SectionKeywords {
		for _, kw := range keywords {
			lib.AddSectionKeyword(patterns.Kind(kind), kw)
		}
	}
	for _, expr := range c.DateFragments {
		if err := lib.AddDateFragment(expr); err != nil {
			return err
		}
	}
	for _, word := range c.CompanyIndicators {
		lib.AddCompanyIndicator(word)
	}
	for _, word := range c.TitleIndicators {
		lib.AddTitleIndicator(word)
	}
	return nil
}
