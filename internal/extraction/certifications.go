package extraction

import (
	"strings"

	"github.com/SatvikPraveen/Resume-Template-Generator/internal/patterns"
	"github.com/SatvikPraveen/Resume-Template-Generator/internal/types"
)

// ExtractCertifications emits one entry per non-empty section line. A
// date-shaped token inside the line becomes the entry date, with the
// preceding text as the name. Issuer is never inferred.
func ExtractCertifications(body string, lib *patterns.Library) []types.CertificationEntry {
	entries := []types.CertificationEntry{}
	for _, line := range strings.Split(body, "\n") {
		line = stripBullet(line)
		if line == "" {
			continue
		}

		entry := types.CertificationEntry{Name: line}
		if token, start, _, ok := lib.FindDateFragment(line); ok {
			name := strings.TrimRight(strings.TrimSpace(line[:start]), " -|,(")
			if name != "" {
				entry.Name = name
			}
			entry.Date = NormalizeDateToken(token)
		}

		entries = append(entries, entry)
	}
	return entries
}
