package extraction

import (
	"strings"

	"github.com/SatvikPraveen/Resume-Template-Generator/internal/patterns"
	"github.com/SatvikPraveen/Resume-Template-Generator/internal/types"
)

// headerLookback is how many non-bullet, non-empty lines above a date anchor
// are considered part of the entry header in block-style entries.
const headerLookback = 3

// ExtractWork parses the experience section body into work entries. Every
// date-range anchor opens one entry; when no anchor exists the primary tier
// returns nothing and the robust tier falls back to indicator-based entries.
func ExtractWork(body string, lib *patterns.Library, opts Options) []types.WorkEntry {
	entries := []types.WorkEntry{}
	if strings.TrimSpace(body) == "" {
		return entries
	}

	anchors := findAnchors(body, lib.DateRange())
	if len(anchors) == 0 {
		if opts.Robust {
			return extractWorkByIndicators(body, lib)
		}
		return entries
	}

	for i, a := range anchors {
		entry := types.WorkEntry{
			StartDate: NormalizeDateToken(a.startToken),
			EndDate:   NormalizeDateToken(a.endToken),
		}

		ls := lineStart(body, a.start)
		sameLine := stripBullet(strings.TrimSpace(body[ls:a.start]))
		sameLine = strings.Trim(sameLine, "•·▪‣*○ \t")
		if sameLine != "" {
			// Single-line entry: "• Senior Developer - Jan 2020 - Present".
			entry.Position = strings.TrimRight(sameLine, " -|,@")
		} else {
			header := headerLinesAbove(body, ls)
			if len(header) > 0 {
				closest := header[len(header)-1]
				position, company := SplitPositionCompany(closest)
				if company == "" && len(header) > 1 {
					company = strings.TrimSpace(header[len(header)-2])
				}
				if ShouldSwapPositionCompany(position, company, lib, opts) {
					position, company = company, position
				}
				entry.Position = position
				entry.Company = company
			}
		}

		descEnd := len(body)
		if i+1 < len(anchors) {
			descEnd = anchors[i+1].start
		}
		desc := body[a.end:descEnd]
		if i+1 < len(anchors) {
			desc = trimNextEntryHeader(desc)
		}
		entry.Summary = joinDescription(desc)

		entries = append(entries, entry)
	}

	return entries
}

// headerLinesAbove walks backward from the line boundary at offset ls,
// collecting up to headerLookback contiguous non-bullet, non-empty lines.
// The returned slice is in document order (closest line last).
func headerLinesAbove(body string, ls int) []string {
	var header []string
	pos := ls
	for len(header) < headerLookback && pos > 0 {
		prevStart := lineStart(body, pos-1)
		line := strings.TrimRight(body[prevStart:pos], "\n")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || isBulletLine(line) {
			break
		}
		header = append([]string{trimmed}, header...)
		pos = prevStart
	}
	return header
}

// trimNextEntryHeader removes the next entry's header lines from the tail of
// a description block: contiguous non-bullet lines at the end belong to the
// following entry, up to the nearest bullet line or blank-line gap.
func trimNextEntryHeader(desc string) string {
	lines := strings.Split(strings.TrimRight(desc, " \t\n"), "\n")
	end := len(lines)
	for end > 0 {
		line := lines[end-1]
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || isBulletLine(line) {
			break
		}
		end--
	}
	return strings.Join(lines[:end], "\n")
}

// extractWorkByIndicators is the robust-tier fallback for sections with no
// recognizable dates: any line carrying a company-suffix or job-title
// indicator opens a new entry, and following lines accumulate into its
// description.
func extractWorkByIndicators(body string, lib *patterns.Library) []types.WorkEntry {
	entries := []types.WorkEntry{}
	var current *types.WorkEntry
	var desc []string

	flush := func() {
		if current == nil {
			return
		}
		current.Summary = joinDescription(strings.Join(desc, "\n"))
		entries = append(entries, *current)
		current, desc = nil, nil
	}

	for _, line := range strings.Split(body, "\n") {
		trimmed := stripBullet(line)
		if trimmed == "" {
			continue
		}

		isCompany := LooksLikeCompany(trimmed, lib)
		isTitle := LooksLikeJobTitle(trimmed, lib)
		if !isCompany && !isTitle {
			if current != nil {
				desc = append(desc, trimmed)
			}
			continue
		}

		flush()
		entry := types.WorkEntry{}
		position, company := SplitPositionCompany(trimmed)
		switch {
		case company != "":
			entry.Position, entry.Company = position, company
		case isTitle:
			entry.Position = position
		default:
			entry.Company = position
		}
		current = &entry
	}
	flush()

	return entries
}
