// Package segmentation slices normalized résumé text into named section
// bodies, either by matching header lines against the pattern library or,
// when no header can be found, by inferring regions from content signals.
package segmentation

import (
	"sort"
	"strings"

	"github.com/SatvikPraveen/Resume-Template-Generator/internal/patterns"
)

// HeaderMatch records one header occurrence found during segmentation.
// Matches are transient: once bodies are sliced they are discarded.
type HeaderMatch struct {
	Kind    patterns.Kind
	Keyword string
	Start   int
	Length  int
}

// dedupeWindow is the offset distance within which two header matches are
// considered the same physical header (several keywords can match the same
// line, e.g. "experience" and "work experience").
const dedupeWindow = 4

// Segment scans text for section headers from the library and returns a map
// of section kind to concatenated body text. Bodies of repeated headers of
// the same kind are joined in document order, separated by a blank line.
// An empty map means no header matched.
func Segment(text string, lib *patterns.Library) map[patterns.Kind]string {
	matches := findHeaders(text, lib)
	if len(matches) == 0 {
		return map[patterns.Kind]string{}
	}

	hasSkills := false
	for _, m := range matches {
		if m.Kind == patterns.KindSkills {
			hasSkills = true
			break
		}
	}

	sections := make(map[patterns.Kind]string, len(matches))
	for i, m := range matches {
		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1].Start
		}
		body := strings.TrimSpace(text[m.Start+m.Length : end])
		if body == "" {
			continue
		}

		kind := m.Kind
		if kind == patterns.KindLanguages {
			// Languages folds into skills only when no distinct skills
			// section exists. When one does, the header still bounds its
			// neighbors but its body is dropped.
			if hasSkills {
				continue
			}
			kind = patterns.KindSkills
		}

		if existing, ok := sections[kind]; ok {
			sections[kind] = existing + "\n\n" + body
		} else {
			sections[kind] = body
		}
	}

	return sections
}

// findHeaders collects, orders, and deduplicates header matches.
func findHeaders(text string, lib *patterns.Library) []HeaderMatch {
	var matches []HeaderMatch
	for _, sp := range lib.SectionPatterns() {
		for _, loc := range sp.Re.FindAllStringIndex(text, -1) {
			matches = append(matches, HeaderMatch{
				Kind:    sp.Kind,
				Keyword: sp.Keyword,
				Start:   loc[0],
				Length:  loc[1] - loc[0],
			})
		}
	}
	if len(matches) == 0 {
		return nil
	}

	// Stable order: by offset, longest match first on ties so the most
	// specific keyword wins the dedupe below; registration order breaks
	// remaining ties, favoring earlier catalog entries.
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Start != matches[j].Start {
			return matches[i].Start < matches[j].Start
		}
		return matches[i].Length > matches[j].Length
	})

	deduped := matches[:0]
	for _, m := range matches {
		if n := len(deduped); n > 0 && m.Start-deduped[n-1].Start < dedupeWindow {
			continue
		}
		deduped = append(deduped, m)
	}

	return deduped
}
