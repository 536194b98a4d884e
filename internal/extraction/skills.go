package extraction

import (
	"strings"

	"github.com/SatvikPraveen/Resume-Template-Generator/internal/types"
)

// defaultSkillCategory names the group for lines without an explicit
// category label.
const defaultSkillCategory = "Skills"

// ExtractSkills treats each non-empty line of the section as one category.
// "Name: a, b, c" lines keep their category name; bare lists land under the
// generic category. Categories are ordered and never merged.
func ExtractSkills(body string) []types.SkillGroup {
	groups := []types.SkillGroup{}
	for _, line := range strings.Split(body, "\n") {
		line = stripBullet(line)
		if line == "" {
			continue
		}

		name := defaultSkillCategory
		rest := line
		if i := strings.Index(line, ":"); i >= 0 {
			name = strings.TrimSpace(line[:i])
			rest = line[i+1:]
		}

		keywords := SplitKeywordList(rest)
		if len(keywords) == 0 {
			continue
		}
		groups = append(groups, types.SkillGroup{Name: name, Keywords: keywords})
	}
	return groups
}

// SplitKeywordList tokenizes a delimiter-separated list, treating commas and
// semicolons inside parentheses as content rather than separators.
// Separators outside parentheses: comma, semicolon, bullet, pipe.
func SplitKeywordList(s string) []string {
	tokens := []string{}
	var current strings.Builder
	depth := 0

	flush := func() {
		token := strings.TrimSpace(current.String())
		token = strings.Trim(token, "•·|")
		token = strings.TrimSpace(token)
		if token != "" {
			tokens = append(tokens, token)
		}
		current.Reset()
	}

	for _, r := range s {
		switch {
		case r == '(':
			depth++
			current.WriteRune(r)
		case r == ')':
			if depth > 0 {
				depth--
			}
			current.WriteRune(r)
		case depth == 0 && (r == ',' || r == ';' || r == '•' || r == '|' || r == '·'):
			flush()
		default:
			current.WriteRune(r)
		}
	}
	flush()

	return tokens
}
