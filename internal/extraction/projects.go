package extraction

import (
	"regexp"

	"github.com/SatvikPraveen/Resume-Template-Generator/internal/types"
)

// Project headers are a capitalized name, a pipe, and a same-line technology
// list: "Shopping System | React, Node.js".
var projectHeaderRe = regexp.MustCompile(`(?m)^[ \t]*([A-Z][^|\n]*?)[ \t]*\|[ \t]*([^\n]+)$`)

var bulletCharRe = regexp.MustCompile(`[•·▪‣]`)

// ExtractProjects parses project headers and their descriptions from the
// section body. A project is kept only when it has a name and at least one
// of keywords or description.
func ExtractProjects(body string) []types.ProjectEntry {
	projects := []types.ProjectEntry{}
	matches := projectHeaderRe.FindAllStringSubmatchIndex(body, -1)

	for i, m := range matches {
		name := collapseWhitespace(body[m[2]:m[3]])
		tail := body[m[4]:m[5]]

		// A bullet inside the header tail splits technologies from the
		// start of the description.
		var descHead string
		if loc := bulletCharRe.FindStringIndex(tail); loc != nil {
			descHead = tail[loc[0]:]
			tail = tail[:loc[0]]
		}

		keywords := SplitKeywordList(tail)

		descEnd := len(body)
		if i+1 < len(matches) {
			descEnd = matches[i+1][0]
		}
		desc := joinDescription(descHead + "\n" + body[m[1]:descEnd])

		if name == "" || (len(keywords) == 0 && desc == "") {
			continue
		}
		projects = append(projects, types.ProjectEntry{
			Name:     name,
			Keywords: keywords,
			Summary:  desc,
		})
	}

	return projects
}
