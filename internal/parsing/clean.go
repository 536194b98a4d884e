package parsing

import (
	"regexp"
	"strings"

	"github.com/SatvikPraveen/Resume-Template-Generator/internal/types"
)

var cleanWhitespaceRe = regexp.MustCompile(`\s+`)

// artifactCorrections reassembles brand names that PDF text extraction
// splits across a hyphenated line break. Applied to company and position
// fields only. The table is keyed on the merged artifact as it appears
// after whitespace collapsing.
var artifactCorrections = map[string]string{
	"Sales- force":  "Salesforce",
	"Sales- Force":  "Salesforce",
	"Micro- soft":   "Microsoft",
	"Data- dog":     "Datadog",
	"Git- Hub":      "GitHub",
	"Link- edIn":    "LinkedIn",
	"Master- card":  "Mastercard",
	"Service- Now":  "ServiceNow",
	"Snow- flake":   "Snowflake",
	"Cloud- flare":  "Cloudflare",
	"Square- space": "Squarespace",
}

// CleanRecord applies the post-extraction normalization pass: whitespace
// collapsing on every free-text field and artifact corrections on company
// and position. It operates on a copy and is idempotent.
func CleanRecord(record *types.ResumeRecord) *types.ResumeRecord {
	if record == nil {
		return types.NewResumeRecord()
	}

	out := types.NewResumeRecord()

	out.Basics = types.Basics{
		Name:     cleanField(record.Basics.Name),
		Label:    cleanField(record.Basics.Label),
		Email:    cleanField(record.Basics.Email),
		Phone:    cleanField(record.Basics.Phone),
		URL:      cleanField(record.Basics.URL),
		Location: cleanField(record.Basics.Location),
		Summary:  cleanField(record.Basics.Summary),
	}

	for _, w := range record.Work {
		out.Work = append(out.Work, types.WorkEntry{
			Position:  correctArtifacts(cleanField(w.Position)),
			Company:   correctArtifacts(cleanField(w.Company)),
			StartDate: cleanField(w.StartDate),
			EndDate:   cleanField(w.EndDate),
			Summary:   cleanField(w.Summary),
		})
	}

	for _, e := range record.Education {
		out.Education = append(out.Education, types.EducationEntry{
			Institution: cleanField(e.Institution),
			StudyType:   cleanField(e.StudyType),
			Area:        cleanField(e.Area),
			StartDate:   cleanField(e.StartDate),
			EndDate:     cleanField(e.EndDate),
			Location:    cleanField(e.Location),
		})
	}

	for _, s := range record.Skills {
		out.Skills = append(out.Skills, types.SkillGroup{
			Name:     cleanField(s.Name),
			Keywords: cleanFields(s.Keywords),
		})
	}

	for _, p := range record.Projects {
		out.Projects = append(out.Projects, types.ProjectEntry{
			Name:     cleanField(p.Name),
			Keywords: cleanFields(p.Keywords),
			Summary:  cleanField(p.Summary),
		})
	}

	for _, c := range record.Certifications {
		out.Certifications = append(out.Certifications, types.CertificationEntry{
			Name:   cleanField(c.Name),
			Date:   cleanField(c.Date),
			Issuer: cleanField(c.Issuer),
		})
	}

	return out
}

func cleanField(s string) string {
	return strings.TrimSpace(cleanWhitespaceRe.ReplaceAllString(s, " "))
}

func cleanFields(ss []string) []string {
	out := []string{}
	for _, s := range ss {
		if cleaned := cleanField(s); cleaned != "" {
			out = append(out, cleaned)
		}
	}
	return out
}

func correctArtifacts(s string) string {
	for artifact, canonical := range artifactCorrections {
		s = strings.ReplaceAll(s, artifact, canonical)
	}
	return s
}
