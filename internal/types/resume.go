// Package types provides type definitions for structured data used throughout the resume parsing system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ResumeRecord is the structured result of parsing one résumé document.
// Every field is always present: a failed extraction yields empty strings
// and empty (non-nil) slices, never a partial or nil record.
type ResumeRecord struct {
	Basics         Basics               `json:"basics"`
	Work           []WorkEntry          `json:"work"`
	Education      []EducationEntry     `json:"education"`
	Skills         []SkillGroup         `json:"skills"`
	Projects       []ProjectEntry       `json:"projects"`
	Certifications []CertificationEntry `json:"certifications"`
}

// Basics holds contact information and the headline block of a résumé
type Basics struct {
	Name     string `json:"name"`
	Label    string `json:"label"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	URL      string `json:"url"`
	Location string `json:"location"`
	Summary  string `json:"summary"`
}

// WorkEntry represents one position in the work history
type WorkEntry struct {
	Position  string `json:"position"`
	Company   string `json:"company"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Summary   string `json:"summary"`
}

// EducationEntry represents one degree or program
type EducationEntry struct {
	Institution string `json:"institution"`
	StudyType   string `json:"studyType"`
	Area        string `json:"area"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Location    string `json:"location"`
}

// SkillGroup is one named category of skills. Groups are ordered as they
// appear in the document and are intentionally not deduplicated.
type SkillGroup struct {
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
}

// ProjectEntry represents one project with its technology keywords
type ProjectEntry struct {
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
	Summary  string   `json:"summary"`
}

// CertificationEntry represents one certification line. Issuer is carried
// for record-shape compatibility but is never inferred from text.
type CertificationEntry struct {
	Name   string `json:"name"`
	Date   string `json:"date"`
	Issuer string `json:"issuer"`
}

// NewResumeRecord returns a fully shaped empty record. All slices are
// allocated so the JSON form always contains every top-level field.
func NewResumeRecord() *ResumeRecord {
	return &ResumeRecord{
		Work:           []WorkEntry{},
		Education:      []EducationEntry{},
		Skills:         []SkillGroup{},
		Projects:       []ProjectEntry{},
		Certifications: []CertificationEntry{},
	}
}

// SampleRecord returns a populated record suitable for template previews
// when no document has been parsed yet.
func SampleRecord() *ResumeRecord {
	return &ResumeRecord{
		Basics: Basics{
			Name:     "Jordan Avery",
			Label:    "Software Engineer",
			Email:    "jordan.avery@example.com",
			Phone:    "(555) 010-7788",
			URL:      "https://linkedin.com/in/jordanavery",
			Location: "Austin, TX",
			Summary:  "Engineer with six years of experience building data-intensive backend services.",
		},
		Work: []WorkEntry{
			{
				Position:  "Senior Software Engineer",
				Company:   "Acme Analytics",
				StartDate: "Jan 2021",
				EndDate:   "Present",
				Summary:   "Lead development of the ingestion pipeline processing 40M events per day.",
			},
			{
				Position:  "Software Engineer",
				Company:   "Northwind Labs",
				StartDate: "Jun 2018",
				EndDate:   "Dec 2020",
				Summary:   "Built internal tooling for release automation and service observability.",
			},
		},
		Education: []EducationEntry{
			{
				Institution: "University of Texas",
				StudyType:   "Bachelor's",
				Area:        "Computer Science",
				StartDate:   "2014",
				EndDate:     "2018",
				Location:    "Austin, TX",
			},
		},
		Skills: []SkillGroup{
			{Name: "Programming Languages", Keywords: []string{"Go", "Python", "SQL"}},
			{Name: "Infrastructure", Keywords: []string{"Kubernetes", "Terraform", "AWS"}},
		},
		Projects: []ProjectEntry{
			{
				Name:     "Open Ledger",
				Keywords: []string{"Go", "PostgreSQL"},
				Summary:  "Double-entry bookkeeping library with pluggable storage backends.",
			},
		},
		Certifications: []CertificationEntry{
			{Name: "AWS Certified Solutions Architect", Date: "2022", Issuer: ""},
		},
	}
}
