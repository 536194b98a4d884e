package patterns

// Section keyword catalogs. The primary tier carries the headers seen on
// well-formed résumés; the robust tier layers broader variants on top.
// Catalogs are data, not control flow: the two tiers differ only in which
// table is loaded.

// kindOrder fixes catalog registration order so header tie-breaks are
// deterministic.
var kindOrder = []Kind{
	KindExperience, KindEducation, KindSkills, KindProjects,
	KindSummary, KindCertifications, KindLanguages,
}

var primarySectionKeywords = map[Kind][]string{
	KindExperience: {
		"experience",
		"work experience",
		"professional experience",
		"employment",
		"employment history",
		"work history",
	},
	KindEducation: {
		"education",
		"academic background",
		"academics",
	},
	KindSkills: {
		"skills",
		"technical skills",
		"core competencies",
		"technologies",
	},
	KindProjects: {
		"projects",
		"personal projects",
		"academic projects",
	},
	KindSummary: {
		"summary",
		"professional summary",
		"profile",
		"objective",
		"career objective",
	},
	KindCertifications: {
		"certifications",
		"certificates",
		"licenses",
	},
	KindLanguages: {
		"languages",
	},
}

var robustSectionKeywords = map[Kind][]string{
	KindExperience: {
		"career history",
		"internships",
		"relevant experience",
		"positions held",
	},
	KindEducation: {
		"qualifications",
		"education and training",
		"degrees",
	},
	KindSkills: {
		"competencies",
		"expertise",
		"areas of expertise",
		"technical proficiencies",
		"tools",
	},
	KindProjects: {
		"portfolio",
		"selected projects",
	},
	KindSummary: {
		"about me",
		"about",
		"career summary",
	},
	KindCertifications: {
		"certifications and licenses",
		"accreditations",
		"courses",
		"training",
	},
	KindLanguages: {
		"language skills",
	},
}

// monthExpr matches English month names and their common abbreviations.
const monthExpr = `(?:jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|jun(?:e)?|jul(?:y)?|aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)`

// Date-fragment alternatives. No capture groups: each expression becomes an
// alternative inside the compiled range pattern.
var primaryDateFragments = []string{
	// Month-year: "Jan 2020", "January, 2020", "Jun '21", "Jun 21"
	monthExpr + `\.?,?[ \t]*(?:\d{4}|'?\d{2})`,
	// Seasonal: "Spring 2019"
	`(?:spring|summer|fall|autumn|winter)[ \t]+\d{4}`,
	// Numeric month/year: "03/2020", "3/20"
	`\d{1,2}/(?:\d{4}|\d{2})`,
	// Year only
	`(?:19|20)\d{2}`,
}

var robustDateFragments = []string{
	// Numeric with dot or dash separators: "03.2020", "03-2020"
	`\d{1,2}[.-]\d{4}`,
	// Year ranges written without spaces are handled by the range pattern,
	// but some documents carry bare apostrophe years: "'18"
	`'\d{2}`,
}

// Company-suffix indicators used by the robust work-experience fallback and
// the position/company disambiguation policy.
var companySuffixes = []string{
	"inc", "inc.", "llc", "ltd", "ltd.", "corp", "corp.", "corporation",
	"company", "co.", "gmbh", "technologies", "solutions", "systems",
	"consulting", "labs", "group", "software", "studios",
}

var robustCompanySuffixes = []string{
	"agency", "partners", "ventures", "enterprises", "holdings",
	"industries", "services", "bank", "university",
}

// Job-title indicators used by the robust fallback and swap policy.
var jobTitleKeywords = []string{
	"engineer", "developer", "manager", "analyst", "director", "consultant",
	"designer", "architect", "scientist", "administrator", "specialist",
	"coordinator", "senior", "junior", "lead", "principal", "intern",
}

var robustJobTitleKeywords = []string{
	"officer", "associate", "assistant", "supervisor", "technician",
	"researcher", "head of", "vp", "vice president", "founder",
}

// Institution keywords used by the education extractor and fuzzy locator.
var institutionKeywords = []string{
	"university", "college", "institute", "school", "academy",
	"polytechnic", "conservatory",
}

// Degree keywords in match-priority order with canonical study types.
// A longer variant must precede its prefix ("master's" before "master")
// so the canonical label keeps the possessive form.
var degreeKeywords = []degreeKeyword{
	newDegreeKeyword("master's", "Master's"),
	newDegreeKeyword("masters", "Master's"),
	newDegreeKeyword("master", "Master's"),
	newDegreeKeyword("m.s.", "Master's"),
	newDegreeKeyword("m.sc", "Master's"),
	newDegreeKeyword("mba", "MBA"),
	newDegreeKeyword("bachelor's", "Bachelor's"),
	newDegreeKeyword("bachelors", "Bachelor's"),
	newDegreeKeyword("bachelor", "Bachelor's"),
	newDegreeKeyword("b.s.", "Bachelor's"),
	newDegreeKeyword("b.sc", "Bachelor's"),
	newDegreeKeyword("b.tech", "Bachelor's"),
	newDegreeKeyword("ph.d", "PhD"),
	newDegreeKeyword("phd", "PhD"),
	newDegreeKeyword("doctorate", "PhD"),
	newDegreeKeyword("associate", "Associate"),
	newDegreeKeyword("diploma", "Diploma"),
}
