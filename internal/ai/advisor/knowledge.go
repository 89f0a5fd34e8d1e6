package advisor

// Static reference data backing the local advisor. Treated as
// configuration rather than logic; extend the tables, not the dispatch.

type industryInfo struct {
	Name    string
	Outlook string
	Roles   []string
}

var industries = []industryInfo{
	{
		Name:    "Information Technology",
		Outlook: "Strong hiring for cloud, data and AI roles across service and product companies",
		Roles:   []string{"Software Developer", "Data Analyst", "Cloud Engineer", "QA Engineer"},
	},
	{
		Name:    "Healthcare & Life Sciences",
		Outlook: "Steady growth in hospitals, diagnostics, pharma and health-tech startups",
		Roles:   []string{"Clinical Research Associate", "Medical Coder", "Hospital Administrator", "Pharmacovigilance Analyst"},
	},
	{
		Name:    "Banking & Financial Services",
		Outlook: "Digital banking and fintech expansion keep demand high for analytical profiles",
		Roles:   []string{"Credit Analyst", "Relationship Manager", "Risk Analyst", "Fintech Product Associate"},
	},
	{
		Name:    "E-commerce & Retail",
		Outlook: "Tier-2/3 market expansion is adding operations, logistics and category roles",
		Roles:   []string{"Category Manager", "Supply Chain Analyst", "Growth Marketer", "Operations Lead"},
	},
	{
		Name:    "Manufacturing & Core Engineering",
		Outlook: "Make-in-India push and EV manufacturing are reviving core engineering hiring",
		Roles:   []string{"Production Engineer", "Quality Engineer", "Maintenance Engineer", "Design Engineer"},
	},
}

type skillTrack struct {
	Name   string
	Skills []string
}

var skillTracks = []skillTrack{
	{
		Name:   "Technical",
		Skills: []string{"Programming (Python/Java/JavaScript)", "Data analysis & SQL", "Cloud fundamentals (AWS/Azure/GCP)", "Version control with Git"},
	},
	{
		Name:   "Communication",
		Skills: []string{"Written business communication", "Presentation & public speaking", "Interview storytelling", "Email and documentation etiquette"},
	},
	{
		Name:   "Professional",
		Skills: []string{"Problem solving & structured thinking", "Time management", "Teamwork & stakeholder handling", "Basic project management"},
	},
}

type streamOption struct {
	Stream string
	Paths  []string
}

var streamsAfter12th = []streamOption{
	{
		Stream: "Science (PCM)",
		Paths:  []string{"Engineering (B.Tech/B.E. via JEE)", "B.Sc. + research or data careers", "Architecture (B.Arch via NATA)", "Defence (NDA)"},
	},
	{
		Stream: "Science (PCB)",
		Paths:  []string{"Medicine (MBBS/BDS via NEET)", "Pharmacy (B.Pharm)", "Biotechnology & life sciences", "Nursing and allied health"},
	},
	{
		Stream: "Commerce",
		Paths:  []string{"CA / CS / CMA professional tracks", "B.Com + MBA route", "Banking and finance (BBA/BMS)", "Economics honours"},
	},
	{
		Stream: "Arts / Humanities",
		Paths:  []string{"Law (5-year integrated via CLAT)", "Design (NID/NIFT)", "Journalism & mass communication", "Civil services foundation (any degree)"},
	},
}

type examGuide struct {
	Key         string
	FullName    string
	Pattern     string
	Preparation []string
	Alternative string
}

var examGuides = map[string]examGuide{
	"jee": {
		Key:      "JEE",
		FullName: "Joint Entrance Examination (Main + Advanced)",
		Pattern:  "Physics, Chemistry and Mathematics; JEE Main qualifies for NITs and for JEE Advanced (IITs)",
		Preparation: []string{
			"Finish the NCERT syllabus first, then move to advanced problem sets",
			"Take one full mock test per week and review every mistake",
			"Track the January and April Main sessions and plan attempts",
		},
		Alternative: "BITSAT, state CETs and private university exams accept similar preparation",
	},
	"neet": {
		Key:      "NEET",
		FullName: "National Eligibility cum Entrance Test",
		Pattern:  "Physics, Chemistry and Biology; single national exam for MBBS/BDS/AYUSH seats",
		Preparation: []string{
			"NCERT Biology is the backbone - revise it multiple times",
			"Practice previous-year papers under timed conditions",
			"Keep a formula and diagram notebook for quick revision",
		},
		Alternative: "B.Pharm, B.Sc. nursing and allied health courses are strong backups",
	},
	"cat": {
		Key:      "CAT",
		FullName: "Common Admission Test",
		Pattern:  "VARC, DILR and Quantitative Ability; gateway to IIMs and most top B-schools",
		Preparation: []string{
			"Build reading speed with daily editorial reading",
			"Drill DILR sets - selection of sets matters as much as solving",
			"Join a test series early; percentile feedback drives the plan",
		},
		Alternative: "XAT, SNAP, NMAT and CMAT cover a wide band of B-schools",
	},
	"upsc": {
		Key:      "UPSC",
		FullName: "UPSC Civil Services Examination",
		Pattern:  "Prelims (objective), Mains (written) and Interview; any graduate can appear",
		Preparation: []string{
			"Read one national newspaper daily and maintain current-affairs notes",
			"Finish NCERT foundations before standard reference books",
			"Answer-writing practice for Mains should start months before the exam",
		},
		Alternative: "State PSC exams follow a similar pattern with a smaller syllabus",
	},
}

type govCategory struct {
	Category string
	Exams    []string
}

var governmentCategories = []govCategory{
	{Category: "Civil Services", Exams: []string{"UPSC CSE", "State PSC"}},
	{Category: "Banking", Exams: []string{"IBPS PO/Clerk", "SBI PO", "RBI Grade B"}},
	{Category: "Staff Selection", Exams: []string{"SSC CGL", "SSC CHSL"}},
	{Category: "Railways", Exams: []string{"RRB NTPC", "RRB Group D"}},
	{Category: "Defence", Exams: []string{"NDA", "CDS", "AFCAT"}},
	{Category: "Public Sector Units", Exams: []string{"GATE-based PSU recruitment", "Company-specific exams"}},
}
