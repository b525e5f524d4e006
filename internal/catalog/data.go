package catalog

// builtinEntries is the default catalog shipped with the binary. A newer
// copy can be served from the catalog bucket and takes precedence at
// startup. Popularity drives the padding order when a profile matches too
// few entries.
var builtinEntries = []Entry{
	{
		ID: "eng-btech", Name: "Engineering (B.Tech)", Category: "course",
		TargetClass: "12", TargetStream: "science",
		Tags:        []string{"science", "maths", "physics", "technology", "engineering", "problem-solving", "computers"},
		Description: "Four-year undergraduate engineering degree; JEE Main/Advanced are the main entry routes.",
		Popularity:  98,
	},
	{
		ID: "med-mbbs", Name: "Medicine (MBBS)", Category: "course",
		TargetClass: "12", TargetStream: "science",
		Tags:        []string{"science", "biology", "medicine", "healthcare", "helping", "doctor"},
		Description: "Five-and-a-half-year medical degree; admission through NEET.",
		Popularity:  95,
	},
	{
		ID: "sci-bsc", Name: "B.Sc (Pure Sciences)", Category: "course",
		TargetClass: "12", TargetStream: "science",
		Tags:        []string{"science", "research", "physics", "chemistry", "maths", "biology", "academics"},
		Description: "Three-year science degree leading to research, teaching and analytics careers.",
		Popularity:  70,
	},
	{
		ID: "com-ca", Name: "Chartered Accountancy (CA)", Category: "course",
		TargetClass: "12", TargetStream: "commerce",
		Tags:        []string{"commerce", "accounting", "finance", "numbers", "business", "taxation"},
		Description: "Professional accountancy qualification administered by ICAI.",
		Popularity:  90,
	},
	{
		ID: "com-bcom", Name: "B.Com (Commerce)", Category: "course",
		TargetClass: "12", TargetStream: "commerce",
		Tags:        []string{"commerce", "business", "accounting", "economics", "banking", "finance"},
		Description: "Three-year commerce degree; common base for finance and management careers.",
		Popularity:  85,
	},
	{
		ID: "com-bba", Name: "BBA (Business Administration)", Category: "course",
		TargetClass: "12", TargetStream: "commerce",
		Tags:        []string{"commerce", "business", "management", "leadership", "marketing", "entrepreneurship"},
		Description: "Undergraduate management degree, typical route to an MBA.",
		Popularity:  78,
	},
	{
		ID: "art-ba", Name: "B.A (Humanities)", Category: "course",
		TargetClass: "12", TargetStream: "arts",
		Tags:        []string{"arts", "humanities", "history", "writing", "languages", "social", "reading"},
		Description: "Three-year humanities degree; foundation for civil services, media and academia.",
		Popularity:  75,
	},
	{
		ID: "art-design", Name: "Design (B.Des)", Category: "course",
		TargetClass: "12", TargetStream: "arts",
		Tags:        []string{"arts", "design", "creative", "drawing", "fashion", "visual"},
		Description: "Design degree; NID/NIFT/UCEED are the main entrance exams.",
		Popularity:  68,
	},
	{
		ID: "law-ballb", Name: "Law (BA LLB)", Category: "course",
		TargetClass: "12", TargetStream: "",
		Tags:        []string{"law", "debate", "reading", "justice", "arts", "writing", "reasoning"},
		Description: "Five-year integrated law degree; admission through CLAT.",
		Popularity:  72,
	},
	{
		ID: "def-nda", Name: "Defence (NDA)", Category: "course",
		TargetClass: "12", TargetStream: "",
		Tags:        []string{"defence", "discipline", "fitness", "leadership", "service", "outdoors"},
		Description: "National Defence Academy entry for the armed forces after class 12.",
		Popularity:  65,
	},
	{
		ID: "s10-science", Name: "Science Stream (PCM/PCB)", Category: "course",
		TargetClass: "10", TargetStream: "science",
		Tags:        []string{"science", "maths", "physics", "chemistry", "biology", "engineering", "medicine", "technology"},
		Description: "Class 11-12 science stream; keeps engineering and medical options open.",
		Popularity:  96,
	},
	{
		ID: "s10-commerce", Name: "Commerce Stream", Category: "course",
		TargetClass: "10", TargetStream: "commerce",
		Tags:        []string{"commerce", "business", "accounting", "economics", "numbers", "finance"},
		Description: "Class 11-12 commerce stream; base for CA, B.Com and management paths.",
		Popularity:  88,
	},
	{
		ID: "s10-arts", Name: "Arts / Humanities Stream", Category: "course",
		TargetClass: "10", TargetStream: "arts",
		Tags:        []string{"arts", "humanities", "writing", "history", "languages", "creative", "social"},
		Description: "Class 11-12 humanities stream; base for law, media, design and civil services.",
		Popularity:  80,
	},
	{
		ID: "s10-diploma", Name: "Polytechnic Diploma", Category: "course",
		TargetClass: "10", TargetStream: "",
		Tags:        []string{"technology", "engineering", "practical", "vocational", "hands-on"},
		Description: "Three-year technical diploma after class 10 with lateral entry to B.Tech.",
		Popularity:  60,
	},
	{
		ID: "s10-iti", Name: "ITI Trade Course", Category: "course",
		TargetClass: "10", TargetStream: "",
		Tags:        []string{"vocational", "practical", "trade", "hands-on", "electrician", "mechanic"},
		Description: "Industrial training institute courses for skilled trades after class 10.",
		Popularity:  50,
	},
	{
		ID: "col-iit", Name: "Indian Institutes of Technology (IITs)", Category: "college",
		TargetClass: "12", TargetStream: "science",
		Tags:        []string{"science", "engineering", "technology", "maths", "research", "delhi", "mumbai", "chennai"},
		Description: "Premier engineering institutes; admission through JEE Advanced.",
		Popularity:  97,
	},
	{
		ID: "col-aiims", Name: "AIIMS", Category: "college",
		TargetClass: "12", TargetStream: "science",
		Tags:        []string{"science", "biology", "medicine", "healthcare", "delhi", "research"},
		Description: "All India Institutes of Medical Sciences; admission through NEET.",
		Popularity:  93,
	},
	{
		ID: "col-srcc", Name: "SRCC, Delhi University", Category: "college",
		TargetClass: "12", TargetStream: "commerce",
		Tags:        []string{"commerce", "economics", "business", "delhi", "finance"},
		Description: "Shri Ram College of Commerce, the top commerce college under DU.",
		Popularity:  82,
	},
	{
		ID: "col-nlsiu", Name: "NLSIU Bangalore", Category: "college",
		TargetClass: "12", TargetStream: "",
		Tags:        []string{"law", "debate", "bangalore", "reasoning"},
		Description: "National Law School of India University; admission through CLAT.",
		Popularity:  66,
	},
	{
		ID: "col-nid", Name: "NID Ahmedabad", Category: "college",
		TargetClass: "12", TargetStream: "arts",
		Tags:        []string{"design", "creative", "arts", "ahmedabad", "visual"},
		Description: "National Institute of Design; admission through the NID DAT.",
		Popularity:  58,
	},
	{
		ID: "res-jee-guide", Name: "JEE Preparation Guide", Category: "resource",
		TargetClass: "both", TargetStream: "science",
		Tags:        []string{"science", "engineering", "maths", "exam", "preparation"},
		Description: "Subject-wise preparation plan and mock-test schedule for JEE.",
		Popularity:  76,
	},
	{
		ID: "res-neet-guide", Name: "NEET Preparation Guide", Category: "resource",
		TargetClass: "both", TargetStream: "science",
		Tags:        []string{"science", "biology", "medicine", "exam", "preparation"},
		Description: "Preparation roadmap for the national medical entrance exam.",
		Popularity:  74,
	},
	{
		ID: "res-scholarships", Name: "Scholarship Directory", Category: "resource",
		TargetClass: "both", TargetStream: "",
		Tags:        []string{"scholarship", "finance", "funding", "merit"},
		Description: "Central and state scholarships with eligibility and deadlines.",
		Popularity:  64,
	},
	{
		ID: "res-upsc-intro", Name: "Civil Services Primer", Category: "resource",
		TargetClass: "both", TargetStream: "arts",
		Tags:        []string{"arts", "humanities", "government", "upsc", "service", "reading"},
		Description: "Overview of the UPSC exam structure and optional subjects.",
		Popularity:  62,
	},
}
