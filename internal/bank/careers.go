package bank

import "careercompass/internal/model"

// CareerMapping associates each scoring category with its candidate careers.
// Order within a list is priority order and feeds recommendation output.
var CareerMapping = map[string][]string{
	"Linguistic":                   {"Journalism", "Content Writing", "Law", "Public Relations", "Teaching", "Translation", "Literary Critic"},
	"Logical-Mathematical":         {"Data Science", "Engineering", "Finance", "Research", "Software Development", "Actuarial Science", "Systems Analysis"},
	"Visual-Spatial":               {"Graphic Design", "Architecture", "UX Design", "Animation", "Cartography", "Interior Design", "Photography"},
	"Interpersonal":                {"Human Resources", "Psychology", "Social Work", "Marketing", "Counseling", "Team Leadership", "Customer Relations"},
	"Intrapersonal":                {"Entrepreneur", "Researcher", "Philosopher", "Author", "Career Consultant", "Life Coach", "Independent Contractor"},
	"Naturalistic":                 {"Environmental Science", "Forestry", "Agriculture", "Wildlife Conservation", "Geology", "Marine Biology", "Park Ranger"},
	"MBTI":                         {"Management", "Consulting", "Strategic Planning"},
	"Big Five - Openness":          {"Creative Arts", "Innovation", "Research & Development"},
	"Big Five - Conscientiousness": {"Project Management", "Quality Assurance", "Operations"},
	"Big Five - Extraversion":      {"Sales", "Marketing", "Public Relations", "Event Planning"},
	"Numerical Aptitude":           {"Accounting", "Financial Analysis", "Statistics", "Economics"},
	"Verbal Aptitude":              {"Writing", "Editing", "Communications", "Public Speaking"},
	"Technical Skills":             {"Software Engineering", "IT Support", "Cybersecurity", "Technical Writing"},
	"Educational Background":       {"Teaching", "Training & Development", "Educational Administration"},
	"Career Exposure":              {"Career Counseling", "Recruitment", "Talent Development"},
	"Interests and Passions":       {"Creative Industries", "Entertainment", "Media"},
	"Personal Goals and Values":    {"Nonprofit Work", "Social Impact", "Sustainable Business"},
}

// CareerDetails carries the profile cards shown with a recommendation.
// Careers without an entry render with name only.
var CareerDetails = map[string]model.CareerDetail{
	"Data Science": {
		Name:                "Data Science",
		Skills:              []string{"Python", "Statistics", "Machine Learning", "SQL"},
		Outlook:             "Excellent - 35% growth expected",
		SalaryRange:         "$95k - $165k",
		Description:         "Analyze complex data to help organizations make informed decisions",
		DailyTasks:          []string{"Clean and analyze datasets", "Build predictive models", "Create data visualizations", "Present insights to stakeholders"},
		Education:           "Bachelor's in Statistics, Computer Science, or related field",
		GrowthOpportunities: []string{"Senior Data Scientist", "Data Science Manager", "Chief Data Officer"},
	},
	"Software Development": {
		Name:                "Software Development",
		Skills:              []string{"Programming", "Problem-solving", "Version Control", "Testing"},
		Outlook:             "Very Good - 25% growth expected",
		SalaryRange:         "$85k - $150k",
		Description:         "Design, develop, and maintain software applications and systems",
		DailyTasks:          []string{"Write and review code", "Debug applications", "Collaborate with team members", "Design system architecture"},
		Education:           "Bachelor's in Computer Science or equivalent experience",
		GrowthOpportunities: []string{"Senior Developer", "Tech Lead", "Engineering Manager", "CTO"},
	},
	"UX Design": {
		Name:                "UX Design",
		Skills:              []string{"Design Thinking", "Prototyping", "User Research", "Visual Design"},
		Outlook:             "Good - 13% growth expected",
		SalaryRange:         "$75k - $125k",
		Description:         "Create intuitive and engaging user experiences for digital products",
		DailyTasks:          []string{"Conduct user research", "Create wireframes and prototypes", "Design user interfaces", "Test usability"},
		Education:           "Bachelor's in Design, Psychology, or related field",
		GrowthOpportunities: []string{"Senior UX Designer", "UX Manager", "Design Director"},
	},
	"Teaching": {
		Name:                "Teaching",
		Skills:              []string{"Communication", "Patience", "Subject Expertise", "Classroom Management"},
		Outlook:             "Stable - 8% growth expected",
		SalaryRange:         "$45k - $75k",
		Description:         "Educate and inspire the next generation of learners",
		DailyTasks:          []string{"Plan and deliver lessons", "Grade assignments", "Meet with parents", "Professional development"},
		Education:           "Bachelor's degree plus teaching certification",
		GrowthOpportunities: []string{"Department Head", "Principal", "Curriculum Specialist"},
	},
	"Journalism": {
		Name:                "Journalism",
		Skills:              []string{"Writing", "Research", "Interviewing", "Digital Media"},
		Outlook:             "Declining - 3% decrease expected",
		SalaryRange:         "$40k - $85k",
		Description:         "Investigate, research, and report on news and current events",
		DailyTasks:          []string{"Research stories", "Conduct interviews", "Write articles", "Meet deadlines"},
		Education:           "Bachelor's in Journalism, Communications, or related field",
		GrowthOpportunities: []string{"Senior Reporter", "Editor", "News Director"},
	},
	"Marketing": {
		Name:                "Marketing",
		Skills:              []string{"Communication", "Analytics", "Creativity", "Digital Marketing"},
		Outlook:             "Good - 10% growth expected",
		SalaryRange:         "$50k - $95k",
		Description:         "Develop and execute marketing strategies to promote products and services",
		DailyTasks:          []string{"Create marketing campaigns", "Analyze market trends", "Manage social media", "Coordinate with teams"},
		Education:           "Bachelor's in Marketing, Business, or related field",
		GrowthOpportunities: []string{"Marketing Manager", "Brand Director", "CMO"},
	},
	"Psychology": {
		Name:                "Psychology",
		Skills:              []string{"Active Listening", "Empathy", "Research", "Critical Thinking"},
		Outlook:             "Good - 8% growth expected",
		SalaryRange:         "$60k - $120k",
		Description:         "Help individuals understand and overcome mental health challenges",
		DailyTasks:          []string{"Conduct therapy sessions", "Assess mental health", "Develop treatment plans", "Maintain records"},
		Education:           "Master's or Doctoral degree in Psychology",
		GrowthOpportunities: []string{"Clinical Supervisor", "Private Practice Owner", "Research Director"},
	},
}

// CareersForCategory returns the candidate career list for a category.
func CareersForCategory(category string) []string {
	return CareerMapping[category]
}

// CareerDetail returns the profile card for a career name, if one exists.
func CareerDetail(name string) (model.CareerDetail, bool) {
	d, ok := CareerDetails[name]
	return d, ok
}
