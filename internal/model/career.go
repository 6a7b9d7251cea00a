package model

// CareerDetail is the static profile card behind a recommended career name
type CareerDetail struct {
	Name                string   `json:"name"`
	Skills              []string `json:"skills"`
	Outlook             string   `json:"outlook"`
	SalaryRange         string   `json:"salaryRange"`
	Description         string   `json:"description"`
	DailyTasks          []string `json:"dailyTasks,omitempty"`
	Education           string   `json:"education,omitempty"`
	GrowthOpportunities []string `json:"growthOpportunities,omitempty"`
}
