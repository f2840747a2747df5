package models

import "time"

// JobPosting represents a position shared on the job board.
type JobPosting struct {
	ID               string         `json:"id"`
	Title            string         `json:"title"`
	Company          string         `json:"company"`
	Location         string         `json:"location"`
	Salary           *string        `json:"salary,omitempty"`
	EmploymentType   EmploymentType `json:"employment_type"`
	ExperienceLevel  *string        `json:"experience_level,omitempty"`
	PostDate         time.Time      `json:"post_date"`
	Deadline         *time.Time     `json:"deadline,omitempty"`
	Description      string         `json:"description"`
	Skills           []string       `json:"skills"`
	Responsibilities []string       `json:"responsibilities,omitempty"`
	Requirements     []string       `json:"requirements,omitempty"`
	Benefits         []string       `json:"benefits,omitempty"`
	PostedByID       string         `json:"posted_by_id"`
	PostedByName     string         `json:"posted_by_name"`
	Applied          bool           `json:"applied"`
	Saved            bool           `json:"saved"`
}
