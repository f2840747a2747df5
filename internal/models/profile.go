package models

// Profile represents an alumni directory entry.
type Profile struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	Role           string           `json:"role"`
	Company        *string          `json:"company,omitempty"`
	Location       *string          `json:"location,omitempty"`
	GraduationYear int              `json:"graduation_year"`
	Department     string           `json:"department"`
	Skills         []string         `json:"skills"`
	Connection     ConnectionStatus `json:"connection"`
	// Industry is the sector tag resolved when the records were loaded.
	// Nil means the company has not been tagged.
	Industry     *string       `json:"industry,omitempty"`
	About        string        `json:"about,omitempty"`
	Experience   []Experience  `json:"experience,omitempty"`
	Education    []Education   `json:"education,omitempty"`
	Achievements []Achievement `json:"achievements,omitempty"`
}

// Experience is one position on a profile. EndDate is blank while Current.
type Experience struct {
	Role        string `json:"role"`
	Company     string `json:"company"`
	Location    string `json:"location,omitempty"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date,omitempty"`
	Current     bool   `json:"current"`
	Description string `json:"description,omitempty"`
}

type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Department  string `json:"department"`
	Year        string `json:"year"`
	Description string `json:"description,omitempty"`
}

type Achievement struct {
	Title       string `json:"title"`
	Year        string `json:"year"`
	Description string `json:"description,omitempty"`
}
