package models

// Community is an interest group alumni can join.
type Community struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Members     int    `json:"members"`
	Joined      bool   `json:"joined"`
}
