package storage

import (
	_ "embed"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ranjitdasofficial/kiit-connect-circle/internal/models"
)

//go:embed seed.yaml
var defaultSeed []byte

type seedFile struct {
	Profiles      []seedProfile      `yaml:"profiles"`
	Jobs          []seedJob          `yaml:"jobs"`
	Events        []seedEvent        `yaml:"events"`
	Communities   []seedCommunity    `yaml:"communities"`
	Conversations []seedConversation `yaml:"conversations"`
}

type seedProfile struct {
	ID             string            `yaml:"id"`
	Name           string            `yaml:"name"`
	Role           string            `yaml:"role"`
	Company        *string           `yaml:"company"`
	Location       *string           `yaml:"location"`
	GraduationYear int               `yaml:"graduation_year"`
	Department     string            `yaml:"department"`
	Skills         []string          `yaml:"skills"`
	Connection     string            `yaml:"connection"`
	Industry       *string           `yaml:"industry"`
	About          string            `yaml:"about"`
	Experience     []seedExperience  `yaml:"experience"`
	Education      []seedEducation   `yaml:"education"`
	Achievements   []seedAchievement `yaml:"achievements"`
}

type seedExperience struct {
	Role        string `yaml:"role"`
	Company     string `yaml:"company"`
	Location    string `yaml:"location"`
	StartDate   string `yaml:"start_date"`
	EndDate     string `yaml:"end_date"`
	Current     bool   `yaml:"current"`
	Description string `yaml:"description"`
}

type seedEducation struct {
	Degree      string `yaml:"degree"`
	Institution string `yaml:"institution"`
	Department  string `yaml:"department"`
	Year        string `yaml:"year"`
	Description string `yaml:"description"`
}

type seedAchievement struct {
	Title       string `yaml:"title"`
	Year        string `yaml:"year"`
	Description string `yaml:"description"`
}

type seedJob struct {
	ID               string   `yaml:"id"`
	Title            string   `yaml:"title"`
	Company          string   `yaml:"company"`
	Location         string   `yaml:"location"`
	Salary           *string  `yaml:"salary"`
	EmploymentType   string   `yaml:"employment_type"`
	ExperienceLevel  *string  `yaml:"experience_level"`
	PostedDaysAgo    int      `yaml:"posted_days_ago"`
	DeadlineInDays   *int     `yaml:"deadline_in_days"`
	Description      string   `yaml:"description"`
	Skills           []string `yaml:"skills"`
	Responsibilities []string `yaml:"responsibilities"`
	Requirements     []string `yaml:"requirements"`
	Benefits         []string `yaml:"benefits"`
	PostedByID       string   `yaml:"posted_by_id"`
	PostedByName     string   `yaml:"posted_by_name"`
	Applied          bool     `yaml:"applied"`
	Saved            bool     `yaml:"saved"`
}

type seedEvent struct {
	ID            string  `yaml:"id"`
	Title         string  `yaml:"title"`
	Description   string  `yaml:"description"`
	InDays        int     `yaml:"in_days"`
	StartTime     string  `yaml:"start_time"`
	EndTime       string  `yaml:"end_time"`
	Location      *string `yaml:"location"`
	IsOnline      bool    `yaml:"is_online"`
	Organizer     string  `yaml:"organizer"`
	Category      *string `yaml:"category"`
	AttendeeCount int     `yaml:"attendee_count"`
	Capacity      *int    `yaml:"capacity"`
	RSVP          string  `yaml:"rsvp"`
}

type seedCommunity struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Members     int    `yaml:"members"`
}

type seedConversation struct {
	ID           string            `yaml:"id"`
	Participants []seedParticipant `yaml:"participants"`
	Messages     []seedMessage     `yaml:"messages"`
}

type seedParticipant struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	IsOnline bool   `yaml:"is_online"`
}

type seedMessage struct {
	ID         string `yaml:"id"`
	SenderID   string `yaml:"sender_id"`
	Text       string `yaml:"text"`
	MinutesAgo int    `yaml:"minutes_ago"`
	Read       bool   `yaml:"read"`
}

// DefaultSeed resolves the embedded mock data against now.
func DefaultSeed(now time.Time) (*Snapshot, error) {
	return LoadSeed(defaultSeed, now)
}

// LoadSeed parses YAML seed data. Day and minute offsets are resolved
// against now; the result is fixed from then on.
func LoadSeed(data []byte, now time.Time) (*Snapshot, error) {
	var file seedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse seed: %w", err)
	}

	snapshot := &Snapshot{}
	seen := make(map[string]bool)
	unique := func(kind, id string) error {
		if id == "" {
			return fmt.Errorf("seed %s without id", kind)
		}
		key := kind + "/" + id
		if seen[key] {
			return fmt.Errorf("duplicate seed %s id %q", kind, id)
		}
		seen[key] = true
		return nil
	}

	for _, p := range file.Profiles {
		if err := unique("profile", p.ID); err != nil {
			return nil, err
		}
		connection := models.ConnectionStatus(p.Connection)
		switch connection {
		case "":
			connection = models.ConnectionNone
		case models.ConnectionNone, models.ConnectionPending, models.ConnectionConnected:
		default:
			return nil, fmt.Errorf("profile %q: unknown connection status %q", p.ID, p.Connection)
		}
		profile := models.Profile{
			ID:             p.ID,
			Name:           p.Name,
			Role:           p.Role,
			Company:        p.Company,
			Location:       p.Location,
			GraduationYear: p.GraduationYear,
			Department:     p.Department,
			Skills:         p.Skills,
			Connection:     connection,
			Industry:       p.Industry,
			About:          p.About,
		}
		for _, e := range p.Experience {
			profile.Experience = append(profile.Experience, models.Experience{
				Role:        e.Role,
				Company:     e.Company,
				Location:    e.Location,
				StartDate:   e.StartDate,
				EndDate:     e.EndDate,
				Current:     e.Current,
				Description: e.Description,
			})
		}
		for _, e := range p.Education {
			profile.Education = append(profile.Education, models.Education{
				Degree:      e.Degree,
				Institution: e.Institution,
				Department:  e.Department,
				Year:        e.Year,
				Description: e.Description,
			})
		}
		for _, a := range p.Achievements {
			profile.Achievements = append(profile.Achievements, models.Achievement{
				Title:       a.Title,
				Year:        a.Year,
				Description: a.Description,
			})
		}
		snapshot.Profiles = append(snapshot.Profiles, profile)
	}

	for _, j := range file.Jobs {
		if err := unique("job", j.ID); err != nil {
			return nil, err
		}
		employmentType, ok := models.ParseEmploymentType(j.EmploymentType)
		if !ok {
			return nil, fmt.Errorf("job %q: unknown employment type %q", j.ID, j.EmploymentType)
		}
		job := models.JobPosting{
			ID:               j.ID,
			Title:            j.Title,
			Company:          j.Company,
			Location:         j.Location,
			Salary:           j.Salary,
			EmploymentType:   employmentType,
			ExperienceLevel:  j.ExperienceLevel,
			PostDate:         now.Add(-time.Duration(j.PostedDaysAgo) * 24 * time.Hour),
			Description:      j.Description,
			Skills:           j.Skills,
			Responsibilities: j.Responsibilities,
			Requirements:     j.Requirements,
			Benefits:         j.Benefits,
			PostedByID:       j.PostedByID,
			PostedByName:     j.PostedByName,
			Applied:          j.Applied,
			Saved:            j.Saved,
		}
		if j.DeadlineInDays != nil {
			deadline := now.Add(time.Duration(*j.DeadlineInDays) * 24 * time.Hour)
			job.Deadline = &deadline
		}
		snapshot.Jobs = append(snapshot.Jobs, job)
	}

	for _, e := range file.Events {
		if err := unique("event", e.ID); err != nil {
			return nil, err
		}
		rsvp, ok := models.ParseRSVP(e.RSVP)
		if !ok {
			return nil, fmt.Errorf("event %q: unknown rsvp %q", e.ID, e.RSVP)
		}
		snapshot.Events = append(snapshot.Events, models.Event{
			ID:            e.ID,
			Title:         e.Title,
			Description:   e.Description,
			Date:          now.Add(time.Duration(e.InDays) * 24 * time.Hour),
			StartTime:     e.StartTime,
			EndTime:       e.EndTime,
			Location:      e.Location,
			IsOnline:      e.IsOnline,
			Organizer:     e.Organizer,
			Category:      e.Category,
			AttendeeCount: e.AttendeeCount,
			Capacity:      e.Capacity,
			RSVP:          rsvp,
		})
	}

	for _, c := range file.Communities {
		if err := unique("community", c.ID); err != nil {
			return nil, err
		}
		snapshot.Communities = append(snapshot.Communities, models.Community{
			ID:          c.ID,
			Name:        c.Name,
			Description: c.Description,
			Members:     c.Members,
		})
	}

	for _, c := range file.Conversations {
		if err := unique("conversation", c.ID); err != nil {
			return nil, err
		}
		conversation := models.Conversation{
			ID:       c.ID,
			Messages: make([]models.Message, 0, len(c.Messages)),
		}
		for _, p := range c.Participants {
			conversation.Participants = append(conversation.Participants, models.Participant{
				ID:       p.ID,
				Name:     p.Name,
				IsOnline: p.IsOnline,
			})
		}
		for _, m := range c.Messages {
			if err := unique("message", m.ID); err != nil {
				return nil, err
			}
			conversation.Messages = append(conversation.Messages, models.Message{
				ID:        m.ID,
				SenderID:  m.SenderID,
				Text:      m.Text,
				Timestamp: now.Add(-time.Duration(m.MinutesAgo) * time.Minute),
				Read:      m.Read,
			})
		}
		if n := len(conversation.Messages); n > 0 {
			last := conversation.Messages[n-1]
			conversation.LastMessage = &models.LastMessage{Text: last.Text, Timestamp: last.Timestamp, Read: last.Read}
		}
		snapshot.Conversations = append(snapshot.Conversations, conversation)
	}

	return snapshot, nil
}
