package storage

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"

	"github.com/lib/pq"
	"github.com/ranjitdasofficial/kiit-connect-circle/internal/models"
	"go.uber.org/zap"
)

//go:embed schema.sql
var schema string

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// ConnString renders the config as a lib/pq key/value connection string.
func (c DatabaseConfig) ConnString() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// PostgresStorage reads the record collections from PostgreSQL. It is a
// read-only source: the snapshot it produces is served by MemoryStorage and
// viewer actions are never written back.
type PostgresStorage struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewPostgresStorage(ctx context.Context, config DatabaseConfig, logger *zap.Logger) (*PostgresStorage, error) {
	db, err := sql.Open("postgres", config.ConnString())
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	// Test the connection
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("error connecting to the database: %w", err)
	}

	storage := &PostgresStorage{db: db, logger: logger}

	// Initialize database schema
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("error initializing database schema: %w", err)
	}

	return storage, nil
}

// Snapshot loads all collections in their stored order.
func (s *PostgresStorage) Snapshot(ctx context.Context) (*Snapshot, error) {
	var (
		snapshot Snapshot
		err      error
	)
	if snapshot.Profiles, err = s.profiles(ctx); err != nil {
		return nil, err
	}
	if snapshot.Jobs, err = s.jobs(ctx); err != nil {
		return nil, err
	}
	if snapshot.Events, err = s.events(ctx); err != nil {
		return nil, err
	}
	if snapshot.Communities, err = s.communities(ctx); err != nil {
		return nil, err
	}
	if snapshot.Conversations, err = s.conversations(ctx); err != nil {
		return nil, err
	}

	s.logger.Info("Loaded snapshot from PostgreSQL",
		zap.Int("profiles", len(snapshot.Profiles)),
		zap.Int("jobs", len(snapshot.Jobs)),
		zap.Int("events", len(snapshot.Events)),
		zap.Int("communities", len(snapshot.Communities)),
		zap.Int("conversations", len(snapshot.Conversations)))
	return &snapshot, nil
}

func (s *PostgresStorage) profiles(ctx context.Context) ([]models.Profile, error) {
	query := `
		SELECT id, name, role, company, location, graduation_year, department, skills, connection,
		       industry, about
		FROM profiles
		ORDER BY position`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying profiles: %w", err)
	}

	var profiles []models.Profile
	index := make(map[string]int)
	for rows.Next() {
		var (
			p                           models.Profile
			company, location, industry sql.NullString
		)
		err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Role,
			&company,
			&location,
			&p.GraduationYear,
			&p.Department,
			pq.Array(&p.Skills),
			&p.Connection,
			&industry,
			&p.About,
		)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("error scanning profile: %w", err)
		}
		p.Company = nullString(company)
		p.Location = nullString(location)
		p.Industry = nullString(industry)
		index[p.ID] = len(profiles)
		profiles = append(profiles, p)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := s.experience(ctx, profiles, index); err != nil {
		return nil, err
	}
	if err := s.education(ctx, profiles, index); err != nil {
		return nil, err
	}
	if err := s.achievements(ctx, profiles, index); err != nil {
		return nil, err
	}
	return profiles, nil
}

func (s *PostgresStorage) experience(ctx context.Context, profiles []models.Profile, index map[string]int) error {
	query := `
		SELECT profile_id, role, company, location, start_date, end_date, current, description
		FROM profile_experience
		ORDER BY position`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return fmt.Errorf("error querying experience: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			profileID string
			e         models.Experience
		)
		err := rows.Scan(&profileID, &e.Role, &e.Company, &e.Location, &e.StartDate, &e.EndDate, &e.Current, &e.Description)
		if err != nil {
			return fmt.Errorf("error scanning experience: %w", err)
		}
		if i, ok := index[profileID]; ok {
			profiles[i].Experience = append(profiles[i].Experience, e)
		}
	}
	return rows.Err()
}

func (s *PostgresStorage) education(ctx context.Context, profiles []models.Profile, index map[string]int) error {
	query := `
		SELECT profile_id, degree, institution, department, years, description
		FROM profile_education
		ORDER BY position`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return fmt.Errorf("error querying education: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			profileID string
			e         models.Education
		)
		if err := rows.Scan(&profileID, &e.Degree, &e.Institution, &e.Department, &e.Year, &e.Description); err != nil {
			return fmt.Errorf("error scanning education: %w", err)
		}
		if i, ok := index[profileID]; ok {
			profiles[i].Education = append(profiles[i].Education, e)
		}
	}
	return rows.Err()
}

func (s *PostgresStorage) achievements(ctx context.Context, profiles []models.Profile, index map[string]int) error {
	query := `
		SELECT profile_id, title, year, description
		FROM profile_achievements
		ORDER BY position`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return fmt.Errorf("error querying achievements: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			profileID string
			a         models.Achievement
		)
		if err := rows.Scan(&profileID, &a.Title, &a.Year, &a.Description); err != nil {
			return fmt.Errorf("error scanning achievement: %w", err)
		}
		if i, ok := index[profileID]; ok {
			profiles[i].Achievements = append(profiles[i].Achievements, a)
		}
	}
	return rows.Err()
}

func (s *PostgresStorage) jobs(ctx context.Context) ([]models.JobPosting, error) {
	query := `
		SELECT id, title, company, location, salary, employment_type, experience_level,
		       post_date, deadline, description, skills, responsibilities, requirements, benefits,
		       posted_by_id, posted_by_name, applied, saved
		FROM jobs
		ORDER BY position`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying jobs: %w", err)
	}
	defer rows.Close()

	var jobs []models.JobPosting
	for rows.Next() {
		var (
			j                  models.JobPosting
			salary, experience sql.NullString
			employmentType     string
			deadline           sql.NullTime
		)
		err := rows.Scan(
			&j.ID,
			&j.Title,
			&j.Company,
			&j.Location,
			&salary,
			&employmentType,
			&experience,
			&j.PostDate,
			&deadline,
			&j.Description,
			pq.Array(&j.Skills),
			pq.Array(&j.Responsibilities),
			pq.Array(&j.Requirements),
			pq.Array(&j.Benefits),
			&j.PostedByID,
			&j.PostedByName,
			&j.Applied,
			&j.Saved,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning job: %w", err)
		}
		t, ok := models.ParseEmploymentType(employmentType)
		if !ok {
			return nil, fmt.Errorf("job %q: unknown employment type %q", j.ID, employmentType)
		}
		j.EmploymentType = t
		j.Salary = nullString(salary)
		j.ExperienceLevel = nullString(experience)
		if deadline.Valid {
			d := deadline.Time
			j.Deadline = &d
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

func (s *PostgresStorage) events(ctx context.Context) ([]models.Event, error) {
	query := `
		SELECT id, title, description, event_date, start_time, end_time, location, is_online,
		       organizer, category, attendee_count, capacity, rsvp
		FROM events
		ORDER BY position`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying events: %w", err)
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		var (
			e                  models.Event
			location, category sql.NullString
			capacity           sql.NullInt64
			rsvp               string
		)
		err := rows.Scan(
			&e.ID,
			&e.Title,
			&e.Description,
			&e.Date,
			&e.StartTime,
			&e.EndTime,
			&location,
			&e.IsOnline,
			&e.Organizer,
			&category,
			&e.AttendeeCount,
			&capacity,
			&rsvp,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning event: %w", err)
		}
		status, ok := models.ParseRSVP(rsvp)
		if !ok {
			return nil, fmt.Errorf("event %q: unknown rsvp %q", e.ID, rsvp)
		}
		e.RSVP = status
		e.Location = nullString(location)
		e.Category = nullString(category)
		if capacity.Valid {
			c := int(capacity.Int64)
			e.Capacity = &c
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (s *PostgresStorage) communities(ctx context.Context) ([]models.Community, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, description, members FROM communities ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("error querying communities: %w", err)
	}
	defer rows.Close()

	var communities []models.Community
	for rows.Next() {
		var c models.Community
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Members); err != nil {
			return nil, fmt.Errorf("error scanning community: %w", err)
		}
		communities = append(communities, c)
	}
	return communities, rows.Err()
}

func (s *PostgresStorage) conversations(ctx context.Context) ([]models.Conversation, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id FROM conversations ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("error querying conversations: %w", err)
	}

	var conversations []models.Conversation
	index := make(map[string]int)
	for rows.Next() {
		var c models.Conversation
		if err := rows.Scan(&c.ID); err != nil {
			rows.Close()
			return nil, fmt.Errorf("error scanning conversation: %w", err)
		}
		index[c.ID] = len(conversations)
		conversations = append(conversations, c)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := s.participants(ctx, conversations, index); err != nil {
		return nil, err
	}
	if err := s.messages(ctx, conversations, index); err != nil {
		return nil, err
	}

	for i := range conversations {
		c := &conversations[i]
		if n := len(c.Messages); n > 0 {
			last := c.Messages[n-1]
			c.LastMessage = &models.LastMessage{Text: last.Text, Timestamp: last.Timestamp, Read: last.Read}
		}
	}
	return conversations, nil
}

func (s *PostgresStorage) participants(ctx context.Context, conversations []models.Conversation, index map[string]int) error {
	query := `
		SELECT conversation_id, participant_id, name, is_online
		FROM conversation_participants
		ORDER BY position`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return fmt.Errorf("error querying participants: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			conversationID string
			p              models.Participant
		)
		if err := rows.Scan(&conversationID, &p.ID, &p.Name, &p.IsOnline); err != nil {
			return fmt.Errorf("error scanning participant: %w", err)
		}
		if i, ok := index[conversationID]; ok {
			conversations[i].Participants = append(conversations[i].Participants, p)
		}
	}
	return rows.Err()
}

func (s *PostgresStorage) messages(ctx context.Context, conversations []models.Conversation, index map[string]int) error {
	query := `
		SELECT id, conversation_id, sender_id, body, sent_at, read
		FROM messages
		ORDER BY sent_at, id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return fmt.Errorf("error querying messages: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			conversationID string
			m              models.Message
		)
		if err := rows.Scan(&m.ID, &conversationID, &m.SenderID, &m.Text, &m.Timestamp, &m.Read); err != nil {
			return fmt.Errorf("error scanning message: %w", err)
		}
		if i, ok := index[conversationID]; ok {
			conversations[i].Messages = append(conversations[i].Messages, m)
		}
	}
	return rows.Err()
}

func (s *PostgresStorage) Close() error {
	return s.db.Close()
}

func nullString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}
