package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/ranjitdasofficial/kiit-connect-circle/internal/classifier"
	"github.com/ranjitdasofficial/kiit-connect-circle/internal/models"
	"github.com/ranjitdasofficial/kiit-connect-circle/internal/pipeline"
)

// JobsTab scopes the job board.
type JobsTab string

const (
	JobsAll     JobsTab = "all"
	JobsSaved   JobsTab = "saved"
	JobsApplied JobsTab = "applied"
)

func ParseJobsTab(s string) (JobsTab, error) {
	switch tab := JobsTab(s); tab {
	case "":
		return JobsAll, nil
	case JobsAll, JobsSaved, JobsApplied:
		return tab, nil
	}
	return "", fmt.Errorf("%w %q for jobs", ErrUnknownTab, s)
}

// JobsQuery is the job board's filter state.
type JobsQuery struct {
	pipeline.Query
	Tab JobsTab
}

// JobCard is a posting with its display labels, computed against now.
type JobCard struct {
	models.JobPosting
	AgeLabel string
	IsNew    bool
	// DeadlineLabel is "Until Jan 2", blank without a deadline.
	DeadlineLabel     string
	DaysUntilDeadline *int
}

// DescribeJob derives the display labels for job at now.
func DescribeJob(job models.JobPosting, now time.Time, newJobDays int) JobCard {
	card := JobCard{
		JobPosting: job,
		AgeLabel:   classifier.JobAgeLabel(job.PostDate, now),
		IsNew:      classifier.IsNewJob(job.PostDate, now, newJobDays),
	}
	if job.Deadline != nil {
		card.DeadlineLabel = "Until " + classifier.ShortDate(*job.Deadline, now.Location())
		days := classifier.DaysUntil(*job.Deadline, now)
		card.DaysUntilDeadline = &days
	}
	return card
}

var employmentTypes = func() []pipeline.Option {
	options := make([]pipeline.Option, len(models.EmploymentTypes))
	for i, t := range models.EmploymentTypes {
		options[i] = pipeline.Option{ID: strings.ToLower(string(t)), Label: string(t)}
	}
	return options
}()

var experienceLevels = []pipeline.Option{
	{ID: string(classifier.Entry), Label: "Entry Level"},
	{ID: string(classifier.Mid), Label: "Mid Level"},
	{ID: string(classifier.Senior), Label: "Senior Level"},
}

var jobsMatcher = pipeline.NewMatcher(
	pipeline.Text(func(j models.JobPosting) string { return j.Title }),
	pipeline.Text(func(j models.JobPosting) string { return j.Company }),
	pipeline.Text(func(j models.JobPosting) string { return j.Description }),
	pipeline.Text(func(j models.JobPosting) string { return j.Location }),
	pipeline.List(func(j models.JobPosting) []string { return j.Skills }),
)

// JobsFilter holds the job board facets.
var JobsFilter = pipeline.NewFilter(
	pipeline.EqualityFacet("employmentType", "Job Type", employmentTypes, labelsByID(employmentTypes),
		func(j models.JobPosting) (string, bool) { return string(j.EmploymentType), j.EmploymentType != "" }),
	pipeline.Facet[models.JobPosting]{
		ID:      "experienceLevel",
		Label:   "Experience Level",
		Options: experienceLevels,
		Match: func(j models.JobPosting, option string) bool {
			requirement, ok := optional(j.ExperienceLevel)
			if !ok {
				return false
			}
			level, ok := classifier.ClassifyExperience(requirement)
			return ok && string(level) == option
		},
	},
	pipeline.Facet[models.JobPosting]{
		ID:      "location",
		Label:   "Location",
		Options: append([]pipeline.Option{{ID: "remote", Label: "Remote"}}, regions...),
		Match: func(j models.JobPosting, option string) bool {
			if j.Location == "" {
				return false
			}
			if option == "remote" {
				return strings.Contains(strings.ToLower(j.Location), "remote")
			}
			return classifier.Region.Is(j.Location, option)
		},
	},
	pipeline.BoolFacet("saved", "Saved", func(j models.JobPosting) bool { return j.Saved }),
	pipeline.BoolFacet("applied", "Applied", func(j models.JobPosting) bool { return j.Applied }),
)

// normalizeEmploymentTypes rewrites display forms like "Internship" to their
// option ids. Values that name no employment type are kept so validation
// still rejects them. sel itself is not modified.
func normalizeEmploymentTypes(sel pipeline.Selection) pipeline.Selection {
	if len(sel.Selected("employmentType")) == 0 {
		return sel
	}
	out := sel.Clone()
	for i, option := range out["employmentType"] {
		if t, ok := models.ParseEmploymentType(option); ok {
			out["employmentType"][i] = strings.ToLower(string(t))
		}
	}
	return out
}

func (t JobsTab) predicate() pipeline.Stage[models.JobPosting] {
	switch t {
	case JobsSaved:
		return func(j models.JobPosting) bool { return j.Saved }
	case JobsApplied:
		return func(j models.JobPosting) bool { return j.Applied }
	}
	return nil
}

// Jobs evaluates the job board and labels every card against now.
func Jobs(jobs []models.JobPosting, q JobsQuery, now time.Time, newJobDays int) (Result[JobCard], error) {
	tab, err := ParseJobsTab(string(q.Tab))
	if err != nil {
		return Result[JobCard]{}, err
	}
	q.Facets = normalizeEmploymentTypes(q.Facets)
	if err := validate(JobsFilter, q.Facets); err != nil {
		return Result[JobCard]{}, err
	}

	p := pipeline.Pipeline[models.JobPosting]{Matcher: jobsMatcher, Filter: JobsFilter}
	matched := p.Run(jobs, q.Query, tab.predicate())

	cards := make([]JobCard, len(matched))
	for i, job := range matched {
		cards[i] = DescribeJob(job, now, newJobDays)
	}

	r := newResult(cards, len(jobs), q.Search, !q.Facets.IsEmpty())
	if r.Empty() {
		r.Title = "No jobs found"
		switch {
		case r.Reason == EmptySearch:
			r.Message = fmt.Sprintf("No jobs matching %q were found. Try a different search term.", q.Search)
		case r.Reason == EmptyFilters:
			r.Message = "No jobs match the selected filters."
		case tab == JobsSaved:
			r.Message = "You haven't saved any jobs yet."
		case tab == JobsApplied:
			r.Message = "You haven't applied to any jobs yet."
		default:
			r.Message = "There are no jobs available at the moment."
		}
	}
	return r, nil
}

// CompanyOpenings counts open positions per company in first-seen order.
type CompanyOpenings struct {
	Company   string
	Positions int
}

func Companies(jobs []models.JobPosting) []CompanyOpenings {
	index := make(map[string]int)
	out := []CompanyOpenings{}
	for _, j := range jobs {
		if i, ok := index[j.Company]; ok {
			out[i].Positions++
			continue
		}
		index[j.Company] = len(out)
		out = append(out, CompanyOpenings{Company: j.Company, Positions: 1})
	}
	return out
}
