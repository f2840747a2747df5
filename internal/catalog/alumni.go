package catalog

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/ranjitdasofficial/kiit-connect-circle/internal/classifier"
	"github.com/ranjitdasofficial/kiit-connect-circle/internal/models"
	"github.com/ranjitdasofficial/kiit-connect-circle/internal/pipeline"
)

// AlumniTab scopes the directory by connection status.
type AlumniTab string

const (
	AlumniAll         AlumniTab = "all"
	AlumniConnections AlumniTab = "connections"
	AlumniPending     AlumniTab = "pending"
)

func ParseAlumniTab(s string) (AlumniTab, error) {
	switch tab := AlumniTab(s); tab {
	case "":
		return AlumniAll, nil
	case AlumniAll, AlumniConnections, AlumniPending:
		return tab, nil
	}
	return "", fmt.Errorf("%w %q for alumni", ErrUnknownTab, s)
}

// AlumniQuery is the alumni page's filter state.
type AlumniQuery struct {
	pipeline.Query
	Tab AlumniTab
}

var departments = []pipeline.Option{
	{ID: "cs", Label: "Computer Science"},
	{ID: "it", Label: "Information Technology"},
	{ID: "ee", Label: "Electrical Engineering"},
	{ID: "me", Label: "Mechanical Engineering"},
	{ID: "civil", Label: "Civil Engineering"},
	{ID: "business", Label: "Business Administration"},
	{ID: "design", Label: "Design"},
}

var industries = []pipeline.Option{
	{ID: "tech", Label: "Technology"},
	{ID: "finance", Label: "Finance"},
	{ID: "healthcare", Label: "Healthcare"},
	{ID: "education", Label: "Education"},
	{ID: "consulting", Label: "Consulting"},
}

var regions = []pipeline.Option{
	{ID: "india", Label: "India"},
	{ID: "us", Label: "United States"},
	{ID: "uk", Label: "United Kingdom"},
	{ID: "canada", Label: "Canada"},
	{ID: "australia", Label: "Australia"},
}

var alumniMatcher = pipeline.NewMatcher(
	pipeline.Text(func(p models.Profile) string { return p.Name }),
	pipeline.Text(func(p models.Profile) string { return p.Role }),
	pipeline.OptionalText(func(p models.Profile) *string { return p.Company }),
	pipeline.List(func(p models.Profile) []string { return p.Skills }),
)

// listedYears are always offered as graduation-year options, whether or not
// a profile carries them.
var listedYears = []int{2019, 2020, 2021, 2022, 2023}

// AlumniFilter builds the alumni facets. Graduation-year options are the
// listed years plus the distinct years present in profiles, newest first.
func AlumniFilter(profiles []models.Profile) *pipeline.Filter[models.Profile] {
	return pipeline.NewFilter(
		pipeline.EqualityFacet("department", "Department", departments, labelsByID(departments),
			func(p models.Profile) (string, bool) { return p.Department, p.Department != "" }),
		pipeline.EqualityFacet("graduationYear", "Graduation Year", graduationYears(profiles), nil,
			func(p models.Profile) (string, bool) {
				return strconv.Itoa(p.GraduationYear), p.GraduationYear != 0
			}),
		pipeline.Facet[models.Profile]{
			ID:      "industry",
			Label:   "Industry",
			Options: industries,
			Match: func(p models.Profile, option string) bool {
				if p.Industry != nil {
					return *p.Industry == option
				}
				company, ok := optional(p.Company)
				return ok && classifier.Industry.Is(company, option)
			},
		},
		pipeline.Facet[models.Profile]{
			ID:      "location",
			Label:   "Location",
			Options: regions,
			Match: func(p models.Profile, option string) bool {
				location, ok := optional(p.Location)
				return ok && classifier.Region.Is(location, option)
			},
		},
	)
}

func (t AlumniTab) predicate() pipeline.Stage[models.Profile] {
	switch t {
	case AlumniConnections:
		return func(p models.Profile) bool { return p.Connection == models.ConnectionConnected }
	case AlumniPending:
		return func(p models.Profile) bool { return p.Connection == models.ConnectionPending }
	}
	return nil
}

// Alumni evaluates the alumni page.
func Alumni(profiles []models.Profile, q AlumniQuery) (Result[models.Profile], error) {
	tab, err := ParseAlumniTab(string(q.Tab))
	if err != nil {
		return Result[models.Profile]{}, err
	}
	filter := AlumniFilter(profiles)
	if err := validate(filter, q.Facets); err != nil {
		return Result[models.Profile]{}, err
	}

	p := pipeline.Pipeline[models.Profile]{Matcher: alumniMatcher, Filter: filter}
	items := p.Run(profiles, q.Query, tab.predicate())

	r := newResult(items, len(profiles), q.Search, !q.Facets.IsEmpty())
	if r.Empty() {
		r.Title = "No alumni found"
		switch {
		case r.Reason != EmptyTab:
			r.Message = "Try adjusting your search or filter criteria to find alumni."
		case tab == AlumniConnections:
			r.Message = "You haven't connected with any alumni yet."
		case tab == AlumniPending:
			r.Message = "You have no pending connection requests."
		default:
			r.Message = "There are no alumni to show yet."
		}
	}
	return r, nil
}

func graduationYears(profiles []models.Profile) []pipeline.Option {
	seen := make(map[int]bool)
	years := []int{}
	for _, y := range listedYears {
		seen[y] = true
		years = append(years, y)
	}
	for _, p := range profiles {
		if p.GraduationYear != 0 && !seen[p.GraduationYear] {
			seen[p.GraduationYear] = true
			years = append(years, p.GraduationYear)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))

	options := make([]pipeline.Option, len(years))
	for i, y := range years {
		s := strconv.Itoa(y)
		options[i] = pipeline.Option{ID: s, Label: s}
	}
	return options
}

func labelsByID(options []pipeline.Option) map[string]string {
	m := make(map[string]string, len(options))
	for _, o := range options {
		m[o.ID] = o.Label
	}
	return m
}
