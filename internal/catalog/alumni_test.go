package catalog_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ranjitdasofficial/kiit-connect-circle/internal/catalog"
	"github.com/ranjitdasofficial/kiit-connect-circle/internal/models"
	"github.com/ranjitdasofficial/kiit-connect-circle/internal/pipeline"
)

func profile(id, name, company, location, dept string, year int, conn models.ConnectionStatus, skills ...string) models.Profile {
	p := models.Profile{
		ID:             id,
		Name:           name,
		Role:           "Engineer",
		GraduationYear: year,
		Department:     dept,
		Skills:         skills,
		Connection:     conn,
	}
	if company != "" {
		p.Company = models.StringPtr(company)
	}
	if location != "" {
		p.Location = models.StringPtr(location)
	}
	return p
}

func alumniFixture() []models.Profile {
	return []models.Profile{
		profile("1", "Priya Sharma", "Google", "San Francisco, CA", "Computer Science", 2018, models.ConnectionConnected, "React", "Machine Learning"),
		profile("2", "Arjun Malhotra", "Goldman Sachs", "Mumbai, India", "Business Administration", 2017, models.ConnectionNone),
		profile("3", "Ananya Patel", "Adobe", "Bangalore, India", "Design", 2020, models.ConnectionPending, "Figma"),
		profile("4", "Nomad", "", "", "Computer Science", 2018, models.ConnectionNone),
	}
}

func ids(profiles []models.Profile) []string {
	out := make([]string, len(profiles))
	for i, p := range profiles {
		out[i] = p.ID
	}
	return out
}

func TestAlumni_SearchScenario(t *testing.T) {
	priya := alumniFixture()[:1]

	r, err := catalog.Alumni(priya, catalog.AlumniQuery{Query: pipeline.Query{Search: "priya"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, ids(r.Items))

	r, err = catalog.Alumni(priya, catalog.AlumniQuery{Query: pipeline.Query{Search: "goldman"}})
	require.NoError(t, err)
	assert.True(t, r.Empty())
	assert.Equal(t, catalog.EmptySearch, r.Reason)
	assert.Equal(t, "No alumni found", r.Title)
}

func TestAlumni_SearchesSkillsAndCompany(t *testing.T) {
	r, err := catalog.Alumni(alumniFixture(), catalog.AlumniQuery{Query: pipeline.Query{Search: "FIGMA"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"3"}, ids(r.Items))

	r, err = catalog.Alumni(alumniFixture(), catalog.AlumniQuery{Query: pipeline.Query{Search: "goldman"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"2"}, ids(r.Items))
}

func TestAlumni_Facets(t *testing.T) {
	all := alumniFixture()
	cases := []struct {
		name string
		sel  pipeline.Selection
		want []string
	}{
		{"no selection", nil, []string{"1", "2", "3", "4"}},
		{"department", pipeline.Selection{"department": {"cs"}}, []string{"1", "4"}},
		{"department or", pipeline.Selection{"department": {"cs", "design"}}, []string{"1", "3", "4"}},
		{"department and year", pipeline.Selection{"department": {"cs"}, "graduationYear": {"2018"}}, []string{"1", "4"}},
		{"year", pipeline.Selection{"graduationYear": {"2020"}}, []string{"3"}},
		{"industry skips missing company", pipeline.Selection{"industry": {"tech"}}, []string{"1", "3"}},
		{"finance", pipeline.Selection{"industry": {"finance"}}, []string{"2"}},
		{"location skips missing location", pipeline.Selection{"location": {"india"}}, []string{"2", "3"}},
		{"location or", pipeline.Selection{"location": {"india", "us"}}, []string{"1", "2", "3"}},
		{"no match", pipeline.Selection{"location": {"canada"}}, []string{}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := catalog.Alumni(all, catalog.AlumniQuery{Query: pipeline.Query{Facets: c.sel}})
			require.NoError(t, err)
			assert.Equal(t, c.want, ids(r.Items))
		})
	}
}

func TestAlumni_FacetEmptyReason(t *testing.T) {
	r, err := catalog.Alumni(alumniFixture(), catalog.AlumniQuery{Query: pipeline.Query{Facets: pipeline.Selection{"location": {"canada"}}}})
	require.NoError(t, err)
	assert.Equal(t, catalog.EmptyFilters, r.Reason)
	assert.Equal(t, "Try adjusting your search or filter criteria to find alumni.", r.Message)
}

func TestAlumni_Tabs(t *testing.T) {
	r, err := catalog.Alumni(alumniFixture(), catalog.AlumniQuery{Tab: catalog.AlumniConnections})
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, ids(r.Items))

	r, err = catalog.Alumni(alumniFixture(), catalog.AlumniQuery{Tab: catalog.AlumniPending})
	require.NoError(t, err)
	assert.Equal(t, []string{"3"}, ids(r.Items))

	r, err = catalog.Alumni(alumniFixture()[1:2], catalog.AlumniQuery{Tab: catalog.AlumniConnections})
	require.NoError(t, err)
	assert.Equal(t, catalog.EmptyTab, r.Reason)
	assert.Equal(t, "You haven't connected with any alumni yet.", r.Message)
}

func TestAlumni_InvalidInput(t *testing.T) {
	_, err := catalog.Alumni(alumniFixture(), catalog.AlumniQuery{Tab: "friends"})
	assert.True(t, errors.Is(err, catalog.ErrUnknownTab))

	_, err = catalog.Alumni(alumniFixture(), catalog.AlumniQuery{Query: pipeline.Query{Facets: pipeline.Selection{"graduationYear": {"1999"}}}})
	assert.True(t, errors.Is(err, catalog.ErrUnknownFacet))

	var unknown *pipeline.UnknownFacetError
	assert.True(t, errors.As(err, &unknown))
}

func TestAlumniFilter_YearOptions(t *testing.T) {
	f := catalog.AlumniFilter(alumniFixture())
	facet, ok := f.Facet("graduationYear")
	require.True(t, ok)
	assert.Equal(t, []pipeline.Option{
		{ID: "2023", Label: "2023"},
		{ID: "2022", Label: "2022"},
		{ID: "2021", Label: "2021"},
		{ID: "2020", Label: "2020"},
		{ID: "2019", Label: "2019"},
		{ID: "2018", Label: "2018"},
		{ID: "2017", Label: "2017"},
	}, facet.Options)
}

func TestAlumni_ListedYearWithoutProfiles(t *testing.T) {
	r, err := catalog.Alumni(alumniFixture(), catalog.AlumniQuery{Query: pipeline.Query{Facets: pipeline.Selection{"graduationYear": {"2023"}}}})
	require.NoError(t, err)
	assert.True(t, r.Empty())
	assert.Equal(t, catalog.EmptyFilters, r.Reason)

	r, err = catalog.Alumni(nil, catalog.AlumniQuery{Query: pipeline.Query{Facets: pipeline.Selection{"graduationYear": {"2019"}}}})
	require.NoError(t, err)
	assert.True(t, r.Empty())
}

func TestAlumni_StoredIndustryTag(t *testing.T) {
	all := alumniFixture()
	all[3].Company = models.StringPtr("Tesla")
	all[3].Industry = models.StringPtr("tech")
	// A stored tag wins over the keyword rules.
	all[1].Industry = models.StringPtr("consulting")

	r, err := catalog.Alumni(all, catalog.AlumniQuery{Query: pipeline.Query{Facets: pipeline.Selection{"industry": {"tech"}}}})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "3", "4"}, ids(r.Items))

	r, err = catalog.Alumni(all, catalog.AlumniQuery{Query: pipeline.Query{Facets: pipeline.Selection{"industry": {"finance"}}}})
	require.NoError(t, err)
	assert.True(t, r.Empty())
}
