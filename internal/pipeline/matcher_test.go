package pipeline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ranjitdasofficial/kiit-connect-circle/internal/pipeline"
)

type person struct {
	Name    string
	Company *string
	Skills  []string
}

func strPtr(s string) *string { return &s }

var personMatcher = pipeline.NewMatcher(
	pipeline.Text(func(p person) string { return p.Name }),
	pipeline.OptionalText(func(p person) *string { return p.Company }),
	pipeline.List(func(p person) []string { return p.Skills }),
)

func TestMatcher_BlankQueryMatchesEverything(t *testing.T) {
	records := []person{
		{Name: "Priya Sharma", Company: strPtr("Google")},
		{Name: ""},
		{},
	}
	for _, q := range []string{"", " ", "\t\n"} {
		for _, r := range records {
			assert.True(t, personMatcher.Match(q, r), "query %q should match %+v", q, r)
		}
	}
}

func TestMatcher_CaseInsensitive(t *testing.T) {
	p := person{Name: "Priya Sharma", Company: strPtr("Google")}
	assert.Equal(t, personMatcher.Match("google", p), personMatcher.Match("GOOGLE", p))
	assert.True(t, personMatcher.Match("GoOgLe", p))
	assert.True(t, personMatcher.Match("priya", p))
}

func TestMatcher_NoFieldContainsQuery(t *testing.T) {
	p := person{Name: "Priya Sharma", Company: strPtr("Google"), Skills: []string{"React"}}
	assert.False(t, personMatcher.Match("goldman", p))
	assert.False(t, personMatcher.Match("priya  sharma", p))
}

func TestMatcher_ListFieldMatchesAnyElement(t *testing.T) {
	p := person{Name: "Vikram", Skills: []string{"Python", "Machine Learning", "AWS"}}
	assert.True(t, personMatcher.Match("learn", p))
	assert.True(t, personMatcher.Match("aws", p))
	assert.False(t, personMatcher.Match("rust", p))
}

func TestMatcher_AbsentOptionalFieldNeverMatches(t *testing.T) {
	p := person{Name: "Neha"}
	assert.False(t, personMatcher.Match("tesla", p))
}

func TestMatcher_NoFields(t *testing.T) {
	m := pipeline.NewMatcher[person]()
	assert.True(t, m.Match("", person{Name: "x"}))
	assert.False(t, m.Match("x", person{Name: "x"}))
}
