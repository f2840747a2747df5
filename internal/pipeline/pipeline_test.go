package pipeline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ranjitdasofficial/kiit-connect-circle/internal/pipeline"
)

func TestApply_DoesNotModifyInput(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6}
	even := func(n int) bool { return n%2 == 0 }
	gtTwo := func(n int) bool { return n > 2 }

	got := pipeline.Apply(items, even, gtTwo, nil)
	assert.Equal(t, []int{4, 6}, got)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, items)
}

func TestApply_NoMatchesIsEmptyNotNil(t *testing.T) {
	got := pipeline.Apply([]int{1, 3}, func(n int) bool { return n%2 == 0 })
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestPipeline_Run(t *testing.T) {
	p := pipeline.Pipeline[posting]{
		Matcher: pipeline.NewMatcher(pipeline.Text(func(p posting) string { return p.ID + " " + p.Kind })),
		Filter:  postingFilter(),
	}
	items := []posting{
		{ID: "1", Kind: "Internship"},
		{ID: "2", Kind: "Full-time", Saved: true},
		{ID: "3", Kind: "Internship", Saved: true},
	}

	got := p.Run(items, pipeline.Query{Facets: pipeline.Selection{"kind": {"internship"}}})
	assert.Equal(t, []posting{items[0], items[2]}, got)

	got = p.Run(items, pipeline.Query{Search: "INTERN"}, func(p posting) bool { return p.Saved })
	assert.Equal(t, []posting{items[2]}, got)

	assert.Equal(t, items, p.Run(items, pipeline.Query{}))
}

func TestQuery_IsZero(t *testing.T) {
	assert.True(t, pipeline.Query{}.IsZero())
	assert.True(t, pipeline.Query{Search: "  ", Facets: pipeline.Selection{"kind": nil}}.IsZero())
	assert.False(t, pipeline.Query{Search: "x"}.IsZero())
	assert.False(t, pipeline.Query{Facets: pipeline.Selection{"kind": {"internship"}}}.IsZero())
}
