package catalog

import (
	"fmt"

	"github.com/ranjitdasofficial/kiit-connect-circle/internal/models"
	"github.com/ranjitdasofficial/kiit-connect-circle/internal/pipeline"
)

var communitiesMatcher = pipeline.NewMatcher(
	pipeline.Text(func(c models.Community) string { return c.Name }),
	pipeline.Text(func(c models.Community) string { return c.Description }),
)

// Communities evaluates the communities page. It has no facets or tabs.
func Communities(communities []models.Community, search string) Result[models.Community] {
	p := pipeline.Pipeline[models.Community]{Matcher: communitiesMatcher}
	items := p.Run(communities, pipeline.Query{Search: search})

	r := newResult(items, len(communities), search, false)
	if r.Empty() {
		r.Title = "No communities found"
		if r.Reason == EmptySearch {
			r.Message = fmt.Sprintf("No communities matching %q were found.", search)
		} else {
			r.Message = "There are no communities yet."
		}
	}
	return r
}
