// Package catalog composes the pipeline primitives into the listing pages:
// alumni directory, job board, events, communities and conversations.
//
// Every page runs search, then facets, then its tab predicate, over a fresh
// read of the collection, and labels an empty result with the reason it is
// empty so the front end can say "no search results" apart from "nothing in
// this tab".
package catalog

import (
	"errors"
	"fmt"

	"github.com/ranjitdasofficial/kiit-connect-circle/internal/pipeline"
)

var (
	ErrUnknownTab   = errors.New("unknown tab")
	ErrUnknownFacet = errors.New("unknown filter")
)

// Page identifies a listing.
type Page string

const (
	PageAlumni        Page = "alumni"
	PageJobs          Page = "jobs"
	PageEvents        Page = "events"
	PageCommunities   Page = "communities"
	PageConversations Page = "messages"
)

// EmptyReason says why a result has no items.
type EmptyReason string

const (
	NotEmpty     EmptyReason = ""
	EmptySearch  EmptyReason = "search"
	EmptyFilters EmptyReason = "filters"
	EmptyTab     EmptyReason = "tab"
)

// Result is one evaluated page.
type Result[T any] struct {
	Items []T
	// Total is the collection size before any filtering.
	Total  int
	Reason EmptyReason
	// Title and Message are the empty-state texts; both are blank when
	// Items is not empty.
	Title   string
	Message string
}

// Empty reports whether nothing passed the filters.
func (r Result[T]) Empty() bool {
	return len(r.Items) == 0
}

func newResult[T any](items []T, total int, search string, filtered bool) Result[T] {
	r := Result[T]{Items: items, Total: total}
	if len(items) > 0 {
		return r
	}
	switch {
	case !pipeline.IsBlank(search):
		r.Reason = EmptySearch
	case filtered:
		r.Reason = EmptyFilters
	default:
		r.Reason = EmptyTab
	}
	return r
}

func validate[T any](f *pipeline.Filter[T], sel pipeline.Selection) error {
	if err := f.Validate(sel); err != nil {
		return fmt.Errorf("%w: %w", ErrUnknownFacet, err)
	}
	return nil
}

func optional(v *string) (string, bool) {
	if v == nil {
		return "", false
	}
	return *v, true
}
