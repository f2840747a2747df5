package pipeline

// Stage is a single filter step over records.
type Stage[T any] func(rec T) bool

// Apply returns the records that pass every stage, in input order. The result
// is a new slice; items is not modified. Nil stages are skipped.
func Apply[T any](items []T, stages ...Stage[T]) []T {
	out := make([]T, 0, len(items))
next:
	for _, rec := range items {
		for _, stage := range stages {
			if stage != nil && !stage(rec) {
				continue next
			}
		}
		out = append(out, rec)
	}
	return out
}

// Query is the per-page filter state: the search box and selected facets.
type Query struct {
	Search string
	Facets Selection
}

// IsZero reports whether the query constrains nothing.
func (q Query) IsZero() bool {
	return IsBlank(q.Search) && q.Facets.IsEmpty()
}

// Pipeline binds a Matcher and a Filter for one record type.
type Pipeline[T any] struct {
	Matcher Matcher[T]
	Filter  *Filter[T]
}

// Run applies search, then facets, then any extra stages such as a tab.
func (p Pipeline[T]) Run(items []T, q Query, extra ...Stage[T]) []T {
	stages := []Stage[T]{p.Matcher.Stage(q.Search)}
	if p.Filter != nil {
		stages = append(stages, p.Filter.Stage(q.Facets))
	}
	stages = append(stages, extra...)
	return Apply(items, stages...)
}
