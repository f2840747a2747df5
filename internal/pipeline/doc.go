// Package pipeline holds the record primitives shared by every listing page:
// a case-insensitive substring Matcher, a faceted Filter, a contiguous-run
// Grouper, and Apply to chain them.
//
// A page runs them in a fixed order:
//
//	search (Matcher) ──► facets (Filter) ──► tab predicate ──► optional Group
//
// All functions are pure. They never mutate the input slice and never fail;
// an empty result is a value, not an error.
package pipeline
