package pipeline

import (
	"fmt"
	"sort"
)

// Option is one selectable value of a facet group.
type Option struct {
	ID    string
	Label string
}

// Selection maps a facet group id to the option ids selected in it.
// Options combine with OR inside a group and groups combine with AND.
type Selection map[string][]string

// Selected returns the options chosen for group.
func (s Selection) Selected(group string) []string {
	return s[group]
}

// Count returns the total number of selected options.
func (s Selection) Count() int {
	n := 0
	for _, opts := range s {
		n += len(opts)
	}
	return n
}

// IsEmpty reports whether no group has a selected option.
func (s Selection) IsEmpty() bool {
	return s.Count() == 0
}

// Clone returns a deep copy.
func (s Selection) Clone() Selection {
	out := make(Selection, len(s))
	for group, opts := range s {
		out[group] = append([]string(nil), opts...)
	}
	return out
}

// Toggle returns a copy of s with option flipped in group. A group left with
// no options is removed.
func (s Selection) Toggle(group, option string) Selection {
	out := s.Clone()
	opts := out[group]
	for i, o := range opts {
		if o == option {
			opts = append(opts[:i:i], opts[i+1:]...)
			if len(opts) == 0 {
				delete(out, group)
			} else {
				out[group] = opts
			}
			return out
		}
	}
	out[group] = append(opts, option)
	return out
}

// Groups returns the group ids with at least one selection, sorted.
func (s Selection) Groups() []string {
	groups := make([]string, 0, len(s))
	for group, opts := range s {
		if len(opts) > 0 {
			groups = append(groups, group)
		}
	}
	sort.Strings(groups)
	return groups
}

// Facet is a named filter group. Match decides whether a record satisfies a
// single option of the group.
type Facet[T any] struct {
	ID      string
	Label   string
	Options []Option
	Match   func(rec T, option string) bool
}

// HasOption reports whether id is one of the facet's options.
func (f Facet[T]) HasOption(id string) bool {
	for _, o := range f.Options {
		if o.ID == id {
			return true
		}
	}
	return false
}

// EqualityFacet compares a scalar field to the value mapped from the selected
// option. values maps option id to the field value it selects; options with
// no entry compare by their id. A record whose field is absent never matches.
func EqualityFacet[T any](id, label string, options []Option, values map[string]string, get func(T) (string, bool)) Facet[T] {
	return Facet[T]{
		ID:      id,
		Label:   label,
		Options: options,
		Match: func(rec T, option string) bool {
			v, ok := get(rec)
			if !ok {
				return false
			}
			want, mapped := values[option]
			if !mapped {
				want = option
			}
			return v == want
		},
	}
}

// Boolean option ids.
const (
	OptionTrue  = "true"
	OptionFalse = "false"
)

// BoolFacet filters on a boolean flag. Selecting "true" keeps records with the
// flag set, "false" keeps records without it.
func BoolFacet[T any](id, label string, get func(T) bool) Facet[T] {
	return Facet[T]{
		ID:      id,
		Label:   label,
		Options: []Option{{ID: OptionTrue, Label: "Yes"}, {ID: OptionFalse, Label: "No"}},
		Match: func(rec T, option string) bool {
			switch option {
			case OptionTrue:
				return get(rec)
			case OptionFalse:
				return !get(rec)
			}
			return false
		},
	}
}

// Filter evaluates a Selection against a fixed set of facets.
type Filter[T any] struct {
	facets []Facet[T]
	byID   map[string]Facet[T]
}

// NewFilter builds a Filter. Facet ids must be unique.
func NewFilter[T any](facets ...Facet[T]) *Filter[T] {
	byID := make(map[string]Facet[T], len(facets))
	for _, f := range facets {
		byID[f.ID] = f
	}
	return &Filter[T]{facets: facets, byID: byID}
}

// Facets returns the configured facets in declaration order.
func (f *Filter[T]) Facets() []Facet[T] {
	return f.facets
}

// Facet looks up a facet by id.
func (f *Filter[T]) Facet(id string) (Facet[T], bool) {
	facet, ok := f.byID[id]
	return facet, ok
}

// Match reports whether rec satisfies every group that has a selection.
// Groups without a selection do not constrain the result. Groups that are not
// configured are ignored; use Validate to reject them up front.
func (f *Filter[T]) Match(rec T, sel Selection) bool {
	for group, opts := range sel {
		if len(opts) == 0 {
			continue
		}
		facet, ok := f.byID[group]
		if !ok {
			continue
		}
		matched := false
		for _, opt := range opts {
			if facet.Match(rec, opt) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}

// Stage adapts the filter to a pipeline stage for a fixed selection.
func (f *Filter[T]) Stage(sel Selection) Stage[T] {
	return func(rec T) bool { return f.Match(rec, sel) }
}

// UnknownFacetError reports a selection naming a group or option the filter
// does not define.
type UnknownFacetError struct {
	Group  string
	Option string
}

func (e *UnknownFacetError) Error() string {
	if e.Option == "" {
		return fmt.Sprintf("unknown filter group %q", e.Group)
	}
	return fmt.Sprintf("unknown option %q in filter group %q", e.Option, e.Group)
}

// Validate checks that every selected group and option exists.
func (f *Filter[T]) Validate(sel Selection) error {
	for _, group := range sel.Groups() {
		facet, ok := f.byID[group]
		if !ok {
			return &UnknownFacetError{Group: group}
		}
		for _, opt := range sel[group] {
			if !facet.HasOption(opt) {
				return &UnknownFacetError{Group: group, Option: opt}
			}
		}
	}
	return nil
}
