package pipeline

import "strings"

// Field extracts the searchable values of one record field. Absent optional
// fields return nil; list fields return every element.
type Field[T any] func(rec T) []string

// Text wraps a scalar string field.
func Text[T any](get func(T) string) Field[T] {
	return func(rec T) []string { return []string{get(rec)} }
}

// OptionalText wraps a field that may be absent.
func OptionalText[T any](get func(T) *string) Field[T] {
	return func(rec T) []string {
		if v := get(rec); v != nil {
			return []string{*v}
		}
		return nil
	}
}

// List wraps an array field such as skills; it matches if any element does.
func List[T any](get func(T) []string) Field[T] {
	return Field[T](get)
}

// Matcher performs case-insensitive substring search over a fixed set of fields.
type Matcher[T any] struct {
	fields []Field[T]
}

// NewMatcher returns a Matcher over the given fields.
func NewMatcher[T any](fields ...Field[T]) Matcher[T] {
	return Matcher[T]{fields: fields}
}

// Match reports whether query occurs in at least one configured field.
// A blank query matches every record.
func (m Matcher[T]) Match(query string, rec T) bool {
	if IsBlank(query) {
		return true
	}
	q := strings.ToLower(query)
	for _, field := range m.fields {
		for _, v := range field(rec) {
			if strings.Contains(strings.ToLower(v), q) {
				return true
			}
		}
	}
	return false
}

// Stage adapts the matcher to a pipeline stage for a fixed query.
func (m Matcher[T]) Stage(query string) Stage[T] {
	return func(rec T) bool { return m.Match(query, rec) }
}

// IsBlank reports whether s is empty or only whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
