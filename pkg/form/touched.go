package form

import (
	"maps"
	"slices"
)

// TouchedSet holds the fields the user has left at least once, or every field
// after a submit attempt. Fields only ever enter the set; a successful
// submission replaces the whole set with an empty one.
type TouchedSet map[string]struct{}

// AllOf returns a set containing every given field.
func AllOf(fields []string) TouchedSet {
	t := make(TouchedSet, len(fields))
	for _, f := range fields {
		t[f] = struct{}{}
	}
	return t
}

func (t TouchedSet) Has(field string) bool {
	_, ok := t[field]
	return ok
}

// With returns a copy of t that also contains field.
func (t TouchedSet) With(field string) TouchedSet {
	out := make(TouchedSet, len(t)+1)
	maps.Copy(out, t)
	out[field] = struct{}{}
	return out
}

func (t TouchedSet) Len() int {
	return len(t)
}

// Names returns the touched fields, sorted.
func (t TouchedSet) Names() []string {
	return slices.Sorted(maps.Keys(t))
}
