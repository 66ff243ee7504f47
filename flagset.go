package fixreqs

import (
	"slices"
)

const (
	// OnlyFlag switches the filter to allow-list mode.
	OnlyFlag = "only"

	// ExcludePrefix marks a per-tag opt-out flag, e.g. "no-draft".
	ExcludePrefix = "no-"
)

// FlagSet is an immutable set of filter flags. The zero value is an empty set.
type FlagSet struct {
	m map[string]struct{}
}

// NewFlagSet returns a set holding every argument verbatim. Arguments are opaque strings: there is
// no dash convention and no key=value parsing.
func NewFlagSet(args []string) FlagSet {
	m := make(map[string]struct{}, len(args))
	for _, arg := range args {
		m[arg] = struct{}{}
	}
	return FlagSet{m: m}
}

// Has reports whether s is in the set.
func (f FlagSet) Has(s string) bool {
	_, ok := f.m[s]
	return ok
}

// Only reports whether allow-list mode is active.
func (f FlagSet) Only() bool {
	return f.Has(OnlyFlag)
}

// Excludes reports whether a line tagged code must be dropped.
func (f FlagSet) Excludes(code string) bool {
	if f.Has(ExcludePrefix + code) {
		return true
	}
	return f.Only() && !f.Has(code)
}

func (f FlagSet) Len() int {
	return len(f.m)
}

// Values returns the flags in sorted order.
func (f FlagSet) Values() []string {
	values := make([]string, 0, len(f.m))
	for v := range f.m {
		values = append(values, v)
	}
	slices.Sort(values)
	return values
}
