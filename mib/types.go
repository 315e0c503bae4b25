package mib

import "strconv"

// Range represents a min..max constraint for sizes or values.
type Range struct {
	Min, Max int64
}

// String returns the range as "min..max" or just "value" if min equals max.
func (r Range) String() string {
	if r.Min == r.Max {
		return strconv.FormatInt(r.Min, 10)
	}
	return strconv.FormatInt(r.Min, 10) + ".." + strconv.FormatInt(r.Max, 10)
}

// Contains reports whether v lies within the range, inclusive.
func (r Range) Contains(v int64) bool {
	return v >= r.Min && v <= r.Max
}

// InRanges reports whether v satisfies any of the ranges. An empty list
// places no constraint.
func InRanges(ranges []Range, v int64) bool {
	if len(ranges) == 0 {
		return true
	}
	for _, r := range ranges {
		if r.Contains(v) {
			return true
		}
	}
	return false
}

// FixedSize returns the length of a fixed-size constraint list such as
// SIZE (4), and false for variable-length or unconstrained lists.
func FixedSize(sizes []Range) (int, bool) {
	if len(sizes) != 1 || sizes[0].Min != sizes[0].Max {
		return 0, false
	}
	return int(sizes[0].Min), true
}

// NamedValue represents a labeled integer from an enum or BITS definition.
type NamedValue struct {
	Label string
	Value int64
}

func findNamedValue(values []NamedValue, label string) (NamedValue, bool) {
	for _, nv := range values {
		if nv.Label == label {
			return nv, true
		}
	}
	return NamedValue{}, false
}

func findNamedLabel(values []NamedValue, v int64) (NamedValue, bool) {
	for _, nv := range values {
		if nv.Value == v {
			return nv, true
		}
	}
	return NamedValue{}, false
}

// IndexEntry describes an index component for a table row.
type IndexEntry struct {
	Object  *Object // always non-nil in a built model
	Implied bool    // IMPLIED keyword present
}
