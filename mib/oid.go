package mib

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

// ErrInvalidOID is returned by ParseOID for malformed dotted strings.
var ErrInvalidOID = errors.New("invalid OID")

// Oid is a sequence of arc values representing an SNMP Object Identifier.
type Oid []uint32

// ParseOID parses an OID from a dotted string (e.g., "1.3.6.1.2.1").
// A single leading dot is accepted.
func ParseOID(s string) (Oid, error) {
	text := strings.TrimPrefix(s, ".")
	if text == "" {
		return nil, fmt.Errorf("%w: empty string %q", ErrInvalidOID, s)
	}

	arcs := make(Oid, 0, strings.Count(text, ".")+1)
	var current uint64
	var hasDigit bool
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c >= '0' && c <= '9':
			current = current*10 + uint64(c-'0')
			if current > math.MaxUint32 {
				return nil, fmt.Errorf("%w: arc overflows uint32 in %q", ErrInvalidOID, s)
			}
			hasDigit = true
		case c == '.':
			if !hasDigit {
				return nil, fmt.Errorf("%w: empty arc in %q", ErrInvalidOID, s)
			}
			arcs = append(arcs, uint32(current))
			current = 0
			hasDigit = false
		default:
			return nil, fmt.Errorf("%w: invalid character %q in %q", ErrInvalidOID, c, s)
		}
	}
	if !hasDigit {
		return nil, fmt.Errorf("%w: trailing dot in %q", ErrInvalidOID, s)
	}
	return append(arcs, uint32(current)), nil
}

// MustParseOID is like ParseOID but panics on error.
// Intended for package-level tables of well-known OIDs.
func MustParseOID(s string) Oid {
	oid, err := ParseOID(s)
	if err != nil {
		panic(err)
	}
	return oid
}

// String returns the dotted string representation (e.g., "1.3.6.1.2.1").
func (o Oid) String() string {
	if len(o) == 0 {
		return ""
	}
	var b strings.Builder
	b.Grow(len(o) * 3)
	b.WriteString(strconv.FormatUint(uint64(o[0]), 10))
	for _, arc := range o[1:] {
		b.WriteByte('.')
		b.WriteString(strconv.FormatUint(uint64(arc), 10))
	}
	return b.String()
}

// Parent returns the parent OID (all arcs except the last).
// Returns nil if the OID is empty or has only one arc.
func (o Oid) Parent() Oid {
	if len(o) <= 1 {
		return nil
	}
	return slices.Clone(o[:len(o)-1])
}

// Child returns a new OID with the given arc appended.
func (o Oid) Child(arc uint32) Oid {
	result := make(Oid, len(o)+1)
	copy(result, o)
	result[len(result)-1] = arc
	return result
}

// Append returns a new OID with suffix appended. Neither input is modified.
func (o Oid) Append(suffix Oid) Oid {
	result := make(Oid, 0, len(o)+len(suffix))
	result = append(result, o...)
	return append(result, suffix...)
}

// HasPrefix returns true if this OID starts with the given prefix.
func (o Oid) HasPrefix(prefix Oid) bool {
	if len(prefix) > len(o) {
		return false
	}
	return slices.Equal(o[:len(prefix)], prefix)
}

// Equal returns true if the OIDs are identical.
func (o Oid) Equal(other Oid) bool {
	return slices.Equal(o, other)
}

// Compare returns -1 if o < other, 0 if equal, 1 if o > other.
// Comparison is lexicographic by arc value.
func (o Oid) Compare(other Oid) int {
	return slices.Compare(o, other)
}

// LastArc returns the last arc value, or 0 if empty.
func (o Oid) LastArc() uint32 {
	if len(o) == 0 {
		return 0
	}
	return o[len(o)-1]
}
