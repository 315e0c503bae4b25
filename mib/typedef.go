package mib

import "slices"

// Type is a named type definition, either a TEXTUAL-CONVENTION or a plain
// type assignment. Types chain to a parent through [Type.Parent]; the chain
// ends at a type carrying a base SMI type. The Effective* methods walk the
// chain and return the first non-empty value.
type Type struct {
	name   string
	module *Module
	base   BaseType
	parent *Type
	status Status
	hint   string
	desc   string
	sizes  []Range
	ranges []Range
	enums  []NamedValue
	bits   []NamedValue
	isTC   bool
}

// Name returns the type's name (e.g. "DisplayString"), or "" for anonymous types.
func (t *Type) Name() string { return t.name }

// Module returns the module that defines this type.
func (t *Type) Module() *Module { return t.module }

// Base returns the directly assigned base type, or BaseUnknown if inherited.
func (t *Type) Base() BaseType { return t.base }

// Parent returns the parent type in the type chain, or nil for root types.
func (t *Type) Parent() *Type { return t.parent }

func (t *Type) Status() Status      { return t.status }
func (t *Type) DisplayHint() string { return t.hint }
func (t *Type) Description() string { return t.desc }
func (t *Type) Sizes() []Range      { return slices.Clone(t.sizes) }
func (t *Type) Ranges() []Range     { return slices.Clone(t.ranges) }
func (t *Type) Enums() []NamedValue { return slices.Clone(t.enums) }
func (t *Type) Bits() []NamedValue  { return slices.Clone(t.bits) }

// IsTextualConvention reports whether this type was defined as a TEXTUAL-CONVENTION.
func (t *Type) IsTextualConvention() bool { return t.isTC }

// EffectiveBase walks the parent type chain and returns the first non-zero
// base type, or BaseUnknown if none is set.
func (t *Type) EffectiveBase() BaseType {
	for current := t; current != nil; current = current.parent {
		if current.base != BaseUnknown {
			return current.base
		}
	}
	return BaseUnknown
}

// EffectiveDisplayHint returns the first non-empty display hint in the chain.
func (t *Type) EffectiveDisplayHint() string {
	for current := t; current != nil; current = current.parent {
		if current.hint != "" {
			return current.hint
		}
	}
	return ""
}

// EffectiveSizes returns the first non-empty size constraint list in the chain.
func (t *Type) EffectiveSizes() []Range {
	return firstInChain(t, func(c *Type) []Range { return c.sizes })
}

// EffectiveRanges returns the first non-empty range constraint list in the chain.
func (t *Type) EffectiveRanges() []Range {
	return firstInChain(t, func(c *Type) []Range { return c.ranges })
}

// EffectiveEnums returns the first non-empty enumeration list in the chain.
func (t *Type) EffectiveEnums() []NamedValue {
	return firstInChain(t, func(c *Type) []NamedValue { return c.enums })
}

// EffectiveBits returns the first non-empty BITS definition list in the chain.
func (t *Type) EffectiveBits() []NamedValue {
	return firstInChain(t, func(c *Type) []NamedValue { return c.bits })
}

func firstInChain[T any](t *Type, field func(*Type) []T) []T {
	for current := t; current != nil; current = current.parent {
		if v := field(current); len(v) > 0 {
			return slices.Clone(v)
		}
	}
	return nil
}

// String returns a brief summary: "Name (BaseType)" or just "BaseType"
// for anonymous types.
func (t *Type) String() string {
	if t == nil {
		return "<nil>"
	}
	if t.name == "" {
		return t.EffectiveBase().String()
	}
	return t.name + " (" + t.EffectiveBase().String() + ")"
}
