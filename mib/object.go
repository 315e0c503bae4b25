package mib

import "slices"

// Object is an OBJECT-TYPE definition.
type Object struct {
	name     string
	node     *Node
	module   *Module
	typ      *Type
	access   Access
	status   Status
	desc     string
	units    string
	augments *Object
	index    []IndexEntry

	// effective constraints: inline refinements, else the type chain
	hint   string
	sizes  []Range
	ranges []Range
	enums  []NamedValue
	bits   []NamedValue
}

func (o *Object) Name() string        { return o.name }
func (o *Object) Node() *Node         { return o.node }
func (o *Object) Module() *Module     { return o.module }
func (o *Object) Type() *Type         { return o.typ }
func (o *Object) Access() Access      { return o.access }
func (o *Object) Status() Status      { return o.status }
func (o *Object) Description() string { return o.desc }
func (o *Object) Units() string       { return o.units }
func (o *Object) Augments() *Object   { return o.augments }

// OID returns the object's position in the OID tree.
func (o *Object) OID() Oid {
	if o == nil || o.node == nil {
		return nil
	}
	return o.node.OID()
}

// Kind reports the structural classification of this object's tree node.
func (o *Object) Kind() Kind {
	if o == nil || o.node == nil {
		return KindUnknown
	}
	return o.node.kind
}

// EffectiveBase returns the base SMI type of the object's syntax.
func (o *Object) EffectiveBase() BaseType {
	if o == nil || o.typ == nil {
		return BaseUnknown
	}
	if len(o.bits) > 0 {
		return BaseBits
	}
	return o.typ.EffectiveBase()
}

func (o *Object) EffectiveDisplayHint() string { return o.hint }
func (o *Object) EffectiveSizes() []Range      { return slices.Clone(o.sizes) }
func (o *Object) EffectiveRanges() []Range     { return slices.Clone(o.ranges) }
func (o *Object) EffectiveEnums() []NamedValue { return slices.Clone(o.enums) }
func (o *Object) EffectiveBits() []NamedValue  { return slices.Clone(o.bits) }

// Index returns the declared INDEX entries for this object.
func (o *Object) Index() []IndexEntry { return slices.Clone(o.index) }

// Enum looks up an enumeration value by label.
func (o *Object) Enum(label string) (NamedValue, bool) { return findNamedValue(o.enums, label) }

// EnumLabel looks up an enumeration label by value.
func (o *Object) EnumLabel(v int64) (NamedValue, bool) { return findNamedLabel(o.enums, v) }

// Bit looks up a BITS position by label.
func (o *Object) Bit(label string) (NamedValue, bool) { return findNamedValue(o.bits, label) }

// Table returns the table object that contains this row or column, or nil.
func (o *Object) Table() *Object {
	if o == nil || o.node == nil {
		return nil
	}
	switch o.node.kind {
	case KindRow:
		if o.node.parent != nil {
			return o.node.parent.obj
		}
	case KindColumn:
		if o.node.parent != nil && o.node.parent.parent != nil {
			return o.node.parent.parent.obj
		}
	}
	return nil
}

// Row returns the parent row object for a column, or nil.
func (o *Object) Row() *Object {
	if o == nil || o.node == nil || o.node.kind != KindColumn || o.node.parent == nil {
		return nil
	}
	return o.node.parent.obj
}

// Columns returns the column objects of a row, in arc order.
func (o *Object) Columns() []*Object {
	if o == nil || o.node == nil || o.node.kind != KindRow {
		return nil
	}
	var cols []*Object
	for _, child := range o.node.sortedChildren() {
		if child.kind == KindColumn && child.obj != nil {
			cols = append(cols, child.obj)
		}
	}
	return cols
}

// EffectiveIndexes returns INDEX entries for a row, following the AUGMENTS
// chain if the row has no indexes of its own.
func (o *Object) EffectiveIndexes() []IndexEntry {
	visited := make(map[*Object]struct{})
	for cur := o; cur != nil; cur = cur.augments {
		if cur.node == nil || cur.node.kind != KindRow {
			return nil
		}
		if len(cur.index) > 0 {
			return slices.Clone(cur.index)
		}
		if _, seen := visited[cur]; seen {
			return nil
		}
		visited[cur] = struct{}{}
	}
	return nil
}

// String returns "name (oid)".
func (o *Object) String() string {
	if o == nil {
		return "<nil>"
	}
	return o.name + " (" + o.OID().String() + ")"
}

func objectsByKind(objs []*Object, kind Kind) []*Object {
	var result []*Object
	for _, obj := range objs {
		if obj.Kind() == kind {
			result = append(result, obj)
		}
	}
	return result
}
