package mib

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Builder constructs a Mib incrementally. Register modules and their
// definitions through [Builder.Module], then call [Builder.Build] once to
// link references and freeze the result. A Builder must not be used after
// Build.
type Builder struct {
	mib     *Mib
	pending []pendingRef
}

// pendingRef is a by-name reference linked during Build.
type pendingRef struct {
	module *Module
	name   string
	link   func(*Object)
	what   string
	owner  string
}

// NewBuilder creates a Builder with an empty Mib.
func NewBuilder() *Builder {
	return &Builder{mib: newMib()}
}

// Module returns a ModuleBuilder for the named module, creating the module
// on first use.
func (b *Builder) Module(name string, lang Language) *ModuleBuilder {
	mod := b.mib.moduleByName[name]
	if mod == nil {
		mod = newModule(name)
		mod.language = lang
		b.mib.modules = append(b.mib.modules, mod)
		b.mib.moduleByName[name] = mod
	}
	return &ModuleBuilder{b: b, mod: mod}
}

// Type returns a previously registered type by name, or nil. Qualified
// names ("SNMPv2-TC::DisplayString") are looked up in that module only.
func (b *Builder) Type(name string) *Type {
	if modName, typeName, ok := strings.Cut(name, "::"); ok {
		if mod := b.mib.moduleByName[modName]; mod != nil {
			return mod.typesByName[typeName]
		}
		return nil
	}
	return b.mib.typeByName[name]
}

// Build links by-name references (INDEX, AUGMENTS, notification OBJECTS),
// computes effective constraints and freezes the tree. Unresolved
// references are reported together; the returned Mib is usable either way.
func (b *Builder) Build() (*Mib, error) {
	var errs []error
	for _, ref := range b.pending {
		obj := b.lookupObject(ref.module, ref.name)
		if obj == nil {
			errs = append(errs, fmt.Errorf("%s::%s: unresolved %s %q",
				ref.module.name, ref.owner, ref.what, ref.name))
			continue
		}
		ref.link(obj)
	}
	b.pending = nil

	for _, n := range b.mib.notifications {
		n.objects = slices.DeleteFunc(n.objects, func(o *Object) bool { return o == nil })
	}
	for _, obj := range b.mib.objects {
		computeEffective(obj)
	}

	b.mib.root.freeze()
	count := 0
	for range b.mib.Nodes() {
		count++
	}
	b.mib.nodeCount = count

	return b.mib, errors.Join(errs...)
}

// lookupObject resolves an object reference from within mod: qualified
// names go to their module, plain names prefer mod, then any module.
func (b *Builder) lookupObject(mod *Module, name string) *Object {
	if modName, objName, ok := strings.Cut(name, "::"); ok {
		if target := b.mib.moduleByName[modName]; target != nil {
			return target.objectsByName[objName]
		}
		return nil
	}
	if obj := mod.objectsByName[name]; obj != nil {
		return obj
	}
	return b.mib.Object(name)
}

func computeEffective(obj *Object) {
	if len(obj.sizes) == 0 {
		obj.sizes = obj.typ.EffectiveSizes()
	}
	if len(obj.ranges) == 0 {
		obj.ranges = obj.typ.EffectiveRanges()
	}
	if len(obj.enums) == 0 {
		obj.enums = obj.typ.EffectiveEnums()
	}
	if len(obj.bits) == 0 {
		obj.bits = obj.typ.EffectiveBits()
	}
	obj.hint = obj.typ.EffectiveDisplayHint()
}

// TypeDef describes a type assignment or TEXTUAL-CONVENTION.
type TypeDef struct {
	Name        string
	Parent      *Type    // refined type; nil for base types
	Base        BaseType // set on base types only
	Hint        string
	Sizes       []Range
	Ranges      []Range
	Enums       []NamedValue
	Bits        []NamedValue
	TC          bool
	Status      Status
	Description string
}

// ObjectDef describes an OBJECT-TYPE. Index, Augments and the names in
// a NotificationDef are resolved during Build.
type ObjectDef struct {
	Name        string
	OID         Oid
	Type        *Type
	Access      Access
	Status      Status
	Description string
	Units       string

	// inline refinements of the type's constraints
	Sizes  []Range
	Ranges []Range
	Enums  []NamedValue
	Bits   []NamedValue

	Index    []string // INDEX object names, rows only
	Implied  bool     // last INDEX component is IMPLIED
	Augments string   // AUGMENTS target, rows only
}

// NotificationDef describes a NOTIFICATION-TYPE.
type NotificationDef struct {
	Name        string
	OID         Oid
	Objects     []string
	Status      Status
	Description string
}

// ModuleBuilder registers definitions into one module.
type ModuleBuilder struct {
	b   *Builder
	mod *Module
}

// Module returns the module being built.
func (mb *ModuleBuilder) Module() *Module { return mb.mod }

// Identity registers the MODULE-IDENTITY node and records it as the
// module's OID.
func (mb *ModuleBuilder) Identity(name string, oid Oid, description string) *Node {
	mb.mod.oid = oid
	mb.mod.description = description
	return mb.Value(name, oid)
}

// Value registers an OBJECT IDENTIFIER value or OBJECT-IDENTITY node.
// A node that already carries a name keeps it.
func (mb *ModuleBuilder) Value(name string, oid Oid) *Node {
	nd := mb.node(name, oid)
	if nd.kind == KindInternal {
		nd.kind = KindNode
	}
	return nd
}

// Type registers a type definition.
func (mb *ModuleBuilder) Type(def TypeDef) *Type {
	t := &Type{
		name:   def.Name,
		module: mb.mod,
		base:   def.Base,
		parent: def.Parent,
		status: def.Status,
		hint:   def.Hint,
		desc:   def.Description,
		sizes:  def.Sizes,
		ranges: def.Ranges,
		enums:  def.Enums,
		bits:   def.Bits,
		isTC:   def.TC,
	}
	mb.mod.addType(t)
	mb.b.mib.types = append(mb.b.mib.types, t)
	if t.name != "" && mb.b.mib.typeByName[t.name] == nil {
		mb.b.mib.typeByName[t.name] = t
	}
	return t
}

// Scalar registers a scalar OBJECT-TYPE.
func (mb *ModuleBuilder) Scalar(def ObjectDef) *Object { return mb.object(def, KindScalar) }

// Table registers a table OBJECT-TYPE (SEQUENCE OF).
func (mb *ModuleBuilder) Table(def ObjectDef) *Object { return mb.object(def, KindTable) }

// Row registers a row OBJECT-TYPE with its INDEX or AUGMENTS clause.
func (mb *ModuleBuilder) Row(def ObjectDef) *Object {
	obj := mb.object(def, KindRow)
	for i, name := range def.Index {
		implied := def.Implied && i == len(def.Index)-1
		mb.deferRef(obj.name, "index", name, func(target *Object) {
			obj.index = append(obj.index, IndexEntry{Object: target, Implied: implied})
		})
	}
	if def.Augments != "" {
		mb.deferRef(obj.name, "augments", def.Augments, func(target *Object) {
			obj.augments = target
		})
	}
	return obj
}

// Column registers a columnar OBJECT-TYPE.
func (mb *ModuleBuilder) Column(def ObjectDef) *Object { return mb.object(def, KindColumn) }

// Notification registers a NOTIFICATION-TYPE.
func (mb *ModuleBuilder) Notification(def NotificationDef) *Notification {
	nd := mb.node(def.Name, def.OID)
	nd.kind = KindNotification
	n := &Notification{
		name:   def.Name,
		node:   nd,
		module: mb.mod,
		status: def.Status,
		desc:   def.Description,
	}
	nd.notif = n
	n.objects = make([]*Object, len(def.Objects))
	for i, name := range def.Objects {
		mb.deferRef(def.Name, "notification object", name, func(target *Object) {
			n.objects[i] = target
		})
	}
	mb.mod.addNotification(n)
	mb.b.mib.notifications = append(mb.b.mib.notifications, n)
	return n
}

func (mb *ModuleBuilder) object(def ObjectDef, kind Kind) *Object {
	nd := mb.node(def.Name, def.OID)
	nd.kind = kind
	obj := &Object{
		name:   def.Name,
		node:   nd,
		module: mb.mod,
		typ:    def.Type,
		access: def.Access,
		status: def.Status,
		desc:   def.Description,
		units:  def.Units,
		sizes:  def.Sizes,
		ranges: def.Ranges,
		enums:  def.Enums,
		bits:   def.Bits,
	}
	nd.obj = obj
	mb.mod.addObject(obj)
	mb.b.mib.objects = append(mb.b.mib.objects, obj)
	return obj
}

func (mb *ModuleBuilder) node(name string, oid Oid) *Node {
	nd := mb.b.mib.root
	for _, arc := range oid {
		nd = nd.getOrCreateChild(arc)
	}
	if nd.name == "" {
		nd.name = name
		nd.module = mb.mod
	}
	mb.mod.addNode(name, nd)
	mb.b.mib.registerNode(name, nd)
	return nd
}

func (mb *ModuleBuilder) deferRef(owner, what, name string, link func(*Object)) {
	mb.b.pending = append(mb.b.pending, pendingRef{
		module: mb.mod,
		name:   name,
		link:   link,
		what:   what,
		owner:  owner,
	})
}
