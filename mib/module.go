package mib

import "slices"

// Module is a named collection of definitions, the unit of qualification in
// names such as "IF-MIB::ifDescr".
type Module struct {
	name        string
	language    Language
	oid         Oid
	description string

	objects       []*Object
	types         []*Type
	notifications []*Notification
	nodes         []*Node

	objectsByName       map[string]*Object
	typesByName         map[string]*Type
	notificationsByName map[string]*Notification
	nodesByName         map[string]*Node
}

func newModule(name string) *Module {
	return &Module{
		name:                name,
		objectsByName:       make(map[string]*Object),
		typesByName:         make(map[string]*Type),
		notificationsByName: make(map[string]*Notification),
		nodesByName:         make(map[string]*Node),
	}
}

// Name returns the module name (e.g. "IF-MIB").
func (m *Module) Name() string { return m.name }

// Language returns the SMI language version of this module.
func (m *Module) Language() Language { return m.language }

// OID returns the MODULE-IDENTITY OID, or nil if not declared.
func (m *Module) OID() Oid { return slices.Clone(m.oid) }

func (m *Module) Description() string { return m.description }

func (m *Module) Objects() []*Object             { return slices.Clone(m.objects) }
func (m *Module) Types() []*Type                 { return slices.Clone(m.types) }
func (m *Module) Notifications() []*Notification { return slices.Clone(m.notifications) }
func (m *Module) Nodes() []*Node                 { return slices.Clone(m.nodes) }

func (m *Module) Tables() []*Object  { return objectsByKind(m.objects, KindTable) }
func (m *Module) Scalars() []*Object { return objectsByKind(m.objects, KindScalar) }
func (m *Module) Columns() []*Object { return objectsByKind(m.objects, KindColumn) }
func (m *Module) Rows() []*Object    { return objectsByKind(m.objects, KindRow) }

// Node returns the node with the given name in this module, or nil.
func (m *Module) Node(name string) *Node { return m.nodesByName[name] }

// Object returns the object with the given name in this module, or nil.
func (m *Module) Object(name string) *Object { return m.objectsByName[name] }

// Type returns the type with the given name in this module, or nil.
func (m *Module) Type(name string) *Type { return m.typesByName[name] }

// Notification returns the notification with the given name in this module, or nil.
func (m *Module) Notification(name string) *Notification { return m.notificationsByName[name] }

func (m *Module) addObject(obj *Object) {
	m.objects = append(m.objects, obj)
	m.objectsByName[obj.name] = obj
}

func (m *Module) addType(t *Type) {
	m.types = append(m.types, t)
	if m.typesByName[t.name] == nil {
		m.typesByName[t.name] = t
	}
}

func (m *Module) addNotification(n *Notification) {
	m.notifications = append(m.notifications, n)
	m.notificationsByName[n.name] = n
}

func (m *Module) addNode(name string, n *Node) {
	if _, exists := m.nodesByName[name]; exists {
		return
	}
	m.nodes = append(m.nodes, n)
	m.nodesByName[name] = n
}
