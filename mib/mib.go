package mib

import (
	"iter"
	"slices"
	"strings"
)

// Mib is the top-level container for a built model.
// It is immutable once returned by [Builder.Build] and safe for concurrent reads.
type Mib struct {
	root          *Node
	modules       []*Module
	objects       []*Object
	types         []*Type
	notifications []*Notification

	moduleByName map[string]*Module
	nameToNodes  map[string][]*Node
	typeByName   map[string]*Type

	nodeCount int
}

func newMib() *Mib {
	return &Mib{
		root:         &Node{kind: KindInternal},
		moduleByName: make(map[string]*Module),
		nameToNodes:  make(map[string][]*Node),
		typeByName:   make(map[string]*Type),
	}
}

// Root returns the unnamed pseudo-root of the OID tree.
func (m *Mib) Root() *Node { return m.root }

// Nodes iterates every node below the root, depth-first in arc order.
func (m *Mib) Nodes() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for _, child := range m.root.sortedChildren() {
			if !child.yieldAll(yield) {
				return
			}
		}
	}
}

// Node returns the node with the given unqualified name, or nil if not found.
// Prefers nodes with object definitions, then notifications, then any.
func (m *Mib) Node(name string) *Node {
	nodes := m.nameToNodes[name]
	for _, nd := range nodes {
		if nd.obj != nil {
			return nd
		}
	}
	for _, nd := range nodes {
		if nd.notif != nil {
			return nd
		}
	}
	if len(nodes) > 0 {
		return nodes[0]
	}
	return nil
}

// NodesNamed returns every distinct node registered under the unqualified
// name, in registration order.
func (m *Mib) NodesNamed(name string) []*Node {
	return slices.Clone(m.nameToNodes[name])
}

// FindNode resolves a query that is either a qualified name
// ("IF-MIB::ifIndex"), a numeric OID ("1.3.6.1.2.1.2.2.1.1"), or a plain
// name. It returns nil if nothing matches.
func (m *Mib) FindNode(query string) *Node {
	if modName, itemName, ok := strings.Cut(query, "::"); ok {
		mod := m.Module(modName)
		if mod == nil {
			return nil
		}
		return mod.Node(itemName)
	}
	if q := strings.TrimPrefix(query, "."); q != "" && q[0] >= '0' && q[0] <= '9' {
		oid, err := ParseOID(q)
		if err != nil {
			return nil
		}
		return m.NodeByOID(oid)
	}
	return m.Node(query)
}

// Object returns the object with the given name, or nil if not found.
func (m *Mib) Object(name string) *Object {
	for _, nd := range m.nameToNodes[name] {
		if nd.obj != nil {
			return nd.obj
		}
	}
	return nil
}

// Notification returns the notification with the given name, or nil if not found.
func (m *Mib) Notification(name string) *Notification {
	for _, nd := range m.nameToNodes[name] {
		if nd.notif != nil {
			return nd.notif
		}
	}
	return nil
}

// Type returns the first type registered under name, or nil if not found.
func (m *Mib) Type(name string) *Type {
	return m.typeByName[name]
}

// NodeByOID returns the node at exactly oid, or nil.
func (m *Mib) NodeByOID(oid Oid) *Node {
	if len(oid) == 0 {
		return nil
	}
	nd, exact := m.root.walkOID(oid)
	if !exact {
		return nil
	}
	return nd
}

// LongestPrefixByOID returns the deepest node whose OID is a prefix of oid,
// or nil if not even the first arc matches.
func (m *Mib) LongestPrefixByOID(oid Oid) *Node {
	if len(oid) == 0 {
		return nil
	}
	nd, _ := m.root.walkOID(oid)
	if nd == m.root {
		return nil
	}
	return nd
}

// Module returns the module with the given name, or nil.
func (m *Mib) Module(name string) *Module {
	return m.moduleByName[name]
}

func (m *Mib) Modules() []*Module             { return slices.Clone(m.modules) }
func (m *Mib) Objects() []*Object             { return slices.Clone(m.objects) }
func (m *Mib) Types() []*Type                 { return slices.Clone(m.types) }
func (m *Mib) Notifications() []*Notification { return slices.Clone(m.notifications) }

func (m *Mib) Tables() []*Object  { return objectsByKind(m.objects, KindTable) }
func (m *Mib) Scalars() []*Object { return objectsByKind(m.objects, KindScalar) }
func (m *Mib) Columns() []*Object { return objectsByKind(m.objects, KindColumn) }
func (m *Mib) Rows() []*Object    { return objectsByKind(m.objects, KindRow) }

// NodeCount returns the number of nodes below the root.
func (m *Mib) NodeCount() int { return m.nodeCount }

func (m *Mib) registerNode(name string, n *Node) {
	if name == "" {
		return
	}
	if slices.Contains(m.nameToNodes[name], n) {
		return
	}
	m.nameToNodes[name] = append(m.nameToNodes[name], n)
}
