package mib

import "slices"

// Notification is a NOTIFICATION-TYPE definition.
type Notification struct {
	name    string
	node    *Node
	module  *Module
	objects []*Object
	status  Status
	desc    string
}

func (n *Notification) Name() string        { return n.name }
func (n *Notification) Node() *Node         { return n.node }
func (n *Notification) Module() *Module     { return n.module }
func (n *Notification) Status() Status      { return n.status }
func (n *Notification) Description() string { return n.desc }

// Objects returns the OBJECTS clause members in declaration order.
func (n *Notification) Objects() []*Object { return slices.Clone(n.objects) }

func (n *Notification) OID() Oid {
	if n == nil || n.node == nil {
		return nil
	}
	return n.node.OID()
}

// String returns "name (oid)".
func (n *Notification) String() string {
	if n == nil {
		return "<nil>"
	}
	return n.name + " (" + n.OID().String() + ")"
}
