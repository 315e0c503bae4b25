// Package smi holds the canonical binding types: ObjectIdentity names a MIB
// object instance, ObjectType pairs it with a value, and NotificationType
// is a template that expands into a sequence of ObjectTypes.
//
// All three are values. Resolve returns a new, resolved copy and never
// modifies its receiver, so a resolved binding can be shared freely.
package smi

import (
	"fmt"
	"slices"
	"strings"

	"github.com/golangsnmp/snmpbind/mib"
)

// MibView is the lookup surface resolution needs. *view.View implements it.
type MibView interface {
	NodeByName(module, symbol string) (*mib.Node, error)
	NodeLocation(oid mib.Oid) (*mib.Node, mib.Oid, error)
	InstanceID(nd *mib.Node, indices []any) (mib.Oid, error)
	Indices(nd *mib.Node, suffix mib.Oid) ([]any, error)
}

// ObjectIdentity names a MIB node or one of its instances, either
// symbolically (module, symbol and index values) or by numeric OID.
type ObjectIdentity struct {
	// input form
	module  string
	symbol  string
	args    []any   // index values, symbolic form
	suffix  mib.Oid // raw instance suffix, textual form "sym.1.2"
	numeric mib.Oid // numeric form

	// set by Resolve
	resolved bool
	node     *mib.Node
	oid      mib.Oid
	indices  []any
}

// NewObjectIdentity names symbol in module with optional index values.
// An empty module searches every module.
func NewObjectIdentity(module, symbol string, indices ...any) ObjectIdentity {
	return ObjectIdentity{module: module, symbol: symbol, args: slices.Clone(indices)}
}

// ObjectIdentityFromOID names a node or instance by numeric OID.
func ObjectIdentityFromOID(oid mib.Oid) ObjectIdentity {
	return ObjectIdentity{numeric: slices.Clone(oid)}
}

// ObjectIdentityFromName converts a loosely typed name: an ObjectIdentity
// (returned as is), a mib.Oid or []uint32, or a string. Strings are either
// dotted OIDs ("1.3.6.1.2.1.1.1.0", ".1.3.6.1") or labels with an optional
// module and numeric instance suffix ("SNMPv2-MIB::sysDescr.0", "ifDescr.3").
func ObjectIdentityFromName(name any) (ObjectIdentity, error) {
	switch x := name.(type) {
	case ObjectIdentity:
		return x, nil
	case *ObjectIdentity:
		if x == nil {
			return ObjectIdentity{}, fmt.Errorf("%w: nil identity", ErrInvalidName)
		}
		return *x, nil
	case mib.Oid:
		if len(x) == 0 {
			return ObjectIdentity{}, fmt.Errorf("%w: empty OID", ErrInvalidName)
		}
		return ObjectIdentityFromOID(x), nil
	case []uint32:
		return ObjectIdentityFromName(mib.Oid(x))
	case string:
		return parseName(x)
	}
	return ObjectIdentity{}, fmt.Errorf("%w: %T", ErrInvalidName, name)
}

func parseName(s string) (ObjectIdentity, error) {
	text := strings.TrimSpace(s)
	if text == "" {
		return ObjectIdentity{}, fmt.Errorf("%w: empty string", ErrInvalidName)
	}
	module, rest, qualified := strings.Cut(text, "::")
	if !qualified {
		rest, module = text, ""
		if c := strings.TrimPrefix(rest, "."); c != "" && c[0] >= '0' && c[0] <= '9' {
			oid, err := mib.ParseOID(rest)
			if err != nil {
				return ObjectIdentity{}, fmt.Errorf("%w: %w", ErrInvalidName, err)
			}
			return ObjectIdentityFromOID(oid), nil
		}
	}
	symbol, tail, hasSuffix := strings.Cut(rest, ".")
	if symbol == "" || (qualified && module == "") {
		return ObjectIdentity{}, fmt.Errorf("%w: %q", ErrInvalidName, s)
	}
	id := ObjectIdentity{module: module, symbol: symbol}
	if hasSuffix {
		suffix, err := mib.ParseOID(tail)
		if err != nil {
			return ObjectIdentity{}, fmt.Errorf("%w: instance of %q: %w", ErrInvalidName, s, err)
		}
		id.suffix = suffix
	}
	return id, nil
}

// Resolve looks the identity up in v and returns a resolved copy carrying
// the node, full instance OID and decoded index values. Resolving a
// resolved identity returns it unchanged.
func (id ObjectIdentity) Resolve(v MibView) (ObjectIdentity, error) {
	if id.resolved {
		return id, nil
	}
	out, err := id.resolve(v)
	if err != nil {
		return ObjectIdentity{}, &ResolveError{Name: id.String(), Err: err}
	}
	return out, nil
}

func (id ObjectIdentity) resolve(v MibView) (ObjectIdentity, error) {
	var (
		nd     *mib.Node
		oid    mib.Oid
		suffix mib.Oid
		err    error
	)
	switch {
	case id.numeric != nil:
		nd, suffix, err = v.NodeLocation(id.numeric)
		if err != nil {
			return ObjectIdentity{}, err
		}
		oid = slices.Clone(id.numeric)
	default:
		nd, err = v.NodeByName(id.module, id.symbol)
		if err != nil {
			return ObjectIdentity{}, err
		}
		if id.suffix != nil {
			oid = nd.OID().Append(id.suffix)
		} else if oid, err = v.InstanceID(nd, id.args); err != nil {
			return ObjectIdentity{}, err
		}
		suffix = oid[len(nd.OID()):]
	}

	indices, err := v.Indices(nd, suffix)
	if err != nil {
		return ObjectIdentity{}, err
	}
	out := id
	out.resolved = true
	out.node = nd
	out.oid = oid
	out.indices = indices
	return out, nil
}

// IsResolved reports whether the identity carries resolved metadata.
func (id ObjectIdentity) IsResolved() bool { return id.resolved }

// Node returns the resolved MIB node, or nil.
func (id ObjectIdentity) Node() *mib.Node { return id.node }

// Object returns the OBJECT-TYPE of the resolved node, or nil.
func (id ObjectIdentity) Object() *mib.Object {
	if id.node == nil {
		return nil
	}
	return id.node.Object()
}

// OID returns the full instance OID once resolved. Before resolution it
// returns the numeric input, or nil for symbolic identities.
func (id ObjectIdentity) OID() mib.Oid {
	if id.resolved {
		return slices.Clone(id.oid)
	}
	return slices.Clone(id.numeric)
}

// ModuleName returns the defining module of the resolved node, or the
// module given at construction.
func (id ObjectIdentity) ModuleName() string {
	if id.node != nil {
		if mod := id.node.Module(); mod != nil {
			return mod.Name()
		}
	}
	return id.module
}

// Label returns the resolved node's name, or the symbol given at
// construction.
func (id ObjectIdentity) Label() string {
	if id.node != nil {
		return id.node.Name()
	}
	return id.symbol
}

// Indices returns the decoded instance index values: int64 for integer
// syntaxes, []byte for octet strings, net.IP for IpAddress and mib.Oid for
// OBJECT IDENTIFIER components and non-columnar suffixes.
func (id ObjectIdentity) Indices() []any {
	if id.resolved {
		return slices.Clone(id.indices)
	}
	return slices.Clone(id.args)
}

// Equal reports whether two resolved identities name the same instance.
// Unresolved identities compare by their input form.
func (id ObjectIdentity) Equal(other ObjectIdentity) bool {
	if id.resolved && other.resolved {
		return id.oid.Equal(other.oid)
	}
	return id.String() == other.String()
}

// String returns the pretty form. Resolved identities render as
// "MODULE::label.index" ("SNMPv2-MIB::sysDescr.0", "IF-MIB::ifDescr.1");
// unresolved ones render their input.
func (id ObjectIdentity) String() string {
	var b strings.Builder
	switch {
	case id.resolved:
		if mod := id.ModuleName(); mod != "" {
			b.WriteString(mod)
			b.WriteString("::")
		}
		b.WriteString(id.node.Name())
		for _, idx := range id.indices {
			b.WriteByte('.')
			b.WriteString(formatIndex(idx))
		}
	case id.numeric != nil:
		b.WriteString(id.numeric.String())
	default:
		if id.module != "" {
			b.WriteString(id.module)
			b.WriteString("::")
		}
		b.WriteString(id.symbol)
		if id.suffix != nil {
			b.WriteByte('.')
			b.WriteString(id.suffix.String())
		}
		for _, arg := range id.args {
			b.WriteByte('.')
			b.WriteString(formatIndex(arg))
		}
	}
	return b.String()
}
