package snmpbind

import (
	"errors"
	"fmt"

	"github.com/golangsnmp/snmpbind/mib"
	"github.com/golangsnmp/snmpbind/smi"
)

// ErrShapeMismatch is returned for a binding that matches none of the
// accepted shapes.
var ErrShapeMismatch = errors.New("binding shape not recognized")

// Shape identifies how a raw binding was given.
type Shape int

const (
	// ShapeInvalid is the zero Shape.
	ShapeInvalid Shape = iota
	// ShapeObjectType is an already canonical smi.ObjectType.
	ShapeObjectType
	// ShapeIdentity pairs an smi.ObjectIdentity with a value.
	ShapeIdentity
	// ShapeLegacy pairs (module, symbol) and instance index values with a
	// value.
	ShapeLegacy
	// ShapeName pairs a textual or numeric name with a value.
	ShapeName
	// ShapeTemplate is an smi.NotificationType, accepted by notification
	// originators only.
	ShapeTemplate
)

func (s Shape) String() string {
	switch s {
	case ShapeObjectType:
		return "object-type"
	case ShapeIdentity:
		return "identity"
	case ShapeLegacy:
		return "legacy"
	case ShapeName:
		return "name"
	case ShapeTemplate:
		return "template"
	default:
		return "invalid"
	}
}

// Binding is one raw variable binding in any accepted shape. Build it with
// Object, Pair, Legacy, Named or Template, or classify loosely typed input
// with FromTuple. Only the fields belonging to Shape are meaningful.
type Binding struct {
	Shape Shape

	ObjectType smi.ObjectType
	Identity   smi.ObjectIdentity
	Module     string
	Symbol     string
	Index      []any
	Name       any
	Template   smi.NotificationType

	Value any
}

// Object wraps a canonical binding.
func Object(ot smi.ObjectType) Binding {
	return Binding{Shape: ShapeObjectType, ObjectType: ot}
}

// Pair binds value to an identity.
func Pair(id smi.ObjectIdentity, value any) Binding {
	return Binding{Shape: ShapeIdentity, Identity: id, Value: value}
}

// Legacy binds value to module::symbol with the given instance index.
func Legacy(module, symbol string, value any, index ...any) Binding {
	return Binding{Shape: ShapeLegacy, Module: module, Symbol: symbol, Index: index, Value: value}
}

// Named binds value to a name accepted by smi.ObjectIdentityFromName.
func Named(name any, value any) Binding {
	return Binding{Shape: ShapeName, Name: name, Value: value}
}

// Template wraps a notification template.
func Template(n smi.NotificationType) Binding {
	return Binding{Shape: ShapeTemplate, Template: n}
}

// FromTuple classifies a loosely typed binding, as decoded from YAML or
// JSON, checking the shapes in priority order:
//
//	[ObjectType] or [NotificationType]
//	[ObjectIdentity, value?]
//	[[[module, symbol], index...], value?]
//	[name, value?]       name is a string, mib.Oid or []uint32
func FromTuple(tuple []any) (Binding, error) {
	if len(tuple) == 0 || len(tuple) > 2 {
		return Binding{}, fmt.Errorf("%w: tuple of %d elements", ErrShapeMismatch, len(tuple))
	}
	var value any
	if len(tuple) == 2 {
		value = tuple[1]
	}

	switch x := tuple[0].(type) {
	case smi.ObjectType:
		if len(tuple) != 1 {
			return Binding{}, fmt.Errorf("%w: ObjectType with a separate value", ErrShapeMismatch)
		}
		return Object(x), nil
	case smi.NotificationType:
		if len(tuple) != 1 {
			return Binding{}, fmt.Errorf("%w: NotificationType with a value", ErrShapeMismatch)
		}
		return Template(x), nil
	case smi.ObjectIdentity:
		return Pair(x, value), nil
	case *smi.ObjectIdentity:
		if x == nil {
			return Binding{}, fmt.Errorf("%w: nil identity", ErrShapeMismatch)
		}
		return Pair(*x, value), nil
	case []any:
		module, symbol, index, ok := legacyName(x)
		if !ok {
			return Binding{}, fmt.Errorf("%w: %v is not ((module, symbol), index...)", ErrShapeMismatch, x)
		}
		return Legacy(module, symbol, value, index...), nil
	case string, mib.Oid, []uint32:
		return Named(x, value), nil
	}
	return Binding{}, fmt.Errorf("%w: unexpected %T", ErrShapeMismatch, tuple[0])
}

// legacyName splits [[module, symbol], index...].
func legacyName(x []any) (module, symbol string, index []any, ok bool) {
	if len(x) == 0 {
		return "", "", nil, false
	}
	switch head := x[0].(type) {
	case []any:
		if len(head) != 2 {
			return "", "", nil, false
		}
		module, _ = head[0].(string)
		symbol, _ = head[1].(string)
	case []string:
		if len(head) != 2 {
			return "", "", nil, false
		}
		module, symbol = head[0], head[1]
	case [2]string:
		module, symbol = head[0], head[1]
	default:
		return "", "", nil, false
	}
	if module == "" || symbol == "" {
		return "", "", nil, false
	}
	return module, symbol, x[1:], true
}

// Canonicalize converts a raw binding to an unresolved smi.ObjectType
// without checking types or ranges. Templates are not bindings and fail
// with ErrShapeMismatch.
func Canonicalize(b Binding) (smi.ObjectType, error) {
	switch b.Shape {
	case ShapeObjectType:
		return b.ObjectType, nil
	case ShapeIdentity:
		return smi.NewObjectType(b.Identity, b.Value), nil
	case ShapeLegacy:
		if b.Module == "" || b.Symbol == "" {
			return smi.ObjectType{}, fmt.Errorf("%w: legacy binding needs module and symbol", ErrShapeMismatch)
		}
		return smi.NewObjectType(smi.NewObjectIdentity(b.Module, b.Symbol, b.Index...), b.Value), nil
	case ShapeName:
		id, err := smi.ObjectIdentityFromName(b.Name)
		if err != nil {
			return smi.ObjectType{}, err
		}
		return smi.NewObjectType(id, b.Value), nil
	}
	return smi.ObjectType{}, fmt.Errorf("%w: %s", ErrShapeMismatch, b.Shape)
}
