package smi

import (
	"fmt"

	"github.com/gosnmp/gosnmp"

	"github.com/golangsnmp/snmpbind/mib"
)

// ObjectType is the canonical variable binding: an identity and a value.
//
// Value is nil (the unspecified placeholder), a raw Go value to be cast to
// the object's syntax, or a typed Value. After Resolve it is always a Value.
type ObjectType struct {
	Identity ObjectIdentity
	Value    any
}

// NewObjectType pairs id with value.
func NewObjectType(id ObjectIdentity, value any) ObjectType {
	return ObjectType{Identity: id, Value: value}
}

// IsResolved reports whether both the identity and the value are resolved.
func (ot ObjectType) IsResolved() bool {
	_, typed := ot.Value.(Value)
	return ot.Identity.IsResolved() && typed
}

// TypedValue returns the value if it is a Value. A nil value reports
// Unspecified.
func (ot ObjectType) TypedValue() (Value, bool) {
	switch x := ot.Value.(type) {
	case Value:
		return x, true
	case nil:
		return Unspecified, true
	}
	return Value{}, false
}

// Resolve resolves the identity against v and casts the value to the
// object's syntax. The unspecified placeholder and exception values pass
// through untouched, and OBJECT IDENTIFIER values gain a resolved Ref.
//
// In strict mode any failure is returned. Otherwise failures are absorbed:
// an identity that cannot be resolved leaves the binding as it was, and a
// value that does not fit the syntax is kept as given next to the resolved
// identity.
func (ot ObjectType) Resolve(v MibView, strict bool) (ObjectType, error) {
	if ot.IsResolved() {
		return ot, nil
	}
	id, err := ot.Identity.Resolve(v)
	if err != nil {
		if strict {
			return ObjectType{}, err
		}
		return ot, nil
	}
	val, err := resolveValue(v, id, ot.Value)
	if err != nil {
		if strict {
			return ObjectType{}, &ResolveError{Name: id.String(), Err: err}
		}
		return ObjectType{Identity: id, Value: ot.Value}, nil
	}
	return ObjectType{Identity: id, Value: val}, nil
}

func resolveValue(v MibView, id ObjectIdentity, raw any) (Value, error) {
	if raw == nil {
		return Unspecified, nil
	}
	typed, isValue := raw.(Value)
	if isValue && (typed.IsException() || typed.IsUnspecified()) {
		return typed, nil
	}

	obj := id.Object()
	if obj == nil || !obj.Kind().IsInstance() {
		if !isValue {
			return Value{}, fmt.Errorf("%w: %s is not an OBJECT-TYPE instance", ErrInvalidValue, id.Label())
		}
		return withRef(v, typed), nil
	}

	if !isValue && obj.EffectiveBase() == mib.BaseObjectIdentifier {
		var err error
		if raw, err = nameToOID(v, raw); err != nil {
			return Value{}, err
		}
	}
	val, err := castValue(obj, raw)
	if err != nil {
		return Value{}, err
	}
	return withRef(v, val), nil
}

// nameToOID resolves identities and symbolic names given as raw values so
// OBJECT IDENTIFIER syntaxes accept "SNMPv2-MIB::coldStart" as well as
// dotted OIDs. Other raw values are returned as is.
func nameToOID(v MibView, raw any) (any, error) {
	var id ObjectIdentity
	switch x := raw.(type) {
	case ObjectIdentity:
		id = x
	case string:
		parsed, err := ObjectIdentityFromName(x)
		if err != nil || parsed.numeric != nil {
			return raw, nil
		}
		id = parsed
	default:
		return raw, nil
	}
	resolved, err := id.Resolve(v)
	if err != nil {
		return nil, err
	}
	return resolved.OID(), nil
}

// withRef attaches the resolved identity of an OBJECT IDENTIFIER value.
// Unknown OIDs are kept without a Ref.
func withRef(v MibView, val Value) Value {
	if val.Type != gosnmp.ObjectIdentifier {
		return val
	}
	oid, err := castOID(val.Data)
	if err != nil || len(oid) == 0 {
		return val
	}
	ref, err := ObjectIdentityFromOID(oid).Resolve(v)
	if err != nil {
		val.Ref = nil
		return val
	}
	val.Data = oid
	val.Ref = &ref
	return val
}

// String renders "identity = value", using enumeration labels and display
// hints when the identity is resolved.
func (ot ObjectType) String() string {
	return ot.Identity.String() + " = " + ot.ValueString()
}

// ValueString renders the value alone, as String does.
func (ot ObjectType) ValueString() string {
	switch x := ot.Value.(type) {
	case Value:
		return formatValue(ot.Identity.Object(), x)
	case nil:
		return ""
	default:
		return fmt.Sprint(x)
	}
}
