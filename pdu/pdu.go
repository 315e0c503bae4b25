// Package pdu converts variable bindings to and from gosnmp PDUs and
// implements the get-next successor extraction used to detect the end of a
// walk.
//
// Outbound bindings must carry a typed value, which Resolve on an
// [smi.ObjectType] guarantees. Inbound PDUs become unresolved bindings with
// numeric identities and typed values, ready for lenient resolution.
package pdu

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"net"

	"github.com/gosnmp/gosnmp"

	"github.com/golangsnmp/snmpbind/mib"
	"github.com/golangsnmp/snmpbind/smi"
)

var (
	// ErrNoOID is returned when a binding's identity has no numeric OID.
	ErrNoOID = errors.New("binding has no numeric OID")

	// ErrUntypedValue is returned when an outbound binding's value is not
	// an smi.Value.
	ErrUntypedValue = errors.New("binding value is not typed")

	// ErrUnsupportedType is returned for PDU types with no binding form.
	ErrUnsupportedType = errors.New("unsupported PDU type")

	// ErrOIDNotIncreasing is returned by NextVarBinds when a response OID
	// does not follow the OID it answers.
	ErrOIDNotIncreasing = errors.New("OID not increasing")
)

// ToPDU converts a binding to a gosnmp PDU. The name is the dotted OID with
// a leading dot, and the value follows gosnmp's conventions for the type.
func ToPDU(ot smi.ObjectType) (gosnmp.SnmpPDU, error) {
	oid := ot.Identity.OID()
	if len(oid) == 0 {
		return gosnmp.SnmpPDU{}, fmt.Errorf("%s: %w", ot.Identity, ErrNoOID)
	}
	val, ok := ot.TypedValue()
	if !ok {
		return gosnmp.SnmpPDU{}, fmt.Errorf("%s: %w: %T", ot.Identity, ErrUntypedValue, ot.Value)
	}
	data, err := wireValue(val)
	if err != nil {
		return gosnmp.SnmpPDU{}, fmt.Errorf("%s: %w", ot.Identity, err)
	}
	return gosnmp.SnmpPDU{Name: "." + oid.String(), Type: val.Type, Value: data}, nil
}

// ToPDUs converts bindings in order, stopping at the first failure.
func ToPDUs(bindings []smi.ObjectType) ([]gosnmp.SnmpPDU, error) {
	out := make([]gosnmp.SnmpPDU, 0, len(bindings))
	for i, ot := range bindings {
		p, err := ToPDU(ot)
		if err != nil {
			return nil, fmt.Errorf("binding %d: %w", i, err)
		}
		out = append(out, p)
	}
	return out, nil
}

func wireValue(val smi.Value) (any, error) {
	switch val.Type {
	case gosnmp.Null, gosnmp.NoSuchObject, gosnmp.NoSuchInstance, gosnmp.EndOfMibView:
		return nil, nil

	case gosnmp.Integer:
		n, ok := val.Data.(int64)
		if !ok || n < math.MinInt32 || n > math.MaxInt32 {
			return nil, badData(val)
		}
		return int(n), nil

	case gosnmp.Counter32, gosnmp.Gauge32, gosnmp.TimeTicks, gosnmp.Uinteger32:
		n, ok := val.Data.(uint64)
		if !ok || n > math.MaxUint32 {
			return nil, badData(val)
		}
		return uint32(n), nil

	case gosnmp.Counter64:
		n, ok := val.Data.(uint64)
		if !ok {
			return nil, badData(val)
		}
		return n, nil

	case gosnmp.OctetString, gosnmp.Opaque:
		b, ok := val.Data.([]byte)
		if !ok {
			return nil, badData(val)
		}
		return b, nil

	case gosnmp.IPAddress:
		ip, ok := val.Data.(net.IP)
		if !ok || ip.To4() == nil {
			return nil, badData(val)
		}
		return ip.To4().String(), nil

	case gosnmp.ObjectIdentifier:
		oid, ok := val.Data.(mib.Oid)
		if !ok || len(oid) == 0 {
			return nil, badData(val)
		}
		return "." + oid.String(), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, val.TypeName())
}

func badData(val smi.Value) error {
	return fmt.Errorf("%w: %s data %v (%T)", smi.ErrInvalidValue, val.TypeName(), val.Data, val.Data)
}

// FromPDU converts a received PDU to an unresolved binding with a numeric
// identity and a typed value.
func FromPDU(p gosnmp.SnmpPDU) (smi.ObjectType, error) {
	oid, err := mib.ParseOID(p.Name)
	if err != nil {
		return smi.ObjectType{}, err
	}
	val, err := fromWire(p.Type, p.Value)
	if err != nil {
		return smi.ObjectType{}, fmt.Errorf("%s: %w", p.Name, err)
	}
	return smi.NewObjectType(smi.ObjectIdentityFromOID(oid), val), nil
}

// FromPDUs converts received PDUs in order, stopping at the first failure.
func FromPDUs(pdus []gosnmp.SnmpPDU) ([]smi.ObjectType, error) {
	out := make([]smi.ObjectType, 0, len(pdus))
	for i, p := range pdus {
		ot, err := FromPDU(p)
		if err != nil {
			return nil, fmt.Errorf("binding %d: %w", i, err)
		}
		out = append(out, ot)
	}
	return out, nil
}

func fromWire(t gosnmp.Asn1BER, v any) (smi.Value, error) {
	switch t {
	case gosnmp.Null:
		return smi.Unspecified, nil
	case gosnmp.NoSuchObject:
		return smi.NoSuchObject, nil
	case gosnmp.NoSuchInstance:
		return smi.NoSuchInstance, nil
	case gosnmp.EndOfMibView:
		return smi.EndOfMibView, nil

	case gosnmp.Integer:
		n, ok := wireInteger(v)
		if !ok || !n.IsInt64() {
			return smi.Value{}, wireMismatch(t, v)
		}
		return smi.Integer(n.Int64()), nil

	case gosnmp.Counter32, gosnmp.Gauge32, gosnmp.TimeTicks, gosnmp.Uinteger32, gosnmp.Counter64:
		n, ok := wireInteger(v)
		if !ok || n.Sign() < 0 || !n.IsUint64() {
			return smi.Value{}, wireMismatch(t, v)
		}
		return smi.Value{Type: t, Data: n.Uint64()}, nil

	case gosnmp.OctetString, gosnmp.Opaque:
		switch x := v.(type) {
		case []byte:
			return smi.Value{Type: t, Data: append([]byte(nil), x...)}, nil
		case string:
			return smi.Value{Type: t, Data: []byte(x)}, nil
		}
		return smi.Value{}, wireMismatch(t, v)

	case gosnmp.IPAddress:
		var ip net.IP
		switch x := v.(type) {
		case string:
			ip = net.ParseIP(x).To4()
		case []byte:
			if len(x) == net.IPv4len {
				ip = net.IP(append([]byte(nil), x...))
			}
		}
		if ip == nil {
			return smi.Value{}, wireMismatch(t, v)
		}
		return smi.Value{Type: t, Data: ip}, nil

	case gosnmp.ObjectIdentifier:
		s, ok := v.(string)
		if !ok {
			return smi.Value{}, wireMismatch(t, v)
		}
		oid, err := mib.ParseOID(s)
		if err != nil {
			return smi.Value{}, err
		}
		return smi.ObjectIdentifier(oid), nil
	}
	return smi.Value{}, fmt.Errorf("%w: 0x%02X", ErrUnsupportedType, uint8(t))
}

// wireInteger accepts the integer kinds gosnmp decodes into.
func wireInteger(v any) (*big.Int, bool) {
	switch v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return gosnmp.ToBigInt(v), true
	}
	return nil, false
}

func wireMismatch(t gosnmp.Asn1BER, v any) error {
	return fmt.Errorf("%w: %v value %v (%T)", smi.ErrInvalidValue, t, v, v)
}

// NextVarBinds extracts the names to request next from a GETNEXT or
// GETBULK response row.
//
// Every binding is returned with its name and the unspecified value, unless
// all of them carry an exception value, in which case the result is empty.
// When orig is given, each non-exception response OID must be greater than
// the OID at the same position in orig; otherwise the result is still
// returned together with ErrOIDNotIncreasing.
func NextVarBinds(bindings, orig []smi.ObjectType) ([]smi.ObjectType, error) {
	var err error
	live := 0
	next := make([]smi.ObjectType, 0, len(bindings))
	for i, ot := range bindings {
		next = append(next, smi.NewObjectType(ot.Identity, smi.Unspecified))
		if val, ok := ot.TypedValue(); ok && val.IsException() {
			continue
		}
		live++
		if i < len(orig) && err == nil {
			if orig[i].Identity.OID().Compare(ot.Identity.OID()) >= 0 {
				err = fmt.Errorf("%w: %s", ErrOIDNotIncreasing, ot.Identity)
			}
		}
	}
	if live == 0 {
		return nil, err
	}
	return next, err
}
