package smi

import (
	"encoding/hex"
	"fmt"
	"math"
	"math/big"
	"net"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gosnmp/gosnmp"

	"github.com/golangsnmp/snmpbind/mib"
)

// Value is a typed SNMP value. Data holds the canonical Go form for Type:
//
//	Integer                                   int64
//	Counter32, Gauge32, TimeTicks, Counter64  uint64
//	OctetString, Opaque                       []byte
//	IPAddress                                 net.IP (4 bytes)
//	ObjectIdentifier                          mib.Oid
//	Null and the exception types              nil
//
// For OBJECT IDENTIFIER values Ref carries the resolved identity of the
// referenced OID when the view knows it.
type Value struct {
	Type gosnmp.Asn1BER
	Data any
	Ref  *ObjectIdentity
}

// Unspecified is the placeholder bound to names whose value is not known,
// as in GET requests.
var Unspecified = Value{Type: gosnmp.Null}

// Exception values reported in place of a value.
var (
	NoSuchObject   = Value{Type: gosnmp.NoSuchObject}
	NoSuchInstance = Value{Type: gosnmp.NoSuchInstance}
	EndOfMibView   = Value{Type: gosnmp.EndOfMibView}
)

// Integer returns an Integer value.
func Integer(n int64) Value { return Value{Type: gosnmp.Integer, Data: n} }

// OctetString returns an OctetString value.
func OctetString(b []byte) Value { return Value{Type: gosnmp.OctetString, Data: slices.Clone(b)} }

// ObjectIdentifier returns an ObjectIdentifier value.
func ObjectIdentifier(oid mib.Oid) Value {
	return Value{Type: gosnmp.ObjectIdentifier, Data: slices.Clone(oid)}
}

// IsException reports whether v is noSuchObject, noSuchInstance or
// endOfMibView.
func (v Value) IsException() bool {
	switch v.Type {
	case gosnmp.NoSuchObject, gosnmp.NoSuchInstance, gosnmp.EndOfMibView:
		return true
	}
	return false
}

// IsUnspecified reports whether v is the Null placeholder.
func (v Value) IsUnspecified() bool { return v.Type == gosnmp.Null }

// TypeName returns the SMI name of v's type.
func (v Value) TypeName() string {
	switch v.Type {
	case gosnmp.Integer:
		return "Integer32"
	case gosnmp.OctetString:
		return "OctetString"
	case gosnmp.Null:
		return "Null"
	case gosnmp.ObjectIdentifier:
		return "ObjectIdentifier"
	case gosnmp.IPAddress:
		return "IpAddress"
	case gosnmp.Counter32:
		return "Counter32"
	case gosnmp.Gauge32:
		return "Gauge32"
	case gosnmp.TimeTicks:
		return "TimeTicks"
	case gosnmp.Opaque:
		return "Opaque"
	case gosnmp.Counter64:
		return "Counter64"
	case gosnmp.Uinteger32:
		return "Unsigned32"
	case gosnmp.NoSuchObject:
		return "NoSuchObject"
	case gosnmp.NoSuchInstance:
		return "NoSuchInstance"
	case gosnmp.EndOfMibView:
		return "EndOfMibView"
	default:
		return fmt.Sprintf("Asn1BER(0x%02X)", uint8(v.Type))
	}
}

// String renders v without MIB context.
func (v Value) String() string {
	switch v.Type {
	case gosnmp.Null:
		return ""
	case gosnmp.NoSuchObject:
		return "No Such Object currently exists at this OID"
	case gosnmp.NoSuchInstance:
		return "No Such Instance currently exists at this OID"
	case gosnmp.EndOfMibView:
		return "No more variables left in this MIB View"
	case gosnmp.ObjectIdentifier:
		if v.Ref != nil && v.Ref.IsResolved() {
			return v.Ref.String()
		}
	}
	switch x := v.Data.(type) {
	case []byte:
		return formatOctets(x)
	case mib.Oid:
		return x.String()
	case net.IP:
		return x.String()
	case nil:
		return ""
	default:
		return fmt.Sprint(x)
	}
}

// expectedType maps a base syntax to its wire tag. Unsigned32 shares the
// Gauge32 tag in SMIv2.
func expectedType(base mib.BaseType) (gosnmp.Asn1BER, bool) {
	switch base {
	case mib.BaseInteger32:
		return gosnmp.Integer, true
	case mib.BaseUnsigned32, mib.BaseGauge32:
		return gosnmp.Gauge32, true
	case mib.BaseCounter32:
		return gosnmp.Counter32, true
	case mib.BaseCounter64:
		return gosnmp.Counter64, true
	case mib.BaseTimeTicks:
		return gosnmp.TimeTicks, true
	case mib.BaseIpAddress:
		return gosnmp.IPAddress, true
	case mib.BaseOctetString, mib.BaseBits:
		return gosnmp.OctetString, true
	case mib.BaseObjectIdentifier:
		return gosnmp.ObjectIdentifier, true
	case mib.BaseOpaque:
		return gosnmp.Opaque, true
	}
	return 0, false
}

// compatibleType reports whether a received tag fits the expected one.
func compatibleType(got, want gosnmp.Asn1BER) bool {
	if got == want {
		return true
	}
	// SMIv1 agents still send the Unsigned32 application tag
	return want == gosnmp.Gauge32 && got == gosnmp.Uinteger32
}

// castValue converts raw to obj's syntax, checking enumerations, ranges
// and sizes. raw may already be a Value, whose Data is re-checked.
func castValue(obj *mib.Object, raw any) (Value, error) {
	base := obj.EffectiveBase()
	tag, ok := expectedType(base)
	if !ok {
		return Value{}, fmt.Errorf("%w: %s has no value syntax", ErrInvalidValue, obj.Name())
	}
	if typed, isValue := raw.(Value); isValue {
		if !compatibleType(typed.Type, tag) {
			return Value{}, fmt.Errorf("%w: %s expects %s, got %s",
				ErrInvalidValue, obj.Name(), base, typed.TypeName())
		}
		raw = typed.Data
	}

	switch base {
	case mib.BaseInteger32:
		n, err := castInteger(obj, raw)
		if err != nil {
			return Value{}, err
		}
		return Value{Type: tag, Data: n}, nil

	case mib.BaseUnsigned32, mib.BaseGauge32, mib.BaseCounter32, mib.BaseTimeTicks, mib.BaseCounter64:
		n, err := castUnsigned(obj, base, raw)
		if err != nil {
			return Value{}, err
		}
		return Value{Type: tag, Data: n}, nil

	case mib.BaseOctetString, mib.BaseOpaque:
		data, err := castOctets(obj, raw)
		if err != nil {
			return Value{}, err
		}
		return Value{Type: tag, Data: data}, nil

	case mib.BaseBits:
		data, err := castBits(obj, raw)
		if err != nil {
			return Value{}, err
		}
		return Value{Type: tag, Data: data}, nil

	case mib.BaseIpAddress:
		ip, err := castIP(raw)
		if err != nil {
			return Value{}, fmt.Errorf("%s: %w", obj.Name(), err)
		}
		return Value{Type: tag, Data: ip}, nil

	case mib.BaseObjectIdentifier:
		oid, err := castOID(raw)
		if err != nil {
			return Value{}, fmt.Errorf("%s: %w", obj.Name(), err)
		}
		return Value{Type: tag, Data: oid}, nil
	}
	return Value{}, fmt.Errorf("%w: %s has unsupported syntax %s", ErrInvalidValue, obj.Name(), base)
}

// bigInteger accepts any Go integer or a decimal string.
func bigInteger(raw any) (*big.Int, bool) {
	switch x := raw.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return gosnmp.ToBigInt(x), true
	case *big.Int:
		if x == nil {
			return nil, false
		}
		return new(big.Int).Set(x), true
	case string:
		return new(big.Int).SetString(strings.TrimSpace(x), 10)
	}
	return nil, false
}

func castInteger(obj *mib.Object, raw any) (int64, error) {
	if s, ok := raw.(string); ok {
		if nv, found := obj.Enum(s); found {
			return nv.Value, nil
		}
	}
	n, ok := bigInteger(raw)
	if !ok {
		return 0, fmt.Errorf("%w: %s: %v (%T) is not an integer", ErrInvalidValue, obj.Name(), raw, raw)
	}
	if !n.IsInt64() || n.Int64() < math.MinInt32 || n.Int64() > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %s: %s overflows Integer32", ErrInvalidValue, obj.Name(), n)
	}
	v := n.Int64()
	if enums := obj.EffectiveEnums(); len(enums) > 0 {
		if _, found := obj.EnumLabel(v); !found {
			return 0, fmt.Errorf("%w: %s: %d is not an enumerated value", ErrInvalidValue, obj.Name(), v)
		}
		return v, nil
	}
	if !mib.InRanges(obj.EffectiveRanges(), v) {
		return 0, fmt.Errorf("%w: %s: %d outside %v", ErrInvalidValue, obj.Name(), v, obj.EffectiveRanges())
	}
	return v, nil
}

func castUnsigned(obj *mib.Object, base mib.BaseType, raw any) (uint64, error) {
	n, ok := bigInteger(raw)
	if !ok {
		return 0, fmt.Errorf("%w: %s: %v (%T) is not an integer", ErrInvalidValue, obj.Name(), raw, raw)
	}
	limit := uint64(math.MaxUint32)
	if base == mib.BaseCounter64 {
		limit = math.MaxUint64
	}
	if n.Sign() < 0 || !n.IsUint64() || n.Uint64() > limit {
		return 0, fmt.Errorf("%w: %s: %s outside %s", ErrInvalidValue, obj.Name(), n, base)
	}
	v := n.Uint64()
	if v <= math.MaxInt64 && !mib.InRanges(obj.EffectiveRanges(), int64(v)) {
		return 0, fmt.Errorf("%w: %s: %d outside %v", ErrInvalidValue, obj.Name(), v, obj.EffectiveRanges())
	}
	return v, nil
}

func castOctets(obj *mib.Object, raw any) ([]byte, error) {
	var data []byte
	switch x := raw.(type) {
	case []byte:
		data = slices.Clone(x)
	case string:
		data = []byte(x)
	default:
		return nil, fmt.Errorf("%w: %s: %T is not an octet string", ErrInvalidValue, obj.Name(), raw)
	}
	if sizes := obj.EffectiveSizes(); !mib.InRanges(sizes, int64(len(data))) {
		return nil, fmt.Errorf("%w: %s: length %d outside %v", ErrInvalidValue, obj.Name(), len(data), sizes)
	}
	return data, nil
}

// castBits accepts raw octets or a list of bit labels.
func castBits(obj *mib.Object, raw any) ([]byte, error) {
	var labels []string
	switch x := raw.(type) {
	case []byte:
		return slices.Clone(x), nil
	case []string:
		labels = x
	case string:
		labels = strings.FieldsFunc(x, func(r rune) bool { return r == ',' || r == ' ' })
	default:
		return nil, fmt.Errorf("%w: %s: %T is not a BITS value", ErrInvalidValue, obj.Name(), raw)
	}
	var data []byte
	for _, label := range labels {
		bit, ok := obj.Bit(label)
		if !ok {
			return nil, fmt.Errorf("%w: %s: unknown bit %q", ErrInvalidValue, obj.Name(), label)
		}
		pos := int(bit.Value)
		for len(data) <= pos/8 {
			data = append(data, 0)
		}
		data[pos/8] |= 0x80 >> (pos % 8)
	}
	return data, nil
}

func castIP(raw any) (net.IP, error) {
	var ip net.IP
	switch x := raw.(type) {
	case net.IP:
		ip = x.To4()
	case string:
		ip = net.ParseIP(x).To4()
	case []byte:
		if len(x) == net.IPv4len {
			ip = net.IP(slices.Clone(x))
		}
	case [4]byte:
		ip = net.IP(x[:])
	}
	if ip == nil {
		return nil, fmt.Errorf("%w: %v is not an IPv4 address", ErrInvalidValue, raw)
	}
	return slices.Clone(ip), nil
}

func castOID(raw any) (mib.Oid, error) {
	switch x := raw.(type) {
	case mib.Oid:
		return slices.Clone(x), nil
	case []uint32:
		return slices.Clone(mib.Oid(x)), nil
	case ObjectIdentity:
		if oid := x.OID(); oid != nil {
			return oid, nil
		}
		return nil, fmt.Errorf("%w: identity %s is not resolved", ErrInvalidValue, x)
	case string:
		oid, err := mib.ParseOID(x)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidValue, err)
		}
		return oid, nil
	}
	return nil, fmt.Errorf("%w: %T is not an OBJECT IDENTIFIER", ErrInvalidValue, raw)
}

// formatOctets renders printable UTF-8 text as is and anything else as
// 0x-prefixed hex.
func formatOctets(b []byte) string {
	if isPrintable(b) {
		return string(b)
	}
	return "0x" + hex.EncodeToString(b)
}

func isPrintable(b []byte) bool {
	if !utf8.Valid(b) {
		return false
	}
	for _, r := range string(b) {
		if r < 0x20 && r != '\t' && r != '\n' && r != '\r' {
			return false
		}
		if r == 0x7f {
			return false
		}
	}
	return true
}

// formatIndex renders one decoded index value for the pretty name form.
func formatIndex(idx any) string {
	switch x := idx.(type) {
	case []byte:
		if isPrintable(x) {
			return strconv.Quote(string(x))
		}
		return "0x" + hex.EncodeToString(x)
	case string:
		return strconv.Quote(x)
	case net.IP:
		return x.String()
	case mib.Oid:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

// formatValue renders v using obj's enumerations and display hint.
func formatValue(obj *mib.Object, v Value) string {
	if obj == nil {
		return v.String()
	}
	switch x := v.Data.(type) {
	case int64:
		if nv, ok := obj.EnumLabel(x); ok {
			return nv.Label
		}
	case []byte:
		if obj.EffectiveBase() == mib.BaseBits {
			return formatBits(obj, x)
		}
		switch hint := obj.EffectiveDisplayHint(); {
		case strings.HasSuffix(hint, "a"), strings.HasSuffix(hint, "t"):
			return string(x)
		case hint == "1x:":
			parts := make([]string, len(x))
			for i, c := range x {
				parts[i] = fmt.Sprintf("%02x", c)
			}
			return strings.Join(parts, ":")
		}
	}
	return v.String()
}

func formatBits(obj *mib.Object, data []byte) string {
	var labels []string
	for _, bit := range obj.EffectiveBits() {
		pos := int(bit.Value)
		if pos/8 < len(data) && data[pos/8]&(0x80>>(pos%8)) != 0 {
			labels = append(labels, bit.Label)
		}
	}
	if len(labels) == 0 {
		return "0x" + hex.EncodeToString(data)
	}
	return strings.Join(labels, ", ")
}
