package view

import (
	"fmt"
	"log/slog"
	"math"
	"net"
	"slices"
	"strconv"

	"github.com/golangsnmp/snmpbind/mib"
)

// InstanceID returns the OID of nd extended by the encoded indices.
//
// For columns each index value is encoded against the matching INDEX
// component of the row (following AUGMENTS); fewer values than components
// yield a partial instance. Scalars take at most one value, normally 0.
// Other nodes append each value as OID arcs.
//
// Accepted values: Go integers and enum labels for integer syntaxes,
// string or []byte for OCTET STRING, net.IP or dotted string for
// IpAddress, mib.Oid or dotted string for OBJECT IDENTIFIER.
func (v *View) InstanceID(nd *mib.Node, indices []any) (mib.Oid, error) {
	base := nd.OID()
	switch {
	case len(indices) == 0:
		return base, nil
	case nd.Kind() == mib.KindColumn:
		suffix, err := encodeColumnIndices(nd, indices)
		if err != nil {
			return nil, err
		}
		return base.Append(suffix), nil
	case nd.Kind() == mib.KindScalar && len(indices) > 1:
		return nil, fmt.Errorf("%w: scalar %s takes one instance index, got %d",
			ErrMalformedIndex, nd.Name(), len(indices))
	}

	out := base
	for _, idx := range indices {
		arcs, err := toArcs(idx)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", nd.Name(), err)
		}
		out = out.Append(arcs)
	}
	return out, nil
}

// Indices decodes the instance suffix below nd. For columns the suffix is
// split per INDEX component and each component is checked against the
// constraints InstanceID enforces; scalars take a single arc; for any other
// node a non-empty suffix becomes a single mib.Oid value.
func (v *View) Indices(nd *mib.Node, suffix mib.Oid) ([]any, error) {
	switch {
	case len(suffix) == 0:
		return nil, nil
	case nd.Kind() == mib.KindScalar && len(suffix) > 1:
		return nil, fmt.Errorf("%w: scalar %s takes one instance arc, got %s",
			ErrMalformedIndex, nd.Name(), suffix)
	case nd.Kind() != mib.KindColumn:
		return []any{slices.Clone(suffix)}, nil
	}

	entries, err := columnIndexes(nd)
	if err != nil {
		return nil, err
	}
	var values []any
	rest := suffix
	for i, entry := range entries {
		if len(rest) == 0 {
			break
		}
		implied := entry.Implied && i == len(entries)-1
		var val any
		val, rest, err = decodeComponent(entry.Object, implied, rest)
		if err != nil {
			return nil, fmt.Errorf("%s index %s: %w", nd.Name(), entry.Object.Name(), err)
		}
		values = append(values, val)
	}
	if len(rest) > 0 {
		return nil, fmt.Errorf("%w: %s has %d trailing arcs after its index",
			ErrMalformedIndex, nd.Name(), len(rest))
	}
	if v.log.TraceEnabled() {
		v.log.Trace("decoded indices",
			slog.String("node", nd.Name()),
			slog.String("suffix", suffix.String()),
			slog.Int("count", len(values)))
	}
	return values, nil
}

func columnIndexes(nd *mib.Node) ([]mib.IndexEntry, error) {
	row := nd.Object().Row()
	if row == nil {
		return nil, fmt.Errorf("%w: column %s has no row", ErrMalformedIndex, nd.Name())
	}
	entries := row.EffectiveIndexes()
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: row %s has no INDEX", ErrMalformedIndex, row.Name())
	}
	return entries, nil
}

func encodeColumnIndices(nd *mib.Node, indices []any) (mib.Oid, error) {
	entries, err := columnIndexes(nd)
	if err != nil {
		return nil, err
	}
	if len(indices) > len(entries) {
		return nil, fmt.Errorf("%w: %s takes %d index values, got %d",
			ErrMalformedIndex, nd.Name(), len(entries), len(indices))
	}
	var suffix mib.Oid
	for i, val := range indices {
		entry := entries[i]
		implied := entry.Implied && i == len(entries)-1
		arcs, err := encodeComponent(entry.Object, implied, val)
		if err != nil {
			return nil, fmt.Errorf("%s index %s: %w", nd.Name(), entry.Object.Name(), err)
		}
		suffix = append(suffix, arcs...)
	}
	return suffix, nil
}

func encodeComponent(obj *mib.Object, implied bool, val any) (mib.Oid, error) {
	switch obj.EffectiveBase() {
	case mib.BaseInteger32, mib.BaseUnsigned32, mib.BaseCounter32, mib.BaseGauge32,
		mib.BaseTimeTicks, mib.BaseCounter64:
		n, err := indexInteger(obj, val)
		if err != nil {
			return nil, err
		}
		if n < 0 || n > math.MaxUint32 {
			return nil, fmt.Errorf("%w: %d does not fit an OID arc", ErrMalformedIndex, n)
		}
		if !mib.InRanges(obj.EffectiveRanges(), n) {
			return nil, fmt.Errorf("%w: %d outside %v", ErrMalformedIndex, n, obj.EffectiveRanges())
		}
		return mib.Oid{uint32(n)}, nil

	case mib.BaseOctetString, mib.BaseOpaque, mib.BaseBits:
		var data []byte
		switch x := val.(type) {
		case string:
			data = []byte(x)
		case []byte:
			data = x
		default:
			return nil, fmt.Errorf("%w: %T is not an octet string", ErrMalformedIndex, val)
		}
		sizes := obj.EffectiveSizes()
		if !mib.InRanges(sizes, int64(len(data))) {
			return nil, fmt.Errorf("%w: length %d outside %v", ErrMalformedIndex, len(data), sizes)
		}
		arcs := make(mib.Oid, 0, len(data)+1)
		if _, fixed := mib.FixedSize(sizes); !fixed && !implied {
			arcs = append(arcs, uint32(len(data)))
		}
		for _, c := range data {
			arcs = append(arcs, uint32(c))
		}
		return arcs, nil

	case mib.BaseIpAddress:
		ip, err := toIPv4(val)
		if err != nil {
			return nil, err
		}
		return mib.Oid{uint32(ip[0]), uint32(ip[1]), uint32(ip[2]), uint32(ip[3])}, nil

	case mib.BaseObjectIdentifier:
		oid, err := toArcs(val)
		if err != nil {
			return nil, err
		}
		if implied {
			return oid, nil
		}
		return append(mib.Oid{uint32(len(oid))}, oid...), nil
	}
	return nil, fmt.Errorf("%w: unsupported index syntax %s", ErrMalformedIndex, obj.EffectiveBase())
}

func decodeComponent(obj *mib.Object, implied bool, suffix mib.Oid) (any, mib.Oid, error) {
	switch obj.EffectiveBase() {
	case mib.BaseInteger32, mib.BaseUnsigned32, mib.BaseCounter32, mib.BaseGauge32,
		mib.BaseTimeTicks, mib.BaseCounter64:
		n := int64(suffix[0])
		if !mib.InRanges(obj.EffectiveRanges(), n) {
			return nil, nil, fmt.Errorf("%w: %d outside %v", ErrMalformedIndex, n, obj.EffectiveRanges())
		}
		return n, suffix[1:], nil

	case mib.BaseOctetString, mib.BaseOpaque, mib.BaseBits:
		sizes := obj.EffectiveSizes()
		var n int
		switch size, fixed := mib.FixedSize(sizes); {
		case fixed:
			n = size
		case implied:
			n = len(suffix)
		default:
			n = int(suffix[0])
			suffix = suffix[1:]
		}
		if n > len(suffix) {
			return nil, nil, fmt.Errorf("%w: need %d octets, have %d arcs", ErrMalformedIndex, n, len(suffix))
		}
		if !mib.InRanges(sizes, int64(n)) {
			return nil, nil, fmt.Errorf("%w: length %d outside %v", ErrMalformedIndex, n, sizes)
		}
		data := make([]byte, n)
		for i, arc := range suffix[:n] {
			if arc > math.MaxUint8 {
				return nil, nil, fmt.Errorf("%w: arc %d is not an octet", ErrMalformedIndex, arc)
			}
			data[i] = byte(arc)
		}
		return data, suffix[n:], nil

	case mib.BaseIpAddress:
		if len(suffix) < net.IPv4len {
			return nil, nil, fmt.Errorf("%w: IpAddress needs 4 arcs, have %d", ErrMalformedIndex, len(suffix))
		}
		ip := make(net.IP, net.IPv4len)
		for i, arc := range suffix[:net.IPv4len] {
			if arc > math.MaxUint8 {
				return nil, nil, fmt.Errorf("%w: arc %d is not an octet", ErrMalformedIndex, arc)
			}
			ip[i] = byte(arc)
		}
		return ip, suffix[net.IPv4len:], nil

	case mib.BaseObjectIdentifier:
		n := len(suffix)
		if !implied {
			n = int(suffix[0])
			suffix = suffix[1:]
		}
		if n > len(suffix) {
			return nil, nil, fmt.Errorf("%w: need %d arcs, have %d", ErrMalformedIndex, n, len(suffix))
		}
		return slices.Clone(suffix[:n]), suffix[n:], nil
	}
	return nil, nil, fmt.Errorf("%w: unsupported index syntax %s", ErrMalformedIndex, obj.EffectiveBase())
}

// indexInteger accepts Go integers, enum labels and decimal strings.
func indexInteger(obj *mib.Object, val any) (int64, error) {
	if s, ok := val.(string); ok {
		if nv, found := obj.Enum(s); found {
			return nv.Value, nil
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not an integer or label", ErrMalformedIndex, s)
		}
		return n, nil
	}
	n, ok := toInt64(val)
	if !ok {
		return 0, fmt.Errorf("%w: %T is not an integer", ErrMalformedIndex, val)
	}
	return n, nil
}

func toInt64(val any) (int64, bool) {
	switch x := val.(type) {
	case int:
		return int64(x), true
	case int8:
		return int64(x), true
	case int16:
		return int64(x), true
	case int32:
		return int64(x), true
	case int64:
		return x, true
	case uint:
		return int64(x), uint64(x) <= math.MaxInt64
	case uint8:
		return int64(x), true
	case uint16:
		return int64(x), true
	case uint32:
		return int64(x), true
	case uint64:
		return int64(x), x <= math.MaxInt64
	}
	return 0, false
}

func toIPv4(val any) (net.IP, error) {
	var ip net.IP
	switch x := val.(type) {
	case net.IP:
		ip = x.To4()
	case string:
		ip = net.ParseIP(x).To4()
	case []byte:
		if len(x) == net.IPv4len {
			ip = net.IP(x)
		}
	case [4]byte:
		ip = net.IP(x[:])
	}
	if ip == nil {
		return nil, fmt.Errorf("%w: %v is not an IPv4 address", ErrMalformedIndex, val)
	}
	return ip, nil
}

// toArcs converts an index value to raw OID arcs.
func toArcs(val any) (mib.Oid, error) {
	switch x := val.(type) {
	case mib.Oid:
		return slices.Clone(x), nil
	case []uint32:
		return slices.Clone(mib.Oid(x)), nil
	case string:
		oid, err := mib.ParseOID(x)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedIndex, err)
		}
		return oid, nil
	}
	n, ok := toInt64(val)
	if !ok || n < 0 || n > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %v (%T) is not an OID arc", ErrMalformedIndex, val, val)
	}
	return mib.Oid{uint32(n)}, nil
}
