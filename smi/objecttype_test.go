package smi

import (
	"math"
	"net"
	"testing"

	"github.com/gosnmp/gosnmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golangsnmp/snmpbind/mib"
	"github.com/golangsnmp/snmpbind/view"
)

func TestObjectTypeCast(t *testing.T) {
	tests := []struct {
		name   string
		id     ObjectIdentity
		raw    any
		typ    gosnmp.Asn1BER
		data   any
		pretty string
	}{
		{"display string", NewObjectIdentity("SNMPv2-MIB", "sysDescr", 0), "Linux box",
			gosnmp.OctetString, []byte("Linux box"), "SNMPv2-MIB::sysDescr.0 = Linux box"},
		{"enum label", NewObjectIdentity("IF-MIB", "ifAdminStatus", 1), "down",
			gosnmp.Integer, int64(2), "IF-MIB::ifAdminStatus.1 = down"},
		{"enum number", NewObjectIdentity("IF-MIB", "ifAdminStatus", 1), 1,
			gosnmp.Integer, int64(1), "IF-MIB::ifAdminStatus.1 = up"},
		{"decimal string", NewObjectIdentity("IP-MIB", "ipDefaultTTL", 0), "64",
			gosnmp.Integer, int64(64), "IP-MIB::ipDefaultTTL.0 = 64"},
		{"counter", NewObjectIdentity("IF-MIB", "ifInOctets", 3), uint32(1234),
			gosnmp.Counter32, uint64(1234), "IF-MIB::ifInOctets.3 = 1234"},
		{"counter64", NewObjectIdentity("IF-MIB", "ifHCInOctets", 3), uint64(math.MaxUint64),
			gosnmp.Counter64, uint64(math.MaxUint64), "IF-MIB::ifHCInOctets.3 = 18446744073709551615"},
		{"timeticks", NewObjectIdentity("SNMPv2-MIB", "sysUpTime", 0), 4200,
			gosnmp.TimeTicks, uint64(4200), "SNMPv2-MIB::sysUpTime.0 = 4200"},
		{"ip address", NewObjectIdentity("IP-MIB", "ipAdEntNetMask", "10.0.0.1"), "255.255.255.0",
			gosnmp.IPAddress, net.IP{255, 255, 255, 0}, "IP-MIB::ipAdEntNetMask.10.0.0.1 = 255.255.255.0"},
		{"phys address", NewObjectIdentity("IF-MIB", "ifPhysAddress", 2), []byte{0, 0x1a, 0x2b, 0x3c, 0x4d, 0x5e},
			gosnmp.OctetString, []byte{0, 0x1a, 0x2b, 0x3c, 0x4d, 0x5e}, "IF-MIB::ifPhysAddress.2 = 00:1a:2b:3c:4d:5e"},
		{"truth value", NewObjectIdentity("IF-MIB", "ifPromiscuousMode", 2), "false",
			gosnmp.Integer, int64(2), "IF-MIB::ifPromiscuousMode.2 = false"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ot, err := NewObjectType(tt.id, tt.raw).Resolve(testView, true)
			require.NoError(t, err)
			require.True(t, ot.IsResolved())
			val, ok := ot.TypedValue()
			require.True(t, ok)
			assert.Equal(t, tt.typ, val.Type)
			assert.Equal(t, tt.data, val.Data)
			assert.Equal(t, tt.pretty, ot.String())
		})
	}
}

func TestObjectTypeOIDValue(t *testing.T) {
	ot, err := NewObjectType(NewObjectIdentity("SNMPv2-MIB", "sysObjectID", 0), "1.3.6.1.4.1.8072.3.2.10").
		Resolve(testView, true)
	require.NoError(t, err)
	val, _ := ot.TypedValue()
	assert.Equal(t, mib.MustParseOID("1.3.6.1.4.1.8072.3.2.10"), val.Data)
	require.NotNil(t, val.Ref)
	assert.Equal(t, "SNMPv2-SMI::enterprises.8072.3.2.10", val.Ref.String())
	assert.Equal(t, "SNMPv2-MIB::sysObjectID.0 = SNMPv2-SMI::enterprises.8072.3.2.10", ot.String())

	ot, err = NewObjectType(NewObjectIdentity("SNMPv2-MIB", "snmpTrapOID", 0), "SNMPv2-MIB::coldStart").
		Resolve(testView, true)
	require.NoError(t, err)
	val, _ = ot.TypedValue()
	assert.Equal(t, mib.MustParseOID("1.3.6.1.6.3.1.1.5.1"), val.Data)
	assert.Equal(t, "SNMPv2-MIB::coldStart", val.Ref.String())

	// unknown OID values are kept without a reference
	ot, err = NewObjectType(NewObjectIdentity("SNMPv2-MIB", "sysObjectID", 0), mib.Oid{3, 1}).
		Resolve(testView, true)
	require.NoError(t, err)
	val, _ = ot.TypedValue()
	assert.Nil(t, val.Ref)
	assert.Equal(t, "3.1", val.String())
}

func TestObjectTypePassThrough(t *testing.T) {
	id := NewObjectIdentity("IF-MIB", "ifDescr", 1)
	for _, val := range []Value{Unspecified, NoSuchObject, NoSuchInstance, EndOfMibView} {
		t.Run(val.TypeName(), func(t *testing.T) {
			ot, err := NewObjectType(id, val).Resolve(testView, true)
			require.NoError(t, err)
			assert.Equal(t, val, ot.Value)
			assert.True(t, ot.Identity.IsResolved())
		})
	}

	ot, err := NewObjectType(id, nil).Resolve(testView, true)
	require.NoError(t, err)
	assert.Equal(t, Unspecified, ot.Value)
	assert.Equal(t, "IF-MIB::ifDescr.1 = ", ot.String())
}

func TestObjectTypeInvalidValue(t *testing.T) {
	tests := []struct {
		name string
		id   ObjectIdentity
		raw  any
	}{
		{"enum out of set", NewObjectIdentity("IF-MIB", "ifAdminStatus", 1), 7},
		{"unknown label", NewObjectIdentity("IF-MIB", "ifAdminStatus", 1), "sideways"},
		{"range", NewObjectIdentity("IP-MIB", "ipDefaultTTL", 0), 300},
		{"negative counter", NewObjectIdentity("IF-MIB", "ifInOctets", 1), -1},
		{"counter32 overflow", NewObjectIdentity("IF-MIB", "ifInOctets", 1), uint64(math.MaxUint32) + 1},
		{"size", NewObjectIdentity("IF-MIB", "ifAlias", 1), string(make([]byte, 65))},
		{"not an integer", NewObjectIdentity("IF-MIB", "ifMtu", 1), 1.5},
		{"bad ip", NewObjectIdentity("IP-MIB", "ipAdEntNetMask", "10.0.0.1"), "::1"},
		{"raw value on plain node", ObjectIdentityFromOID(mib.Oid{1, 3, 6, 1}), 5},
		{"raw value on table", NewObjectIdentity("IF-MIB", "ifTable"), 5},
		{"type mismatch", NewObjectIdentity("IF-MIB", "ifDescr", 1), Integer(5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewObjectType(tt.id, tt.raw).Resolve(testView, true)
			require.ErrorIs(t, err, ErrInvalidValue)
		})
	}
}

func TestObjectTypeLenient(t *testing.T) {
	// unknown names leave the binding untouched
	in := NewObjectType(NewObjectIdentity("NO-SUCH-MIB", "thing", 0), 5)
	out, err := in.Resolve(testView, false)
	require.NoError(t, err)
	assert.Equal(t, in, out)

	_, err = in.Resolve(testView, true)
	require.ErrorIs(t, err, view.ErrUnknownName)

	// a received value that violates the syntax is kept
	received := NewObjectType(ObjectIdentityFromOID(mib.MustParseOID("1.3.6.1.2.1.2.2.1.7.1")), Integer(9))
	out, err = received.Resolve(testView, false)
	require.NoError(t, err)
	assert.True(t, out.Identity.IsResolved())
	assert.Equal(t, Integer(9), out.Value)

	// a raw value that cannot be cast stays raw beside the resolved identity
	raw := NewObjectType(NewObjectIdentity("IF-MIB", "ifAdminStatus", 1), "sideways")
	out, err = raw.Resolve(testView, false)
	require.NoError(t, err)
	assert.True(t, out.Identity.IsResolved())
	assert.Equal(t, "IF-MIB::ifAdminStatus.1", out.Identity.String())
	assert.Equal(t, "sideways", out.Value)
	assert.False(t, out.IsResolved())
}

func TestObjectTypeResolveIdempotent(t *testing.T) {
	first, err := NewObjectType(NewObjectIdentity("SNMPv2-MIB", "sysName", 0), "core-1").Resolve(testView, true)
	require.NoError(t, err)
	second, err := first.Resolve(testView, true)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestObjectTypeReceivedUnsigned(t *testing.T) {
	ot, err := NewObjectType(ObjectIdentityFromOID(mib.MustParseOID("1.3.6.1.2.1.2.2.1.5.2")),
		Value{Type: gosnmp.Uinteger32, Data: uint64(1000000000)}).Resolve(testView, true)
	require.NoError(t, err)
	val, _ := ot.TypedValue()
	assert.Equal(t, gosnmp.Gauge32, val.Type)
	assert.Equal(t, "IF-MIB::ifSpeed.2 = 1000000000", ot.String())
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "No Such Object currently exists at this OID", NoSuchObject.String())
	assert.Equal(t, "No more variables left in this MIB View", EndOfMibView.String())
	assert.Equal(t, "0x00ff", OctetString([]byte{0, 0xff}).String())
	assert.Equal(t, "hello", OctetString([]byte("hello")).String())
	assert.Equal(t, "-3", Integer(-3).String())
	assert.Equal(t, "1.3.6", ObjectIdentifier(mib.Oid{1, 3, 6}).String())
	assert.True(t, EndOfMibView.IsException())
	assert.False(t, Unspecified.IsException())
	assert.True(t, Unspecified.IsUnspecified())
}
