package pdu

import (
	"net"
	"testing"

	"github.com/gosnmp/gosnmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golangsnmp/snmpbind/mib"
	"github.com/golangsnmp/snmpbind/smi"
	"github.com/golangsnmp/snmpbind/view"
)

var testView = view.Default()

func resolved(t *testing.T, id smi.ObjectIdentity, value any) smi.ObjectType {
	t.Helper()
	ot, err := smi.NewObjectType(id, value).Resolve(testView, true)
	require.NoError(t, err)
	return ot
}

func TestToPDU(t *testing.T) {
	tests := []struct {
		name string
		ot   smi.ObjectType
		want gosnmp.SnmpPDU
	}{
		{
			name: "octet string",
			ot:   resolved(t, smi.NewObjectIdentity("SNMPv2-MIB", "sysDescr", 0), "Linux"),
			want: gosnmp.SnmpPDU{Name: ".1.3.6.1.2.1.1.1.0", Type: gosnmp.OctetString, Value: []byte("Linux")},
		},
		{
			name: "integer",
			ot:   resolved(t, smi.NewObjectIdentity("IF-MIB", "ifAdminStatus", 2), "down"),
			want: gosnmp.SnmpPDU{Name: ".1.3.6.1.2.1.2.2.1.7.2", Type: gosnmp.Integer, Value: 2},
		},
		{
			name: "timeticks",
			ot:   resolved(t, smi.NewObjectIdentity("SNMPv2-MIB", "sysUpTime", 0), 100),
			want: gosnmp.SnmpPDU{Name: ".1.3.6.1.2.1.1.3.0", Type: gosnmp.TimeTicks, Value: uint32(100)},
		},
		{
			name: "counter64",
			ot:   resolved(t, smi.NewObjectIdentity("IF-MIB", "ifHCInOctets", 1), uint64(1)<<40),
			want: gosnmp.SnmpPDU{Name: ".1.3.6.1.2.1.31.1.1.1.6.1", Type: gosnmp.Counter64, Value: uint64(1) << 40},
		},
		{
			name: "ip address",
			ot:   resolved(t, smi.NewObjectIdentity("IP-MIB", "ipAdEntNetMask", "10.0.0.1"), "255.0.0.0"),
			want: gosnmp.SnmpPDU{Name: ".1.3.6.1.2.1.4.20.1.3.10.0.0.1", Type: gosnmp.IPAddress, Value: "255.0.0.0"},
		},
		{
			name: "object identifier",
			ot:   resolved(t, smi.NewObjectIdentity("SNMPv2-MIB", "snmpTrapOID", 0), "SNMPv2-MIB::coldStart"),
			want: gosnmp.SnmpPDU{Name: ".1.3.6.1.6.3.1.1.4.1.0", Type: gosnmp.ObjectIdentifier, Value: ".1.3.6.1.6.3.1.1.5.1"},
		},
		{
			name: "unspecified",
			ot:   resolved(t, smi.NewObjectIdentity("IF-MIB", "ifDescr", 1), nil),
			want: gosnmp.SnmpPDU{Name: ".1.3.6.1.2.1.2.2.1.2.1", Type: gosnmp.Null},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToPDU(tt.ot)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToPDUErrors(t *testing.T) {
	_, err := ToPDU(smi.NewObjectType(smi.NewObjectIdentity("IF-MIB", "ifDescr", 1), nil))
	require.ErrorIs(t, err, ErrNoOID)

	_, err = ToPDU(smi.NewObjectType(smi.ObjectIdentityFromOID(mib.Oid{1, 3, 6}), "raw"))
	require.ErrorIs(t, err, ErrUntypedValue)

	_, err = ToPDU(smi.NewObjectType(smi.ObjectIdentityFromOID(mib.Oid{1, 3, 6}),
		smi.Value{Type: gosnmp.Counter32, Data: uint64(1) << 33}))
	require.ErrorIs(t, err, smi.ErrInvalidValue)

	_, err = ToPDUs([]smi.ObjectType{
		resolved(t, smi.NewObjectIdentity("SNMPv2-MIB", "sysDescr", 0), nil),
		smi.NewObjectType(smi.NewObjectIdentity("IF-MIB", "ifDescr", 1), nil),
	})
	require.ErrorIs(t, err, ErrNoOID)
	assert.Contains(t, err.Error(), "binding 1")
}

func TestFromPDU(t *testing.T) {
	tests := []struct {
		name string
		pdu  gosnmp.SnmpPDU
		want smi.Value
	}{
		{"integer", gosnmp.SnmpPDU{Name: ".1.3.6.1.2.1.2.2.1.7.1", Type: gosnmp.Integer, Value: 1}, smi.Integer(1)},
		{"octets", gosnmp.SnmpPDU{Name: ".1.3.6.1.2.1.1.1.0", Type: gosnmp.OctetString, Value: []byte("x")},
			smi.OctetString([]byte("x"))},
		{"counter32", gosnmp.SnmpPDU{Name: ".1.3.6.1.2.1.2.2.1.10.1", Type: gosnmp.Counter32, Value: uint(7)},
			smi.Value{Type: gosnmp.Counter32, Data: uint64(7)}},
		{"timeticks", gosnmp.SnmpPDU{Name: ".1.3.6.1.2.1.1.3.0", Type: gosnmp.TimeTicks, Value: uint32(9)},
			smi.Value{Type: gosnmp.TimeTicks, Data: uint64(9)}},
		{"counter64", gosnmp.SnmpPDU{Name: ".1.3.6.1.2.1.31.1.1.1.6.1", Type: gosnmp.Counter64, Value: uint64(1) << 50},
			smi.Value{Type: gosnmp.Counter64, Data: uint64(1) << 50}},
		{"ip", gosnmp.SnmpPDU{Name: ".1.3.6.1.2.1.4.20.1.3.10.0.0.1", Type: gosnmp.IPAddress, Value: "255.0.0.0"},
			smi.Value{Type: gosnmp.IPAddress, Data: net.IP{255, 0, 0, 0}}},
		{"oid", gosnmp.SnmpPDU{Name: ".1.3.6.1.2.1.1.2.0", Type: gosnmp.ObjectIdentifier, Value: ".1.3.6.1.4.1.8072"},
			smi.ObjectIdentifier(mib.Oid{1, 3, 6, 1, 4, 1, 8072})},
		{"end of mib", gosnmp.SnmpPDU{Name: ".1.3.6.1.2.1.1.1.0", Type: gosnmp.EndOfMibView}, smi.EndOfMibView},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ot, err := FromPDU(tt.pdu)
			require.NoError(t, err)
			assert.False(t, ot.Identity.IsResolved())
			assert.Equal(t, tt.want, ot.Value)
		})
	}
}

func TestFromPDUResolve(t *testing.T) {
	bindings, err := FromPDUs([]gosnmp.SnmpPDU{
		{Name: ".1.3.6.1.2.1.2.2.1.7.1", Type: gosnmp.Integer, Value: 2},
		{Name: ".1.3.6.1.2.1.1.2.0", Type: gosnmp.ObjectIdentifier, Value: ".1.3.6.1.4.1.8072.3.2.10"},
	})
	require.NoError(t, err)
	require.Len(t, bindings, 2)

	first, err := bindings[0].Resolve(testView, false)
	require.NoError(t, err)
	assert.Equal(t, "IF-MIB::ifAdminStatus.1 = down", first.String())

	second, err := bindings[1].Resolve(testView, false)
	require.NoError(t, err)
	assert.Equal(t, "SNMPv2-MIB::sysObjectID.0 = SNMPv2-SMI::enterprises.8072.3.2.10", second.String())
}

func TestFromPDUErrors(t *testing.T) {
	_, err := FromPDU(gosnmp.SnmpPDU{Name: "bogus", Type: gosnmp.Integer, Value: 1})
	require.ErrorIs(t, err, mib.ErrInvalidOID)

	_, err = FromPDU(gosnmp.SnmpPDU{Name: ".1.3", Type: gosnmp.Integer, Value: "one"})
	require.ErrorIs(t, err, smi.ErrInvalidValue)

	_, err = FromPDU(gosnmp.SnmpPDU{Name: ".1.3", Type: gosnmp.Counter32, Value: -1})
	require.ErrorIs(t, err, smi.ErrInvalidValue)

	_, err = FromPDU(gosnmp.SnmpPDU{Name: ".1.3", Type: gosnmp.NsapAddress, Value: []byte{1}})
	require.ErrorIs(t, err, ErrUnsupportedType)
}

func binding(oid string, val smi.Value) smi.ObjectType {
	return smi.NewObjectType(smi.ObjectIdentityFromOID(mib.MustParseOID(oid)), val)
}

func TestNextVarBinds(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		next, err := NextVarBinds(nil, nil)
		require.NoError(t, err)
		assert.Empty(t, next)
	})

	t.Run("all exceptions", func(t *testing.T) {
		next, err := NextVarBinds([]smi.ObjectType{
			binding("1.3.6.1.2.1.1.1.0", smi.EndOfMibView),
			binding("1.3.6.1.2.1.1.2.0", smi.NoSuchInstance),
		}, nil)
		require.NoError(t, err)
		assert.Empty(t, next)
	})

	t.Run("successor", func(t *testing.T) {
		next, err := NextVarBinds([]smi.ObjectType{
			binding("1.3.6.1.2.1.1.1.0", smi.OctetString([]byte("x"))),
			binding("1.3.6.1.2.1.1.9.0", smi.EndOfMibView),
		}, nil)
		require.NoError(t, err)
		require.Len(t, next, 2)
		assert.Equal(t, "1.3.6.1.2.1.1.1.0", next[0].Identity.OID().String())
		assert.Equal(t, smi.Unspecified, next[0].Value)
		assert.Equal(t, smi.Unspecified, next[1].Value)
	})

	t.Run("not increasing", func(t *testing.T) {
		orig := []smi.ObjectType{binding("1.3.6.1.2.1.1.5.0", smi.Unspecified)}
		next, err := NextVarBinds([]smi.ObjectType{binding("1.3.6.1.2.1.1.4.0", smi.Integer(1))}, orig)
		require.ErrorIs(t, err, ErrOIDNotIncreasing)
		assert.Len(t, next, 1)
	})

	t.Run("increasing", func(t *testing.T) {
		orig := []smi.ObjectType{binding("1.3.6.1.2.1.1.5.0", smi.Unspecified)}
		_, err := NextVarBinds([]smi.ObjectType{binding("1.3.6.1.2.1.1.6.0", smi.Integer(1))}, orig)
		require.NoError(t, err)
	})
}
