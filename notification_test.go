package snmpbind

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golangsnmp/snmpbind/mib"
	"github.com/golangsnmp/snmpbind/smi"
	"github.com/golangsnmp/snmpbind/view"
)

func names(bindings []smi.ObjectType) []string {
	out := make([]string, len(bindings))
	for i, b := range bindings {
		out[i] = b.String()
	}
	return out
}

func TestNotificationSingleTemplate(t *testing.T) {
	tmpl := smi.NewNotificationType(smi.NewObjectIdentity("IF-MIB", "linkUp"), []any{2},
		map[string]any{"IF-MIB::ifIndex": 2, "IF-MIB::ifAdminStatus": "up", "IF-MIB::ifOperStatus": "up"})

	out, err := NewNotificationOriginator().MakeVarBinds(NewCache(), []Binding{Template(tmpl)})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"SNMPv2-MIB::snmpTrapOID.0 = IF-MIB::linkUp",
		"IF-MIB::ifIndex.2 = 2",
		"IF-MIB::ifAdminStatus.2 = up",
		"IF-MIB::ifOperStatus.2 = up",
	}, names(out))
}

func TestNotificationTemplateInSequence(t *testing.T) {
	tmpl := smi.NewNotificationType(smi.NewObjectIdentity("SNMPv2-MIB", "coldStart"), nil, nil).
		AddVarBinds(smi.NewObjectType(smi.NewObjectIdentity("SNMPv2-MIB", "sysName", 0), "core-1"))

	out, err := NewNotificationOriginator().MakeVarBinds(NewCache(), []Binding{
		Template(tmpl),
		Named("SNMPv2-MIB::sysLocation.0", "lab"),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"SNMPv2-MIB::snmpTrapOID.0 = SNMPv2-MIB::coldStart",
		"SNMPv2-MIB::sysName.0 = core-1",
		"SNMPv2-MIB::sysLocation.0 = lab",
	}, names(out))
}

func TestNotificationPlainBindings(t *testing.T) {
	out, err := NewNotificationOriginator().MakeVarBinds(NewCache(), []Binding{
		Named("SNMPv2-MIB::snmpTrapOID.0", "IF-MIB::linkDown"),
		Legacy("IF-MIB", "ifIndex", 4, 4),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"SNMPv2-MIB::snmpTrapOID.0 = IF-MIB::linkDown",
		"IF-MIB::ifIndex.4 = 4",
	}, names(out))
}

func TestNotificationMakeErrors(t *testing.T) {
	tests := []struct {
		name     string
		bindings []Binding
		err      error
	}{
		{"unknown notification", []Binding{
			Template(smi.NewNotificationType(smi.NewObjectIdentity("IF-MIB", "linkSideways"), nil, nil)),
		}, view.ErrUnknownName},
		{"template then unknown", []Binding{
			Template(smi.NewNotificationType(smi.NewObjectIdentity("SNMPv2-MIB", "warmStart"), nil, nil)),
			Named("NO-SUCH-MIB::x.0", nil),
		}, view.ErrUnknownName},
		{"bad member value", []Binding{
			Template(smi.NewNotificationType(smi.NewObjectIdentity("IF-MIB", "linkDown"), []any{1},
				map[string]any{"IF-MIB::ifOperStatus": 42})),
		}, smi.ErrInvalidValue},
		{"shape", []Binding{{Shape: Shape(42)}}, ErrShapeMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := NewNotificationOriginator().MakeVarBinds(NewCache(), tt.bindings)
			require.ErrorIs(t, err, tt.err)
			assert.Nil(t, out)
		})
	}
}

func TestNotificationUnmake(t *testing.T) {
	in := []smi.ObjectType{
		smi.NewObjectType(smi.ObjectIdentityFromOID(mib.MustParseOID("1.3.6.1.6.3.1.1.4.1.0")),
			smi.ObjectIdentifier(mib.MustParseOID("1.3.6.1.6.3.1.1.5.4"))),
		smi.NewObjectType(smi.ObjectIdentityFromOID(mib.MustParseOID("1.3.6.1.2.1.2.2.1.1.3")), smi.Integer(3)),
	}
	orig := NewNotificationOriginator()

	passed, err := orig.UnmakeVarBinds(NewCache(), in)
	require.NoError(t, err)
	assert.Equal(t, in, passed)

	named, err := orig.UnmakeVarBinds(NewCache(), in, WithLookupMib(true))
	require.NoError(t, err)
	assert.Equal(t, []string{
		"SNMPv2-MIB::snmpTrapOID.0 = IF-MIB::linkUp",
		"IF-MIB::ifIndex.3 = 3",
	}, names(named))

	_, err = orig.UnmakeVarBinds(NewCache(),
		append(in, smi.NewObjectType(smi.ObjectIdentityFromOID(mib.Oid{3, 99}), nil)), WithLookupMib(true))
	require.ErrorIs(t, err, view.ErrUnknownName)
	assert.Contains(t, err.Error(), "binding 2")
}

func TestNotificationOriginatorLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	orig := NewNotificationOriginator(WithLogger(logger))

	// sysDescr has no NOTIFICATION-TYPE; the warning comes from the expansion
	out, err := orig.MakeVarBinds(NewCache(), []Binding{
		Template(smi.NewNotificationType(smi.NewObjectIdentity("SNMPv2-MIB", "sysDescr"), nil, nil)),
	})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Contains(t, buf.String(), "not a NOTIFICATION-TYPE")
	assert.Contains(t, buf.String(), "component=notification")

	buf.Reset()
	coldStart := smi.NewNotificationType(smi.NewObjectIdentity("SNMPv2-MIB", "coldStart"), nil, nil)
	_, err = orig.MakeVarBinds(NewCache(), []Binding{Named("SNMPv2-MIB::sysUpTime.0", 42), Template(coldStart)})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "template expanded")
	assert.Contains(t, buf.String(), "component=notification")
}
