package smi

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golangsnmp/snmpbind/mib"
	"github.com/golangsnmp/snmpbind/view"
)

func bindingNames(bindings []ObjectType) []string {
	names := make([]string, len(bindings))
	for i, b := range bindings {
		names[i] = b.Identity.String()
	}
	return names
}

func TestNotificationExpand(t *testing.T) {
	n := NewNotificationType(NewObjectIdentity("IF-MIB", "linkDown"), []any{1},
		map[string]any{"IF-MIB::ifAdminStatus": "up"})

	bindings, err := n.Resolve(testView, true)
	require.NoError(t, err)
	require.Equal(t, []string{
		"SNMPv2-MIB::snmpTrapOID.0",
		"IF-MIB::ifIndex.1",
		"IF-MIB::ifAdminStatus.1",
		"IF-MIB::ifOperStatus.1",
	}, bindingNames(bindings))

	trap, ok := bindings[0].TypedValue()
	require.True(t, ok)
	assert.Equal(t, mib.MustParseOID("1.3.6.1.6.3.1.1.5.3"), trap.Data)
	assert.Equal(t, "SNMPv2-MIB::snmpTrapOID.0 = IF-MIB::linkDown", bindings[0].String())

	assert.Equal(t, Unspecified, bindings[1].Value)
	assert.Equal(t, Integer(1), bindings[2].Value)
	assert.Equal(t, Unspecified, bindings[3].Value)
}

func TestNotificationAdditional(t *testing.T) {
	n := NewNotificationType(NewObjectIdentity("IF-MIB", "linkDown"), []any{1}, nil).
		AddVarBinds(
			NewObjectType(NewObjectIdentity("IF-MIB", "ifOperStatus", 1), "down"),
			NewObjectType(NewObjectIdentity("SNMPv2-MIB", "sysName", 0), "core-1"),
		)

	bindings, err := n.Resolve(testView, true)
	require.NoError(t, err)
	require.Equal(t, []string{
		"SNMPv2-MIB::snmpTrapOID.0",
		"IF-MIB::ifIndex.1",
		"IF-MIB::ifAdminStatus.1",
		"IF-MIB::ifOperStatus.1",
		"SNMPv2-MIB::sysName.0",
	}, bindingNames(bindings))
	assert.Equal(t, Integer(2), bindings[3].Value)
	assert.Equal(t, OctetString([]byte("core-1")), bindings[4].Value)
}

func TestNotificationTemplateUnchanged(t *testing.T) {
	n := NewNotificationType(NewObjectIdentity("SNMPv2-MIB", "coldStart"), nil, nil)
	extended := n.AddVarBinds(NewObjectType(NewObjectIdentity("SNMPv2-MIB", "sysName", 0), "x"))

	base, err := n.Resolve(testView, true)
	require.NoError(t, err)
	assert.Len(t, base, 1)

	more, err := extended.Resolve(testView, true)
	require.NoError(t, err)
	assert.Len(t, more, 2)
}

func TestNotificationNotANotification(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))

	n := NewNotificationType(NewObjectIdentity("SNMPv2-MIB", "sysDescr"), nil, nil)
	bindings, err := n.Resolve(testView, true, WithLogger(logger))
	require.NoError(t, err)
	require.Len(t, bindings, 1)
	assert.Equal(t, "SNMPv2-MIB::snmpTrapOID.0 = SNMPv2-MIB::sysDescr", bindings[0].String())
	assert.Contains(t, buf.String(), "not a NOTIFICATION-TYPE")
}

func TestNotificationErrors(t *testing.T) {
	_, err := NewNotificationType(NewObjectIdentity("IF-MIB", "noSuchTrap"), nil, nil).Resolve(testView, true)
	require.ErrorIs(t, err, view.ErrUnknownName)

	bad := NewNotificationType(NewObjectIdentity("IF-MIB", "linkUp"), []any{1},
		map[string]any{"IF-MIB::ifOperStatus": "sideways"})
	_, err = bad.Resolve(testView, true)
	require.ErrorIs(t, err, ErrInvalidValue)

	// lenient expansion keeps the member unresolved
	bindings, err := bad.Resolve(testView, false)
	require.NoError(t, err)
	require.Len(t, bindings, 4)
	assert.Equal(t, "sideways", bindings[3].Value)
	assert.False(t, bindings[3].IsResolved())
}

func TestNotificationAccessors(t *testing.T) {
	objects := map[string]any{"IF-MIB::ifIndex": 3}
	n := NewNotificationType(NewObjectIdentity("IF-MIB", "linkUp"), []any{3}, objects)
	objects["IF-MIB::ifIndex"] = 4

	assert.Equal(t, []any{3}, n.InstanceIndex())
	assert.Equal(t, map[string]any{"IF-MIB::ifIndex": 3}, n.Objects())
	assert.Equal(t, "IF-MIB::linkUp", n.String())
}
