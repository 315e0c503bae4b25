package basemib

import (
	"math"

	"github.com/golangsnmp/snmpbind/mib"
)

func registerSNMPv2MIB(b *mib.Builder) {
	m := b.Module("SNMPv2-MIB", mib.LanguageSMIv2)

	display := mustType(b, "DisplayString")
	integer := mustType(b, "INTEGER")
	oidType := mustType(b, "OBJECT IDENTIFIER")
	ticks := mustType(b, "TimeTicks")
	stamp := mustType(b, "TimeStamp")
	counter := mustType(b, "Counter32")
	testAndIncr := mustType(b, "TestAndIncr")

	snmpMIB := oid(snmpModule, 1)
	m.Identity("snmpMIB", snmpMIB, "The MIB module for SNMP entities.")
	objects := oid(snmpMIB, 1)
	m.Value("snmpMIBObjects", objects)

	// system group
	system := oid(mib2, 1)
	m.Value("system", system)
	m.Scalar(mib.ObjectDef{Name: "sysDescr", OID: oid(system, 1), Type: display, Access: mib.AccessReadOnly,
		Description: "A textual description of the entity."})
	m.Scalar(mib.ObjectDef{Name: "sysObjectID", OID: oid(system, 2), Type: oidType, Access: mib.AccessReadOnly})
	m.Scalar(mib.ObjectDef{Name: "sysUpTime", OID: oid(system, 3), Type: ticks, Access: mib.AccessReadOnly})
	m.Scalar(mib.ObjectDef{Name: "sysContact", OID: oid(system, 4), Type: display, Access: mib.AccessReadWrite})
	m.Scalar(mib.ObjectDef{Name: "sysName", OID: oid(system, 5), Type: display, Access: mib.AccessReadWrite})
	m.Scalar(mib.ObjectDef{Name: "sysLocation", OID: oid(system, 6), Type: display, Access: mib.AccessReadWrite})
	m.Scalar(mib.ObjectDef{Name: "sysServices", OID: oid(system, 7), Type: integer, Access: mib.AccessReadOnly,
		Ranges: span(0, 127)})
	m.Scalar(mib.ObjectDef{Name: "sysORLastChange", OID: oid(system, 8), Type: stamp, Access: mib.AccessReadOnly})

	sysORTable := oid(system, 9)
	m.Table(mib.ObjectDef{Name: "sysORTable", OID: sysORTable, Access: mib.AccessNotAccessible})
	sysOREntry := oid(sysORTable, 1)
	m.Row(mib.ObjectDef{Name: "sysOREntry", OID: sysOREntry, Access: mib.AccessNotAccessible,
		Index: []string{"sysORIndex"}})
	m.Column(mib.ObjectDef{Name: "sysORIndex", OID: oid(sysOREntry, 1), Type: integer,
		Access: mib.AccessNotAccessible, Ranges: span(1, math.MaxInt32)})
	m.Column(mib.ObjectDef{Name: "sysORID", OID: oid(sysOREntry, 2), Type: oidType, Access: mib.AccessReadOnly})
	m.Column(mib.ObjectDef{Name: "sysORDescr", OID: oid(sysOREntry, 3), Type: display, Access: mib.AccessReadOnly})
	m.Column(mib.ObjectDef{Name: "sysORUpTime", OID: oid(sysOREntry, 4), Type: stamp, Access: mib.AccessReadOnly})

	// snmp group
	snmp := oid(mib2, 11)
	m.Value("snmp", snmp)
	for _, c := range []struct {
		name string
		arc  uint32
	}{
		{"snmpInPkts", 1},
		{"snmpInBadVersions", 3},
		{"snmpInBadCommunityNames", 4},
		{"snmpInBadCommunityUses", 5},
		{"snmpInASNParseErrs", 6},
		{"snmpSilentDrops", 31},
		{"snmpProxyDrops", 32},
	} {
		m.Scalar(mib.ObjectDef{Name: c.name, OID: oid(snmp, c.arc), Type: counter, Access: mib.AccessReadOnly})
	}
	m.Scalar(mib.ObjectDef{Name: "snmpEnableAuthenTraps", OID: oid(snmp, 30), Type: integer,
		Access: mib.AccessReadWrite, Enums: []mib.NamedValue{nv("enabled", 1), nv("disabled", 2)}})

	// notification support
	snmpTrap := oid(objects, 4)
	m.Value("snmpTrap", snmpTrap)
	m.Scalar(mib.ObjectDef{Name: "snmpTrapOID", OID: oid(snmpTrap, 1), Type: oidType,
		Access: mib.AccessAccessibleForNotify})
	m.Scalar(mib.ObjectDef{Name: "snmpTrapEnterprise", OID: oid(snmpTrap, 3), Type: oidType,
		Access: mib.AccessAccessibleForNotify})

	snmpTraps := oid(objects, 5)
	m.Value("snmpTraps", snmpTraps)
	m.Notification(mib.NotificationDef{Name: "coldStart", OID: oid(snmpTraps, 1),
		Description: "The SNMP entity is reinitializing itself and its configuration may have been altered."})
	m.Notification(mib.NotificationDef{Name: "warmStart", OID: oid(snmpTraps, 2),
		Description: "The SNMP entity is reinitializing itself such that its configuration is unaltered."})
	m.Notification(mib.NotificationDef{Name: "authenticationFailure", OID: oid(snmpTraps, 5)})

	snmpSet := oid(objects, 6)
	m.Value("snmpSet", snmpSet)
	m.Scalar(mib.ObjectDef{Name: "snmpSetSerialNo", OID: oid(snmpSet, 1), Type: testAndIncr,
		Access: mib.AccessReadWrite})
}
