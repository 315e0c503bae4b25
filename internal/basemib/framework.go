package basemib

import (
	"math"

	"github.com/golangsnmp/snmpbind/mib"
)

func registerFrameworkMIB(b *mib.Builder) {
	m := b.Module("SNMP-FRAMEWORK-MIB", mib.LanguageSMIv2)

	octets := mustType(b, "OCTET STRING")
	integer := mustType(b, "INTEGER")

	framework := oid(snmpModule, 10)
	m.Identity("snmpFrameworkMIB", framework, "The SNMP Management Architecture MIB.")

	m.Type(mib.TypeDef{Name: "SnmpAdminString", Parent: octets, Hint: "255t", TC: true, Sizes: span(0, 255)})
	engineID := m.Type(mib.TypeDef{Name: "SnmpEngineID", Parent: octets, TC: true, Sizes: span(5, 32)})
	m.Type(mib.TypeDef{Name: "SnmpSecurityModel", Parent: integer, TC: true, Ranges: span(0, math.MaxInt32)})
	m.Type(mib.TypeDef{Name: "SnmpSecurityLevel", Parent: integer, TC: true,
		Enums: []mib.NamedValue{nv("noAuthNoPriv", 1), nv("authNoPriv", 2), nv("authPriv", 3)}})

	objects := oid(framework, 2)
	m.Value("snmpFrameworkMIBObjects", objects)
	engine := oid(objects, 1)
	m.Value("snmpEngine", engine)
	m.Scalar(mib.ObjectDef{Name: "snmpEngineID", OID: oid(engine, 1), Type: engineID, Access: mib.AccessReadOnly})
	m.Scalar(mib.ObjectDef{Name: "snmpEngineBoots", OID: oid(engine, 2), Type: integer, Access: mib.AccessReadOnly,
		Ranges: span(1, math.MaxInt32)})
	m.Scalar(mib.ObjectDef{Name: "snmpEngineTime", OID: oid(engine, 3), Type: integer, Access: mib.AccessReadOnly,
		Ranges: span(0, math.MaxInt32), Units: "seconds"})
	m.Scalar(mib.ObjectDef{Name: "snmpEngineMaxMessageSize", OID: oid(engine, 4), Type: integer,
		Access: mib.AccessReadOnly, Ranges: span(484, math.MaxInt32)})
}

func registerTargetMIB(b *mib.Builder) {
	m := b.Module("SNMP-TARGET-MIB", mib.LanguageSMIv2)

	admin := mustType(b, "SnmpAdminString")
	integer := mustType(b, "INTEGER")
	domain := mustType(b, "TDomain")
	address := mustType(b, "TAddress")
	interval := mustType(b, "TimeInterval")
	storage := mustType(b, "StorageType")
	rowStatus := mustType(b, "RowStatus")

	target := oid(snmpModule, 12)
	m.Identity("snmpTargetMIB", target, "")
	objects := oid(target, 1)
	m.Value("snmpTargetObjects", objects)

	table := oid(objects, 2)
	m.Table(mib.ObjectDef{Name: "snmpTargetAddrTable", OID: table, Access: mib.AccessNotAccessible})
	entry := oid(table, 1)
	m.Row(mib.ObjectDef{Name: "snmpTargetAddrEntry", OID: entry, Access: mib.AccessNotAccessible,
		Index: []string{"snmpTargetAddrName"}, Implied: true})

	columns := []struct {
		arc uint32
		def mib.ObjectDef
	}{
		{1, mib.ObjectDef{Name: "snmpTargetAddrName", Type: admin, Access: mib.AccessNotAccessible, Sizes: span(1, 32)}},
		{2, mib.ObjectDef{Name: "snmpTargetAddrTDomain", Type: domain, Access: mib.AccessReadCreate}},
		{3, mib.ObjectDef{Name: "snmpTargetAddrTAddress", Type: address, Access: mib.AccessReadCreate}},
		{4, mib.ObjectDef{Name: "snmpTargetAddrTimeout", Type: interval, Access: mib.AccessReadCreate}},
		{5, mib.ObjectDef{Name: "snmpTargetAddrRetryCount", Type: integer, Access: mib.AccessReadCreate,
			Ranges: span(0, 255)}},
		{7, mib.ObjectDef{Name: "snmpTargetAddrParams", Type: admin, Access: mib.AccessReadCreate, Sizes: span(1, 32)}},
		{8, mib.ObjectDef{Name: "snmpTargetAddrStorageType", Type: storage, Access: mib.AccessReadCreate}},
		{9, mib.ObjectDef{Name: "snmpTargetAddrRowStatus", Type: rowStatus, Access: mib.AccessReadCreate}},
	}
	for _, c := range columns {
		c.def.OID = oid(entry, c.arc)
		m.Column(c.def)
	}
}

func registerVACMMIB(b *mib.Builder) {
	m := b.Module("SNMP-VIEW-BASED-ACM-MIB", mib.LanguageSMIv2)

	admin := mustType(b, "SnmpAdminString")
	model := mustType(b, "SnmpSecurityModel")
	storage := mustType(b, "StorageType")
	rowStatus := mustType(b, "RowStatus")

	vacm := oid(snmpModule, 16)
	m.Identity("snmpVacmMIB", vacm, "The management information definitions for the View-based Access Control Model.")
	objects := oid(vacm, 1)
	m.Value("vacmMIBObjects", objects)

	table := oid(objects, 2)
	m.Table(mib.ObjectDef{Name: "vacmSecurityToGroupTable", OID: table, Access: mib.AccessNotAccessible})
	entry := oid(table, 1)
	m.Row(mib.ObjectDef{Name: "vacmSecurityToGroupEntry", OID: entry, Access: mib.AccessNotAccessible,
		Index: []string{"vacmSecurityModel", "vacmSecurityName"}})
	m.Column(mib.ObjectDef{Name: "vacmSecurityModel", OID: oid(entry, 1), Type: model,
		Access: mib.AccessNotAccessible, Ranges: span(1, math.MaxInt32)})
	m.Column(mib.ObjectDef{Name: "vacmSecurityName", OID: oid(entry, 2), Type: admin,
		Access: mib.AccessNotAccessible, Sizes: span(1, 32)})
	m.Column(mib.ObjectDef{Name: "vacmGroupName", OID: oid(entry, 3), Type: admin,
		Access: mib.AccessReadCreate, Sizes: span(1, 32)})
	m.Column(mib.ObjectDef{Name: "vacmSecurityToGroupStorageType", OID: oid(entry, 4), Type: storage,
		Access: mib.AccessReadCreate})
	m.Column(mib.ObjectDef{Name: "vacmSecurityToGroupStatus", OID: oid(entry, 5), Type: rowStatus,
		Access: mib.AccessReadCreate})
}
