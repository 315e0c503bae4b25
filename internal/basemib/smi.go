package basemib

import (
	"math"

	"github.com/golangsnmp/snmpbind/mib"
)

func registerSNMPv2SMI(b *mib.Builder) {
	m := b.Module("SNMPv2-SMI", mib.LanguageSMIv2)

	m.Value("ccitt", mib.Oid{0})
	m.Value("zeroDotZero", mib.Oid{0, 0})
	m.Value("iso", mib.Oid{1})
	m.Value("joint-iso-ccitt", mib.Oid{2})
	m.Value("org", mib.Oid{1, 3})
	m.Value("dod", mib.Oid{1, 3, 6})
	internet := m.Value("internet", mib.Oid{1, 3, 6, 1}).OID()
	m.Value("directory", oid(internet, 1))
	m.Value("mgmt", oid(internet, 2))
	m.Value("mib-2", mib2)
	m.Value("transmission", oid(mib2, 10))
	m.Value("experimental", oid(internet, 3))
	m.Value("private", oid(internet, 4))
	m.Value("enterprises", oid(internet, 4, 1))
	m.Value("security", oid(internet, 5))
	m.Value("snmpV2", oid(internet, 6))
	m.Value("snmpDomains", oid(internet, 6, 1))
	m.Value("snmpProxys", oid(internet, 6, 2))
	m.Value("snmpModules", snmpModule)

	// ASN.1 primitives referenced by SYNTAX clauses
	m.Type(mib.TypeDef{Name: "INTEGER", Base: mib.BaseInteger32})
	m.Type(mib.TypeDef{Name: "OCTET STRING", Base: mib.BaseOctetString})
	m.Type(mib.TypeDef{Name: "OBJECT IDENTIFIER", Base: mib.BaseObjectIdentifier})
	m.Type(mib.TypeDef{Name: "BITS", Base: mib.BaseBits})

	m.Type(mib.TypeDef{Name: "Integer32", Base: mib.BaseInteger32, Ranges: span(math.MinInt32, math.MaxInt32)})
	m.Type(mib.TypeDef{Name: "Unsigned32", Base: mib.BaseUnsigned32, Ranges: span(0, math.MaxUint32)})
	m.Type(mib.TypeDef{Name: "Counter32", Base: mib.BaseCounter32, Ranges: span(0, math.MaxUint32)})
	// Counter64 exceeds int64 ranges; its bound is enforced by the value type
	m.Type(mib.TypeDef{Name: "Counter64", Base: mib.BaseCounter64})
	m.Type(mib.TypeDef{Name: "Gauge32", Base: mib.BaseGauge32, Ranges: span(0, math.MaxUint32)})
	m.Type(mib.TypeDef{Name: "TimeTicks", Base: mib.BaseTimeTicks, Ranges: span(0, math.MaxUint32)})
	m.Type(mib.TypeDef{Name: "IpAddress", Base: mib.BaseIpAddress, Sizes: span(4, 4)})
	m.Type(mib.TypeDef{Name: "Opaque", Base: mib.BaseOpaque})
	m.Type(mib.TypeDef{Name: "ObjectName", Base: mib.BaseObjectIdentifier})
	m.Type(mib.TypeDef{Name: "NotificationName", Base: mib.BaseObjectIdentifier})
}

func registerSNMPv2TC(b *mib.Builder) {
	m := b.Module("SNMPv2-TC", mib.LanguageSMIv2)

	octets := mustType(b, "OCTET STRING")
	integer := mustType(b, "INTEGER")
	oidType := mustType(b, "OBJECT IDENTIFIER")
	ticks := mustType(b, "TimeTicks")

	tc := func(name, hint string, parent *mib.Type, def mib.TypeDef) {
		def.Name = name
		def.Hint = hint
		def.Parent = parent
		def.TC = true
		m.Type(def)
	}

	tc("DisplayString", "255a", octets, mib.TypeDef{Sizes: span(0, 255)})
	tc("PhysAddress", "1x:", octets, mib.TypeDef{})
	tc("MacAddress", "1x:", octets, mib.TypeDef{Sizes: span(6, 6)})
	tc("TruthValue", "", integer, mib.TypeDef{Enums: []mib.NamedValue{nv("true", 1), nv("false", 2)}})
	tc("TestAndIncr", "", integer, mib.TypeDef{Ranges: span(0, math.MaxInt32)})
	tc("AutonomousType", "", oidType, mib.TypeDef{})
	tc("VariablePointer", "", oidType, mib.TypeDef{})
	tc("RowPointer", "", oidType, mib.TypeDef{})
	tc("RowStatus", "", integer, mib.TypeDef{Enums: []mib.NamedValue{
		nv("active", 1), nv("notInService", 2), nv("notReady", 3),
		nv("createAndGo", 4), nv("createAndWait", 5), nv("destroy", 6),
	}})
	tc("TimeStamp", "", ticks, mib.TypeDef{})
	tc("TimeInterval", "", integer, mib.TypeDef{Ranges: span(0, math.MaxInt32)})
	tc("DateAndTime", "2d-1d-1d,1d:1d:1d.1d,1a1d:1d", octets, mib.TypeDef{
		Sizes: []mib.Range{{Min: 8, Max: 8}, {Min: 11, Max: 11}},
	})
	tc("StorageType", "", integer, mib.TypeDef{Enums: []mib.NamedValue{
		nv("other", 1), nv("volatile", 2), nv("nonVolatile", 3), nv("permanent", 4), nv("readOnly", 5),
	}})
	tc("TDomain", "", oidType, mib.TypeDef{})
	tc("TAddress", "", octets, mib.TypeDef{Sizes: span(1, 255)})
}
