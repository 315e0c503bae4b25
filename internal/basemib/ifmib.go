package basemib

import (
	"math"

	"github.com/golangsnmp/snmpbind/mib"
)

func registerIANAifTypeMIB(b *mib.Builder) {
	m := b.Module("IANAifType-MIB", mib.LanguageSMIv2)
	m.Identity("ianaifType", oid(mib2, 30), "")

	// subset of the IANA registry
	m.Type(mib.TypeDef{
		Name:   "IANAifType",
		Parent: mustType(b, "INTEGER"),
		TC:     true,
		Enums: []mib.NamedValue{
			nv("other", 1),
			nv("regular1822", 2),
			nv("ethernetCsmacd", 6),
			nv("iso88023Csmacd", 7),
			nv("ppp", 23),
			nv("softwareLoopback", 24),
			nv("propPointToPointSerial", 22),
			nv("frameRelay", 32),
			nv("atm", 37),
			nv("ieee80211", 71),
			nv("tunnel", 131),
			nv("l2vlan", 135),
			nv("l3ipvlan", 136),
			nv("bridge", 209),
			nv("ieee8023adLag", 161),
		},
	})
}

func registerIFMIB(b *mib.Builder) {
	m := b.Module("IF-MIB", mib.LanguageSMIv2)

	integer := mustType(b, "Integer32")
	display := mustType(b, "DisplayString")
	phys := mustType(b, "PhysAddress")
	gauge := mustType(b, "Gauge32")
	counter := mustType(b, "Counter32")
	counter64 := mustType(b, "Counter64")
	ticks := mustType(b, "TimeTicks")
	truth := mustType(b, "TruthValue")
	ifType := mustType(b, "IANAifType")

	ifMIB := oid(mib2, 31)
	m.Identity("ifMIB", ifMIB, "The MIB module to describe generic objects for network interface sub-layers.")

	ifIndexType := m.Type(mib.TypeDef{Name: "InterfaceIndex", Parent: integer, Hint: "d", TC: true,
		Ranges: span(1, math.MaxInt32)})
	m.Type(mib.TypeDef{Name: "InterfaceIndexOrZero", Parent: integer, Hint: "d", TC: true,
		Ranges: span(0, math.MaxInt32)})

	interfaces := oid(mib2, 2)
	m.Value("interfaces", interfaces)
	m.Scalar(mib.ObjectDef{Name: "ifNumber", OID: oid(interfaces, 1), Type: integer, Access: mib.AccessReadOnly})

	ifTable := oid(interfaces, 2)
	m.Table(mib.ObjectDef{Name: "ifTable", OID: ifTable, Access: mib.AccessNotAccessible})
	ifEntry := oid(ifTable, 1)
	m.Row(mib.ObjectDef{Name: "ifEntry", OID: ifEntry, Access: mib.AccessNotAccessible, Index: []string{"ifIndex"}})

	ifStatus := []mib.NamedValue{nv("up", 1), nv("down", 2), nv("testing", 3)}
	columns := []mib.ObjectDef{
		{Name: "ifIndex", Type: ifIndexType, Access: mib.AccessReadOnly},
		{Name: "ifDescr", Type: display, Access: mib.AccessReadOnly},
		{Name: "ifType", Type: ifType, Access: mib.AccessReadOnly},
		{Name: "ifMtu", Type: integer, Access: mib.AccessReadOnly},
		{Name: "ifSpeed", Type: gauge, Access: mib.AccessReadOnly},
		{Name: "ifPhysAddress", Type: phys, Access: mib.AccessReadOnly},
		{Name: "ifAdminStatus", Type: integer, Access: mib.AccessReadWrite, Enums: ifStatus},
		{Name: "ifOperStatus", Type: integer, Access: mib.AccessReadOnly, Enums: append(ifStatus[:3:3],
			nv("unknown", 4), nv("dormant", 5), nv("notPresent", 6), nv("lowerLayerDown", 7))},
		{Name: "ifLastChange", Type: ticks, Access: mib.AccessReadOnly},
		{Name: "ifInOctets", Type: counter, Access: mib.AccessReadOnly},
		{Name: "ifInUcastPkts", Type: counter, Access: mib.AccessReadOnly},
		{Name: "ifInNUcastPkts", Type: counter, Access: mib.AccessReadOnly, Status: mib.StatusDeprecated},
		{Name: "ifInDiscards", Type: counter, Access: mib.AccessReadOnly},
		{Name: "ifInErrors", Type: counter, Access: mib.AccessReadOnly},
		{Name: "ifInUnknownProtos", Type: counter, Access: mib.AccessReadOnly},
		{Name: "ifOutOctets", Type: counter, Access: mib.AccessReadOnly},
		{Name: "ifOutUcastPkts", Type: counter, Access: mib.AccessReadOnly},
		{Name: "ifOutNUcastPkts", Type: counter, Access: mib.AccessReadOnly, Status: mib.StatusDeprecated},
		{Name: "ifOutDiscards", Type: counter, Access: mib.AccessReadOnly},
		{Name: "ifOutErrors", Type: counter, Access: mib.AccessReadOnly},
	}
	for i, def := range columns {
		def.OID = oid(ifEntry, uint32(i+1))
		m.Column(def)
	}

	ifMIBObjects := oid(ifMIB, 1)
	m.Value("ifMIBObjects", ifMIBObjects)
	ifXTable := oid(ifMIBObjects, 1)
	m.Table(mib.ObjectDef{Name: "ifXTable", OID: ifXTable, Access: mib.AccessNotAccessible})
	ifXEntry := oid(ifXTable, 1)
	m.Row(mib.ObjectDef{Name: "ifXEntry", OID: ifXEntry, Access: mib.AccessNotAccessible, Augments: "ifEntry"})

	xcolumns := []struct {
		arc uint32
		def mib.ObjectDef
	}{
		{1, mib.ObjectDef{Name: "ifName", Type: display, Access: mib.AccessReadOnly}},
		{2, mib.ObjectDef{Name: "ifInMulticastPkts", Type: counter, Access: mib.AccessReadOnly}},
		{3, mib.ObjectDef{Name: "ifInBroadcastPkts", Type: counter, Access: mib.AccessReadOnly}},
		{6, mib.ObjectDef{Name: "ifHCInOctets", Type: counter64, Access: mib.AccessReadOnly}},
		{10, mib.ObjectDef{Name: "ifHCOutOctets", Type: counter64, Access: mib.AccessReadOnly}},
		{14, mib.ObjectDef{Name: "ifLinkUpDownTrapEnable", Type: integer, Access: mib.AccessReadWrite,
			Enums: []mib.NamedValue{nv("enabled", 1), nv("disabled", 2)}}},
		{15, mib.ObjectDef{Name: "ifHighSpeed", Type: gauge, Access: mib.AccessReadOnly}},
		{16, mib.ObjectDef{Name: "ifPromiscuousMode", Type: truth, Access: mib.AccessReadWrite}},
		{17, mib.ObjectDef{Name: "ifConnectorPresent", Type: truth, Access: mib.AccessReadOnly}},
		{18, mib.ObjectDef{Name: "ifAlias", Type: display, Access: mib.AccessReadWrite, Sizes: span(0, 64)}},
	}
	for _, c := range xcolumns {
		c.def.OID = oid(ifXEntry, c.arc)
		m.Column(c.def)
	}

	snmpTraps := oid(snmpModule, 1, 1, 5)
	linkObjects := []string{"ifIndex", "ifAdminStatus", "ifOperStatus"}
	m.Notification(mib.NotificationDef{Name: "linkDown", OID: oid(snmpTraps, 3), Objects: linkObjects,
		Description: "A communication link is about to enter the down state."})
	m.Notification(mib.NotificationDef{Name: "linkUp", OID: oid(snmpTraps, 4), Objects: linkObjects,
		Description: "A communication link left the down state."})
}

func registerIPMIB(b *mib.Builder) {
	m := b.Module("IP-MIB", mib.LanguageSMIv2)
	m.Identity("ipMIB", oid(mib2, 48), "")

	ipAddress := mustType(b, "IpAddress")
	integer := mustType(b, "INTEGER")

	ip := oid(mib2, 4)
	m.Value("ip", ip)
	m.Scalar(mib.ObjectDef{Name: "ipForwarding", OID: oid(ip, 1), Type: integer, Access: mib.AccessReadWrite,
		Enums: []mib.NamedValue{nv("forwarding", 1), nv("notForwarding", 2)}})
	m.Scalar(mib.ObjectDef{Name: "ipDefaultTTL", OID: oid(ip, 2), Type: integer, Access: mib.AccessReadWrite,
		Ranges: span(1, 255)})

	ipAddrTable := oid(ip, 20)
	m.Table(mib.ObjectDef{Name: "ipAddrTable", OID: ipAddrTable, Access: mib.AccessNotAccessible})
	ipAddrEntry := oid(ipAddrTable, 1)
	m.Row(mib.ObjectDef{Name: "ipAddrEntry", OID: ipAddrEntry, Access: mib.AccessNotAccessible,
		Index: []string{"ipAdEntAddr"}})
	m.Column(mib.ObjectDef{Name: "ipAdEntAddr", OID: oid(ipAddrEntry, 1), Type: ipAddress, Access: mib.AccessReadOnly})
	m.Column(mib.ObjectDef{Name: "ipAdEntIfIndex", OID: oid(ipAddrEntry, 2), Type: integer, Access: mib.AccessReadOnly,
		Ranges: span(1, math.MaxInt32)})
	m.Column(mib.ObjectDef{Name: "ipAdEntNetMask", OID: oid(ipAddrEntry, 3), Type: ipAddress, Access: mib.AccessReadOnly})
}
