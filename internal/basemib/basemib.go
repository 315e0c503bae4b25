// Package basemib registers the built-in modules that make up the default
// MIB view: the SMIv2 base modules plus the core SNMP and interface MIBs.
// Modules are expressed programmatically through mib.Builder; no MIB text is
// parsed.
package basemib

import "github.com/golangsnmp/snmpbind/mib"

// Order matches registration order. Earlier modules own shared OID names.
var moduleNames = [...]string{
	"SNMPv2-SMI",
	"SNMPv2-TC",
	"SNMPv2-MIB",
	"IANAifType-MIB",
	"IF-MIB",
	"IP-MIB",
	"SNMP-FRAMEWORK-MIB",
	"SNMP-TARGET-MIB",
	"SNMP-VIEW-BASED-ACM-MIB",
}

// Names returns the names of the built-in modules in registration order.
func Names() []string {
	return moduleNames[:]
}

// Register adds every built-in module to b.
func Register(b *mib.Builder) {
	registerSNMPv2SMI(b)
	registerSNMPv2TC(b)
	registerSNMPv2MIB(b)
	registerIANAifTypeMIB(b)
	registerIFMIB(b)
	registerIPMIB(b)
	registerFrameworkMIB(b)
	registerTargetMIB(b)
	registerVACMMIB(b)
}

// Build returns a fresh Mib holding only the built-in modules.
func Build() (*mib.Mib, error) {
	b := mib.NewBuilder()
	Register(b)
	return b.Build()
}

var (
	mib2       = mib.Oid{1, 3, 6, 1, 2, 1}
	snmpModule = mib.Oid{1, 3, 6, 1, 6, 3}
)

func oid(base mib.Oid, arcs ...uint32) mib.Oid {
	return base.Append(arcs)
}

func span(lo, hi int64) []mib.Range {
	return []mib.Range{{Min: lo, Max: hi}}
}

func nv(label string, value int64) mib.NamedValue {
	return mib.NamedValue{Label: label, Value: value}
}

// mustType looks up a type registered by an earlier module. The built-in
// tables are static, so a miss is a programming error.
func mustType(b *mib.Builder, name string) *mib.Type {
	t := b.Type(name)
	if t == nil {
		panic("basemib: unknown type " + name)
	}
	return t
}
