package snmpbind

import (
	"github.com/golangsnmp/snmpbind/pdu"
	"github.com/golangsnmp/snmpbind/smi"
)

// IsEndOfMib reports whether a GETNEXT or GETBULK response row has no
// successor to request: the row is empty or every binding carries
// noSuchObject, noSuchInstance or endOfMibView.
func IsEndOfMib(bindings []smi.ObjectType) bool {
	next, _ := pdu.NextVarBinds(bindings, nil)
	return len(next) == 0
}
