// Package mib is the in-memory SNMP management-information model used for
// name and OID resolution: an immutable OID tree whose nodes carry the
// OBJECT-TYPE, NOTIFICATION-TYPE and type definitions registered through a
// Builder.
package mib

import "fmt"

// enumName returns names[i], or a Go-syntax fallback when i is out of range.
func enumName(typ string, names []string, i int) string {
	if i >= 0 && i < len(names) {
		return names[i]
	}
	return fmt.Sprintf("%s(%d)", typ, i)
}

// Kind identifies what an OID node represents.
type Kind int

const (
	KindUnknown      Kind = iota
	KindInternal          // arc with no definition of its own
	KindNode              // OBJECT-IDENTITY, MODULE-IDENTITY, value assignment
	KindScalar            // scalar OBJECT-TYPE
	KindTable             // SEQUENCE OF
	KindRow               // has INDEX or AUGMENTS
	KindColumn            // child of a row
	KindNotification      // NOTIFICATION-TYPE
)

var kindNames = []string{
	"unknown", "internal", "node", "scalar", "table", "row", "column", "notification",
}

func (k Kind) String() string { return enumName("Kind", kindNames, int(k)) }

// IsInstance reports whether nodes of this kind have instances that carry
// values in a variable binding.
func (k Kind) IsInstance() bool {
	return k == KindScalar || k == KindColumn
}

// Access is the MAX-ACCESS of an OBJECT-TYPE.
type Access int

const (
	AccessNotAccessible Access = iota
	AccessAccessibleForNotify
	AccessReadOnly
	AccessReadWrite
	AccessReadCreate
)

var accessNames = []string{
	"not-accessible", "accessible-for-notify", "read-only", "read-write", "read-create",
}

func (a Access) String() string { return enumName("Access", accessNames, int(a)) }

// Status is the STATUS clause of a definition.
type Status int

const (
	StatusCurrent Status = iota
	StatusDeprecated
	StatusObsolete
)

var statusNames = []string{"current", "deprecated", "obsolete"}

func (s Status) String() string { return enumName("Status", statusNames, int(s)) }

// Language identifies the SMI version a module is written in. Built-in
// modules are all SMIv2.
type Language int

const (
	LanguageUnknown Language = iota
	LanguageSMIv1
	LanguageSMIv2
)

var languageNames = []string{"unknown", "SMIv1", "SMIv2"}

func (l Language) String() string { return enumName("Language", languageNames, int(l)) }

// BaseType is the application or universal type a syntax reduces to. It
// decides both the value cast and the ASN.1 tag used on the wire.
type BaseType int

const (
	BaseUnknown BaseType = iota
	BaseInteger32
	BaseUnsigned32
	BaseCounter32
	BaseCounter64
	BaseGauge32
	BaseTimeTicks
	BaseIpAddress
	BaseOctetString
	BaseObjectIdentifier
	BaseBits
	BaseOpaque
)

var baseTypeNames = []string{
	"unknown",
	"Integer32",
	"Unsigned32",
	"Counter32",
	"Counter64",
	"Gauge32",
	"TimeTicks",
	"IpAddress",
	"OCTET STRING",
	"OBJECT IDENTIFIER",
	"BITS",
	"Opaque",
}

func (b BaseType) String() string { return enumName("BaseType", baseTypeNames, int(b)) }
