package snmpbind

import (
	"github.com/golangsnmp/snmpbind/mib"
	"github.com/golangsnmp/snmpbind/smi"
	"github.com/golangsnmp/snmpbind/view"
)

// Type aliases for the binding types, which live in the smi subpackage.

// ObjectType is a canonical variable binding.
type ObjectType = smi.ObjectType

// ObjectIdentity names a MIB object instance.
type ObjectIdentity = smi.ObjectIdentity

// NotificationType is a notification binding template.
type NotificationType = smi.NotificationType

// Value is a typed SNMP value.
type Value = smi.Value

// Oid is a sequence of arc values representing an SNMP Object Identifier.
type Oid = mib.Oid

// Constructors.
var (
	NewObjectIdentity      = smi.NewObjectIdentity
	ObjectIdentityFromOID  = smi.ObjectIdentityFromOID
	ObjectIdentityFromName = smi.ObjectIdentityFromName
	NewObjectType          = smi.NewObjectType
	NewNotificationType    = smi.NewNotificationType
)

// ParseOID parses an OID from a dotted string (e.g., "1.3.6.1.2.1").
var ParseOID = mib.ParseOID

// Resolution errors, for use with errors.Is.
var (
	ErrUnknownName    = view.ErrUnknownName
	ErrAmbiguousName  = view.ErrAmbiguousName
	ErrMalformedIndex = view.ErrMalformedIndex
	ErrInvalidValue   = smi.ErrInvalidValue
)

// Placeholder and exception values.
var (
	Unspecified    = smi.Unspecified
	NoSuchObject   = smi.NoSuchObject
	NoSuchInstance = smi.NoSuchInstance
	EndOfMibView   = smi.EndOfMibView
)
