package smi

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/gosnmp/gosnmp"

	"github.com/golangsnmp/snmpbind/internal/types"
)

// NotificationType is a template for the bindings of one notification.
// Expanding it yields snmpTrapOID.0 set to the notification's OID, then one
// binding per member of the notification's OBJECTS clause, then any
// additional bindings.
type NotificationType struct {
	Identity ObjectIdentity

	instanceIndex []any
	objects       map[string]any
	additional    []ObjectType
}

// NewNotificationType creates a template for the notification named by id.
// instanceIndex is appended to the name of each OBJECTS member, and
// objects supplies member values keyed "MODULE::symbol". Members without a
// value get the unspecified placeholder.
func NewNotificationType(id ObjectIdentity, instanceIndex []any, objects map[string]any) NotificationType {
	return NotificationType{
		Identity:      id,
		instanceIndex: slices.Clone(instanceIndex),
		objects:       maps.Clone(objects),
	}
}

// AddVarBinds returns a copy of n with extra bindings. An extra binding
// naming the same instance as a member replaces that member's binding;
// otherwise it is appended.
func (n NotificationType) AddVarBinds(bindings ...ObjectType) NotificationType {
	out := n
	out.additional = append(slices.Clone(n.additional), bindings...)
	return out
}

// InstanceIndex returns the index values appended to member names.
func (n NotificationType) InstanceIndex() []any { return slices.Clone(n.instanceIndex) }

// Objects returns the member values keyed "MODULE::symbol".
func (n NotificationType) Objects() map[string]any { return maps.Clone(n.objects) }

// ResolveOption configures NotificationType.Resolve.
type ResolveOption func(*resolveConfig)

type resolveConfig struct {
	logger *slog.Logger
}

// WithLogger sets the logger for warnings and trace output.
func WithLogger(logger *slog.Logger) ResolveOption {
	return func(c *resolveConfig) { c.logger = logger }
}

var trapOID = NewObjectIdentity("SNMPv2-MIB", "snmpTrapOID", 0)

// Resolve expands the template against v.
//
// The notification identity must resolve. A node that is not a
// NOTIFICATION-TYPE is logged at warn level and contributes no members.
// With strict set, any member or additional binding that fails to resolve
// aborts the expansion; otherwise it is kept unresolved.
func (n NotificationType) Resolve(v MibView, strict bool, opts ...ResolveOption) ([]ObjectType, error) {
	var cfg resolveConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	log := types.Logger{L: cfg.logger}.Component("smi")

	id, err := n.Identity.Resolve(v)
	if err != nil {
		return nil, err
	}

	trap, err := NewObjectType(trapOID, Value{Type: gosnmp.ObjectIdentifier, Data: id.OID()}).Resolve(v, true)
	if err != nil {
		return nil, err
	}
	bindings := []ObjectType{trap}
	location := make(map[string]int)

	notif := id.Node().Notification()
	if notif == nil || len(id.Indices()) > 0 {
		if log.Enabled(slog.LevelWarn) {
			log.Log(slog.LevelWarn, "not a NOTIFICATION-TYPE, expanding snmpTrapOID only",
				slog.String("name", id.String()))
		}
	} else {
		for _, obj := range notif.Objects() {
			module := obj.Module().Name()
			key := module + "::" + obj.Name()
			member := NewObjectType(NewObjectIdentity(module, obj.Name(), n.instanceIndex...), n.objects[key])
			resolved, err := member.Resolve(v, strict)
			if err != nil {
				return nil, fmt.Errorf("%s member %s: %w", id.Label(), key, err)
			}
			if log.TraceEnabled() {
				log.Trace("notification member", slog.String("binding", resolved.Identity.String()))
			}
			if oid := resolved.Identity.OID(); oid != nil {
				location[oid.String()] = len(bindings)
			}
			bindings = append(bindings, resolved)
		}
	}

	for _, extra := range n.additional {
		resolved, err := extra.Resolve(v, strict)
		if err != nil {
			return nil, fmt.Errorf("%s additional binding: %w", id.Label(), err)
		}
		if oid := resolved.Identity.OID(); oid != nil {
			if i, ok := location[oid.String()]; ok {
				bindings[i] = resolved
				continue
			}
		}
		bindings = append(bindings, resolved)
	}
	return bindings, nil
}

// String returns the notification identity.
func (n NotificationType) String() string { return n.Identity.String() }
