// Package snmpbind normalizes SNMP variable bindings and resolves them
// against a MIB view.
//
// Callers hand over bindings in any of the accepted shapes (see [Binding]).
// A [CommandGenerator] turns them into resolved [smi.ObjectType] values for
// outbound requests and attaches symbolic names to received responses. A
// [NotificationOriginator] does the same for notifications, expanding
// [smi.NotificationType] templates in place.
//
// Example:
//
//	cache := snmpbind.NewCache()
//	gen := snmpbind.NewCommandGenerator(snmpbind.WithLogger(slog.Default()))
//	bindings, err := gen.MakeVarBinds(cache, []snmpbind.Binding{
//	    snmpbind.Named("SNMPv2-MIB::sysDescr.0", nil),
//	    snmpbind.Legacy("IF-MIB", "ifDescr", nil, 1),
//	})
package snmpbind

import (
	"context"
	"log/slog"

	"github.com/golangsnmp/snmpbind/internal/types"
)

// LevelTrace is a custom log level more verbose than Debug.
// Use for per-binding logging.
// Enable with: &slog.HandlerOptions{Level: slog.Level(-8)}
const LevelTrace = types.LevelTrace

// Option configures a CommandGenerator or NotificationOriginator.
type Option func(*config)

type config struct {
	logger *slog.Logger
}

// WithLogger sets the logger for debug/trace output.
// If not set, no logging occurs.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

func newConfig(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// UnmakeOption configures the reverse direction.
type UnmakeOption func(*unmakeConfig)

type unmakeConfig struct {
	lookupMib    bool
	lookupMibSet bool
}

// WithLookupMib controls whether received bindings are resolved against the
// view. Commands resolve by default; notifications do not.
func WithLookupMib(lookup bool) UnmakeOption {
	return func(c *unmakeConfig) {
		c.lookupMib = lookup
		c.lookupMibSet = true
	}
}

func lookupMib(def bool, opts []UnmakeOption) bool {
	var cfg unmakeConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.lookupMibSet {
		return def
	}
	return cfg.lookupMib
}

// logEnabled returns true if logging is enabled at the given level.
func logEnabled(logger *slog.Logger, level slog.Level) bool {
	return logger != nil && logger.Enabled(context.Background(), level)
}
