package snmpbind

import (
	"fmt"
	"log/slog"

	"github.com/golangsnmp/snmpbind/internal/types"
	"github.com/golangsnmp/snmpbind/smi"
)

// CommandGenerator prepares bindings for GET, GETNEXT, GETBULK and SET
// requests and interprets the bindings of their responses.
type CommandGenerator struct {
	log types.Logger
}

// NewCommandGenerator returns a generator configured by opts.
func NewCommandGenerator(opts ...Option) *CommandGenerator {
	cfg := newConfig(opts)
	return &CommandGenerator{log: types.Logger{L: cfg.logger}.Component("command")}
}

// MakeVarBinds canonicalizes each binding and resolves it strictly against
// the cache's view. The result has the same length and order as bindings.
// The first failure aborts the call and no bindings are returned.
func (g *CommandGenerator) MakeVarBinds(cache *Cache, bindings []Binding) ([]smi.ObjectType, error) {
	v := GetView(cache)
	out := make([]smi.ObjectType, 0, len(bindings))
	for i, b := range bindings {
		ot, err := Canonicalize(b)
		if err != nil {
			return nil, bindingError(i, err)
		}
		resolved, err := ot.Resolve(v, true)
		if err != nil {
			g.log.Log(slog.LevelDebug, "binding rejected", slog.Int("position", i), slog.Any("error", err))
			return nil, bindingError(i, err)
		}
		traceBinding(g.log, "binding resolved", i, resolved)
		out = append(out, resolved)
	}
	return out, nil
}

// UnmakeVarBinds attaches symbolic names, types and index values to
// received bindings. Resolution is lenient: a binding the view cannot name
// is returned as it was received. WithLookupMib(false) returns bindings
// unchanged.
func (g *CommandGenerator) UnmakeVarBinds(cache *Cache, bindings []smi.ObjectType, opts ...UnmakeOption) ([]smi.ObjectType, error) {
	if !lookupMib(true, opts) {
		return bindings, nil
	}
	v := GetView(cache)
	out := make([]smi.ObjectType, 0, len(bindings))
	for i, ot := range bindings {
		resolved, err := smi.NewObjectType(ot.Identity, ot.Value).Resolve(v, false)
		if err != nil {
			return nil, bindingError(i, err)
		}
		if !resolved.Identity.IsResolved() {
			g.log.Log(slog.LevelDebug, "binding left unresolved",
				slog.Int("position", i),
				slog.String("name", ot.Identity.String()))
		}
		traceBinding(g.log, "binding named", i, resolved)
		out = append(out, resolved)
	}
	return out, nil
}

func bindingError(i int, err error) error {
	return fmt.Errorf("binding %d: %w", i, err)
}

func traceBinding(log types.Logger, msg string, i int, ot smi.ObjectType) {
	if log.TraceEnabled() {
		log.Trace(msg, slog.Int("position", i), slog.String("binding", ot.String()))
	}
}
