package snmpbind

import (
	"log/slog"

	"github.com/golangsnmp/snmpbind/internal/types"
	"github.com/golangsnmp/snmpbind/smi"
)

// NotificationOriginator prepares the bindings of TRAP and INFORM
// notifications and interprets received ones.
type NotificationOriginator struct {
	log types.Logger
}

// NewNotificationOriginator returns an originator configured by opts.
func NewNotificationOriginator(opts ...Option) *NotificationOriginator {
	cfg := newConfig(opts)
	return &NotificationOriginator{
		log: types.Logger{L: cfg.logger}.Component("notification"),
	}
}

// MakeVarBinds resolves notification bindings strictly.
//
// A lone template is expanded and its bindings returned as they are.
// Otherwise each template in bindings is replaced by its expansion and every
// other binding is canonicalized and resolved, keeping input order. The
// first failure aborts the call and no bindings are returned.
func (o *NotificationOriginator) MakeVarBinds(cache *Cache, bindings []Binding) ([]smi.ObjectType, error) {
	v := GetView(cache)
	if len(bindings) == 1 && bindings[0].Shape == ShapeTemplate {
		out, err := bindings[0].Template.Resolve(v, true, smi.WithLogger(o.log.L))
		if err != nil {
			return nil, bindingError(0, err)
		}
		return out, nil
	}

	var out []smi.ObjectType
	for i, b := range bindings {
		if b.Shape == ShapeTemplate {
			expanded, err := b.Template.Resolve(v, true, smi.WithLogger(o.log.L))
			if err != nil {
				return nil, bindingError(i, err)
			}
			if o.log.Enabled(slog.LevelDebug) {
				o.log.Log(slog.LevelDebug, "template expanded",
					slog.Int("position", i),
					slog.String("notification", b.Template.String()),
					slog.Int("bindings", len(expanded)))
			}
			out = append(out, expanded...)
			continue
		}
		ot, err := Canonicalize(b)
		if err != nil {
			return nil, bindingError(i, err)
		}
		resolved, err := ot.Resolve(v, true)
		if err != nil {
			return nil, bindingError(i, err)
		}
		traceBinding(o.log, "binding resolved", i, resolved)
		out = append(out, resolved)
	}
	return out, nil
}

// UnmakeVarBinds returns received notification bindings unchanged unless
// WithLookupMib(true) is given, in which case each binding is resolved
// strictly and the first failure aborts the call.
func (o *NotificationOriginator) UnmakeVarBinds(cache *Cache, bindings []smi.ObjectType, opts ...UnmakeOption) ([]smi.ObjectType, error) {
	if !lookupMib(false, opts) {
		return bindings, nil
	}
	v := GetView(cache)
	out := make([]smi.ObjectType, 0, len(bindings))
	for i, ot := range bindings {
		resolved, err := smi.NewObjectType(ot.Identity, ot.Value).Resolve(v, true)
		if err != nil {
			return nil, bindingError(i, err)
		}
		traceBinding(o.log, "binding named", i, resolved)
		out = append(out, resolved)
	}
	return out, nil
}
