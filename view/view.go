// Package view answers the name and index questions a binding resolver asks
// of the MIB: symbol to node, OID to the deepest named node, and instance
// index encoding and decoding per RFC 2578 section 7.7.
//
// A View wraps an immutable *mib.Mib and is safe for concurrent use.
package view

import (
	"errors"
	"fmt"
	"log/slog"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/golangsnmp/snmpbind/internal/basemib"
	"github.com/golangsnmp/snmpbind/internal/types"
	"github.com/golangsnmp/snmpbind/mib"
)

var (
	// ErrUnknownName is returned when a module, symbol or OID prefix is not
	// present in the view.
	ErrUnknownName = errors.New("unknown name")
	// ErrAmbiguousName is returned when an unqualified symbol names more
	// than one node.
	ErrAmbiguousName = errors.New("ambiguous name")
	// ErrMalformedIndex is returned when index values do not match the row's
	// INDEX clause, or an instance suffix cannot be decoded.
	ErrMalformedIndex = errors.New("malformed index")
)

// DefaultLookupCacheSize is the number of name lookups memoized per view.
const DefaultLookupCacheSize = 1024

// Option configures a View.
type Option func(*config)

type config struct {
	logger    *slog.Logger
	cacheSize int
}

// WithLogger sets the logger for debug/trace output.
// If not set, no logging occurs.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// WithLookupCacheSize sets the number of memoized name lookups.
// Zero or negative disables the memo.
func WithLookupCacheSize(n int) Option {
	return func(c *config) { c.cacheSize = n }
}

// View resolves names and instance identifiers against a Mib.
type View struct {
	mib  *mib.Mib
	log  types.Logger
	memo *lru.Cache[string, *mib.Node]
}

// New returns a View over m.
func New(m *mib.Mib, opts ...Option) *View {
	cfg := config{cacheSize: DefaultLookupCacheSize}
	for _, opt := range opts {
		opt(&cfg)
	}
	v := &View{
		mib: m,
		log: types.Logger{L: cfg.logger}.Component("view"),
	}
	if cfg.cacheSize > 0 {
		// lru.New only fails for non-positive sizes
		v.memo, _ = lru.New[string, *mib.Node](cfg.cacheSize)
	}
	return v
}

// Default returns a View over a freshly built Mib holding the built-in
// modules (SNMPv2-SMI, SNMPv2-TC, SNMPv2-MIB, IF-MIB and friends).
func Default(opts ...Option) *View {
	m, err := basemib.Build()
	if err != nil {
		// built-in tables are static; a link failure is a programming error
		panic(fmt.Sprintf("view: building default modules: %v", err))
	}
	return New(m, opts...)
}

// Mib returns the underlying model.
func (v *View) Mib() *mib.Mib { return v.mib }

// NodeByName returns the node named symbol. With a module name the lookup
// is restricted to that module; without one, a symbol registered on more
// than one node fails with ErrAmbiguousName.
func (v *View) NodeByName(module, symbol string) (*mib.Node, error) {
	key := module + "::" + symbol
	if v.memo != nil {
		if nd, ok := v.memo.Get(key); ok {
			return nd, nil
		}
	}

	nd, err := v.lookup(module, symbol)
	if err != nil {
		if v.log.Enabled(slog.LevelDebug) {
			v.log.Log(slog.LevelDebug, "name lookup failed",
				slog.String("module", module),
				slog.String("symbol", symbol),
				slog.String("error", err.Error()))
		}
		return nil, err
	}
	if v.memo != nil {
		v.memo.Add(key, nd)
	}
	return nd, nil
}

func (v *View) lookup(module, symbol string) (*mib.Node, error) {
	if symbol == "" {
		return nil, fmt.Errorf("%w: empty symbol", ErrUnknownName)
	}
	if module != "" {
		mod := v.mib.Module(module)
		if mod == nil {
			return nil, fmt.Errorf("%w: module %s", ErrUnknownName, module)
		}
		nd := mod.Node(symbol)
		if nd == nil {
			return nil, fmt.Errorf("%w: %s::%s", ErrUnknownName, module, symbol)
		}
		return nd, nil
	}

	nodes := v.mib.NodesNamed(symbol)
	switch len(nodes) {
	case 0:
		return nil, fmt.Errorf("%w: %s", ErrUnknownName, symbol)
	case 1:
		return nodes[0], nil
	default:
		return nil, fmt.Errorf("%w: %s names %d nodes", ErrAmbiguousName, symbol, len(nodes))
	}
}

// NodeLocation returns the deepest named node whose OID prefixes oid,
// together with the remaining suffix.
func (v *View) NodeLocation(oid mib.Oid) (*mib.Node, mib.Oid, error) {
	nd := v.mib.LongestPrefixByOID(oid)
	for nd != nil && !nd.IsRoot() && nd.Name() == "" {
		nd = nd.Parent()
	}
	if nd == nil || nd.IsRoot() {
		return nil, nil, fmt.Errorf("%w: no named prefix for %s", ErrUnknownName, oid)
	}
	depth := len(nd.OID())
	suffix := make(mib.Oid, len(oid)-depth)
	copy(suffix, oid[depth:])
	if v.log.TraceEnabled() {
		v.log.Trace("node location",
			slog.String("oid", oid.String()),
			slog.String("node", nd.Name()),
			slog.String("suffix", suffix.String()))
	}
	return nd, suffix, nil
}
